// Copyright 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gedcom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name string
		date string
		year int
	}{
		{"approximate date", "ABT 1850", 1850},
		{"full date", "12 JAN 1850", 1850},
		{"year only", "1850", 1850},
		{"year embedded in text", "BET 1850 AND 1855", 1850},
		{"longer digit run takes the first four digits", "18501", 1850},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year := ExtractYear(tt.date)
			if assert.NotNil(t, year) {
				assert.Equal(t, tt.year, *year)
			}
		})
	}
}

func TestExtractYear_noYear(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"empty string", ""},
		{"no digits", "no digits here"},
		{"too short digit run", "12 JAN 185"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ExtractYear(tt.date))
		})
	}
}
