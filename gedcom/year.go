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
	"regexp"
	"strconv"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// ExtractYear returns the first run of four consecutive digits in the given
// date string as a year. GEDCOM dates are free text, so qualifiers and day or
// month tokens like in `ABT 1850` or `12 JAN 1850` are simply skipped over.
// Returns nil if the string is empty or contains no such run. A date that
// cannot be read is an unknown year, not an error.
func ExtractYear(date string) *int {
	if date == "" {
		return nil
	}
	match := yearPattern.FindString(date)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}
