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

func TestDecodeText_utf8(t *testing.T) {
	content, err := DecodeText([]byte("1 NAME Päivi /Mäkelä/"), "utf-8")
	assert.NoError(t, err)
	assert.Equal(t, "1 NAME Päivi /Mäkelä/", content)
}

func TestDecodeText_invalidUtf8GetsReplaced(t *testing.T) {
	content, err := DecodeText([]byte{'0', ' ', 0xff, 0xfe, ' ', 'I', 'N', 'D', 'I'}, "utf-8")
	assert.NoError(t, err)
	assert.Contains(t, content, "�")
	assert.Contains(t, content, "INDI")
}

func TestDecodeText_latin1(t *testing.T) {
	content, err := DecodeText([]byte{'P', 0xE4, 'i', 'v', 0xE4}, "iso-8859-1")
	assert.NoError(t, err)
	assert.Equal(t, "Päivä", content)
}

func TestDecodeText_windows1252(t *testing.T) {
	content, err := DecodeText([]byte{0x93, 'o', 'k', 0x94}, "windows-1252")
	assert.NoError(t, err)
	assert.Equal(t, "“ok”", content)
}

func TestDecodeText_charsetNameIsCaseInsensitive(t *testing.T) {
	_, err := DecodeText([]byte("0 HEAD"), "UTF-8")
	assert.NoError(t, err)

	_, err = DecodeText([]byte("0 HEAD"), "Latin1")
	assert.NoError(t, err)
}

func TestDecodeText_unknownCharset(t *testing.T) {
	_, err := DecodeText([]byte("0 HEAD"), "ansel")
	assert.Error(t, err)
}
