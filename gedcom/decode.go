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
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func newDecoder(charset string) (*encoding.Decoder, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return unicode.UTF8.NewDecoder(), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported charset `%s`, use one of utf-8, iso-8859-1 or windows-1252", charset)
	}
}

// DecodeText decodes the raw bytes of a GEDCOM file into a string using the
// named charset. Older GEDCOM files are often ISO-8859-1 or Windows-1252
// rather than UTF-8. Decoding is tolerant: byte sequences that are invalid
// in the chosen charset come out as the Unicode replacement character
// instead of failing the whole file. Only an unknown charset name is an
// error.
func DecodeText(raw []byte, charset string) (string, error) {
	decoder, err := newDecoder(charset)
	if err != nil {
		return "", err
	}
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("could not decode input as %s: %v", charset, err)
	}
	return string(decoded), nil
}
