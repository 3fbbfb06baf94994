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
	"strings"
)

// Tags of interest. Everything else in a GEDCOM file is ignored.
const (
	individualTag = "INDI"
	birthTag      = "BIRT"
	deathTag      = "DEAT"
	dateTag       = "DATE"
)

// Individual is one person record extracted from a GEDCOM file. Id is the
// tag token of the record's opening line (usually of the form `@I1@`).
// BirthYear and DeathYear are nil when the file carries no parseable date
// for the event.
type Individual struct {
	Id        string `json:"id"`
	BirthYear *int   `json:"birthYear"`
	DeathYear *int   `json:"deathYear"`
}

// ParseIndividuals reads a complete GEDCOM document and returns its
// individual records in order of appearance.
//
// Every line consists of a nesting level, a tag and an optional payload.
// A record starts at a level-0 line with an INDI payload and ends at the
// next such line or at the end of the document. Within a record, the most
// recent level-1 BIRT or DEAT tag decides which event a level-2 DATE line
// belongs to; any other level-1 tag clears that memory so dates of
// unrelated events are not picked up. Repeated DATE lines for the same
// event overwrite each other, last one wins.
//
// Lines that carry fewer than two tokens are skipped. Records lacking a
// birth or death date keep the corresponding year nil.
func ParseIndividuals(content string) []Individual {
	individuals := make([]Individual, 0)

	var current *Individual
	var lastEventTag string

	for _, line := range strings.Split(content, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), " ", 3)
		if len(parts) < 2 {
			continue
		}
		level, tag := parts[0], parts[1]
		var payload string
		if len(parts) > 2 {
			payload = parts[2]
		}

		if level == "0" && payload == individualTag {
			if current != nil {
				individuals = append(individuals, *current)
			}
			current = &Individual{Id: tag}
			lastEventTag = ""
			continue
		}
		if current == nil {
			continue
		}

		if level == "1" {
			if tag == birthTag || tag == deathTag {
				lastEventTag = tag
			} else {
				lastEventTag = ""
			}
		}

		if level == "2" && tag == dateTag && lastEventTag != "" {
			year := ExtractYear(payload)
			if lastEventTag == birthTag {
				current.BirthYear = year
			} else {
				current.DeathYear = year
			}
		}
	}

	if current != nil {
		individuals = append(individuals, *current)
	}
	return individuals
}
