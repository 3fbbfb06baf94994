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

package analysis

import (
	"fmt"
	"testing"

	"github.com/jvuorela-creator/keski-ika/gedcom"
	"github.com/stretchr/testify/assert"
)

func individual(id string, birthYear, deathYear int) gedcom.Individual {
	return gedcom.Individual{Id: id, BirthYear: &birthYear, DeathYear: &deathYear}
}

func TestAggregate_oneRowPerDecadeOfTheRange(t *testing.T) {
	individuals := []gedcom.Individual{individual("@I1@", 1805, 1875)}

	ranges := []Range{
		{Start: 1800, End: 1899},
		{Start: 1700, End: 1899},
		{Start: 1800, End: 1809},
	}

	for _, r := range ranges {
		t.Run(fmt.Sprintf("%d-%d", r.Start, r.End), func(t *testing.T) {
			result := Aggregate(individuals, r)

			if assert.Equal(t, (r.End-r.Start)/DecadeStep+1, len(result.Decades)) {
				for i, row := range result.Decades {
					assert.Equal(t, r.Start+i*DecadeStep, row.Decade)
				}
			}
		})
	}
}

func TestAggregate_meanAndCountPerDecade(t *testing.T) {
	individuals := []gedcom.Individual{
		individual("@I1@", 1805, 1875),
		individual("@I2@", 1807, 1887),
		individual("@I3@", 1815, 1880),
	}

	result := Aggregate(individuals, DefaultRange)

	assert.Equal(t, 1800, result.Decades[0].Decade)
	assert.Equal(t, 75.0, result.Decades[0].MeanAge)
	assert.Equal(t, 2, result.Decades[0].Count)

	assert.Equal(t, 1810, result.Decades[1].Decade)
	assert.Equal(t, 65.0, result.Decades[1].MeanAge)
	assert.Equal(t, 1, result.Decades[1].Count)

	for _, row := range result.Decades[2:] {
		assert.Equal(t, 0.0, row.MeanAge)
		assert.Equal(t, 0, row.Count)
	}
}

func TestAggregate_meanIsRoundedToOneDecimal(t *testing.T) {
	individuals := []gedcom.Individual{
		individual("@I1@", 1801, 1871),
		individual("@I2@", 1802, 1867),
		individual("@I3@", 1803, 1867),
	}

	result := Aggregate(individuals, DefaultRange)

	// (70 + 65 + 64) / 3 = 66.333...
	assert.Equal(t, 66.3, result.Decades[0].MeanAge)
}

func TestAggregate_filtering(t *testing.T) {
	deathYear := 1840
	individuals := []gedcom.Individual{
		// age 70, qualifies
		individual("@I1@", 1850, 1920),
		// negative age
		individual("@I2@", 1850, 1840),
		// age 120, implausible
		individual("@I3@", 1850, 1970),
		// age 119, qualifies
		individual("@I4@", 1850, 1969),
		// born before the range
		individual("@I5@", 1750, 1820),
		// no birth year
		{Id: "@I6@", BirthYear: nil, DeathYear: &deathYear},
		// no dates at all
		{Id: "@I7@"},
	}

	result := Aggregate(individuals, DefaultRange)

	assert.Equal(t, 2, result.InRange)
	// The out-of-range individual still counts towards the coverage total.
	assert.Equal(t, 3, result.Coverage)
	assert.Equal(t, 2, result.Decades[5].Count)
	assert.Equal(t, 94.5, result.Decades[5].MeanAge)
}

func TestAggregate_emptyResult(t *testing.T) {
	individuals := []gedcom.Individual{
		individual("@I1@", 1750, 1820),
		{Id: "@I2@"},
	}

	result := Aggregate(individuals, DefaultRange)

	assert.True(t, result.Empty())
	assert.Empty(t, result.Decades)
	assert.Equal(t, 0, result.InRange)
	assert.Equal(t, 1, result.Coverage)
}

func TestAggregate_noIndividuals(t *testing.T) {
	result := Aggregate(nil, DefaultRange)

	assert.True(t, result.Empty())
	assert.Empty(t, result.Decades)
}

func TestAggregate_idempotence(t *testing.T) {
	individuals := []gedcom.Individual{
		individual("@I1@", 1805, 1875),
		individual("@I2@", 1885, 1965),
	}

	first := Aggregate(individuals, DefaultRange)
	second := Aggregate(individuals, DefaultRange)

	assert.Equal(t, first, second)
}

func TestAggregate_endToEnd(t *testing.T) {
	individuals := []gedcom.Individual{
		individual("@I1@", 1805, 1875),
		individual("@I2@", 1815, 1880),
		individual("@I3@", 1885, 1965),
		{Id: "@I4@", BirthYear: intPtr(1850)},
	}

	result := Aggregate(individuals, DefaultRange)

	expected := []DecadeStatistics{
		{Decade: 1800, MeanAge: 70.0, Count: 1},
		{Decade: 1810, MeanAge: 65.0, Count: 1},
		{Decade: 1820}, {Decade: 1830}, {Decade: 1840}, {Decade: 1850},
		{Decade: 1860}, {Decade: 1870},
		{Decade: 1880, MeanAge: 80.0, Count: 1},
		{Decade: 1890},
	}
	assert.Equal(t, expected, result.Decades)
	assert.Equal(t, 3, result.InRange)
	assert.Equal(t, 3, result.Coverage)
}

func intPtr(i int) *int {
	return &i
}
