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
	"math"

	"github.com/jvuorela-creator/keski-ika/gedcom"
	"gonum.org/v1/gonum/stat"
)

// DecadeStep is the width of one statistics bin in years.
const DecadeStep = 10

// MaxPlausibleAge bounds the lifespans considered valid. Ages at or above
// this value stem from mistyped or misread dates and are filtered out.
const MaxPlausibleAge = 120

// Range is the inclusive birth-year window the statistics cover.
type Range struct {
	Start, End int
}

// DefaultRange covers the birth decades of the 19th century.
var DefaultRange = Range{Start: 1800, End: 1899}

// DecadeStatistics represents the lifespan statistics of all individuals
// born within one decade. MeanAge is rounded to one decimal place and is 0
// whenever Count is 0.
type DecadeStatistics struct {
	Decade  int
	MeanAge float64
	Count   int
}

// Result is the outcome of aggregating one set of individual records.
// Decades holds one row per decade of the configured range, in ascending
// order, and is empty when no individual qualified. InRange counts the
// individuals behind those rows. Coverage counts the individuals with a
// plausible lifespan regardless of the range, which tells how much of the
// file carried usable dates at all.
type Result struct {
	Decades  []DecadeStatistics
	InRange  int
	Coverage int
}

// Empty reports whether no individual qualified for the configured range.
func (r *Result) Empty() bool {
	return r.InRange == 0
}

// Aggregate computes lifespan statistics per birth decade over the given
// range. Records missing a birth or death year, records with an implausible
// age and records born outside the range are filtered, never errors. The
// returned table always spans the full range: decades without data get a
// zero row. The input is not modified.
func Aggregate(individuals []gedcom.Individual, r Range) *Result {
	agesByDecade := make(map[int][]float64)
	result := &Result{}

	for _, individual := range individuals {
		if individual.BirthYear == nil || individual.DeathYear == nil {
			continue
		}
		age := *individual.DeathYear - *individual.BirthYear
		if age < 0 || age >= MaxPlausibleAge {
			continue
		}
		result.Coverage++
		if *individual.BirthYear < r.Start || *individual.BirthYear > r.End {
			continue
		}
		decade := *individual.BirthYear / DecadeStep * DecadeStep
		agesByDecade[decade] = append(agesByDecade[decade], float64(age))
		result.InRange++
	}

	if result.InRange == 0 {
		return result
	}

	result.Decades = make([]DecadeStatistics, 0, (r.End-r.Start)/DecadeStep+1)
	for decade := r.Start; decade <= r.End; decade += DecadeStep {
		row := DecadeStatistics{Decade: decade}
		if ages := agesByDecade[decade]; len(ages) > 0 {
			row.MeanAge = math.Round(stat.Mean(ages, nil)*10) / 10
			row.Count = len(ages)
		}
		result.Decades = append(result.Decades, row)
	}
	return result
}
