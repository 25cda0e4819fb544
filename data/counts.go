/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
	"strings"

	"github.com/fentec-project/gosample/sample"
	"github.com/pkg/errors"
)

// ErrOverflow is returned when a sum of counts does not fit in
// a uint64.
var ErrOverflow = errors.New("sum of counts overflows uint64")

// Counts wraps a slice of uint64 elements, one count per category.
type Counts []uint64

// NewCounts returns a new Counts instance.
func NewCounts(counts []uint64) Counts {
	return Counts(counts)
}

// NewRandomCounts returns a new Counts instance sampled
// by the provided sample.Sampler from the source src.
func NewRandomCounts(sampler sample.Sampler, src rand.Source) Counts {
	return NewCounts(sampler.Sample(src))
}

// Copy creates a new Counts with the same values
// of the entries.
func (c Counts) Copy() Counts {
	newCounts := make(Counts, len(c))
	copy(newCounts, c)

	return newCounts
}

// Sum returns the sum of all entries of c.
// It returns ErrOverflow if the sum does not fit in a uint64.
func (c Counts) Sum() (uint64, error) {
	sum := uint64(0)
	for _, ci := range c {
		var carry uint64
		sum, carry = bits.Add64(sum, ci, 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
	}

	return sum, nil
}

// Frequencies returns the share of the total that falls into each
// category. It returns an error if all entries are 0.
func (c Counts) Frequencies() ([]float64, error) {
	return frequencies(c.totals())
}

// totals converts the entries of c to float64, which holds any
// sum of counts without wrapping.
func (c Counts) totals() []float64 {
	t := make([]float64, len(c))
	for i, ci := range c {
		t[i] = float64(ci)
	}
	return t
}

func frequencies(totals []float64) ([]float64, error) {
	sum := 0.0
	for _, t := range totals {
		sum += t
	}
	if sum == 0 {
		return nil, errors.New("frequencies of empty counts are undefined")
	}

	freq := make([]float64, len(totals))
	for i, t := range totals {
		freq[i] = t / sum
	}

	return freq, nil
}

// Add adds counts c and other entry-wise.
// The result is returned in a new Counts. It returns ErrOverflow
// if an entry of the result does not fit in a uint64.
func (c Counts) Add(other Counts) (Counts, error) {
	if len(c) != len(other) {
		return nil, ErrDimensions
	}

	sum := make(Counts, len(c))
	for i := range c {
		var carry uint64
		sum[i], carry = bits.Add64(c[i], other[i], 0)
		if carry != 0 {
			return nil, errors.Wrapf(ErrOverflow, "category %d", i)
		}
	}

	return sum, nil
}

// String produces a string representation of counts.
func (c Counts) String() string {
	vals := make([]string, len(c))
	for i, ci := range c {
		vals[i] = fmt.Sprint(ci)
	}
	return strings.Join(vals, " ")
}
