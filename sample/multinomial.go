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

package sample

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Multinomial samples how n draws fall into K categories, where each
// draw independently picks category i with probability proportional
// to the i-th weight. The number of categories K is fixed when the
// sampler is created and every sample has exactly K entries summing
// to n.
type Multinomial struct {
	// number of draws
	n uint64
	// normalized weights, non-negative and summing to 1 up to rounding
	weights []float64
}

var _ Sampler = (*Multinomial)(nil)

// NewMultinomial returns an instance of Multinomial sampler distributing
// n draws according to weights. Weights need not sum to 1, they are
// normalized into a copy and the caller's slice is left untouched.
//
// It returns NegativeOrNaN, AllZero or Overflow, checked in this order,
// if the weights cannot be normalized. It panics if weights is empty.
func NewMultinomial(n uint64, weights []float64) (*Multinomial, error) {
	if len(weights) == 0 {
		panic("sample: multinomial distribution needs at least one category")
	}

	normalized, err := normalize(weights)
	if err != nil {
		return nil, err
	}

	return &Multinomial{
		n:       n,
		weights: normalized,
	}, nil
}

func normalize(weights []float64) ([]float64, error) {
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, NegativeOrNaN
		}
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return nil, AllZero
	}
	if math.IsInf(sum, 1) {
		return nil, Overflow
	}

	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / sum
	}

	return normalized, nil
}

// Sample draws a vector of K counts summing to n.
//
// Categories are visited in order and category i receives a binomial
// share of the draws left over by categories 0..i-1, with success
// probability weights[i] relative to the probability mass not yet
// spent. The last category is never drawn, it takes all remaining
// draws. Sampling stops early once no draws or no probability mass
// remain; the skipped categories get 0 and consume no randomness.
func (m *Multinomial) Sample(src rand.Source) []uint64 {
	k := len(m.weights)
	counts := make([]uint64, k)

	remainingP := 1.0
	remainingN := m.n

	for i := 0; i < k-1; i++ {
		// Rounding can exhaust the mass before the last category.
		if remainingP <= 0 {
			break
		}

		// The ratio can exceed 1 by rounding error.
		p := math.Min(m.weights[i]/remainingP, 1)
		counts[i] = mustBinomial(remainingN, p).Sample(src)

		// counts[i] <= remainingN, so this never wraps
		remainingN -= counts[i]
		if remainingN == 0 {
			break
		}
		remainingP -= m.weights[i]
	}

	counts[k-1] = remainingN

	return counts
}

// mustBinomial panics if p is rejected, which can only happen if the
// clamping in Sample is broken.
func mustBinomial(trials uint64, p float64) *Binomial {
	b, err := NewBinomial(trials, p)
	if err != nil {
		panic(fmt.Sprintf("sample: conditional probability out of range: %v", err))
	}
	return b
}

// N returns the number of draws per sample.
func (m *Multinomial) N() uint64 {
	return m.n
}

// K returns the number of categories.
func (m *Multinomial) K() int {
	return len(m.weights)
}

// Weights returns a copy of the normalized weights.
func (m *Multinomial) Weights() []float64 {
	ret := make([]float64, len(m.weights))
	copy(ret, m.weights)
	return ret
}

// Clone returns an independent copy of m.
func (m *Multinomial) Clone() *Multinomial {
	return &Multinomial{
		n:       m.n,
		weights: m.Weights(),
	}
}

// Equal reports whether m and other have the same number of draws and
// bit-identical normalized weights.
func (m *Multinomial) Equal(other *Multinomial) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n || len(m.weights) != len(other.weights) {
		return false
	}
	for i := range m.weights {
		if math.Float64bits(m.weights[i]) != math.Float64bits(other.weights[i]) {
			return false
		}
	}

	return true
}

// String returns a human readable description of m.
func (m *Multinomial) String() string {
	return fmt.Sprintf("Multinomial(n=%d, weights=%v)", m.n, m.weights)
}
