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
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Binomial samples the number of successes in a fixed number of
// independent trials, each succeeding with the same probability.
type Binomial struct {
	trials uint64
	p      float64
}

// NewBinomial returns an instance of Binomial sampler.
// It returns an error if p is not a probability in [0, 1].
func NewBinomial(trials uint64, p float64) (*Binomial, error) {
	if !(p >= 0 && p <= 1) {
		return nil, errors.Errorf("binomial success probability %v is not in [0, 1]", p)
	}

	return &Binomial{
		trials: trials,
		p:      p,
	}, nil
}

// Trials returns the number of trials of b.
func (b *Binomial) Trials() uint64 {
	return b.trials
}

// P returns the success probability of b.
func (b *Binomial) P() float64 {
	return b.p
}

// Sample draws the number of successes, a value in [0, trials].
// Degenerate distributions (no trials, p = 0 or p = 1) consume no
// randomness from src.
func (b *Binomial) Sample(src rand.Source) uint64 {
	switch {
	case b.trials == 0 || b.p == 0:
		return 0
	case b.p == 1:
		return b.trials
	}

	d := distuv.Binomial{
		N:   float64(b.trials),
		P:   b.p,
		Src: src,
	}
	x := math.Round(d.Rand())

	// float64 cannot hold every trial count above 2^53, so the
	// rounded draw may land just outside the valid range.
	if x <= 0 {
		return 0
	}
	if x >= float64(b.trials) {
		return b.trials
	}
	return uint64(x)
}
