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

package sample_test

import (
	"math"
	"testing"

	"github.com/fentec-project/gosample/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBinomial(t *testing.T) {
	for _, p := range []float64{-0.1, 1.0000001, math.NaN(), math.Inf(1)} {
		b, err := sample.NewBinomial(10, p)
		assert.Error(t, err, "probability %v should be rejected", p)
		assert.Nil(t, b)
	}

	for _, p := range []float64{0, 0.5, 1} {
		b, err := sample.NewBinomial(10, p)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), b.Trials())
		assert.Equal(t, p, b.P())
	}
}

func TestBinomial_Degenerate(t *testing.T) {
	src := sample.NewSeededSource(1)

	zero, err := sample.NewBinomial(1000, 0)
	require.NoError(t, err)
	one, err := sample.NewBinomial(1000, 1)
	require.NoError(t, err)
	empty, err := sample.NewBinomial(0, 0.5)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, uint64(0), zero.Sample(src))
		assert.Equal(t, uint64(1000), one.Sample(src))
		assert.Equal(t, uint64(0), empty.Sample(src))
	}
}

func TestBinomial_Sample(t *testing.T) {
	var tests = []struct {
		name   string
		trials uint64
		p      float64
	}{
		{
			name:   "direct",
			trials: 20,
			p:      0.3,
		},
		{
			name:   "direct high p",
			trials: 20,
			p:      0.8,
		},
		{
			name:   "poisson proposal",
			trials: 1000,
			p:      0.0005,
		},
		{
			name:   "cauchy proposal",
			trials: 100,
			p:      0.25,
		},
		{
			name:   "cauchy proposal high p",
			trials: 5000,
			p:      0.9,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := sample.NewBinomial(test.trials, test.p)
			require.NoError(t, err)
			src := sample.NewSplitMixSource(11)

			draws := 20000
			total := 0.0
			for i := 0; i < draws; i++ {
				x := b.Sample(src)
				assert.LessOrEqual(t, x, test.trials)
				total += float64(x)
			}

			mean := float64(test.trials) * test.p
			std := math.Sqrt(mean * (1 - test.p) / float64(draws))
			assert.InDelta(t, mean, total/float64(draws), 6*std+1e-9, "empirical mean is too far off")
		})
	}
}
