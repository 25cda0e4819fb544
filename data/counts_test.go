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
	"math"
	"testing"

	"github.com/fentec-project/gosample/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	x := NewCounts([]uint64{1, 2, 3})
	y := NewCounts([]uint64{4, 0, 6})

	add, err := x.Add(y)
	require.NoError(t, err)
	assert.Equal(t, Counts{5, 2, 9}, add, "counts should add correctly")
	sum, err := x.Sum()
	require.NoError(t, err)
	assert.Equal(t, uint64(6), sum)
	assert.Equal(t, "1 2 3", x.String())

	_, err = x.Add(Counts{1})
	assert.ErrorIs(t, err, ErrDimensions)

	c := x.Copy()
	c[0] = 100
	assert.Equal(t, uint64(1), x[0], "copy should not share memory")

	freq, err := y.Frequencies()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.4, 0, 0.6}, freq)

	_, err = Counts{0, 0}.Frequencies()
	assert.Error(t, err)
}

func TestCounts_Overflow(t *testing.T) {
	large := Counts{1 << 63, 1 << 63}

	_, err := large.Sum()
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Counts{math.MaxUint64, 0}.Add(Counts{1, 0})
	assert.ErrorIs(t, err, ErrOverflow)

	freq, err := large.Frequencies()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, freq)
}

func TestNewRandomCounts(t *testing.T) {
	m, err := sample.NewMultinomial(30, []float64{1, 2, 3})
	require.NoError(t, err)

	c := NewRandomCounts(m, sample.NewSeededSource(1))
	assert.Len(t, c, 3)
	sum, err := c.Sum()
	require.NoError(t, err)
	assert.Equal(t, uint64(30), sum)
}
