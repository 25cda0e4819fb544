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

package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/fentec-project/gosample/internal/config"
	"github.com/fentec-project/gosample/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cfg := &config.Config{
		N:       50,
		Weights: []float64{0.5, 0, 0.5},
		Samples: 20,
		Source:  config.SourceSplitMix,
		Seed:    1,
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		fields := strings.Fields(line)
		require.Len(t, fields, 3)
		total := uint64(0)
		for _, f := range fields {
			v, err := strconv.ParseUint(f, 10, 64)
			require.NoError(t, err)
			total += v
		}
		assert.Equal(t, uint64(50), total)
		assert.Equal(t, "0", fields[1])
	}

	var again bytes.Buffer
	require.NoError(t, run(cfg, &again))
	assert.Equal(t, out.String(), again.String(), "a fixed seed should reproduce the output")
}

func TestRun_LargeN(t *testing.T) {
	cfg := &config.Config{
		N:       1 << 63,
		Weights: []float64{1, 1},
		Samples: 2,
		Source:  config.SourceSplitMix,
		Seed:    1,
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		fields := strings.Fields(line)
		require.Len(t, fields, 2)
		a, err := strconv.ParseUint(fields[0], 10, 64)
		require.NoError(t, err)
		b, err := strconv.ParseUint(fields[1], 10, 64)
		require.NoError(t, err)
		assert.Equal(t, uint64(1<<63), a+b)
	}
}

func TestRun_NoDraws(t *testing.T) {
	cfg := &config.Config{
		N:       0,
		Weights: []float64{1, 2},
		Samples: 2,
		Source:  config.SourceCrypto,
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Equal(t, "0 0\n0 0\n", out.String())
}

func TestRun_InvalidWeights(t *testing.T) {
	cfg := &config.Config{
		N:       10,
		Weights: []float64{1, -1},
		Samples: 1,
		Source:  config.SourceCrypto,
	}

	var out bytes.Buffer
	err := run(cfg, &out)
	assert.True(t, errors.Is(err, sample.NegativeOrNaN))
	assert.Empty(t, out.String())
}
