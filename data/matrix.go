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
	"math/rand/v2"

	"github.com/fentec-project/gosample/sample"
	"github.com/pkg/errors"
)

// ErrDimensions is returned when counts of different lengths are
// combined.
var ErrDimensions = errors.New("dimensions mismatch")

// Matrix wraps a slice of Counts elements. Each row holds one
// sample, so the j-th column collects the counts of category j.
type Matrix []Counts

// NewMatrix accepts a slice of Counts elements and
// returns a new Matrix instance.
// It returns error if not all the rows have the same number of elements.
func NewMatrix(rows []Counts) (Matrix, error) {
	l := -1
	newRows := make([]Counts, len(rows))

	if len(rows) > 0 {
		l = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != l {
			return nil, errors.Wrap(ErrDimensions, "all rows should be of the same length")
		}
		newRows[i] = NewCounts(r)
	}

	return Matrix(newRows), nil
}

// NewRandomMatrix returns a new Matrix instance with the given
// number of rows, each an independent sample of the provided
// sample.Sampler drawn from src.
func NewRandomMatrix(rows int, sampler sample.Sampler, src rand.Source) Matrix {
	mat := make([]Counts, rows)

	for i := 0; i < rows; i++ {
		mat[i] = NewRandomCounts(sampler, src)
	}

	return mat
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// GetCol returns i-th column of matrix m as Counts.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Counts, error) {
	if i >= m.Cols() {
		return nil, errors.Errorf("column index %d exceeds matrix dimensions", i)
	}

	column := make(Counts, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return column, nil
}

// ColumnSums returns the total count of every category over
// all rows of m. It returns ErrOverflow if a total does not fit
// in a uint64.
func (m Matrix) ColumnSums() (Counts, error) {
	sums := make(Counts, m.Cols())
	for _, row := range m {
		var err error
		sums, err = sums.Add(row)
		if err != nil {
			return nil, err
		}
	}

	return sums, nil
}

// columnTotals sums the columns of m in float64, so that large
// counts lose precision instead of wrapping.
func (m Matrix) columnTotals() ([]float64, error) {
	totals := make([]float64, m.Cols())
	for _, row := range m {
		if len(row) != len(totals) {
			return nil, ErrDimensions
		}
		for j, t := range row.totals() {
			totals[j] += t
		}
	}

	return totals, nil
}

// ColumnMeans returns the mean count of every category over
// all rows of m.
func (m Matrix) ColumnMeans() ([]float64, error) {
	if m.Rows() == 0 {
		return nil, errors.New("matrix has no rows")
	}
	totals, err := m.columnTotals()
	if err != nil {
		return nil, err
	}

	means := make([]float64, len(totals))
	for i, t := range totals {
		means[i] = t / float64(m.Rows())
	}

	return means, nil
}

// Frequencies returns the share of all counts in m that falls into
// each category.
func (m Matrix) Frequencies() ([]float64, error) {
	totals, err := m.columnTotals()
	if err != nil {
		return nil, err
	}

	return frequencies(totals)
}
