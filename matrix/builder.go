// SPDX-License-Identifier: MIT
// Package matrix - constructors beyond the zero matrix.
//
// Purpose:
//   - NewFromRows: literal construction from equal-length rows.
//   - NewColumn: wrap a vector as an n×1 column matrix.
//   - NewRandom: uniform [0,1) fill from an injected RandSource.
//
// Contracts:
//   - Inputs are copied; the result never aliases caller slices.
//   - Ragged rows are reported (ErrRaggedRows), never truncated or padded.

package matrix

import "fmt"

const (
	ctxFromRows = "NewFromRows"
	ctxRandom   = "NewRandom"
)

// NewFromRows builds a matrix from an ordered sequence of equal-length rows.
// MAIN DESCRIPTION:
//   - Row i of the input becomes row i of the result; data is copied.
//
// Implementation:
//   - Stage 1: take the column count from rows[0]; verify every row matches.
//   - Stage 2: allocate and copy row by row.
//
// Behavior highlights:
//   - An empty (or nil) input yields a legal 0×0 matrix.
//   - Rows of length zero yield an r×0 matrix.
//
// Errors:
//   - ErrRaggedRows when any row length differs from rows[0].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return newDenseUnchecked(0, 0), nil
	}
	c := len(rows[0])
	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
	}

	m := newDenseUnchecked(r, c)
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewColumn wraps values as a len(values)×1 column vector (copied).
// Complexity: O(n).
func NewColumn(values []float64) *Dense {
	m := newDenseUnchecked(len(values), 1)
	copy(m.data, values)

	return m
}

// NewRandom creates an r×c matrix of independent uniform draws in [0, 1).
// MAIN DESCRIPTION:
//   - Fills the buffer in row-major order from src; a nil src falls back to
//     DefaultRandSource (package-level math/rand).
//
// Determinism:
//   - Reproducible when src is a seeded *rand.Rand; draw order is row-major.
//
// Errors:
//   - ErrInvalidDimensions on negative extents.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRandom(rows, cols int, src RandSource) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRandom, err)
	}
	if src == nil {
		src = DefaultRandSource
	}
	for i := range m.data {
		m.data[i] = src.Float64()
	}

	return m, nil
}
