// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Bridge *matrix.Dense into gonum/mat for oracle comparisons.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// oracleTol bounds the disagreement with gonum for non-integer fixtures.
const oracleTol = 1e-9

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows")

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandomDense returns an r×c matrix of reproducible U(-1,1) values by seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandom(r, c, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	// shift [0,1) to [-1,1) so signs and pivoting are exercised
	m, err = matrix.Map(m, func(v float64) float64 { return v*2 - 1 })
	require.NoError(t, err)

	return m
}

// CompareExact asserts m matches want exactly, shape included.
func CompareExact(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.True(t, matrix.Equal(MustFromRows(t, want), m), "want %v\ngot\n%s", want, m)
}

// toGonum copies m into a gonum *mat.Dense (r,c must be > 0).
func toGonum(m *matrix.Dense) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Data())
}
