// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over *Dense:
// element-wise addition, subtraction and product, matrix multiplication,
// transpose, scalar scaling and element mapping. All functions perform strict
// fail-fast validation, never mutate their operands and return a freshly
// allocated result.
//
// Notes:
//   - Flat-buffer kernels delegate to gonum/floats (AddTo, SubTo, MulTo,
//     ScaleTo, AddScaled); shapes are validated here before every call since
//     floats panics on length mismatch.
//   - All kernels use the central validators and wrap errors via matrixErrorf.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opHadamard    = "Hadamard"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMap         = "Map"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise validates a and b as same-shaped operands, allocates the
// result and runs kernel(dst, a, b) over the flat buffers.
// Shared by Add, Sub and Hadamard.
// Complexity: O(r*c) time and memory.
func elementwise(a, b *Dense, opTag string, kernel func(dst, s, t []float64) []float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDenseUnchecked(a.r, a.c)
	kernel(res.data, a.data, b.data) // deterministic 0..n-1

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat pass res[i] = a[i] + b[i].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (rows OR columns differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return elementwise(a, b, opAdd, floats.AddTo) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (rows OR columns differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return elementwise(a, b, opSub, floats.SubTo) }

// Hadamard computes the element-wise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Notes:
//   - Hadamard ≠ matrix multiplication; use Mul for A×B.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) { return elementwise(a, b, opHadamard, floats.MulTo) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop order: row i of C accumulates A[i,k] * (row k of B)
//     for k = 0..n-1, so every C[i,j] is summed in k order.
//
// Behavior highlights:
//   - Deterministic loop order; one allocation for C; no blocking or tiling.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newDenseUnchecked(aRows, bCols)
	if bCols == 0 {
		return res, nil
	}

	// da.data layout: i*aCols + k; db.data layout: k*bCols + j
	var i, k int
	var rowR []float64
	for i = 0; i < aRows; i++ {
		rowR = res.data[i*bCols : (i+1)*bCols]
		for k = 0; k < aCols; k++ {
			floats.AddScaled(rowR, a.data[i*aCols+k], b.data[k*bCols:(k+1)*bCols])
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// res[j,i] = m[i,j]; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := newDenseUnchecked(cols, rows) // dims flipped
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDenseUnchecked(m.r, m.c)
	floats.ScaleTo(res.data, alpha, m.data)

	return res, nil
}

// Map returns a new matrix of the same shape with every element passed
// through f, visited in row-major order.
//
// Errors:
//   - ErrNilMatrix (nil m), ErrNilFunc (nil f).
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func Map(m *Dense, f func(float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	if f == nil {
		return nil, matrixErrorf(opMap, ErrNilFunc)
	}
	res := newDenseUnchecked(m.r, m.c)
	for i, v := range m.data {
		res.data[i] = f(v)
	}

	return res, nil
}
