// SPDX-License-Identifier: MIT
// Package matrix - forward Gaussian elimination and the determinant built on it.
//
// Purpose:
//   - Reduce a matrix to row-echelon form in place with partial pivoting.
//   - Derive the determinant from the reduced diagonal.
//
// Policy:
//   - Columns whose best pivot magnitude is below PivotTolerance are skipped;
//     this is not an error. A skipped column on a square matrix leaves a zero
//     (or sub-tolerance) entry on the diagonal, so the determinant collapses
//     to ~0 as expected for singular input.

package matrix

import "math"

// ForwardEliminate reduces m to row-echelon form in place and returns the
// number of row swaps performed (each swap flips the determinant sign).
// MAIN DESCRIPTION:
//   - Partial pivoting over pivot row h and pivot column k, both from 0.
//
// Implementation:
//   - Stage 1: among rows h..r-1 pick the FIRST row holding max |m[i,k]|.
//   - Stage 2: if that magnitude < PivotTolerance, advance k only and retry.
//   - Stage 3: swap row h with the pivot row; for each row i below h,
//     factor = m[i,k]/pivot, m[i,k] = 0 exactly, and
//     m[i,j] -= factor*m[h,j] for j = k+1..c-1.
//   - Stage 4: advance h and k; stop when h == r or k == c.
//
// Behavior highlights:
//   - Shape (r, c) never changes; only the buffer is rewritten.
//   - Works for any shape, including empty and rectangular matrices.
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(1).
func (m *Dense) ForwardEliminate() int {
	rows, cols := m.r, m.c
	var (
		h, k, i, j   int     // pivot row, pivot column, iterators
		iMax         int     // selected pivot row
		best, mag    float64 // best magnitude in column k, candidate magnitude
		pivot, f     float64 // pivot value, elimination factor
		baseH, baseI int     // row offsets
		swaps        int
	)
	for h < rows && k < cols {
		// Stage 1: first occurrence of the largest |m[i,k]| (strict > keeps the lowest index).
		iMax, best = h, math.Abs(m.data[h*cols+k])
		for i = h + 1; i < rows; i++ {
			mag = math.Abs(m.data[i*cols+k])
			if mag > best {
				iMax, best = i, mag
			}
		}

		// Stage 2: no usable pivot in this column.
		if best < PivotTolerance {
			k++
			continue
		}

		// Stage 3: bring the pivot row up and clear the column below it.
		if iMax != h {
			m.swapRows(h, iMax)
			swaps++
		}
		baseH = h * cols
		pivot = m.data[baseH+k]
		for i = h + 1; i < rows; i++ {
			baseI = i * cols
			f = m.data[baseI+k] / pivot
			m.data[baseI+k] = 0
			for j = k + 1; j < cols; j++ {
				m.data[baseI+j] -= m.data[baseH+j] * f
			}
		}

		// Stage 4
		h++
		k++
	}

	return swaps
}

// Determinant runs ForwardEliminate on m IN PLACE and returns the product of
// the reduced diagonal (stride Cols()+1), negated once per row swap.
// MAIN DESCRIPTION:
//   - m is left in row-echelon form; use Det to keep the input intact.
//
// Behavior highlights:
//   - A 0×0 matrix has determinant 1 (empty product).
//   - A singular matrix yields 0 (or a value within rounding of 0).
//
// Errors:
//   - ErrNonSquare when Rows() != Cols().
//
// Complexity:
//   - Time O(n³), Space O(1).
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	swaps := m.ForwardEliminate()
	det := 1.0
	for off := 0; off < len(m.data); off += m.c + 1 {
		det *= m.data[off]
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det, nil
}

// Det returns the determinant of m without modifying it (works on a clone).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) time, O(n²) space for the clone.
func Det(m *Dense) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.Clone().Determinant()
}
