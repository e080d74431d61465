// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer the structural mutations used by elimination (SwapRows, SwapCols).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Data: O(r*c);
//     Row: O(c); Col: O(r); SwapRows: O(c); SwapCols: O(r).

package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag for Dense.Row
	ctxCol      = "Col"      // method tag for Dense.Col
	ctxSwapRows = "SwapRows" // method tag for Dense.SwapRows
	ctxSwapCols = "SwapCols" // method tag for Dense.SwapCols
)

// ---------- Formatting literals ----------
const (
	_fmtCell   = "%8.4f" // fixed width 8, four decimals, right-aligned
	_fmtSep    = " "     // single space between cells
	_fmtRowEnd = "\n"    // one row per line
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(a,b): <err>"; the sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, a, b, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The invariant len(data) == r*c holds for every value produced by this
// package; no operation changes r or c of an existing Dense.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense. Zero rows or columns are legal and yield
//     an empty buffer; only negative extents are rejected.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (negative extent).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// make() zero-fills deterministically; len may be 0.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// newDenseUnchecked allocates an r×c zero matrix for internal callers that
// already derived the shape from valid operands.
func newDenseUnchecked(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods wrap with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when either index is negative or >= its extent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the copy never affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Data returns a copy of the row-major buffer (length r*c).
// Complexity: O(r*c).
func (m *Dense) Data() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Row returns a copy of row i (length Cols()).
// MAIN DESCRIPTION:
//   - Reads the contiguous slice data[i*c : i*c+c].
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j (length Rows()).
// MAIN DESCRIPTION:
//   - Walks the buffer from offset j with stride Cols().
//
// Errors:
//   - ErrOutOfRange when j is outside [0, Cols()).
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j] // stride == cols
	}

	return out, nil
}

// SwapRows exchanges rows a and b in place.
// MAIN DESCRIPTION:
//   - No-op when a == b; otherwise swaps the two c-length runs of the buffer.
//
// Errors:
//   - ErrOutOfRange when a or b is outside [0, Rows()).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(a, b int) error {
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return denseErrorf(ctxSwapRows, a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	m.swapRows(a, b)

	return nil
}

// swapRows is the unchecked kernel shared with elimination.
func (m *Dense) swapRows(a, b int) {
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// SwapCols exchanges columns a and b in place.
// MAIN DESCRIPTION:
//   - No-op when a == b; otherwise walks every row and swaps the entries at
//     offsets a and b (stride Cols()).
//
// Errors:
//   - ErrOutOfRange when a or b is outside [0, Cols()).
//
// Complexity:
//   - Time O(r), Space O(1).
func (m *Dense) SwapCols(a, b int) error {
	if a < 0 || a >= m.c || b < 0 || b >= m.c {
		return denseErrorf(ctxSwapCols, a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+a], m.data[base+b] = m.data[base+b], m.data[base+a]
	}

	return nil
}

// Equal reports whether a and b have the same shape and bitwise-equal
// elements (exact float comparison, no tolerance). Two nil matrices are
// equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}

	return floats.Equal(a.data, b.data)
}

// String renders the matrix one row per line, every element as a
// right-aligned fixed-width number with four decimals, separated by single
// spaces. Empty matrices render as "".
//
// Example (2×2):
//
//	  1.0000   2.0000
//	  3.0000   4.0000
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowEnd)
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, _fmtCell, m.data[base+j])
		}
	}

	return b.String()
}
