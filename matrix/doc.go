// Package matrix offers a dense, row-major float64 matrix and the
// linear-algebra kernels a small neural network needs.
//
// The matrix package provides:
//
//   - Dense: a flat []float64 buffer plus (rows, cols) with element (i,j) at
//     i*cols + j. Zero-sized shapes are legal.
//   - Constructors: NewDense (zeros), NewRandom (uniform [0,1) from an
//     injected RandSource), NewFromRows (literal rows), NewColumn (vector).
//   - Kernels returning fresh results: Add, Sub, Hadamard, Mul, Transpose,
//     Scale, Map.
//   - In-place structure: SwapRows, SwapCols, ForwardEliminate and
//     Determinant (partial pivoting, PivotTolerance = 1e-12).
//
// Every fallible call returns a sentinel error (ErrDimensionMismatch,
// ErrOutOfRange, ErrNonSquare, ...) wrapped with the operation name; match
// with errors.Is. Nothing panics on user input.
//
// A Dense is not safe for concurrent mutation; binary kernels only read
// their operands.
//
// See the examples in this package and nn for usage patterns.
package matrix
