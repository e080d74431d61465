package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// ExampleMul multiplies two literal 2×2 matrices.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p.Data())

	_, err = matrix.Mul(a, matrix.NewColumn([]float64{1, 2, 3}))
	fmt.Println(err)
	// Output:
	// [19 22 43 50]
	// Mul: ValidateMulCompatible: 2x2 * 3x1: matrix: dimension mismatch
}

// ExampleDet computes a determinant without touching the input.
func ExampleDet() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})

	det, err := matrix.Det(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("det=%.4f\n", det)
	fmt.Println(m)
	// Output:
	// det=-2.0000
	//   1.0000   2.0000
	//   3.0000   4.0000
}

// ExampleDense_Col reads a column at stride Cols().
func ExampleDense_Col() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	col, _ := m.Col(1)
	fmt.Println(col)
	// Output:
	// [2 5]
}
