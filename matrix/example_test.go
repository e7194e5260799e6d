package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvsym/matrix"
)

// ExampleSym builds a matrix of fresh symbols and feeds it to the linear
// algebra: the determinant of a symbolic 2×2 comes out as an expression,
// not a number.
func ExampleSym() {
	x, err := matrix.Sym("x", 2, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	det, err := x.Det()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(det)
	// Output:
	// ((x_0_0*x_1_1)-(x_0_1*x_1_0))
}

// ExampleSparse_Solve solves a lower-triangular system by substitution.
// The stored zero at (0,1) is pruned away before dispatch, revealing the
// triangular structure.
func ExampleSparse_Solve() {
	a, _ := matrix.FromDense([][]matrix.Real{
		{2, 0},
		{1, 3},
	})
	b, _ := matrix.FromDense([][]matrix.Real{{2}, {7}})

	x, err := a.Solve(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x)
	// Output:
	// [[1],
	//  [2]]
}

// ExampleSparse_String prints structural zeros as 00, keeping them apart
// from stored zero values.
func ExampleSparse_String() {
	x, _ := matrix.Zeros[matrix.Real](2, 2)
	_ = x.Set(0, 0, 1)
	_ = x.Set(1, 1, 0) // stored, hence structural

	fmt.Println(x)
	// Output:
	// [[1, 00],
	//  [00, 0]]
}

// ExampleSparse_Kron tiles the second operand over the structure of the
// first.
func ExampleSparse_Kron() {
	x, _ := matrix.FromDense([][]matrix.Real{{1, 2}})
	y, _ := matrix.FromDense([][]matrix.Real{{1}, {10}})

	fmt.Println(x.Kron(y))
	// Output:
	// [[1, 2],
	//  [10, 20]]
}
