// matrix/test_helpers_test.go
// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsym/matrix"
	"github.com/katalvlaran/lvsym/sparsity"
)

// tol is the floating-point tolerance shared by the numeric assertions.
const tol = 1e-12

// mustFromDense builds a Real matrix from row-major rows, failing the test
// on ragged input.
func mustFromDense(t *testing.T, rows [][]matrix.Real) *matrix.Sparse[matrix.Real] {
	t.Helper()
	x, err := matrix.FromDense(rows)
	if err != nil {
		t.Fatalf("FromDense(%v): %v", rows, err)
	}

	return x
}

// mustFromCCS builds a Real matrix from raw CCS arrays, failing the test
// when the pattern or the data length is invalid.
func mustFromCCS(t *testing.T, nrow, ncol int, colind, row []int, data []matrix.Real) *matrix.Sparse[matrix.Real] {
	t.Helper()
	sp, err := sparsity.FromCCS(nrow, ncol, colind, row)
	if err != nil {
		t.Fatalf("FromCCS(%d,%d,%v,%v): %v", nrow, ncol, colind, row, err)
	}
	x, err := matrix.FromPattern(sp, data)
	if err != nil {
		t.Fatalf("FromPattern: %v", err)
	}

	return x
}

// mustAt reads position (i, j), failing the test on a range error.
func mustAt[T matrix.Scalar[T]](t *testing.T, x *matrix.Sparse[T], i, j int) T {
	t.Helper()
	v, err := x.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// mustMul multiplies two Real matrices, failing the test on non-conforming
// shapes.
func mustMul(t *testing.T, x, y *matrix.Sparse[matrix.Real]) *matrix.Sparse[matrix.Real] {
	t.Helper()
	z, err := x.Mul(y)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return z
}

// requireAllClose checks every dense position of got against want within
// eps, structural zeros reading as 0.
func requireAllClose(t *testing.T, want [][]float64, got *matrix.Sparse[matrix.Real], eps float64) {
	t.Helper()
	nrow, ncol := got.Dims()
	if nrow != len(want) {
		t.Fatalf("got %d rows, want %d", nrow, len(want))
	}
	for i := 0; i < nrow; i++ {
		if ncol != len(want[i]) {
			t.Fatalf("got %d columns, want %d", ncol, len(want[i]))
		}
		for j := 0; j < ncol; j++ {
			g := float64(mustAt(t, got, i, j))
			if math.Abs(g-want[i][j]) > eps {
				t.Fatalf("entry (%d,%d) = %v, want %v", i, j, g, want[i][j])
			}
		}
	}
}
