// SPDX-License-Identifier: MIT

// Package matrix: bridges to gonum for numeric interoperability. Only Real
// matrices convert; symbolic values have no dense float representation.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum densifies a Real matrix into a gonum *mat.Dense, structural
// zeros becoming plain 0 entries.
//
// Errors:
//   - ErrBadShape when either dimension is zero; gonum dense matrices
//     cannot be empty.
func ToGonum(x *Sparse[Real]) (*mat.Dense, error) {
	nrow, ncol := x.Dims()
	if nrow == 0 || ncol == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", nrow, ncol, ErrBadShape)
	}

	ret := mat.NewDense(nrow, ncol, nil)
	ci, rows := x.sp.Colind(), x.sp.Row()
	for j := 0; j < ncol; j++ {
		for k := ci[j]; k < ci[j+1]; k++ {
			ret.Set(rows[k], j, float64(x.data[k]))
		}
	}

	return ret, nil
}

// FromGonum copies any gonum matrix into an all-structural Real matrix;
// use Sparsify afterwards to drop the zero entries.
func FromGonum(m mat.Matrix) *Sparse[Real] {
	nrow, ncol := m.Dims()
	ret, err := NewDense[Real](nrow, ncol)
	if err != nil {
		panic(err) // gonum dimensions are never negative
	}
	k := 0
	for j := 0; j < ncol; j++ {
		for i := 0; i < nrow; i++ {
			ret.data[k] = Real(m.At(i, j))
			k++
		}
	}

	return ret
}
