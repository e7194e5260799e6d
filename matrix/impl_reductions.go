// SPDX-License-Identifier: MIT

// Package matrix: reductions and norms. The directional sums are matrix
// products against a dense ones vector, so they inherit the product's
// structural-zero propagation: a row or column with no structural entries
// sums to a structural zero, not an arithmetic one.

package matrix

import "fmt"

// SumCols collapses the columns: the result is an nrow×1 vector whose i-th
// entry sums row i. Rows without structural entries stay structurally
// zero.
func (x *Sparse[T]) SumCols() *Sparse[T] {
	ones, err := Ones[T](x.sp.NumCols(), 1)
	if err != nil {
		panic(err) // receiver dims are valid
	}
	ret, err := x.Mul(ones)
	if err != nil {
		panic(err) // ncol×1 always conforms
	}

	return ret
}

// SumRows collapses the rows: the result is a 1×ncol vector whose j-th
// entry sums column j. Columns without structural entries stay
// structurally zero.
func (x *Sparse[T]) SumRows() *Sparse[T] {
	ones, err := Ones[T](1, x.sp.NumRows())
	if err != nil {
		panic(err) // receiver dims are valid
	}
	ret, err := ones.Mul(x)
	if err != nil {
		panic(err) // 1×nrow always conforms
	}

	return ret
}

// SumAll sums every entry into a 1×1 matrix by collapsing the columns and
// then the rows, so it inherits the product's structural-zero propagation:
// a matrix without structural entries sums to the structurally zero 1×1,
// not an arithmetic zero.
func (x *Sparse[T]) SumAll() *Sparse[T] {
	return x.SumCols().SumRows()
}

// InnerProd returns <x, y>, the sum of the element-wise product. Both
// operands must have the same shape; vectors are the common case but any
// shape works.
//
// Errors:
//   - ErrDimensionMismatch when the shapes differ.
func (x *Sparse[T]) InnerProd(y *Sparse[T]) (T, error) {
	var zero T
	if err := validateSameShape("InnerProd", x, y); err != nil {
		return zero, err
	}
	prod, err := x.ElemMul(y)
	if err != nil {
		return zero, fmt.Errorf("InnerProd: %w", err)
	}

	return prod.SumAll().ToScalar()
}

// OuterProd returns x·yᵀ.
//
// Errors:
//   - ErrDimensionMismatch when the column counts differ.
func (x *Sparse[T]) OuterProd(y *Sparse[T]) (*Sparse[T], error) {
	ret, err := x.Mul(y.Transpose())
	if err != nil {
		return nil, fmt.Errorf("OuterProd: %w", err)
	}

	return ret, nil
}

// Norm1 returns the sum of absolute values over all entries (the vector
// 1-norm applied element-wise, not the induced operator norm).
func (x *Sparse[T]) Norm1() T {
	v, err := x.Abs().SumAll().ToScalar()
	if err != nil {
		panic(err) // SumAll always yields 1×1
	}

	return v
}

// NormF returns the Frobenius norm, the square root of the sum of squared
// entries.
func (x *Sparse[T]) NormF() T {
	sq, err := x.ElemMul(x)
	if err != nil {
		panic(err) // same shape by construction
	}
	v, err := sq.SumAll().ToScalar()
	if err != nil {
		panic(err) // SumAll always yields 1×1
	}

	return v.Sqrt()
}

// Norm2 returns the Euclidean norm of a vector; it coincides with NormF
// but guards the shape, since the 2-norm of a general matrix would be a
// spectral quantity this package does not compute.
//
// Errors:
//   - ErrNotVector when the matrix is neither a row nor a column.
func (x *Sparse[T]) Norm2() (T, error) {
	var zero T
	if !x.sp.IsVector() {
		return zero, fmt.Errorf("Norm2: %dx%d: %w", x.sp.NumRows(), x.sp.NumCols(), ErrNotVector)
	}

	return x.NormF(), nil
}

// NormInf returns the largest absolute value over all entries. Structural
// zeros cannot win: the fold starts from the scalar zero.
func (x *Sparse[T]) NormInf() T {
	s := zeroOf[T]()
	for k := range x.data {
		s = s.Max(x.data[k].Abs())
	}

	return s
}

// Polyval evaluates the polynomial with the given coefficients (highest
// degree first) element-wise over x, by Horner's scheme. A constant
// polynomial collapses to its 1×1 coefficient; with degree at least one
// the result is dense and shaped like x, since a polynomial with a
// constant term maps structural zeros to nonzero values.
//
// Errors:
//   - ErrBadShape when coeffs is empty.
func Polyval[T Scalar[T]](coeffs []T, x *Sparse[T]) (*Sparse[T], error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("Polyval: no coefficients: %w", ErrBadShape)
	}
	if len(coeffs) == 1 {
		return FromScalar(coeffs[0]), nil
	}

	dense := x.Densify()
	data := make([]T, len(dense.data))
	for k, xv := range dense.data {
		res := coeffs[0]
		for t := 1; t < len(coeffs); t++ {
			res = res.Mul(xv).Add(coeffs[t])
		}
		data[k] = res
	}

	return &Sparse[T]{sp: dense.sp, data: data}, nil
}
