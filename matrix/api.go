// SPDX-License-Identifier: MIT

// Package matrix: constructors. Everything here allocates a fresh matrix;
// data slices passed in are copied, patterns are shared (they are
// immutable).

package matrix

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvsym/expr"
	"github.com/katalvlaran/lvsym/sparsity"
)

// panicNilPattern reports a nil *sparsity.Pattern handed to a constructor;
// a programmer error, hence a panic rather than an error return.
const panicNilPattern = "matrix: nil sparsity pattern"

// New returns a matrix over the given pattern with every structural
// position holding the scalar zero.
//
// Panics:
//   - panicNilPattern when sp is nil.
func New[T Scalar[T]](sp *sparsity.Pattern) *Sparse[T] {
	if sp == nil {
		panic(panicNilPattern)
	}
	data := make([]T, sp.Nonzeros())
	zero := zeroOf[T]()
	for k := range data {
		data[k] = zero
	}

	return &Sparse[T]{sp: sp, data: data}
}

// FromPattern returns a matrix over the given pattern carrying the given
// values, one per structural nonzero in column-major nonzero order. The
// data slice is copied.
//
// Errors:
//   - ErrNonzeroMismatch when len(data) differs from sp.Nonzeros().
//
// Panics:
//   - panicNilPattern when sp is nil.
func FromPattern[T Scalar[T]](sp *sparsity.Pattern, data []T) (*Sparse[T], error) {
	if sp == nil {
		panic(panicNilPattern)
	}
	if len(data) != sp.Nonzeros() {
		return nil, fmt.Errorf("FromPattern: %d values for %d nonzeros: %w",
			len(data), sp.Nonzeros(), ErrNonzeroMismatch)
	}

	return &Sparse[T]{sp: sp, data: append([]T(nil), data...)}, nil
}

// Zeros returns the fully sparse nrow×ncol matrix: no structural nonzeros
// at all, every position reads as the scalar zero.
//
// Errors:
//   - ErrBadShape on negative dimensions.
func Zeros[T Scalar[T]](nrow, ncol int) (*Sparse[T], error) {
	if err := validateShape("Zeros", nrow, ncol); err != nil {
		return nil, err
	}
	sp, err := sparsity.Empty(nrow, ncol)
	if err != nil {
		return nil, fmt.Errorf("Zeros: %w", err)
	}

	return New[T](sp), nil
}

// NewDense returns the dense nrow×ncol matrix with every position
// structural and holding the scalar zero.
//
// Errors:
//   - ErrBadShape on negative dimensions.
func NewDense[T Scalar[T]](nrow, ncol int) (*Sparse[T], error) {
	if err := validateShape("NewDense", nrow, ncol); err != nil {
		return nil, err
	}
	sp, err := sparsity.Dense(nrow, ncol)
	if err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}

	return New[T](sp), nil
}

// Ones returns the dense nrow×ncol matrix with every position holding the
// scalar one.
//
// Errors:
//   - ErrBadShape on negative dimensions.
func Ones[T Scalar[T]](nrow, ncol int) (*Sparse[T], error) {
	ret, err := NewDense[T](nrow, ncol)
	if err != nil {
		return nil, fmt.Errorf("Ones: %w", err)
	}
	one := oneOf[T]()
	for k := range ret.data {
		ret.data[k] = one
	}

	return ret, nil
}

// Identity returns the n×n identity: a diagonal pattern carrying the
// scalar one on every diagonal position.
//
// Errors:
//   - ErrBadShape when n is negative.
func Identity[T Scalar[T]](n int) (*Sparse[T], error) {
	if err := validateShape("Identity", n, n); err != nil {
		return nil, err
	}
	sp, err := sparsity.Diagonal(n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	ret := New[T](sp)
	one := oneOf[T]()
	for k := range ret.data {
		ret.data[k] = one
	}

	return ret, nil
}

// FromScalar wraps a single value as a dense 1×1 matrix.
func FromScalar[T Scalar[T]](v T) *Sparse[T] {
	return &Sparse[T]{sp: sparsity.Scalar(), data: []T{v}}
}

// FromDense builds a matrix from row-major rows, keeping EVERY position
// structural, zeros included. Use Sparsify afterwards to drop the entries
// known to be zero.
//
// Errors:
//   - ErrBadShape when the rows are ragged.
func FromDense[T Scalar[T]](rows [][]T) (*Sparse[T], error) {
	nrow := len(rows)
	ncol := 0
	if nrow > 0 {
		ncol = len(rows[0])
	}
	for i := range rows {
		if len(rows[i]) != ncol {
			return nil, fmt.Errorf("FromDense: row %d has %d entries, want %d: %w",
				i, len(rows[i]), ncol, ErrBadShape)
		}
	}

	sp, err := sparsity.Dense(nrow, ncol)
	if err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}
	data := make([]T, 0, nrow*ncol)
	for j := 0; j < ncol; j++ {
		for i := 0; i < nrow; i++ {
			data = append(data, rows[i][j])
		}
	}

	return &Sparse[T]{sp: sp, data: data}, nil
}

// Sym returns a dense nrow×ncol matrix of fresh free symbols named
// name_i_j after their row and column. Every call mints new symbols, even
// under the same name.
//
// Errors:
//   - ErrBadShape on negative dimensions.
func Sym(name string, nrow, ncol int) (*Sparse[expr.Expr], error) {
	ret, err := NewDense[expr.Expr](nrow, ncol)
	if err != nil {
		return nil, fmt.Errorf("Sym: %w", err)
	}
	k := 0
	for j := 0; j < ncol; j++ {
		for i := 0; i < nrow; i++ {
			ret.data[k] = expr.Var(name + "_" + strconv.Itoa(i) + "_" + strconv.Itoa(j))
			k++
		}
	}

	return ret, nil
}
