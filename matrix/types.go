// SPDX-License-Identifier: MIT

// Package matrix: core types. The Scalar contract is the entire coupling
// surface between the container and its element type; everything the linear
// algebra needs from T is listed here and nothing else.

package matrix

import (
	"github.com/katalvlaran/lvsym/expr"
	"github.com/katalvlaran/lvsym/sparsity"
)

// Scalar is the capability set a matrix element must provide. It is
// satisfied by Real (plain float64 arithmetic) and by expr.Expr (symbolic
// arithmetic with construction-time simplification), so one generic
// implementation serves both numeric and symbolic matrices.
//
// Semantics required of an implementation:
//   - Zero and One return the additive and multiplicative identities; both
//     must be usable on the zero value of T.
//   - IsZero and IsOne report whether a value is KNOWN to be the identity.
//     A conservative false is always safe: the container uses these only to
//     skip work and to drop structurally present zeros in Sparsify.
//   - The comparisons (Lt, Le, Eq, Ne) return indicator values of T itself,
//     one for true and zero for false, possibly unresolved until evaluation
//     for symbolic types.
//   - Truth decides a branch: it reports whether a value is known nonzero,
//     and fails for values whose truth is not yet decidable.
type Scalar[T any] interface {
	// Identity elements.
	Zero() T
	One() T

	// Ring arithmetic.
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T

	// Pointwise functions the direct methods rely on.
	Abs() T
	Sqrt() T
	CopySign(T) T
	Min(T) T
	Max(T) T

	// Indicator-valued comparisons.
	Lt(T) T
	Le(T) T
	Eq(T) T
	Ne(T) T

	// Classification.
	IsZero() bool
	IsOne() bool
	IsConstant() bool
	Truth() (bool, error)
}

// Sparse is an nrow×ncol matrix in compressed column storage: an immutable
// structural pattern plus one value of T per structural nonzero, in the
// pattern's column-major nonzero order. Positions outside the pattern read
// as the scalar zero.
//
// The pattern is shared freely between matrices (patterns never mutate);
// the data slice is owned by the matrix. Set is the only mutating method.
type Sparse[T Scalar[T]] struct {
	sp   *sparsity.Pattern // structural nonzeros, never nil
	data []T               // data[k] belongs to the pattern's k-th nonzero
}

// Compile-time checks that both intended element types satisfy the
// contract.
var (
	_ Scalar[Real]      = Real(0)
	_ Scalar[expr.Expr] = expr.Expr{}
)

// newFromCCS wraps CCS arrays the package itself built column-major; a
// validation failure here is a bug, not an input error, hence the panic.
func newFromCCS[T Scalar[T]](nrow, ncol int, colind, row []int, data []T) *Sparse[T] {
	sp, err := sparsity.FromCCS(nrow, ncol, colind, row)
	if err != nil {
		panic(err)
	}

	return &Sparse[T]{sp: sp, data: data}
}

// zeroOf returns the additive identity of T.
func zeroOf[T Scalar[T]]() T {
	var z T

	return z.Zero()
}

// oneOf returns the multiplicative identity of T.
func oneOf[T Scalar[T]]() T {
	var z T

	return z.One()
}
