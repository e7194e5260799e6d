// SPDX-License-Identifier: MIT

// Package matrix: sentinel errors. Operations wrap these with call-site
// context via fmt.Errorf("...%w"), so callers should match with errors.Is.

package matrix

import "errors"

var (
	// ErrDimensionMismatch is returned when the operands of a binary
	// operation do not conform (element-wise shapes differ, or the inner
	// dimensions of a product disagree).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare is returned by operations defined only on square
	// matrices, such as Det, Trace, Inverse and Solve.
	ErrNonSquare = errors.New("matrix: matrix not square")

	// ErrOutOfRange is returned when a row or column index lies outside
	// the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned on negative dimensions and on argument
	// shapes an operation cannot accept.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonzeroMismatch is returned when a data slice does not carry
	// exactly one value per structural nonzero of the pattern.
	ErrNonzeroMismatch = errors.New("matrix: data length does not match pattern nonzeros")

	// ErrNotScalar is returned by ToScalar on matrices that are not 1x1.
	ErrNotScalar = errors.New("matrix: matrix is not 1x1")

	// ErrNotVector is returned by vector-only operations, such as Norm2,
	// when the operand is not a single row or column.
	ErrNotVector = errors.New("matrix: matrix is not a vector")

	// ErrBadPermutation is returned when a permutation slice is not a
	// bijection on the expected index range.
	ErrBadPermutation = errors.New("matrix: invalid permutation")

	// ErrBadOffsets is returned by the split operations when the offset
	// list is empty, does not start at zero, decreases, or overruns the
	// dimension being split.
	ErrBadOffsets = errors.New("matrix: invalid split offsets")

	// ErrPatternOverlap is returned by Unite when the operands share a
	// structural position, so ownership of the value would be ambiguous.
	ErrPatternOverlap = errors.New("matrix: sparsity patterns overlap")

	// ErrSingular is returned when a zero pivot or a zero determinant is
	// encountered while inverting or solving.
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrRankDeficient is returned by Nullspace when a Householder step
	// meets a zero-norm row remainder.
	ErrRankDeficient = errors.New("matrix: matrix is rank deficient")

	// ErrUnderdetermined is returned by QR when the matrix has fewer rows
	// than columns.
	ErrUnderdetermined = errors.New("matrix: fewer rows than columns")
)
