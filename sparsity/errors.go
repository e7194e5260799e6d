// SPDX-License-Identifier: MIT
// Package sparsity: sentinel error set. All constructors and pattern algebra
// MUST return these sentinels; tests check them via errors.Is. Panics are
// reserved for programmer errors inside private helpers.

package sparsity

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// row or column count).
	ErrBadShape = errors.New("sparsity: invalid shape")

	// ErrBadPattern is returned when raw CCS arrays are malformed: wrong
	// colind length, non-monotone column pointers, row indices out of range
	// or not strictly increasing within a column.
	ErrBadPattern = errors.New("sparsity: malformed pattern")

	// ErrIndexOutOfRange indicates a row or column index outside the
	// pattern's bounds.
	ErrIndexOutOfRange = errors.New("sparsity: index out of range")

	// ErrDimensionMismatch indicates two patterns of incompatible shapes
	// passed to a binary pattern operation (union, concatenation).
	ErrDimensionMismatch = errors.New("sparsity: dimension mismatch")

	// ErrNumelMismatch is returned by Reshape when the new shape does not
	// preserve the total element count.
	ErrNumelMismatch = errors.New("sparsity: element count mismatch")

	// ErrNonSquare signals that a square pattern was required.
	ErrNonSquare = errors.New("sparsity: pattern is not square")

	// ErrStructurallySingular is returned by BlockTriangularize when no
	// perfect row-column matching exists: the pattern's structural rank is
	// below its dimension, so every numeric instance is singular.
	ErrStructurallySingular = errors.New("sparsity: structurally singular")
)
