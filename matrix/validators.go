// SPDX-License-Identifier: MIT

// Package matrix: shared argument validation. Every validator wraps the
// matching sentinel with the calling operation's name, so errors read as
// "Solve: non-square 3x4: matrix: matrix not square" and still match the
// sentinel through errors.Is.

package matrix

import "fmt"

// validateShape rejects negative dimensions.
func validateShape(op string, nrow, ncol int) error {
	if nrow < 0 || ncol < 0 {
		return fmt.Errorf("%s: negative shape %dx%d: %w", op, nrow, ncol, ErrBadShape)
	}

	return nil
}

// validateIndex rejects positions outside an nrow×ncol matrix.
func validateIndex(op string, nrow, ncol, i, j int) error {
	if i < 0 || i >= nrow || j < 0 || j >= ncol {
		return fmt.Errorf("%s: position (%d,%d) outside %dx%d: %w", op, i, j, nrow, ncol, ErrOutOfRange)
	}

	return nil
}

// validateSameShape rejects element-wise operands of different shapes.
func validateSameShape[T Scalar[T]](op string, x, y *Sparse[T]) error {
	if x.sp.NumRows() != y.sp.NumRows() || x.sp.NumCols() != y.sp.NumCols() {
		return fmt.Errorf("%s: %dx%d with %dx%d: %w",
			op, x.sp.NumRows(), x.sp.NumCols(), y.sp.NumRows(), y.sp.NumCols(), ErrDimensionMismatch)
	}

	return nil
}

// validateSquare rejects rectangular matrices.
func validateSquare[T Scalar[T]](op string, x *Sparse[T]) error {
	if x.sp.NumRows() != x.sp.NumCols() {
		return fmt.Errorf("%s: non-square %dx%d: %w", op, x.sp.NumRows(), x.sp.NumCols(), ErrNonSquare)
	}

	return nil
}

// validateOffsets rejects malformed split offset lists for a dimension of
// the given extent: the list must be non-empty, start at zero, never
// decrease and never exceed the extent.
func validateOffsets(op string, offsets []int, extent int) error {
	if len(offsets) == 0 || offsets[0] != 0 {
		return fmt.Errorf("%s: offsets must be non-empty and start at 0: %w", op, ErrBadOffsets)
	}
	for t := 1; t < len(offsets); t++ {
		if offsets[t] < offsets[t-1] {
			return fmt.Errorf("%s: offsets decrease at %d: %w", op, t, ErrBadOffsets)
		}
	}
	if offsets[len(offsets)-1] > extent {
		return fmt.Errorf("%s: last offset %d exceeds extent %d: %w",
			op, offsets[len(offsets)-1], extent, ErrBadOffsets)
	}

	return nil
}

// validatePermutation rejects slices that are not a bijection on [0, n).
func validatePermutation(op string, perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%s: permutation length %d, want %d: %w", op, len(perm), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%s: not a bijection on [0,%d): %w", op, n, ErrBadPermutation)
		}
		seen[v] = true
	}

	return nil
}
