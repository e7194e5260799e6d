// SPDX-License-Identifier: MIT

// Package matrix: structural operations. Everything here rearranges
// positions without touching the stored values: transposition, reshaping,
// diagonal extraction and construction, sub-block extraction and
// permutation.

package matrix

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsym/sparsity"
)

// Transpose returns xᵀ. The pattern transpose reports, for every nonzero
// of the result, the source nonzero it came from; the data permutes along
// that mapping.
//
// Complexity:
//   - Time O(nnz + nrow + ncol), Space O(nnz).
func (x *Sparse[T]) Transpose() *Sparse[T] {
	sp, mapping := x.sp.Transpose()
	data := make([]T, len(mapping))
	for k, src := range mapping {
		data[k] = x.data[src]
	}

	return &Sparse[T]{sp: sp, data: data}
}

// Reshape reinterprets the matrix under a new shape with the same element
// count, preserving column-major linear indices. The nonzero order does
// not change, so the data is shared structurally and copied verbatim.
//
// Errors:
//   - ErrBadShape on negative dimensions.
//   - ErrDimensionMismatch when nrow*ncol differs from Numel().
func (x *Sparse[T]) Reshape(nrow, ncol int) (*Sparse[T], error) {
	if err := validateShape("Reshape", nrow, ncol); err != nil {
		return nil, err
	}
	if nrow*ncol != x.sp.Numel() {
		return nil, fmt.Errorf("Reshape: %d elements into %dx%d: %w",
			x.sp.Numel(), nrow, ncol, ErrDimensionMismatch)
	}
	sp, err := x.sp.Reshape(nrow, ncol)
	if err != nil {
		return nil, fmt.Errorf("Reshape: %w", err)
	}

	return &Sparse[T]{sp: sp, data: append([]T(nil), x.data...)}, nil
}

// Vec returns the matrix flattened into a Numel()×1 column, stacking the
// columns on top of each other.
func (x *Sparse[T]) Vec() *Sparse[T] {
	ret, err := x.Reshape(x.sp.Numel(), 1)
	if err != nil {
		panic(err) // Numel()×1 always conforms
	}

	return ret
}

// Diag is dual-purpose, following the usual sparse convention:
//   - on a vector it builds the n×n diagonal matrix carrying the vector's
//     entries, n being the vector length;
//   - on any other matrix it extracts the main diagonal as a
//     min(nrow,ncol)×1 column, keeping only structurally present entries.
func (x *Sparse[T]) Diag() *Sparse[T] {
	if x.sp.IsVector() {
		return x.diagFromVector()
	}

	sp, mapping := x.sp.Diag()
	data := make([]T, len(mapping))
	for k, src := range mapping {
		data[k] = x.data[src]
	}

	return &Sparse[T]{sp: sp, data: data}
}

// diagFromVector places the vector's entries on the diagonal of an n×n
// matrix. The linear index of each entry becomes its diagonal position;
// nonzero order is preserved, so the data carries over verbatim.
func (x *Sparse[T]) diagFromVector() *Sparse[T] {
	n := x.sp.Numel()
	colind := make([]int, n+1)
	row := make([]int, 0, len(x.data))

	// For a column vector the stored row indices are the linear indices;
	// for a row vector the column of each entry is, and entries appear in
	// increasing column order already.
	if x.sp.NumCols() == 1 {
		for _, i := range x.sp.Row() {
			colind[i+1]++
			row = append(row, i)
		}
	} else {
		ci := x.sp.Colind()
		for j := 0; j < x.sp.NumCols(); j++ {
			for k := ci[j]; k < ci[j+1]; k++ {
				colind[j+1]++
				row = append(row, j)
			}
		}
	}
	for j := 0; j < n; j++ {
		colind[j+1] += colind[j]
	}

	sp, err := sparsity.FromCCS(n, n, colind, row)
	if err != nil {
		panic(err) // one entry per occupied diagonal position
	}

	return &Sparse[T]{sp: sp, data: append([]T(nil), x.data...)}
}

// Trace returns the sum of the diagonal entries; structurally absent
// positions contribute the scalar zero.
//
// Errors:
//   - ErrNonSquare on rectangular matrices.
func (x *Sparse[T]) Trace() (T, error) {
	var zero T
	if err := validateSquare("Trace", x); err != nil {
		return zero, err
	}

	res := zeroOf[T]()
	for i := 0; i < x.sp.NumRows(); i++ {
		if k, ok, _ := x.sp.Index(i, i); ok {
			res = res.Add(x.data[k])
		}
	}

	return res, nil
}

// Slice returns the sub-matrix of rows [r0, r1) and columns [c0, c1).
//
// Errors:
//   - ErrOutOfRange when a bound leaves the matrix or an interval is
//     inverted.
func (x *Sparse[T]) Slice(r0, r1, c0, c1 int) (*Sparse[T], error) {
	nrow, ncol := x.sp.Dims()
	if r0 < 0 || r1 < r0 || r1 > nrow || c0 < 0 || c1 < c0 || c1 > ncol {
		return nil, fmt.Errorf("Slice: rows [%d,%d) cols [%d,%d) of %dx%d: %w",
			r0, r1, c0, c1, nrow, ncol, ErrOutOfRange)
	}

	colind := make([]int, 1, c1-c0+1)
	row := make([]int, 0)
	data := make([]T, 0)
	ci, rows := x.sp.Colind(), x.sp.Row()
	for j := c0; j < c1; j++ {
		for k := ci[j]; k < ci[j+1]; k++ {
			if rows[k] >= r0 && rows[k] < r1 {
				row = append(row, rows[k]-r0)
				data = append(data, x.data[k])
			}
		}
		colind = append(colind, len(row))
	}

	sp, err := sparsity.FromCCS(r1-r0, c1-c0, colind, row)
	if err != nil {
		panic(err) // extracted column-major from a valid pattern
	}

	return &Sparse[T]{sp: sp, data: data}, nil
}

// setSlice returns the matrix with the block at (r0, c0) replaced by b:
// structural entries of x inside the block's rectangle are dropped, b's
// entries take their place. Callers guarantee the rectangle fits.
func (x *Sparse[T]) setSlice(r0, c0 int, b *Sparse[T]) *Sparse[T] {
	nrow, ncol := x.sp.Dims()
	bh, bw := b.sp.Dims()

	colind := make([]int, 1, ncol+1)
	row := make([]int, 0, len(x.data)+len(b.data))
	data := make([]T, 0, len(x.data)+len(b.data))
	xci, xrows := x.sp.Colind(), x.sp.Row()
	bci, brows := b.sp.Colind(), b.sp.Row()
	for j := 0; j < ncol; j++ {
		if j < c0 || j >= c0+bw {
			for k := xci[j]; k < xci[j+1]; k++ {
				row = append(row, xrows[k])
				data = append(data, x.data[k])
			}
			colind = append(colind, len(row))

			continue
		}

		// Rows above the rectangle, then the replacement, then rows below.
		k := xci[j]
		for ; k < xci[j+1] && xrows[k] < r0; k++ {
			row = append(row, xrows[k])
			data = append(data, x.data[k])
		}
		bj := j - c0
		for t := bci[bj]; t < bci[bj+1]; t++ {
			row = append(row, r0+brows[t])
			data = append(data, b.data[t])
		}
		for ; k < xci[j+1]; k++ {
			if xrows[k] >= r0+bh {
				row = append(row, xrows[k])
				data = append(data, x.data[k])
			}
		}
		colind = append(colind, len(row))
	}

	sp, err := sparsity.FromCCS(nrow, ncol, colind, row)
	if err != nil {
		panic(err) // merged column-major from valid patterns
	}

	return &Sparse[T]{sp: sp, data: data}
}

// PermuteRows returns the matrix with row i of the result reading row
// perm[i] of the receiver.
//
// Errors:
//   - ErrBadPermutation when perm is not a bijection on the row range.
func (x *Sparse[T]) PermuteRows(perm []int) (*Sparse[T], error) {
	nrow, ncol := x.sp.Dims()
	if err := validatePermutation("PermuteRows", perm, nrow); err != nil {
		return nil, err
	}

	// result(i, j) = x(perm[i], j), so each stored row index maps through
	// the inverse permutation, then every column re-sorts.
	inv := invertPermutation(perm)
	colind := make([]int, 1, ncol+1)
	row := make([]int, 0, len(x.data))
	data := make([]T, 0, len(x.data))
	ci, rows := x.sp.Colind(), x.sp.Row()
	order := make([]int, 0, nrow)
	for j := 0; j < ncol; j++ {
		order = order[:0]
		for k := ci[j]; k < ci[j+1]; k++ {
			order = append(order, k)
		}
		sort.Slice(order, func(a, b int) bool {
			return inv[rows[order[a]]] < inv[rows[order[b]]]
		})
		for _, k := range order {
			row = append(row, inv[rows[k]])
			data = append(data, x.data[k])
		}
		colind = append(colind, len(row))
	}

	sp, err := sparsity.FromCCS(nrow, ncol, colind, row)
	if err != nil {
		panic(err) // permuted rows of a bijection stay distinct
	}

	return &Sparse[T]{sp: sp, data: data}, nil
}

// Permute returns the matrix with position (i, j) of the result reading
// position (rowPerm[i], colPerm[j]) of the receiver.
//
// Errors:
//   - ErrBadPermutation when either slice is not a bijection on its range.
func (x *Sparse[T]) Permute(rowPerm, colPerm []int) (*Sparse[T], error) {
	nrow, ncol := x.sp.Dims()
	if err := validatePermutation("Permute", colPerm, ncol); err != nil {
		return nil, err
	}
	rp, err := x.PermuteRows(rowPerm)
	if err != nil {
		return nil, fmt.Errorf("Permute: %w", err)
	}

	// Gather the columns of the row-permuted matrix in colPerm order.
	colind := make([]int, 1, ncol+1)
	row := make([]int, 0, len(rp.data))
	data := make([]T, 0, len(rp.data))
	ci, rows := rp.sp.Colind(), rp.sp.Row()
	for j := 0; j < ncol; j++ {
		c := colPerm[j]
		row = append(row, rows[ci[c]:ci[c+1]]...)
		data = append(data, rp.data[ci[c]:ci[c+1]]...)
		colind = append(colind, len(row))
	}

	sp, err := sparsity.FromCCS(nrow, ncol, colind, row)
	if err != nil {
		panic(err) // gathered whole columns of a valid pattern
	}

	return &Sparse[T]{sp: sp, data: data}, nil
}

// invertPermutation returns the inverse bijection.
func invertPermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for i, v := range perm {
		inv[v] = i
	}

	return inv
}
