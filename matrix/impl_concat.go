// SPDX-License-Identifier: MIT

// Package matrix: concatenation, splitting and tiling. Concatenation is
// fundamental in the horizontal direction only: compressed column storage
// appends columns for free, so the vertical variants route through
// transposes, exactly mirroring the pattern algebra.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvsym/sparsity"
)

// HorzCat returns [parts[0] parts[1] ...], the operands side by side. The
// result's nonzero order is the operands' data concatenated in call order.
// No operands yield the empty 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch when row counts differ.
func HorzCat[T Scalar[T]](parts ...*Sparse[T]) (*Sparse[T], error) {
	patterns := make([]*sparsity.Pattern, len(parts))
	nnz := 0
	for t, part := range parts {
		if part.sp.NumRows() != parts[0].sp.NumRows() {
			return nil, fmt.Errorf("HorzCat: part %d has %d rows, want %d: %w",
				t, part.sp.NumRows(), parts[0].sp.NumRows(), ErrDimensionMismatch)
		}
		patterns[t] = part.sp
		nnz += len(part.data)
	}

	sp, err := sparsity.HorzCat(patterns...)
	if err != nil {
		return nil, fmt.Errorf("HorzCat: %w", err)
	}
	data := make([]T, 0, nnz)
	for _, part := range parts {
		data = append(data, part.data...)
	}

	return &Sparse[T]{sp: sp, data: data}, nil
}

// VertCat stacks the operands on top of each other, by transposing,
// concatenating horizontally and transposing back.
//
// Errors:
//   - ErrDimensionMismatch when column counts differ.
func VertCat[T Scalar[T]](parts ...*Sparse[T]) (*Sparse[T], error) {
	transposed := make([]*Sparse[T], len(parts))
	for t, part := range parts {
		transposed[t] = part.Transpose()
	}
	cat, err := HorzCat(transposed...)
	if err != nil {
		return nil, fmt.Errorf("VertCat: %w", err)
	}

	return cat.Transpose(), nil
}

// BlockCat assembles a matrix from a dense grid of blocks: each inner
// slice concatenates horizontally, the resulting rows stack vertically.
//
// Errors:
//   - ErrDimensionMismatch when blocks of one row differ in height, or the
//     assembled rows differ in width.
func BlockCat[T Scalar[T]](blocks [][]*Sparse[T]) (*Sparse[T], error) {
	rows := make([]*Sparse[T], len(blocks))
	for i := range blocks {
		row, err := HorzCat(blocks[i]...)
		if err != nil {
			return nil, fmt.Errorf("BlockCat: row %d: %w", i, err)
		}
		rows[i] = row
	}
	ret, err := VertCat(rows...)
	if err != nil {
		return nil, fmt.Errorf("BlockCat: %w", err)
	}

	return ret, nil
}

// BlockDiag places the operands on the diagonal of one block-diagonal
// matrix; everything off the blocks is structurally zero. The result's
// nonzero order is the operands' data concatenated in call order.
func BlockDiag[T Scalar[T]](parts ...*Sparse[T]) *Sparse[T] {
	patterns := make([]*sparsity.Pattern, len(parts))
	nnz := 0
	for t, part := range parts {
		patterns[t] = part.sp
		nnz += len(part.data)
	}
	data := make([]T, 0, nnz)
	for _, part := range parts {
		data = append(data, part.data...)
	}

	return &Sparse[T]{sp: sparsity.BlockDiag(patterns...), data: data}
}

// HorzSplit cuts the matrix into len(offsets) column bands: band t spans
// columns [offsets[t], offsets[t+1]), with the last band running to the
// right edge. Splitting at the concatenation boundaries inverts HorzCat.
//
// Errors:
//   - ErrBadOffsets when offsets is empty, does not start at 0, decreases,
//     or exceeds the column count.
func (x *Sparse[T]) HorzSplit(offsets []int) ([]*Sparse[T], error) {
	nrow, ncol := x.sp.Dims()
	if err := validateOffsets("HorzSplit", offsets, ncol); err != nil {
		return nil, err
	}

	ci, rows := x.sp.Colind(), x.sp.Row()
	parts := make([]*Sparse[T], len(offsets))
	for t, start := range offsets {
		stop := ncol
		if t+1 < len(offsets) {
			stop = offsets[t+1]
		}

		// Columns [start, stop): rebase colind, slice rows and data.
		base := ci[start]
		colind := make([]int, stop-start+1)
		for c := start; c <= stop; c++ {
			colind[c-start] = ci[c] - base
		}
		sp, err := sparsity.FromCCS(nrow, stop-start,
			colind, append([]int(nil), rows[base:ci[stop]]...))
		if err != nil {
			panic(err) // contiguous columns of a valid pattern
		}
		parts[t] = &Sparse[T]{sp: sp, data: append([]T(nil), x.data[base:ci[stop]]...)}
	}

	return parts, nil
}

// HorzSplitEvery cuts the matrix into bands of incr columns each, the last
// band taking whatever remains.
//
// Errors:
//   - ErrBadOffsets when incr < 1, or when the matrix has no columns to
//     split.
func (x *Sparse[T]) HorzSplitEvery(incr int) ([]*Sparse[T], error) {
	if incr < 1 {
		return nil, fmt.Errorf("HorzSplitEvery: increment %d: %w", incr, ErrBadOffsets)
	}
	offsets := make([]int, 0, x.sp.NumCols()/incr+1)
	for c := 0; c < x.sp.NumCols(); c += incr {
		offsets = append(offsets, c)
	}

	return x.HorzSplit(offsets)
}

// VertSplit cuts the matrix into len(offsets) row bands, the transpose of
// HorzSplit on the transpose.
//
// Errors:
//   - ErrBadOffsets when offsets is empty, does not start at 0, decreases,
//     or exceeds the row count.
func (x *Sparse[T]) VertSplit(offsets []int) ([]*Sparse[T], error) {
	if err := validateOffsets("VertSplit", offsets, x.sp.NumRows()); err != nil {
		return nil, err
	}
	bands, err := x.Transpose().HorzSplit(offsets)
	if err != nil {
		return nil, fmt.Errorf("VertSplit: %w", err)
	}
	for t := range bands {
		bands[t] = bands[t].Transpose()
	}

	return bands, nil
}

// VertSplitEvery cuts the matrix into bands of incr rows each, the last
// band taking whatever remains.
//
// Errors:
//   - ErrBadOffsets when incr < 1, or when the matrix has no rows to
//     split.
func (x *Sparse[T]) VertSplitEvery(incr int) ([]*Sparse[T], error) {
	if incr < 1 {
		return nil, fmt.Errorf("VertSplitEvery: increment %d: %w", incr, ErrBadOffsets)
	}
	offsets := make([]int, 0, x.sp.NumRows()/incr+1)
	for r := 0; r < x.sp.NumRows(); r += incr {
		offsets = append(offsets, r)
	}

	return x.VertSplit(offsets)
}

// BlockSplit cuts the matrix into a grid: vert offsets split the rows,
// horz offsets split the columns of every row band. It inverts BlockCat at
// the matching boundaries.
//
// Errors:
//   - ErrBadOffsets when either offset list is malformed.
func (x *Sparse[T]) BlockSplit(vert, horz []int) ([][]*Sparse[T], error) {
	rows, err := x.VertSplit(vert)
	if err != nil {
		return nil, fmt.Errorf("BlockSplit: %w", err)
	}
	blocks := make([][]*Sparse[T], len(rows))
	for i, band := range rows {
		blocks[i], err = band.HorzSplit(horz)
		if err != nil {
			return nil, fmt.Errorf("BlockSplit: %w", err)
		}
	}

	return blocks, nil
}

// Kron returns the Kronecker product x⊗y: every structural entry of x
// scales a copy of y, every structural zero of x contributes a
// structurally zero block.
func (x *Sparse[T]) Kron(y *Sparse[T]) *Sparse[T] {
	nrow, ncol := x.sp.Dims()
	filler, err := Zeros[T](y.sp.NumRows(), y.sp.NumCols())
	if err != nil {
		panic(err) // y's dims are valid
	}

	blocks := make([][]*Sparse[T], nrow)
	for i := range blocks {
		blocks[i] = make([]*Sparse[T], ncol)
		for j := range blocks[i] {
			blocks[i][j] = filler
		}
	}
	ci, rows := x.sp.Colind(), x.sp.Row()
	for j := 0; j < ncol; j++ {
		for k := ci[j]; k < ci[j+1]; k++ {
			blocks[rows[k]][j] = y.Scale(x.data[k])
		}
	}

	ret, err := BlockCat(blocks)
	if err != nil {
		panic(err) // grid of equally shaped blocks
	}

	return ret
}

// Repmat tiles the matrix n times vertically and m times horizontally.
// Zero repetition counts degenerate the tiled dimension to the empty
// matrix.
//
// Errors:
//   - ErrBadShape on negative repetition counts.
func (x *Sparse[T]) Repmat(n, m int) (*Sparse[T], error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("Repmat: %dx%d repetitions: %w", n, m, ErrBadShape)
	}

	rowParts := make([]*Sparse[T], m)
	for t := range rowParts {
		rowParts[t] = x
	}
	band, err := HorzCat(rowParts...)
	if err != nil {
		return nil, fmt.Errorf("Repmat: %w", err)
	}

	colParts := make([]*Sparse[T], n)
	for t := range colParts {
		colParts[t] = band
	}
	ret, err := VertCat(colParts...)
	if err != nil {
		return nil, fmt.Errorf("Repmat: %w", err)
	}

	return ret, nil
}
