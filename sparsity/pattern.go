// SPDX-License-Identifier: MIT

// Package sparsity: the Pattern type, its constructors and CCS validation.

package sparsity

import "sort"

// Pattern is an immutable column-compressed set of nonzero positions.
//
// Invariants (established by every constructor, relied on everywhere):
//   - len(colind) == ncol+1, colind[0] == 0, colind monotone non-decreasing,
//     colind[ncol] == len(row);
//   - row indices within each column are strictly increasing and inside
//     [0, nrow).
type Pattern struct {
	nrow, ncol int
	colind     []int
	row        []int
}

// Empty returns the nrow×ncol pattern with no structural nonzeros.
func Empty(nrow, ncol int) (*Pattern, error) {
	if nrow < 0 || ncol < 0 {
		return nil, ErrBadShape
	}

	return &Pattern{nrow: nrow, ncol: ncol, colind: make([]int, ncol+1)}, nil
}

// Dense returns the nrow×ncol pattern with every position structural.
func Dense(nrow, ncol int) (*Pattern, error) {
	if nrow < 0 || ncol < 0 {
		return nil, ErrBadShape
	}

	colind := make([]int, ncol+1)
	row := make([]int, 0, nrow*ncol)
	for j := 0; j < ncol; j++ {
		for i := 0; i < nrow; i++ {
			row = append(row, i)
		}
		colind[j+1] = len(row)
	}

	return &Pattern{nrow: nrow, ncol: ncol, colind: colind, row: row}, nil
}

// Scalar returns the dense 1×1 pattern.
func Scalar() *Pattern {
	return &Pattern{nrow: 1, ncol: 1, colind: []int{0, 1}, row: []int{0}}
}

// Diagonal returns the n×n pattern with structural nonzeros on the main
// diagonal only.
func Diagonal(n int) (*Pattern, error) {
	if n < 0 {
		return nil, ErrBadShape
	}

	colind := make([]int, n+1)
	row := make([]int, n)
	for j := 0; j < n; j++ {
		colind[j+1] = j + 1
		row[j] = j
	}

	return &Pattern{nrow: n, ncol: n, colind: colind, row: row}, nil
}

// FromCCS builds a pattern from raw compressed-column arrays, validating and
// copying them.
//
// Inputs:
//   - nrow, ncol: non-negative dimensions.
//   - colind: ncol+1 column pointers, colind[0]==0, monotone.
//   - row: row indices per column, strictly increasing, inside [0, nrow).
//
// Errors:
//   - ErrBadShape on negative dimensions.
//   - ErrBadPattern on any malformed array content.
func FromCCS(nrow, ncol int, colind, row []int) (*Pattern, error) {
	if nrow < 0 || ncol < 0 {
		return nil, ErrBadShape
	}
	if err := validateCCS(nrow, ncol, colind, row); err != nil {
		return nil, err
	}

	p := &Pattern{
		nrow:   nrow,
		ncol:   ncol,
		colind: make([]int, ncol+1),
		row:    make([]int, len(row)),
	}
	copy(p.colind, colind)
	copy(p.row, row)

	return p, nil
}

// FromTriplets builds a pattern from coordinate pairs. Duplicates collapse
// into one structural position; order of the input pairs is irrelevant.
//
// Errors:
//   - ErrBadShape on negative dimensions or len(rows) != len(cols).
//   - ErrIndexOutOfRange on a coordinate outside the shape.
func FromTriplets(nrow, ncol int, rows, cols []int) (*Pattern, error) {
	if nrow < 0 || ncol < 0 || len(rows) != len(cols) {
		return nil, ErrBadShape
	}
	for k := range rows {
		if rows[k] < 0 || rows[k] >= nrow || cols[k] < 0 || cols[k] >= ncol {
			return nil, ErrIndexOutOfRange
		}
	}

	// Sort coordinates column-major, then deduplicate while compressing.
	order := make([]int, len(rows))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if cols[ka] != cols[kb] {
			return cols[ka] < cols[kb]
		}

		return rows[ka] < rows[kb]
	})

	colind := make([]int, ncol+1)
	row := make([]int, 0, len(rows))
	prevI, prevJ := -1, -1
	for _, k := range order {
		i, j := rows[k], cols[k]
		if i == prevI && j == prevJ {
			continue
		}
		row = append(row, i)
		colind[j+1]++
		prevI, prevJ = i, j
	}
	for j := 0; j < ncol; j++ {
		colind[j+1] += colind[j]
	}

	return &Pattern{nrow: nrow, ncol: ncol, colind: colind, row: row}, nil
}

// validateCCS checks the structural invariants of raw CCS arrays.
func validateCCS(nrow, ncol int, colind, row []int) error {
	if len(colind) != ncol+1 || colind[0] != 0 || colind[ncol] != len(row) {
		return ErrBadPattern
	}
	for j := 0; j < ncol; j++ {
		if colind[j+1] < colind[j] {
			return ErrBadPattern
		}
		for k := colind[j]; k < colind[j+1]; k++ {
			if row[k] < 0 || row[k] >= nrow {
				return ErrBadPattern
			}
			if k > colind[j] && row[k] <= row[k-1] {
				return ErrBadPattern
			}
		}
	}

	return nil
}
