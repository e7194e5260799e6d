// SPDX-License-Identifier: MIT

// Package sparsity: structural queries. All queries are read-only, cost at
// most O(nnz), and never allocate except where documented.

package sparsity

import "sort"

// NumRows returns the number of rows.
func (p *Pattern) NumRows() int { return p.nrow }

// NumCols returns the number of columns.
func (p *Pattern) NumCols() int { return p.ncol }

// Dims returns the shape as (rows, cols).
func (p *Pattern) Dims() (int, int) { return p.nrow, p.ncol }

// Numel returns the total element count nrow*ncol, structural or not.
func (p *Pattern) Numel() int { return p.nrow * p.ncol }

// Nonzeros returns the number of structural nonzero positions.
func (p *Pattern) Nonzeros() int { return len(p.row) }

// Colind exposes the internal column pointer slice (length NumCols()+1).
// Treat as read-only; mutating it corrupts the pattern.
func (p *Pattern) Colind() []int { return p.colind }

// Row exposes the internal row index slice (length Nonzeros()).
// Treat as read-only; mutating it corrupts the pattern.
func (p *Pattern) Row() []int { return p.row }

// Index returns the position of (i, j) in the column-major nonzero order
// and whether the position is structural. Cost is O(log nnz(col j)).
//
// Errors:
//   - ErrIndexOutOfRange when (i, j) lies outside the shape.
func (p *Pattern) Index(i, j int) (int, bool, error) {
	if i < 0 || i >= p.nrow || j < 0 || j >= p.ncol {
		return 0, false, ErrIndexOutOfRange
	}

	lo, hi := p.colind[j], p.colind[j+1]
	k := lo + sort.SearchInts(p.row[lo:hi], i)
	if k < hi && p.row[k] == i {
		return k, true, nil
	}

	return k, false, nil
}

// Has reports whether (i, j) is a structural position. Out-of-range
// coordinates report false.
func (p *Pattern) Has(i, j int) bool {
	_, ok, err := p.Index(i, j)

	return err == nil && ok
}

// IsEmpty reports whether the pattern has no elements at all (a zero
// dimension), not merely no structural nonzeros.
func (p *Pattern) IsEmpty() bool { return p.nrow == 0 || p.ncol == 0 }

// IsScalar reports whether the shape is 1×1.
func (p *Pattern) IsScalar() bool { return p.nrow == 1 && p.ncol == 1 }

// IsVector reports whether the pattern has a single row or a single column.
func (p *Pattern) IsVector() bool { return p.nrow == 1 || p.ncol == 1 }

// IsSquare reports whether the shape is n×n.
func (p *Pattern) IsSquare() bool { return p.nrow == p.ncol }

// IsDense reports whether every position is structural.
func (p *Pattern) IsDense() bool { return len(p.row) == p.nrow*p.ncol }

// IsDiagonal reports whether all structural positions lie on the main
// diagonal.
func (p *Pattern) IsDiagonal() bool {
	for j := 0; j < p.ncol; j++ {
		for k := p.colind[j]; k < p.colind[j+1]; k++ {
			if p.row[k] != j {
				return false
			}
		}
	}

	return true
}

// IsTril reports whether all structural positions lie on or below the main
// diagonal.
func (p *Pattern) IsTril() bool {
	for j := 0; j < p.ncol; j++ {
		// Rows are increasing, so only the first entry per column can violate.
		if p.colind[j] < p.colind[j+1] && p.row[p.colind[j]] < j {
			return false
		}
	}

	return true
}

// IsTriu reports whether all structural positions lie on or above the main
// diagonal.
func (p *Pattern) IsTriu() bool {
	for j := 0; j < p.ncol; j++ {
		// Rows are increasing, so only the last entry per column can violate.
		if p.colind[j] < p.colind[j+1] && p.row[p.colind[j+1]-1] > j {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether the pattern equals its transpose. Cost is
// O(nnz) time and space.
func (p *Pattern) IsSymmetric() bool {
	if p.nrow != p.ncol {
		return false
	}

	t, _ := p.Transpose()

	return p.Equal(t)
}

// Equal reports whether q has the same shape and the same structural
// positions.
func (p *Pattern) Equal(q *Pattern) bool {
	if p.nrow != q.nrow || p.ncol != q.ncol || len(p.row) != len(q.row) {
		return false
	}
	for j := 1; j <= p.ncol; j++ {
		if p.colind[j] != q.colind[j] {
			return false
		}
	}
	for k, r := range p.row {
		if q.row[k] != r {
			return false
		}
	}

	return true
}
