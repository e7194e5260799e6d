// SPDX-License-Identifier: MIT

// Package sparsity: pattern algebra. Operations returning a nonzero mapping
// pair each structural position of the result with the position it came
// from, so value containers can permute their data without re-deriving the
// structure.

package sparsity

// Transpose returns the transposed pattern together with a mapping: entry k
// of the transpose corresponds to entry mapping[k] of the receiver.
//
// Implementation:
//   - Stage 1: count nonzeros per row; prefix-sum into the new colind.
//   - Stage 2: scatter each entry (i, j) to the running cursor of new
//     column i, recording the source position.
//
// Complexity:
//   - Time O(nnz + nrow + ncol), Space O(nnz + nrow).
func (p *Pattern) Transpose() (*Pattern, []int) {
	colind := make([]int, p.nrow+1)
	for _, i := range p.row {
		colind[i+1]++
	}
	for i := 0; i < p.nrow; i++ {
		colind[i+1] += colind[i]
	}

	row := make([]int, len(p.row))
	mapping := make([]int, len(p.row))
	cursor := make([]int, p.nrow)
	copy(cursor, colind[:p.nrow])
	for j := 0; j < p.ncol; j++ {
		for k := p.colind[j]; k < p.colind[j+1]; k++ {
			i := p.row[k]
			pos := cursor[i]
			cursor[i]++
			row[pos] = j
			mapping[pos] = k
		}
	}

	return &Pattern{nrow: p.ncol, ncol: p.nrow, colind: colind, row: row}, mapping
}

// Provenance tags reported by Union for each structural position of the
// result.
const (
	// UnionLeft marks a position present only in the receiver.
	UnionLeft uint8 = 1
	// UnionRight marks a position present only in the argument.
	UnionRight uint8 = 2
	// UnionBoth marks a position present in both operands.
	UnionBoth uint8 = 3
)

// Union returns the structural union of two equally shaped patterns and a
// per-position provenance tag (UnionLeft, UnionRight or UnionBoth) aligned
// with the result's nonzero order.
//
// Errors:
//   - ErrDimensionMismatch when the shapes differ.
//
// Complexity:
//   - Time O(nnz(p) + nnz(q)), Space same.
func (p *Pattern) Union(q *Pattern) (*Pattern, []uint8, error) {
	if p.nrow != q.nrow || p.ncol != q.ncol {
		return nil, nil, ErrDimensionMismatch
	}

	colind := make([]int, p.ncol+1)
	row := make([]int, 0, len(p.row)+len(q.row))
	tags := make([]uint8, 0, len(p.row)+len(q.row))

	for j := 0; j < p.ncol; j++ {
		a, aEnd := p.colind[j], p.colind[j+1]
		b, bEnd := q.colind[j], q.colind[j+1]
		// Two-pointer merge of two strictly increasing row lists.
		for a < aEnd || b < bEnd {
			switch {
			case b == bEnd || (a < aEnd && p.row[a] < q.row[b]):
				row = append(row, p.row[a])
				tags = append(tags, UnionLeft)
				a++
			case a == aEnd || q.row[b] < p.row[a]:
				row = append(row, q.row[b])
				tags = append(tags, UnionRight)
				b++
			default:
				row = append(row, p.row[a])
				tags = append(tags, UnionBoth)
				a++
				b++
			}
		}
		colind[j+1] = len(row)
	}

	return &Pattern{nrow: p.nrow, ncol: p.ncol, colind: colind, row: row}, tags, nil
}

// Diag returns the pattern of the main diagonal as a min(nrow,ncol)×1
// column vector, together with a mapping into the receiver's nonzeros.
//
// Complexity:
//   - Time O(min(nrow,ncol) · log nnz), Space O(diagonal nnz).
func (p *Pattern) Diag() (*Pattern, []int) {
	n := p.nrow
	if p.ncol < n {
		n = p.ncol
	}

	row := make([]int, 0, n)
	mapping := make([]int, 0, n)
	for d := 0; d < n; d++ {
		if k, ok, _ := p.Index(d, d); ok {
			row = append(row, d)
			mapping = append(mapping, k)
		}
	}

	return &Pattern{nrow: n, ncol: 1, colind: []int{0, len(row)}, row: row}, mapping
}

// Reshape returns the same structural positions reinterpreted under a new
// shape with identical element count, preserving column-major linear
// indices. The nonzero order is unchanged, so value containers keep their
// data as is.
//
// Errors:
//   - ErrBadShape on negative dimensions.
//   - ErrNumelMismatch when nrow*ncol differs from the receiver's.
func (p *Pattern) Reshape(nrow, ncol int) (*Pattern, error) {
	if nrow < 0 || ncol < 0 {
		return nil, ErrBadShape
	}
	if nrow*ncol != p.nrow*p.ncol {
		return nil, ErrNumelMismatch
	}

	colind := make([]int, ncol+1)
	row := make([]int, len(p.row))
	pos := 0
	for j := 0; j < p.ncol; j++ {
		for k := p.colind[j]; k < p.colind[j+1]; k++ {
			linear := p.row[k] + j*p.nrow
			row[pos] = linear % nrow
			colind[linear/nrow+1]++
			pos++
		}
	}
	for j := 0; j < ncol; j++ {
		colind[j+1] += colind[j]
	}

	return &Pattern{nrow: nrow, ncol: ncol, colind: colind, row: row}, nil
}

// Insert returns a pattern with position (i, j) made structural, together
// with the nonzero index the position occupies in the result. When the
// position is already structural the receiver itself is returned.
//
// Errors:
//   - ErrIndexOutOfRange when (i, j) lies outside the pattern.
//
// Complexity:
//   - Time O(log nnz) when present, O(nnz + ncol) on insertion.
func (p *Pattern) Insert(i, j int) (*Pattern, int, error) {
	pos, ok, err := p.Index(i, j)
	if err != nil {
		return nil, 0, err
	}
	if ok {
		return p, pos, nil
	}

	colind := make([]int, len(p.colind))
	for c := range colind {
		colind[c] = p.colind[c]
		if c > j {
			colind[c]++
		}
	}
	row := make([]int, 0, len(p.row)+1)
	row = append(row, p.row[:pos]...)
	row = append(row, i)
	row = append(row, p.row[pos:]...)

	return &Pattern{nrow: p.nrow, ncol: p.ncol, colind: colind, row: row}, pos, nil
}

// HorzCat returns the pattern of [p q ...]: columns of each operand appended
// left to right. The nonzero order of the result is the operands' nonzero
// sequences concatenated, so value containers concatenate their data in the
// same call order.
//
// Errors:
//   - ErrDimensionMismatch when row counts differ.
func HorzCat(parts ...*Pattern) (*Pattern, error) {
	if len(parts) == 0 {
		return Empty(0, 0)
	}

	nrow := parts[0].nrow
	ncol, nnz := 0, 0
	for _, part := range parts {
		if part.nrow != nrow {
			return nil, ErrDimensionMismatch
		}
		ncol += part.ncol
		nnz += len(part.row)
	}

	colind := make([]int, 1, ncol+1)
	row := make([]int, 0, nnz)
	offset := 0
	for _, part := range parts {
		for j := 0; j < part.ncol; j++ {
			colind = append(colind, offset+part.colind[j+1])
		}
		row = append(row, part.row...)
		offset += len(part.row)
	}

	return &Pattern{nrow: nrow, ncol: ncol, colind: colind, row: row}, nil
}

// BlockDiag returns the pattern with the operands placed on the diagonal in
// call order; rows and columns both grow by each operand's shape. The
// nonzero order is the operands' nonzero sequences concatenated, matching
// HorzCat's data discipline.
//
// Complexity:
//   - Time O(total nnz + total ncol), Space same.
func BlockDiag(parts ...*Pattern) *Pattern {
	nrow, ncol, nnz := 0, 0, 0
	for _, part := range parts {
		nrow += part.nrow
		ncol += part.ncol
		nnz += len(part.row)
	}

	colind := make([]int, 1, ncol+1)
	row := make([]int, 0, nnz)
	rowOffset, nnzOffset := 0, 0
	for _, part := range parts {
		for j := 0; j < part.ncol; j++ {
			colind = append(colind, nnzOffset+part.colind[j+1])
		}
		for _, i := range part.row {
			row = append(row, rowOffset+i)
		}
		rowOffset += part.nrow
		nnzOffset += len(part.row)
	}

	return &Pattern{nrow: nrow, ncol: ncol, colind: colind, row: row}
}
