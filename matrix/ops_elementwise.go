// SPDX-License-Identifier: MIT

// Package matrix: element-wise operations. Additive operations run on the
// pattern union, multiplicative ones on the intersection, so structural
// zeros never enter the scalar arithmetic at all.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvsym/sparsity"
)

// mapData applies f to every stored value, keeping the pattern.
func (x *Sparse[T]) mapData(f func(T) T) *Sparse[T] {
	data := make([]T, len(x.data))
	for k := range x.data {
		data[k] = f(x.data[k])
	}

	return &Sparse[T]{sp: x.sp, data: data}
}

// Neg returns -x, element-wise on the stored values.
func (x *Sparse[T]) Neg() *Sparse[T] {
	return x.mapData(func(v T) T { return v.Neg() })
}

// Abs returns |x|, element-wise on the stored values. The pattern is
// unchanged: the absolute value of a structural zero is zero.
func (x *Sparse[T]) Abs() *Sparse[T] {
	return x.mapData(func(v T) T { return v.Abs() })
}

// Scale returns x with every stored value multiplied by v.
func (x *Sparse[T]) Scale(v T) *Sparse[T] {
	return x.mapData(func(w T) T { return w.Mul(v) })
}

// DivScale returns x with every stored value divided by v.
func (x *Sparse[T]) DivScale(v T) *Sparse[T] {
	return x.mapData(func(w T) T { return w.Div(v) })
}

// Add returns x + y on the union of the patterns: positions present in one
// operand keep that operand's value, positions present in both hold the
// sum.
//
// Errors:
//   - ErrDimensionMismatch when the shapes differ.
func (x *Sparse[T]) Add(y *Sparse[T]) (*Sparse[T], error) {
	if err := validateSameShape("Add", x, y); err != nil {
		return nil, err
	}
	sp, tags, err := x.sp.Union(y.sp)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}

	data := make([]T, len(tags))
	a, b := 0, 0
	for k, tag := range tags {
		switch tag {
		case sparsity.UnionLeft:
			data[k] = x.data[a]
			a++
		case sparsity.UnionRight:
			data[k] = y.data[b]
			b++
		default:
			data[k] = x.data[a].Add(y.data[b])
			a++
			b++
		}
	}

	return &Sparse[T]{sp: sp, data: data}, nil
}

// Sub returns x - y on the union of the patterns: positions only in x keep
// x's value, positions only in y hold the negation, shared positions the
// difference.
//
// Errors:
//   - ErrDimensionMismatch when the shapes differ.
func (x *Sparse[T]) Sub(y *Sparse[T]) (*Sparse[T], error) {
	if err := validateSameShape("Sub", x, y); err != nil {
		return nil, err
	}
	sp, tags, err := x.sp.Union(y.sp)
	if err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}

	data := make([]T, len(tags))
	a, b := 0, 0
	for k, tag := range tags {
		switch tag {
		case sparsity.UnionLeft:
			data[k] = x.data[a]
			a++
		case sparsity.UnionRight:
			data[k] = y.data[b].Neg()
			b++
		default:
			data[k] = x.data[a].Sub(y.data[b])
			a++
			b++
		}
	}

	return &Sparse[T]{sp: sp, data: data}, nil
}

// ElemMul returns the element-wise product on the intersection of the
// patterns: a position missing from either operand is zero in the result,
// structurally.
//
// Errors:
//   - ErrDimensionMismatch when the shapes differ.
func (x *Sparse[T]) ElemMul(y *Sparse[T]) (*Sparse[T], error) {
	if err := validateSameShape("ElemMul", x, y); err != nil {
		return nil, err
	}

	nrow, ncol := x.sp.Dims()
	colind := make([]int, 1, ncol+1)
	row := make([]int, 0)
	data := make([]T, 0)
	xci, xrows := x.sp.Colind(), x.sp.Row()
	yci, yrows := y.sp.Colind(), y.sp.Row()
	for j := 0; j < ncol; j++ {
		a, aEnd := xci[j], xci[j+1]
		b, bEnd := yci[j], yci[j+1]
		// Two-pointer sweep keeping only positions present in both.
		for a < aEnd && b < bEnd {
			switch {
			case xrows[a] < yrows[b]:
				a++
			case yrows[b] < xrows[a]:
				b++
			default:
				row = append(row, xrows[a])
				data = append(data, x.data[a].Mul(y.data[b]))
				a++
				b++
			}
		}
		colind = append(colind, len(row))
	}

	sp, err := sparsity.FromCCS(nrow, ncol, colind, row)
	if err != nil {
		panic(err) // built column-major from valid patterns
	}

	return &Sparse[T]{sp: sp, data: data}, nil
}

// Unite merges two matrices with disjoint patterns into one over the
// pattern union, each position keeping the value of whichever operand owns
// it.
//
// Errors:
//   - ErrDimensionMismatch when the shapes differ.
//   - ErrPatternOverlap when any position is structural in both operands.
func (x *Sparse[T]) Unite(y *Sparse[T]) (*Sparse[T], error) {
	if err := validateSameShape("Unite", x, y); err != nil {
		return nil, err
	}
	sp, tags, err := x.sp.Union(y.sp)
	if err != nil {
		return nil, fmt.Errorf("Unite: %w", err)
	}

	data := make([]T, len(tags))
	a, b := 0, 0
	for k, tag := range tags {
		switch tag {
		case sparsity.UnionLeft:
			data[k] = x.data[a]
			a++
		case sparsity.UnionRight:
			data[k] = y.data[b]
			b++
		default:
			return nil, fmt.Errorf("Unite: position %d structural in both operands: %w",
				k, ErrPatternOverlap)
		}
	}

	return &Sparse[T]{sp: sp, data: data}, nil
}
