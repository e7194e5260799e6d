// SPDX-License-Identifier: MIT

// Package matrix: element access and structural queries on Sparse.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsym/sparsity"
)

// NumRows returns the number of rows.
func (x *Sparse[T]) NumRows() int { return x.sp.NumRows() }

// NumCols returns the number of columns.
func (x *Sparse[T]) NumCols() int { return x.sp.NumCols() }

// Dims returns (rows, columns).
func (x *Sparse[T]) Dims() (int, int) { return x.sp.Dims() }

// Numel returns rows*columns, the dense element count.
func (x *Sparse[T]) Numel() int { return x.sp.Numel() }

// Nonzeros returns the number of structural nonzeros.
func (x *Sparse[T]) Nonzeros() int { return x.sp.Nonzeros() }

// Pattern returns the underlying sparsity pattern. Patterns are immutable
// and shared; the caller must not assume it is unique to this matrix.
func (x *Sparse[T]) Pattern() *sparsity.Pattern { return x.sp }

// Data returns the backing value slice in column-major nonzero order,
// without copying. Mutating it mutates the matrix; use Clone first when
// that is not intended.
func (x *Sparse[T]) Data() []T { return x.data }

// IsEmpty reports whether either dimension is zero.
func (x *Sparse[T]) IsEmpty() bool { return x.sp.IsEmpty() }

// IsScalar reports whether the matrix is 1×1.
func (x *Sparse[T]) IsScalar() bool { return x.sp.IsScalar() }

// IsVector reports whether the matrix is a single row or a single column.
func (x *Sparse[T]) IsVector() bool { return x.sp.IsVector() }

// IsSquare reports whether the matrix is square.
func (x *Sparse[T]) IsSquare() bool { return x.sp.IsSquare() }

// IsDense reports whether every position is structural.
func (x *Sparse[T]) IsDense() bool { return x.sp.IsDense() }

// IsTril reports whether all structural nonzeros lie on or below the
// diagonal.
func (x *Sparse[T]) IsTril() bool { return x.sp.IsTril() }

// IsTriu reports whether all structural nonzeros lie on or above the
// diagonal.
func (x *Sparse[T]) IsTriu() bool { return x.sp.IsTriu() }

// At returns the value at (i, j): the stored value when the position is
// structural, the scalar zero otherwise.
//
// Errors:
//   - ErrOutOfRange when (i, j) lies outside the matrix.
func (x *Sparse[T]) At(i, j int) (T, error) {
	var zero T
	if err := validateIndex("At", x.sp.NumRows(), x.sp.NumCols(), i, j); err != nil {
		return zero, err
	}
	if k, ok, _ := x.sp.Index(i, j); ok {
		return x.data[k], nil
	}

	return zeroOf[T](), nil
}

// Set writes v at (i, j), inserting a structural nonzero when the position
// is not yet structural. This is the single mutating operation on Sparse;
// the pattern itself is never mutated, insertion swaps in a fresh one.
//
// Errors:
//   - ErrOutOfRange when (i, j) lies outside the matrix.
func (x *Sparse[T]) Set(i, j int, v T) error {
	if err := validateIndex("Set", x.sp.NumRows(), x.sp.NumCols(), i, j); err != nil {
		return err
	}
	if k, ok, _ := x.sp.Index(i, j); ok {
		x.data[k] = v

		return nil
	}

	sp, pos, err := x.sp.Insert(i, j)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	data := make([]T, 0, len(x.data)+1)
	data = append(data, x.data[:pos]...)
	data = append(data, v)
	data = append(data, x.data[pos:]...)
	x.sp, x.data = sp, data

	return nil
}

// Clone returns a deep copy: the data slice is copied, the immutable
// pattern is shared.
func (x *Sparse[T]) Clone() *Sparse[T] {
	return &Sparse[T]{sp: x.sp, data: append([]T(nil), x.data...)}
}

// ToScalar unwraps a 1×1 matrix into its single value; a structurally
// empty 1×1 yields the scalar zero.
//
// Errors:
//   - ErrNotScalar when the matrix is not 1×1.
func (x *Sparse[T]) ToScalar() (T, error) {
	var zero T
	if !x.sp.IsScalar() {
		return zero, fmt.Errorf("ToScalar: %dx%d: %w", x.sp.NumRows(), x.sp.NumCols(), ErrNotScalar)
	}
	if len(x.data) == 1 {
		return x.data[0], nil
	}

	return zeroOf[T](), nil
}

// Col returns column j as an nrow×1 matrix.
//
// Errors:
//   - ErrOutOfRange when j is outside the matrix.
func (x *Sparse[T]) Col(j int) (*Sparse[T], error) {
	if j < 0 || j >= x.sp.NumCols() {
		return nil, fmt.Errorf("Col: column %d of %d: %w", j, x.sp.NumCols(), ErrOutOfRange)
	}

	lo, hi := x.sp.Colind()[j], x.sp.Colind()[j+1]
	sp, err := sparsity.FromCCS(x.sp.NumRows(), 1, []int{0, hi - lo}, x.sp.Row()[lo:hi])
	if err != nil {
		return nil, fmt.Errorf("Col: %w", err)
	}

	return &Sparse[T]{sp: sp, data: append([]T(nil), x.data[lo:hi]...)}, nil
}

// HasNonStructuralZeros reports whether any structural position holds a
// value known to be zero. Such entries inflate the pattern; Sparsify drops
// them.
func (x *Sparse[T]) HasNonStructuralZeros() bool {
	for k := range x.data {
		if x.data[k].IsZero() {
			return true
		}
	}

	return false
}

// Sparsify returns the matrix with every structural entry whose value is
// known to be zero removed from the pattern. Values the scalar type cannot
// prove zero are kept.
func (x *Sparse[T]) Sparsify() *Sparse[T] {
	nrow, ncol := x.sp.Dims()
	colind := make([]int, 1, ncol+1)
	row := make([]int, 0, len(x.data))
	data := make([]T, 0, len(x.data))
	ci, rows := x.sp.Colind(), x.sp.Row()
	for j := 0; j < ncol; j++ {
		for k := ci[j]; k < ci[j+1]; k++ {
			if x.data[k].IsZero() {
				continue
			}
			row = append(row, rows[k])
			data = append(data, x.data[k])
		}
		colind = append(colind, len(row))
	}

	sp, err := sparsity.FromCCS(nrow, ncol, colind, row)
	if err != nil {
		// The inputs come from a valid pattern; this cannot fire.
		panic(err)
	}

	return &Sparse[T]{sp: sp, data: data}
}

// Densify returns the same matrix over the dense pattern, with the scalar
// zero filled into every previously non-structural position.
func (x *Sparse[T]) Densify() *Sparse[T] {
	nrow, ncol := x.sp.Dims()
	sp, err := sparsity.Dense(nrow, ncol)
	if err != nil {
		panic(err) // dims come from a valid pattern
	}
	ret := New[T](sp)
	ci, rows := x.sp.Colind(), x.sp.Row()
	for j := 0; j < ncol; j++ {
		for k := ci[j]; k < ci[j+1]; k++ {
			ret.data[j*nrow+rows[k]] = x.data[k]
		}
	}

	return ret
}

// Project recasts the matrix onto a target pattern of the same shape:
// positions present in both patterns keep their value, positions only in
// the target read as the scalar zero, and positions only in the receiver
// are dropped.
//
// Errors:
//   - ErrDimensionMismatch when the shapes differ.
func (x *Sparse[T]) Project(sp *sparsity.Pattern) (*Sparse[T], error) {
	if sp == nil {
		panic(panicNilPattern)
	}
	if x.sp.NumRows() != sp.NumRows() || x.sp.NumCols() != sp.NumCols() {
		return nil, fmt.Errorf("Project: %dx%d onto %dx%d: %w",
			x.sp.NumRows(), x.sp.NumCols(), sp.NumRows(), sp.NumCols(), ErrDimensionMismatch)
	}

	ret := New[T](sp)
	sci, srows := x.sp.Colind(), x.sp.Row()
	tci, trows := sp.Colind(), sp.Row()
	for j := 0; j < sp.NumCols(); j++ {
		a, aEnd := sci[j], sci[j+1]
		// Walk the target column, advancing through the source column.
		for t := tci[j]; t < tci[j+1]; t++ {
			for a < aEnd && srows[a] < trows[t] {
				a++
			}
			if a < aEnd && srows[a] == trows[t] {
				ret.data[t] = x.data[a]
			}
		}
	}

	return ret, nil
}

// String renders the matrix dense for debugging, printing structural zeros
// as 00 to keep them apart from stored zero values.
func (x *Sparse[T]) String() string {
	nrow, ncol := x.sp.Dims()
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < nrow; i++ {
		if i > 0 {
			b.WriteString(",\n ")
		}
		b.WriteByte('[')
		for j := 0; j < ncol; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			if k, ok, _ := x.sp.Index(i, j); ok {
				fmt.Fprintf(&b, "%v", x.data[k])
			} else {
				b.WriteString("00")
			}
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}
