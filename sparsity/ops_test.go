// sparsity/ops_test.go
// SPDX-License-Identifier: MIT
// Package sparsity_test contains unit tests for pattern algebra: transpose,
// union, diagonal extraction, reshape, insertion and concatenation.
package sparsity_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsym/sparsity"
)

func TestTranspose_PatternAndMapping(t *testing.T) {
	// p = [x x]    entries in CCS order: (0,0) (1,0) (0,1)
	//     [x .]
	p := mustCCS(t, 2, 2, []int{0, 2, 3}, []int{0, 1, 0})

	pt, mapping := p.Transpose()
	require.Equal(t, 2, pt.NumRows())
	require.Equal(t, 2, pt.NumCols())
	require.Equal(t, 3, pt.Nonzeros())

	// Every original entry lands mirrored.
	require.True(t, pt.Has(0, 0))
	require.True(t, pt.Has(0, 1))
	require.True(t, pt.Has(1, 0))
	require.False(t, pt.Has(1, 1))

	// mapping[k] names the source entry of transpose entry k. Transpose CCS
	// order: (0,0) (1,0) (0,1) sourced from k=0, k=2, k=1.
	require.Equal(t, []int{0, 2, 1}, mapping)
}

func TestTranspose_RoundTrip(t *testing.T) {
	p := mustCCS(t, 3, 2, []int{0, 2, 3}, []int{0, 2, 1})

	pt, _ := p.Transpose()
	back, _ := pt.Transpose()
	require.True(t, p.Equal(back))

	// Double transpose must reproduce the CCS arrays verbatim, not just an
	// equivalent pattern.
	if diff := cmp.Diff(p.Colind(), back.Colind()); diff != "" {
		t.Fatalf("colind mismatch after double transpose (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p.Row(), back.Row()); diff != "" {
		t.Fatalf("row mismatch after double transpose (-want +got):\n%s", diff)
	}
}

func TestUnion_Tags(t *testing.T) {
	// p = [x .]   q = [. .]
	//     [. x]       [x x]
	p := mustCCS(t, 2, 2, []int{0, 1, 2}, []int{0, 1})
	q := mustCCS(t, 2, 2, []int{0, 1, 2}, []int{1, 1})

	u, tags, err := p.Union(q)
	require.NoError(t, err)
	require.Equal(t, 3, u.Nonzeros())

	// Union CCS order: (0,0) left-only, (1,0) right-only, (1,1) both.
	require.Equal(t, []int{0, 1, 1}, u.Row())
	require.Equal(t, []uint8{sparsity.UnionLeft, sparsity.UnionRight, sparsity.UnionBoth}, tags)
}

func TestUnion_ShapeMismatch(t *testing.T) {
	p, _ := sparsity.Dense(2, 2)
	q, _ := sparsity.Dense(2, 3)
	_, _, err := p.Union(q)
	require.ErrorIs(t, err, sparsity.ErrDimensionMismatch)
}

func TestUnion_WithEmptyOperand(t *testing.T) {
	p := mustCCS(t, 2, 2, []int{0, 1, 2}, []int{0, 1})
	q, _ := sparsity.Empty(2, 2)

	u, tags, err := p.Union(q)
	require.NoError(t, err)
	require.True(t, u.Equal(p))
	for _, tag := range tags {
		require.Equal(t, sparsity.UnionLeft, tag)
	}
}

func TestDiag_ExtractionMapping(t *testing.T) {
	// 3×3 with (0,0), (2,1), (2,2): diagonal hits at d=0 and d=2.
	p := mustCCS(t, 3, 3, []int{0, 1, 2, 3}, []int{0, 2, 2})

	d, mapping := p.Diag()
	require.Equal(t, 3, d.NumRows())
	require.Equal(t, 1, d.NumCols())
	require.Equal(t, 2, d.Nonzeros())
	require.True(t, d.Has(0, 0))
	require.False(t, d.Has(1, 0))
	require.True(t, d.Has(2, 0))

	// (0,0) is nonzero 0, (2,2) is nonzero 2 of the receiver.
	require.Equal(t, []int{0, 2}, mapping)
}

func TestDiag_Rectangular(t *testing.T) {
	// The diagonal of a 2×4 pattern has min(2,4)=2 slots.
	p, _ := sparsity.Dense(2, 4)
	d, mapping := p.Diag()
	require.Equal(t, 2, d.NumRows())
	require.Equal(t, 2, d.Nonzeros())
	require.Equal(t, []int{0, 3}, mapping)
}

func TestReshape_PreservesLinearIndices(t *testing.T) {
	// 2×3 with entries (0,0)=lin 0, (1,1)=lin 3, (0,2)=lin 4.
	p := mustCCS(t, 2, 3, []int{0, 1, 2, 3}, []int{0, 1, 0})

	r, err := p.Reshape(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, r.Nonzeros())

	// lin 0 → (0,0); lin 3 → (0,1); lin 4 → (1,1).
	require.True(t, r.Has(0, 0))
	require.True(t, r.Has(0, 1))
	require.True(t, r.Has(1, 1))

	// Flattening to a column preserves the linear positions directly.
	v, err := p.Reshape(6, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 4}, v.Row())
}

func TestReshape_Errors(t *testing.T) {
	p, _ := sparsity.Dense(2, 3)

	_, err := p.Reshape(4, 2)
	require.ErrorIs(t, err, sparsity.ErrNumelMismatch)

	_, err = p.Reshape(-2, -3)
	require.ErrorIs(t, err, sparsity.ErrBadShape)
}

func TestInsert(t *testing.T) {
	p, _ := sparsity.Empty(2, 2)

	q, pos, err := p.Insert(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, pos)
	require.Equal(t, 1, q.Nonzeros())
	require.True(t, q.Has(1, 0))
	require.Equal(t, 0, p.Nonzeros(), "the receiver is immutable")

	// Inserting above the existing entry shifts it.
	r, pos, err := q.Insert(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, pos)
	require.Equal(t, []int{0, 1}, r.Row())

	// A later column leaves earlier entries in place.
	s, pos, err := r.Insert(1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, pos)
	require.Equal(t, []int{0, 2, 3}, s.Colind())

	// Inserting a present position returns the receiver itself.
	same, pos, err := s.Insert(1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, pos)
	require.True(t, same == s)

	_, _, err = s.Insert(5, 0)
	require.ErrorIs(t, err, sparsity.ErrIndexOutOfRange)
}

func TestHorzCat(t *testing.T) {
	a := mustCCS(t, 2, 1, []int{0, 1}, []int{0})
	b := mustCCS(t, 2, 2, []int{0, 1, 2}, []int{1, 0})

	cat, err := sparsity.HorzCat(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, cat.NumRows())
	require.Equal(t, 3, cat.NumCols())
	require.Equal(t, 3, cat.Nonzeros())

	require.True(t, cat.Has(0, 0))
	require.True(t, cat.Has(1, 1))
	require.True(t, cat.Has(0, 2))

	// Nonzero order is the operands' orders concatenated.
	require.Equal(t, []int{0, 1, 0}, cat.Row())
	require.Equal(t, []int{0, 1, 2, 3}, cat.Colind())
}

func TestHorzCat_Errors(t *testing.T) {
	a, _ := sparsity.Dense(2, 1)
	b, _ := sparsity.Dense(3, 1)
	_, err := sparsity.HorzCat(a, b)
	require.ErrorIs(t, err, sparsity.ErrDimensionMismatch)

	// No operands concatenate to the 0×0 pattern.
	z, err := sparsity.HorzCat()
	require.NoError(t, err)
	require.True(t, z.IsEmpty())
}

func TestBlockDiag(t *testing.T) {
	a, _ := sparsity.Dense(1, 1)
	b := mustCCS(t, 2, 2, []int{0, 1, 2}, []int{0, 1})

	bd := sparsity.BlockDiag(a, b)
	require.Equal(t, 3, bd.NumRows())
	require.Equal(t, 3, bd.NumCols())
	require.Equal(t, 3, bd.Nonzeros())

	require.True(t, bd.Has(0, 0))
	require.True(t, bd.Has(1, 1))
	require.True(t, bd.Has(2, 2))
	require.False(t, bd.Has(0, 1))
	require.False(t, bd.Has(1, 0))

	// Off-diagonal blocks stay structurally empty.
	require.True(t, bd.IsDiagonal())
}

func TestBlockDiag_NoParts(t *testing.T) {
	bd := sparsity.BlockDiag()
	require.True(t, bd.IsEmpty())
	require.Equal(t, 0, bd.Nonzeros())
}
