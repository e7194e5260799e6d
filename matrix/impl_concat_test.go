// matrix/impl_concat_test.go
// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsym/matrix"
)

func TestHorzCat(t *testing.T) {
	a := mustFromDense(t, [][]matrix.Real{{1}, {2}})
	b := mustFromDense(t, [][]matrix.Real{{3, 5}, {4, 6}})

	c, err := matrix.HorzCat(a, b)
	require.NoError(t, err)
	requireAllClose(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, c, 0)
	// The nonzero order is the operands' data back to back.
	require.Equal(t, []matrix.Real{1, 2, 3, 4, 5, 6}, c.Data())

	_, err = matrix.HorzCat(a, mustFromDense(t, [][]matrix.Real{{9}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVertCat(t *testing.T) {
	a := mustFromDense(t, [][]matrix.Real{{1, 2}})
	b := mustFromDense(t, [][]matrix.Real{{3, 4}, {5, 6}})

	v, err := matrix.VertCat(a, b)
	require.NoError(t, err)
	requireAllClose(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, v, 0)

	_, err = matrix.VertCat(a, mustFromDense(t, [][]matrix.Real{{9}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestBlockCat(t *testing.T) {
	a := mustFromDense(t, [][]matrix.Real{{1}})
	b := mustFromDense(t, [][]matrix.Real{{2}})
	c := mustFromDense(t, [][]matrix.Real{{3}})
	d := mustFromDense(t, [][]matrix.Real{{4}})

	m, err := matrix.BlockCat([][]*matrix.Sparse[matrix.Real]{{a, b}, {c, d}})
	require.NoError(t, err)
	requireAllClose(t, [][]float64{{1, 2}, {3, 4}}, m, 0)

	tall := mustFromDense(t, [][]matrix.Real{{9}, {9}})
	_, err = matrix.BlockCat([][]*matrix.Sparse[matrix.Real]{{a, tall}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestBlockDiag(t *testing.T) {
	a := mustFromDense(t, [][]matrix.Real{{1, 2}})
	b := mustFromDense(t, [][]matrix.Real{{3}, {4}})

	d := matrix.BlockDiag(a, b)
	require.Equal(t, 3, d.NumRows())
	require.Equal(t, 3, d.NumCols())
	requireAllClose(t, [][]float64{{1, 2, 0}, {0, 0, 3}, {0, 0, 4}}, d, 0)
	require.Equal(t, []matrix.Real{1, 2, 3, 4}, d.Data())
	// The off-block positions are structural zeros.
	require.Equal(t, 4, d.Nonzeros())
}

func TestHorzSplit(t *testing.T) {
	x := mustFromDense(t, [][]matrix.Real{{1, 2, 3, 4}})

	parts, err := x.HorzSplit([]int{0, 1, 3})
	require.NoError(t, err)
	require.Len(t, parts, 3)
	requireAllClose(t, [][]float64{{1}}, parts[0], 0)
	requireAllClose(t, [][]float64{{2, 3}}, parts[1], 0)
	requireAllClose(t, [][]float64{{4}}, parts[2], 0)

	for _, offsets := range [][]int{nil, {1, 2}, {0, 3, 2}, {0, 5}} {
		_, err = x.HorzSplit(offsets)
		require.ErrorIs(t, err, matrix.ErrBadOffsets, "offsets %v", offsets)
	}
}

func TestHorzSplit_InvertsHorzCat(t *testing.T) {
	a := mustFromCCS(t, 2, 2, []int{0, 1, 2}, []int{0, 1}, []matrix.Real{1, 2})
	b := mustFromDense(t, [][]matrix.Real{{3}, {4}})

	cat, err := matrix.HorzCat(a, b)
	require.NoError(t, err)
	parts, err := cat.HorzSplit([]int{0, a.NumCols()})
	require.NoError(t, err)
	require.Len(t, parts, 2)

	require.True(t, a.Pattern().Equal(parts[0].Pattern()))
	require.True(t, b.Pattern().Equal(parts[1].Pattern()))
	if diff := cmp.Diff(a.Data(), parts[0].Data()); diff != "" {
		t.Fatalf("left band data mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b.Data(), parts[1].Data()); diff != "" {
		t.Fatalf("right band data mismatch (-want +got):\n%s", diff)
	}
}

func TestHorzSplitEvery(t *testing.T) {
	x := mustFromDense(t, [][]matrix.Real{{1, 2, 3, 4, 5}})

	parts, err := x.HorzSplitEvery(2)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	require.Equal(t, 2, parts[0].NumCols())
	require.Equal(t, 2, parts[1].NumCols())
	require.Equal(t, 1, parts[2].NumCols()) // the remainder band
	requireAllClose(t, [][]float64{{5}}, parts[2], 0)

	_, err = x.HorzSplitEvery(0)
	require.ErrorIs(t, err, matrix.ErrBadOffsets)
}

func TestVertSplit(t *testing.T) {
	x := mustFromDense(t, [][]matrix.Real{{1}, {2}, {3}})

	parts, err := x.VertSplit([]int{0, 2})
	require.NoError(t, err)
	require.Len(t, parts, 2)
	requireAllClose(t, [][]float64{{1}, {2}}, parts[0], 0)
	requireAllClose(t, [][]float64{{3}}, parts[1], 0)

	_, err = x.VertSplit([]int{0, 4})
	require.ErrorIs(t, err, matrix.ErrBadOffsets)
}

func TestVertSplitEvery(t *testing.T) {
	x := mustFromDense(t, [][]matrix.Real{{1}, {2}, {3}, {4}, {5}})

	parts, err := x.VertSplitEvery(2)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	require.Equal(t, 2, parts[0].NumRows())
	require.Equal(t, 2, parts[1].NumRows())
	require.Equal(t, 1, parts[2].NumRows()) // the remainder band
	requireAllClose(t, [][]float64{{5}}, parts[2], 0)

	_, err = x.VertSplitEvery(0)
	require.ErrorIs(t, err, matrix.ErrBadOffsets)
}

func TestBlockSplit(t *testing.T) {
	x := mustFromDense(t, [][]matrix.Real{{1, 2}, {3, 4}})

	blocks, err := x.BlockSplit([]int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	for i, wantRow := range [][]float64{{1, 2}, {3, 4}} {
		require.Len(t, blocks[i], 2)
		for j, want := range wantRow {
			v, err := blocks[i][j].ToScalar()
			require.NoError(t, err)
			require.Equal(t, matrix.Real(want), v)
		}
	}
}

func TestKron(t *testing.T) {
	x := mustFromDense(t, [][]matrix.Real{{1, 2}})
	y := mustFromDense(t, [][]matrix.Real{{1}, {10}})

	k := x.Kron(y)
	requireAllClose(t, [][]float64{{1, 2}, {10, 20}}, k, 0)

	// A structural zero in x contributes a structurally zero block.
	s := mustFromCCS(t, 1, 2, []int{0, 1, 1}, []int{0}, []matrix.Real{3})
	k2 := s.Kron(y)
	require.Equal(t, 2, k2.Nonzeros())
	requireAllClose(t, [][]float64{{3, 0}, {30, 0}}, k2, 0)
}

func TestRepmat(t *testing.T) {
	x := mustFromDense(t, [][]matrix.Real{{1, 2}})

	r, err := x.Repmat(2, 3)
	require.NoError(t, err)
	requireAllClose(t, [][]float64{
		{1, 2, 1, 2, 1, 2},
		{1, 2, 1, 2, 1, 2},
	}, r, 0)

	empty, err := x.Repmat(0, 2)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = x.Repmat(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
