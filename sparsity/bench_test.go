package sparsity_test

import (
	"testing"

	"github.com/katalvlaran/lvsym/sparsity"
)

// tridiagonalPattern builds the n-by-n pattern holding the main diagonal and
// both first off-diagonals.
func tridiagonalPattern(b *testing.B, n int) *sparsity.Pattern {
	rows := make([]int, 0, 3*n)
	cols := make([]int, 0, 3*n)
	for j := 0; j < n; j++ {
		for _, i := range []int{j - 1, j, j + 1} {
			if i >= 0 && i < n {
				rows = append(rows, i)
				cols = append(cols, j)
			}
		}
	}
	p, err := sparsity.FromTriplets(n, n, rows, cols)
	if err != nil {
		b.Fatalf("FromTriplets(%d): %v", n, err)
	}
	return p
}

// BenchmarkFromTriplets measures CCS assembly from an unsorted triplet soup
// with duplicates (200 columns, five scattered entries per column).
func BenchmarkFromTriplets(b *testing.B) {
	const n = 200
	rows := make([]int, 0, 5*n)
	cols := make([]int, 0, 5*n)
	for j := 0; j < n; j++ {
		// k = 4 wraps onto k = 0, so every column carries one duplicate.
		for k := 0; k < 5; k++ {
			rows = append(rows, (j*37+k*50)%n)
			cols = append(cols, j)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sparsity.FromTriplets(n, n, rows, cols); err != nil {
			b.Fatalf("FromTriplets: %v", err)
		}
	}
}

// BenchmarkTranspose measures the counting transpose on a 500-point band.
func BenchmarkTranspose(b *testing.B) {
	p := tridiagonalPattern(b, 500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Transpose()
	}
}

// BenchmarkUnion measures the two-pointer column merge of a band with a
// plain diagonal.
func BenchmarkUnion(b *testing.B) {
	p := tridiagonalPattern(b, 500)
	q, err := sparsity.Diagonal(500)
	if err != nil {
		b.Fatalf("Diagonal: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := p.Union(q); err != nil {
			b.Fatalf("Union: %v", err)
		}
	}
}

// BenchmarkBlockTriangularize measures matching plus strongly connected
// component collapse on a fully coupled 200-point band.
func BenchmarkBlockTriangularize(b *testing.B) {
	p := tridiagonalPattern(b, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.BlockTriangularize(); err != nil {
			b.Fatalf("BlockTriangularize: %v", err)
		}
	}
}
