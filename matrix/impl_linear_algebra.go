// SPDX-License-Identifier: MIT

// Package matrix: products and direct methods. The solver never picks a
// numeric pivot: dispatch is purely structural (triangularity, known
// zeros, block-triangular form), so the same code path serves float and
// symbolic matrices alike.

package matrix

import (
	"fmt"
	"sort"
)

// Mul returns the matrix product x·y.
//
// Blueprint:
//
//	Stage 1 (Validate): inner dimensions must agree.
//	Stage 2 (Execute): Gustavson's column-wise product with a dense
//	        accumulator; entry (i,j) exists when some k has both (i,k)
//	        and (k,j) structural, values accumulate as they come.
//	Stage 3 (Finalize): sort each column's hits and emit CCS.
//
// Complexity:
//   - Time O(Σ_k nnz(x col k)·nnz(y col j over k) + flops), Space O(nrow).
//
// Errors:
//   - ErrDimensionMismatch when x.NumCols() != y.NumRows().
func (x *Sparse[T]) Mul(y *Sparse[T]) (*Sparse[T], error) {
	// Stage 1: Validate conformity.
	if x.sp.NumCols() != y.sp.NumRows() {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w",
			x.sp.NumRows(), x.sp.NumCols(), y.sp.NumRows(), y.sp.NumCols(), ErrDimensionMismatch)
	}

	// Stage 2: Column-wise accumulation.
	m, n := x.sp.NumRows(), y.sp.NumCols()
	acc := make([]T, m)         // dense value accumulator for one column
	occupied := make([]bool, m) // which accumulator slots are live
	hits := make([]int, 0, m)   // live rows, unsorted

	colind := make([]int, 1, n+1)
	row := make([]int, 0)
	data := make([]T, 0)
	xci, xrows := x.sp.Colind(), x.sp.Row()
	yci, yrows := y.sp.Colind(), y.sp.Row()
	for j := 0; j < n; j++ {
		hits = hits[:0]
		for t := yci[j]; t < yci[j+1]; t++ {
			k := yrows[t]  // column of x to scale
			b := y.data[t] // scaling value
			for s := xci[k]; s < xci[k+1]; s++ {
				i := xrows[s]
				if !occupied[i] {
					occupied[i] = true
					acc[i] = x.data[s].Mul(b)
					hits = append(hits, i)
				} else {
					acc[i] = acc[i].Add(x.data[s].Mul(b))
				}
			}
		}

		// Stage 3: Emit the column in increasing row order.
		sort.Ints(hits)
		for _, i := range hits {
			row = append(row, i)
			data = append(data, acc[i])
			occupied[i] = false
		}
		colind = append(colind, len(row))
	}

	return newFromCCS(m, n, colind, row, data), nil
}

// Det returns the determinant by sparsity-guided minor expansion.
//
// Blueprint:
//
//	Stage 1 (Validate): square only; 0×0 is the empty product, one.
//	Stage 2 (Closed forms): 1×1 and 2×2 expand directly.
//	Stage 3 (Count): tally structural nonzeros per row and per column; a
//	        blank row or column makes the determinant structurally zero.
//	Stage 4 (Expand): pick the sparsest row or column (count ties favor
//	        the row) and sum value·cofactor over its structural entries.
//
// Complexity:
//   - Factorial in the worst (dense) case; intended for small or highly
//     structured matrices.
//
// Errors:
//   - ErrNonSquare on rectangular matrices.
func (x *Sparse[T]) Det() (T, error) {
	var zero T
	// Stage 1: Validate shape.
	if err := validateSquare("Det", x); err != nil {
		return zero, err
	}
	n := x.sp.NumCols()
	if n == 0 {
		return oneOf[T](), nil
	}

	// Stage 2: Closed forms.
	if n == 1 {
		return x.ToScalar()
	}
	if n == 2 {
		a00 := x.at(0, 0)
		a01 := x.at(0, 1)
		a10 := x.at(1, 0)
		a11 := x.at(1, 1)

		return a00.Mul(a11).Sub(a01.Mul(a10)), nil
	}

	// Stage 3: Structural counts per row and column.
	rowCount := make([]int, n)
	colCount := make([]int, n)
	ci, rows := x.sp.Colind(), x.sp.Row()
	for j := 0; j < n; j++ {
		for k := ci[j]; k < ci[j+1]; k++ {
			rowCount[rows[k]]++
			colCount[j]++
		}
	}
	minRow, minCol := 0, 0
	for i := 1; i < n; i++ {
		if rowCount[i] < rowCount[minRow] {
			minRow = i
		}
		if colCount[i] < colCount[minCol] {
			minCol = i
		}
	}
	if rowCount[minRow] == 0 || colCount[minCol] == 0 {
		return zeroOf[T](), nil
	}

	// Stage 4: Expand along the sparser direction.
	ret := zeroOf[T]()
	if rowCount[minRow] <= colCount[minCol] {
		i := minRow
		for j := 0; j < n; j++ {
			k, ok, _ := x.sp.Index(i, j)
			if !ok {
				continue
			}
			cof, err := x.Cofactor(i, j)
			if err != nil {
				return zero, fmt.Errorf("Det: %w", err)
			}
			ret = ret.Add(x.data[k].Mul(cof))
		}

		return ret, nil
	}

	j := minCol
	for k := ci[j]; k < ci[j+1]; k++ {
		cof, err := x.Cofactor(rows[k], j)
		if err != nil {
			return zero, fmt.Errorf("Det: %w", err)
		}
		ret = ret.Add(x.data[k].Mul(cof))
	}

	return ret, nil
}

// Minor returns the determinant of the matrix with row i and column j
// removed. On a 1×1 matrix the minor is one, so that Cofactor degenerates
// to the sign alone.
//
// Errors:
//   - ErrNonSquare on rectangular matrices.
//   - ErrOutOfRange when (i, j) lies outside the matrix.
func (x *Sparse[T]) Minor(i, j int) (T, error) {
	var zero T
	if err := validateSquare("Minor", x); err != nil {
		return zero, err
	}
	n := x.sp.NumCols()
	if err := validateIndex("Minor", n, n, i, j); err != nil {
		return zero, err
	}
	if n == 1 {
		return oneOf[T](), nil
	}

	// Drop row i and column j, shifting the higher indices down one.
	colind := make([]int, 1, n)
	row := make([]int, 0, len(x.data))
	data := make([]T, 0, len(x.data))
	ci, rows := x.sp.Colind(), x.sp.Row()
	for c := 0; c < n; c++ {
		if c == j {
			continue
		}
		for k := ci[c]; k < ci[c+1]; k++ {
			r := rows[k]
			if r == i {
				continue
			}
			if r > i {
				r--
			}
			row = append(row, r)
			data = append(data, x.data[k])
		}
		colind = append(colind, len(row))
	}

	return newFromCCS(n-1, n-1, colind, row, data).Det()
}

// Cofactor returns (-1)^(i+j) times the (i, j) minor.
//
// Errors:
//   - ErrNonSquare on rectangular matrices.
//   - ErrOutOfRange when (i, j) lies outside the matrix.
func (x *Sparse[T]) Cofactor(i, j int) (T, error) {
	var zero T
	minor, err := x.Minor(i, j)
	if err != nil {
		return zero, fmt.Errorf("Cofactor: %w", err)
	}
	if (i+j)%2 == 1 {
		return minor.Neg(), nil
	}

	return minor, nil
}

// Adjugate returns the transposed cofactor matrix. Cofactors that are
// known to be zero are left structurally absent, so the adjugate of a
// sparse matrix stays sparse.
//
// Errors:
//   - ErrNonSquare on rectangular matrices.
func (x *Sparse[T]) Adjugate() (*Sparse[T], error) {
	if err := validateSquare("Adjugate", x); err != nil {
		return nil, err
	}
	n := x.sp.NumCols()

	// Cofactor matrix, built column-major.
	colind := make([]int, 1, n+1)
	row := make([]int, 0)
	data := make([]T, 0)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			cof, err := x.Cofactor(i, j)
			if err != nil {
				return nil, fmt.Errorf("Adjugate: %w", err)
			}
			if cof.IsZero() {
				continue
			}
			row = append(row, i)
			data = append(data, cof)
		}
		colind = append(colind, len(row))
	}

	return newFromCCS(n, n, colind, row, data).Transpose(), nil
}

// Inverse returns the inverse by the Laplace formula, adjugate over
// determinant.
//
// Errors:
//   - ErrNonSquare on rectangular matrices.
//   - ErrSingular when the determinant is known to be zero.
func (x *Sparse[T]) Inverse() (*Sparse[T], error) {
	adj, err := x.Adjugate()
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	det, err := x.Det()
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	if det.IsZero() {
		return nil, fmt.Errorf("Inverse: zero determinant: %w", ErrSingular)
	}

	return adj.DivScale(det), nil
}

// QR factorizes x into an orthonormal Q (nrow×ncol) and upper-triangular R
// (ncol×ncol) with x = Q·R, by modified Gram-Schmidt.
//
// Blueprint:
//
//	Stage 1 (Validate): at least as many rows as columns.
//	Stage 2 (Orthogonalize): for each column, subtract its projection on
//	        every previous q; projections that are structurally zero are
//	        recorded as holes in R and skipped.
//	Stage 3 (Normalize): divide by the Frobenius norm and append the new
//	        column to Q and its coefficients to R.
//
// Rank-deficient input is not detected here; a zero column yields a zero
// q-column and a zero diagonal in R, surfacing later as ErrSingular in
// Solve's back-substitution.
//
// Errors:
//   - ErrUnderdetermined when nrow < ncol.
func (x *Sparse[T]) QR() (*Sparse[T], *Sparse[T], error) {
	// Stage 1: Validate shape.
	m, n := x.sp.Dims()
	if m < n {
		return nil, nil, fmt.Errorf("QR: %dx%d: %w", m, n, ErrUnderdetermined)
	}

	qCols := make([]*Sparse[T], 0, n)
	rCols := make([]*Sparse[T], 0, n)
	for i := 0; i < n; i++ {
		qi, err := x.Col(i)
		if err != nil {
			return nil, nil, fmt.Errorf("QR: %w", err)
		}
		ri, err := Zeros[T](n, 1)
		if err != nil {
			return nil, nil, fmt.Errorf("QR: %w", err)
		}

		// Stage 2: Subtract the projections on the previous directions.
		for j := 0; j < i; j++ {
			proj, err := qi.Transpose().Mul(qCols[j])
			if err != nil {
				return nil, nil, fmt.Errorf("QR: %w", err)
			}
			if proj.Nonzeros() == 0 {
				continue // structurally orthogonal, R keeps a hole
			}
			rij := proj.data[0]
			if err = ri.Set(j, 0, rij); err != nil {
				return nil, nil, fmt.Errorf("QR: %w", err)
			}
			if qi, err = qi.Sub(qCols[j].Scale(rij)); err != nil {
				return nil, nil, fmt.Errorf("QR: %w", err)
			}
		}

		// Stage 3: Normalize and append.
		norm := qi.NormF()
		if err = ri.Set(i, 0, norm); err != nil {
			return nil, nil, fmt.Errorf("QR: %w", err)
		}
		qCols = append(qCols, qi.DivScale(norm))
		rCols = append(rCols, ri)
	}

	q, err := HorzCat(qCols...)
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}
	r, err := HorzCat(rCols...)
	if err != nil {
		return nil, nil, fmt.Errorf("QR: %w", err)
	}

	return q, r, nil
}

// Solve returns x with A·x = b for the square receiver A, dispatching on
// structure rather than on values.
//
// Blueprint:
//
//	Stage 1 (Validate): A square, row counts of A and b equal.
//	Stage 2 (Triangular): forward or backward substitution when the
//	        pattern is already triangular.
//	Stage 3 (Prune): stored zeros inflate the pattern; drop them and
//	        re-dispatch once.
//	Stage 4 (Block-triangularize): permute to block lower-triangular
//	        form; solve the permuted system by substitution when it comes
//	        out triangular, by adjugate inversion when tiny, and through
//	        QR otherwise.
//	Stage 5 (Finalize): undo the column permutation.
//
// Errors:
//   - ErrDimensionMismatch, ErrNonSquare on malformed systems.
//   - ErrSingular on a zero pivot in substitution or a zero determinant.
//   - sparsity.ErrStructurallySingular when no perfect matching exists.
func (x *Sparse[T]) Solve(b *Sparse[T], opts ...Option) (*Sparse[T], error) {
	return x.solve(b, gatherSolveOptions(opts...))
}

func (x *Sparse[T]) solve(b *Sparse[T], options solveOptions) (*Sparse[T], error) {
	// Stage 1: Validate the system.
	if x.sp.NumRows() != b.sp.NumRows() {
		return nil, fmt.Errorf("Solve: A has %d rows, b has %d: %w",
			x.sp.NumRows(), b.sp.NumRows(), ErrDimensionMismatch)
	}
	if err := validateSquare("Solve", x); err != nil {
		return nil, err
	}

	// Stage 2: Triangular fast paths.
	if x.sp.IsTril() {
		return x.forwardSubstitution(b)
	}
	if x.sp.IsTriu() {
		return x.backwardSubstitution(b)
	}

	// Stage 3: Known zeros may hide triangularity; prune and re-dispatch.
	if x.HasNonStructuralZeros() {
		return x.Sparsify().solve(b, options)
	}

	// Stage 4: Permute to block lower-triangular form.
	bt, err := x.sp.BlockTriangularize()
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	bperm, err := b.PermuteRows(bt.RowPerm)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	aperm, err := x.Permute(bt.RowPerm, bt.ColPerm)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	var xperm *Sparse[T]
	switch {
	case aperm.sp.IsTril():
		xperm, err = aperm.solve(bperm, options)
	case x.sp.NumCols() <= options.directLimit:
		var inv *Sparse[T]
		if inv, err = aperm.Inverse(); err == nil {
			xperm, err = inv.Mul(bperm)
		}
	default:
		var q, r *Sparse[T]
		if q, r, err = aperm.QR(); err == nil {
			var qtb *Sparse[T]
			if qtb, err = q.Transpose().Mul(bperm); err == nil {
				xperm, err = r.solve(qtb, options)
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stage 5: Undo the column permutation.
	ret, err := xperm.PermuteRows(invertPermutation(bt.ColPerm))
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return ret, nil
}

// forwardSubstitution solves the lower-triangular system column by column,
// touching only positions that are structurally live: a right-hand side
// entry that is structurally zero never spawns work, so structural zeros
// propagate from b into x.
func (x *Sparse[T]) forwardSubstitution(b *Sparse[T]) (*Sparse[T], error) {
	n, nrhs := x.sp.NumCols(), b.sp.NumCols()
	aci, arows := x.sp.Colind(), x.sp.Row()
	bci, brows := b.sp.Colind(), b.sp.Row()

	val := make([]T, n)
	present := make([]bool, n)
	cols := make([]*Sparse[T], nrhs)
	for k := 0; k < nrhs; k++ {
		// Load dense buffers with column k of b.
		for i := range present {
			present[i] = false
		}
		for t := bci[k]; t < bci[k+1]; t++ {
			present[brows[t]] = true
			val[brows[t]] = b.data[t]
		}

		for i := 0; i < n; i++ {
			if !present[i] {
				continue
			}
			pivot := x.at(i, i)
			if pivot.IsZero() {
				return nil, fmt.Errorf("Solve: zero pivot at %d: %w", i, ErrSingular)
			}
			val[i] = val[i].Div(pivot)
			// Eliminate the entries strictly below the diagonal.
			for kk := aci[i+1] - 1; kk >= aci[i] && arows[kk] > i; kk-- {
				j := arows[kk]
				if present[j] {
					val[j] = val[j].Sub(x.data[kk].Mul(val[i]))
				} else {
					present[j] = true
					val[j] = x.data[kk].Mul(val[i]).Neg()
				}
			}
		}
		cols[k] = columnFromBuffer(n, val, present)
	}

	ret, err := HorzCat(cols...)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return ret, nil
}

// backwardSubstitution solves the upper-triangular system, the mirror of
// forwardSubstitution: columns run backwards, elimination walks the
// entries strictly above the diagonal.
func (x *Sparse[T]) backwardSubstitution(b *Sparse[T]) (*Sparse[T], error) {
	n, nrhs := x.sp.NumCols(), b.sp.NumCols()
	aci, arows := x.sp.Colind(), x.sp.Row()
	bci, brows := b.sp.Colind(), b.sp.Row()

	val := make([]T, n)
	present := make([]bool, n)
	cols := make([]*Sparse[T], nrhs)
	for k := 0; k < nrhs; k++ {
		for i := range present {
			present[i] = false
		}
		for t := bci[k]; t < bci[k+1]; t++ {
			present[brows[t]] = true
			val[brows[t]] = b.data[t]
		}

		for i := n - 1; i >= 0; i-- {
			if !present[i] {
				continue
			}
			pivot := x.at(i, i)
			if pivot.IsZero() {
				return nil, fmt.Errorf("Solve: zero pivot at %d: %w", i, ErrSingular)
			}
			val[i] = val[i].Div(pivot)
			for kk := aci[i]; kk < aci[i+1] && arows[kk] < i; kk++ {
				j := arows[kk]
				if present[j] {
					val[j] = val[j].Sub(x.data[kk].Mul(val[i]))
				} else {
					present[j] = true
					val[j] = x.data[kk].Mul(val[i]).Neg()
				}
			}
		}
		cols[k] = columnFromBuffer(n, val, present)
	}

	ret, err := HorzCat(cols...)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return ret, nil
}

// Nullspace returns an m×(m-n) matrix Z with x·Z = 0 for a flat full-rank
// x (n rows, m >= n columns), via successive Householder reflections
// applied forward over the rows and backward over an identity seed.
//
// Errors:
//   - ErrBadShape when the matrix has more rows than columns.
//   - ErrRankDeficient when a reflection meets a zero-norm row remainder.
func (x *Sparse[T]) Nullspace() (*Sparse[T], error) {
	n, m := x.sp.Dims()
	if m < n {
		return nil, fmt.Errorf("Nullspace: %dx%d, want a flat matrix: %w", n, m, ErrBadShape)
	}

	one := oneOf[T]()
	work := x.Clone()
	eye, err := Identity[T](m)
	if err != nil {
		return nil, fmt.Errorf("Nullspace: %w", err)
	}
	seed, err := eye.Slice(0, m, n, m)
	if err != nil {
		return nil, fmt.Errorf("Nullspace: %w", err)
	}

	// Forward pass: reduce each row remainder with a reflection u, beta.
	us := make([]*Sparse[T], 0, n)
	betas := make([]T, 0, n)
	for i := 0; i < n; i++ {
		xrow, err := work.Slice(i, i+1, i, m)
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		sq, err := xrow.ElemMul(xrow)
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		sig, err := sq.SumCols().ToScalar()
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		sigma := sig.Sqrt()
		if sigma.IsZero() {
			return nil, fmt.Errorf("Nullspace: zero remainder at row %d: %w", i, ErrRankDeficient)
		}
		x0, err := xrow.At(0, 0)
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}

		u := xrow.Clone()
		if err = u.Set(0, 0, one); err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		pivot := sigma.CopySign(x0).Neg()
		rest, err := u.Slice(0, 1, 1, m-i)
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		u = u.setSlice(0, 1, rest.Scale(one.Div(x0.Sub(pivot))))
		beta := one.Sub(x0.Div(pivot))

		blk, err := work.Slice(i, n, i, m)
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		bu, err := blk.Mul(u.Transpose())
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		buu, err := bu.Mul(u)
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		upd, err := blk.Sub(buu.Scale(beta))
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		work = work.setSlice(i, i, upd)

		us = append(us, u)
		betas = append(betas, beta)
	}

	// Backward pass: apply the reflections to the seed in reverse.
	for i := n - 1; i >= 0; i-- {
		blk, err := seed.Slice(i, m, 0, m-n)
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		ub, err := us[i].Mul(blk)
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		uub, err := us[i].Transpose().Mul(ub)
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		upd, err := blk.Sub(uub.Scale(betas[i]))
		if err != nil {
			return nil, fmt.Errorf("Nullspace: %w", err)
		}
		seed = seed.setSlice(i, 0, upd)
	}

	return seed, nil
}

// Pinv returns the Moore-Penrose pseudoinverse through the normal
// equations: solve(A·Aᵀ, A)ᵀ for flat matrices, solve(Aᵀ·A, Aᵀ) for tall
// ones. Options pass through to the inner Solve.
//
// Errors:
//   - those of Solve on the normal-equation system.
func (x *Sparse[T]) Pinv(opts ...Option) (*Sparse[T], error) {
	if x.sp.NumCols() >= x.sp.NumRows() {
		aat, err := x.Mul(x.Transpose())
		if err != nil {
			return nil, fmt.Errorf("Pinv: %w", err)
		}
		sol, err := aat.Solve(x, opts...)
		if err != nil {
			return nil, fmt.Errorf("Pinv: %w", err)
		}

		return sol.Transpose(), nil
	}

	ata, err := x.Transpose().Mul(x)
	if err != nil {
		return nil, fmt.Errorf("Pinv: %w", err)
	}
	ret, err := ata.Solve(x.Transpose(), opts...)
	if err != nil {
		return nil, fmt.Errorf("Pinv: %w", err)
	}

	return ret, nil
}

// at fetches (i, j) without bounds checking; callers stay inside the
// matrix.
func (x *Sparse[T]) at(i, j int) T {
	if k, ok, _ := x.sp.Index(i, j); ok {
		return x.data[k]
	}

	return zeroOf[T]()
}

// columnFromBuffer packs a dense value buffer with a presence mask into an
// n×1 column.
func columnFromBuffer[T Scalar[T]](n int, val []T, present []bool) *Sparse[T] {
	row := make([]int, 0, n)
	data := make([]T, 0, n)
	for i := 0; i < n; i++ {
		if present[i] {
			row = append(row, i)
			data = append(data, val[i])
		}
	}

	return newFromCCS(n, 1, []int{0, len(row)}, row, data)
}
