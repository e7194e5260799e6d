// SPDX-License-Identifier: MIT

// Package matrix provides generic sparse matrices in compressed column
// storage over any scalar type satisfying the Scalar contract:
//
//   - Sparse[T]: nrow×ncol matrix keeping one value per structural nonzero;
//     reading a non-structural position yields the scalar zero.
//   - Real: the float64 scalar, for plain numeric matrices.
//   - expr.Expr satisfies the same contract, so every operation here builds
//     symbolic matrices as readily as numeric ones.
//
// The operation set mirrors classic sparse linear algebra: element-wise
// arithmetic on pattern unions and intersections, matrix product, structural
// reshaping, concatenation and splitting, reductions and norms, and direct
// methods (Det, Inverse, QR, Solve, Nullspace, Pinv) that dispatch on
// triangularity and block-triangular structure before falling back to
// factorization.
//
// Matrices are value containers over immutable sparsity.Pattern structures;
// all operations return fresh matrices, with Set as the single in-place
// mutator. Instances are not safe for concurrent mutation.
package matrix
