// Package lvsym is your in-memory toolkit for symbolic scalar expressions
// and generic sparse matrices: build formulas as data, simplify them while
// they are constructed, and run sparse linear algebra over numbers and
// symbols with the same code.
//
// 🚀 What is lvsym?
//
//	A compact computer-algebra core built from three layers:
//		• Scalar expressions: immutable DAG nodes, literal interning,
//		  algebraic rewrite rules applied at construction time
//		• Sparsity patterns: compressed column structure, pattern algebra,
//		  block-triangular decomposition
//		• Sparse matrices: one generic container over float64 or symbolic
//		  scalars, with products, reshaping, reductions and direct solvers
//
// ✨ Why choose lvsym?
//
//   - One algebra, two element types: Real and expr.Expr run the same paths
//   - Structural zeros are free: they never allocate and never compute
//   - Construction-time simplification keeps expression graphs small
//   - Pure Go with a lean dependency surface
//
// Under the hood, everything is organized under three subpackages:
//
//	expr/     — symbolic scalars: constants, symbols, operations, rewrite rules
//	sparsity/ — structural patterns: CCS storage, unions, transposes, BTF
//	matrix/   — Sparse[T]: element-wise ops, products, QR, Solve, Pinv
//
// Quick example:
//
//	x := expr.Var("x")
//	y := x.Add(expr.Const(0)).Mul(expr.Const(1))
//	// y == x: both identities vanished during construction.
//
// Dive into the package docs for the full operation set, from Kronecker
// products to nullspace bases.
//
//	go get github.com/katalvlaran/lvsym
package lvsym
