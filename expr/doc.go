// SPDX-License-Identifier: MIT

// Package expr implements symbolic scalar expressions as an immutable,
// hash-consed DAG with construction-time simplification.
//
// The expr package provides:
//
//   - Expr, a small value-type handle on one expression node. Copying an
//     Expr copies the handle, never the graph; the zero value of Expr is
//     the constant 0.
//   - Literal construction (Const, Int, Var) with process-wide interning:
//     building the same literal twice yields handles on the SAME node, and
//     the constants 0, 1, 2, -1, NaN and ±Inf are permanently rooted
//     singletons.
//   - Arithmetic, transcendental, trigonometric, hyperbolic, comparison and
//     logical operations as methods. Each operation runs an ordered list of
//     local rewrite rules before allocating (x+0→x, x−x→0, −(−x)→x,
//     sin²+cos²→1, ...), so common algebraic noise never reaches the graph.
//   - Structural equality bounded by a comparison depth, a truth-value query
//     that is legal on constants only, and an allocation counter for tests
//     that meter graph growth.
//
// Nodes are immutable after construction and shared freely; lifetime is
// managed by the garbage collector, so releasing the last handle on a
// subgraph reclaims it without any explicit teardown. Construction of each
// operation is pure: rules only inspect the two operand handles, never
// rewrite existing children, and never increase the node count relative to
// the unsimplified form.
//
// The package is safe for construction from multiple goroutines (the intern
// tables are locked, counters are atomic), but a single expression graph is
// meant to be BUILT by one goroutine at a time; concurrent reads are always
// safe.
//
// See the matrix package for the generic sparse container that works
// transparently over float64 or Expr entries.
package expr
