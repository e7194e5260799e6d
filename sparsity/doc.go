// SPDX-License-Identifier: MIT

// Package sparsity implements immutable column-compressed sparsity patterns:
// the structural half of a sparse matrix, with no values attached.
//
// The sparsity package provides:
//
//   - Pattern, a compressed-column (CCS) set of nonzero positions with
//     cheap structural queries (triangularity, symmetry, diagonality).
//   - Constructors for the common shapes (Empty, Dense, Diagonal, Scalar)
//     plus validated ingestion from raw CCS arrays or triplets.
//   - Pattern algebra: transposition and diagonal extraction with nonzero
//     mappings, union with per-position provenance tags, reshape, and
//     horizontal concatenation.
//   - Block-triangular decomposition (Dulmage-Mendelsohn style): a maximum
//     bipartite matching followed by a strongly-connected-component
//     condensation yields row/column permutations exposing block lower
//     triangular structure, the workhorse behind general sparse solves.
//
// Patterns are immutable after construction and safe for concurrent reads.
// Accessors returning index slices expose internal storage for zero-copy
// iteration; callers must treat them as read-only.
//
// Positions are stored column-major: row indices are strictly increasing
// within each column, and the k-th structural nonzero of a matrix built on
// the pattern corresponds to the k-th entry of that ordering.
package sparsity
