// SPDX-License-Identifier: MIT

// Package matrix: functional options for the direct solver.

package matrix

// DefaultDirectSolveLimit is the largest system size Solve inverts by
// minor expansion instead of factorizing. Adjugate-based inversion costs
// O(n!·n) and is only competitive for very small blocks.
const DefaultDirectSolveLimit = 3

// panicDirectSolveLimit reports a negative limit passed to
// WithDirectSolveLimit; a programmer error, hence a panic rather than an
// error return.
const panicDirectSolveLimit = "matrix: WithDirectSolveLimit requires limit >= 0"

// Option customizes a single Solve call.
//
// Behavior highlights:
//   - Options apply to the outer call and to every recursive sub-solve it
//     spawns (triangular blocks, the factorized system).
//   - The zero configuration is DefaultDirectSolveLimit; passing no options
//     reproduces the stock dispatch.
type Option func(*solveOptions)

// solveOptions is the gathered configuration of one Solve call.
type solveOptions struct {
	// directLimit: systems of at most this size are solved by multiplying
	// with the adjugate-based inverse.
	directLimit int
}

// WithDirectSolveLimit overrides the size threshold below which Solve
// forms the inverse by minor expansion and multiplies, instead of running
// a QR factorization.
//
// Behavior highlights:
//   - limit = 0 disables direct inversion entirely: every non-triangular
//     system goes through QR.
//   - Raising the limit trades factorization overhead for the factorial
//     growth of minor expansion; sizes beyond 5 are rarely sensible.
//
// Panics:
//   - panicDirectSolveLimit when limit is negative.
//
// Determinism:
//   - Pure configuration; no I/O, no global state.
func WithDirectSolveLimit(limit int) Option {
	if limit < 0 {
		panic(panicDirectSolveLimit)
	}

	return func(o *solveOptions) {
		o.directLimit = limit
	}
}

// gatherSolveOptions folds the caller's options over the defaults.
func gatherSolveOptions(opts ...Option) solveOptions {
	options := solveOptions{directLimit: DefaultDirectSolveLimit}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}
