// SPDX-License-Identifier: MIT

// Package expr: global construction policy. This file defines:
//   - documented defaults (constants),
//   - the process-wide simplification switch,
//   - the structural comparison depth used by the rewrite rules,
//   - environment overrides resolved once at start-up.
//
// Design goals:
//   - Reproducibility: with simplification off, every operation allocates
//     unconditionally, so tests can rely on exact graph shapes.
//   - Bounded rewriting: pattern checks compare structure only down to the
//     configured depth, keeping construction cost independent of graph size.
//   - Loud failure: setters panic on nonsensical values (programmer error).

package expr

import (
	"sync/atomic"

	"github.com/xyproto/env/v2"
)

// Defaults (single source of truth).
const (
	// DefaultCompareDepth bounds structural equality checks inside the
	// rewrite rules: depth 1 means "same code, identical children".
	DefaultCompareDepth = 1

	// EnvNoSimplify names the environment variable that, when truthy,
	// starts the process with construction-time simplification disabled.
	EnvNoSimplify = "LVSYM_NO_SIMPLIFY"

	// EnvCompareDepth names the environment variable overriding the
	// start-up structural comparison depth. Non-positive values fall back
	// to DefaultCompareDepth.
	EnvCompareDepth = "LVSYM_COMPARE_DEPTH"
)

// Internal panic messages (no magic strings).
const (
	panicCompareDepth = "expr: SetCompareDepth: depth must be >= 1"
	panicChildIndex   = "expr: Child: index out of range"
)

var (
	simplifyOff  atomic.Bool  // true ⇒ unconditional allocation
	compareDepth atomic.Int32 // >= 1; DefaultCompareDepth
)

func init() {
	simplifyOff.Store(env.Bool(EnvNoSimplify))

	depth := env.Int(EnvCompareDepth, DefaultCompareDepth)
	if depth < 1 {
		depth = DefaultCompareDepth
	}
	compareDepth.Store(int32(depth))
}

// SetSimplification toggles construction-time simplification process-wide
// and returns the previous setting.
//
// Behavior highlights:
//   - Off: every operation allocates a fresh node, constants are still
//     interned (literal identity is a representation property, not a
//     rewrite), and no folding or rule matching runs.
//   - On (default): each operation runs its ordered rule list, then folds
//     constant operands, then allocates.
//
// Notes:
//   - Takes effect for operations constructed after the call; existing
//     nodes are never revisited.
//
// AI-Hints:
//   - Turn off in tests that assert exact graph shapes, restore with the
//     returned previous value in a defer.
func SetSimplification(on bool) bool { return !simplifyOff.Swap(!on) }

// Simplification reports whether construction-time simplification is
// currently enabled.
func Simplification() bool { return !simplifyOff.Load() }

// SetCompareDepth sets the process-wide structural comparison depth used by
// rewrite-rule pattern checks and returns the previous value. Panics if
// depth < 1.
func SetCompareDepth(depth int) int {
	if depth < 1 {
		panic(panicCompareDepth)
	}

	return int(compareDepth.Swap(int32(depth)))
}

// CompareDepth returns the current structural comparison depth.
func CompareDepth() int { return int(compareDepth.Load()) }

func simplifyEnabled() bool { return !simplifyOff.Load() }
