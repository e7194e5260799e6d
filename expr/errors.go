// SPDX-License-Identifier: MIT
// Package expr: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the expr
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for programmer errors (invalid
// child index, invalid comparison depth).

package expr

import "errors"

var (
	// ErrNonConstant is returned when a numeric value, truth value or
	// regularity check is requested from an expression that still contains
	// free symbols. A symbolic expression has no definite value.
	ErrNonConstant = errors.New("expr: not a constant")

	// ErrNonInteger is returned by IntValue when the constant carries a
	// real payload (e.g. 0.5) rather than an exact integer.
	ErrNonInteger = errors.New("expr: not an integer constant")

	// ErrNonSymbol is returned by Name on anything but a free symbol.
	ErrNonSymbol = errors.New("expr: not a symbol")
)
