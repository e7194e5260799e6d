// SPDX-License-Identifier: MIT

// Package matrix: the float64 element type. Real adapts plain IEEE 754
// arithmetic to the Scalar contract so numeric matrices run through the
// same generic code paths as symbolic ones.

package matrix

import "math"

// Real is a float64 satisfying Scalar[Real]. Comparisons return indicator
// values (1 for true, 0 for false) and Truth never fails: a float is always
// a known constant.
type Real float64

// Zero returns 0.
func (Real) Zero() Real { return 0 }

// One returns 1.
func (Real) One() Real { return 1 }

// Add returns r + y.
func (r Real) Add(y Real) Real { return r + y }

// Sub returns r - y.
func (r Real) Sub(y Real) Real { return r - y }

// Mul returns r * y.
func (r Real) Mul(y Real) Real { return r * y }

// Div returns r / y following IEEE 754 (division by zero yields ±Inf or
// NaN, never a panic).
func (r Real) Div(y Real) Real { return r / y }

// Neg returns -r.
func (r Real) Neg() Real { return -r }

// Abs returns |r|.
func (r Real) Abs() Real { return Real(math.Abs(float64(r))) }

// Sqrt returns the square root of r.
func (r Real) Sqrt() Real { return Real(math.Sqrt(float64(r))) }

// CopySign returns the magnitude of r with the sign of y.
func (r Real) CopySign(y Real) Real { return Real(math.Copysign(float64(r), float64(y))) }

// Min returns the smaller of r and y.
func (r Real) Min(y Real) Real { return Real(math.Min(float64(r), float64(y))) }

// Max returns the larger of r and y.
func (r Real) Max(y Real) Real { return Real(math.Max(float64(r), float64(y))) }

// Lt returns 1 when r < y, else 0.
func (r Real) Lt(y Real) Real { return indicator(r < y) }

// Le returns 1 when r <= y, else 0.
func (r Real) Le(y Real) Real { return indicator(r <= y) }

// Eq returns 1 when r == y, else 0.
func (r Real) Eq(y Real) Real { return indicator(r == y) }

// Ne returns 1 when r != y, else 0.
func (r Real) Ne(y Real) Real { return indicator(r != y) }

// IsZero reports r == 0.
func (r Real) IsZero() bool { return r == 0 }

// IsOne reports r == 1.
func (r Real) IsOne() bool { return r == 1 }

// IsConstant always reports true.
func (Real) IsConstant() bool { return true }

// Truth reports r != 0; the error is always nil.
func (r Real) Truth() (bool, error) { return r != 0, nil }

func indicator(b bool) Real {
	if b {
		return 1
	}

	return 0
}
