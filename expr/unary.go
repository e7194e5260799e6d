// SPDX-License-Identifier: MIT

// Package expr: unary operation construction. Every method funnels through
// unaryOp: with simplification enabled it first tries the ordered rewrite
// rules for the code (first match wins), then folds a constant operand, and
// only then allocates; with simplification disabled it allocates
// unconditionally. Rules return an existing node or build at most one new
// one, so the graph never grows past the unsimplified form.

package expr

import "math"

// Neg returns -x. Rewrites: -(-x)→x; negating 0, 1 or -1 resolves straight
// to the opposite singleton.
func (x Expr) Neg() Expr { return unaryOp(OpNeg, x) }

// Inv returns 1/x as a dedicated reciprocal node. Rewrites: inv(inv(x))→x.
func (x Expr) Inv() Expr { return unaryOp(OpInv, x) }

// Sqrt returns the square root of x. Rewrites: sqrt(x²)→|x|.
func (x Expr) Sqrt() Expr { return unaryOp(OpSqrt, x) }

// Sq returns x². Rewrites: sq(sqrt(x))→x, sq(-x)→sq(x).
func (x Expr) Sq() Expr { return unaryOp(OpSq, x) }

// Exp returns e^x.
func (x Expr) Exp() Expr { return unaryOp(OpExp, x) }

// Log returns the natural logarithm of x.
func (x Expr) Log() Expr { return unaryOp(OpLog, x) }

// Log10 returns the base-10 logarithm, built as log(x)·(1/ln 10).
func (x Expr) Log10() Expr { return x.Log().Mul(Const(1 / math.Ln10)) }

// Sin returns sin(x).
func (x Expr) Sin() Expr { return unaryOp(OpSin, x) }

// Cos returns cos(x).
func (x Expr) Cos() Expr { return unaryOp(OpCos, x) }

// Tan returns tan(x).
func (x Expr) Tan() Expr { return unaryOp(OpTan, x) }

// Asin returns arcsin(x).
func (x Expr) Asin() Expr { return unaryOp(OpAsin, x) }

// Acos returns arccos(x).
func (x Expr) Acos() Expr { return unaryOp(OpAcos, x) }

// Atan returns arctan(x).
func (x Expr) Atan() Expr { return unaryOp(OpAtan, x) }

// Sinh returns sinh(x). Rewrites: sinh(0)→0.
func (x Expr) Sinh() Expr { return unaryOp(OpSinh, x) }

// Cosh returns cosh(x). Rewrites: cosh(0)→1.
func (x Expr) Cosh() Expr { return unaryOp(OpCosh, x) }

// Tanh returns tanh(x). Rewrites: tanh(0)→0.
func (x Expr) Tanh() Expr { return unaryOp(OpTanh, x) }

// Asinh returns arsinh(x). Rewrites: asinh(0)→0.
func (x Expr) Asinh() Expr { return unaryOp(OpAsinh, x) }

// Acosh returns arcosh(x). Rewrites: acosh(1)→0.
func (x Expr) Acosh() Expr { return unaryOp(OpAcosh, x) }

// Atanh returns artanh(x). Rewrites: atanh(0)→0.
func (x Expr) Atanh() Expr { return unaryOp(OpAtanh, x) }

// Abs returns |x|. Rewrites: abs(abs(x))→abs(x), abs(x²)→x².
func (x Expr) Abs() Expr { return unaryOp(OpAbs, x) }

// Sign returns the three-valued sign of x (sign(0)=0, sign(NaN)=NaN).
func (x Expr) Sign() Expr { return unaryOp(OpSign, x) }

// Erf returns the error function of x.
func (x Expr) Erf() Expr { return unaryOp(OpErf, x) }

// Erfinv returns the inverse error function of x.
func (x Expr) Erfinv() Expr { return unaryOp(OpErfinv, x) }

// Floor returns x rounded toward -Inf.
func (x Expr) Floor() Expr { return unaryOp(OpFloor, x) }

// Ceil returns x rounded toward +Inf.
func (x Expr) Ceil() Expr { return unaryOp(OpCeil, x) }

// Not returns the logical negation of x (1 when x==0, else 0).
// Rewrites: not(not(x))→x.
func (x Expr) Not() Expr { return unaryOp(OpNot, x) }

// unaryOp is the single construction pipeline for unary codes.
func unaryOp(op Op, x Expr) Expr {
	n := x.ref()
	if !simplifyEnabled() {
		return Expr{newUnary(op, n)}
	}
	if r := rewriteUnary(op, n); r != nil {
		return Expr{r}
	}
	if n.op == OpConst {
		return Expr{internReal(evalUnary(op, n.fval))}
	}

	return Expr{newUnary(op, n)}
}

// rewriteUnary applies the ordered rule list for op to operand x, returning
// nil when no rule matches.
func rewriteUnary(op Op, x *node) *node {
	switch op {
	case OpNeg:
		switch {
		case x.isOp(OpNeg):
			return x.child[0]
		case x.isZero():
			return zeroNode
		case x.isMinusOne():
			return oneNode
		case x.isOne():
			return minusOneNode
		}
	case OpInv:
		if x.isOp(OpInv) {
			return x.child[0]
		}
	case OpSqrt:
		if x.isOp(OpSq) {
			return Expr{x.child[0]}.Abs().ref()
		}
	case OpSq:
		switch {
		case x.isOp(OpSqrt):
			return x.child[0]
		case x.isOp(OpNeg):
			return Expr{x.child[0]}.Sq().ref()
		}
	case OpSinh, OpTanh, OpAsinh, OpAtanh:
		if x.isZero() {
			return zeroNode
		}
	case OpCosh:
		if x.isZero() {
			return oneNode
		}
	case OpAcosh:
		if x.isOne() {
			return zeroNode
		}
	case OpAbs:
		if x.isOp(OpAbs) || x.isOp(OpSq) {
			return x
		}
	case OpNot:
		if x.isOp(OpNot) {
			return x.child[0]
		}
	}

	return nil
}
