// SPDX-License-Identifier: MIT

// Package expr: binary operation construction. Every method funnels through
// binaryOp: with simplification enabled it first tries the ordered rewrite
// rules for the code (first match wins), then folds two constant operands,
// and only then allocates; with simplification disabled it allocates
// unconditionally. Rule targets reuse the public pipelines, so a rewrite
// like (-a)*b → -(a*b) benefits from the same rule lists recursively while
// never recursing INTO existing children.

package expr

// Add returns x+y. Rewrites (first match wins): 0+y→y, x+0→x,
// x+(-a)→x-a, (-a)+y→y-a, 0.5a+0.5a→a, a/2+a/2→a, (a-y)+y→a, x+(a-x)→a,
// sin²(u)+cos²(u)→1.
func (x Expr) Add(y Expr) Expr { return binaryOp(OpAdd, x, y) }

// Sub returns x-y. Rewrites: x-0→x, 0-y→-y, x-x→0, x-(-a)→x+a,
// (a+y)-y→a, (y+a)-y→a, x-(a+x)→-a, x-(x+a)→-a, (-a)-y→-(a+y).
func (x Expr) Sub(y Expr) Expr { return binaryOp(OpSub, x, y) }

// Mul returns x*y. Rewrites: x*x→x², constants canonicalize to the left
// operand, 0 annihilates, 1 and -1 collapse to identity and negation,
// reciprocal operands turn into division, c*((1/c)*a)→a, c*(a/c)→a,
// (a/y)*y→a, x*(a/x)→a, and negations hoist out of the product.
func (x Expr) Mul(y Expr) Expr { return binaryOp(OpMul, x, y) }

// Div returns x/y. Rewrites: x/0→NaN, 0/y→0, x/1→x, x/-1→-x, x/x→1,
// (a+a)/2→a, (y*a)/y→a, (a*y)/y→a, 1/y→inv(y), x/(1/a)→x*a,
// (a+a)/(b+b)→a/b, (a/c)/d→a when c·d=1, x/(a*x)→1/a, (-y)/y→-1,
// x/(-x)→-1, (-a)/(-a)→1, (a/b)/a→1/b, and negations hoist out.
func (x Expr) Div(y Expr) Expr { return binaryOp(OpDiv, x, y) }

// Fmod returns the floating-point remainder of x/y.
func (x Expr) Fmod(y Expr) Expr { return binaryOp(OpFmod, x, y) }

// Atan2 returns atan2(x, y), the angle of the point (y, x).
func (x Expr) Atan2(y Expr) Expr { return binaryOp(OpAtan2, x, y) }

// Min returns the smaller of x and y. Rewrites: min(x,x)→x.
func (x Expr) Min(y Expr) Expr { return binaryOp(OpMin, x, y) }

// Max returns the larger of x and y. Rewrites: max(x,x)→x.
func (x Expr) Max(y Expr) Expr { return binaryOp(OpMax, x, y) }

// CopySign returns a value with the magnitude of x and the sign of y.
func (x Expr) CopySign(y Expr) Expr { return binaryOp(OpCopySign, x, y) }

// Lt returns the comparison x<y as a 0/1-valued expression.
// Rewrites: provably non-negative x-y collapses to 0.
func (x Expr) Lt(y Expr) Expr { return binaryOp(OpLt, x, y) }

// Le returns the comparison x<=y as a 0/1-valued expression.
// Rewrites: provably non-negative y-x collapses to 1.
func (x Expr) Le(y Expr) Expr { return binaryOp(OpLe, x, y) }

// Gt returns the comparison x>y, built as y<x.
func (x Expr) Gt(y Expr) Expr { return y.Lt(x) }

// Ge returns the comparison x>=y, built as y<=x.
func (x Expr) Ge(y Expr) Expr { return y.Le(x) }

// Eq returns the comparison x==y as a 0/1-valued expression.
// Rewrites: structurally equal operands collapse to 1.
func (x Expr) Eq(y Expr) Expr { return binaryOp(OpEq, x, y) }

// Ne returns the comparison x!=y as a 0/1-valued expression.
// Rewrites: structurally equal operands collapse to 0.
func (x Expr) Ne(y Expr) Expr { return binaryOp(OpNe, x, y) }

// And returns the logical conjunction of x and y (0/1-valued).
func (x Expr) And(y Expr) Expr { return binaryOp(OpAnd, x, y) }

// Or returns the logical disjunction of x and y (0/1-valued).
func (x Expr) Or(y Expr) Expr { return binaryOp(OpOr, x, y) }

// IfElseZero returns val where the condition x is non-zero and 0 elsewhere.
// Rewrites: a zero val short-circuits, a constant condition selects
// directly.
func (x Expr) IfElseZero(val Expr) Expr { return binaryOp(OpIfElseZero, x, val) }

// IfElse selects ifTrue where cond is non-zero and ifFalse elsewhere,
// built from two complementary IfElseZero branches.
func IfElse(cond, ifTrue, ifFalse Expr) Expr {
	return cond.IfElseZero(ifTrue).Add(cond.Not().IfElseZero(ifFalse))
}

// Pow returns x^y. Constant integer exponents with |n| <= 100 lower to
// repeated squaring: n=0→1, negative→1/x^|n|, odd→x·x^(n-1),
// even→(x^(n/2))². The exponent 0.5 lowers to Sqrt. Remaining constant
// exponents build a constpow node, fully symbolic exponents a pow node.
func (x Expr) Pow(y Expr) Expr {
	a, b := x.ref(), y.ref()
	if !simplifyEnabled() {
		return Expr{newBinary(OpPow, a, b)}
	}

	if b.op == OpConst {
		if b.isInt {
			n := b.ival
			switch {
			case n == 0:
				return Expr{oneNode}
			case n > 100 || n < -100: // too deep to lower; keep one node
				return Expr{createBinary(OpConstPow, a, b)}
			case n < 0:
				return Expr{oneNode}.Div(x.Pow(Int(-n)))
			case n%2 == 1:
				return x.Mul(x.Pow(Int(n - 1)))
			default:
				rt := x.Pow(Int(n / 2))

				return rt.Mul(rt)
			}
		}
		if b.fval == 0.5 {
			return x.Sqrt()
		}

		return Expr{createBinary(OpConstPow, a, b)}
	}

	return Expr{createBinary(OpPow, a, b)}
}

// ---------- construction pipeline ----------

// binaryOp is the single construction pipeline for binary codes other than
// pow: rules, then constant folding, then allocation.
func binaryOp(op Op, x, y Expr) Expr {
	a, b := x.ref(), y.ref()
	if !simplifyEnabled() {
		return Expr{newBinary(op, a, b)}
	}
	if r := rewriteBinary(op, a, b); r != nil {
		return Expr{r}
	}
	if a.op == OpConst && b.op == OpConst {
		return Expr{internReal(evalBinary(op, a.fval, b.fval))}
	}

	return Expr{newBinary(op, a, b)}
}

// createBinary folds two constant operands, otherwise allocates. Used by
// rules whose rewrite target is itself a fresh binary node.
func createBinary(op Op, l, r *node) *node {
	if l.op == OpConst && r.op == OpConst {
		return internReal(evalBinary(op, l.fval, r.fval))
	}

	return newBinary(op, l, r)
}

// Node-level combinators that re-enter the public pipelines, so rewrite
// targets are themselves simplified and folded.
func addN(a, b *node) *node { return Expr{a}.Add(Expr{b}).ref() }

func subN(a, b *node) *node { return Expr{a}.Sub(Expr{b}).ref() }

func mulN(a, b *node) *node { return Expr{a}.Mul(Expr{b}).ref() }

func divN(a, b *node) *node { return Expr{a}.Div(Expr{b}).ref() }

func negN(a *node) *node { return Expr{a}.Neg().ref() }

func invN(a *node) *node { return Expr{a}.Inv().ref() }

func sqN(a *node) *node { return Expr{a}.Sq().ref() }

// rewriteBinary applies the ordered rule list for op, returning nil when no
// rule matches. Structural comparisons are bounded by the configured depth.
func rewriteBinary(op Op, x, y *node) *node {
	depth := CompareDepth()

	switch op {
	case OpAdd:
		return rewriteAdd(x, y, depth)
	case OpSub:
		return rewriteSub(x, y, depth)
	case OpMul:
		return rewriteMul(x, y, depth)
	case OpDiv:
		return rewriteDiv(x, y, depth)
	case OpMin, OpMax:
		if structEqual(x, y, depth) {
			return x
		}
	case OpLe:
		if subN(y, x).isNonNegative() {
			return oneNode
		}
	case OpLt:
		if subN(x, y).isNonNegative() {
			return zeroNode
		}
	case OpEq:
		if structEqual(x, y, depth) {
			return oneNode
		}
	case OpNe:
		if structEqual(x, y, depth) {
			return zeroNode
		}
	case OpIfElseZero:
		if y.isZero() {
			return y
		}
		if x.op == OpConst {
			if x.fval != 0 {
				return y
			}

			return zeroNode
		}
	}

	return nil
}

func rewriteAdd(x, y *node, depth int) *node {
	switch {
	case x.isZero():
		return y
	case y.isZero():
		return x
	case y.isOp(OpNeg):
		return subN(x, y.child[0]) // x+(-a) → x-a
	case x.isOp(OpNeg):
		return subN(y, x.child[0]) // (-a)+y → y-a
	case x.isOp(OpMul) && y.isOp(OpMul) &&
		x.child[0].isConstValue(0.5) && y.child[0].isConstValue(0.5) &&
		structEqual(y.child[1], x.child[1], depth):
		return x.child[1] // 0.5a+0.5a → a
	case x.isOp(OpDiv) && y.isOp(OpDiv) &&
		x.child[1].isConstValue(2) && y.child[1].isConstValue(2) &&
		structEqual(y.child[0], x.child[0], depth):
		return x.child[0] // a/2+a/2 → a
	case x.isOp(OpSub) && structEqual(x.child[1], y, depth):
		return x.child[0] // (a-y)+y → a
	case y.isOp(OpSub) && structEqual(x, y.child[1], depth):
		return y.child[0] // x+(a-x) → a
	case x.isOp(OpSq) && y.isOp(OpSq) && sinCosPair(x.child[0], y.child[0], depth):
		return oneNode // sin²(u)+cos²(u) → 1
	}

	return nil
}

// sinCosPair reports whether a and b are sin(u) and cos(u), in either order,
// of structurally equal arguments.
func sinCosPair(a, b *node, depth int) bool {
	if (a.isOp(OpSin) && b.isOp(OpCos)) || (a.isOp(OpCos) && b.isOp(OpSin)) {
		return structEqual(a.child[0], b.child[0], depth)
	}

	return false
}

func rewriteSub(x, y *node, depth int) *node {
	switch {
	case y.isZero():
		return x
	case x.isZero():
		return negN(y)
	case structEqual(x, y, depth):
		return zeroNode // x-x → 0
	case y.isOp(OpNeg):
		return addN(x, y.child[0]) // x-(-a) → x+a
	case x.isOp(OpAdd) && structEqual(x.child[1], y, depth):
		return x.child[0] // (a+y)-y → a
	case x.isOp(OpAdd) && structEqual(x.child[0], y, depth):
		return x.child[1] // (y+a)-y → a
	case y.isOp(OpAdd) && structEqual(x, y.child[1], depth):
		return negN(y.child[0]) // x-(a+x) → -a
	case y.isOp(OpAdd) && structEqual(x, y.child[0], depth):
		return negN(y.child[1]) // x-(x+a) → -a
	case x.isOp(OpNeg):
		return negN(addN(x.child[0], y)) // (-a)-y → -(a+y)
	}

	return nil
}

func rewriteMul(x, y *node, depth int) *node {
	switch {
	case structEqual(y, x, depth):
		return sqN(x) // x*x → x²
	case x.op != OpConst && y.op == OpConst:
		return mulN(y, x) // canonicalize: constant to the left
	case x.isZero() || y.isZero():
		return zeroNode
	case x.isOne():
		return y
	case y.isOne():
		return x
	case y.isMinusOne():
		return negN(x)
	case x.isMinusOne():
		return negN(y)
	case y.isOp(OpInv):
		return divN(x, y.child[0]) // x*(1/a) → x/a
	case x.isOp(OpInv):
		return divN(y, x.child[0]) // (1/a)*y → y/a
	case x.op == OpConst && y.isOp(OpMul) && y.child[0].op == OpConst &&
		x.fval*y.child[0].fval == 1:
		return y.child[1] // c*((1/c)*a) → a
	case x.op == OpConst && y.isOp(OpDiv) && y.child[1].op == OpConst &&
		x.fval == y.child[1].fval:
		return y.child[0] // c*(a/c) → a
	case x.isOp(OpDiv) && structEqual(x.child[1], y, depth):
		return x.child[0] // (a/y)*y → a
	case y.isOp(OpDiv) && structEqual(y.child[1], x, depth):
		return y.child[0] // x*(a/x) → a
	case x.isOp(OpNeg):
		return negN(mulN(x.child[0], y)) // (-a)*y → -(a*y)
	case y.isOp(OpNeg):
		return negN(mulN(x, y.child[0])) // x*(-a) → -(x*a)
	}

	return nil
}

func rewriteDiv(x, y *node, depth int) *node {
	switch {
	case y.isZero():
		return nanNode // x/0 → NaN
	case x.isZero():
		return zeroNode
	case y.isOne():
		return x
	case y.isMinusOne():
		return negN(x)
	case structEqual(x, y, depth):
		return oneNode // x/x → 1
	case x.isDoubled(depth) && y.isConstValue(2):
		return x.child[0] // (a+a)/2 → a
	case x.isOp(OpMul) && structEqual(y, x.child[0], depth):
		return x.child[1] // (y*a)/y → a
	case x.isOp(OpMul) && structEqual(y, x.child[1], depth):
		return x.child[0] // (a*y)/y → a
	case x.isOne():
		return invN(y) // 1/y → inv(y)
	case y.isOp(OpInv):
		return mulN(x, y.child[0]) // x/(1/a) → x*a
	case x.isDoubled(depth) && y.isDoubled(depth):
		return divN(x.child[0], y.child[0]) // (a+a)/(b+b) → a/b
	case y.op == OpConst && x.isOp(OpDiv) && x.child[1].op == OpConst &&
		y.fval*x.child[1].fval == 1:
		return x.child[0] // (a/c)/d → a when c·d = 1
	case y.isOp(OpMul) && structEqual(y.child[1], x, depth):
		return createBinary(OpDiv, oneNode, y.child[0]) // x/(a*x) → 1/a
	case x.isOp(OpNeg) && structEqual(x.child[0], y, depth):
		return minusOneNode // (-y)/y → -1
	case y.isOp(OpNeg) && structEqual(y.child[0], x, depth):
		return minusOneNode // x/(-x) → -1
	case x.isOp(OpNeg) && y.isOp(OpNeg) && structEqual(x.child[0], y.child[0], depth):
		return oneNode // (-a)/(-a) → 1
	case x.isOp(OpDiv) && structEqual(y, x.child[0], depth):
		return invN(x.child[1]) // (a/b)/a → 1/b
	case x.isOp(OpNeg):
		return negN(divN(x.child[0], y)) // (-a)/y → -(a/y)
	case y.isOp(OpNeg):
		return negN(divN(x, y.child[0])) // x/(-a) → -(x/a)
	}

	return nil
}
