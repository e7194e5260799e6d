// expr/binary_test.go
// SPDX-License-Identifier: MIT
// Package expr_test contains unit tests for binary operation construction:
// the ordered rewrite rules, constant folding, comparison collapsing and the
// depth-bounded structural matching behind them.
package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsym/expr"
)

func TestAdd_Identities(t *testing.T) {
	x := expr.Var("x")
	zero := expr.Const(0)

	require.True(t, x.Add(zero) == x, "x+0 must be x itself")
	require.True(t, zero.Add(x) == x, "0+x must be x itself")

	// x+(-y) lowers to subtraction.
	y := expr.Var("y")
	d := x.Add(y.Neg())
	require.Equal(t, expr.OpSub, d.Op())
	require.True(t, d.Child(0) == x)
	require.True(t, d.Child(1) == y)

	// (a-y)+y cancels back to a.
	a := x.Sin()
	require.True(t, a.Sub(y).Add(y) == a)
	// x+(a-x) cancels to a.
	require.True(t, x.Add(a.Sub(x)) == a)
}

func TestAdd_HalvesRecombine(t *testing.T) {
	x := expr.Var("x")

	// 0.5x + 0.5x collapses to x even across two distinct product nodes.
	u1 := expr.Const(0.5).Mul(x)
	u2 := expr.Const(0.5).Mul(x)
	require.False(t, u1 == u2)
	require.True(t, u1.Add(u2) == x)

	// x/2 + x/2 collapses the same way.
	h1 := x.Div(expr.Const(2))
	h2 := x.Div(expr.Const(2))
	require.True(t, h1.Add(h2) == x)
}

func TestAdd_PythagoreanIdentity(t *testing.T) {
	u := expr.Var("u")
	s := u.Sin().Sq()
	c := u.Cos().Sq()

	require.True(t, s.Add(c).IsOne(), "sin^2+cos^2 must fold to 1")
	require.True(t, c.Add(s).IsOne(), "the pair matches in either order")

	// Different arguments must not trigger the rule.
	v := expr.Var("v")
	mixed := u.Sin().Sq().Add(v.Cos().Sq())
	require.Equal(t, expr.OpAdd, mixed.Op())
}

func TestSub_Identities(t *testing.T) {
	x := expr.Var("x")
	y := expr.Var("y")
	zero := expr.Const(0)

	require.True(t, x.Sub(zero) == x)
	require.True(t, x.Sub(x).IsZero(), "x-x must collapse to 0")

	// 0-y negates.
	n := zero.Sub(y)
	require.Equal(t, expr.OpNeg, n.Op())
	require.True(t, n.Child(0) == y)

	// x-(-y) lowers to addition.
	s := x.Sub(y.Neg())
	require.Equal(t, expr.OpAdd, s.Op())

	// Additive cancellation from both sides.
	a := y.Exp()
	require.True(t, a.Add(x).Sub(x) == a, "(a+x)-x must be a")
	require.True(t, x.Add(a).Sub(x) == a, "(x+a)-x must be a")

	// x-(a+x) folds to -a.
	r := x.Sub(a.Add(x))
	require.Equal(t, expr.OpNeg, r.Op())
	require.True(t, r.Child(0) == a)
}

func TestMul_Identities(t *testing.T) {
	x := expr.Var("x")
	y := expr.Var("y")
	one := expr.Const(1)
	zero := expr.Const(0)

	require.True(t, x.Mul(one) == x, "x*1 must be x itself")
	require.True(t, one.Mul(x) == x)
	require.True(t, x.Mul(zero).IsZero())
	require.True(t, zero.Mul(x).IsZero())

	// x*x contracts to a square.
	sq := x.Mul(x)
	require.Equal(t, expr.OpSq, sq.Op())
	require.True(t, sq.Child(0) == x)

	// Multiplication by -1 negates.
	n := x.Mul(expr.Const(-1))
	require.Equal(t, expr.OpNeg, n.Op())

	// Constants canonicalize to the left operand.
	p := x.Mul(expr.Const(3))
	require.Equal(t, expr.OpMul, p.Op())
	require.True(t, p.Child(0) == expr.Const(3))
	require.True(t, p.Child(1) == x)

	// x*(1/y) lowers to division.
	q := x.Mul(y.Inv())
	require.Equal(t, expr.OpDiv, q.Op())
	require.True(t, q.Child(0) == x)
	require.True(t, q.Child(1) == y)

	// (a/y)*y cancels to a.
	a := x.Exp()
	require.True(t, a.Div(y).Mul(y) == a)

	// Negations hoist out of the product.
	h := x.Neg().Mul(y)
	require.Equal(t, expr.OpNeg, h.Op())
	require.Equal(t, expr.OpMul, h.Child(0).Op())
}

func TestDiv_Identities(t *testing.T) {
	x := expr.Var("x")
	y := expr.Var("y")

	require.True(t, x.Div(expr.Const(0)).IsNaN(), "x/0 must be the NaN constant")
	require.True(t, expr.Const(0).Div(x).IsZero())
	require.True(t, x.Div(expr.Const(1)) == x)
	require.True(t, x.Div(x).IsOne(), "x/x must collapse to 1")
	require.True(t, x.Div(x.Neg()).IsMinusOne())
	require.True(t, x.Neg().Div(x).IsMinusOne())

	// (x+x)/2 halves back to x.
	require.True(t, x.Add(x).Div(expr.Const(2)) == x)

	// 1/y builds the dedicated reciprocal node.
	inv := expr.Const(1).Div(y)
	require.Equal(t, expr.OpInv, inv.Op())
	require.True(t, inv.Child(0) == y)

	// x/(1/y) lowers to multiplication.
	m := x.Div(y.Inv())
	require.Equal(t, expr.OpMul, m.Op())

	// (x*y)/x cancels to y, (x*y)/y cancels to x.
	p := x.Mul(y)
	require.True(t, p.Div(x) == y)
	require.True(t, p.Div(y) == x)

	// (a+a)/(b+b) reduces to a/b.
	r := x.Add(x).Div(y.Add(y))
	require.Equal(t, expr.OpDiv, r.Op())
	require.True(t, r.Child(0) == x)
	require.True(t, r.Child(1) == y)

	// Negations hoist out of the quotient.
	h := x.Div(y.Neg())
	require.Equal(t, expr.OpNeg, h.Op())
}

func TestMinMax_EqualOperands(t *testing.T) {
	x := expr.Var("x")
	require.True(t, x.Min(x) == x)
	require.True(t, x.Max(x) == x)

	// Constant operands fold.
	require.True(t, expr.Const(2).Min(expr.Const(5)) == expr.Const(2))
	require.True(t, expr.Const(2).Max(expr.Const(5)) == expr.Const(5))

	// Symbolic operands allocate the comparison node.
	y := expr.Var("y")
	require.Equal(t, expr.OpMin, x.Min(y).Op())
}

func TestComparisons_ShapeProofs(t *testing.T) {
	x := expr.Var("x")
	y := expr.Var("y")

	// A square is provably >= 0, an absolute value provably not < 0.
	require.True(t, x.Sq().Ge(expr.Const(0)).IsOne())
	require.True(t, x.Abs().Lt(expr.Const(0)).IsZero())

	// Structural equality collapses == and !=.
	require.True(t, x.Eq(x).IsOne())
	require.True(t, x.Ne(x).IsZero())

	// Distinct symbols stay symbolic.
	require.Equal(t, expr.OpEq, x.Eq(y).Op())
	require.Equal(t, expr.OpLt, x.Lt(y).Op())

	// Constant comparisons fold to 0/1.
	require.True(t, expr.Const(3).Lt(expr.Const(5)).IsOne())
	require.True(t, expr.Const(5).Le(expr.Const(3)).IsZero())
}

func TestLogical_Folding(t *testing.T) {
	x := expr.Var("x")

	require.True(t, expr.Const(1).And(expr.Const(2)).IsOne())
	require.True(t, expr.Const(1).And(expr.Const(0)).IsZero())
	require.True(t, expr.Const(0).Or(expr.Const(3)).IsOne())
	require.Equal(t, expr.OpAnd, x.And(x.Not()).Op())
}

func TestIfElseZero(t *testing.T) {
	x := expr.Var("x")
	cond := expr.Var("c")

	// A zero branch short-circuits regardless of the condition.
	require.True(t, cond.IfElseZero(expr.Const(0)).IsZero())

	// Constant conditions select directly.
	require.True(t, expr.Const(2).IfElseZero(x) == x)
	require.True(t, expr.Const(0).IfElseZero(x).IsZero())

	// Symbolic conditions keep the node.
	g := cond.IfElseZero(x)
	require.Equal(t, expr.OpIfElseZero, g.Op())
}

func TestIfElse_Selection(t *testing.T) {
	x := expr.Var("x")
	y := expr.Var("y")

	require.True(t, expr.IfElse(expr.Const(1), x, y) == x)
	require.True(t, expr.IfElse(expr.Const(0), x, y) == y)

	// Symbolic conditions produce the two-branch sum.
	c := expr.Var("c")
	sel := expr.IfElse(c, x, y)
	require.Equal(t, expr.OpAdd, sel.Op())
}

func TestPow_IntegerLowering(t *testing.T) {
	x := expr.Var("x")

	require.True(t, x.Pow(expr.Int(0)).IsOne())
	require.True(t, x.Pow(expr.Int(1)) == x)
	require.Equal(t, expr.OpSq, x.Pow(expr.Int(2)).Op())

	// x^3 lowers to x*(x^2).
	cube := x.Pow(expr.Int(3))
	require.Equal(t, expr.OpMul, cube.Op())
	require.True(t, cube.Child(0) == x)
	require.Equal(t, expr.OpSq, cube.Child(1).Op())

	// Negative exponents invert the positive power.
	recip := x.Pow(expr.Int(-1))
	require.Equal(t, expr.OpInv, recip.Op())
	require.True(t, recip.Child(0) == x)

	// The 0.5 exponent is a square root.
	require.Equal(t, expr.OpSqrt, x.Pow(expr.Const(0.5)).Op())

	// Deep exponents keep a single constpow node.
	require.Equal(t, expr.OpConstPow, x.Pow(expr.Int(101)).Op())

	// Fully symbolic exponents keep a pow node.
	require.Equal(t, expr.OpPow, x.Pow(expr.Var("y")).Op())

	// Constant bases fold through the lowering.
	require.True(t, expr.Const(2).Pow(expr.Int(10)) == expr.Const(1024))
}

func TestBinary_ConstantFolding(t *testing.T) {
	require.True(t, expr.Const(2).Add(expr.Const(3)) == expr.Const(5))
	require.True(t, expr.Const(2).Sub(expr.Const(5)) == expr.Const(-3))
	require.True(t, expr.Const(6).Mul(expr.Const(7)) == expr.Const(42))
	require.True(t, expr.Const(7).Fmod(expr.Const(4)) == expr.Const(3))
	require.True(t, expr.Const(-2).CopySign(expr.Const(5)) == expr.Const(2))

	v, err := expr.Const(1).Atan2(expr.Const(1)).Float()
	require.NoError(t, err)
	require.InDelta(t, math.Pi/4, v, 1e-15)
}

func TestNodeAllocs_SimplificationAvoidsGrowth(t *testing.T) {
	x := expr.Var("x")

	// Identity rewrites must not allocate.
	before := expr.NodeAllocs()
	got := x.Add(expr.Const(0)).Mul(expr.Const(1)).Sub(expr.Const(0))
	require.True(t, got == x)
	require.Equal(t, before, expr.NodeAllocs(), "identity chain must reuse nodes")

	// The same chain with simplification off allocates one node per step.
	prev := expr.SetSimplification(false)
	defer expr.SetSimplification(prev)

	before = expr.NodeAllocs()
	raw := x.Add(expr.Const(0)).Mul(expr.Const(1)).Sub(expr.Const(0))
	require.False(t, raw == x)
	require.Equal(t, before+3, expr.NodeAllocs(), "three raw operations allocate three nodes")
}

func TestCompareDepth_BoundsRewrites(t *testing.T) {
	x := expr.Var("x")

	// Two builds of cos(sin(x)): equal at depth 2, not identical.
	a := x.Sin().Cos()
	b := x.Sin().Cos()

	// At the default depth 1 the x-x rule cannot see through the children.
	require.Equal(t, 1, expr.CompareDepth())
	require.Equal(t, expr.OpSub, a.Sub(b).Op())

	// At depth 2 the rule proves a == b and collapses the difference.
	prev := expr.SetCompareDepth(2)
	defer expr.SetCompareDepth(prev)

	require.True(t, a.Sub(b).IsZero())
	require.True(t, a.Eq(b).IsOne())
	require.True(t, a.Div(b).IsOne())
}

func TestBinary_NoSimplification(t *testing.T) {
	prev := expr.SetSimplification(false)
	defer expr.SetSimplification(prev)

	x := expr.Var("x")

	// x+0 keeps the raw node and constant operands stay unfolded.
	s := x.Add(expr.Const(0))
	require.False(t, s == x)
	require.Equal(t, expr.OpAdd, s.Op())

	c := expr.Const(2).Add(expr.Const(3))
	require.Equal(t, expr.OpAdd, c.Op())
	require.False(t, c.IsConstant())

	// Pow skips the integer lowering entirely.
	p := x.Pow(expr.Int(2))
	require.Equal(t, expr.OpPow, p.Op())
}

func TestSimplification_EndToEndCollapse(t *testing.T) {
	x := expr.Var("x")

	// A pipeline of no-op arithmetic folds back to the shared zero
	// singleton, not merely to something that prints as zero.
	got := x.Add(expr.Const(0)).Mul(expr.Const(1)).Sub(x)
	require.True(t, got == expr.Const(0))
	require.True(t, got.IsZero())
}
