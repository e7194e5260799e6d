// SPDX-License-Identifier: MIT

// Package expr: the public scalar handle. Expr wraps exactly one node of the
// shared expression DAG; all user-facing construction and inspection lives
// here, all operation construction lives in unary.go / binary.go.

package expr

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Expr is a symbolic scalar: an immutable handle on one expression node.
//
// Expr is a small value type; copy it freely. Two Expr values compare equal
// with == exactly when they reference the SAME node, which together with
// literal interning makes == the identity test the rewrite rules guarantee:
// Const(2) == Const(2) and x.Add(Const(0)) == x both hold.
//
// The zero value Expr{} denotes the constant 0. It normalizes to the shared
// zero singleton on first use, so prefer Const(0) (or any operation result)
// when == identity against other zeros matters.
type Expr struct{ n *node }

// ref resolves the handle, mapping the zero value to the zero singleton.
func (x Expr) ref() *node {
	if x.n == nil {
		return zeroNode
	}

	return x.n
}

// ---------- Construction ----------

// Const builds the expression for a numeric literal.
//
// Behavior highlights:
//   - Integer-valued doubles (including 0, 1, 2, -1) intern as exact
//     integer constants; NaN and ±Inf resolve to permanent singletons;
//     everything else interns as a real constant.
//   - Constructing the same literal twice returns handles on the SAME node.
//
// Complexity:
//   - Time O(1) expected (one map lookup), Space O(1) amortized.
func Const(v float64) Expr { return Expr{internReal(v)} }

// Int builds the expression for an exact integer literal. Unlike Const it
// never round-trips through float64, so the full int64 range stays exact.
// Unsigned values above math.MaxInt64 wrap; keep inputs inside int64.
func Int[N constraints.Integer](v N) Expr { return Expr{internInt(int64(v))} }

// Var creates a fresh free symbol with the given display name.
//
// Behavior highlights:
//   - Every call mints a distinct symbol, even under the same name: symbols
//     compare by identity, the name is presentation only.
func Var(name string) Expr { return Expr{newSymbol(name)} }

// ---------- Inspection ----------

// Op returns the operation code of the underlying node.
func (x Expr) Op() Op { return x.ref().op }

// IsConstant reports whether the expression is a numeric literal.
func (x Expr) IsConstant() bool { return x.ref().op == OpConst }

// IsInteger reports whether the expression is an exact integer literal.
func (x Expr) IsInteger() bool { return x.ref().isInt }

// IsSymbol reports whether the expression is a free symbol.
func (x Expr) IsSymbol() bool { return x.ref().op == OpSym }

// IsLeaf reports whether the expression has no children.
func (x Expr) IsLeaf() bool { return x.ref().op.Arity() == 0 }

// IsZero reports whether the expression is the constant 0.
func (x Expr) IsZero() bool { return x.ref().isZero() }

// IsOne reports whether the expression is the constant 1.
func (x Expr) IsOne() bool { return x.ref().isOne() }

// IsMinusOne reports whether the expression is the constant -1.
func (x Expr) IsMinusOne() bool { return x.ref().isMinusOne() }

// IsNaN reports whether the expression is the NaN constant.
func (x Expr) IsNaN() bool { return x.ref() == nanNode }

// IsInf reports whether the expression is the +Inf constant.
func (x Expr) IsInf() bool { return x.ref() == infNode }

// IsMinusInf reports whether the expression is the -Inf constant.
func (x Expr) IsMinusInf() bool { return x.ref() == minusInfNode }

// NumChildren returns the arity of the underlying node.
func (x Expr) NumChildren() int { return x.ref().op.Arity() }

// Child returns the i-th operand of the expression. Panics if i is outside
// [0, NumChildren()): asking a leaf for children is a programmer error.
func (x Expr) Child(i int) Expr {
	n := x.ref()
	if i < 0 || i >= n.op.Arity() {
		panic(panicChildIndex)
	}

	return Expr{n.child[i]}
}

// Float returns the numeric value of a constant expression.
//
// Errors:
//   - ErrNonConstant when the expression contains free symbols.
func (x Expr) Float() (float64, error) {
	n := x.ref()
	if n.op != OpConst {
		return 0, ErrNonConstant
	}

	return n.fval, nil
}

// IntValue returns the exact integer value of an integer constant.
//
// Errors:
//   - ErrNonConstant when the expression contains free symbols.
//   - ErrNonInteger when the constant carries a real payload.
func (x Expr) IntValue() (int64, error) {
	n := x.ref()
	if n.op != OpConst {
		return 0, ErrNonConstant
	}
	if !n.isInt {
		return 0, ErrNonInteger
	}

	return n.ival, nil
}

// Name returns the display name of a free symbol.
//
// Errors:
//   - ErrNonSymbol on constants and composite expressions.
func (x Expr) Name() (string, error) {
	n := x.ref()
	if n.op != OpSym {
		return "", ErrNonSymbol
	}

	return n.name, nil
}

// Truth converts a constant expression to a boolean (value != 0).
//
// Errors:
//   - ErrNonConstant on symbolic expressions: an expression that still
//     contains free symbols has no definite truth value.
func (x Expr) Truth() (bool, error) {
	n := x.ref()
	if n.op != OpConst {
		return false, ErrNonConstant
	}

	return n.fval != 0, nil
}

// IsRegular reports whether a constant expression is finite (not NaN, not
// ±Inf).
//
// Errors:
//   - ErrNonConstant on symbolic expressions; regularity of a symbolic
//     value is unknowable at construction time.
func (x Expr) IsRegular() (bool, error) {
	n := x.ref()
	if n.op != OpConst {
		return false, ErrNonConstant
	}

	return !math.IsNaN(n.fval) && !math.IsInf(n.fval, 0), nil
}

// Equal reports depth-bounded structural equality: true on identical nodes
// at any depth; beyond identity it compares operation codes and children
// down to the given depth. Constants compare by value, distinct symbols are
// never equal. Cost is bounded by depth, not by graph size.
func (x Expr) Equal(y Expr, depth int) bool {
	return structEqual(x.ref(), y.ref(), depth)
}

// ---------- Scalar capability surface (shared with matrix.Real) ----------

// Zero returns the constant 0 (the shared singleton).
func (Expr) Zero() Expr { return Expr{zeroNode} }

// One returns the constant 1 (the shared singleton).
func (Expr) One() Expr { return Expr{oneNode} }

// ---------- Transient mark slot ----------

// Temp returns the transient integer mark stored on the underlying node.
// The slot is exposed for external graph algorithms (topological sorts,
// visitation marks); it carries no expression semantics and is NOT part of
// the immutability contract.
func (x Expr) Temp() int { return x.ref().temp }

// SetTemp stores a transient integer mark on the underlying node. Marks on
// shared nodes (interned constants, singletons, common subexpressions) are
// shared by every handle; algorithms must reset what they set.
func (x Expr) SetTemp(v int) { x.ref().temp = v }

// ---------- Rendering ----------

// String renders the expression with infix arithmetic and function-form
// transcendentals, fully parenthesized: (x+(-(y*2))). Intended for
// debugging and error messages, not for parsing back.
func (x Expr) String() string {
	var b strings.Builder
	writeExpr(&b, x.ref())

	return b.String()
}

// infixSymbols maps binary codes rendered infix; everything else renders in
// function form.
var infixSymbols = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpLt:  "<",
	OpLe:  "<=",
	OpEq:  "==",
	OpNe:  "!=",
	OpAnd: "&&",
	OpOr:  "||",
}

func writeExpr(b *strings.Builder, n *node) {
	switch {
	case n.op == OpConst:
		if n.isInt {
			b.WriteString(strconv.FormatInt(n.ival, 10))
		} else {
			b.WriteString(strconv.FormatFloat(n.fval, 'g', -1, 64))
		}
	case n.op == OpSym:
		b.WriteString(n.name)
	case n.op == OpNeg:
		b.WriteString("(-")
		writeExpr(b, n.child[0])
		b.WriteByte(')')
	case n.op.Arity() == 1:
		b.WriteString(n.op.String())
		b.WriteByte('(')
		writeExpr(b, n.child[0])
		b.WriteByte(')')
	default:
		if sym, ok := infixSymbols[n.op]; ok {
			b.WriteByte('(')
			writeExpr(b, n.child[0])
			b.WriteString(sym)
			writeExpr(b, n.child[1])
			b.WriteByte(')')

			return
		}
		b.WriteString(n.op.String())
		b.WriteByte('(')
		writeExpr(b, n.child[0])
		b.WriteByte(',')
		writeExpr(b, n.child[1])
		b.WriteByte(')')
	}
}
