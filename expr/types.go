// SPDX-License-Identifier: MIT

// Package expr: operation codes, the internal node representation and the
// numeric evaluation tables used for constant folding. Everything here is
// package-private except Op and its queries; users interact through Expr.

package expr

import "math"

// Op identifies the kind of an expression node. The set is closed and known:
// every algorithm in this package switches exhaustively over these codes, so
// adding a code requires touching the name table and both eval tables.
type Op uint8

// Node kinds, grouped by arity. The grouping is load-bearing: Arity is
// derived from the position of a code inside these three ranges, so new
// codes MUST be appended to the range they belong to.
const (
	// Leaves (arity 0).
	OpConst Op = iota // numeric literal, integer-tagged or real
	OpSym             // free symbol

	// Unary operations (arity 1).
	OpNeg
	OpInv
	OpSqrt
	OpSq
	OpExp
	OpLog
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpSinh
	OpCosh
	OpTanh
	OpAsinh
	OpAcosh
	OpAtanh
	OpAbs
	OpSign
	OpErf
	OpErfinv
	OpFloor
	OpCeil
	OpNot

	// Binary operations (arity 2).
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpConstPow
	OpFmod
	OpAtan2
	OpMin
	OpMax
	OpCopySign
	OpLt
	OpLe
	OpEq
	OpNe
	OpAnd
	OpOr
	OpIfElseZero

	numOps // sentinel; keep last
)

// opNames maps codes to canonical lowercase names used by String and by the
// function-form rendering of expressions.
var opNames = [numOps]string{
	OpConst:      "const",
	OpSym:        "sym",
	OpNeg:        "neg",
	OpInv:        "inv",
	OpSqrt:       "sqrt",
	OpSq:         "sq",
	OpExp:        "exp",
	OpLog:        "log",
	OpSin:        "sin",
	OpCos:        "cos",
	OpTan:        "tan",
	OpAsin:       "asin",
	OpAcos:       "acos",
	OpAtan:       "atan",
	OpSinh:       "sinh",
	OpCosh:       "cosh",
	OpTanh:       "tanh",
	OpAsinh:      "asinh",
	OpAcosh:      "acosh",
	OpAtanh:      "atanh",
	OpAbs:        "abs",
	OpSign:       "sign",
	OpErf:        "erf",
	OpErfinv:     "erfinv",
	OpFloor:      "floor",
	OpCeil:       "ceil",
	OpNot:        "not",
	OpAdd:        "add",
	OpSub:        "sub",
	OpMul:        "mul",
	OpDiv:        "div",
	OpPow:        "pow",
	OpConstPow:   "constpow",
	OpFmod:       "fmod",
	OpAtan2:      "atan2",
	OpMin:        "min",
	OpMax:        "max",
	OpCopySign:   "copysign",
	OpLt:         "lt",
	OpLe:         "le",
	OpEq:         "eq",
	OpNe:         "ne",
	OpAnd:        "and",
	OpOr:         "or",
	OpIfElseZero: "if_else_zero",
}

// String returns the canonical lowercase name of the operation code.
func (op Op) String() string {
	if op >= numOps {
		return "op(?)"
	}

	return opNames[op]
}

// Arity returns the number of children a node with this code carries:
// 0 for leaves, 1 for unary operations, 2 for binary operations.
func (op Op) Arity() int {
	switch {
	case op <= OpSym:
		return 0
	case op <= OpNot:
		return 1
	default:
		return 2
	}
}

// node is one vertex of the expression DAG. Nodes are immutable after
// construction (children are never rewritten in place) with one exception:
// temp is a transient scratch slot exposed for external graph algorithms
// and carries no expression semantics.
type node struct {
	op    Op
	fval  float64 // OpConst: numeric value (also set for integer payloads)
	ival  int64   // OpConst with isInt: exact integer value
	isInt bool    // OpConst: integer payload tag
	name  string  // OpSym: display name
	id    uint64  // OpSym: process-unique identity
	child [2]*node
	temp  int // transient mark; see Expr.Temp
}

// ---------- node predicates (value-based, mirroring the singleton set) ----------

func (n *node) isOp(op Op) bool { return n.op == op }

func (n *node) isConstValue(v float64) bool { return n.op == OpConst && n.fval == v }

func (n *node) isZero() bool { return n.isConstValue(0) }

func (n *node) isOne() bool { return n.isConstValue(1) }

func (n *node) isMinusOne() bool { return n.isConstValue(-1) }

// isNonNegative reports whether the node is provably >= 0 from its shape
// alone: a non-negative constant, a square, or an absolute value.
func (n *node) isNonNegative() bool {
	switch {
	case n.op == OpConst:
		return n.fval >= 0
	case n.op == OpSq || n.op == OpAbs:
		return true
	default:
		return false
	}
}

// isDoubled reports whether the node is x+x for some x, up to the given
// structural comparison depth.
func (n *node) isDoubled(depth int) bool {
	return n.op == OpAdd && structEqual(n.child[0], n.child[1], depth)
}

// structEqual implements depth-bounded structural equality: identical nodes
// are equal at any depth; beyond that, equality requires the same code and
// children equal at depth-1. Constants compare by value, symbols only by
// identity. Cost is bounded by depth, never by graph size.
func structEqual(a, b *node, depth int) bool {
	if a == b {
		return true
	}
	if depth <= 0 || a.op != b.op {
		return false
	}

	switch a.op.Arity() {
	case 0:
		// Interning makes equal constants identical in practice; the value
		// compare covers constants created across a cache reset.
		return a.op == OpConst && a.fval == b.fval
	case 1:
		return structEqual(a.child[0], b.child[0], depth-1)
	default:
		return structEqual(a.child[0], b.child[0], depth-1) &&
			structEqual(a.child[1], b.child[1], depth-1)
	}
}

// ---------- numeric evaluation (constant folding) ----------

const panicUnknownOp = "expr: unknown operation code"

// evalUnary computes op applied to a constant operand.
func evalUnary(op Op, x float64) float64 {
	switch op {
	case OpNeg:
		return -x
	case OpInv:
		return 1 / x
	case OpSqrt:
		return math.Sqrt(x)
	case OpSq:
		return x * x
	case OpExp:
		return math.Exp(x)
	case OpLog:
		return math.Log(x)
	case OpSin:
		return math.Sin(x)
	case OpCos:
		return math.Cos(x)
	case OpTan:
		return math.Tan(x)
	case OpAsin:
		return math.Asin(x)
	case OpAcos:
		return math.Acos(x)
	case OpAtan:
		return math.Atan(x)
	case OpSinh:
		return math.Sinh(x)
	case OpCosh:
		return math.Cosh(x)
	case OpTanh:
		return math.Tanh(x)
	case OpAsinh:
		return math.Asinh(x)
	case OpAcosh:
		return math.Acosh(x)
	case OpAtanh:
		return math.Atanh(x)
	case OpAbs:
		return math.Abs(x)
	case OpSign:
		return signOf(x)
	case OpErf:
		return math.Erf(x)
	case OpErfinv:
		return math.Erfinv(x)
	case OpFloor:
		return math.Floor(x)
	case OpCeil:
		return math.Ceil(x)
	case OpNot:
		return boolVal(x == 0)
	}

	panic(panicUnknownOp)
}

// evalBinary computes op applied to two constant operands.
func evalBinary(op Op, x, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	case OpPow, OpConstPow:
		return math.Pow(x, y)
	case OpFmod:
		return math.Mod(x, y)
	case OpAtan2:
		return math.Atan2(x, y)
	case OpMin:
		return math.Min(x, y)
	case OpMax:
		return math.Max(x, y)
	case OpCopySign:
		return math.Copysign(x, y)
	case OpLt:
		return boolVal(x < y)
	case OpLe:
		return boolVal(x <= y)
	case OpEq:
		return boolVal(x == y)
	case OpNe:
		return boolVal(x != y)
	case OpAnd:
		return boolVal(x != 0 && y != 0)
	case OpOr:
		return boolVal(x != 0 || y != 0)
	case OpIfElseZero:
		if x != 0 {
			return y
		}

		return 0
	}

	panic(panicUnknownOp)
}

// signOf follows the three-valued sign convention: sign(0)=0, sign(NaN)=NaN.
func signOf(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case x == 0:
		return 0
	default:
		return math.NaN()
	}
}

func boolVal(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
