package expr_test

import (
	"fmt"

	"github.com/katalvlaran/lvsym/expr"
)

// ExampleVar builds a small symbolic expression and renders it. Construction
// runs the rewrite rules, so the textual form is already simplified.
func ExampleVar() {
	x := expr.Var("x")
	y := expr.Var("y")

	e := x.Add(y).Mul(expr.Const(2))
	fmt.Println(e)
	// Output:
	// (2*(x+y))
}

// ExampleConst demonstrates literal interning: equal literals are one node,
// so == is a meaningful identity test.
func ExampleConst() {
	fmt.Println(expr.Const(2) == expr.Const(2))
	fmt.Println(expr.Const(2) == expr.Int(2))
	fmt.Println(expr.Const(2) == expr.Const(3))
	// Output:
	// true
	// true
	// false
}

// ExampleExpr_Add shows construction-time simplification keeping identities
// free: adding zero or multiplying by one returns the original handle.
func ExampleExpr_Add() {
	x := expr.Var("x")

	fmt.Println(x.Add(expr.Const(0)) == x)
	fmt.Println(x.Mul(expr.Const(1)) == x)
	fmt.Println(x.Sub(x))
	// Output:
	// true
	// true
	// 0
}

// ExampleExpr_Pow shows the integer exponent lowering to repeated squaring.
func ExampleExpr_Pow() {
	x := expr.Var("x")

	fmt.Println(x.Pow(expr.Int(2)))
	fmt.Println(x.Pow(expr.Int(3)))
	fmt.Println(expr.Const(2).Pow(expr.Int(10)))
	// Output:
	// sq(x)
	// (x*sq(x))
	// 1024
}

// ExampleSetSimplification turns the rewrite engine off for a scope, which
// preserves the exact graph shape of every operation.
func ExampleSetSimplification() {
	x := expr.Var("x")

	prev := expr.SetSimplification(false)
	raw := x.Add(expr.Const(0)) // kept as an addition node
	expr.SetSimplification(prev)

	fmt.Println(raw)
	fmt.Println(raw == x)
	// Output:
	// (x+0)
	// false
}

// ExampleIfElse composes a branchless conditional from the primitive
// if_else_zero selector.
func ExampleIfElse() {
	c := expr.Var("c")
	sel := expr.IfElse(c, expr.Var("a"), expr.Var("b"))

	fmt.Println(sel)
	fmt.Println(expr.IfElse(expr.Const(1), expr.Var("a"), expr.Var("b")))
	// Output:
	// (if_else_zero(c,a)+if_else_zero(not(c),b))
	// a
}
