// Package exath is an expression evaluation engine over the complex numbers:
// a tokenizer, a Pratt-style recursive-descent parser, and a complex-valued
// evaluator with about forty-five built-in functions, variables, and
// user-defined functions.
//
// The simplest way to evaluate an expression is Evaluate:
//
//	result, err := exath.Evaluate("2 + 3 * 4", exath.Rad)
//
// For a persistent calculator session with variables and user functions, use
// Session:
//
//	s := exath.NewSession(exath.Rad)
//	s.Eval("a = 5")
//	s.Eval("f(x) = x^2 + 1")
//	r, _ := s.Eval("f(a)") // 25.999999999999996: a^2 is computed as exp(2·ln a)
package exath

import (
	"github.com/fabian2000/exath-go/internal/cx"
	"github.com/fabian2000/exath-go/internal/eval"
	"github.com/fabian2000/exath-go/internal/exerr"
	"github.com/fabian2000/exath-go/internal/functions"
	"github.com/fabian2000/exath-go/internal/model"
	"github.com/fabian2000/exath-go/internal/numerics"
	"github.com/fabian2000/exath-go/internal/parser"
)

// AngleMode selects the unit used by the trigonometric function family.
type AngleMode = model.AngleMode

const (
	Deg  = model.Deg
	Rad  = model.Rad
	Grad = model.Grad
)

// ParseAngleMode accepts case-insensitive "deg"/"rad"/"grad".
func ParseAngleMode(s string) (AngleMode, error) { return model.ParseAngleMode(s) }

// Ast is the parsed representation of an expression, as returned by Parse.
type Ast = model.Ast

// Cx is a complex scalar, re-exported so callers can build variable
// bindings without importing an internal package.
type Cx = cx.Cx

// UserFunc is a user-defined function's parameter list and already-parsed
// body, as accepted by EvaluateWithVarsAndFns.
type UserFunc = eval.UserFunc

// Evaluate evaluates expr, returning an error if the result is complex or
// the expression is invalid.
func Evaluate(expr string, angleMode AngleMode) (float64, error) {
	result, err := EvaluateComplex(expr, angleMode)
	if err != nil {
		return 0, err
	}
	if result.IsComplex {
		return 0, exerr.ComplexResulted("result is complex")
	}
	return result.Re, nil
}

// EvaluateComplex evaluates expr with no variables or user functions bound.
func EvaluateComplex(expr string, angleMode AngleMode) (CalcResult, error) {
	return EvaluateWithVars(expr, angleMode, nil)
}

// EvaluateWithVars evaluates expr with the given variable bindings.
func EvaluateWithVars(expr string, angleMode AngleMode, vars map[string]Cx) (CalcResult, error) {
	return EvaluateWithVarsAndFns(expr, angleMode, vars, nil)
}

// EvaluateWithVarsAndFns evaluates expr with both variable bindings and
// user-defined functions available to it.
func EvaluateWithVarsAndFns(expr string, angleMode AngleMode, vars map[string]Cx, fns map[string]UserFunc) (CalcResult, error) {
	ast, err := parser.Parse(expr)
	if err != nil {
		return CalcResult{}, err
	}
	result, err := eval.Eval(ast, eval.Vars(vars), eval.Funcs(fns), angleMode)
	if err != nil {
		return CalcResult{}, err
	}
	return fromCx(result), nil
}

// IsValid reports whether expr parses without error. It does not evaluate
// the expression, so undefined variables don't make it invalid.
func IsValid(expr string) bool {
	_, err := parser.Parse(expr)
	return err == nil
}

// SupportedFunctions returns the names of every built-in function the
// engine recognises, including multi-argument control-flow built-ins.
func SupportedFunctions() []string {
	names := make([]string, 0, len(functions.Names)+6)
	names = append(names, functions.Names...)
	names = append(names, "if", "min", "max", "clamp", "gcd", "lcm")
	return names
}

// Parse parses expr into an Ast for inspection or repeated evaluation.
func Parse(expr string) (Ast, error) { return parser.Parse(expr) }

// Deriv numerically differentiates expr with respect to var at x.
func Deriv(expr, varName string, x float64, angleMode AngleMode) (float64, error) {
	return numerics.Deriv(expr, varName, x, angleMode)
}

// Integrate numerically integrates expr with respect to var over [a, b].
func Integrate(expr, varName string, a, b float64, angleMode AngleMode) (float64, error) {
	return numerics.Integrate(expr, varName, a, b, angleMode)
}

// Sum computes Σ expr for var = from..to inclusive.
func Sum(expr, varName string, from, to int64, angleMode AngleMode) (float64, error) {
	return numerics.Sum(expr, varName, from, to, angleMode)
}

// Prod computes Π expr for var = from..to inclusive.
func Prod(expr, varName string, from, to int64, angleMode AngleMode) (float64, error) {
	return numerics.Prod(expr, varName, from, to, angleMode)
}
