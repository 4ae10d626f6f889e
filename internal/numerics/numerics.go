// Package numerics implements the calculator's numerical methods: a
// central-difference derivative, composite Simpson's-rule integration, and
// integer-range summation/product. Every method parses its expression once
// and re-evaluates it at each sample point with a single real variable bound.
package numerics

import (
	"github.com/fabian2000/exath-go/internal/cx"
	"github.com/fabian2000/exath-go/internal/eval"
	"github.com/fabian2000/exath-go/internal/exerr"
	"github.com/fabian2000/exath-go/internal/model"
	"github.com/fabian2000/exath-go/internal/parser"
)

// MaxTerms bounds Sum and Prod so a mistyped range can't run forever.
const MaxTerms = 10_000_000

func evalAt(ast model.Ast, varName string, x float64, angleMode model.AngleMode) (float64, error) {
	vars := eval.Vars{varName: cx.Real(x)}
	result, err := eval.Eval(ast, vars, nil, angleMode)
	if err != nil {
		return 0, err
	}
	if !result.IsReal() {
		return 0, exerr.ComplexResulted("expression produced a complex value at x=%v", x)
	}
	return result.Re, nil
}

// Deriv numerically differentiates expr with respect to var at x using a
// central finite difference with step h = max(|x| * 1e-7, 1e-10).
func Deriv(expr, varName string, x float64, angleMode model.AngleMode) (float64, error) {
	ast, err := parser.Parse(expr)
	if err != nil {
		return 0, err
	}
	h := x
	if h < 0 {
		h = -h
	}
	h *= 1e-7
	if h < 1e-10 {
		h = 1e-10
	}
	forward, err := evalAt(ast, varName, x+h, angleMode)
	if err != nil {
		return 0, err
	}
	backward, err := evalAt(ast, varName, x-h, angleMode)
	if err != nil {
		return 0, err
	}
	return (forward - backward) / (2 * h), nil
}

// Integrate numerically integrates expr with respect to var over [a, b]
// using composite Simpson's rule with 1000 intervals.
func Integrate(expr, varName string, a, b float64, angleMode model.AngleMode) (float64, error) {
	const n = 1000
	ast, err := parser.Parse(expr)
	if err != nil {
		return 0, err
	}
	step := (b - a) / n

	first, err := evalAt(ast, varName, a, angleMode)
	if err != nil {
		return 0, err
	}
	last, err := evalAt(ast, varName, b, angleMode)
	if err != nil {
		return 0, err
	}

	total := first + last
	for i := 1; i < n; i++ {
		x := a + float64(i)*step
		value, err := evalAt(ast, varName, x, angleMode)
		if err != nil {
			return 0, err
		}
		if i%2 == 0 {
			total += 2 * value
		} else {
			total += 4 * value
		}
	}
	return total * step / 3, nil
}

// Sum computes Σ expr for var = from..to inclusive, integer steps.
func Sum(expr, varName string, from, to int64, angleMode model.AngleMode) (float64, error) {
	if to-from > MaxTerms {
		return 0, exerr.RangeTooLargeErr("sum range too large (max %d terms)", MaxTerms)
	}
	ast, err := parser.Parse(expr)
	if err != nil {
		return 0, err
	}
	var accumulator float64
	for k := from; k <= to; k++ {
		value, err := evalAt(ast, varName, float64(k), angleMode)
		if err != nil {
			return 0, err
		}
		accumulator += value
	}
	return accumulator, nil
}

// Prod computes Π expr for var = from..to inclusive, integer steps.
func Prod(expr, varName string, from, to int64, angleMode model.AngleMode) (float64, error) {
	if to-from > MaxTerms {
		return 0, exerr.RangeTooLargeErr("product range too large (max %d terms)", MaxTerms)
	}
	ast, err := parser.Parse(expr)
	if err != nil {
		return 0, err
	}
	accumulator := 1.0
	for k := from; k <= to; k++ {
		value, err := evalAt(ast, varName, float64(k), angleMode)
		if err != nil {
			return 0, err
		}
		accumulator *= value
	}
	return accumulator, nil
}
