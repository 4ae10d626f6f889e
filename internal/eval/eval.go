// Package eval walks a model.Ast against a variable environment and a
// user-function table, producing a complex result or an *exerr.Error.
package eval

import (
	"math"
	"math/big"

	"github.com/fabian2000/exath-go/internal/cx"
	"github.com/fabian2000/exath-go/internal/exerr"
	"github.com/fabian2000/exath-go/internal/functions"
	"github.com/fabian2000/exath-go/internal/model"
)

// maxCallDepth bounds user-function recursion so a self-referencing
// definition fails with an Overflow error instead of overflowing the stack.
const maxCallDepth = 256

// UserFunc is a user-defined function: named parameters evaluated in the
// caller's environment, then bound afresh for evaluating Body.
type UserFunc struct {
	Params []string
	Body   model.Ast
}

// Vars maps variable names to their bound complex value.
type Vars map[string]cx.Cx

// Funcs maps user-function names to their definition.
type Funcs map[string]UserFunc

// Eval evaluates ast against vars and fns under the given angle mode.
func Eval(ast model.Ast, vars Vars, fns Funcs, angleMode model.AngleMode) (cx.Cx, error) {
	return (&evaluator{vars: vars, fns: fns, angleMode: angleMode}).eval(ast)
}

type evaluator struct {
	vars      Vars
	fns       Funcs
	angleMode model.AngleMode
	depth     int
}

func (e *evaluator) eval(ast model.Ast) (cx.Cx, error) {
	switch n := ast.(type) {
	case *model.Number:
		return cx.Real(n.Value), nil

	case *model.Var:
		v, ok := e.vars[n.Name]
		if !ok {
			// An unbound "i" is the imaginary unit; a binding named i wins.
			if n.Name == "i" {
				return cx.Cx{Im: 1}, nil
			}
			return cx.Cx{}, exerr.Undefined("undefined variable: %s", n.Name)
		}
		return v, nil

	case *model.BinExpr:
		return e.evalBinExpr(n)

	case *model.UnaryNeg:
		inner, err := e.eval(n.Inner)
		if err != nil {
			return cx.Cx{}, err
		}
		return cx.Neg(inner), nil

	case *model.UnaryNot:
		inner, err := e.eval(n.Inner)
		if err != nil {
			return cx.Cx{}, err
		}
		return boolValue(inner.IsZero()), nil

	case *model.Factorial:
		inner, err := e.eval(n.Inner)
		if err != nil {
			return cx.Cx{}, err
		}
		if !inner.IsReal() {
			return cx.Cx{}, exerr.ArgType("factorial only defined for real numbers")
		}
		result, err := functions.Factorial(inner.Re)
		if err != nil {
			return cx.Cx{}, err
		}
		return cx.Real(result), nil

	case *model.Call:
		return e.evalCall(n)

	default:
		return cx.Cx{}, exerr.Parse("unknown expression node")
	}
}

// boolValue maps a boolean to the engine's canonical 0/1 representation.
func boolValue(b bool) cx.Cx {
	if b {
		return cx.Real(1)
	}
	return cx.Real(0)
}

func (e *evaluator) evalBinExpr(n *model.BinExpr) (cx.Cx, error) {
	// Logical operators short-circuit and never evaluate the right side
	// unless needed.
	switch n.Op {
	case model.OpAnd:
		left, err := e.eval(n.Left)
		if err != nil {
			return cx.Cx{}, err
		}
		if left.IsZero() {
			return cx.Real(0), nil
		}
		right, err := e.eval(n.Right)
		if err != nil {
			return cx.Cx{}, err
		}
		return boolValue(!right.IsZero()), nil

	case model.OpOr:
		left, err := e.eval(n.Left)
		if err != nil {
			return cx.Cx{}, err
		}
		if !left.IsZero() {
			return cx.Real(1), nil
		}
		right, err := e.eval(n.Right)
		if err != nil {
			return cx.Cx{}, err
		}
		return boolValue(!right.IsZero()), nil
	}

	left, err := e.eval(n.Left)
	if err != nil {
		return cx.Cx{}, err
	}
	right, err := e.eval(n.Right)
	if err != nil {
		return cx.Cx{}, err
	}

	switch n.Op {
	case model.OpAdd:
		return cx.Add(left, right), nil
	case model.OpSub:
		return cx.Sub(left, right), nil
	case model.OpMul:
		return cx.Mul(left, right), nil
	case model.OpDiv:
		return cx.Div(left, right)
	case model.OpPow:
		return cx.Pow(left, right)
	case model.OpMod:
		if right.IsZero() {
			return cx.Cx{}, exerr.Domain("modulo by zero")
		}
		if !right.IsReal() {
			return cx.Cx{}, exerr.ArgType("modulo only defined for real numbers")
		}
		return cx.Real(math.Mod(left.Re, right.Re)), nil
	case model.OpEq:
		return cmpOp(left, right, func(a, b float64) bool { return math.Abs(a-b) < cx.RealTolerance })
	case model.OpNe:
		return cmpOp(left, right, func(a, b float64) bool { return math.Abs(a-b) >= cx.RealTolerance })
	case model.OpLt:
		return cmpOp(left, right, func(a, b float64) bool { return a < b })
	case model.OpLe:
		return cmpOp(left, right, func(a, b float64) bool { return a <= b })
	case model.OpGt:
		return cmpOp(left, right, func(a, b float64) bool { return a > b })
	case model.OpGe:
		return cmpOp(left, right, func(a, b float64) bool { return a >= b })
	default:
		return cx.Cx{}, exerr.Parse("unknown binary operator")
	}
}

func cmpOp(left, right cx.Cx, compare func(a, b float64) bool) (cx.Cx, error) {
	if !left.IsReal() || !right.IsReal() {
		return cx.Cx{}, exerr.ArgType("comparison operators only defined for real numbers")
	}
	return boolValue(compare(left.Re, right.Re)), nil
}

func (e *evaluator) evalCall(n *model.Call) (cx.Cx, error) {
	if fn, ok := e.fns[n.Name]; ok {
		return e.evalUserCall(n, fn)
	}

	switch n.Name {
	case "if":
		if len(n.Args) != 3 {
			return cx.Cx{}, exerr.ArgCount("if requires 3 arguments: if(condition, true_value, false_value)")
		}
		cond, err := e.eval(n.Args[0])
		if err != nil {
			return cx.Cx{}, err
		}
		if !cond.IsZero() {
			return e.eval(n.Args[1])
		}
		return e.eval(n.Args[2])

	case "min":
		if len(n.Args) == 0 {
			return cx.Cx{}, exerr.ArgCount("min requires at least one argument")
		}
		best, err := e.evalRealArg(n.Args[0], "min")
		if err != nil {
			return cx.Cx{}, err
		}
		for _, arg := range n.Args[1:] {
			v, err := e.evalRealArg(arg, "min")
			if err != nil {
				return cx.Cx{}, err
			}
			if v < best {
				best = v
			}
		}
		return cx.Real(best), nil

	case "max":
		if len(n.Args) == 0 {
			return cx.Cx{}, exerr.ArgCount("max requires at least one argument")
		}
		best, err := e.evalRealArg(n.Args[0], "max")
		if err != nil {
			return cx.Cx{}, err
		}
		for _, arg := range n.Args[1:] {
			v, err := e.evalRealArg(arg, "max")
			if err != nil {
				return cx.Cx{}, err
			}
			if v > best {
				best = v
			}
		}
		return cx.Real(best), nil

	case "clamp":
		if len(n.Args) != 3 {
			return cx.Cx{}, exerr.ArgCount("clamp requires 3 arguments: clamp(x, min, max)")
		}
		value, err := e.evalRealArg(n.Args[0], "clamp")
		if err != nil {
			return cx.Cx{}, err
		}
		lower, err := e.evalRealArg(n.Args[1], "clamp")
		if err != nil {
			return cx.Cx{}, err
		}
		upper, err := e.evalRealArg(n.Args[2], "clamp")
		if err != nil {
			return cx.Cx{}, err
		}
		return cx.Real(math.Min(math.Max(value, lower), upper)), nil

	case "gcd":
		if len(n.Args) != 2 {
			return cx.Cx{}, exerr.ArgCount("gcd requires 2 arguments")
		}
		a, err := e.evalIntArg(n.Args[0], "gcd")
		if err != nil {
			return cx.Cx{}, err
		}
		b, err := e.evalIntArg(n.Args[1], "gcd")
		if err != nil {
			return cx.Cx{}, err
		}
		return cx.Real(float64(gcd(abs64(a), abs64(b)))), nil

	case "lcm":
		if len(n.Args) != 2 {
			return cx.Cx{}, exerr.ArgCount("lcm requires 2 arguments")
		}
		a, err := e.evalIntArg(n.Args[0], "lcm")
		if err != nil {
			return cx.Cx{}, err
		}
		b, err := e.evalIntArg(n.Args[1], "lcm")
		if err != nil {
			return cx.Cx{}, err
		}
		divisor := gcd(abs64(a), abs64(b))
		if divisor == 0 {
			return cx.Real(0), nil
		}
		// a/divisor*b can exceed int64 even though a and b individually fit,
		// so the multiply is done in arbitrary precision before going to f64.
		result := new(big.Int).Quo(big.NewInt(a), big.NewInt(divisor))
		result.Mul(result, big.NewInt(b))
		result.Abs(result)
		f, _ := new(big.Float).SetInt(result).Float64()
		return cx.Real(f), nil

	default:
		if len(n.Args) != 1 {
			return cx.Cx{}, exerr.ArgCount("'%s' requires exactly 1 argument", n.Name)
		}
		value, err := e.eval(n.Args[0])
		if err != nil {
			return cx.Cx{}, err
		}
		return functions.Apply(n.Name, value, e.angleMode)
	}
}

func (e *evaluator) evalUserCall(n *model.Call, fn UserFunc) (cx.Cx, error) {
	if len(n.Args) != len(fn.Params) {
		return cx.Cx{}, exerr.ArgCount("%s() expects %d argument(s), got %d", n.Name, len(fn.Params), len(n.Args))
	}
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxCallDepth {
		return cx.Cx{}, exerr.Overflowed("%s() recursion too deep", n.Name)
	}

	callVars := make(Vars, len(e.vars)+len(fn.Params))
	for k, v := range e.vars {
		callVars[k] = v
	}
	for i, param := range fn.Params {
		v, err := e.eval(n.Args[i])
		if err != nil {
			return cx.Cx{}, err
		}
		callVars[param] = v
	}

	inner := &evaluator{vars: callVars, fns: e.fns, angleMode: e.angleMode, depth: e.depth}
	return inner.eval(fn.Body)
}

func (e *evaluator) evalRealArg(ast model.Ast, fname string) (float64, error) {
	value, err := e.eval(ast)
	if err != nil {
		return 0, err
	}
	if !value.IsReal() {
		return 0, exerr.ArgType("%s only defined for real arguments", fname)
	}
	return value.Re, nil
}

func (e *evaluator) evalIntArg(ast model.Ast, fname string) (int64, error) {
	value, err := e.evalRealArg(ast, fname)
	if err != nil {
		return 0, err
	}
	return toInteger(value, fname)
}

func toInteger(x float64, fname string) (int64, error) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, exerr.ArgType("%s requires finite integer arguments", fname)
	}
	rounded := math.Round(x)
	if math.Abs(x-rounded) > 1e-9 {
		return 0, exerr.ArgType("%s requires integer arguments, got %v", fname, x)
	}
	if math.Abs(rounded) > 9.007199254740992e15 {
		return 0, exerr.Overflowed("%s argument too large for integer arithmetic", fname)
	}
	return int64(rounded), nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
