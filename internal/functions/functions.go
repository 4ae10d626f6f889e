// Package functions implements the single-argument built-in function
// library: analytic continuations of the trig/hyperbolic/inverse/log
// families to ℂ, plus real-only rounding, sign, and angle-conversion helpers.
package functions

import (
	"math"
	"strconv"
	"strings"

	"github.com/fabian2000/exath-go/internal/cx"
	"github.com/fabian2000/exath-go/internal/exerr"
	"github.com/fabian2000/exath-go/internal/model"
)

// Names lists every built-in function name in the stable order the public
// surface advertises: trig, inverse trig, hyperbolic, inverse hyperbolic,
// exp/log, roots, magnitude/complex-parts, rounding, sign, angle-conv.
// Variadic/control built-ins (if, min, max, clamp, gcd, lcm) are dispatched
// by the evaluator, not this table, and are appended by its caller.
var Names = []string{
	"sin", "cos", "tan", "cot", "sec", "csc",
	"asin", "acos", "atan", "acot", "asec", "acsc",
	"sinh", "cosh", "tanh", "coth", "sech", "csch",
	"asinh", "acosh", "atanh", "acoth", "asech", "acsch",
	"exp", "ln", "lg", "log",
	"sqrt", "cbrt",
	"abs", "arg", "conj", "real", "imag",
	"floor", "ceil", "round", "trunc", "frac",
	"sign", "sgn",
	"deg", "rad",
}

// Apply dispatches a single-argument built-in by name. angleMode affects
// only the trig and inverse-trig families.
func Apply(name string, z cx.Cx, angleMode model.AngleMode) (cx.Cx, error) {
	switch name {
	case "sin":
		return sinC(z, angleMode), nil
	case "cos":
		return cosC(z, angleMode), nil
	case "tan":
		s := sinC(z, angleMode)
		c := cosC(z, angleMode)
		return cx.Div(s, c)
	case "cot":
		s := sinC(z, angleMode)
		c := cosC(z, angleMode)
		return cx.Div(c, s)
	case "sec":
		c := cosC(z, angleMode)
		return cx.Div(cx.Real(1), c)
	case "csc":
		s := sinC(z, angleMode)
		return cx.Div(cx.Real(1), s)

	case "asin":
		return asinC(z, angleMode)
	case "acos":
		return acosC(z, angleMode)
	case "atan":
		return atanC(z, angleMode)
	case "acot":
		inv, err := cx.Div(cx.Real(1), z)
		if err != nil {
			return cx.Cx{}, err
		}
		return atanC(inv, angleMode)
	case "asec":
		inv, err := cx.Div(cx.Real(1), z)
		if err != nil {
			return cx.Cx{}, err
		}
		return acosC(inv, angleMode)
	case "acsc":
		inv, err := cx.Div(cx.Real(1), z)
		if err != nil {
			return cx.Cx{}, err
		}
		return asinC(inv, angleMode)

	case "sinh":
		return sinhC(z), nil
	case "cosh":
		return coshC(z), nil
	case "tanh":
		s, c := sinhC(z), coshC(z)
		return cx.Div(s, c)
	case "coth":
		s, c := sinhC(z), coshC(z)
		return cx.Div(c, s)
	case "sech":
		c := coshC(z)
		return cx.Div(cx.Real(1), c)
	case "csch":
		s := sinhC(z)
		return cx.Div(cx.Real(1), s)

	case "asinh":
		return asinhC(z)
	case "acosh":
		return acoshC(z)
	case "atanh":
		return atanhC(z)
	case "acoth":
		inv, err := cx.Div(cx.Real(1), z)
		if err != nil {
			return cx.Cx{}, err
		}
		return atanhC(inv)
	case "asech":
		inv, err := cx.Div(cx.Real(1), z)
		if err != nil {
			return cx.Cx{}, err
		}
		return acoshC(inv)
	case "acsch":
		inv, err := cx.Div(cx.Real(1), z)
		if err != nil {
			return cx.Cx{}, err
		}
		return asinhC(inv)

	case "exp":
		return cx.Exp(z), nil
	case "ln":
		return cx.Ln(z)
	case "lg", "log":
		l, err := cx.Ln(z)
		if err != nil {
			return cx.Cx{}, err
		}
		return cx.Mul(l, cx.Real(1/math.Log(10))), nil

	case "sqrt":
		return cx.Sqrt(z), nil
	case "cbrt":
		return cx.Pow(z, cx.Real(1.0/3.0))

	case "abs":
		return cx.Real(cx.Abs(z)), nil
	case "arg":
		return cx.Real(cx.Arg(z)), nil
	case "conj":
		return cx.Cx{Re: z.Re, Im: -z.Im}, nil
	case "real":
		return cx.Real(z.Re), nil
	case "imag":
		return cx.Real(z.Im), nil

	case "floor":
		if err := requireReal(z, "floor"); err != nil {
			return cx.Cx{}, err
		}
		return cx.Real(math.Floor(z.Re)), nil
	case "ceil":
		if err := requireReal(z, "ceil"); err != nil {
			return cx.Cx{}, err
		}
		return cx.Real(math.Ceil(z.Re)), nil
	case "round":
		if err := requireReal(z, "round"); err != nil {
			return cx.Cx{}, err
		}
		return cx.Real(math.Round(z.Re)), nil
	case "trunc":
		if err := requireReal(z, "trunc"); err != nil {
			return cx.Cx{}, err
		}
		return cx.Real(math.Trunc(z.Re)), nil
	case "frac":
		if err := requireReal(z, "frac"); err != nil {
			return cx.Cx{}, err
		}
		_, frac := math.Modf(z.Re)
		return cx.Real(frac), nil

	case "sign", "sgn":
		if err := requireReal(z, "sign"); err != nil {
			return cx.Cx{}, err
		}
		return cx.Real(sign(z.Re)), nil

	case "deg":
		return cx.Real(z.Re * 180 / math.Pi), nil
	case "rad":
		return cx.Real(z.Re * math.Pi / 180), nil

	default:
		if strings.HasPrefix(name, "log:") {
			return logBase(name[len("log:"):], z)
		}
		return cx.Cx{}, exerr.Undefined("unknown function: %s", name)
	}
}

// Factorial is real, non-negative-integer only. n > 170 overflows to +Inf,
// matching the reference engine rather than erroring.
func Factorial(n float64) (float64, error) {
	if n != math.Trunc(n) {
		return 0, exerr.ArgType("factorial only defined for integers")
	}
	if n < 0 {
		return 0, exerr.Domain("factorial only defined for non-negative integers")
	}
	if n > 170 {
		return math.Inf(1), nil
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result, nil
}

func requireReal(z cx.Cx, fname string) error {
	if !z.IsReal() {
		return exerr.ArgType("%s only defined for real numbers", fname)
	}
	return nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func sinC(z cx.Cx, mode model.AngleMode) cx.Cx {
	angle := mode.ToRadians(z.Re)
	return cx.Cx{Re: math.Sin(angle) * math.Cosh(z.Im), Im: math.Cos(angle) * math.Sinh(z.Im)}
}

func cosC(z cx.Cx, mode model.AngleMode) cx.Cx {
	angle := mode.ToRadians(z.Re)
	return cx.Cx{Re: math.Cos(angle) * math.Cosh(z.Im), Im: -math.Sin(angle) * math.Sinh(z.Im)}
}

func sinhC(z cx.Cx) cx.Cx {
	return cx.Cx{Re: math.Sinh(z.Re) * math.Cos(z.Im), Im: math.Cosh(z.Re) * math.Sin(z.Im)}
}

func coshC(z cx.Cx) cx.Cx {
	return cx.Cx{Re: math.Cosh(z.Re) * math.Cos(z.Im), Im: math.Sinh(z.Re) * math.Sin(z.Im)}
}

// asinC: asin(z) = -i * ln(iz + sqrt(1-z^2)), with the real part of the
// result converted from radians to the active angle mode.
func asinC(z cx.Cx, mode model.AngleMode) (cx.Cx, error) {
	iz := cx.Cx{Re: -z.Im, Im: z.Re}
	oneMinusZ2 := cx.Sqrt(cx.Sub(cx.Real(1), cx.Mul(z, z)))
	l, err := cx.Ln(cx.Add(iz, oneMinusZ2))
	if err != nil {
		return cx.Cx{}, err
	}
	result := cx.Mul(l, cx.Cx{Re: 0, Im: -1})
	return cx.Cx{Re: mode.FromRadians(result.Re), Im: result.Im}, nil
}

// acosC: acos(z) = -i * ln(z + i*sqrt(1-z^2)).
func acosC(z cx.Cx, mode model.AngleMode) (cx.Cx, error) {
	oneMinusZ2 := cx.Sqrt(cx.Sub(cx.Real(1), cx.Mul(z, z)))
	iSqrt := cx.Mul(oneMinusZ2, cx.Cx{Re: 0, Im: 1})
	l, err := cx.Ln(cx.Add(z, iSqrt))
	if err != nil {
		return cx.Cx{}, err
	}
	result := cx.Mul(l, cx.Cx{Re: 0, Im: -1})
	return cx.Cx{Re: mode.FromRadians(result.Re), Im: result.Im}, nil
}

// atanC: atan(z) = (i/2) * ln((i+z)/(i-z)).
func atanC(z cx.Cx, mode model.AngleMode) (cx.Cx, error) {
	i := cx.Cx{Re: 0, Im: 1}
	halfI, err := cx.Div(i, cx.Real(2))
	if err != nil {
		return cx.Cx{}, err
	}
	quotient, err := cx.Div(cx.Add(i, z), cx.Sub(i, z))
	if err != nil {
		return cx.Cx{}, err
	}
	ln, err := cx.Ln(quotient)
	if err != nil {
		return cx.Cx{}, err
	}
	result := cx.Mul(halfI, ln)
	return cx.Cx{Re: mode.FromRadians(result.Re), Im: result.Im}, nil
}

// asinhC: asinh(z) = ln(z + sqrt(z^2+1)).
func asinhC(z cx.Cx) (cx.Cx, error) {
	root := cx.Sqrt(cx.Add(cx.Mul(z, z), cx.Real(1)))
	return cx.Ln(cx.Add(z, root))
}

// acoshC: acosh(z) = ln(z + sqrt(z^2-1)).
func acoshC(z cx.Cx) (cx.Cx, error) {
	root := cx.Sqrt(cx.Sub(cx.Mul(z, z), cx.Real(1)))
	return cx.Ln(cx.Add(z, root))
}

// atanhC: atanh(z) = (1/2) * ln((1+z)/(1-z)).
func atanhC(z cx.Cx) (cx.Cx, error) {
	one, half := cx.Real(1), cx.Real(0.5)
	quotient, err := cx.Div(cx.Add(one, z), cx.Sub(one, z))
	if err != nil {
		return cx.Cx{}, err
	}
	ln, err := cx.Ln(quotient)
	if err != nil {
		return cx.Cx{}, err
	}
	return cx.Mul(ln, half), nil
}

func logBase(baseStr string, z cx.Cx) (cx.Cx, error) {
	normalized := strings.ReplaceAll(baseStr, ",", ".")
	base, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return cx.Cx{}, exerr.Parse("invalid log base: %s", baseStr)
	}
	if base <= 0 || base == 1 {
		return cx.Cx{}, exerr.Domain("log base must be positive and not 1")
	}
	l, err := cx.Ln(z)
	if err != nil {
		return cx.Cx{}, err
	}
	return cx.Mul(l, cx.Real(1/math.Log(base))), nil
}
