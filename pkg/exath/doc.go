/*
Package exath evaluates arithmetic expressions over the complex numbers ℂ.

# Quick Start

The simplest way to evaluate an expression is Evaluate, which fails if the
result has a non-negligible imaginary part:

	result, err := exath.Evaluate("2 + 3 * 4", exath.Rad)

EvaluateComplex never makes that assumption and returns a CalcResult that
may carry an imaginary part:

	result, err := exath.EvaluateComplex("sqrt(-4)", exath.Rad)
	// result.IsComplex == true, result.Im == 2 (result.Re is a rounding residue near 0)

# Variables and User Functions

EvaluateWithVars and EvaluateWithVarsAndFns accept bindings for a single
call without retaining any state:

	vars := map[string]exath.Cx{"x": {Re: 3}}
	result, err := exath.EvaluateWithVars("x^2 + 1", exath.Rad, vars)

# Sessions

For a persistent calculator that accumulates variables and user-defined
functions across many lines of input, use Session:

	s := exath.NewSession(exath.Rad)
	s.Eval("a = 5")
	s.Eval("f(x) = x^2 + 1")
	result, _ := s.Eval("f(a)") // 25.999999999999996: a^2 is computed as exp(2·ln a)

# Angle Modes

Trigonometric functions interpret their real input according to an
AngleMode: Deg, Rad, or Grad. ParseAngleMode accepts the names a
configuration file or command-line flag would use.

# Numerical Methods

Deriv, Integrate, Sum, and Prod treat an expression as a single-variable
real function and apply a central-difference derivative, composite
Simpson's-rule integration, or an integer-range sum/product respectively.

# Error Handling

Every failure is returned as a standard error wrapping a concrete kind
(parse error, undefined name, wrong argument count or type, domain
violation, and so on) so callers can branch with errors.Is instead of
parsing message strings.

# Concurrency

The stateless functions (Evaluate, Parse, IsValid, ...) are safe for
concurrent use. A Session is not: share one across goroutines only with
your own synchronization.
*/
package exath
