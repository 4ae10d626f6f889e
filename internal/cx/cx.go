// Package cx implements arithmetic over the complex numbers ℂ for the
// expression engine. Every operation here is the single source of truth for
// its formula; the evaluator and the built-in function library never
// reimplement these from scratch, they call into this package.
package cx

import (
	"math"

	"github.com/fabian2000/exath-go/internal/exerr"
)

// RealTolerance is the absolute tolerance used everywhere a real/complex
// discrimination or a real equality comparison is needed. It must stay
// consistent across this package, the evaluator's comparison operators, and
// any binding layer's classification of a result as Real vs Complex.
const RealTolerance = 1e-12

// Cx is a complex scalar (re, im), both float64.
type Cx struct {
	Re float64
	Im float64
}

// Real builds a purely real Cx.
func Real(re float64) Cx { return Cx{Re: re} }

// IsReal reports whether the imaginary part is within RealTolerance of zero.
func (c Cx) IsReal() bool { return math.Abs(c.Im) < RealTolerance }

// IsZero reports C-style truthiness's negation: re == 0 && im == 0, exactly
// (not tolerance-based — truthiness in this language is a hard zero test).
func (c Cx) IsZero() bool { return c.Re == 0 && c.Im == 0 }

// Add returns a + b.
func Add(a, b Cx) Cx { return Cx{Re: a.Re + b.Re, Im: a.Im + b.Im} }

// Sub returns a - b.
func Sub(a, b Cx) Cx { return Cx{Re: a.Re - b.Re, Im: a.Im - b.Im} }

// Mul returns a * b.
func Mul(a, b Cx) Cx {
	return Cx{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Div returns a / b, failing with a DomainError when b is zero.
func Div(a, b Cx) (Cx, error) {
	denom := b.Re*b.Re + b.Im*b.Im
	if denom == 0 {
		return Cx{}, exerr.Domain("division by zero")
	}
	return Cx{
		Re: (a.Re*b.Re + a.Im*b.Im) / denom,
		Im: (a.Im*b.Re - a.Re*b.Im) / denom,
	}, nil
}

// Neg returns -a.
func Neg(a Cx) Cx { return Cx{Re: -a.Re, Im: -a.Im} }

// Abs returns |a|.
func Abs(a Cx) float64 { return math.Sqrt(a.Re*a.Re + a.Im*a.Im) }

// Arg returns the principal value of a's argument, atan2(im, re), with a
// zero imaginary part normalised to +0.0 so that Arg(-x+0i) is +π rather
// than -π. This normalisation is part of the contract, not an accident of
// atan2's branch cut.
func Arg(a Cx) float64 {
	im := a.Im
	if im == 0 {
		im = 0
	}
	return math.Atan2(im, a.Re)
}

// Ln returns the principal natural logarithm, failing when a is zero.
func Ln(a Cx) (Cx, error) {
	modulus := Abs(a)
	if modulus == 0 {
		return Cx{}, exerr.Domain("ln undefined for 0")
	}
	return Cx{Re: math.Log(modulus), Im: Arg(a)}, nil
}

// Exp returns e^a.
func Exp(a Cx) Cx {
	scale := math.Exp(a.Re)
	return Cx{Re: scale * math.Cos(a.Im), Im: scale * math.Sin(a.Im)}
}

// Pow returns a^b. 0^x is 0 for x with a positive real part, and a
// DomainError otherwise (0^0 and 0^negative are both undefined here).
func Pow(a, b Cx) (Cx, error) {
	if a.Re == 0 && a.Im == 0 {
		if b.Re > 0 {
			return Real(0), nil
		}
		return Cx{}, exerr.Domain("0^x undefined for x<=0")
	}
	l, err := Ln(a)
	if err != nil {
		return Cx{}, err
	}
	return Exp(Mul(l, b)), nil
}

// Sqrt returns the principal square root. Never fails: Sqrt(-4) is 2i, with a
// real part that is a rounding residue of about 1e-16.
func Sqrt(a Cx) Cx {
	modulus := math.Sqrt(Abs(a))
	half := Arg(a) / 2
	return Cx{Re: modulus * math.Cos(half), Im: modulus * math.Sin(half)}
}
