package exath

import (
	"strconv"

	"github.com/fabian2000/exath-go/internal/cx"
)

// CalcResult is the outward-facing shape of a computed value: either a real
// number, or a real/imaginary pair once the result's imaginary part exceeds
// cx.RealTolerance. Its fields mirror exactly what a C-ABI or WASM binding
// layer would marshal across the boundary.
type CalcResult struct {
	Re        float64
	Im        float64
	IsComplex bool
}

// Real builds a real-valued CalcResult.
func Real(value float64) CalcResult { return CalcResult{Re: value} }

// ComplexResult builds a complex-valued CalcResult.
func ComplexResult(re, im float64) CalcResult { return CalcResult{Re: re, Im: im, IsComplex: true} }

func fromCx(z cx.Cx) CalcResult {
	if z.IsReal() {
		return Real(z.Re)
	}
	return ComplexResult(z.Re, z.Im)
}

// Quad returns the (re, im, kind, message) quadruple a binding layer marshals
// across its boundary: kind is "Real" or "Complex", message is always empty
// here since a failed evaluation never produces a CalcResult.
func (r CalcResult) Quad() (re, im float64, kind, msg string) {
	if r.IsComplex {
		return r.Re, r.Im, "Complex", ""
	}
	return r.Re, 0, "Real", ""
}

// String formats the result the way a calculator display would: "3.5" for a
// real value, "3.5+2i" (or "3.5-2i") for a complex one.
func (r CalcResult) String() string {
	if !r.IsComplex {
		return formatFloat(r.Re)
	}
	sign := "+"
	im := r.Im
	if im < 0 {
		sign = "-"
		im = -im
	}
	return formatFloat(r.Re) + sign + formatFloat(im) + "i"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
