package cx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := Cx{Re: 1, Im: 2}
	b := Cx{Re: 3, Im: -1}

	assert.Equal(t, Cx{Re: 4, Im: 1}, Add(a, b))
	assert.Equal(t, Cx{Re: -2, Im: 3}, Sub(a, b))
	assert.Equal(t, Cx{Re: 5, Im: 5}, Mul(a, b))
}

func TestDivByZero(t *testing.T) {
	_, err := Div(Real(1), Cx{})
	assert.Error(t, err)
}

func TestDiv(t *testing.T) {
	result, err := Div(Cx{Re: 1, Im: 0}, Cx{Re: 0, Im: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0, result.Re, 1e-12)
	assert.InDelta(t, -1, result.Im, 1e-12)
}

func TestArgPrincipalValue(t *testing.T) {
	assert.InDelta(t, math.Pi, Arg(Cx{Re: -1, Im: 0}), 1e-12)
}

func TestLnOfZeroFails(t *testing.T) {
	_, err := Ln(Cx{})
	assert.Error(t, err)
}

func TestExpLn(t *testing.T) {
	z := Cx{Re: 1.5, Im: 0.7}
	l, err := Ln(z)
	require.NoError(t, err)
	back := Exp(l)
	assert.InDelta(t, z.Re, back.Re, 1e-9)
	assert.InDelta(t, z.Im, back.Im, 1e-9)
}

func TestPowZeroBase(t *testing.T) {
	result, err := Pow(Real(0), Real(2))
	require.NoError(t, err)
	assert.Equal(t, Real(0), result)

	_, err = Pow(Real(0), Real(-1))
	assert.Error(t, err)

	_, err = Pow(Real(0), Real(0))
	assert.Error(t, err)
}

func TestSqrtNegative(t *testing.T) {
	result := Sqrt(Real(-4))
	assert.InDelta(t, 0, result.Re, 1e-9)
	assert.InDelta(t, 2, result.Im, 1e-9)
}

func TestIsReal(t *testing.T) {
	assert.True(t, Real(5).IsReal())
	assert.False(t, Cx{Re: 1, Im: 1}.IsReal())
}

func TestIsZero(t *testing.T) {
	assert.True(t, Cx{}.IsZero())
	assert.False(t, Cx{Re: 1e-13}.IsZero())
}
