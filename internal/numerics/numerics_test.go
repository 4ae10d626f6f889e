package numerics

import (
	"testing"

	"github.com/fabian2000/exath-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivConvergesToAnalytic(t *testing.T) {
	result, err := Deriv("x^2", "x", 3, model.Rad)
	require.NoError(t, err)
	assert.InDelta(t, 6, result, 1e-5)

	result, err = Deriv("sin(x)", "x", 0, model.Rad)
	require.NoError(t, err)
	assert.InDelta(t, 1, result, 1e-5)
}

func TestIntegrateConstant(t *testing.T) {
	result, err := Integrate("1", "x", 2, 7, model.Rad)
	require.NoError(t, err)
	assert.InDelta(t, 5, result, 1e-9)
}

func TestIntegratePolynomial(t *testing.T) {
	result, err := Integrate("x^2", "x", 0, 3, model.Rad)
	require.NoError(t, err)
	assert.InDelta(t, 9, result, 1e-6)
}

func TestSumAndProd(t *testing.T) {
	sum, err := Sum("1", "k", 1, 10, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 10.0, sum)

	sum, err = Sum("k", "k", 1, 5, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 15.0, sum)

	prod, err := Prod("k", "k", 1, 5, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 120.0, prod)
}

func TestSumRangeTooLarge(t *testing.T) {
	_, err := Sum("1", "k", 0, MaxTerms+1, model.Rad)
	assert.Error(t, err)
}

func TestComplexSampleFails(t *testing.T) {
	_, err := Sum("sqrt(-k)", "k", 1, 2, model.Rad)
	assert.Error(t, err)
}
