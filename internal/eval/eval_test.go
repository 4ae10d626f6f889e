package eval

import (
	"math/big"
	"testing"

	"github.com/fabian2000/exath-go/internal/cx"
	"github.com/fabian2000/exath-go/internal/model"
	"github.com/fabian2000/exath-go/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) model.Ast {
	t.Helper()
	ast, err := parser.Parse(src)
	require.NoError(t, err)
	return ast
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		expr     string
		expected float64
	}{
		{"1+2*3", 7},
		{"2^3^2", 512},
		{"10%3", 1},
	}
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			result, err := Eval(mustParse(t, test.expr), nil, nil, model.Rad)
			require.NoError(t, err)
			assert.InDelta(t, test.expected, result.Re, 1e-9)
		})
	}
}

func TestEvalWithVars(t *testing.T) {
	vars := Vars{"x": cx.Real(3), "y": cx.Real(4)}
	result, err := Eval(mustParse(t, "x^2+y^2"), vars, nil, model.Rad)
	require.NoError(t, err)
	assert.InDelta(t, 25, result.Re, 1e-9)
}

func TestEvalUndefinedVariable(t *testing.T) {
	_, err := Eval(mustParse(t, "x+1"), nil, nil, model.Rad)
	assert.Error(t, err)
}

func TestEvalLogicalShortCircuit(t *testing.T) {
	result, err := Eval(mustParse(t, "0 && (1/0)"), nil, nil, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Re)

	result, err = Eval(mustParse(t, "1 || (1/0)"), nil, nil, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Re)
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct {
		expr     string
		expected float64
	}{
		{"1<2", 1},
		{"2<1", 0},
		{"1==1", 1},
		{"1!=1", 0},
		{"2>=2", 1},
	}
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			result, err := Eval(mustParse(t, test.expr), nil, nil, model.Rad)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result.Re)
		})
	}
}

func TestEvalModByZeroFails(t *testing.T) {
	_, err := Eval(mustParse(t, "1%0"), nil, nil, model.Rad)
	assert.Error(t, err)
}

func TestEvalFactorial(t *testing.T) {
	result, err := Eval(mustParse(t, "5!"), nil, nil, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 120.0, result.Re)
}

func TestEvalUnaryNot(t *testing.T) {
	result, err := Eval(mustParse(t, "!0"), nil, nil, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Re)

	result, err = Eval(mustParse(t, "!1"), nil, nil, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Re)
}

func TestEvalIfMinMaxClamp(t *testing.T) {
	tests := []struct {
		expr     string
		expected float64
	}{
		{"if(1, 2, 3)", 2},
		{"if(0, 2, 3)", 3},
		{"min(3, 1, 2)", 1},
		{"max(3, 1, 2)", 3},
		{"clamp(5, 0, 3)", 3},
		{"clamp(-5, 0, 3)", 0},
	}
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			result, err := Eval(mustParse(t, test.expr), nil, nil, model.Rad)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result.Re)
		})
	}
}

func TestEvalGcdLcm(t *testing.T) {
	result, err := Eval(mustParse(t, "gcd(12, 18)"), nil, nil, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 6.0, result.Re)

	result, err = Eval(mustParse(t, "lcm(4, 6)"), nil, nil, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 12.0, result.Re)
}

// TestEvalLcmLargeOperandsDoesNotOverflow exercises two coprime operands
// whose product exceeds int64's range even though each individually fits
// well inside the engine's integer-argument bound, guarding against the
// lcm computation wrapping around in plain int64 arithmetic.
func TestEvalLcmLargeOperandsDoesNotOverflow(t *testing.T) {
	const a, b = 900000000000000, 900000000000001 // consecutive -> coprime

	result, err := Eval(mustParse(t, "lcm(900000000000000, 900000000000001)"), nil, nil, model.Rad)
	require.NoError(t, err)

	expected := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	expectedFloat, _ := new(big.Float).SetInt(expected).Float64()

	assert.InEpsilon(t, expectedFloat, result.Re, 1e-9)
	assert.Greater(t, result.Re, 0.0, "lcm of two positive coprime numbers must stay positive, not wrap negative")
}

func TestEvalUserFunction(t *testing.T) {
	body := mustParse(t, "x+1")
	fns := Funcs{"f": UserFunc{Params: []string{"x"}, Body: body}}

	inner, err := Eval(mustParse(t, "f(2)"), nil, fns, model.Rad)
	require.NoError(t, err)
	assert.Equal(t, 3.0, inner.Re)
}

func TestEvalUserFunctionRecursionBound(t *testing.T) {
	body := mustParse(t, "f(x)+1")
	fns := Funcs{"f": UserFunc{Params: []string{"x"}, Body: body}}
	_, err := Eval(mustParse(t, "f(1)"), nil, fns, model.Rad)
	assert.Error(t, err)
}

func TestEvalBuiltinFunctionCall(t *testing.T) {
	result, err := Eval(mustParse(t, "sin(0)"), nil, nil, model.Rad)
	require.NoError(t, err)
	assert.InDelta(t, 0, result.Re, 1e-12)
}
