package exath_test

import (
	"math"
	"testing"

	"github.com/fabian2000/exath-go/pkg/exath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionVariableAssignment(t *testing.T) {
	s := exath.NewSession(exath.Rad)
	result, err := s.Eval("a = 5")
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.Re)

	result, err = s.Eval("b = sqrt(a)")
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5), result.Re, 1e-9)

	result, err = s.Eval("a + b")
	require.NoError(t, err)
	assert.InDelta(t, 5+math.Sqrt(5), result.Re, 1e-9)
}

func TestSessionUserFunction(t *testing.T) {
	s := exath.NewSession(exath.Rad)
	_, err := s.Eval("f(x) = x^2 + 1")
	require.NoError(t, err)

	result, err := s.Eval("f(4)")
	require.NoError(t, err)
	assert.Equal(t, 17.0, result.Re)
}

func TestSessionUserFunctionShadowing(t *testing.T) {
	s := exath.NewSession(exath.Rad)
	_, err := s.Eval("f(x) = x + 1")
	require.NoError(t, err)

	result, err := s.Eval("f(f(2))")
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.Re)
}

func TestSessionVarAccessors(t *testing.T) {
	s := exath.NewSession(exath.Rad)
	s.SetVar("x", 2, 3)

	result, ok := s.GetVar("x")
	require.True(t, ok)
	assert.Equal(t, 2.0, result.Re)
	assert.Equal(t, 3.0, result.Im)

	assert.Equal(t, []string{"x"}, s.VarNames())

	s.RemoveVar("x")
	_, ok = s.GetVar("x")
	assert.False(t, ok)
}

func TestSessionClearVars(t *testing.T) {
	s := exath.NewSession(exath.Rad)
	s.SetVar("x", 1, 0)
	s.SetVar("y", 2, 0)
	s.ClearVars()
	assert.Empty(t, s.VarNames())
}

func TestSessionFnAccessors(t *testing.T) {
	s := exath.NewSession(exath.Rad)
	_, err := s.Eval("f(x) = x")
	require.NoError(t, err)
	assert.Equal(t, []string{"f"}, s.FnNames())

	s.RemoveFn("f")
	assert.Empty(t, s.FnNames())
}

func TestSessionAssignmentNotConfusedWithComparison(t *testing.T) {
	s := exath.NewSession(exath.Rad)
	result, err := s.Eval("1 == 1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Re)
	assert.Empty(t, s.VarNames())
}

func TestSessionRedefiningFunctionReplacesIt(t *testing.T) {
	s := exath.NewSession(exath.Rad)
	_, err := s.Eval("f(x) = x + 1")
	require.NoError(t, err)
	_, err = s.Eval("f(x) = x + 2")
	require.NoError(t, err)

	result, err := s.Eval("f(1)")
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.Re)
}
