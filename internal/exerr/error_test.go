package exerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := Domain("division by zero")
	assert.True(t, errors.Is(err, Domain("")))
	assert.False(t, errors.Is(err, Parse("")))
}

func TestErrorMessageFormatting(t *testing.T) {
	err := ArgCount("%s() expects %d argument(s), got %d", "f", 1, 2)
	assert.Equal(t, "ArgumentCount: f() expects 1 argument(s), got 2", err.Error())
}
