package hpstring_test

import (
	"errors"
	"testing"

	"github.com/latticefold/hpremc/hpstring"
	"github.com/stretchr/testify/require"
)

func TestValidate_OK(t *testing.T) {
	require.NoError(t, hpstring.Validate("HP"))
	require.NoError(t, hpstring.Validate("HPHPPHHPHPPHPHHPPHPH"))
}

func TestValidate_TooShort(t *testing.T) {
	err := hpstring.Validate("H")
	require.True(t, errors.Is(err, hpstring.ErrTooShort))

	err = hpstring.Validate("")
	require.True(t, errors.Is(err, hpstring.ErrTooShort))
}

func TestValidate_InvalidSymbol(t *testing.T) {
	err := hpstring.Validate("HPX")
	require.True(t, errors.Is(err, hpstring.ErrInvalidSymbol))

	err = hpstring.Validate("hp")
	require.True(t, errors.Is(err, hpstring.ErrInvalidSymbol))
}

func TestCountH(t *testing.T) {
	require.Equal(t, 5, hpstring.CountH("HPPHHPHPPH"))
	require.Equal(t, 0, hpstring.CountH("PPPP"))
}

func TestIsH(t *testing.T) {
	require.True(t, hpstring.IsH("HP", 0))
	require.False(t, hpstring.IsH("HP", 1))
}
