package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds_Validate(t *testing.T) {
	require.NoError(t, NewBounds(1, 20).Validate())
	require.NoError(t, NewBounds(2, 2).Validate())
	require.NoError(t, NewBounds(0, 0).Validate())

	err := NewBounds(20, 1).Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBounds))
	assert.Contains(t, err.Error(), "start 20 > end 1")
}

func TestBounds_Width(t *testing.T) {
	assert.Equal(t, uint64(20), NewBounds(1, 20).Width())
	assert.Equal(t, uint64(1), NewBounds(2, 2).Width())
	assert.Equal(t, uint64(0), NewBounds(5, 4).Width())
	assert.Equal(t, uint64(math.MaxUint64), NewBounds(0, math.MaxUint64).Width())
}

func TestBounds_String(t *testing.T) {
	assert.Equal(t, "[1, 100]", NewBounds(1, 100).String())
}
