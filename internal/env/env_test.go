package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendAndLookupMostRecentWins(t *testing.T) {
	var e Env[int]
	e = e.Extend("x", 1)
	e = e.Extend("x", 2)

	value, shorter, found := e.Lookup("x")
	assert.True(t, found)
	assert.Equal(t, 2, value)
	assert.Len(t, shorter, 1)
}

func TestLookupRecursesPastNonMatchingTop(t *testing.T) {
	var e Env[int]
	e = e.Extend("x", 1)
	e = e.Extend("y", 2)

	_, shorter, found := e.Lookup("x")
	assert.False(t, found)

	value, _, found := shorter.Lookup("x")
	assert.True(t, found)
	assert.Equal(t, 1, value)
}

func TestLookupOnEmptyEnv(t *testing.T) {
	var e Env[int]
	_, shorter, found := e.Lookup("x")
	assert.False(t, found)
	assert.True(t, shorter.Empty())
}

func TestExtendDoesNotMutateOriginal(t *testing.T) {
	var base Env[int]
	base = base.Extend("x", 1)
	extended := base.Extend("y", 2)

	assert.Len(t, base, 1)
	assert.Len(t, extended, 2)
}
