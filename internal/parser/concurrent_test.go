package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calculi/internal/fcmcterm"
)

func TestParseConcurrentSkip(t *testing.T) {
	got, err := ParseConcurrent("*")
	require.NoError(t, err)
	assert.Equal(t, fcmcterm.Skip{}, got)
}

func TestParseConcurrentLocationPushAndPop(t *testing.T) {
	got, err := ParseConcurrent("[x]~out")
	require.NoError(t, err)
	assert.Equal(t, fcmcterm.Push{Location: "~out", Pushed: fcmcterm.Variable{Name: "x"}, Next: fcmcterm.Skip{}}, got)
}

func TestParseConcurrentForkedHandoff(t *testing.T) {
	got, err := ParseConcurrent("{[[x]~out]~a}.~a<y>.y")
	require.NoError(t, err)
	assert.Equal(t, fcmcterm.Fork{
		Forked: fcmcterm.Push{
			Location: "~a",
			Pushed: fcmcterm.Push{
				Location: "~out",
				Pushed:   fcmcterm.Variable{Name: "x"},
				Next:     fcmcterm.Skip{},
			},
			Next: fcmcterm.Skip{},
		},
		Cont: fcmcterm.Pop{Location: "~a", Arg: "y", Next: fcmcterm.Variable{Name: "y"}},
	}, got)
}

func TestParseConcurrentDistinguishesVariableFromLocation(t *testing.T) {
	got, err := ParseConcurrent("x")
	require.NoError(t, err)
	assert.Equal(t, fcmcterm.Variable{Name: "x"}, got)
}

func TestParseConcurrentRejectsMissingLocationAfterPush(t *testing.T) {
	_, err := ParseConcurrent("[x]")
	assert.Error(t, err)
}
