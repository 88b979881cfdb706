package locations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calculi/internal/fcmcterm"
)

func program() fcmcterm.Term {
	return fcmcterm.Fork{
		Forked: fcmcterm.Push{Location: "~a", Pushed: fcmcterm.Variable{Name: "x"}, Next: fcmcterm.Skip{}},
		Cont:   fcmcterm.Pop{Location: "s", Arg: "y", Next: fcmcterm.Skip{}},
	}
}

func TestScanClassifiesByTilde(t *testing.T) {
	r := Scan(program())
	assert.True(t, r.IsChannel("~a"))
	assert.True(t, r.IsStack("s"))
	assert.False(t, r.IsChannel("s"))
	assert.False(t, r.IsStack("~a"))
}

func TestKnownReportsUnseenLocations(t *testing.T) {
	r := Scan(program())
	assert.False(t, r.Known("~missing"))
	assert.True(t, r.Known("s"))
}

func TestValidateAcceptsItsOwnScan(t *testing.T) {
	p := program()
	r := Scan(p)
	assert.NoError(t, r.Validate(p))
}

func TestValidateRejectsForeignLocation(t *testing.T) {
	r := Scan(program())
	foreign := fcmcterm.Pop{Location: "~other", Arg: "z", Next: fcmcterm.Skip{}}
	assert.ErrorContains(t, r.Validate(foreign), "unknown_location")
}
