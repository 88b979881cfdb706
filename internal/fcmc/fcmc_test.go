package fcmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calculi/internal/fcmcterm"
)

func TestMemoryStackPushThenPopIsLIFO(t *testing.T) {
	m := NewMemory([]string{"s"})
	require.NoError(t, m.Push("s", Closure{Term: fcmcterm.Variable{Name: "a"}}))
	require.NoError(t, m.Push("s", Closure{Term: fcmcterm.Variable{Name: "b"}}))

	top, err := m.Pop("s")
	require.NoError(t, err)
	assert.Equal(t, fcmcterm.Variable{Name: "b"}, top.Term)
}

func TestMemoryStackPopOnEmptyIsStackUnderflow(t *testing.T) {
	m := NewMemory([]string{"s"})
	_, err := m.Pop("s")
	assert.ErrorContains(t, err, "stack_underflow")
}

func TestMemoryPushToUnknownLocationIsUnknownLocation(t *testing.T) {
	m := NewMemory(nil)
	err := m.Push("s", Closure{Term: fcmcterm.Skip{}})
	assert.ErrorContains(t, err, "unknown_location")
}

func TestMemoryChannelPopOnEmptyWithNoOtherThreadIsDeadlock(t *testing.T) {
	m := NewMemory([]string{"~a"})
	m.shared.live = 1
	_, err := m.Pop("~a")
	assert.ErrorContains(t, err, "deadlock")
}

func TestCloneSharesChannelsAndResetsStacks(t *testing.T) {
	m := NewMemory([]string{"s", "~a"})
	require.NoError(t, m.Push("s", Closure{Term: fcmcterm.Variable{Name: "x"}}))
	require.NoError(t, m.Push("~a", Closure{Term: fcmcterm.Variable{Name: "y"}}))

	child := m.Clone()
	_, err := child.Pop("s")
	assert.ErrorContains(t, err, "stack_underflow", "cloned stacks start empty")

	val, err := child.Pop("~a")
	require.NoError(t, err)
	assert.Equal(t, fcmcterm.Variable{Name: "y"}, val.Term, "cloned channels are the same shared queue")
}

// A single-threaded program with no Fork and no channel locations must
// behave like SAM with location tags erased: push then pop round-trips.
func TestSingleThreadedStackRoundTrip(t *testing.T) {
	program := fcmcterm.Push{
		Location: "s",
		Pushed:   fcmcterm.Variable{Name: "x"},
		Next: fcmcterm.Pop{
			Location: "s",
			Arg:      "y",
			Next:     fcmcterm.Variable{Name: "y"},
		},
	}
	result, err := Run(program, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Locations)
}

// Forked thread pushes a closure of "[x]~out" onto ~a; main pops it into
// y and evaluates y, which re-enters the Push(~out, x) that was sitting
// inside the popped closure. Final ~out ends up holding the free
// variable x.
func TestForkedThreadDeliversPushViaChannel(t *testing.T) {
	forked := fcmcterm.Push{
		Location: "~a",
		Pushed: fcmcterm.Push{
			Location: "~out",
			Pushed:   fcmcterm.Variable{Name: "x"},
			Next:     fcmcterm.Skip{},
		},
		Next: fcmcterm.Skip{},
	}
	program := fcmcterm.Fork{
		Forked: forked,
		Cont: fcmcterm.Pop{
			Location: "~a",
			Arg:      "y",
			Next:     fcmcterm.Variable{Name: "y"},
		},
	}

	result, err := Run(program, nil)
	require.NoError(t, err)
	require.Len(t, result.Locations, 1)
	assert.Equal(t, "~out", result.Locations[0].Location)
	assert.Equal(t, fcmcterm.Variable{Name: "x"}, result.Locations[0].Term)
}

// A two-stage producer/consumer pipeline: main pushes x to ~a, one
// forked thread relays it through ~b to ~out and signals ~t1, a second
// forked thread relays ~b's payload and signals ~t2. Main waits for both
// completion tokens before finishing. Final ~out ends up holding x.
func TestProducerConsumerPipelineDeliversToOut(t *testing.T) {
	threadA := fcmcterm.Pop{
		Location: "~a",
		Arg:      "y",
		Next: fcmcterm.Push{
			Location: "~b",
			Pushed: fcmcterm.Push{
				Location: "~out",
				Pushed:   fcmcterm.Variable{Name: "y"},
				Next:     fcmcterm.Skip{},
			},
			Next: fcmcterm.Push{Location: "~t1", Pushed: fcmcterm.Skip{}, Next: fcmcterm.Skip{}},
		},
	}
	threadB := fcmcterm.Pop{
		Location: "~b",
		Arg:      "z",
		Next: fcmcterm.Seq{
			First: fcmcterm.Variable{Name: "z"},
			Next:  fcmcterm.Push{Location: "~t2", Pushed: fcmcterm.Skip{}, Next: fcmcterm.Skip{}},
		},
	}
	program := fcmcterm.Push{
		Location: "~a",
		Pushed:   fcmcterm.Variable{Name: "x"},
		Next: fcmcterm.Fork{
			Forked: threadA,
			Cont: fcmcterm.Fork{
				Forked: threadB,
				Cont: fcmcterm.Pop{
					Location: "~t1",
					Arg:      "n",
					Next:     fcmcterm.Pop{Location: "~t2", Arg: "m", Next: fcmcterm.Skip{}},
				},
			},
		},
	}

	result, err := Run(program, nil)
	require.NoError(t, err)
	require.Len(t, result.Locations, 1)
	assert.Equal(t, "~out", result.Locations[0].Location)
	assert.Equal(t, fcmcterm.Variable{Name: "x"}, result.Locations[0].Term)
}

func TestLocationScanDrivesMemoryPreAllocation(t *testing.T) {
	program := fcmcterm.Push{Location: "~out", Pushed: fcmcterm.Variable{Name: "x"}, Next: fcmcterm.Skip{}}
	result, err := Run(program, nil)
	require.NoError(t, err)
	require.Len(t, result.Locations, 1)
	assert.Equal(t, fcmcterm.Variable{Name: "x"}, result.Locations[0].Term)
}
