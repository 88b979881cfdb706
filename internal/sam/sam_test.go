package sam

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calculi/internal/seqterm"
)

func TestFinalOnBareSkip(t *testing.T) {
	s := Start(seqterm.Skip{})
	assert.True(t, s.Final())
}

func TestFinalNotReachedWithPendingContinuation(t *testing.T) {
	s := Start(seqterm.Skip{})
	s.K = append(s.K, Closure{Term: seqterm.Variable{Name: "x"}})
	assert.False(t, s.Final())
}

func TestStepSkipResumesFromContinuationStack(t *testing.T) {
	s := Start(seqterm.Skip{})
	s.K = append(s.K, Closure{Term: seqterm.Variable{Name: "x"}})

	done, err := s.Step()
	assert.False(t, done)
	assert.NoError(t, err)
	assert.Equal(t, seqterm.Variable{Name: "x"}, s.Focus.Term)
	assert.Empty(t, s.K)
}

func TestStepPushThenPopRoundTrips(t *testing.T) {
	// [x].<y>.y : push x, pop it into y, then refer to y.
	program := seqterm.Push{
		Pushed: seqterm.Variable{Name: "x"},
		Next:   seqterm.Pop{Arg: "y", Next: seqterm.Variable{Name: "y"}},
	}
	results, err := Run(program)
	assert.NoError(t, err)
	assert.Empty(t, results, "the pushed value was consumed by Pop, nothing remains on the stack")
}

func TestStepPopOnEmptyStackIsStackUnderflow(t *testing.T) {
	program := seqterm.Pop{Arg: "x", Next: seqterm.Skip{}}
	_, err := Run(program)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stack_underflow")
}

func TestStepSeqRunsFirstThenNext(t *testing.T) {
	// [a];[b] : push a, then (after first reaches Skip) push b.
	program := seqterm.Seq{
		First: seqterm.Push{Pushed: seqterm.Variable{Name: "a"}, Next: seqterm.Skip{}},
		Next:  seqterm.Push{Pushed: seqterm.Variable{Name: "b"}, Next: seqterm.Skip{}},
	}
	results, err := Run(program)
	assert.NoError(t, err)
	// top-of-stack first in emission order: b was pushed last.
	assert.Equal(t, []seqterm.Term{seqterm.Variable{Name: "b"}, seqterm.Variable{Name: "a"}}, results)
}

func TestRunTwoPushesThenPop(t *testing.T) {
	// [y].[x].<z>.z : push y, push x, pop top (x) into z, then refer to z.
	program := seqterm.Push{
		Pushed: seqterm.Variable{Name: "y"},
		Next: seqterm.Push{
			Pushed: seqterm.Variable{Name: "x"},
			Next:   seqterm.Pop{Arg: "z", Next: seqterm.Variable{Name: "z"}},
		},
	}
	results, err := Run(program)
	assert.NoError(t, err)
	// x was consumed by the pop; only y remains on the stack.
	assert.Equal(t, []seqterm.Term{seqterm.Variable{Name: "y"}}, results)
}
