package pam

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calculi/internal/term"
)

// identity applied to a free variable should reduce to that variable.
func TestRunIdentityApplication(t *testing.T) {
	id := term.Lambda{Arg: "x", Body: term.NewVar("x")}
	app := term.Apply{T1: id, T2: term.NewVar("y")}
	assert.Equal(t, term.NewVar("y"), Run(app))
}

// (\x. \y. x) a b should reduce to a, discarding b.
func TestRunConstCombinator(t *testing.T) {
	k := term.Lambda{Arg: "x", Body: term.Lambda{Arg: "y", Body: term.NewVar("x")}}
	app := term.Apply{
		T1: term.Apply{T1: k, T2: term.NewVar("a")},
		T2: term.NewVar("b"),
	}
	assert.Equal(t, term.NewVar("a"), Run(app))
}

func TestFinalOnBareVariable(t *testing.T) {
	s := Start(term.NewVar("x"))
	assert.True(t, s.Final())
}

func TestFinalOnUnappliedLambda(t *testing.T) {
	s := Start(term.Lambda{Arg: "x", Body: term.NewVar("x")})
	assert.True(t, s.Final())
}

func TestStepPushesApplyArgOntoStack(t *testing.T) {
	app := term.Apply{T1: term.NewVar("f"), T2: term.NewVar("y")}
	s := Start(app)
	done, err := s.Step()
	assert.False(t, done)
	assert.NoError(t, err)
	assert.Equal(t, term.NewVar("f"), s.Term)
	assert.Equal(t, []term.Term{term.NewVar("y")}, s.Stack)
	// a Variable head is always final, stack or no: there is no rule to
	// reduce a stuck application of a free variable any further.
	done, err = s.Step()
	assert.True(t, done)
	assert.NoError(t, err)
}

func TestReadbackFoldsStackBackIntoApply(t *testing.T) {
	s := &State{Term: term.NewVar("f"), Stack: []term.Term{term.NewVar("a"), term.NewVar("b")}}
	// b is on top, so it is the first argument applied to f.
	want := term.Apply{T1: term.Apply{T1: term.NewVar("f"), T2: term.NewVar("b")}, T2: term.NewVar("a")}
	assert.Equal(t, want, s.Readback())
}
