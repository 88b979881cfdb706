// Package sam SPDX-License-Identifier: Apache-2.0
//
// Package sam implements the Sequential Abstract Machine: SAM augments
// KAM's environment-based reduction with an explicit continuation stack,
// letting Seq sequence two sub-programs without recursing on the host
// call stack. This is the structure FCMC later generalizes to threads.
package sam

import (
	"fmt"

	"calculi/internal/driver"
	"calculi/internal/env"
	"calculi/internal/errors"
	"calculi/internal/seqterm"
)

// Closure pairs a sequential term with the environment it runs in.
type Closure struct {
	Term seqterm.Term
	Env  env.Env[Closure]
}

// State is (focus, argument stack, continuation stack).
type State struct {
	Focus Closure
	Stack []Closure
	K     []Closure
}

// Start wraps t in a state with empty environment, argument stack and
// continuation stack.
func Start(t seqterm.Term) *State {
	return &State{Focus: Closure{Term: t}}
}

// Final reports s == (Skip, K = []), irrespective of the argument stack:
// a nonempty argument stack at the end simply becomes readback output.
func (s *State) Final() bool {
	_, isSkip := s.Focus.Term.(seqterm.Skip)
	return isSkip && len(s.K) == 0
}

// Step performs one transition.
func (s *State) Step() (done bool, err error) {
	if s.Final() {
		return true, nil
	}
	switch t := s.Focus.Term.(type) {
	case seqterm.Skip:
		// K is nonempty here since Final() already ruled out K == [].
		top := s.K[len(s.K)-1]
		s.K = s.K[:len(s.K)-1]
		s.Focus = top
		return false, nil
	case seqterm.Variable:
		if s.Focus.Env.Empty() {
			return true, nil
		}
		value, shorter, found := s.Focus.Env.Lookup(t.Name)
		if found {
			s.Focus = value
		} else {
			s.Focus = Closure{Term: t, Env: shorter}
		}
		return false, nil
	case seqterm.Pop:
		if len(s.Stack) == 0 {
			return true, errors.NewStackUnderflow(t.Arg)
		}
		top := s.Stack[len(s.Stack)-1]
		s.Stack = s.Stack[:len(s.Stack)-1]
		s.Focus = Closure{Term: t.Next, Env: s.Focus.Env.Extend(t.Arg, top)}
		return false, nil
	case seqterm.Push:
		pushed := Closure{Term: t.Pushed, Env: s.Focus.Env}
		s.Stack = append(s.Stack, pushed)
		s.Focus = Closure{Term: t.Next, Env: s.Focus.Env}
		return false, nil
	case seqterm.Seq:
		cont := Closure{Term: t.Next, Env: s.Focus.Env}
		s.K = append(s.K, cont)
		s.Focus = Closure{Term: t.First, Env: s.Focus.Env}
		return false, nil
	default:
		return true, nil
	}
}

// Readback turns a closure back into a plain sequential term by applying
// its environment as a substitution, recursing into every subterm with
// an appropriate clone of the environment.
func Readback(c Closure) seqterm.Term {
	switch t := c.Term.(type) {
	case seqterm.Skip:
		return t
	case seqterm.Variable:
		if c.Env.Empty() {
			return t
		}
		value, shorter, found := c.Env.Lookup(t.Name)
		if found {
			return Readback(value)
		}
		return Readback(Closure{Term: t, Env: shorter})
	case seqterm.Pop:
		self := Closure{Term: seqterm.Variable{Name: t.Arg}}
		inner := Closure{Term: t.Next, Env: c.Env.Extend(t.Arg, self)}
		return seqterm.Pop{Arg: t.Arg, Next: Readback(inner)}
	case seqterm.Push:
		return seqterm.Push{
			Pushed: Readback(Closure{Term: t.Pushed, Env: c.Env}),
			Next:   Readback(Closure{Term: t.Next, Env: c.Env}),
		}
	case seqterm.Seq:
		return seqterm.Seq{
			First: Readback(Closure{Term: t.First, Env: c.Env}),
			Next:  Readback(Closure{Term: t.Next, Env: c.Env}),
		}
	default:
		return seqterm.Skip{}
	}
}

// ReadbackStack reads back the final argument stack as a list of terms,
// top-of-stack first in emission order.
func (s *State) ReadbackStack() []seqterm.Term {
	out := make([]seqterm.Term, 0, len(s.Stack))
	for i := len(s.Stack) - 1; i >= 0; i-- {
		out = append(out, Readback(s.Stack[i]))
	}
	return out
}

// Run drives t to a fixpoint and returns the readback argument stack.
func Run(t seqterm.Term) ([]seqterm.Term, error) {
	s := Start(t)
	if _, err := driver.Run(s, nil); err != nil {
		return nil, err
	}
	return s.ReadbackStack(), nil
}

func (s *State) String() string {
	return fmt.Sprintf("(%s, %d on stack, %d on K)", s.Focus.Term, len(s.Stack), len(s.K))
}
