// Package kam SPDX-License-Identifier: Apache-2.0
//
// Package kam implements the Krivine Abstract Machine: environment-based
// reduction of lambda terms, where substitution is replaced by extending
// an environment of (name, closure) bindings and variable lookup walks
// that environment right-to-left.
package kam

import (
	"fmt"

	"calculi/internal/driver"
	"calculi/internal/env"
	"calculi/internal/term"
)

// Closure pairs a term with the environment it should be read in.
type Closure struct {
	Term term.Term
	Env  env.Env[Closure]
}

// State is a focused closure together with a stack of argument closures.
type State struct {
	Focus Closure
	Stack []Closure
}

// Start wraps t in a state with an empty environment and empty stack.
func Start(t term.Term) *State {
	return &State{Focus: Closure{Term: t, Env: nil}}
}

// Final reports whether s has nothing left to do: a Variable whose
// environment has been exhausted without a matching binding (a free
// variable), or a Lambda with an empty argument stack.
func (s *State) Final() bool {
	switch s.Focus.Term.(type) {
	case term.Variable:
		return s.Focus.Env.Empty()
	case term.Lambda:
		return len(s.Stack) == 0
	default:
		return false
	}
}

// Step performs one transition.
func (s *State) Step() (done bool, err error) {
	if s.Final() {
		return true, nil
	}
	switch t := s.Focus.Term.(type) {
	case term.Apply:
		arg := Closure{Term: t.T2, Env: s.Focus.Env}
		s.Stack = append(s.Stack, arg)
		s.Focus = Closure{Term: t.T1, Env: s.Focus.Env}
		return false, nil
	case term.Lambda:
		top := s.Stack[len(s.Stack)-1]
		s.Stack = s.Stack[:len(s.Stack)-1]
		s.Focus = Closure{Term: t.Body, Env: s.Focus.Env.Extend(t.Arg, top)}
		return false, nil
	case term.Variable:
		value, shorter, found := s.Focus.Env.Lookup(t.Name)
		if found {
			s.Focus = value
		} else {
			s.Focus = Closure{Term: t, Env: shorter}
		}
		return false, nil
	default:
		return true, nil
	}
}

// Readback turns a closure back into a plain term by applying its
// environment as a substitution. It does not look at any argument stack;
// RunAndReadback folds the remaining stack entries into Apply nodes.
func Readback(c Closure) term.Term {
	return readbackClosure(c)
}

func readbackClosure(c Closure) term.Term {
	switch t := c.Term.(type) {
	case term.Variable:
		if c.Env.Empty() {
			return t
		}
		value, shorter, found := c.Env.Lookup(t.Name)
		if found {
			return readbackClosure(value)
		}
		return readbackClosure(Closure{Term: t, Env: shorter})
	case term.Lambda:
		self := Closure{Term: term.NewVar(t.Arg), Env: nil}
		inner := Closure{Term: t.Body, Env: c.Env.Extend(t.Arg, self)}
		return term.Lambda{Arg: t.Arg, Body: readbackClosure(inner)}
	case term.Apply:
		return term.Apply{
			T1: readbackClosure(Closure{Term: t.T1, Env: c.Env}),
			T2: readbackClosure(Closure{Term: t.T2, Env: c.Env}),
		}
	default:
		return t
	}
}

// RunAndReadback drives s to a fixpoint and folds the result back into a
// plain term.
func (s *State) RunAndReadback() term.Term {
	driver.Run(s, nil)
	result := Readback(s.Focus)
	for i := len(s.Stack) - 1; i >= 0; i-- {
		result = term.Apply{T1: result, T2: Readback(s.Stack[i])}
	}
	return result
}

// Run lifts t into a KAM start state and reduces it to a plain term.
func Run(t term.Term) term.Term {
	return Start(t).RunAndReadback()
}

func (s *State) String() string {
	return fmt.Sprintf("(%s, %d entries on stack)", s.Focus.Term, len(s.Stack))
}
