// Package pam SPDX-License-Identifier: Apache-2.0
//
// Package pam implements the Partial Abstract Machine: substitution-based
// small-step reduction of ordinary lambda terms against an argument stack.
package pam

import (
	"fmt"
	"strings"

	"calculi/internal/driver"
	"calculi/internal/term"
)

// State is a term paired with an argument stack of pending applications.
type State struct {
	Term  term.Term
	Stack []term.Term
}

// Start wraps t in a state with an empty argument stack.
func Start(t term.Term) *State {
	return &State{Term: t, Stack: nil}
}

// Final reports whether s has nothing left to do: a bare Variable, or a
// Lambda with an empty argument stack.
func (s *State) Final() bool {
	switch s.Term.(type) {
	case term.Variable:
		return true
	case term.Lambda:
		return len(s.Stack) == 0
	default:
		return false
	}
}

// Step performs one transition. It returns true once s.Final() already
// held (nothing to do), matching the driver's Stepper contract.
func (s *State) Step() (done bool, err error) {
	if s.Final() {
		return true, nil
	}
	switch t := s.Term.(type) {
	case term.Apply:
		s.Term = t.T1
		s.Stack = append(s.Stack, t.T2)
		return false, nil
	case term.Lambda:
		top := s.Stack[len(s.Stack)-1]
		s.Stack = s.Stack[:len(s.Stack)-1]
		s.Term = term.Substitute(t.Body, t.Arg, top)
		return false, nil
	default:
		return true, nil
	}
}

// Readback rebuilds a plain term by folding the argument stack back onto
// the current term, topmost entry first (i.e. the top of the stack becomes
// the innermost Apply and the bottom of the stack the outermost).
func (s *State) Readback() term.Term {
	result := s.Term
	for i := len(s.Stack) - 1; i >= 0; i-- {
		result = term.Apply{T1: result, T2: s.Stack[i]}
	}
	return result
}

// Run iterates Step to a fixpoint and returns the readback of the final
// state.
func Run(t term.Term) term.Term {
	s := Start(t)
	driver.Run(s, nil)
	return s.Readback()
}

func (s *State) String() string {
	if len(s.Stack) == 0 {
		return fmt.Sprintf("(%s, [])", s.Term)
	}
	var parts []string
	for _, t := range s.Stack {
		parts = append(parts, t.String())
	}
	return fmt.Sprintf("(%s, [%s, *])", s.Term, strings.Join(parts, ", "))
}
