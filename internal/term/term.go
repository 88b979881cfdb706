// Package term SPDX-License-Identifier: Apache-2.0
//
// Package term implements the lambda-term algebra shared by PAM and KAM:
// variables, abstractions and applications, together with the
// capture-avoiding substitution machinery both machines reduce with.
package term

import "fmt"

// Var is an identifier drawn from the term's alphabet. Any non-empty
// string is a legal name; no reserved words exist at this layer.
type Var = string

// Term is a lambda-calculus term: a Variable, a Lambda abstraction, or an
// Apply node. The concrete node types implement Term by embedding no
// shared state; type switches are the idiomatic way to inspect a Term.
type Term interface {
	isTerm()
	String() string
}

// Variable is a reference to a bound or free name.
type Variable struct {
	Name Var
}

// Lambda is an abstraction binding Arg in Body.
type Lambda struct {
	Arg  Var
	Body Term
}

// Apply applies T1 to T2.
type Apply struct {
	T1 Term
	T2 Term
}

func (Variable) isTerm() {}
func (Lambda) isTerm()   {}
func (Apply) isTerm()    {}

// NewVar builds a Variable term for name.
func NewVar(name Var) Term {
	return Variable{Name: name}
}

func (v Variable) String() string { return v.Name }

func (l Lambda) String() string {
	return fmt.Sprintf(`\%s. %s`, l.Arg, l.Body)
}

// String renders Apply with the minimum parenthesization needed to
// round-trip through the parser: a Variable or Apply needs no parens as
// the left operand of a further application, and a Variable needs none as
// the right operand either.
func (a Apply) String() string {
	left := parenthesizeIf(a.T1, needsParensAsApplyHead(a.T1))
	right := parenthesizeIf(a.T2, needsParensAsApplyArg(a.T2))
	return left + " " + right
}

func needsParensAsApplyHead(t Term) bool {
	_, isLambda := t.(Lambda)
	return isLambda
}

func needsParensAsApplyArg(t Term) bool {
	switch t.(type) {
	case Variable:
		return false
	default:
		return true
	}
}

func parenthesizeIf(t Term, wrap bool) string {
	if wrap {
		return "(" + t.String() + ")"
	}
	return t.String()
}
