// Package seqterm SPDX-License-Identifier: Apache-2.0
//
// Package seqterm implements the sequential term algebra consumed by SAM:
// a right-nested instruction list of Skip, Variable, Pop, Push and Seq
// nodes, carrying no location (locations are FCMC-only, see fcmcterm).
package seqterm

import "fmt"

// Term is any sequential term node.
type Term interface {
	isTerm()
	String() string
}

// Skip is the empty program, and the continuation a Pop or Push takes when
// the source gives none.
type Skip struct{}

// Variable is a terminal dereference of a bound name.
type Variable struct {
	Name string
}

// Pop binds the top of the argument stack to Arg, then continues with Next.
type Pop struct {
	Arg  string
	Next Term
}

// Push pushes a closure of Pushed onto the argument stack, then continues
// with Next.
type Push struct {
	Pushed Term
	Next   Term
}

// Seq runs First to Skip, then resumes with Next.
type Seq struct {
	First Term
	Next  Term
}

func (Skip) isTerm()     {}
func (Variable) isTerm() {}
func (Pop) isTerm()      {}
func (Push) isTerm()     {}
func (Seq) isTerm()      {}

func (Skip) String() string { return "*" }

func (v Variable) String() string { return v.Name }

func (p Pop) String() string {
	if _, ok := p.Next.(Skip); ok {
		return fmt.Sprintf("<%s>", p.Arg)
	}
	return fmt.Sprintf("<%s>.%s", p.Arg, p.Next)
}

func (p Push) String() string {
	if _, ok := p.Next.(Skip); ok {
		return fmt.Sprintf("[%s]", p.Pushed)
	}
	return fmt.Sprintf("[%s].%s", p.Pushed, p.Next)
}

func (s Seq) String() string {
	if _, ok := s.Next.(Skip); ok {
		return s.First.String()
	}
	return fmt.Sprintf("%s;%s", s.First, s.Next)
}
