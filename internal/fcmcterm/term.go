// Package fcmcterm SPDX-License-Identifier: Apache-2.0
//
// Package fcmcterm implements the concurrent term algebra consumed by
// FCMC: seqterm's Skip/Variable/Seq nodes generalized with a location
// name on Pop/Push, plus Fork to spawn a new thread.
package fcmcterm

import "fmt"

// Term is any FCMC term node.
type Term interface {
	isTerm()
	String() string
}

// Skip is the empty program.
type Skip struct{}

// Variable is a terminal dereference of a bound name.
type Variable struct {
	Name string
}

// Pop binds the top of the named location's stack (or the next value
// received on it, if it is a channel) to Arg, then continues with Next.
type Pop struct {
	Location string
	Arg      string
	Next     Term
}

// Push pushes a closure of Pushed onto the named location, then
// continues with Next.
type Push struct {
	Location string
	Pushed   Term
	Next     Term
}

// Seq runs First to Skip, then resumes with Next.
type Seq struct {
	First Term
	Next  Term
}

// Fork spawns a new thread running Forked, and continues with Cont in
// the current thread.
type Fork struct {
	Forked Term
	Cont   Term
}

func (Skip) isTerm()     {}
func (Variable) isTerm() {}
func (Pop) isTerm()      {}
func (Push) isTerm()     {}
func (Seq) isTerm()      {}
func (Fork) isTerm()     {}

func (Skip) String() string { return "*" }

func (v Variable) String() string { return v.Name }

func (p Pop) String() string {
	if _, ok := p.Next.(Skip); ok {
		return fmt.Sprintf("%s<%s>", p.Location, p.Arg)
	}
	return fmt.Sprintf("%s<%s>.%s", p.Location, p.Arg, p.Next)
}

func (p Push) String() string {
	if _, ok := p.Next.(Skip); ok {
		return fmt.Sprintf("[%s]%s", p.Pushed, p.Location)
	}
	return fmt.Sprintf("[%s]%s.%s", p.Pushed, p.Location, p.Next)
}

func (s Seq) String() string {
	if _, ok := s.Next.(Skip); ok {
		return s.First.String()
	}
	return fmt.Sprintf("%s;%s", s.First, s.Next)
}

func (f Fork) String() string {
	if _, ok := f.Cont.(Skip); ok {
		return fmt.Sprintf("{%s}", f.Forked)
	}
	return fmt.Sprintf("{%s}.%s", f.Forked, f.Cont)
}

// IsChannel classifies a location name by its leading character: a `~`
// prefix routes to the shared, blocking channel memory; anything else
// routes to thread-local stack memory. Classification never depends on
// how the name is used, only on its spelling.
func IsChannel(location string) bool {
	return len(location) > 0 && location[0] == '~'
}

// LocationScan returns every location name mentioned by a Pop or Push
// in t, found by post-order traversal. Required before starting an FCMC
// run so memory can pre-allocate a dictionary entry per location.
func LocationScan(t Term) []string {
	seen := make(map[string]struct{})
	var order []string
	var visit func(Term)
	visit = func(t Term) {
		switch n := t.(type) {
		case Skip:
		case Variable:
		case Pop:
			visit(n.Next)
			if _, ok := seen[n.Location]; !ok {
				seen[n.Location] = struct{}{}
				order = append(order, n.Location)
			}
		case Push:
			visit(n.Pushed)
			visit(n.Next)
			if _, ok := seen[n.Location]; !ok {
				seen[n.Location] = struct{}{}
				order = append(order, n.Location)
			}
		case Seq:
			visit(n.First)
			visit(n.Next)
		case Fork:
			visit(n.Forked)
			visit(n.Cont)
		}
	}
	visit(t)
	return order
}
