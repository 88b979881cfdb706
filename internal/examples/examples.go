// Package examples SPDX-License-Identifier: Apache-2.0
//
// Package examples is a named registry of ready-to-run terms, surfaced
// by the CLI's "example" menu choice. Entries are grounded on the
// original implementation's own hand-written examples module.
package examples

import (
	"fmt"

	"calculi/internal/fcmcterm"
	"calculi/internal/seqterm"
	"calculi/internal/term"
)

// LambdaExample is a named lambda term with a one-line description.
type LambdaExample struct {
	Name        string
	Description string
	Term        term.Term
}

// SequentialExample is a named sequential term for SAM.
type SequentialExample struct {
	Name        string
	Description string
	Term        seqterm.Term
}

// ConcurrentExample is a named concurrent term for FCMC.
type ConcurrentExample struct {
	Name        string
	Description string
	Term        fcmcterm.Term
}

// Lambdas lists the built-in PAM/KAM lambda examples, in menu order.
func Lambdas() []LambdaExample {
	return []LambdaExample{
		{
			Name:        "true-false",
			Description: "(\\x. \\y. x) true false -- const applied to both booleans",
			Term: term.Apply{
				T1: term.Apply{
					T1: term.Lambda{Arg: "x", Body: term.Lambda{Arg: "y", Body: term.NewVar("x")}},
					T2: term.NewBool(true),
				},
				T2: term.NewBool(false),
			},
		},
		{
			Name:        "nested-shadowing",
			Description: "(\\b. (\\a. \\x. (\\y. a) x b) (\\a. \\b. a)) (\\z. z) false -- exercises capture-avoiding substitution under shadowed binders",
			Term: term.Apply{
				T1: term.Apply{
					T1: term.Lambda{
						Arg: "b",
						Body: term.Apply{
							T1: term.Lambda{
								Arg: "a",
								Body: term.Lambda{
									Arg: "x",
									Body: term.Apply{
										T1: term.Apply{
											T1: term.Lambda{Arg: "y", Body: term.NewVar("a")},
											T2: term.NewVar("x"),
										},
										T2: term.NewVar("b"),
									},
								},
							},
							T2: term.NewBool(true),
						},
					},
					T2: term.Lambda{Arg: "z", Body: term.NewVar("z")},
				},
				T2: term.NewBool(false),
			},
		},
		{
			Name:        "church-two",
			Description: "the Church numeral 2, rendered to show the applied-f-twice shape",
			Term:        term.NewNum(2),
		},
	}
}

// Sequentials lists the built-in SAM examples.
func Sequentials() []SequentialExample {
	return []SequentialExample{
		{
			Name:        "push-pop-roundtrip",
			Description: "[x].<y>.y -- push x, pop it back into y, refer to y",
			Term: seqterm.Push{
				Pushed: seqterm.Variable{Name: "x"},
				Next:   seqterm.Pop{Arg: "y", Next: seqterm.Variable{Name: "y"}},
			},
		},
		{
			Name:        "two-pushes-one-pop",
			Description: "[y].[x].<z>.z -- two values pushed, one popped, leaving one behind",
			Term: seqterm.Push{
				Pushed: seqterm.Variable{Name: "y"},
				Next: seqterm.Push{
					Pushed: seqterm.Variable{Name: "x"},
					Next:   seqterm.Pop{Arg: "z", Next: seqterm.Variable{Name: "z"}},
				},
			},
		},
	}
}

// Concurrents lists the built-in FCMC examples.
func Concurrents() []ConcurrentExample {
	return []ConcurrentExample{
		{
			Name:        "forked-handoff",
			Description: "{[[x]~out]~a}.~a<y>.y -- forked thread hands a push-instruction to the main thread over a channel",
			Term: fcmcterm.Fork{
				Forked: fcmcterm.Push{
					Location: "~a",
					Pushed: fcmcterm.Push{
						Location: "~out",
						Pushed:   fcmcterm.Variable{Name: "x"},
						Next:     fcmcterm.Skip{},
					},
					Next: fcmcterm.Skip{},
				},
				Cont: fcmcterm.Pop{Location: "~a", Arg: "y", Next: fcmcterm.Variable{Name: "y"}},
			},
		},
		{
			Name:        "producer-consumer",
			Description: "two-stage pipeline relaying a value to ~out via ~a and ~b, signaling completion on ~t1/~t2",
			Term: fcmcterm.Push{
				Location: "~a",
				Pushed:   fcmcterm.Variable{Name: "x"},
				Next: fcmcterm.Fork{
					Forked: fcmcterm.Pop{
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
					},
					Cont: fcmcterm.Fork{
						Forked: fcmcterm.Pop{
							Location: "~b",
							Arg:      "z",
							Next: fcmcterm.Seq{
								First: fcmcterm.Variable{Name: "z"},
								Next:  fcmcterm.Push{Location: "~t2", Pushed: fcmcterm.Skip{}, Next: fcmcterm.Skip{}},
							},
						},
						Cont: fcmcterm.Pop{
							Location: "~t1",
							Arg:      "n",
							Next:     fcmcterm.Pop{Location: "~t2", Arg: "m", Next: fcmcterm.Skip{}},
						},
					},
				},
			},
		},
	}
}

// FindLambda looks up a lambda example by name.
func FindLambda(name string) (LambdaExample, error) {
	for _, e := range Lambdas() {
		if e.Name == name {
			return e, nil
		}
	}
	return LambdaExample{}, fmt.Errorf("no such lambda example: %s", name)
}

// FindSequential looks up a SAM example by name.
func FindSequential(name string) (SequentialExample, error) {
	for _, e := range Sequentials() {
		if e.Name == name {
			return e, nil
		}
	}
	return SequentialExample{}, fmt.Errorf("no such sequential example: %s", name)
}

// FindConcurrent looks up an FCMC example by name.
func FindConcurrent(name string) (ConcurrentExample, error) {
	for _, e := range Concurrents() {
		if e.Name == name {
			return e, nil
		}
	}
	return ConcurrentExample{}, fmt.Errorf("no such concurrent example: %s", name)
}
