// Package repl SPDX-License-Identifier: Apache-2.0
//
// Package repl implements the interactive menu shared by machines-cli:
// pick a machine, pick or type a term, run it, and print the result in
// the toolchain's color-highlighted style. Every loop iteration is one
// menu pass; "exit" or "quit" at the top-level prompt ends the session
// cleanly, while at a machine's term prompt they return to the top-level
// menu, the same as "back".
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"calculi/internal/errors"
	"calculi/internal/examples"
	"calculi/internal/fcmc"
	"calculi/internal/kam"
	"calculi/internal/pam"
	"calculi/internal/parser"
	"calculi/internal/sam"
	"calculi/internal/seqterm"
)

// Start runs the menu loop against in, writing all output to out, until
// the user chooses to exit or in is exhausted.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nchoose a machine [pam/kam/sam/fcmc], \"help\", or \"exit\" > ")
		if !scanner.Scan() {
			return
		}
		choice := strings.TrimSpace(scanner.Text())

		switch choice {
		case "":
			continue
		case "exit", "quit":
			return
		case "help":
			printHelp(out)
		case "pam", "kam", "sam", "fcmc":
			runMachineMenu(choice, scanner, out)
		default:
			color.New(color.FgRed).Fprintf(out, "unknown machine %q -- try pam, kam, sam, fcmc, help, or exit\n", choice)
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "pam  -- Partial Abstract Machine: substitution-based lambda reduction")
	fmt.Fprintln(out, "kam  -- Krivine Abstract Machine: environment-based lambda reduction")
	fmt.Fprintln(out, "sam  -- Sequential Abstract Machine: unnamed-location stack programs")
	fmt.Fprintln(out, "fcmc -- Functional Concurrent Machine Calculus: forked threads, named locations")
	fmt.Fprintln(out, "at the machine's term prompt, choose \"example\" to pick a built-in term,")
	fmt.Fprintln(out, "type a term directly, or \"back\" to return to this menu")
}

// runMachineMenu handles the run/example/help/back submenu for one
// chosen machine, looping until the user types "back", "exit" or "quit"
// (all three return to the top-level menu) or input ends.
func runMachineMenu(machine string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "%s> term, \"example\", \"help\", or \"back\" > ", machine)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "back":
			return
		case "exit", "quit":
			return
		case "help":
			printMachineHelp(machine, out)
		case "example":
			src, ok := pickExample(machine, scanner, out)
			if !ok {
				continue
			}
			runTerm(machine, src, out)
		default:
			runTerm(machine, line, out)
		}
	}
}

func printMachineHelp(machine string, out io.Writer) {
	switch machine {
	case "pam", "kam":
		fmt.Fprintln(out, `syntax: variables are bare identifiers, \x. body is abstraction, f x is application`)
	case "sam":
		fmt.Fprintln(out, `syntax: * is skip, [term] pushes, <name> pops, first;next sequences`)
	case "fcmc":
		fmt.Fprintln(out, `syntax: as sam, but push/pop name a location: [term]loc, loc<name>; {term}.cont forks`)
	}
}

// pickExample lists the machine's built-in examples and reads a name,
// returning its source text. ok is false if the name doesn't match any
// example, sending the user back to the term prompt.
func pickExample(machine string, scanner *bufio.Scanner, out io.Writer) (string, bool) {
	switch machine {
	case "pam", "kam":
		for _, e := range examples.Lambdas() {
			fmt.Fprintf(out, "  %-20s %s\n", e.Name, e.Description)
		}
		fmt.Fprint(out, "pick a name > ")
		if !scanner.Scan() {
			return "", false
		}
		ex, err := examples.FindLambda(strings.TrimSpace(scanner.Text()))
		if err != nil {
			color.New(color.FgRed).Fprintln(out, err)
			return "", false
		}
		return ex.Term.String(), true
	case "sam":
		for _, e := range examples.Sequentials() {
			fmt.Fprintf(out, "  %-20s %s\n", e.Name, e.Description)
		}
		fmt.Fprint(out, "pick a name > ")
		if !scanner.Scan() {
			return "", false
		}
		ex, err := examples.FindSequential(strings.TrimSpace(scanner.Text()))
		if err != nil {
			color.New(color.FgRed).Fprintln(out, err)
			return "", false
		}
		return ex.Term.String(), true
	case "fcmc":
		for _, e := range examples.Concurrents() {
			fmt.Fprintf(out, "  %-20s %s\n", e.Name, e.Description)
		}
		fmt.Fprint(out, "pick a name > ")
		if !scanner.Scan() {
			return "", false
		}
		ex, err := examples.FindConcurrent(strings.TrimSpace(scanner.Text()))
		if err != nil {
			color.New(color.FgRed).Fprintln(out, err)
			return "", false
		}
		return ex.Term.String(), true
	default:
		return "", false
	}
}

// runTerm parses src under the dialect owned by machine, runs it to a
// fixpoint, and prints the final readback, or a caret-style parse error.
func runTerm(machine, src string, out io.Writer) {
	switch machine {
	case "pam":
		t, err := parser.ParseLambda(src)
		if err != nil {
			reportParseError(src, err, out)
			return
		}
		color.New(color.FgGreen).Fprintf(out, "=> %s\n", pam.Run(t))
	case "kam":
		t, err := parser.ParseLambda(src)
		if err != nil {
			reportParseError(src, err, out)
			return
		}
		color.New(color.FgGreen).Fprintf(out, "=> %s\n", kam.Run(t))
	case "sam":
		t, err := parser.ParseSequential(src)
		if err != nil {
			reportParseError(src, err, out)
			return
		}
		stack, err := sam.Run(t)
		if err != nil {
			reportMachineError(err, out)
			return
		}
		printStack(stack, out)
	case "fcmc":
		t, err := parser.ParseConcurrent(src)
		if err != nil {
			reportParseError(src, err, out)
			return
		}
		result, err := fcmc.Run(t, nil)
		if err != nil {
			reportMachineError(err, out)
			return
		}
		printLocations(result, out)
	}
}

func printStack(stack []seqterm.Term, out io.Writer) {
	if len(stack) == 0 {
		color.New(color.FgGreen).Fprintln(out, "=> (empty stack)")
		return
	}
	for i, t := range stack {
		color.New(color.FgGreen).Fprintf(out, "=> [%d] %s\n", i, t)
	}
}

func printLocations(result *fcmc.Result, out io.Writer) {
	if len(result.Locations) == 0 {
		color.New(color.FgGreen).Fprintln(out, "=> (no locations drained)")
		return
	}
	for _, lr := range result.Locations {
		color.New(color.FgGreen).Fprintf(out, "=> %s: %s\n", lr.Location, lr.Term)
	}
}

// reportParseError prints a caret-style parse error, grounded on the
// position the scanner or parser attached to it.
func reportParseError(src string, err error, out io.Writer) {
	reporter := errors.NewErrorReporter("<input>", src)

	switch e := err.(type) {
	case parser.ParseError:
		fmt.Fprint(out, reporter.FormatError(errors.FromParseError(e)))
	case parser.ScanError:
		fmt.Fprint(out, reporter.FormatError(errors.FromScanError(e)))
	default:
		color.New(color.FgRed).Fprintf(out, "parse error: %s\n", err)
	}
}

func reportMachineError(err error, out io.Writer) {
	if me, ok := err.(*errors.MachineError); ok {
		reporter := errors.NewErrorReporter("<input>", "")
		fmt.Fprint(out, reporter.FormatMachineError(me))
		return
	}
	color.New(color.FgRed).Fprintf(out, "runtime error: %s\n", err)
}
