// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"calculi/internal/errors"
	"calculi/internal/fcmc"
	"calculi/internal/kam"
	"calculi/internal/pam"
	"calculi/internal/parser"
	"calculi/internal/sam"
	"calculi/repl"
)

func main() {
	if len(os.Args) < 2 {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	path := os.Args[1]
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("Failed to read file: %s", err)
		os.Exit(1)
	}

	if err := runFile(path, string(source)); err != nil {
		os.Exit(1)
	}
}

// runFile dispatches on path's extension to the machine that owns that
// dialect, running the parsed term to a fixpoint and printing the
// result. Lambda files (any other extension) run under both PAM and KAM;
// SAM and FCMC each own their extension.
func runFile(path, source string) error {
	reporter := errors.NewErrorReporter(path, source)

	switch filepath.Ext(path) {
	case ".sam":
		t, err := parser.ParseSequential(source)
		if err != nil {
			printParseError(reporter, err)
			return err
		}
		stack, err := sam.Run(t)
		if err != nil {
			printMachineError(reporter, err)
			return err
		}
		for i, term := range stack {
			color.Green("[%d] %s", i, term)
		}
		color.Green("✅ Successfully ran %s", path)
		return nil
	case ".fcmc":
		t, err := parser.ParseConcurrent(source)
		if err != nil {
			printParseError(reporter, err)
			return err
		}
		result, err := fcmc.Run(t, log.New(os.Stderr, "", 0))
		if err != nil {
			printMachineError(reporter, err)
			return err
		}
		for _, lr := range result.Locations {
			color.Green("%s: %s", lr.Location, lr.Term)
		}
		color.Green("✅ Successfully ran %s", path)
		return nil
	default:
		t, err := parser.ParseLambda(source)
		if err != nil {
			printParseError(reporter, err)
			return err
		}
		fmt.Printf("pam => %s\n", pam.Run(t))
		fmt.Printf("kam => %s\n", kam.Run(t))
		color.Green("✅ Successfully ran %s", path)
		return nil
	}
}

func printParseError(reporter *errors.ErrorReporter, err error) {
	switch e := err.(type) {
	case parser.ParseError:
		fmt.Print(reporter.FormatError(errors.FromParseError(e)))
	case parser.ScanError:
		fmt.Print(reporter.FormatError(errors.FromScanError(e)))
	default:
		color.Red("Unexpected error: %s", err)
	}
}

func printMachineError(reporter *errors.ErrorReporter, err error) {
	if me, ok := err.(*errors.MachineError); ok {
		fmt.Print(reporter.FormatMachineError(me))
		return
	}
	color.Red("Unexpected error: %s", err)
}
