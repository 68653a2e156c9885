// Command hibou is the CLI surface of SPEC_FULL.md §6.3: draw, analyze
// and explore a model described in internal/fixture's stand-in grammar,
// with exit codes matching spec.md §6.3 exactly. Subcommand dispatch
// uses github.com/spf13/cobra rather than the teacher's bare flag
// package (cmd/turducken/main.go is a single-flag server launcher with
// no subcommand precedent), following the CLI framework used pervasively
// across the retrieved pack.
package main

import (
	"fmt"
	"os"
)

const (
	exitOK            = 0
	exitFail          = 1
	exitInputError    = 2
	exitAborted       = 3
	exitInternalFault = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if ec, ok := err.(exitCoder); ok {
			fmt.Fprintln(os.Stderr, err)
			return ec.ExitCode()
		}
		fmt.Fprintln(os.Stderr, err)
		return exitInputError
	}
	return lastExitCode
}

// exitCoder lets a command report a specific exit code for an error
// that cobra would otherwise surface as a bare non-zero exit.
type exitCoder interface {
	error
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) ExitCode() int { return e.code }
func (e *exitError) Unwrap() error { return e.err }

// lastExitCode lets a RunE record a success exit code distinct from 0
// (e.g. Fail=1) without returning an error, since cobra treats any
// returned error as a failure regardless of code.
var lastExitCode int
