// Released under an MIT license. See LICENSE.

// Package options parses wasabi's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by wasabi -v.
const Version = "wasabi 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	usage       = `wasabi

Usage:
  wasabi SCRIPT
  wasabi -c EXPRESSION
  wasabi [-i] [-s]
  wasabi -h
  wasabi -v

Arguments:
  SCRIPT  Path to wasabi script.

Options:
  -c, --command=EXPRESSION  Evaluate the specified expressions.
  -i, --interactive         Invert interactive mode.
  -s, --stdin               Read expressions from stdin.
  -h, --help                Display this help.
  -v, --version             Print wasabi version.

If wasabi's stdin is a TTY, and wasabi was invoked with no script or
expression, interactive mode is enabled. Otherwise, it is disabled.
`
)

// Command returns the text passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if wasabi should prompt for input.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	configure(opts, isatty.IsTerminal(os.Stdin.Fd()))
}

// Script returns the path of the script to load, if any.
func Script() string {
	return script
}

func configure(opts docopt.Opts, terminal bool) {
	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	interactive = command == "" && script == "" && terminal

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert
}
