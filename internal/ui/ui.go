// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the wasabi language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/wasabi/internal/common"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/undef"
	"github.com/michaelmacinnis/wasabi/internal/reader"
	"github.com/michaelmacinnis/wasabi/internal/system/history"
	"github.com/peterh/liner"
)

const (
	primary   = "wasabi> "
	secondary = "... "
)

// Evaluator is the interface for things that want to evaluate parsed expressions.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
}

// T (ui) accumulates lines until they form complete expressions and
// passes those expressions to an Evaluator.
type T struct {
	e       Evaluator
	errs    io.Writer
	out     io.Writer
	pending strings.Builder
}

type ui = T

// New creates a new T. Results are written to out and errors to errs.
func New(e Evaluator, out, errs io.Writer) *T {
	return &T{e: e, errs: errs, out: out}
}

// Line adds line to any pending input. If the pending input is complete,
// each expression is evaluated and its result printed. Line returns true
// if more input is needed. The error is fault.ErrExit if the program
// asked to stop; every other error is reported, not returned.
func (u *ui) Line(line string) (bool, error) {
	u.pending.WriteString(line)
	u.pending.WriteByte('\n')

	var cs []cell.I

	for c, err := range reader.All("wasabi", u.pending.String()) {
		if errors.Is(err, fault.ErrIncomplete) {
			return true, nil
		} else if err != nil {
			u.Reset()
			u.report(err)

			return false, nil
		}

		cs = append(cs, c)
	}

	u.Reset()

	for _, c := range cs {
		v, err := u.e.Evaluate(c)
		if errors.Is(err, fault.ErrExit) {
			return false, err
		} else if err != nil {
			u.report(err)

			break
		}

		if v != nil && v != undef.Undef {
			fmt.Fprintln(u.out, common.String(v))
		}
	}

	return false, nil
}

// Reset discards any pending input.
func (u *ui) Reset() {
	u.pending.Reset()
}

func (u *ui) report(err error) {
	fmt.Fprintln(u.errs, err.Error())
}

// Run prompts for lines, with line editing and history, until end of
// input or until the program asks to stop.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	err := history.Load(cli.ReadHistory)
	if err != nil {
		println(err.Error())
	}

	defer func() {
		err := history.Save(cli.WriteHistory)
		if err != nil {
			println(err.Error())
		}
	}()

	u := New(e, os.Stdout, os.Stderr)

	fmt.Println(`Type "(quit)" or "(exit)" to exit interactive mode`)

	prompt := primary

	for {
		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			u.Reset()

			prompt = primary

			continue
		default:
			fmt.Println()

			return
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		more, err := u.Line(line)
		if errors.Is(err, fault.ErrExit) {
			fmt.Println("Bye-bye!")

			return
		}

		prompt = primary
		if more {
			prompt = secondary
		}
	}
}
