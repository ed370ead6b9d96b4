/*
Wasabi is a small Lisp. It reads s-expressions, evaluates them in a chain
of lexical environments and prints the results. The following expressions
behave as expected:

    (+ 1 2)
    (define (square x) (* x x))
    (square 5)
    (define-macro (unless c a b) `(if ,c ,b ,a))
    (let ((x 1) (y 2)) (+ x y))
    (map 1+ '(1 2 3))

Numbers are exact (integer and rational) or inexact (real and complex).
Only #t is true.

Wasabi is released under an MIT-style license.
*/
package main

import (
	"errors"
	"io"
	"os"

	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/engine"
	"github.com/michaelmacinnis/wasabi/internal/system/options"
	"github.com/michaelmacinnis/wasabi/internal/ui"
)

func main() {
	options.Parse()

	e, err := engine.New(os.Stdout)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	if options.Interactive() {
		ui.Run(e)

		return
	}

	os.Exit(status(run(e)))
}

func run(e *engine.T) error {
	if c := options.Command(); c != "" {
		_, err := e.Load("-c", c)

		return err
	}

	label, r := "stdin", io.Reader(os.Stdin)

	if path := options.Script(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		label, r = path, f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	_, err = e.Load(label, string(b))

	return err
}

func status(err error) int {
	if err == nil || errors.Is(err, fault.ErrExit) {
		return 0
	}

	println(err.Error())

	return 1
}
