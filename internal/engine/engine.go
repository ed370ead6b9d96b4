// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed wasabi code.
package engine

import (
	"io"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/scope"
	"github.com/michaelmacinnis/wasabi/internal/common/type/env"
	"github.com/michaelmacinnis/wasabi/internal/engine/boot"
	"github.com/michaelmacinnis/wasabi/internal/engine/eval"
	"github.com/michaelmacinnis/wasabi/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating wasabi code.
type T struct {
	scope scope.I
}

type engine = T

// New creates a new T with a fresh global scope. Output from primitives
// like display is written to out.
func New(out io.Writer) (*T, error) {
	e := &engine{scope: env.New(nil)}

	eval.Actions(e.scope, out)

	_, err := e.Load("boot.lisp", boot.Script())
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Evaluate evaluates c in the global scope.
func (e *engine) Evaluate(c cell.I) (cell.I, error) {
	return eval.Run(c, e.scope)
}

// Load reads and evaluates each top-level expression in text, stopping at
// the first error. It returns the value of the last expression or nil if
// text contains no expressions. The label is used in error messages.
func (e *engine) Load(label, text string) (cell.I, error) {
	var v cell.I

	for c, err := range reader.All(label, text) {
		if err != nil {
			return nil, err
		}

		v, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Scope returns the global scope.
func (e *engine) Scope() scope.I {
	return e.scope
}
