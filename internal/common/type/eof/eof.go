// Released under an MIT license. See LICENSE.

// Package eof provides the sentinel the parser returns when input runs out.
// It is never the result of evaluating an expression.
package eof

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
)

const name = "end-of-input"

// T (eof) has a single value, EndOfInput.
type T struct{}

type eof = T

// EndOfInput signals that there is nothing left to read.
var EndOfInput cell.I = &eof{} //nolint:gochecknoglobals

// Equal returns true if c is EndOfInput.
func (e *eof) Equal(c cell.I) bool {
	return c == EndOfInput
}

// Name returns the type name for EndOfInput.
func (e *eof) Name() string {
	return name
}
