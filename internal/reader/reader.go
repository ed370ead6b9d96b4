// Released under an MIT license. See LICENSE.

// Package reader encapsulates the wasabi lexer and parser.
package reader

import (
	"iter"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/type/eof"
	"github.com/michaelmacinnis/wasabi/internal/reader/lexer"
	"github.com/michaelmacinnis/wasabi/internal/reader/parser"
)

// T (reader) turns text into expressions.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	s := lexer.New(name)

	return &T{
		p: parser.New(s.Token),
		s: s,
	}
}

// All returns the top-level expressions in text. The sequence is lazy:
// each expression is read only when it is requested. It stops at the
// end of the text or after yielding the first error.
func All(name, text string) iter.Seq2[cell.I, error] {
	r := New(name)
	r.Scan(text)

	return r.All()
}

// All returns the expressions remaining in the text passed to Scan.
// The sequence cannot be restarted.
func (r *reader) All() iter.Seq2[cell.I, error] {
	return func(yield func(cell.I, error) bool) {
		for {
			c, err := r.Read()
			if err != nil {
				yield(nil, err)

				return
			}

			if c == eof.EndOfInput || !yield(c, nil) {
				return
			}
		}
	}
}

// Read returns the next expression or eof.EndOfInput once the text
// passed to Scan has been consumed.
func (r *reader) Read() (cell.I, error) {
	return r.p.Read()
}

// Scan queues text to be read.
func (r *reader) Scan(text string) {
	r.s.Scan(text)
}
