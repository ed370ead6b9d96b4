// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for wasabi.
package parser

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/token"
	"github.com/michaelmacinnis/wasabi/internal/common/type/eof"
	"github.com/michaelmacinnis/wasabi/internal/common/type/list"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/type/sym"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that consumes tokens produced by item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Read returns the next complete expression. When there is no more input
// it returns eof.EndOfInput. Malformed input produces a syntax fault.
func (p *T) Read() (c cell.I, err error) {
	defer fault.Recover(&err)

	t := p.peek()
	if t.Is(token.EndOfInput) {
		p.consume()

		return eof.EndOfInput, nil
	}

	return p.expression(), nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) unexpected(t *token.T) {
	switch {
	case t.Is(token.EndOfInput):
		panic(fault.Incomplete("%s: unexpected end of input", t.Source()))
	case t.Is(token.Partial):
		panic(fault.Incomplete("%s: %s", t.Source(), t.Value()))
	case t.Is(token.Error):
		panic(fault.Syntax("%s: %s", t.Source(), t.Value()))
	}

	panic(fault.Syntax("%s: unexpected '%s'", t.Source(), t.Value()))
}

// T state functions.

// <expression> ::= <abbreviation> | '(' <list> | Atom .
func (p *T) expression() cell.I {
	p.peek()

	t := p.consume()

	switch t.Class() {
	case token.LParen:
		return p.list()
	case token.Quote:
		return p.abbreviation("quote")
	case token.Quasiquote:
		return p.abbreviation("quasiquote")
	case token.Unquote:
		return p.abbreviation("unquote")
	case token.UnquoteSplicing:
		return p.abbreviation("unquote-splicing")
	case token.Boolean, token.Complex, token.Int, token.Rational,
		token.Real, token.Str, token.Symbol:
		return t.Cell()
	}

	p.unexpected(t)

	return nil
}

// <abbreviation> ::= Quote <expression> .
func (p *T) abbreviation(name string) cell.I {
	return list.New(sym.New(name), p.expression())
}

// <list> ::= ')' | <expression>+ ( '.' <expression> )? ')' .
func (p *T) list() cell.I {
	if p.peek().Is(token.RParen) {
		p.consume()

		return pair.Null
	}

	head := pair.Cons(p.expression(), pair.Null)
	end := head

	for {
		t := p.peek()

		switch {
		case t.Is(token.RParen):
			p.consume()

			return head
		case t.Is(token.Dot):
			p.consume()

			pair.SetCdr(end, p.expression())

			if t = p.peek(); !t.Is(token.RParen) {
				p.unexpected(t)
			}

			p.consume()

			return head
		}

		next := pair.Cons(p.expression(), pair.Null)
		pair.SetCdr(end, next)
		end = next
	}
}
