// Released under an MIT license. See LICENSE.

// Package token is shared by the wasabi lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/loc"
)

// Class is a token's type.
type Class int

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
	cell   cell.I
}

type token = T

// Token classes.
const (
	Error Class = iota
	Partial

	Dot
	Quote
	Quasiquote
	Unquote
	UnquoteSplicing
	LParen
	RParen
	EndOfInput

	Str
	Int
	Rational
	Real
	Complex
	Symbol
	Boolean
)

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// Atom creates a new token for an atom whose value has already been parsed.
func Atom(class Class, value string, c cell.I, source loc.T) *token {
	t := New(class, value, source)
	t.cell = c

	return t
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Partial:
		return "Partial"
	case Dot:
		return "Dot"
	case Quote:
		return "Quote"
	case Quasiquote:
		return "Quasiquote"
	case Unquote:
		return "Unquote"
	case UnquoteSplicing:
		return "UnquoteSplicing"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case EndOfInput:
		return "EndOfInput"
	case Str:
		return "Str"
	case Int:
		return "Int"
	case Rational:
		return "Rational"
	case Real:
		return "Real"
	case Complex:
		return "Complex"
	case Symbol:
		return "Symbol"
	case Boolean:
		return "Boolean"
	}

	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Cell returns the value of an atom token, or nil for other tokens.
func (t *token) Cell() cell.I {
	return t.cell
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return &t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's text. For strings this is the unescaped text.
func (t *token) Value() string {
	return t.value
}
