// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for wasabi.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/loc"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/token"
	"github.com/michaelmacinnis/wasabi/internal/common/type/boolean"
	"github.com/michaelmacinnis/wasabi/internal/common/type/num"
	"github.com/michaelmacinnis/wasabi/internal/common/type/str"
	"github.com/michaelmacinnis/wasabi/internal/common/type/sym"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	state action   // Current action.

	runes  int   // Runes scanned on the current line.
	source loc.T // Location of the current token's first rune.

	text   strings.Builder // Unescaped text of the current string.
	tokens []*token.T      // Tokens emitted but not yet returned.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state: skipWhitespace,
	}
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Token returns the next scanned token. Once all of the text passed to
// Scan has been consumed it returns an EndOfInput token.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		l.gather()

		if l.state == nil {
			l.state = skipWhitespace

			l.tokens = append(l.tokens, token.New(
				token.EndOfInput, "", l.source,
			))

			break
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	switch {
	case w == 0:
		return
	case r == '\n':
		l.source.Line++
		l.runes = 1
	default:
		l.runes++
	}

	l.index += w
}

func (l *T) atom(class token.Class, v string, c cell.I) {
	t := token.Atom(class, v, c, l.source)

	l.tokens = append(l.tokens, t)
	l.skip()
}

func (l *T) emit(class token.Class, v string) {
	l.tokens = append(l.tokens, token.New(class, v, l.source))
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	bytes := strings.Join(l.queue, "")

	if l.first < len(l.bytes) {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// T states.

func afterComma(l *T) action {
	r, w := l.peek()
	if r == '@' {
		l.accept(r, w)
		l.emit(token.UnquoteSplicing, l.Text())

		return skipWhitespace
	}

	l.emit(token.Unquote, l.Text())

	return skipWhitespace
}

func afterDot(l *T) action {
	r, _ := l.peek()
	if terminal(r) {
		l.emit(token.Dot, l.Text())

		return skipWhitespace
	}

	return scanAtom
}

func afterSharp(l *T) action {
	switch l.next() {
	case 't':
		l.atom(token.Boolean, l.Text(), boolean.True)
	case 'f':
		l.atom(token.Boolean, l.Text(), boolean.False)
	case eof:
		l.emit(token.Partial, "'#' at end of input")
	default:
		l.emit(token.Error, "unknown syntax '"+l.Text()+"'")
	}

	return skipWhitespace
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()
		if terminal(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()

	for _, p := range []struct {
		class token.Class
		parse func(string) (cell.I, error)
	}{
		{token.Int, num.ParseInt},
		{token.Real, num.ParseReal},
		{token.Rational, num.ParseRational},
		{token.Complex, num.ParseComplex},
	} {
		c, err := p.parse(s)
		if err != nil {
			l.emit(token.Error, err.Error())

			return skipWhitespace
		}

		if c != nil {
			l.atom(p.class, s, c)

			return skipWhitespace
		}
	}

	l.atom(token.Symbol, s, sym.New(s))

	return skipWhitespace
}

func scanString(l *T) action {
	l.text.Reset()

	for {
		r := l.next()

		switch r {
		case eof:
			l.emit(token.Partial, "unterminated string")

			return nil
		case '"':
			v := l.text.String()
			l.atom(token.Str, v, str.New(v))

			return skipWhitespace
		case '\\':
			r = l.next()
			if r == eof {
				l.emit(token.Partial, "unterminated string")

				return nil
			}
		}

		l.text.WriteRune(r)
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		if unicode.IsSpace(r) {
			l.skip()

			continue
		}

		switch r {
		case eof:
			return nil
		case '(':
			l.emit(token.LParen, l.Text())
		case ')':
			l.emit(token.RParen, l.Text())
		case '\'':
			l.emit(token.Quote, l.Text())
		case '`':
			l.emit(token.Quasiquote, l.Text())
		case ',':
			return afterComma
		case '.':
			return afterDot
		case '"':
			return scanString
		case '#':
			return afterSharp
		default:
			return scanAtom
		}

		return skipWhitespace
	}
}

// Helper functions (well, function).

func terminal(r rune) bool {
	switch r {
	case eof, '(', ')', ',', '\'':
		return true
	}

	return unicode.IsSpace(r)
}
