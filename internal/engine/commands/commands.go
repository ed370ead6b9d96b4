// Released under an MIT license. See LICENSE.

// Package commands provides wasabi's primitive procedures.
package commands

import (
	"io"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
)

// Functions returns a mapping of names to primitives. Primitives that
// produce output write it to out.
func Functions(out io.Writer) map[string]func(cell.I) cell.I {
	return map[string]func(cell.I) cell.I{
		"*":              mul,
		"+":              add,
		"-":              sub,
		"/":              div,
		"<":              lt,
		"<=":             le,
		"=":              numEq,
		">":              gt,
		">=":             ge,
		"append":         appendLists,
		"atom?":          isAtom,
		"boolean?":       isBoolean,
		"car":            car,
		"cdr":            cdr,
		"cons":           cons,
		"debug":          debug,
		"display":        display(out),
		"eq?":            eq,
		"equal?":         equal,
		"exit":           exit,
		"length":         length,
		"list-ref":       listRef,
		"match":          match,
		"mod":            mod,
		"newline":        newline(out),
		"not":            not,
		"null?":          isNull,
		"number->string": numberToString,
		"number?":        isNumber,
		"pair?":          isPair,
		"quit":           exit,
		"remainder":      remainder,
		"reverse":        reverse,
		"set-car!":       setCar,
		"set-cdr!":       setCdr,
		"string->symbol": stringToSymbol,
		"string-append":  stringAppend,
		"string?":        isString,
		"symbol->string": symbolToString,
		"symbol?":        isSymbol,
	}
}
