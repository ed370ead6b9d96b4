// Released under an MIT license. See LICENSE.

// Package literal defines the interface for wasabi types that can be expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell.
// Cells without a literal representation are written as #<name>.
func String(c cell.I) string {
	if c == nil {
		return "#<nothing>"
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
