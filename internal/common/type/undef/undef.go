// Released under an MIT license. See LICENSE.

// Package undef provides the value of forms that have no useful value.
package undef

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
)

const name = "undef"

// T (undef) has a single value, Undef.
type T struct{}

type undef = T

// Undef is the result of forms with no useful value.
var Undef cell.I = &undef{} //nolint:gochecknoglobals

// Equal returns true if c is Undef.
func (u *undef) Equal(c cell.I) bool {
	return c == Undef
}

// Literal returns the literal representation of Undef.
func (u *undef) Literal() string {
	return "#<undef>"
}

// Name returns the type name for Undef.
func (u *undef) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t undef

	// The undef type is a cell.
	_ = cell.I(&t)

	// The undef type has a literal representation.
	_ = literal.I(&t)
}
