// Released under an MIT license. See LICENSE.

// Package integer converts a wasabi cell to an int64 value, if possible.
package integer

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/rational"
)

// Value returns the int64 value for a cell, if possible.
func Value(c cell.I) int64 {
	if _, ok := c.(rational.I); !ok {
		panic(c.Name() + " cannot be converted to an integer value")
	}

	bi := rational.Integer(c)
	if !bi.IsInt64() {
		panic(bi.String() + " does not fit in 64 bits")
	}

	return bi.Int64()
}
