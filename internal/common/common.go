// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
)

type Stringer = fmt.Stringer

// String returns the display text for a cell. Cells that are not
// stringers are displayed using their literal representation.
func String(c cell.I) string {
	if b, ok := c.(Stringer); ok {
		return b.String()
	}

	return literal.String(c)
}
