// Released under an MIT license. See LICENSE.

// Package scope defines the interface for wasabi's environment frames.
package scope

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/reference"
)

// I (scope) is a frame in a chain of environments.
//
// Define only ever touches the innermost frame. Set and Resolve search
// outward and fail if no frame binds the name. Lookup searches outward
// and returns nil if no frame binds the name.
type I interface {
	cell.I

	Define(k string, v cell.I)
	Enclosing() I
	Lookup(k string) reference.I
	Resolve(k string) cell.I
	Set(k string, v cell.I)
}
