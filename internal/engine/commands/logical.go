// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/type/boolean"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

// Only #t is true.
func not(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] != boolean.True)
}
