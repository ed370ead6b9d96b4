// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/type/undef"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

func car(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Car(v[0])
}

func cdr(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return pair.Cdr(v[0])
}

// The tail defaults to the empty list.
func cons(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 2)

	tail := pair.Null
	if len(v) > 1 {
		tail = v[1]
	}

	return pair.Cons(v[0], tail)
}

func setCar(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	pair.SetCar(v[0], v[1])

	return undef.Undef
}

func setCdr(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	pair.SetCdr(v[0], v[1])

	return undef.Undef
}
