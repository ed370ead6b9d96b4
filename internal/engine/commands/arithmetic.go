// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/type/boolean"
	"github.com/michaelmacinnis/wasabi/internal/common/type/num"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

func add(args cell.I) cell.I {
	return fold(num.Add, num.NewInt(0), args)
}

// A single argument is divided into 1.
func div(args cell.I) cell.I {
	v, args := validate.Variadic(args, 1, 1)

	if args == pair.Null {
		return num.Quo(num.NewInt(1), v[0])
	}

	return fold(num.Quo, num.To(v[0]), args)
}

// Unlike remainder, mod returns #t if the first argument is a multiple of
// the second.
func mod(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(num.Divisible(v[0], v[1]))
}

func mul(args cell.I) cell.I {
	return fold(num.Mul, num.NewInt(1), args)
}

func remainder(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return num.Remainder(v[0], v[1])
}

// A single argument is negated.
func sub(args cell.I) cell.I {
	v, args := validate.Variadic(args, 1, 1)

	if args == pair.Null {
		return num.Neg(v[0])
	}

	return fold(num.Sub, num.To(v[0]), args)
}

func fold(op func(a, b cell.I) cell.I, acc cell.I, args cell.I) cell.I {
	num.To(acc)

	for ; args != pair.Null; args = pair.Cdr(args) {
		acc = op(acc, pair.Car(args))
	}

	return acc
}
