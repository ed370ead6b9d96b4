// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/type/boolean"
	"github.com/michaelmacinnis/wasabi/internal/common/type/num"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

func ge(args cell.I) cell.I {
	return chain(args, func(a, b cell.I) bool { return num.Compare(a, b) >= 0 })
}

func gt(args cell.I) cell.I {
	return chain(args, func(a, b cell.I) bool { return num.Compare(a, b) > 0 })
}

func le(args cell.I) cell.I {
	return chain(args, func(a, b cell.I) bool { return num.Compare(a, b) <= 0 })
}

func lt(args cell.I) cell.I {
	return chain(args, func(a, b cell.I) bool { return num.Compare(a, b) < 0 })
}

func numEq(args cell.I) cell.I {
	return chain(args, num.Equal)
}

// chain returns #t if ok holds for every adjacent pair of arguments.
// Every argument is checked, as a number, even after ok fails.
func chain(args cell.I, ok func(a, b cell.I) bool) cell.I {
	validate.Variadic(args, 2, 2)

	result := true

	prev := pair.Car(args)
	for rest := pair.Cdr(args); rest != pair.Null; rest = pair.Cdr(rest) {
		curr := pair.Car(rest)

		if !ok(prev, curr) {
			result = false
		}

		prev = curr
	}

	return boolean.Bool(result)
}
