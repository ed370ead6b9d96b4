// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/type/boolean"
	"github.com/michaelmacinnis/wasabi/internal/common/type/num"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/type/str"
	"github.com/michaelmacinnis/wasabi/internal/common/type/sym"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

func isAtom(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(!pair.Is(v[0]))
}

func isBoolean(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == boolean.True || v[0] == boolean.False)
}

func isNull(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(v[0] == pair.Null)
}

func isNumber(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(num.Is(v[0]))
}

func isPair(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(pair.Is(v[0]))
}

func isString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(str.Is(v[0]))
}

func isSymbol(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return boolean.Bool(sym.Is(v[0]))
}

func numberToString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(num.To(v[0]).Literal())
}
