// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/wasabi/internal/common"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/boolean"
	"github.com/michaelmacinnis/wasabi/internal/common/type/num"
	"github.com/michaelmacinnis/wasabi/internal/common/type/str"
	"github.com/michaelmacinnis/wasabi/internal/common/type/undef"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

func debug(args cell.I) cell.I {
	println(literal.String(args))

	return undef.Undef
}

func display(out io.Writer) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		v := validate.Fixed(args, 1, 1)

		fmt.Fprint(out, common.String(v[0]))

		return undef.Undef
	}
}

func eq(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(identical(v[0], v[1]))
}

func equal(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	if v[0] == nil || v[1] == nil {
		return boolean.Bool(v[0] == v[1])
	}

	return boolean.Bool(v[0].Equal(v[1]))
}

func exit(args cell.I) cell.I {
	validate.Fixed(args, 0, 0)

	panic(fault.Exit())
}

// The pattern may contain shell-style wildcards.
func match(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	pattern := str.To(v[0]).String()
	text := common.String(v[1])

	m, err := adapted.Match(pattern, text)
	if err != nil {
		panic(fault.Evaluation("match: %v", err))
	}

	return boolean.Bool(m)
}

func newline(out io.Writer) func(cell.I) cell.I {
	return func(args cell.I) cell.I {
		validate.Fixed(args, 0, 0)

		fmt.Fprintln(out)

		return undef.Undef
	}
}

// Symbols are interned. Booleans and the empty list are singletons.
// Numbers are identical if they are in the same tier and equal.
func identical(a, b cell.I) bool {
	if a == b {
		return true
	}

	if num.Is(a) && num.Is(b) {
		x, y := num.To(a), num.To(b)

		return x.Tier() == y.Tier() && num.Equal(x, y)
	}

	return false
}
