// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/integer"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/list"
	"github.com/michaelmacinnis/wasabi/internal/common/type/num"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

// All but the last argument must be proper lists. The last is shared.
func appendLists(args cell.I) cell.I {
	v := list.Slice(args)
	if len(v) == 0 {
		return pair.Null
	}

	joined := v[len(v)-1]

	for i := len(v) - 2; i >= 0; i-- {
		var ok bool

		joined, ok = list.Concat(v[i], joined)
		if !ok {
			panic(fault.Evaluation("append: expected a list, got %s", literal.String(v[i])))
		}
	}

	return joined
}

func length(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if !list.IsProper(v[0]) {
		panic(fault.Evaluation("length: expected a list, got %s", literal.String(v[0])))
	}

	return num.NewInt(list.Length(v[0]))
}

// Indexes start at 0.
func listRef(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	l, k := v[0], integer.Value(v[1])
	for ; k > 0 && pair.Is(l); k-- {
		l = pair.Cdr(l)
	}

	if k < 0 || !pair.Is(l) {
		panic(fault.Evaluation("list-ref: index %s out of range", literal.String(v[1])))
	}

	return pair.Car(l)
}

func reverse(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	if !list.IsProper(v[0]) {
		panic(fault.Evaluation("reverse: expected a list, got %s", literal.String(v[0])))
	}

	return list.Reverse(v[0])
}
