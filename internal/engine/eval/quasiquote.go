// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/scope"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/list"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/type/sym"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

// (quasiquote template)
//
// Nesting is not tracked: an unquote inside an inner quasiquote is
// evaluated along with those of the outer template.
func quasiquote(args cell.I, s scope.I) cell.I {
	v := validate.Form("quasiquote", args, 1, 1)

	return expand(v[0], s)
}

func expand(c cell.I, s scope.I) cell.I {
	if !pair.Is(c) {
		return c
	}

	head := pair.Car(c)

	if sym.IsNamed(head, "unquote") {
		v := validate.Form("unquote", pair.Cdr(c), 1, 1)

		return Evaluate(v[0], s)
	}

	if pair.Is(head) && sym.IsNamed(pair.Car(head), "unquote-splicing") {
		v := validate.Form("unquote-splicing", pair.Cdr(head), 1, 1)

		spliced := Evaluate(v[0], s)

		joined, ok := list.Concat(spliced, expand(pair.Cdr(c), s))
		if !ok {
			panic(fault.Syntax("improper splice: %s", literal.String(spliced)))
		}

		return joined
	}

	return pair.Cons(expand(head, s), expand(pair.Cdr(c), s))
}
