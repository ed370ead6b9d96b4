// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to primitives
// and the number of operands passed to special forms.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/list"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
)

// Variadic returns the first max elements of actual, and the rest.
// Fewer than min elements is an evaluation error.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I) {
	expected, rest, n := split(actual, min, max)
	if n < min {
		s := Count(min, "argument", "s")
		panic(fault.Evaluation("expected %s, passed %d", s, n))
	}

	return expected, rest
}

// Fixed returns the elements of actual. Fewer than min or more than max
// elements is an evaluation error.
func Fixed(actual cell.I, min, max int) []cell.I {
	expected, rest := Variadic(actual, min, max)
	if rest != pair.Null {
		s := Count(max, "argument", "s")
		n := int(list.Length(actual))

		panic(fault.Evaluation("expected %s, passed %d", s, n))
	}

	return expected
}

// Form returns the operands passed to the special form name. Fewer than
// min, more than max, or an improper operand list is a syntax error.
func Form(name string, actual cell.I, min, max int) []cell.I {
	if !list.IsProper(actual) {
		panic(fault.Syntax("%s: improper operand list", name))
	}

	expected, rest, n := split(actual, min, max)

	if n < min || rest != pair.Null {
		if rest != pair.Null {
			n = int(list.Length(actual))
		}

		s := Count(min, "operand", "s")
		if min != max {
			s = fmt.Sprintf("%d to %s", min, Count(max, "operand", "s"))
		}

		panic(fault.Syntax("%s: expected %s, passed %d", name, s, n))
	}

	return expected
}

// Count returns n followed by label, pluralized with p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func split(actual cell.I, min, max int) ([]cell.I, cell.I, int) {
	expected := make([]cell.I, 0, min)

	for i := 0; i < max; i++ {
		if !pair.Is(actual) {
			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual, len(expected)
}
