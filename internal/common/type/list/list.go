// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
)

// Concat returns a new list with every element of head followed by tail.
// The pairs in head are copied; tail is shared. If head is not a proper
// list, ok is false.
func Concat(head, tail cell.I) (c cell.I, ok bool) {
	if head == pair.Null {
		return tail, true
	}

	var end cell.I

	for ; pair.Is(head); head = pair.Cdr(head) {
		p := pair.Cons(pair.Car(head), pair.Null)
		if end == nil {
			c = p
		} else {
			pair.SetCdr(end, p)
		}

		end = p
	}

	if head != pair.Null {
		return nil, false
	}

	pair.SetCdr(end, tail)

	return c, true
}

// IsProper returns true if c is Null or a chain of pairs ending in Null.
// The list must be non-circular.
func IsProper(c cell.I) bool {
	for pair.Is(c) {
		c = pair.Cdr(c)
	}

	return c == pair.Null
}

// Length returns the number of elements in list.
// A list that does not end in Null will cause a panic.
// The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for c := list; c != pair.Null; c = pair.Cdr(c) {
		if !pair.Is(c) {
			panic("improper list " + literal.String(list))
		}

		length++
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Of(pair.Null, elements...)
}

// Of creates a new list composed of all of the elements in elements
// terminated by tail instead of Null.
func Of(tail cell.I, elements ...cell.I) cell.I {
	for i := len(elements) - 1; i >= 0; i-- {
		tail = pair.Cons(elements[i], tail)
	}

	return tail
}

// Reverse reverses list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for list != nil && list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Slice returns the elements of the proper list as a slice.
// A list that does not end in Null will cause a panic.
func Slice(list cell.I) []cell.I {
	s := make([]cell.I, 0, Length(list))

	for c := list; c != pair.Null; c = pair.Cdr(c) {
		s = append(s, pair.Car(c))
	}

	return s
}
