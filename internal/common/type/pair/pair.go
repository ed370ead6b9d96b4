// Released under an MIT license. See LICENSE.

// Package pair provides wasabi's cons cell type.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/wasabi/internal/common"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
)

const name = "pair"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return cell.I(p) == c
	}

	return Is(c) && p.car.Equal(Car(c)) && p.cdr.Equal(Cdr(c))
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	return p.text(literal.String)
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "nil"
	}

	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.text(common.String)
}

func (p *pair) text(f func(cell.I) string) string {
	if p == Null {
		return "()"
	}

	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(f(p.car))

	for c := p.cdr; c != Null; {
		if !Is(c) {
			b.WriteString(" . ")
			b.WriteString(f(c))

			break
		}

		b.WriteByte(' ')
		b.WriteString(f(Car(c)))

		c = Cdr(c)
	}

	b.WriteByte(')')

	return b.String()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair other than Null.
func Is(c cell.I) bool {
	p, ok := c.(*pair)

	return ok && p != Null
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function will panic.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// To returns a *T if c is a pair other than Null; Otherwise it panics.
func To(c cell.I) *pair {
	if Is(c) {
		return c.(*pair)
	}

	if c == nil {
		panic("expected a pair, got nothing")
	}

	panic("expected a pair, got " + literal.String(c))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
