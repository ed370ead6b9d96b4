// Released under an MIT license. See LICENSE.

// Package num provides wasabi's numeric tower: Int, Rat, Real and Complex.
//
// Every constructor and operation canonicalizes its result to the
// simplest tier that represents the value exactly. A Rat whose
// denominator is 1 is returned as an Int. A Complex whose imaginary part
// is zero is returned as a Real. Binary operations promote both operands
// to the higher of their two tiers before computing.
package num

import (
	"github.com/michaelmacinnis/wasabi/internal/common"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/rational"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
)

// Tier is a level in the numeric tower.
type Tier int

// Tiers, from simplest to most general.
const (
	IntTier Tier = iota
	RatTier
	RealTier
	ComplexTier
)

// I (num) is any number in the tower.
type I interface {
	cell.I
	literal.I

	Tier() Tier

	complex() complex128
	float() float64
	rat() ratValue
}

// Is returns true if c is a number.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// To returns an I if c is a number; Otherwise it panics.
func To(c cell.I) I {
	if n, ok := c.(I); ok {
		return n
	}

	panic(fault.Evaluation("expected a number, got %s", literal.String(c)))
}

// IsZero returns true if n is exactly zero.
func IsZero(n I) bool {
	switch n.Tier() {
	case IntTier, RatTier:
		return n.rat().Sign() == 0
	case RealTier:
		return n.float() == 0
	}

	return n.complex() == 0
}

func tierOf(a, b I) Tier {
	if a.Tier() > b.Tier() {
		return a.Tier()
	}

	return b.Tier()
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		i Int
		r Rat
		f Real
		z Complex
	)

	// Every tier is a number with a literal representation.
	_ = I(&i)
	_ = I(&r)
	_ = I(&f)
	_ = I(&z)

	// The exact tiers are rationals.
	_ = rational.I(&i)
	_ = rational.I(&r)

	// Every tier is a stringer.
	_ = common.Stringer(&i)
	_ = common.Stringer(&r)
	_ = common.Stringer(&f)
	_ = common.Stringer(&z)
}
