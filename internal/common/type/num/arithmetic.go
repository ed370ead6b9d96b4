// Released under an MIT license. See LICENSE.

package num

import (
	"math/big"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/rational"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
)

// Add returns a + b.
func Add(a, b cell.I) cell.I {
	x, y := To(a), To(b)

	switch tierOf(x, y) {
	case IntTier:
		return BigInt(new(big.Int).Add(integer(x), integer(y)))
	case RatTier:
		return BigRat(new(big.Rat).Add(x.rat(), y.rat()))
	case RealTier:
		return Float(x.float() + y.float())
	}

	return Cmplx(x.complex() + y.complex())
}

// Sub returns a - b.
func Sub(a, b cell.I) cell.I {
	x, y := To(a), To(b)

	switch tierOf(x, y) {
	case IntTier:
		return BigInt(new(big.Int).Sub(integer(x), integer(y)))
	case RatTier:
		return BigRat(new(big.Rat).Sub(x.rat(), y.rat()))
	case RealTier:
		return Float(x.float() - y.float())
	}

	return Cmplx(x.complex() - y.complex())
}

// Mul returns a * b.
func Mul(a, b cell.I) cell.I {
	x, y := To(a), To(b)

	switch tierOf(x, y) {
	case IntTier:
		return BigInt(new(big.Int).Mul(integer(x), integer(y)))
	case RatTier:
		return BigRat(new(big.Rat).Mul(x.rat(), y.rat()))
	case RealTier:
		return Float(x.float() * y.float())
	}

	return Cmplx(x.complex() * y.complex())
}

// Quo returns a / b. Dividing two Ints gives an exact result.
// Division by zero, in any tier, is an evaluation error.
func Quo(a, b cell.I) cell.I {
	x, y := To(a), To(b)

	if IsZero(y) {
		panic(fault.Evaluation("division by zero"))
	}

	switch tierOf(x, y) {
	case IntTier, RatTier:
		return BigRat(new(big.Rat).Quo(x.rat(), y.rat()))
	case RealTier:
		return Float(x.float() / y.float())
	}

	return Cmplx(x.complex() / y.complex())
}

// Neg returns -a.
func Neg(a cell.I) cell.I {
	return Sub(NewInt(0), a)
}

// Compare returns -1, 0 or +1 as a is less than, equal to, or greater
// than b. Complex numbers are not ordered.
func Compare(a, b cell.I) int {
	x, y := To(a), To(b)

	switch tierOf(x, y) {
	case IntTier:
		return integer(x).Cmp(integer(y))
	case RatTier:
		return x.rat().Cmp(y.rat())
	case RealTier:
		f, g := x.float(), y.float()
		if f < g {
			return -1
		} else if f > g {
			return 1
		}

		return 0
	}

	panic(fault.Evaluation("complex numbers are not ordered"))
}

// Equal returns true if a and b have the same numeric value.
// Tiers may differ: 1 and 1.0 are equal.
func Equal(a, b cell.I) bool {
	x, y := To(a), To(b)

	switch tierOf(x, y) {
	case IntTier:
		return integer(x).Cmp(integer(y)) == 0
	case RatTier:
		return x.rat().Cmp(y.rat()) == 0
	case RealTier:
		return x.float() == y.float()
	}

	return x.complex() == y.complex()
}

// Divisible returns true if the integer a is a multiple of the integer b.
func Divisible(a, b cell.I) bool {
	return Remainder(a, b).(*Int).Int().Sign() == 0
}

// Remainder returns the remainder of the integer a divided by the
// integer b. The result has the sign of a.
func Remainder(a, b cell.I) cell.I {
	x, y := To(a), To(b)

	if x.Tier() != IntTier || y.Tier() != IntTier {
		panic(fault.Evaluation("expected integers, got %s and %s",
			x.Literal(), y.Literal()))
	}

	if IsZero(y) {
		panic(fault.Evaluation("division by zero"))
	}

	return BigInt(new(big.Int).Rem(rational.Integer(x), rational.Integer(y)))
}

func integer(n I) *big.Int {
	return n.(*Int).Int()
}
