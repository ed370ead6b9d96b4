// Released under an MIT license. See LICENSE.

package num

import (
	"math/big"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
)

// Int (integer) wraps Go's big.Int type.
type Int big.Int

// Rat (rational) wraps Go's big.Rat type. Its denominator is never 1.
type Rat big.Rat

type ratValue = *big.Rat

// NewInt creates an Int from the int64 i.
func NewInt(i int64) cell.I {
	return (*Int)(big.NewInt(i))
}

// BigInt wraps the *big.Int i as an Int.
func BigInt(i *big.Int) cell.I {
	return (*Int)(i)
}

// BigRat wraps the *big.Rat r as a Rat or, if it is integral, an Int.
func BigRat(r *big.Rat) cell.I {
	if r.IsInt() {
		return BigInt(new(big.Int).Set(r.Num()))
	}

	return (*Rat)(r)
}

// Equal returns true if c is a number with the same value as i.
func (i *Int) Equal(c cell.I) bool {
	return Is(c) && Equal(i, To(c))
}

// Literal returns the literal representation of the Int i.
func (i *Int) Literal() string {
	return i.Int().String()
}

// Name returns the type name for the Int i.
func (i *Int) Name() string {
	return "integer"
}

// Rat returns the value of the Int i as a *big.Rat.
func (i *Int) Rat() *big.Rat {
	return new(big.Rat).SetInt(i.Int())
}

// String returns the text of the Int i.
func (i *Int) String() string {
	return i.Literal()
}

// Tier returns IntTier.
func (i *Int) Tier() Tier {
	return IntTier
}

// Int returns the value of the Int i as a *big.Int.
func (i *Int) Int() *big.Int {
	return (*big.Int)(i)
}

func (i *Int) complex() complex128 {
	return complex(i.float(), 0)
}

func (i *Int) float() float64 {
	f, _ := new(big.Float).SetInt(i.Int()).Float64()

	return f
}

func (i *Int) rat() ratValue {
	return i.Rat()
}

// Equal returns true if c is a number with the same value as r.
func (r *Rat) Equal(c cell.I) bool {
	return Is(c) && Equal(r, To(c))
}

// Literal returns the literal representation of the Rat r.
func (r *Rat) Literal() string {
	return r.Rat().RatString()
}

// Name returns the type name for the Rat r.
func (r *Rat) Name() string {
	return "rational"
}

// Rat returns the value of the Rat r as a *big.Rat.
func (r *Rat) Rat() *big.Rat {
	return (*big.Rat)(r)
}

// String returns the text of the Rat r.
func (r *Rat) String() string {
	return r.Literal()
}

// Tier returns RatTier.
func (r *Rat) Tier() Tier {
	return RatTier
}

func (r *Rat) complex() complex128 {
	return complex(r.float(), 0)
}

func (r *Rat) float() float64 {
	f, _ := r.Rat().Float64()

	return f
}

func (r *Rat) rat() ratValue {
	return r.Rat()
}
