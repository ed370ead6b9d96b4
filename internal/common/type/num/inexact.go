// Released under an MIT license. See LICENSE.

package num

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
)

// Real wraps Go's float64 type.
type Real float64

// Complex wraps Go's complex128 type. Its imaginary part is never zero.
type Complex complex128

// Float creates a Real from the float64 f.
func Float(f float64) cell.I {
	r := Real(f)

	return &r
}

// Cmplx creates a Complex from the complex128 z or, if its imaginary
// part is zero, a Real.
func Cmplx(z complex128) cell.I {
	if imag(z) == 0 {
		return Float(real(z))
	}

	c := Complex(z)

	return &c
}

// Equal returns true if c is a number with the same value as r.
func (r *Real) Equal(c cell.I) bool {
	return Is(c) && Equal(r, To(c))
}

// Literal returns the literal representation of the Real r.
// The text always reads back as a Real.
func (r *Real) Literal() string {
	s := formatFloat(float64(*r))
	if strings.ContainsAny(s, ".eIN") {
		return s
	}

	return s + ".0"
}

// Name returns the type name for the Real r.
func (r *Real) Name() string {
	return "real"
}

// String returns the text of the Real r.
func (r *Real) String() string {
	return r.Literal()
}

// Tier returns RealTier.
func (r *Real) Tier() Tier {
	return RealTier
}

func (r *Real) complex() complex128 {
	return complex(float64(*r), 0)
}

func (r *Real) float() float64 {
	return float64(*r)
}

func (r *Real) rat() ratValue {
	f := float64(*r)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic(fault.Evaluation("%s has no exact value", r.Literal()))
	}

	return new(big.Rat).SetFloat64(f)
}

// Equal returns true if c is a number with the same value as z.
func (z *Complex) Equal(c cell.I) bool {
	return Is(c) && Equal(z, To(c))
}

// Literal returns the literal representation of the Complex z.
// A zero real part is omitted.
func (z *Complex) Literal() string {
	re, im := real(complex128(*z)), imag(complex128(*z))

	s := ""
	if re != 0 {
		s = formatFloat(re)
	}

	i := formatFloat(im)
	if im >= 0 || math.IsNaN(im) {
		i = "+" + i
	}

	return s + i + "i"
}

// Name returns the type name for the Complex z.
func (z *Complex) Name() string {
	return "complex"
}

// String returns the text of the Complex z.
func (z *Complex) String() string {
	return z.Literal()
}

// Tier returns ComplexTier.
func (z *Complex) Tier() Tier {
	return ComplexTier
}

func (z *Complex) complex() complex128 {
	return complex128(*z)
}

func (z *Complex) float() float64 {
	panic(fault.Evaluation("%s has no real value", z.Literal()))
}

func (z *Complex) rat() ratValue {
	panic(fault.Evaluation("%s has no exact value", z.Literal()))
}

func formatFloat(f float64) string {
	if a := math.Abs(f); a == 0 || (a >= 1e-4 && a < 1e16) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
