// Released under an MIT license. See LICENSE.

// Package rational defines the interface for wasabi's exact numeric types.
package rational

import (
	"math/big"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
)

// I (rational) is anything that can be treated as an exact number.
type I interface {
	Rat() *big.Rat
}

type rational = I

// Number returns the *big.Rat value for a cell, if possible.
func Number(c cell.I) *big.Rat {
	r, ok := c.(rational)
	if !ok {
		panic(c.Name() + " is not an exact number")
	}

	return r.Rat()
}

// Integer returns the *big.Int value for a cell, if possible.
func Integer(c cell.I) *big.Int {
	r := Number(c)
	if !r.IsInt() {
		panic(r.RatString() + " is not an integer")
	}

	return r.Num()
}
