// Released under an MIT license. See LICENSE.

package num

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
)

// Each parser returns (nil, nil) when s does not have its shape.

const decimal = `(?:[0-9]+\.?[0-9]*|\.[0-9]+)`

//nolint:gochecknoglobals
var (
	complexRE  = regexp.MustCompile(`^([+-]?` + decimal + `)?([+-]` + decimal + `)i$`)
	integerRE  = regexp.MustCompile(`^[+-]?[0-9]+$`)
	rationalRE = regexp.MustCompile(`^([+-]?[0-9]+)/([0-9]+)$`)
	realRE     = regexp.MustCompile(`^[+-]?` + decimal + `(?:[eE][+-]?[0-9]+)?$`)
)

// ParseComplex parses text of the form [sign]real(+|-)imaginary"i".
func ParseComplex(s string) (cell.I, error) {
	m := complexRE.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}

	re := 0.0
	if m[1] != "" {
		re = parseFloat(m[1])
	}

	return Cmplx(complex(re, parseFloat(m[2]))), nil
}

// ParseInt parses an optionally signed decimal integer.
func ParseInt(s string) (cell.I, error) {
	if !integerRE.MatchString(s) {
		return nil, nil
	}

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("'%s' is not a valid integer", s)
	}

	return BigInt(i), nil
}

// ParseRational parses a numerator and denominator separated by '/'.
// The result is reduced, and an Int when the denominator divides the
// numerator.
func ParseRational(s string) (cell.I, error) {
	m := rationalRE.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}

	n, _ := new(big.Int).SetString(m[1], 10)
	d, _ := new(big.Int).SetString(m[2], 10)

	if d.Sign() == 0 {
		return nil, fmt.Errorf("'%s' has a zero denominator", s)
	}

	return BigRat(new(big.Rat).SetFrac(n, d)), nil
}

// ParseReal parses a decimal floating point number.
func ParseReal(s string) (cell.I, error) {
	if !realRE.MatchString(s) {
		return nil, nil
	}

	return Float(parseFloat(s)), nil
}

// Values too large for a float64 become infinities.
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)

	return f
}
