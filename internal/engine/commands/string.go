// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/type/str"
	"github.com/michaelmacinnis/wasabi/internal/common/type/sym"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

func stringAppend(args cell.I) cell.I {
	var b strings.Builder

	for ; args != pair.Null; args = pair.Cdr(args) {
		b.WriteString(str.To(pair.Car(args)).String())
	}

	return str.New(b.String())
}

func stringToSymbol(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return sym.New(str.To(v[0]).String())
}

func symbolToString(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return str.New(sym.To(v[0]).String())
}
