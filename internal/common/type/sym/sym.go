// Released under an MIT license. See LICENSE.

// Package sym provides wasabi's symbol cell type. Symbols are interned.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/wasabi/internal/common"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) wraps Go's string type.
type T string

type sym = T

// New returns the interned sym cell for v.
func New(v string) cell.I {
	return symnew(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Functions specific to sym.

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// IsNamed returns true if c is the sym with the name n.
func IsNamed(c cell.I, n string) bool {
	s, ok := c.(*sym)

	return ok && string(*s) == n
}

// To returns a *T if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic("expected a symbol, got " + literal.String(c))
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func symnew(v string) *sym {
	if p, ok := symtry(v); ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok := cache[v]; ok {
		return p
	}

	s := sym(v)
	p := &s

	cache[v] = p

	return p
}

func symtry(v string) (p *sym, ok bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	p, ok = cache[v]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
