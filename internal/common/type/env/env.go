// Released under an MIT license. See LICENSE.

// Package env provides wasabi's environment frame type.
//
// Frames form a chain from the innermost scope out to the global scope.
// Closures hold a pointer to the frame in which they were created, so a
// frame may be shared by many closures and by any evaluation in flight.
// Frames are never copied.
package env

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/reference"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/scope"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to values and links to its enclosing env.
type T struct {
	previous scope.I
	*hash.T
}

type env = T

// New creates a new env enclosed by previous. Previous is nil for the
// global env.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		T:        hash.New(),
	}
}

// Define associates the name k with the cell v in the env e.
// Enclosing envs are never consulted or changed.
func (e *env) Define(k string, v cell.I) {
	e.T.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	o, ok := c.(*env)

	return ok && e == o
}

// Lookup retrieves the reference associated with the name k in the env e
// or the nearest enclosing env. It returns nil if k is not bound.
func (e *env) Lookup(k string) reference.I {
	for s := scope.I(e); s != nil; s = s.Enclosing() {
		if o, ok := s.(*env); ok {
			if r := o.Get(k); r != nil {
				return r
			}

			continue
		}

		return s.Lookup(k)
	}

	return nil
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Resolve returns the value bound to the name k in the env e or the
// nearest enclosing env. It panics if k is not bound.
func (e *env) Resolve(k string) cell.I {
	r := e.Lookup(k)
	if r == nil {
		panic(fault.Evaluation("unbound variable: %s", k))
	}

	return r.Get()
}

// Set changes the value bound to the name k in the nearest env that
// binds it. It panics, rather than creating a binding, if k is not bound.
func (e *env) Set(k string, v cell.I) {
	r := e.Lookup(k)
	if r == nil {
		panic(fault.Evaluation("unbound variable: %s", k))
	}

	r.Set(v)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
