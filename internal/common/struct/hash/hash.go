// Released under an MIT license. See LICENSE.

// Package hash provides wasabi's name to value mapping type.
package hash

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/reference"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/slot"
)

// T (hash) maps names to values.
type T struct {
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Set associates the name k with the cell v in the hash h.
// An existing reference is updated in place so that it remains shared.
func (h *hash) Set(k string, v cell.I) {
	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}
