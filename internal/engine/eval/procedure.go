// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/scope"
	"github.com/michaelmacinnis/wasabi/internal/common/type/env"
)

// Syntax is wasabi's special form type. It is passed its operands
// unevaluated along with the calling scope.
type Syntax struct {
	name string
	form func(args cell.I, s scope.I) cell.I
}

// Primitive is wasabi's Go-implemented procedure type. It is passed its
// arguments, already evaluated, as a list.
type Primitive struct {
	name string
	fn   func(args cell.I) cell.I
}

// Closure is wasabi's user-defined procedure type.
type Closure struct {
	Body   cell.I  // A single expression.
	Params cell.I  // A symbol or a, possibly improper, list of symbols.
	Scope  scope.I // Scope where the closure was created.
}

// Macro is wasabi's non-hygienic macro type. Its transformer is passed
// the unevaluated operands and returns an expression to evaluate in
// place of the macro call.
type Macro struct {
	Transformer *Closure
}

// NewPrimitive creates a primitive named name.
func NewPrimitive(name string, fn func(args cell.I) cell.I) *Primitive {
	return &Primitive{name: name, fn: fn}
}

// NewSyntax creates a special form named name.
func NewSyntax(name string, form func(args cell.I, s scope.I) cell.I) *Syntax {
	return &Syntax{name: name, form: form}
}

// The syntax type is a cell.

// Equal returns true if the cell c is the same syntax as a.
func (a *Syntax) Equal(c cell.I) bool {
	p, ok := c.(*Syntax)

	return ok && p == a
}

// Literal returns the printed representation of the syntax a.
func (a *Syntax) Literal() string {
	return "#<syntax " + a.name + ">"
}

// Name returns the name of the syntax type.
func (a *Syntax) Name() string {
	return "syntax"
}

// The primitive type is a cell.

// Equal returns true if the cell c is the same primitive as a.
func (a *Primitive) Equal(c cell.I) bool {
	p, ok := c.(*Primitive)

	return ok && p == a
}

// Literal returns the printed representation of the primitive a.
func (a *Primitive) Literal() string {
	return "#<primitive " + a.name + ">"
}

// Name returns the name of the primitive type.
func (a *Primitive) Name() string {
	return "primitive"
}

// The closure type is a cell.

// Equal returns true if the cell c is the same closure as a.
func (a *Closure) Equal(c cell.I) bool {
	p, ok := c.(*Closure)

	return ok && p == a
}

// Literal returns the printed representation of the closure a.
func (a *Closure) Literal() string {
	return "#<closure " + literal.String(a.Body) + ">"
}

// Name returns the name of the closure type.
func (a *Closure) Name() string {
	return "closure"
}

// Methods specific to closure.

// Call binds args, which have already been evaluated, to the closure's
// parameters in a new frame and evaluates the body in that frame.
func (a *Closure) Call(args cell.I) cell.I {
	frame := env.New(a.Scope)

	Bind(a.Params, args, frame)

	return Evaluate(a.Body, frame)
}

// The macro type is a cell.

// Equal returns true if the cell c is the same macro as a.
func (a *Macro) Equal(c cell.I) bool {
	p, ok := c.(*Macro)

	return ok && p == a
}

// Literal returns the printed representation of the macro a.
func (a *Macro) Literal() string {
	return "#<macro " + literal.String(a.Transformer.Body) + ">"
}

// Name returns the name of the macro type.
func (a *Macro) Name() string {
	return "macro"
}

// Methods specific to macro.

// Expand passes the unevaluated operands args to the macro's transformer
// and returns the resulting expression without evaluating it.
func (a *Macro) Expand(args cell.I) cell.I {
	return a.Transformer.Call(args)
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		s Syntax
		p Primitive
		c Closure
		m Macro
	)

	// Every procedure type is a cell.
	_ = cell.I(&s)
	_ = cell.I(&p)
	_ = cell.I(&c)
	_ = cell.I(&m)

	// Every procedure type has a printed representation.
	_ = literal.I(&s)
	_ = literal.I(&p)
	_ = literal.I(&c)
	_ = literal.I(&m)
}
