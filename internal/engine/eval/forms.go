// Released under an MIT license. See LICENSE.

package eval

import (
	"io"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/scope"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/boolean"
	"github.com/michaelmacinnis/wasabi/internal/common/type/env"
	"github.com/michaelmacinnis/wasabi/internal/common/type/list"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/type/sym"
	"github.com/michaelmacinnis/wasabi/internal/common/type/undef"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
	"github.com/michaelmacinnis/wasabi/internal/engine/commands"
)

// Actions defines the special forms and primitives in the scope s.
// Output from primitives such as display is written to out.
func Actions(s scope.I, out io.Writer) {
	for k, v := range map[string]func(cell.I, scope.I) cell.I{
		"begin":        begin,
		"define":       define,
		"define-macro": defineMacro,
		"if":           evalIf,
		"lambda":       lambda,
		"macroexpand":  macroexpand,
		"quasiquote":   quasiquote,
		"quote":        quote,
		"set!":         set,
	} {
		s.Define(k, NewSyntax(k, v))
	}

	s.Define("apply", NewPrimitive("apply", apply))
	s.Define("procedure?", NewPrimitive("procedure?", isProc))

	for k, v := range commands.Functions(out) {
		s.Define(k, NewPrimitive(k, v))
	}
}

// Special forms.

// (begin expression ...)
func begin(args cell.I, s scope.I) cell.I {
	if !list.IsProper(args) {
		panic(fault.Syntax("begin: improper operand list"))
	}

	inner := env.New(s)

	v := undef.Undef
	for ; args != pair.Null; args = pair.Cdr(args) {
		v = Evaluate(pair.Car(args), inner)
	}

	return v
}

// (define name expression) or (define (name . params) body)
func define(args cell.I, s scope.I) cell.I {
	v := validate.Form("define", args, 2, 2)

	name, params, isProcedure := target("define", v[0])
	if isProcedure {
		s.Define(name.String(), closure(params, v[1], s))
	} else {
		s.Define(name.String(), Evaluate(v[1], s))
	}

	return name
}

// (define-macro (name . params) body) or (define-macro name expression)
func defineMacro(args cell.I, s scope.I) cell.I {
	v := validate.Form("define-macro", args, 2, 2)

	name, params, isProcedure := target("define-macro", v[0])
	if isProcedure {
		s.Define(name.String(), &Macro{closure(params, v[1], s)})

		return undef.Undef
	}

	c, ok := Evaluate(v[1], s).(*Closure)
	if !ok {
		panic(fault.Evaluation("define-macro: %s is not a closure",
			literal.String(v[1])))
	}

	s.Define(name.String(), &Macro{c})

	return undef.Undef
}

// (if test consequent [alternative])
//
// Only #t selects the consequent. Every other value, not just #f,
// selects the alternative.
func evalIf(args cell.I, s scope.I) cell.I {
	v := validate.Form("if", args, 2, 3)

	if Evaluate(v[0], s) == boolean.True {
		return Evaluate(v[1], s)
	}

	if len(v) == 3 {
		return Evaluate(v[2], s)
	}

	return undef.Undef
}

// (lambda params body)
func lambda(args cell.I, s scope.I) cell.I {
	v := validate.Form("lambda", args, 2, 2)

	return closure(v[0], v[1], s)
}

// (macroexpand (macro operand ...))
func macroexpand(args cell.I, s scope.I) cell.I {
	v := validate.Form("macroexpand", args, 1, 1)

	c := v[0]
	if !pair.Is(c) {
		return c
	}

	m, ok := Evaluate(pair.Car(c), s).(*Macro)
	if !ok {
		return c
	}

	return m.Expand(pair.Cdr(c))
}

// (quote datum)
func quote(args cell.I, _ scope.I) cell.I {
	v := validate.Form("quote", args, 1, 1)

	return v[0]
}

// (set! name expression)
func set(args cell.I, s scope.I) cell.I {
	v := validate.Form("set!", args, 2, 2)

	if !sym.Is(v[0]) {
		panic(fault.Syntax("set!: %s is not a symbol", literal.String(v[0])))
	}

	k := sym.To(v[0]).String()

	r := s.Lookup(k)
	if r == nil {
		panic(fault.Evaluation("set!: unbound variable: %s", k))
	}

	c := Evaluate(v[1], s)
	r.Set(c)

	return c
}

// Primitives that need the evaluator.

// (apply procedure list)
func apply(args cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return Apply(v[0], v[1])
}

// (procedure? value)
func isProc(args cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	switch v[0].(type) {
	case *Closure, *Primitive:
		return boolean.True
	}

	return boolean.False
}

// Helpers.

func closure(params, body cell.I, s scope.I) *Closure {
	for p := params; p != pair.Null; p = pair.Cdr(p) {
		if sym.Is(p) {
			break
		}

		if !pair.Is(p) || !sym.Is(pair.Car(p)) {
			panic(fault.Syntax("malformed parameter list: %s",
				literal.String(params)))
		}
	}

	return &Closure{Body: body, Params: params, Scope: s}
}

func target(form string, c cell.I) (name *sym.T, params cell.I, isProcedure bool) {
	if pair.Is(c) {
		c, params, isProcedure = pair.Car(c), pair.Cdr(c), true
	}

	if !sym.Is(c) {
		panic(fault.Syntax("%s: %s is not a symbol", form, literal.String(c)))
	}

	return sym.To(c), params, isProcedure
}
