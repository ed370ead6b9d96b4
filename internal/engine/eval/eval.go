// Released under an MIT license. See LICENSE.

// Package eval provides the wasabi evaluator.
//
// Evaluation is a direct recursive walk over the expression tree. There
// is no tail call elimination so recursion depth is bounded by the Go
// stack. Errors are raised as *fault.T panics; Run recovers them.
package eval

import (
	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/scope"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/eof"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/type/sym"
	"github.com/michaelmacinnis/wasabi/internal/common/validate"
)

// Run evaluates c in the scope s and converts any fault to an error.
// Evaluating eof.EndOfInput produces a nil result and a nil error.
func Run(c cell.I, s scope.I) (v cell.I, err error) {
	defer fault.Recover(&err)

	return Evaluate(c, s), nil
}

// Evaluate returns the value of the expression c in the scope s.
func Evaluate(c cell.I, s scope.I) cell.I {
	switch {
	case c == eof.EndOfInput:
		return nil
	case sym.Is(c):
		return s.Resolve(sym.To(c).String())
	case !pair.Is(c):
		return c
	}

	op := Evaluate(pair.Car(c), s)
	args := pair.Cdr(c)

	switch f := op.(type) {
	case *Syntax:
		return f.form(args, s)
	case *Primitive:
		return f.fn(evalArgs(args, s))
	case *Closure:
		return f.Call(evalArgs(args, s))
	case *Macro:
		return Evaluate(f.Expand(args), s)
	}

	panic(fault.Evaluation("not callable: %s", literal.String(op)))
}

// Apply calls the primitive or closure f with the evaluated arguments args.
func Apply(f, args cell.I) cell.I {
	switch f := f.(type) {
	case *Primitive:
		return f.fn(args)
	case *Closure:
		return f.Call(args)
	}

	panic(fault.Evaluation("not applicable: %s", literal.String(f)))
}

// Bind defines each symbol in params in the scope s with the
// corresponding element of args. If params ends in a symbol rather than
// Null, that symbol is bound to the list of remaining arguments.
func Bind(params, args cell.I, s scope.I) {
	p, a := params, args

	for {
		switch {
		case p == pair.Null:
			if a != pair.Null {
				arity(params, args)
			}

			return
		case sym.Is(p):
			s.Define(sym.To(p).String(), a)

			return
		case !pair.Is(p):
			panic(fault.Syntax("malformed parameter list: %s",
				literal.String(params)))
		case !pair.Is(a):
			arity(params, args)
		}

		k := pair.Car(p)
		if !sym.Is(k) {
			panic(fault.Syntax("parameter is not a symbol: %s",
				literal.String(k)))
		}

		s.Define(sym.To(k).String(), pair.Car(a))

		p, a = pair.Cdr(p), pair.Cdr(a)
	}
}

func arity(params, args cell.I) {
	n := 0
	for ; pair.Is(params); params = pair.Cdr(params) {
		n++
	}

	s := validate.Count(n, "argument", "s")
	if params != pair.Null {
		s = "at least " + s
	}

	passed := 0
	for ; pair.Is(args); args = pair.Cdr(args) {
		passed++
	}

	panic(fault.Evaluation("expected %s, passed %d", s, passed))
}

// evalArgs evaluates each element of the operand list args, left to
// right, in the scope s, and returns a new list of the results.
func evalArgs(args cell.I, s scope.I) cell.I {
	if args == pair.Null {
		return pair.Null
	}

	var head, end cell.I

	for c := args; c != pair.Null; c = pair.Cdr(c) {
		if !pair.Is(c) {
			panic(fault.Syntax("improper argument list: %s",
				literal.String(args)))
		}

		p := pair.Cons(Evaluate(pair.Car(c), s), pair.Null)
		if end == nil {
			head = p
		} else {
			pair.SetCdr(end, p)
		}

		end = p
	}

	return head
}
