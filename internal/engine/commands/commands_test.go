package commands

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/boolean"
	"github.com/michaelmacinnis/wasabi/internal/common/type/list"
	"github.com/michaelmacinnis/wasabi/internal/common/type/num"
	"github.com/michaelmacinnis/wasabi/internal/common/type/pair"
	"github.com/michaelmacinnis/wasabi/internal/common/type/str"
	"github.com/michaelmacinnis/wasabi/internal/common/type/sym"
)

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.expect("3", "+", i(1), i(2))
	h.expect("0", "+")
	h.expect("1", "*")
	h.expect("24", "*", i(2), i(3), i(4))
	h.expect("-5", "-", i(5))
	h.expect("5", "-", i(10), i(3), i(2))
	h.expect("1/2", "/", i(2))
	h.expect("2", "/", i(6), i(3))
	h.expect("1/3", "/", i(1), i(3))
	h.expect("1", "+", num.BigRat(big.NewRat(1, 2)), num.BigRat(big.NewRat(1, 2)))
	h.expect("3.0", "*", num.Float(1.5), i(2))
	h.expect("4+4i", "+", num.Cmplx(complex(3, 4)), i(1))
	h.expect("#t", "mod", i(9), i(3))
	h.expect("#f", "mod", i(9), i(2))
	h.expect("1", "remainder", i(7), i(3))

	h.fails(fault.ErrEvaluation, "/", i(1), i(0))
	h.fails(fault.ErrEvaluation, "-")
	h.fails(fault.ErrEvaluation, "+", i(1), str.New("2"))
}

func TestEquality(t *testing.T) {
	h := setup(t)

	a := sym.New("a")

	h.expect("#t", "eq?", a, sym.New("a"))
	h.expect("#t", "eq?", i(1), i(1))
	h.expect("#f", "eq?", i(1), num.Float(1))
	h.expect("#t", "eq?", pair.Null, pair.Null)
	h.expect("#f", "eq?", list.New(i(1)), list.New(i(1)))
	h.expect("#f", "eq?", str.New("s"), str.New("s"))

	h.expect("#t", "equal?", list.New(i(1), list.New(a)), list.New(i(1), list.New(a)))
	h.expect("#t", "equal?", str.New("s"), str.New("s"))
	h.expect("#f", "equal?", list.New(i(1)), list.New(i(2)))
}

func TestLists(t *testing.T) {
	h := setup(t)

	h.expect("(1)", "cons", i(1))
	h.expect("(1 . 2)", "cons", i(1), i(2))
	h.expect("1", "car", list.New(i(1), i(2)))
	h.expect("(2)", "cdr", list.New(i(1), i(2)))
	h.expect("3", "length", list.New(i(1), i(2), i(3)))
	h.expect("()", "append")
	h.expect("(1 2 3 4)", "append", list.New(i(1)), list.New(i(2)), list.New(i(3), i(4)))
	h.expect("(1 . 2)", "append", list.New(i(1)), i(2))
	h.expect("(2 1)", "reverse", list.New(i(1), i(2)))
	h.expect("b", "list-ref", list.New(sym.New("a"), sym.New("b")), i(1))

	h.fails(fault.ErrEvaluation, "car", pair.Null)
	h.fails(fault.ErrEvaluation, "car", i(1))
	h.fails(fault.ErrEvaluation, "length", pair.Cons(i(1), i(2)))
	h.fails(fault.ErrEvaluation, "append", pair.Cons(i(1), i(2)), pair.Null)
	h.fails(fault.ErrEvaluation, "list-ref", list.New(i(1)), i(1))
	h.fails(fault.ErrEvaluation, "list-ref", list.New(i(1)), i(-1))
}

func TestLogical(t *testing.T) {
	h := setup(t)

	h.expect("#f", "not", boolean.True)
	h.expect("#t", "not", boolean.False)
	h.expect("#t", "not", i(0))
	h.expect("#t", "not", pair.Null)
}

func TestMatch(t *testing.T) {
	h := setup(t)

	h.expect("#t", "match", str.New("*.go"), str.New("main.go"))
	h.expect("#t", "match", str.New("a?c"), sym.New("abc"))
	h.expect("#f", "match", str.New("*.go"), str.New("main.c"))
	h.fails(fault.ErrEvaluation, "match", str.New("[a"), str.New("a"))
}

func TestMutation(t *testing.T) {
	h := setup(t)

	p := list.New(i(1), i(2))

	h.expect("#<undef>", "set-car!", p, i(3))
	h.expect("#<undef>", "set-cdr!", p, pair.Null)

	if s := literal.String(p); s != "(3)" {
		t.Fatalf("expected (3); got %s", s)
	}
}

func TestOutput(t *testing.T) {
	h := setup(t)

	h.expect("#<undef>", "display", str.New("hi"))
	h.expect("#<undef>", "newline")
	h.expect("#<undef>", "display", list.New(str.New("a"), i(1)))

	if s := h.out.String(); s != "hi\n(a 1)" {
		t.Fatalf("unexpected output %q", s)
	}
}

func TestPredicates(t *testing.T) {
	h := setup(t)

	h.expect("#t", "pair?", list.New(i(1)))
	h.expect("#f", "pair?", pair.Null)
	h.expect("#t", "null?", pair.Null)
	h.expect("#f", "null?", i(0))
	h.expect("#t", "atom?", pair.Null)
	h.expect("#f", "atom?", list.New(i(1)))
	h.expect("#t", "symbol?", sym.New("a"))
	h.expect("#f", "symbol?", str.New("a"))
	h.expect("#t", "string?", str.New("a"))
	h.expect("#t", "number?", num.Cmplx(1i))
	h.expect("#f", "number?", sym.New("1"))
	h.expect("#t", "boolean?", boolean.False)
	h.expect("#f", "boolean?", pair.Null)
}

func TestQuit(t *testing.T) {
	h := setup(t)

	h.fails(fault.ErrExit, "exit")
	h.fails(fault.ErrExit, "quit")
}

func TestRelational(t *testing.T) {
	h := setup(t)

	h.expect("#t", "<", i(1), i(2), i(3))
	h.expect("#f", "<", i(1), i(3), i(2))
	h.expect("#t", ">=", i(3), i(3), i(1))
	h.expect("#t", ">", num.Float(2.5), num.BigRat(big.NewRat(5, 3)))
	h.expect("#t", "<=", i(1), i(1))
	h.expect("#t", "=", i(1), num.Float(1))
	h.expect("#t", "=", num.Cmplx(1i), num.Cmplx(1i))

	h.fails(fault.ErrEvaluation, "<", i(1))
	h.fails(fault.ErrEvaluation, "<", num.Cmplx(1i), i(1))
	h.fails(fault.ErrEvaluation, "<", i(2), i(1), sym.New("x"))
}

func TestStrings(t *testing.T) {
	h := setup(t)

	h.expect(`"ab"`, "string-append", str.New("a"), str.New("b"))
	h.expect(`""`, "string-append")
	h.expect(`"x"`, "symbol->string", sym.New("x"))
	h.expect("y", "string->symbol", str.New("y"))
	h.expect(`"1/2"`, "number->string", num.BigRat(big.NewRat(1, 2)))

	h.fails(fault.ErrEvaluation, "symbol->string", str.New("x"))
}

type harness struct {
	fns map[string]func(cell.I) cell.I
	out bytes.Buffer
	t   *testing.T
}

func setup(t *testing.T) *harness {
	h := &harness{t: t}
	h.fns = Functions(&h.out)

	return h
}

func (h *harness) call(name string, args ...cell.I) (v cell.I, err error) {
	defer fault.Recover(&err)

	return h.fns[name](list.New(args...)), nil
}

func (h *harness) expect(expected, name string, args ...cell.I) {
	h.t.Helper()

	v, err := h.call(name, args...)
	if err != nil {
		h.t.Fatalf("%s: unexpected error: %v", name, err)
	}

	if a := literal.String(v); a != expected {
		h.t.Fatalf("%s: expected %s; got %s", name, expected, a)
	}
}

func (h *harness) fails(kind error, name string, args ...cell.I) {
	h.t.Helper()

	_, err := h.call(name, args...)
	if !errors.Is(err, kind) {
		h.t.Fatalf("%s: expected %v; got %v", name, kind, err)
	}
}

func i(n int64) cell.I {
	return num.NewInt(n)
}
