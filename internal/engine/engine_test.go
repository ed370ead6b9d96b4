package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/sym"
)

func TestEvaluate(t *testing.T) {
	e := setup(t, nil)

	v, err := e.Evaluate(sym.New("map"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := v.Name(); s != "closure" {
		t.Fatalf("expected map to be a closure; got %s", s)
	}

	if e.Scope().Lookup("let") == nil {
		t.Fatal("expected let to be defined")
	}
}

func TestFreshScopes(t *testing.T) {
	a := setup(t, nil)
	b := setup(t, nil)

	if _, err := a.Load("a", "(define only-a 1)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := b.Load("b", "only-a"); !errors.Is(err, fault.ErrEvaluation) {
		t.Fatalf("expected an evaluation error; got %v", err)
	}
}

func TestLoad(t *testing.T) {
	var out bytes.Buffer

	e := setup(t, &out)

	v, err := e.Load("test", `
(define (greet name) (string-append "hello, " name))
(display (greet "wasabi"))
(newline)
(let ((x 3) (y 4)) (+ (* x x) (* y y)))
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := literal.String(v); s != "25" {
		t.Fatalf("expected 25; got %s", s)
	}

	if s := out.String(); s != "hello, wasabi\n" {
		t.Fatalf("unexpected output %q", s)
	}
}

func TestLoadEmpty(t *testing.T) {
	e := setup(t, nil)

	v, err := e.Load("empty", "  \n")
	if err != nil || v != nil {
		t.Fatalf("expected nothing; got %v, %v", v, err)
	}
}

func TestLoadStopsAtFirstError(t *testing.T) {
	e := setup(t, nil)

	_, err := e.Load("test", "(define a 1) (car 1) (define b 2)")
	if !errors.Is(err, fault.ErrEvaluation) {
		t.Fatalf("expected an evaluation error; got %v", err)
	}

	if e.Scope().Lookup("a") == nil || e.Scope().Lookup("b") != nil {
		t.Fatal("expected evaluation to stop at the first error")
	}

	_, err = e.Load("test", "(define c 1) (car")
	if !errors.Is(err, fault.ErrIncomplete) {
		t.Fatalf("expected incomplete input; got %v", err)
	}
}

func TestLoadExit(t *testing.T) {
	e := setup(t, nil)

	_, err := e.Load("test", "(exit) (define after 1)")
	if !errors.Is(err, fault.ErrExit) {
		t.Fatalf("expected exit; got %v", err)
	}

	if e.Scope().Lookup("after") != nil {
		t.Fatal("expected evaluation to stop at exit")
	}
}

func setup(t *testing.T, out *bytes.Buffer) *T {
	t.Helper()

	if out == nil {
		out = &bytes.Buffer{}
	}

	e, err := New(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return e
}
