package env

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/num"
	"github.com/michaelmacinnis/wasabi/internal/common/type/str"
)

func TestDefineShadows(t *testing.T) {
	global := New(nil)
	global.Define("x", num.NewInt(1))

	inner := New(global)
	inner.Define("x", num.NewInt(2))

	if !num.Equal(inner.Resolve("x"), num.NewInt(2)) {
		t.Fatal("inner binding should shadow outer binding")
	}

	if !num.Equal(global.Resolve("x"), num.NewInt(1)) {
		t.Fatal("define should not change the enclosing env")
	}
}

func TestLookupWalksOutward(t *testing.T) {
	global := New(nil)
	global.Define("x", str.New("outer"))

	inner := New(New(global))

	if r := inner.Lookup("x"); r == nil || r.Get().(*str.T).String() != "outer" {
		t.Fatal("expected to find x in the global env")
	}

	if inner.Lookup("y") != nil {
		t.Fatal("expected y to be unbound")
	}

	if inner.Enclosing().Enclosing() != global {
		t.Fatal("expected the chain to end at the global env")
	}
}

func TestResolveUnbound(t *testing.T) {
	defer func() {
		err := fault.From(recover())
		if !errors.Is(err, fault.ErrEvaluation) {
			t.Fatalf("expected an evaluation error; got %v", err)
		}
	}()

	New(nil).Resolve("missing")
}

func TestSetNearest(t *testing.T) {
	global := New(nil)
	global.Define("x", num.NewInt(1))

	middle := New(global)
	middle.Define("x", num.NewInt(2))

	inner := New(middle)
	inner.Set("x", num.NewInt(3))

	if !num.Equal(middle.Resolve("x"), num.NewInt(3)) {
		t.Fatal("set should change the nearest binding")
	}

	if !num.Equal(global.Resolve("x"), num.NewInt(1)) {
		t.Fatal("set should not change bindings further out")
	}

	if inner.Lookup("x") != middle.Lookup("x") {
		t.Fatal("set should not create a binding in the inner env")
	}
}

func TestSetUnbound(t *testing.T) {
	e := New(nil)

	defer func() {
		err := fault.From(recover())
		if !errors.Is(err, fault.ErrEvaluation) {
			t.Fatalf("expected an evaluation error; got %v", err)
		}

		if e.Lookup("y") != nil {
			t.Fatal("set should not create a binding")
		}
	}()

	e.Set("y", num.NewInt(1))
}
