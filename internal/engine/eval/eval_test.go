package eval

import (
	"bytes"
	"errors"
	"testing"

	"github.com/michaelmacinnis/wasabi/internal/common/interface/cell"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/literal"
	"github.com/michaelmacinnis/wasabi/internal/common/interface/scope"
	"github.com/michaelmacinnis/wasabi/internal/common/struct/fault"
	"github.com/michaelmacinnis/wasabi/internal/common/type/env"
	"github.com/michaelmacinnis/wasabi/internal/engine/boot"
	"github.com/michaelmacinnis/wasabi/internal/reader"
)

func TestApply(t *testing.T) {
	h := setup(t)

	h.expect("(apply + '(1 2 3))", "6")
	h.expect("(apply (lambda (a b) (- a b)) '(5 3))", "2")
	h.fails("(apply if '(#t 1 2))", fault.ErrEvaluation)
}

func TestArity(t *testing.T) {
	h := setup(t)

	h.expect("(define (two a b) a)", "two")
	h.fails("(two 1)", fault.ErrEvaluation)
	h.fails("(two 1 2 3)", fault.ErrEvaluation)

	h.expect("(define (some a . rest) rest)", "some")
	h.fails("(some)", fault.ErrEvaluation)
	h.fails("(car 1 2)", fault.ErrEvaluation)
}

func TestBegin(t *testing.T) {
	h := setup(t)

	h.expect("(begin)", "#<undef>")
	h.expect("(begin 1 2 3)", "3")
	h.expect("(begin (define w 1) w)", "1")
	h.fails("w", fault.ErrEvaluation)
}

func TestCallerScopeArguments(t *testing.T) {
	h := setup(t)

	h.expect("(define x 7)", "x")
	h.expect("(define (adder x) (lambda (y) (+ x y)))", "adder")
	h.expect("((adder 1) x)", "8")
}

func TestClosureCapture(t *testing.T) {
	h := setup(t)

	h.expect("(define (make-adder n) (lambda (x) (+ x n)))", "make-adder")
	h.expect("(define add2 (make-adder 2))", "add2")
	h.expect("(define n 100)", "n")
	h.expect("(add2 3)", "5")

	h.expect("(define (counter) (begin (define c 0) (lambda () (set! c (+ c 1)))))", "counter")
	h.expect("(define tick (counter))", "tick")
	h.expect("(tick)", "1")
	h.expect("(tick)", "2")
}

func TestClosureDefineDoesNotLeak(t *testing.T) {
	h := setup(t)

	h.expect("(define (f) (define inner 1))", "f")
	h.expect("(f)", "inner")
	h.fails("inner", fault.ErrEvaluation)
}

func TestEndToEnd(t *testing.T) {
	h := setup(t)

	h.expect("(+ 1 2)", "3")
	h.expect("(define x 5) (+ x 1)", "6")
	h.expect("(car (quote (1 2 3)))", "1")
	h.expect("(define (square x) (* x x)) (square 5)", "25")
}

func TestIf(t *testing.T) {
	h := setup(t)

	h.expect("(if #t 1 2)", "1")
	h.expect("(if #f 1 2)", "2")
	h.expect("(if 0 1 2)", "2")
	h.expect("(if '() 1 2)", "2")
	h.expect("(if #f 1)", "#<undef>")
	h.fails("(if)", fault.ErrSyntax)
	h.fails("(if 1 2 3 4)", fault.ErrSyntax)
}

func TestLambda(t *testing.T) {
	h := setup(t)

	h.expect("((lambda args args) 1 2)", "(1 2)")
	h.expect("((lambda (a . rest) rest) 1 2 3)", "(2 3)")
	h.expect("((lambda (a . rest) rest) 1)", "()")
	h.fails("(lambda (1) 1)", fault.ErrSyntax)
	h.fails("(lambda (x) 1 2)", fault.ErrSyntax)
}

func TestMacro(t *testing.T) {
	h := setup(t)

	h.expect("(define-macro (my-quote x) `(quote ,x))", "#<undef>")
	h.expect("(my-quote (undefined symbols))", "(undefined symbols)")
	h.expect("(macroexpand (my-quote y))", "(quote y)")

	h.expect("(define-macro (swap! a b) `(begin (define tmp ,a) (set! ,a ,b) (set! ,b tmp)))", "#<undef>")
	h.expect("(define p 1) (define q 2) (swap! p q) (list p q)", "(2 1)")
	h.fails("tmp", fault.ErrEvaluation)

	h.expect("(let ((x 2) (y 3)) (* x y))", "6")

	h.expect("(define-macro unless (lambda (c a b) `(if ,c ,b ,a)))", "#<undef>")
	h.expect("(unless #f 1 2)", "1")
	h.fails("(define-macro bad 1)", fault.ErrEvaluation)
}

func TestNotCallable(t *testing.T) {
	h := setup(t)

	h.fails("(1 2)", fault.ErrEvaluation)
	h.fails(`("f")`, fault.ErrEvaluation)
	h.fails("(undefined-procedure 1)", fault.ErrEvaluation)
}

func TestQuasiquote(t *testing.T) {
	h := setup(t)

	h.expect("(define lst '(2 3))", "lst")
	h.expect("`(1 ,@lst 4)", "(1 2 3 4)")
	h.expect("`(1 ,(+ 1 1))", "(1 2)")
	h.expect("`(a . ,(+ 1 2))", "(a . 3)")
	h.expect("`(,@lst)", "(2 3)")
	h.expect("`(x ,@'() y)", "(x y)")
	h.expect("`x", "x")
	h.expect("lst", "(2 3)")
	h.fails("`(1 ,@2)", fault.ErrSyntax)
}

func TestQuote(t *testing.T) {
	h := setup(t)

	h.expect("'(1 . 2)", "(1 . 2)")
	h.expect("'sym", "sym")
	h.expect("(quote (a (b)))", "(a (b))")
	h.fails("(quote)", fault.ErrSyntax)
	h.fails("(quote 1 2)", fault.ErrSyntax)
}

func TestRecursion(t *testing.T) {
	h := setup(t)

	h.expect("(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))", "fact")
	h.expect("(fact 20)", "2432902008176640000")
	h.expect("(fact 25)", "15511210043330985984000000")
}

func TestSelfEvaluating(t *testing.T) {
	h := setup(t)

	h.expect(`"abc"`, `"abc"`)
	h.expect("1/2", "1/2")
	h.expect("2.5", "2.5")
	h.expect("#f", "#f")
	h.expect("car", "#<primitive car>")
	h.expect("if", "#<syntax if>")
}

func TestSet(t *testing.T) {
	h := setup(t)

	h.expect("(define z 1)", "z")
	h.expect("(set! z 2)", "2")
	h.expect("z", "2")
	h.fails("(set! undefined 1)", fault.ErrEvaluation)
	h.fails("undefined", fault.ErrEvaluation)
	h.fails("(set! 1 2)", fault.ErrSyntax)
}

func TestStandardLibrary(t *testing.T) {
	h := setup(t)

	h.expect("(map 1+ '(1 2 3))", "(2 3 4)")
	h.expect("(filter (lambda (x) (> x 1)) '(1 2 3))", "(2 3)")
	h.expect("(list 1 2 3)", "(1 2 3)")
	h.expect("(cadr '(1 2 3))", "2")
	h.expect("(cddr '(1 2 3))", "(3)")
	h.expect("(caar '((1) 2))", "1")
	h.expect("(cdar '((1 2) 3))", "(2)")
	h.expect("(1- 10)", "9")
	h.expect("(procedure? map)", "#t")
	h.expect("(procedure? let)", "#f")
}

type harness struct {
	out bytes.Buffer
	s   scope.I
	t   *testing.T
}

func setup(t *testing.T) *harness {
	h := &harness{s: env.New(nil), t: t}

	Actions(h.s, &h.out)

	if _, err := h.eval(boot.Script()); err != nil {
		t.Fatalf("boot: %v", err)
	}

	return h
}

func (h *harness) eval(src string) (v cell.I, err error) {
	for c, err := range reader.All("test", src) {
		if err != nil {
			return nil, err
		}

		v, err = Run(c, h.s)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (h *harness) expect(src, expected string) {
	h.t.Helper()

	v, err := h.eval(src)
	if err != nil {
		h.t.Fatalf("%s: unexpected error: %v", src, err)
	}

	if a := literal.String(v); a != expected {
		h.t.Fatalf("%s: expected %s; got %s", src, expected, a)
	}
}

func (h *harness) fails(src string, kind error) {
	h.t.Helper()

	_, err := h.eval(src)
	if !errors.Is(err, kind) {
		h.t.Fatalf("%s: expected %v; got %v", src, kind, err)
	}
}
