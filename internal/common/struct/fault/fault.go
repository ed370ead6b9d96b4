// Released under an MIT license. See LICENSE.

// Package fault provides the errors raised while reading and evaluating wasabi.
//
// Inside the reader and evaluator a fault is raised with panic. The public
// entry points convert it to an error with Recover. Every fault matches
// exactly one of ErrSyntax or ErrEvaluation under errors.Is.
package fault

import (
	"errors"
	"fmt"
	"runtime"
)

//nolint:gochecknoglobals
var (
	// ErrSyntax marks malformed input and malformed special forms.
	ErrSyntax = errors.New("syntax error")

	// ErrEvaluation marks failures while evaluating well-formed input.
	ErrEvaluation = errors.New("evaluation error")

	// ErrIncomplete marks syntax errors caused by input ending too soon.
	ErrIncomplete = errors.New("incomplete input")

	// ErrExit marks a request, from the program, to stop.
	ErrExit = errors.New("exit")
)

// T (fault) is a syntax or evaluation error.
type T struct {
	kind   error
	detail error
	msg    string
}

type fault = T

// Evaluation creates an evaluation fault.
func Evaluation(format string, a ...interface{}) *fault {
	return &fault{kind: ErrEvaluation, msg: fmt.Sprintf(format, a...)}
}

// Exit creates the fault used to request that the program stop.
func Exit() *fault {
	return &fault{kind: ErrEvaluation, detail: ErrExit, msg: "exit requested"}
}

// Incomplete creates a syntax fault for input that ended too soon.
func Incomplete(format string, a ...interface{}) *fault {
	return &fault{
		kind:   ErrSyntax,
		detail: ErrIncomplete,
		msg:    fmt.Sprintf(format, a...),
	}
}

// Syntax creates a syntax fault.
func Syntax(format string, a ...interface{}) *fault {
	return &fault{kind: ErrSyntax, msg: fmt.Sprintf(format, a...)}
}

// Error returns the message for the fault f.
func (f *fault) Error() string {
	return f.kind.Error() + ": " + f.msg
}

// Is reports whether target is the fault's kind or detail.
func (f *fault) Is(target error) bool {
	return target == f.kind || (f.detail != nil && target == f.detail)
}

// Recover converts a panic into an error stored in err.
// It must be called directly by a deferred function.
//
// Faults are stored as is. Other panic values (the string panics raised
// by cell conversions, errors, Go runtime errors) become evaluation faults.
// Anything else is re-panicked.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	*err = From(r)
}

// From converts a recovered panic value into a fault.
func From(r interface{}) error {
	switch r := r.(type) {
	case *fault:
		return r
	case runtime.Error:
		return Evaluation("%s", r.Error())
	case error:
		return &fault{kind: ErrEvaluation, detail: r, msg: r.Error()}
	case string:
		return Evaluation("%s", r)
	case fmt.Stringer:
		return Evaluation("%s", r.String())
	}

	panic(r)
}
