// Package vellum exposes the evaluation core's two public composite
// operations (spec.md §2): Normalize and JudgmentallyEqual. Both are the
// only recover() sites for the InternalInconsistency panics raised deep
// inside internal/evaluator and internal/conv — everywhere else in the core
// is free to panic() on an impossible shape rather than thread an error
// return through every reduction rule.
package vellum

import (
	"errors"
	"fmt"

	"github.com/vellum-lang/vellum/internal/ast"
	"github.com/vellum-lang/vellum/internal/config"
	"github.com/vellum-lang/vellum/internal/conv"
	"github.com/vellum-lang/vellum/internal/evaluator"
)

// ErrInternalInconsistency is the sentinel every InternalInconsistency
// panic gets wrapped in; callers can errors.Is against it.
var ErrInternalInconsistency = errors.New(config.InternalErrorMessage)

// internalError pairs the sentinel with the specific shape that triggered
// it, so %v / %s still surfaces useful detail while errors.Is(err,
// ErrInternalInconsistency) keeps working.
type internalError struct {
	detail string
}

func (e *internalError) Error() string {
	return fmt.Sprintf("%s: %s", config.InternalErrorMessage, e.detail)
}

func (e *internalError) Unwrap() error {
	return ErrInternalInconsistency
}

// Normalize implements normalize(e) = renote ∘ quote(Empty) ∘ eval(Empty) ∘
// denote (spec.md §4.4): it reduces e to a value and reifies that value
// back to β-normal syntax.
func Normalize(e ast.Expr) (result ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			if msg, ok := evaluator.AsInternalInconsistency(r); ok {
				result, err = nil, &internalError{detail: msg}
				return
			}
			panic(r)
		}
	}()

	denoted := ast.Denote(e)
	val := evaluator.Eval(nil, denoted)
	quoted := conv.Quote(nil, val)
	return ast.Renote(quoted), nil
}

// JudgmentallyEqual decides whether a and b are definitionally equal by
// evaluating both under the empty environment and comparing the resulting
// values with Conv (spec.md §4.4), rather than by normalizing and comparing
// syntax — this avoids paying quoting's cost when the two sides diverge
// early.
func JudgmentallyEqual(a, b ast.Expr) (equal bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if msg, ok := evaluator.AsInternalInconsistency(r); ok {
				equal, err = false, &internalError{detail: msg}
				return
			}
			panic(r)
		}
	}()

	av := evaluator.Eval(nil, ast.Denote(a))
	bv := evaluator.Eval(nil, ast.Denote(b))
	return evaluator.Conv(nil, av, bv), nil
}
