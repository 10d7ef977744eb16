package ast

import "github.com/vellum-lang/vellum/internal/token"

// Note attaches source-span metadata to an expression. Evaluation ignores
// Range entirely (spec.md §4.1); it exists purely for external diagnostics.
type Note struct {
	Range token.Range
	Expr  Expr
}

func (*Note) exprNode() {}

// ImportAlt is `a ? b`. Evaluation always returns the evaluation of L; R is
// the fallback the external import layer would have used had L failed to
// resolve, and is never reached once the tree reaches this core.
type ImportAlt struct {
	L, R Expr
}

func (*ImportAlt) exprNode() {}

// Embed is a leaf holding an already-resolved external value, parameterized
// by an abstract payload the core never interprets (the import subsystem's
// concern). Go's sum-type-via-interface encoding can't carry a generic type
// parameter into the Expr interface itself, so the payload is any; callers
// that construct Embed nodes know the concrete type they put in.
type Embed struct {
	Value any
}

func (*Embed) exprNode() {}
