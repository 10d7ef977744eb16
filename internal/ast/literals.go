package ast

import "math/big"

// BoolLit is a literal True/False value.
type BoolLit struct {
	Value bool
}

func (*BoolLit) exprNode() {}

// NaturalLit is an unsigned arbitrary-precision literal.
type NaturalLit struct {
	Value *big.Int
}

func (*NaturalLit) exprNode() {}

// IntegerLit is a signed arbitrary-precision literal.
type IntegerLit struct {
	Value *big.Int
}

func (*IntegerLit) exprNode() {}

// DoubleLit is an IEEE-754 binary64 literal.
type DoubleLit struct {
	Value DhallDouble
}

func (*DoubleLit) exprNode() {}

// TextChunk is one splice point in a text literal: the literal text before
// an embedded expression. Expr is always evaluated; literal text after the
// last splice belongs in TextLit.Suffix, not in a chunk of its own.
type TextChunk struct {
	Prefix string
	Expr   Expr
}

// TextLit is a text literal interleaving literal runs with embedded
// expressions: Chunks holds every (prefix, expr) splice pair and Suffix is
// the trailing literal text after the last splice.
type TextLit struct {
	Chunks []TextChunk
	Suffix string
}

func (*TextLit) exprNode() {}

// Some is the Optional constructor wrapping a present value. Unlike the
// other builtins (see Builtin), Some carries no arity in the builtin table
// (spec.md §6 lists it without one) because it is always applied to exactly
// one argument in source syntax, so it gets its own node like Dhall's own
// AST rather than living in the arity-tracked Builtin dispatch.
type Some struct {
	Value Expr
}

func (*Some) exprNode() {}

// ListLit is a list literal `[e1, e2, ...]`. Type is the element type
// annotation and is required when Elems is empty (an empty list carries no
// element to infer a type from) and optional otherwise.
type ListLit struct {
	Type  Expr // nil when Elems is non-empty and the type is left to inference
	Elems []Expr
}

func (*ListLit) exprNode() {}
