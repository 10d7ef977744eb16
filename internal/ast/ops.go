package ast

// BoolOp is one of the four boolean binary operators.
type BoolOp int

const (
	BoolAnd BoolOp = iota
	BoolOr
	BoolEQ
	BoolNE
)

// BoolBinop is an infix boolean operator application (&&, ||, ==, !=).
type BoolBinop struct {
	Op   BoolOp
	L, R Expr
}

func (*BoolBinop) exprNode() {}

// If is `if Cond then Then else Else`.
type If struct {
	Cond, Then, Else Expr
}

func (*If) exprNode() {}

// NaturalOp distinguishes Natural's two ring operators.
type NaturalOp int

const (
	NaturalPlus NaturalOp = iota
	NaturalTimes
)

// NaturalBinop is a Natural arithmetic operator application (+, *).
type NaturalBinop struct {
	Op   NaturalOp
	L, R Expr
}

func (*NaturalBinop) exprNode() {}

// ListAppend is list concatenation (#).
type ListAppend struct {
	L, R Expr
}

func (*ListAppend) exprNode() {}

// TextAppend is text concatenation (++). The evaluator desugars this into a
// two-chunk TextLit (spec.md §4.3).
type TextAppend struct {
	L, R Expr
}

func (*TextAppend) exprNode() {}

// Assert is `assert : Annotation`. The type checker is responsible for
// verifying Annotation has the form `a ≡ b` with `a` and `b` judgmentally
// equal; the core only evaluates the annotation and wraps the result.
type Assert struct {
	Annotation Expr
}

func (*Assert) exprNode() {}
