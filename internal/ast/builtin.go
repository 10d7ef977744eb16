package ast

// Builtin is every named primitive from spec.md §6 other than the
// universe constants (Const) and Some (its own node, see literals.go):
// the primitive types (Bool, Natural, Integer, Double, Text, List,
// Optional), None, and the X/method functions (Natural/fold, List/build,
// ...). One node type for all of them, dispatched by Name against
// internal/config.Builtins, mirrors funvibe-funxy's own
// name-keyed-map-of-builtins convention instead of one Expr constructor
// per primitive.
type Builtin struct {
	Name string
}

func (*Builtin) exprNode() {}
