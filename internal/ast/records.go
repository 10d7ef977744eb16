package ast

// Field is one label/expression pair of a record or union source form.
// Value is nil for a nullary union alternative (a constructor carrying no
// argument).
type Field struct {
	Label string
	Value Expr
}

// Fields is a record or union's label map in source order. Unlike the
// semantic domain's FieldMap (internal/evaluator), source Fields need not be
// sorted — invariant 3 (spec.md §3) only binds the evaluated Val form.
type Fields []Field

// Get returns the first field with the given label, if any.
func (fs Fields) Get(label string) (Expr, bool) {
	for _, f := range fs {
		if f.Label == label {
			return f.Value, true
		}
	}
	return nil, false
}

// RecordType is `{ label : Type, ... }`.
type RecordType struct {
	Fields Fields
}

func (*RecordType) exprNode() {}

// RecordLit is `{ label = value, ... }`.
type RecordLit struct {
	Fields Fields
}

func (*RecordLit) exprNode() {}

// UnionType is `< Label : Type | Label | ... >`; a Field with a nil Value is
// a nullary alternative.
type UnionType struct {
	Alts Fields
}

func (*UnionType) exprNode() {}

// Combine is the recursive record merge operator (∧).
type Combine struct {
	L, R Expr
}

func (*Combine) exprNode() {}

// CombineTypes is the recursive record-type merge operator (⩓).
type CombineTypes struct {
	L, R Expr
}

func (*CombineTypes) exprNode() {}

// Prefer is the right-biased shallow merge operator (⫽).
type Prefer struct {
	L, R Expr
}

func (*Prefer) exprNode() {}

// RecordCompletion is `T::r`, sugar for `(T.default ⫽ r) : T.Type`.
type RecordCompletion struct {
	Type  Expr
	Value Expr
}

func (*RecordCompletion) exprNode() {}

// Merge is `merge Handlers Union [: Annotation]`. Annotation may be nil.
type Merge struct {
	Handlers   Expr
	Union      Expr
	Annotation Expr
}

func (*Merge) exprNode() {}

// ToMap is `toMap Record [: Annotation]`. Annotation may be nil.
type ToMap struct {
	Record     Expr
	Annotation Expr
}

func (*ToMap) exprNode() {}

// FieldAccess is `Record.Label`.
type FieldAccess struct {
	Record Expr
	Label  string
}

func (*FieldAccess) exprNode() {}

// ProjectLabels is `Record.{ Labels... }`.
type ProjectLabels struct {
	Record Expr
	Labels []string
}

func (*ProjectLabels) exprNode() {}

// ProjectType is `Record.(Type)`, projecting by the field set of Type's
// evaluated record type rather than an explicit label list.
type ProjectType struct {
	Record Expr
	Type   Expr
}

func (*ProjectType) exprNode() {}
