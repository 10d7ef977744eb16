// Package evaluator is the semantic domain and normalization-by-evaluation
// core: Val (the value domain), Env (the evaluation environment), Eval (the
// big eval dispatch), and the builtin reduction rules. It plays the role
// funvibe-funxy's internal/evaluator plays for its own Object/Environment/Eval
// triple, generalized from a dynamically-typed scripting object model to
// vellum's typed closures-and-values domain.
package evaluator

import (
	"math/big"

	"github.com/vellum-lang/vellum/internal/ast"
)

// Val is the sealed sum type of every value the evaluator produces. Nothing
// outside this package and internal/conv dispatches on it, so — as with
// ast.Expr — there is no Visitor, only type switches.
type Val interface {
	valNode()
}

// VConst is an evaluated universe constant (Type, Kind, Sort).
type VConst struct {
	Const ast.Const
}

func (*VConst) valNode() {}

// VVar is a rigid variable: a binder introduced during conversion or quoting
// that has no further reduction available, identified by name plus the
// count of same-named binders enclosing it (outermost first). Free variables
// that never resolved against any enclosing Skip/Extend frame are also
// represented this way, distinguished only by context (conv/quote never
// manufacture one out of thin air; they only arise from ast.Var lookups or
// from countEnv-driven freshening).
type VVar struct {
	Name  string
	Index int
}

func (*VVar) valNode() {}

// PrimVar is the distinguished probe value used to introspect host closures
// during quoting: applying a host closure to PrimVar and quoting the result
// recovers its un-beta-expanded form, because conv.Quote's VApp and VInject
// cases drop an argument or payload that is exactly this sentinel. It never appears in program
// output.
var PrimVar Val = &primVar{}

type primVar struct{}

func (*primVar) valNode() {}

// IsPrimVar reports whether v is the PrimVar sentinel.
func IsPrimVar(v Val) bool {
	_, ok := v.(*primVar)
	return ok
}

// VLam is an evaluated λ-abstraction: a syntactic closure over the binder's
// annotated type and unevaluated body.
type VLam struct {
	Type    Val
	Closure *Closure
}

func (*VLam) valNode() {}

// VPi is an evaluated dependent function type.
type VPi struct {
	Type    Val
	Closure *Closure
}

func (*VPi) valNode() {}

// VApp is a stuck application: a function value that could not reduce
// further applied to an argument. Builtins awaiting more arguments than they
// currently have are represented as a spine of these rooted at a VBuiltin,
// rather than as partially-applied host closures — see DESIGN.md for why
// that representation was chosen over per-builtin tagged closures.
type VApp struct {
	Fn, Arg Val
}

func (*VApp) valNode() {}

// VHLam is a host closure: a function implemented as native Go code rather
// than an AST body. Used for the small set of helper functions the
// Natural/build, List/build and Optional/build reductions synthesize (the
// successor adder, list-cons prepender, Optional wrapper) — see
// internal/evaluator/natural.go, list.go, optional.go — and for the union
// alternative constructor reduceField builds in record.go.
type VHLam struct {
	Info HLamInfo
	Fn   func(Val) Val
}

func (*VHLam) valNode() {}

// VBuiltin is an unsaturated reference to a named builtin: either a
// primitive type (Bool, Natural, ...) which fires no reduction rule (List
// and Optional applied to an element type stay a VApp spine), or a
// function builtin that has not yet accumulated enough arguments (via a
// VApp spine) to fire its reduction rule.
type VBuiltin struct {
	Name string
}

func (*VBuiltin) valNode() {}

// VBool, VNatural, VInteger, VDouble, VText are literal values.
type VBool struct{ Value bool }

func (*VBool) valNode() {}

type VNatural struct{ Value *big.Int }

func (*VNatural) valNode() {}

type VInteger struct{ Value *big.Int }

func (*VInteger) valNode() {}

type VDouble struct{ Value ast.DhallDouble }

func (*VDouble) valNode() {}

// VTextChunk is one splice of a text value: literal Prefix followed by an
// unreduced Val (always set; literal text after the last splice is
// VTextLit.Suffix).
type VTextChunk struct {
	Prefix string
	Val    Val
}

// VTextLit is an evaluated text literal. A VTextLit with no chunks and an
// empty suffix is the empty string; one with zero chunks and a non-empty
// suffix is a closed literal with no splices.
type VTextLit struct {
	Chunks []VTextChunk
	Suffix string
}

func (*VTextLit) valNode() {}

// VSome and VNone are the two Optional constructors.
type VSome struct{ Value Val }

func (*VSome) valNode() {}

type VNone struct{ Type Val }

func (*VNone) valNode() {}

// VList is a literal list value; Type is the element type (needed even for
// an empty list, which otherwise carries no element to infer it from).
type VList struct {
	Type Val
	Elems []Val
}

func (*VList) valNode() {}

// VIf is a stuck conditional (Cond did not reduce to a VBool literal).
type VIf struct {
	Cond, Then, Else Val
}

func (*VIf) valNode() {}

// VBoolBinop and VNaturalBinop are stuck binary operator applications.
type VBoolBinop struct {
	Op   ast.BoolOp
	L, R Val
}

func (*VBoolBinop) valNode() {}

type VNaturalBinop struct {
	Op   ast.NaturalOp
	L, R Val
}

func (*VNaturalBinop) valNode() {}

// VListAppend is a stuck list concatenation.
type VListAppend struct {
	L, R Val
}

func (*VListAppend) valNode() {}

// VAssert wraps the evaluated annotation of an `assert : a ≡ b`. The core
// never checks the equality itself (that is the type checker's job); it
// only evaluates the annotation through.
type VAssert struct {
	Annotation Val
}

func (*VAssert) valNode() {}

// Field is one label/value pair of an evaluated record or union. FieldMap
// slices are always kept sorted by Label (invariant 3): construction goes
// through NewFieldMap / the builders in record.go and union.go, never raw
// slice literals, so the sort is enforced in exactly one place.
type Field struct {
	Label string
	Value Val // nil for a nullary union alternative
}

// FieldMap is a label-sorted slice of Fields supporting binary-search
// lookup, the Val-domain counterpart of ast.Fields (which is insertion
// ordered, since invariant 3 does not bind source syntax).
type FieldMap []Field

// VRecordType, VRecordLit, VUnionType are the evaluated record/union forms.
type VRecordType struct{ Fields FieldMap }

func (*VRecordType) valNode() {}

type VRecordLit struct{ Fields FieldMap }

func (*VRecordLit) valNode() {}

type VUnionType struct{ Alts FieldMap }

func (*VUnionType) valNode() {}

// VInject is an evaluated union constructor application: alternative Label
// of union type Alts, carrying Value (nil for a nullary alternative).
type VInject struct {
	Alts  FieldMap
	Label string
	Value Val
}

func (*VInject) valNode() {}

// VCombine, VCombineTypes, VPrefer are stuck record-merge operators.
type VCombine struct{ L, R Val }

func (*VCombine) valNode() {}

type VCombineTypes struct{ L, R Val }

func (*VCombineTypes) valNode() {}

type VPrefer struct{ L, R Val }

func (*VPrefer) valNode() {}

// VMerge is a stuck `merge` (Handlers did not reduce to a VRecordLit, or
// Union did not reduce to a VInject, VSome or VNone).
type VMerge struct {
	Handlers, Union Val
}

func (*VMerge) valNode() {}

// VToMap is a stuck `toMap` (Record did not reduce to a VRecordLit).
type VToMap struct {
	Record Val
}

func (*VToMap) valNode() {}

// VField is a stuck field access.
type VField struct {
	Record Val
	Label  string
}

func (*VField) valNode() {}

// VProject is a stuck record projection by an explicit label set.
type VProject struct {
	Record Val
	Labels []string
}

func (*VProject) valNode() {}
