package evaluator

import "github.com/vellum-lang/vellum/internal/ast"

// Closure is a syntactic closure: an unevaluated body paired with the
// environment it was captured in and the name its bound variable had in
// source. instantiate (env.go) evaluates Body under Env extended by one more
// binding for Name.
type Closure struct {
	Name string
	Env  *Env
	Body ast.Expr
}

// HLamInfo tags a VHLam with enough information for conv/quote to recover a
// presentable form without re-running its native function blindly. Every
// host closure vellum constructs falls into one of these categories; see
// DESIGN.md for why build/fold fusion and Natural/subtract 0 are detected by
// inspecting the evaluated VApp spine directly rather than by dispatching on
// these tags at quote time — Typed and Prim remain the two tags quote
// actually dispatches on.
type HLamInfo interface {
	hlamInfo()
}

// Prim marks a host closure with no reconstructable source form: quoting it
// probes with PrimVar and quotes whatever comes back, per the generic rule.
// The union field constructor built by reduceField uses this tag, since its
// normal form awaiting one argument is the field access itself (spec.md
// §4.3/§4.4), not an eta-long lambda over its payload type.
type Prim struct{}

func (Prim) hlamInfo() {}

// Typed marks a host closure that should quote as an ordinary λ: quoting
// instantiates it with a fresh rigid variable named Name (of type Type) and
// emits Lam Name Type (quote body), exactly like a VLam. Used for the
// successor adder (Natural/build), list-cons prepender (List/build), and
// Optional wrapper (Optional/build) helper closures.
type Typed struct {
	Name string
	Type Val
}

func (Typed) hlamInfo() {}

// NaturalFoldCl, ListFoldCl, OptionalFoldCl tag a partially applied fold
// builtin, recording its folded argument. No evaluator rule constructs them:
// Natural/build, List/build and Optional/build detect a partially applied
// fold by inspecting its VApp spine (builtinSpine in apply.go).
type NaturalFoldCl struct{ Arg Val }

func (NaturalFoldCl) hlamInfo() {}

type ListFoldCl struct{ Arg Val }

func (ListFoldCl) hlamInfo() {}

type OptionalFoldCl struct{ Arg Val }

func (OptionalFoldCl) hlamInfo() {}

// NaturalSubtractZero tags Natural/subtract applied to a literal zero first
// argument: the resulting function is definitionally the identity on its
// second argument (subtract(0, m) ≡ m for every m, not just literal m). No
// evaluator rule constructs it: `Natural/subtract 0` stays a stuck VApp
// spine below arity and quotes back as itself through the VApp case.
type NaturalSubtractZero struct{}

func (NaturalSubtractZero) hlamInfo() {}
