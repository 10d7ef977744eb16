package conv

import (
	"github.com/vellum-lang/vellum/internal/ast"
	"github.com/vellum-lang/vellum/internal/evaluator"
)

// Quote reifies v into a β-normal Expr under the naming context names
// (spec.md §4.4). Every binder case mints a fresh rigid variable via
// evaluator.Instantiate/ApplyVal rather than substituting syntactically, so
// quoting never has to deal with capture.
func Quote(names *Names, v evaluator.Val) ast.Expr {
	switch x := v.(type) {
	case *evaluator.VConst:
		return x.Const

	case *evaluator.VVar:
		return &ast.Var{Name: x.Name, Index: CountNames(names, x.Name) - x.Index - 1}

	case *evaluator.VBuiltin:
		return &ast.Builtin{Name: x.Name}

	case *evaluator.VBool:
		return &ast.BoolLit{Value: x.Value}
	case *evaluator.VNatural:
		return &ast.NaturalLit{Value: x.Value}
	case *evaluator.VInteger:
		return &ast.IntegerLit{Value: x.Value}
	case *evaluator.VDouble:
		return &ast.DoubleLit{Value: x.Value}

	case *evaluator.VTextLit:
		chunks := make([]ast.TextChunk, len(x.Chunks))
		for i, c := range x.Chunks {
			chunks[i] = ast.TextChunk{Prefix: c.Prefix, Expr: Quote(names, c.Val)}
		}
		return &ast.TextLit{Chunks: chunks, Suffix: x.Suffix}

	case *evaluator.VSome:
		return &ast.Some{Value: Quote(names, x.Value)}
	case *evaluator.VNone:
		return &ast.App{Fn: &ast.Builtin{Name: "None"}, Arg: Quote(names, x.Type)}

	case *evaluator.VList:
		elems := make([]ast.Expr, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = Quote(names, e)
		}
		var typ ast.Expr
		if len(elems) == 0 {
			typ = Quote(names, x.Type)
		}
		return &ast.ListLit{Type: typ, Elems: elems}

	case *evaluator.VLam:
		return quoteLambda(names, x.Closure.Name, x.Type, func(fresh evaluator.Val) evaluator.Val {
			return evaluator.Instantiate(x.Closure, fresh)
		})
	case *evaluator.VPi:
		return quotePi(names, x.Closure.Name, x.Type, func(fresh evaluator.Val) evaluator.Val {
			return evaluator.Instantiate(x.Closure, fresh)
		})

	case *evaluator.VHLam:
		return quoteHLam(names, x)

	case *evaluator.VApp:
		if evaluator.IsPrimVar(x.Arg) {
			return Quote(names, x.Fn)
		}
		return &ast.App{Fn: Quote(names, x.Fn), Arg: Quote(names, x.Arg)}

	case *evaluator.VIf:
		return &ast.If{Cond: Quote(names, x.Cond), Then: Quote(names, x.Then), Else: Quote(names, x.Else)}
	case *evaluator.VBoolBinop:
		return &ast.BoolBinop{Op: x.Op, L: Quote(names, x.L), R: Quote(names, x.R)}
	case *evaluator.VNaturalBinop:
		return &ast.NaturalBinop{Op: x.Op, L: Quote(names, x.L), R: Quote(names, x.R)}
	case *evaluator.VListAppend:
		return &ast.ListAppend{L: Quote(names, x.L), R: Quote(names, x.R)}
	case *evaluator.VAssert:
		return &ast.Assert{Annotation: Quote(names, x.Annotation)}

	case *evaluator.VRecordType:
		return &ast.RecordType{Fields: quoteFields(names, x.Fields)}
	case *evaluator.VRecordLit:
		return &ast.RecordLit{Fields: quoteFields(names, x.Fields)}
	case *evaluator.VUnionType:
		return &ast.UnionType{Alts: quoteFields(names, x.Alts)}
	case *evaluator.VInject:
		union := &ast.UnionType{Alts: quoteFields(names, x.Alts)}
		field := &ast.FieldAccess{Record: union, Label: x.Label}
		if x.Value == nil || evaluator.IsPrimVar(x.Value) {
			return field
		}
		return &ast.App{Fn: field, Arg: Quote(names, x.Value)}

	case *evaluator.VCombine:
		return &ast.Combine{L: Quote(names, x.L), R: Quote(names, x.R)}
	case *evaluator.VCombineTypes:
		return &ast.CombineTypes{L: Quote(names, x.L), R: Quote(names, x.R)}
	case *evaluator.VPrefer:
		return &ast.Prefer{L: Quote(names, x.L), R: Quote(names, x.R)}
	case *evaluator.VMerge:
		return &ast.Merge{Handlers: Quote(names, x.Handlers), Union: Quote(names, x.Union)}
	case *evaluator.VToMap:
		return &ast.ToMap{Record: Quote(names, x.Record)}
	case *evaluator.VField:
		return &ast.FieldAccess{Record: Quote(names, x.Record), Label: x.Label}
	case *evaluator.VProject:
		labels := make([]string, len(x.Labels))
		copy(labels, x.Labels)
		return &ast.ProjectLabels{Record: Quote(names, x.Record), Labels: labels}

	default:
		panic("conv.Quote: unrecognized Val constructor")
	}
}

// quoteLambda and quotePi share the binder-descent shape: mint a fresh
// rigid variable at the name's current level, instantiate the body with
// it, and recurse under one more Names frame.
func quoteLambda(names *Names, name string, typ evaluator.Val, instantiate func(evaluator.Val) evaluator.Val) ast.Expr {
	level := CountNames(names, name)
	fresh := &evaluator.VVar{Name: name, Index: level}
	body := instantiate(fresh)
	return &ast.Lam{Name: name, Type: Quote(names, typ), Body: Quote(Bind(names, name), body)}
}

func quotePi(names *Names, name string, typ evaluator.Val, instantiate func(evaluator.Val) evaluator.Val) ast.Expr {
	level := CountNames(names, name)
	fresh := &evaluator.VVar{Name: name, Index: level}
	body := instantiate(fresh)
	return &ast.Pi{Name: name, Type: Quote(names, typ), Body: Quote(Bind(names, name), body)}
}

// quoteHLam dispatches on a host closure's reconstruction hint. Typed
// closures (natSuccAdder and its List/Optional analogues) quote back as an
// ordinary λ. Prim closures have no source-level binder to reconstruct at
// all — a union constructor awaiting its argument, for instance, is "a
// primitive awaiting one argument" whose normal form is the field access
// itself, not an eta-long lambda — so quoting probes the closure with
// evaluator.PrimVar and quotes whatever comes back, relying on each Val
// case that can receive PrimVar as an argument (VApp, VInject) to drop the
// sentinel rather than try to quote it.
func quoteHLam(names *Names, h *evaluator.VHLam) ast.Expr {
	if t, ok := h.Info.(evaluator.Typed); ok {
		return quoteLambda(names, t.Name, t.Type, h.Fn)
	}
	return Quote(names, h.Fn(evaluator.PrimVar))
}

func quoteFields(names *Names, fields evaluator.FieldMap) ast.Fields {
	out := make(ast.Fields, len(fields))
	for i, f := range fields {
		var v ast.Expr
		if f.Value != nil {
			v = Quote(names, f.Value)
		}
		out[i] = ast.Field{Label: f.Label, Value: v}
	}
	return out
}
