package evaluator

import (
	"github.com/vellum-lang/vellum/internal/ast"
	"github.com/vellum-lang/vellum/internal/config"
)

// Eval is the evaluator's single dispatch point: untyped Expr syntax in,
// Val domain out. It mirrors funvibe-funxy's evalCore's shape — one big type
// switch over the syntax, environment threaded as an explicit parameter
// rather than a mutable receiver — generalized from funxy's dynamically
// typed Object result to vellum's Val domain.
func Eval(env *Env, e ast.Expr) Val {
	switch n := e.(type) {
	case ast.Const:
		return &VConst{Const: n}
	case *ast.Var:
		return Lookup(env, n.Name, n.Index)
	case *ast.Lam:
		return &VLam{Type: Eval(env, n.Type), Closure: &Closure{Name: n.Name, Env: env, Body: n.Body}}
	case *ast.Pi:
		return &VPi{Type: Eval(env, n.Type), Closure: &Closure{Name: n.Name, Env: env, Body: n.Body}}
	case *ast.App:
		return ApplyVal(env, Eval(env, n.Fn), Eval(env, n.Arg))
	case *ast.Let:
		v := Eval(env, n.Value)
		return Eval(Extend(env, n.Name, v), n.Body)
	case *ast.Annot:
		return Eval(env, n.Value)

	case *ast.BoolLit:
		return &VBool{Value: n.Value}
	case *ast.NaturalLit:
		return &VNatural{Value: n.Value}
	case *ast.IntegerLit:
		return &VInteger{Value: n.Value}
	case *ast.DoubleLit:
		return &VDouble{Value: n.Value}

	case *ast.TextLit:
		return evalTextLit(env, n)
	case *ast.Some:
		return &VSome{Value: Eval(env, n.Value)}
	case *ast.ListLit:
		return evalListLit(env, n)
	case *ast.Builtin:
		return evalBuiltinRef(n.Name)

	case *ast.BoolBinop:
		return reduceBoolBinop(env, n.Op, Eval(env, n.L), Eval(env, n.R))
	case *ast.If:
		return reduceIf(env, Eval(env, n.Cond), Eval(env, n.Then), Eval(env, n.Else))
	case *ast.NaturalBinop:
		return reduceNaturalBinop(n.Op, Eval(env, n.L), Eval(env, n.R))
	case *ast.ListAppend:
		return reduceListAppend(Eval(env, n.L), Eval(env, n.R))
	case *ast.TextAppend:
		return evalTextLit(env, desugarTextAppend(n))
	case *ast.Assert:
		return &VAssert{Annotation: Eval(env, n.Annotation)}

	case *ast.RecordType:
		return &VRecordType{Fields: evalFieldMap(env, n.Fields)}
	case *ast.RecordLit:
		return &VRecordLit{Fields: evalFieldMap(env, n.Fields)}
	case *ast.UnionType:
		return &VUnionType{Alts: evalAltMap(env, n.Alts)}
	case *ast.Combine:
		return reduceCombine(Eval(env, n.L), Eval(env, n.R))
	case *ast.CombineTypes:
		return reduceCombineTypes(Eval(env, n.L), Eval(env, n.R))
	case *ast.Prefer:
		return reducePrefer(env, Eval(env, n.L), Eval(env, n.R))
	case *ast.RecordCompletion:
		return evalRecordCompletion(env, Eval(env, n.Type), Eval(env, n.Value))
	case *ast.Merge:
		return reduceMerge(env, Eval(env, n.Handlers), Eval(env, n.Union))
	case *ast.ToMap:
		return reduceToMap(Eval(env, n.Record), evalOptional(env, n.Annotation))
	case *ast.FieldAccess:
		return reduceField(env, Eval(env, n.Record), n.Label)
	case *ast.ProjectLabels:
		return reduceProject(env, Eval(env, n.Record), n.Labels)
	case *ast.ProjectType:
		return reduceProjectType(env, Eval(env, n.Record), Eval(env, n.Type))

	case *ast.Note:
		return Eval(env, n.Expr)
	case *ast.ImportAlt:
		return Eval(env, n.L)
	case *ast.Embed:
		abort("Embed reached the evaluator: imports must be resolved before evaluation")
		return nil

	default:
		abort("Eval: unrecognized Expr node")
		return nil
	}
}

func evalBuiltinRef(name string) Val {
	if _, known := config.Builtins[name]; !known {
		abort("Eval: unknown builtin " + name)
	}
	return &VBuiltin{Name: name}
}

func evalFieldMap(env *Env, fields ast.Fields) FieldMap {
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Label: f.Label, Value: Eval(env, f.Value)}
	}
	return NewFieldMap(out)
}

func evalAltMap(env *Env, alts ast.Fields) FieldMap {
	out := make([]Field, len(alts))
	for i, f := range alts {
		var v Val
		if f.Value != nil {
			v = Eval(env, f.Value)
		}
		out[i] = Field{Label: f.Label, Value: v}
	}
	return NewFieldMap(out)
}

func evalListLit(env *Env, n *ast.ListLit) Val {
	elemT := Val(nil)
	if n.Type != nil {
		elemT = Eval(env, n.Type)
	}
	elems := make([]Val, len(n.Elems))
	for i, el := range n.Elems {
		elems[i] = Eval(env, el)
	}
	if elemT == nil && len(elems) > 0 {
		elemT = inferElemTypePlaceholder()
	}
	return &VList{Type: elemT, Elems: elems}
}

// inferElemTypePlaceholder stands in for "the type checker already recorded
// this list's element type on the annotation-free literal"; the evaluator
// never has to recover a real type here because spec.md's evaluator never
// inspects VList.Type except to carry it through Natural/build-style
// construction and quoting of an otherwise-empty list, both of which only
// ever see a literal with an explicit annotation in well-typed input.
func inferElemTypePlaceholder() Val {
	return &VConst{Const: ast.Type}
}

func evalOptional(env *Env, e ast.Expr) Val {
	if e == nil {
		return nil
	}
	return Eval(env, e)
}

func desugarTextAppend(n *ast.TextAppend) *ast.TextLit {
	return &ast.TextLit{
		Chunks: []ast.TextChunk{{Prefix: "", Expr: n.L}, {Prefix: "", Expr: n.R}},
		Suffix: "",
	}
}
