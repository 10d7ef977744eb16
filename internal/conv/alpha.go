package conv

import "github.com/vellum-lang/vellum/internal/ast"

// AlphaNormalize rewrites every binder's name to "_" and reindexes each Var
// reference to count across ALL enclosing binders (not just same-named
// ones, as the source's count-based indices do), so that α-equivalent
// normal forms serialize identically (spec.md §4.4). It operates directly
// on syntax, independently of evaluation.
func AlphaNormalize(e ast.Expr) ast.Expr {
	return alphaRec(e, nil)
}

// alphaRec mirrors ast.rewrite's per-constructor shape, except it threads a
// stack of original binder names (outermost first) instead of applying a
// uniform post-order function, since Var needs that stack to reindex.
func alphaRec(e ast.Expr, stack []string) ast.Expr {
	if e == nil {
		return nil
	}
	rec := func(c ast.Expr) ast.Expr { return alphaRec(c, stack) }

	switch n := e.(type) {
	case ast.Const, *ast.Builtin, *ast.BoolLit, *ast.NaturalLit, *ast.IntegerLit, *ast.DoubleLit:
		return e

	case *ast.Var:
		return &ast.Var{Name: "_", Index: alphaIndex(stack, n.Name, n.Index)}

	case *ast.Lam:
		return &ast.Lam{Name: "_", Type: rec(n.Type), Body: alphaRec(n.Body, push(stack, n.Name))}
	case *ast.Pi:
		return &ast.Pi{Name: "_", Type: rec(n.Type), Body: alphaRec(n.Body, push(stack, n.Name))}
	case *ast.App:
		return &ast.App{Fn: rec(n.Fn), Arg: rec(n.Arg)}
	case *ast.Let:
		var ann ast.Expr
		if n.Annotation != nil {
			ann = rec(n.Annotation)
		}
		return &ast.Let{Name: "_", Annotation: ann, Value: rec(n.Value), Body: alphaRec(n.Body, push(stack, n.Name))}
	case *ast.Annot:
		return &ast.Annot{Value: rec(n.Value), Type: rec(n.Type)}

	case *ast.TextLit:
		chunks := make([]ast.TextChunk, len(n.Chunks))
		for i, c := range n.Chunks {
			chunks[i] = ast.TextChunk{Prefix: c.Prefix, Expr: rec(c.Expr)}
		}
		return &ast.TextLit{Chunks: chunks, Suffix: n.Suffix}
	case *ast.Some:
		return &ast.Some{Value: rec(n.Value)}
	case *ast.ListLit:
		var typ ast.Expr
		if n.Type != nil {
			typ = rec(n.Type)
		}
		elems := make([]ast.Expr, len(n.Elems))
		for i, el := range n.Elems {
			elems[i] = rec(el)
		}
		return &ast.ListLit{Type: typ, Elems: elems}

	case *ast.BoolBinop:
		return &ast.BoolBinop{Op: n.Op, L: rec(n.L), R: rec(n.R)}
	case *ast.If:
		return &ast.If{Cond: rec(n.Cond), Then: rec(n.Then), Else: rec(n.Else)}
	case *ast.NaturalBinop:
		return &ast.NaturalBinop{Op: n.Op, L: rec(n.L), R: rec(n.R)}
	case *ast.ListAppend:
		return &ast.ListAppend{L: rec(n.L), R: rec(n.R)}
	case *ast.TextAppend:
		return &ast.TextAppend{L: rec(n.L), R: rec(n.R)}
	case *ast.Assert:
		return &ast.Assert{Annotation: rec(n.Annotation)}

	case *ast.RecordType:
		return &ast.RecordType{Fields: alphaFields(n.Fields, rec)}
	case *ast.RecordLit:
		return &ast.RecordLit{Fields: alphaFields(n.Fields, rec)}
	case *ast.UnionType:
		return &ast.UnionType{Alts: alphaFieldsOptional(n.Alts, rec)}
	case *ast.Combine:
		return &ast.Combine{L: rec(n.L), R: rec(n.R)}
	case *ast.CombineTypes:
		return &ast.CombineTypes{L: rec(n.L), R: rec(n.R)}
	case *ast.Prefer:
		return &ast.Prefer{L: rec(n.L), R: rec(n.R)}
	case *ast.RecordCompletion:
		return &ast.RecordCompletion{Type: rec(n.Type), Value: rec(n.Value)}
	case *ast.Merge:
		var ann ast.Expr
		if n.Annotation != nil {
			ann = rec(n.Annotation)
		}
		return &ast.Merge{Handlers: rec(n.Handlers), Union: rec(n.Union), Annotation: ann}
	case *ast.ToMap:
		var ann ast.Expr
		if n.Annotation != nil {
			ann = rec(n.Annotation)
		}
		return &ast.ToMap{Record: rec(n.Record), Annotation: ann}
	case *ast.FieldAccess:
		return &ast.FieldAccess{Record: rec(n.Record), Label: n.Label}
	case *ast.ProjectLabels:
		labels := make([]string, len(n.Labels))
		copy(labels, n.Labels)
		return &ast.ProjectLabels{Record: rec(n.Record), Labels: labels}
	case *ast.ProjectType:
		return &ast.ProjectType{Record: rec(n.Record), Type: rec(n.Type)}

	case *ast.Note:
		return rec(n.Expr)
	case *ast.ImportAlt:
		return &ast.ImportAlt{L: rec(n.L), R: rec(n.R)}
	case *ast.Embed:
		return e

	default:
		return e
	}
}

func push(stack []string, name string) []string {
	out := make([]string, len(stack)+1)
	copy(out, stack)
	out[len(stack)] = name
	return out
}

// alphaIndex converts a count-based (name, index) reference into a position
// counted across every enclosing binder. A reference whose index exceeds
// the number of same-named binders in stack is free; it's reindexed past
// the end of stack by however far it overshot, preserving its relative
// distance for any caller that wraps the result in more binders later.
func alphaIndex(stack []string, name string, index int) int {
	count := 0
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			if count == index {
				return len(stack) - 1 - i
			}
			count++
		}
	}
	return len(stack) + (index - count)
}

func alphaFields(fs ast.Fields, rec func(ast.Expr) ast.Expr) ast.Fields {
	out := make(ast.Fields, len(fs))
	for i, f := range fs {
		out[i] = ast.Field{Label: f.Label, Value: rec(f.Value)}
	}
	return out
}

func alphaFieldsOptional(fs ast.Fields, rec func(ast.Expr) ast.Expr) ast.Fields {
	out := make(ast.Fields, len(fs))
	for i, f := range fs {
		var v ast.Expr
		if f.Value != nil {
			v = rec(f.Value)
		}
		out[i] = ast.Field{Label: f.Label, Value: v}
	}
	return out
}
