package ast

// Denote strips every Note wrapper from e, recursively, returning an
// equivalent Expr with no source-span metadata anywhere in the tree.
func Denote(e Expr) Expr {
	return rewrite(e, stripNote)
}

// ShallowDenote peels the Notes wrapping e at the top, however many are
// stacked there; it does not recurse into subexpressions.
func ShallowDenote(e Expr) Expr {
	for {
		n, ok := e.(*Note)
		if !ok {
			return e
		}
		e = n.Expr
	}
}

// Renote refreshes a no-note expression into a form that may later carry
// notes again. Denote/Renote share a payload type (Expr), so Renote is the
// identity: it exists to document caller intent (re-annotate with fresh
// source spans) at the boundary between the evaluated/normalized world and
// whatever re-attaches positions afterward.
func Renote(e Expr) Expr {
	return e
}

func stripNote(e Expr) Expr {
	if n, ok := e.(*Note); ok {
		return n.Expr
	}
	return e
}

// rewrite applies f to e and to every Expr-typed child, bottom-up, stripping
// Notes found along the way. It is written iteratively over the node
// constructors rather than via a Visitor since nothing outside this one
// function needs double dispatch over Expr.
func rewrite(e Expr, f func(Expr) Expr) Expr {
	if e == nil {
		return nil
	}
	rec := func(c Expr) Expr { return rewrite(c, f) }

	switch n := e.(type) {
	case Const, *Var, *Builtin, *BoolLit, *NaturalLit, *IntegerLit, *DoubleLit:
		return f(e)
	case *Lam:
		return f(&Lam{Name: n.Name, Type: rec(n.Type), Body: rec(n.Body)})
	case *Pi:
		return f(&Pi{Name: n.Name, Type: rec(n.Type), Body: rec(n.Body)})
	case *App:
		return f(&App{Fn: rec(n.Fn), Arg: rec(n.Arg)})
	case *Let:
		var ann Expr
		if n.Annotation != nil {
			ann = rec(n.Annotation)
		}
		return f(&Let{Name: n.Name, Annotation: ann, Value: rec(n.Value), Body: rec(n.Body)})
	case *Annot:
		return f(&Annot{Value: rec(n.Value), Type: rec(n.Type)})
	case *TextLit:
		chunks := make([]TextChunk, len(n.Chunks))
		for i, c := range n.Chunks {
			chunks[i] = TextChunk{Prefix: c.Prefix, Expr: rec(c.Expr)}
		}
		return f(&TextLit{Chunks: chunks, Suffix: n.Suffix})
	case *Some:
		return f(&Some{Value: rec(n.Value)})
	case *ListLit:
		var typ Expr
		if n.Type != nil {
			typ = rec(n.Type)
		}
		elems := make([]Expr, len(n.Elems))
		for i, el := range n.Elems {
			elems[i] = rec(el)
		}
		return f(&ListLit{Type: typ, Elems: elems})
	case *BoolBinop:
		return f(&BoolBinop{Op: n.Op, L: rec(n.L), R: rec(n.R)})
	case *If:
		return f(&If{Cond: rec(n.Cond), Then: rec(n.Then), Else: rec(n.Else)})
	case *NaturalBinop:
		return f(&NaturalBinop{Op: n.Op, L: rec(n.L), R: rec(n.R)})
	case *ListAppend:
		return f(&ListAppend{L: rec(n.L), R: rec(n.R)})
	case *TextAppend:
		return f(&TextAppend{L: rec(n.L), R: rec(n.R)})
	case *Assert:
		return f(&Assert{Annotation: rec(n.Annotation)})
	case *RecordType:
		return f(&RecordType{Fields: rewriteFields(n.Fields, rec)})
	case *RecordLit:
		return f(&RecordLit{Fields: rewriteFields(n.Fields, rec)})
	case *UnionType:
		return f(&UnionType{Alts: rewriteFieldsOptional(n.Alts, rec)})
	case *Combine:
		return f(&Combine{L: rec(n.L), R: rec(n.R)})
	case *CombineTypes:
		return f(&CombineTypes{L: rec(n.L), R: rec(n.R)})
	case *Prefer:
		return f(&Prefer{L: rec(n.L), R: rec(n.R)})
	case *RecordCompletion:
		return f(&RecordCompletion{Type: rec(n.Type), Value: rec(n.Value)})
	case *Merge:
		var ann Expr
		if n.Annotation != nil {
			ann = rec(n.Annotation)
		}
		return f(&Merge{Handlers: rec(n.Handlers), Union: rec(n.Union), Annotation: ann})
	case *ToMap:
		var ann Expr
		if n.Annotation != nil {
			ann = rec(n.Annotation)
		}
		return f(&ToMap{Record: rec(n.Record), Annotation: ann})
	case *FieldAccess:
		return f(&FieldAccess{Record: rec(n.Record), Label: n.Label})
	case *ProjectLabels:
		return f(&ProjectLabels{Record: rec(n.Record), Labels: n.Labels})
	case *ProjectType:
		return f(&ProjectType{Record: rec(n.Record), Type: rec(n.Type)})
	case *Note:
		return f(rec(n.Expr))
	case *ImportAlt:
		return f(&ImportAlt{L: rec(n.L), R: rec(n.R)})
	case *Embed:
		return f(e)
	default:
		return f(e)
	}
}

func rewriteFields(fs Fields, rec func(Expr) Expr) Fields {
	out := make(Fields, len(fs))
	for i, field := range fs {
		out[i] = Field{Label: field.Label, Value: rec(field.Value)}
	}
	return out
}

func rewriteFieldsOptional(fs Fields, rec func(Expr) Expr) Fields {
	out := make(Fields, len(fs))
	for i, field := range fs {
		var v Expr
		if field.Value != nil {
			v = rec(field.Value)
		}
		out[i] = Field{Label: field.Label, Value: v}
	}
	return out
}
