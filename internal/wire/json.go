// Package wire is the interchange boundary vellum needs because its parser
// is external (spec.md §1): Expr has to be able to arrive and leave over a
// wire. EncodeJSON/DecodeJSON give every Expr variant a discriminated-union
// JSON encoding (tag field "tag"), standing in for "the tree shape the
// external parser produces"; ExportYAML and ExportStructpb give a
// normalized Val two outbound-only encodings for downstream tooling,
// grounded on funvibe-funxy's builtins_yaml.go inferFromYaml run in the
// opposite direction (decode becomes encode).
package wire

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/vellum-lang/vellum/internal/ast"
)

// node is the wire shape every Expr variant marshals through: a
// discriminator plus whichever of these fields that tag uses. Leaving most
// fields absent keeps the JSON close to what a hand-written parser would
// emit for that node kind.
type node struct {
	Tag string `json:"tag"`

	Name  string `json:"name,omitempty"`
	Index *int   `json:"index,omitempty"`

	Type *node `json:"type,omitempty"`
	Body *node `json:"body,omitempty"`
	Fn   *node `json:"fn,omitempty"`
	Arg  *node `json:"arg,omitempty"`

	Annotation *node `json:"annotation,omitempty"`
	Value      *node `json:"value,omitempty"`

	Bool    *bool   `json:"bool,omitempty"`
	Natural *string `json:"natural,omitempty"`
	Integer *string `json:"integer,omitempty"`
	Double  *float64 `json:"double,omitempty"`

	Chunks []chunkNode `json:"chunks,omitempty"`
	Suffix *string     `json:"suffix,omitempty"`

	Elems []*node `json:"elems,omitempty"`

	Op *int `json:"op,omitempty"`

	Cond *node `json:"cond,omitempty"`
	Then *node `json:"then,omitempty"`
	Else *node `json:"else,omitempty"`
	L    *node `json:"l,omitempty"`
	R    *node `json:"r,omitempty"`

	Fields []fieldNode `json:"fields,omitempty"`

	Record  *node    `json:"record,omitempty"`
	Handlers *node   `json:"handlers,omitempty"`
	Union    *node   `json:"union,omitempty"`
	Label    string  `json:"label,omitempty"`
	Labels   []string `json:"labels,omitempty"`
}

type chunkNode struct {
	Prefix string `json:"prefix"`
	Expr   *node  `json:"expr,omitempty"`
}

type fieldNode struct {
	Label string `json:"label"`
	Value *node  `json:"value,omitempty"`
}

// EncodeJSON serializes e into vellum's wire form.
func EncodeJSON(e ast.Expr) ([]byte, error) {
	n, err := encode(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

// DecodeJSON parses vellum's wire form back into an Expr.
func DecodeJSON(data []byte) (ast.Expr, error) {
	var n node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	return decode(&n)
}

func encode(e ast.Expr) (*node, error) {
	if e == nil {
		return nil, nil
	}
	switch n := e.(type) {
	case ast.Const:
		return &node{Tag: "const", Name: n.String()}, nil
	case *ast.Var:
		idx := n.Index
		return &node{Tag: "var", Name: n.Name, Index: &idx}, nil
	case *ast.Lam:
		typ, err := encode(n.Type)
		if err != nil {
			return nil, err
		}
		body, err := encode(n.Body)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "lam", Name: n.Name, Type: typ, Body: body}, nil
	case *ast.Pi:
		typ, err := encode(n.Type)
		if err != nil {
			return nil, err
		}
		body, err := encode(n.Body)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "pi", Name: n.Name, Type: typ, Body: body}, nil
	case *ast.App:
		fn, err := encode(n.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := encode(n.Arg)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "app", Fn: fn, Arg: arg}, nil
	case *ast.Let:
		ann, err := encode(n.Annotation)
		if err != nil {
			return nil, err
		}
		val, err := encode(n.Value)
		if err != nil {
			return nil, err
		}
		body, err := encode(n.Body)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "let", Name: n.Name, Annotation: ann, Value: val, Body: body}, nil
	case *ast.Annot:
		val, err := encode(n.Value)
		if err != nil {
			return nil, err
		}
		typ, err := encode(n.Type)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "annot", Value: val, Type: typ}, nil

	case *ast.BoolLit:
		b := n.Value
		return &node{Tag: "boolLit", Bool: &b}, nil
	case *ast.NaturalLit:
		s := n.Value.String()
		return &node{Tag: "naturalLit", Natural: &s}, nil
	case *ast.IntegerLit:
		s := n.Value.String()
		return &node{Tag: "integerLit", Integer: &s}, nil
	case *ast.DoubleLit:
		d := n.Value.Value
		return &node{Tag: "doubleLit", Double: &d}, nil

	case *ast.TextLit:
		chunks := make([]chunkNode, len(n.Chunks))
		for i, c := range n.Chunks {
			ce, err := encode(c.Expr)
			if err != nil {
				return nil, err
			}
			chunks[i] = chunkNode{Prefix: c.Prefix, Expr: ce}
		}
		suffix := n.Suffix
		return &node{Tag: "textLit", Chunks: chunks, Suffix: &suffix}, nil
	case *ast.Some:
		v, err := encode(n.Value)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "some", Value: v}, nil
	case *ast.ListLit:
		typ, err := encode(n.Type)
		if err != nil {
			return nil, err
		}
		elems := make([]*node, len(n.Elems))
		for i, el := range n.Elems {
			en, err := encode(el)
			if err != nil {
				return nil, err
			}
			elems[i] = en
		}
		return &node{Tag: "listLit", Type: typ, Elems: elems}, nil
	case *ast.Builtin:
		return &node{Tag: "builtin", Name: n.Name}, nil

	case *ast.BoolBinop:
		l, r, err := encodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		op := int(n.Op)
		return &node{Tag: "boolBinop", Op: &op, L: l, R: r}, nil
	case *ast.If:
		cond, err := encode(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := encode(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := encode(n.Else)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "if", Cond: cond, Then: then, Else: els}, nil
	case *ast.NaturalBinop:
		l, r, err := encodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		op := int(n.Op)
		return &node{Tag: "naturalBinop", Op: &op, L: l, R: r}, nil
	case *ast.ListAppend:
		l, r, err := encodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "listAppend", L: l, R: r}, nil
	case *ast.TextAppend:
		l, r, err := encodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "textAppend", L: l, R: r}, nil
	case *ast.Assert:
		ann, err := encode(n.Annotation)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "assert", Annotation: ann}, nil

	case *ast.RecordType:
		fs, err := encodeFields(n.Fields)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "recordType", Fields: fs}, nil
	case *ast.RecordLit:
		fs, err := encodeFields(n.Fields)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "recordLit", Fields: fs}, nil
	case *ast.UnionType:
		fs, err := encodeFields(n.Alts)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "unionType", Fields: fs}, nil
	case *ast.Combine:
		l, r, err := encodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "combine", L: l, R: r}, nil
	case *ast.CombineTypes:
		l, r, err := encodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "combineTypes", L: l, R: r}, nil
	case *ast.Prefer:
		l, r, err := encodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "prefer", L: l, R: r}, nil
	case *ast.RecordCompletion:
		typ, err := encode(n.Type)
		if err != nil {
			return nil, err
		}
		val, err := encode(n.Value)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "recordCompletion", Type: typ, Value: val}, nil
	case *ast.Merge:
		h, err := encode(n.Handlers)
		if err != nil {
			return nil, err
		}
		u, err := encode(n.Union)
		if err != nil {
			return nil, err
		}
		ann, err := encode(n.Annotation)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "merge", Handlers: h, Union: u, Annotation: ann}, nil
	case *ast.ToMap:
		rec, err := encode(n.Record)
		if err != nil {
			return nil, err
		}
		ann, err := encode(n.Annotation)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "toMap", Record: rec, Annotation: ann}, nil
	case *ast.FieldAccess:
		rec, err := encode(n.Record)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "fieldAccess", Record: rec, Label: n.Label}, nil
	case *ast.ProjectLabels:
		rec, err := encode(n.Record)
		if err != nil {
			return nil, err
		}
		labels := make([]string, len(n.Labels))
		copy(labels, n.Labels)
		return &node{Tag: "projectLabels", Record: rec, Labels: labels}, nil
	case *ast.ProjectType:
		rec, typ, err := encodePair(n.Record, n.Type)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "projectType", Record: rec, Type: typ}, nil

	case *ast.Note:
		return encode(n.Expr)
	case *ast.ImportAlt:
		l, r, err := encodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &node{Tag: "importAlt", L: l, R: r}, nil
	case *ast.Embed:
		return nil, fmt.Errorf("wire: cannot encode an unresolved Embed leaf; imports must be resolved first")

	default:
		return nil, fmt.Errorf("wire: unrecognized Expr %T", e)
	}
}

func encodePair(a, b ast.Expr) (*node, *node, error) {
	an, err := encode(a)
	if err != nil {
		return nil, nil, err
	}
	bn, err := encode(b)
	if err != nil {
		return nil, nil, err
	}
	return an, bn, nil
}

func encodeFields(fs ast.Fields) ([]fieldNode, error) {
	out := make([]fieldNode, len(fs))
	for i, f := range fs {
		v, err := encode(f.Value)
		if err != nil {
			return nil, err
		}
		out[i] = fieldNode{Label: f.Label, Value: v}
	}
	return out, nil
}

func decode(n *node) (ast.Expr, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Tag {
	case "const":
		switch n.Name {
		case "Type":
			return ast.Type, nil
		case "Kind":
			return ast.Kind, nil
		case "Sort":
			return ast.Sort, nil
		}
		return nil, fmt.Errorf("wire: unrecognized const %q", n.Name)
	case "var":
		return &ast.Var{Name: n.Name, Index: derefInt(n.Index)}, nil
	case "lam":
		typ, body, err := decodePair(n.Type, n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.Lam{Name: n.Name, Type: typ, Body: body}, nil
	case "pi":
		typ, body, err := decodePair(n.Type, n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.Pi{Name: n.Name, Type: typ, Body: body}, nil
	case "app":
		fn, arg, err := decodePair(n.Fn, n.Arg)
		if err != nil {
			return nil, err
		}
		return &ast.App{Fn: fn, Arg: arg}, nil
	case "let":
		ann, err := decode(n.Annotation)
		if err != nil {
			return nil, err
		}
		val, err := decode(n.Value)
		if err != nil {
			return nil, err
		}
		body, err := decode(n.Body)
		if err != nil {
			return nil, err
		}
		return &ast.Let{Name: n.Name, Annotation: ann, Value: val, Body: body}, nil
	case "annot":
		val, typ, err := decodePair(n.Value, n.Type)
		if err != nil {
			return nil, err
		}
		return &ast.Annot{Value: val, Type: typ}, nil

	case "boolLit":
		return &ast.BoolLit{Value: derefBool(n.Bool)}, nil
	case "naturalLit":
		v, ok := new(big.Int).SetString(derefStr(n.Natural), 10)
		if !ok {
			return nil, fmt.Errorf("wire: bad natural literal %q", derefStr(n.Natural))
		}
		return &ast.NaturalLit{Value: v}, nil
	case "integerLit":
		v, ok := new(big.Int).SetString(derefStr(n.Integer), 10)
		if !ok {
			return nil, fmt.Errorf("wire: bad integer literal %q", derefStr(n.Integer))
		}
		return &ast.IntegerLit{Value: v}, nil
	case "doubleLit":
		return &ast.DoubleLit{Value: ast.DhallDouble{Value: derefFloat(n.Double)}}, nil

	case "textLit":
		chunks := make([]ast.TextChunk, len(n.Chunks))
		for i, c := range n.Chunks {
			e, err := decode(c.Expr)
			if err != nil {
				return nil, err
			}
			chunks[i] = ast.TextChunk{Prefix: c.Prefix, Expr: e}
		}
		return &ast.TextLit{Chunks: chunks, Suffix: derefStr(n.Suffix)}, nil
	case "some":
		v, err := decode(n.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Some{Value: v}, nil
	case "listLit":
		typ, err := decode(n.Type)
		if err != nil {
			return nil, err
		}
		elems := make([]ast.Expr, len(n.Elems))
		for i, el := range n.Elems {
			e, err := decode(el)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return &ast.ListLit{Type: typ, Elems: elems}, nil
	case "builtin":
		return &ast.Builtin{Name: n.Name}, nil

	case "boolBinop":
		l, r, err := decodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &ast.BoolBinop{Op: ast.BoolOp(derefInt(n.Op)), L: l, R: r}, nil
	case "if":
		cond, err := decode(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decode(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := decode(n.Else)
		if err != nil {
			return nil, err
		}
		return &ast.If{Cond: cond, Then: then, Else: els}, nil
	case "naturalBinop":
		l, r, err := decodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &ast.NaturalBinop{Op: ast.NaturalOp(derefInt(n.Op)), L: l, R: r}, nil
	case "listAppend":
		l, r, err := decodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &ast.ListAppend{L: l, R: r}, nil
	case "textAppend":
		l, r, err := decodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &ast.TextAppend{L: l, R: r}, nil
	case "assert":
		ann, err := decode(n.Annotation)
		if err != nil {
			return nil, err
		}
		return &ast.Assert{Annotation: ann}, nil

	case "recordType":
		fs, err := decodeFields(n.Fields)
		if err != nil {
			return nil, err
		}
		return &ast.RecordType{Fields: fs}, nil
	case "recordLit":
		fs, err := decodeFields(n.Fields)
		if err != nil {
			return nil, err
		}
		return &ast.RecordLit{Fields: fs}, nil
	case "unionType":
		fs, err := decodeFieldsOptional(n.Fields)
		if err != nil {
			return nil, err
		}
		return &ast.UnionType{Alts: fs}, nil
	case "combine":
		l, r, err := decodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &ast.Combine{L: l, R: r}, nil
	case "combineTypes":
		l, r, err := decodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &ast.CombineTypes{L: l, R: r}, nil
	case "prefer":
		l, r, err := decodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &ast.Prefer{L: l, R: r}, nil
	case "recordCompletion":
		typ, val, err := decodePair(n.Type, n.Value)
		if err != nil {
			return nil, err
		}
		return &ast.RecordCompletion{Type: typ, Value: val}, nil
	case "merge":
		h, err := decode(n.Handlers)
		if err != nil {
			return nil, err
		}
		u, err := decode(n.Union)
		if err != nil {
			return nil, err
		}
		ann, err := decode(n.Annotation)
		if err != nil {
			return nil, err
		}
		return &ast.Merge{Handlers: h, Union: u, Annotation: ann}, nil
	case "toMap":
		rec, err := decode(n.Record)
		if err != nil {
			return nil, err
		}
		ann, err := decode(n.Annotation)
		if err != nil {
			return nil, err
		}
		return &ast.ToMap{Record: rec, Annotation: ann}, nil
	case "fieldAccess":
		rec, err := decode(n.Record)
		if err != nil {
			return nil, err
		}
		return &ast.FieldAccess{Record: rec, Label: n.Label}, nil
	case "projectLabels":
		rec, err := decode(n.Record)
		if err != nil {
			return nil, err
		}
		labels := make([]string, len(n.Labels))
		copy(labels, n.Labels)
		return &ast.ProjectLabels{Record: rec, Labels: labels}, nil
	case "projectType":
		rec, typ, err := decodePair(n.Record, n.Type)
		if err != nil {
			return nil, err
		}
		return &ast.ProjectType{Record: rec, Type: typ}, nil
	case "importAlt":
		l, r, err := decodePair(n.L, n.R)
		if err != nil {
			return nil, err
		}
		return &ast.ImportAlt{L: l, R: r}, nil

	default:
		return nil, fmt.Errorf("wire: unrecognized tag %q", n.Tag)
	}
}

func decodePair(a, b *node) (ast.Expr, ast.Expr, error) {
	ae, err := decode(a)
	if err != nil {
		return nil, nil, err
	}
	be, err := decode(b)
	if err != nil {
		return nil, nil, err
	}
	return ae, be, nil
}

func decodeFields(fs []fieldNode) (ast.Fields, error) {
	out := make(ast.Fields, len(fs))
	for i, f := range fs {
		v, err := decode(f.Value)
		if err != nil {
			return nil, err
		}
		out[i] = ast.Field{Label: f.Label, Value: v}
	}
	return out, nil
}

func decodeFieldsOptional(fs []fieldNode) (ast.Fields, error) {
	return decodeFields(fs)
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefFloat(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
