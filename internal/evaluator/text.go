package evaluator

import (
	"fmt"
	"strings"

	"github.com/vellum-lang/vellum/internal/ast"
)

// evalTextLit evaluates a text literal's splices and flattens any splice
// that itself evaluated to a text literal inline (spec.md §4.3), so nested
// interpolation never shows up in a normal form. A literal that collapses
// to a single empty-prefix, empty-suffix splice is returned as that
// splice's value directly rather than re-wrapped, since `"${x}"` and `x`
// are definitionally equal at Text type.
func evalTextLit(env *Env, n *ast.TextLit) Val {
	var chunks []VTextChunk
	buf := ""
	for _, c := range n.Chunks {
		buf += c.Prefix
		v := Eval(env, c.Expr)
		if vt, ok := v.(*VTextLit); ok {
			if len(vt.Chunks) == 0 {
				buf += vt.Suffix
				continue
			}
			chunks = append(chunks, VTextChunk{Prefix: buf + vt.Chunks[0].Prefix, Val: vt.Chunks[0].Val})
			chunks = append(chunks, vt.Chunks[1:]...)
			buf = vt.Suffix
			continue
		}
		chunks = append(chunks, VTextChunk{Prefix: buf, Val: v})
		buf = ""
	}
	buf += n.Suffix

	if len(chunks) == 1 && chunks[0].Prefix == "" && buf == "" {
		return chunks[0].Val
	}
	return &VTextLit{Chunks: chunks, Suffix: buf}
}

// reduceTextShow implements Text/show's escaping rules (spec.md §6):
// quote the literal, escape '"', '$', '\\', the named control codes, and
// every other codepoint at or below U+001F as \uXXXX.
func reduceTextShow(_ *Env, args []Val) Val {
	t, ok := args[0].(*VTextLit)
	if !ok || len(t.Chunks) != 0 {
		return stuckBuiltin("Text/show", args)
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range t.Suffix {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString("\\u0024")
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r <= 0x1F {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return textLitOf(b.String())
}
