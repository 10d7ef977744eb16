// Package token carries the source-span metadata attached to syntax by the
// external parser. The evaluation core never inspects it; it only round-trips
// it through Note wrappers (see ast.Note).
package token

import "fmt"

// Position is a single point in source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a half-open source span [Begin, End).
type Range struct {
	Begin Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Begin, r.End)
}
