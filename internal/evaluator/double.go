package evaluator

import (
	"strconv"

	"github.com/vellum-lang/vellum/internal/ast"
)

func doubleOf(f float64) ast.DhallDouble {
	return ast.DhallDouble{Value: f}
}

// reduceDoubleShow renders a literal double using Go's shortest round-trip
// decimal form, appending the ".0" the language's grammar requires for an
// integral double so it can't be re-read back as an Integer.
func reduceDoubleShow(_ *Env, args []Val) Val {
	d, ok := args[0].(*VDouble)
	if !ok {
		return stuckBuiltin("Double/show", args)
	}
	s := strconv.FormatFloat(d.Value.Value, 'g', -1, 64)
	if !hasExponentOrDot(s) {
		s += ".0"
	}
	return textLitOf(s)
}

func hasExponentOrDot(s string) bool {
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' || r == 'n' || r == 'N' {
			return true
		}
	}
	return false
}
