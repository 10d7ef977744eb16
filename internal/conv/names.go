// Package conv reifies the evaluator's semantic Val domain back into
// β-normal Expr syntax (Quote) and performs syntax-level α-normalization,
// mirroring internal/evaluator's structure case-for-case (spec.md §2).
package conv

// Names is the quoting-time counterpart of evaluator.Env: a snoc-list that
// tracks only the names bound on the way down to the current position, not
// their values, since quoting only needs enough context to mint
// non-shadowing fresh rigid variables and to compute count-based indices.
type Names struct {
	parent *Names
	name   string
}

// Bind extends names with one more binder named name.
func Bind(names *Names, name string) *Names {
	return &Names{parent: names, name: name}
}

// CountNames is the total number of frames bound to name anywhere in names,
// used both to mint a fresh rigid variable's level before binding it and to
// recover a bound occurrence's count-based index afterward.
func CountNames(names *Names, name string) int {
	n := 0
	for f := names; f != nil; f = f.parent {
		if f.name == name {
			n++
		}
	}
	return n
}
