package conv

import "github.com/vellum-lang/vellum/internal/evaluator"

// Equal is a thin facade over evaluator.Conv so callers outside the
// evaluator package (internal/vellum) don't need to import evaluator
// directly just to decide judgmental equality of two already-evaluated
// values; Conv itself has to live in the evaluator package since several of
// its own reduction rules call it.
func Equal(env *evaluator.Env, a, b evaluator.Val) bool {
	return evaluator.Conv(env, a, b)
}
