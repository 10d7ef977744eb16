package evaluator

import "github.com/vellum-lang/vellum/internal/ast"

// reduceBoolBinop implements And/Or/EQ/NE's head-reduction rules (spec.md
// §4.3 Booleans): literal identities and absorptions first, then the
// convertible-arguments collapse, otherwise stuck.
func reduceBoolBinop(env *Env, op ast.BoolOp, l, r Val) Val {
	switch op {
	case ast.BoolAnd:
		if lb, ok := l.(*VBool); ok {
			if lb.Value {
				return r
			}
			return &VBool{Value: false}
		}
		if rb, ok := r.(*VBool); ok {
			if rb.Value {
				return l
			}
			return &VBool{Value: false}
		}
		if Conv(env, l, r) {
			return l
		}
		return &VBoolBinop{Op: op, L: l, R: r}

	case ast.BoolOr:
		if lb, ok := l.(*VBool); ok {
			if !lb.Value {
				return r
			}
			return &VBool{Value: true}
		}
		if rb, ok := r.(*VBool); ok {
			if !rb.Value {
				return l
			}
			return &VBool{Value: true}
		}
		if Conv(env, l, r) {
			return l
		}
		return &VBoolBinop{Op: op, L: l, R: r}

	case ast.BoolEQ:
		if lb, ok := l.(*VBool); ok {
			if rb, ok := r.(*VBool); ok {
				return &VBool{Value: lb.Value == rb.Value}
			}
			if lb.Value {
				return r
			}
		}
		if rb, ok := r.(*VBool); ok && rb.Value {
			return l
		}
		if Conv(env, l, r) {
			return &VBool{Value: true}
		}
		return &VBoolBinop{Op: op, L: l, R: r}

	case ast.BoolNE:
		if lb, ok := l.(*VBool); ok {
			if rb, ok := r.(*VBool); ok {
				return &VBool{Value: lb.Value != rb.Value}
			}
			if !lb.Value {
				return r
			}
		}
		if rb, ok := r.(*VBool); ok && !rb.Value {
			return l
		}
		if Conv(env, l, r) {
			return &VBool{Value: false}
		}
		return &VBoolBinop{Op: op, L: l, R: r}

	default:
		abort("reduceBoolBinop: unknown BoolOp")
		return nil
	}
}

// reduceIf implements the conditional's head-reduction rule: literal
// condition picks a branch; the True/False-branch eta rule returns the
// condition itself; convertible branches collapse; otherwise stuck.
func reduceIf(env *Env, cond, then, els Val) Val {
	if cb, ok := cond.(*VBool); ok {
		if cb.Value {
			return then
		}
		return els
	}
	if tb, ok := then.(*VBool); ok && tb.Value {
		if eb, ok := els.(*VBool); ok && !eb.Value {
			return cond
		}
	}
	if Conv(env, then, els) {
		return then
	}
	return &VIf{Cond: cond, Then: then, Else: els}
}
