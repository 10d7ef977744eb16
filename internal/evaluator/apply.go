package evaluator

import "github.com/vellum-lang/vellum/internal/config"

// ApplyVal is the value-level function application rule App(t,u) reduces
// to: instantiate a syntactic closure, invoke a host closure, accumulate
// another argument onto a builtin spine (firing its reduction once arity is
// met), or fall back to a stuck VApp. env is threaded through only so that
// Natural/subtract's convertible-arguments rule can call Conv with the
// caller's name-counting context; every other case ignores it.
func ApplyVal(env *Env, fn, arg Val) Val {
	switch f := fn.(type) {
	case *VLam:
		return Instantiate(f.Closure, arg)
	case *VHLam:
		return f.Fn(arg)
	}
	if name, args, ok := builtinSpine(fn); ok {
		if info, known := config.Builtins[name]; known && !info.IsPrimTyp {
			args = append(args, arg)
			if len(args) == info.Arity {
				return ReduceBuiltin(env, name, args)
			}
		}
	}
	return &VApp{Fn: fn, Arg: arg}
}

// builtinSpine walks a stuck application chain back to its head, reporting
// the builtin name and the arguments already accumulated (outermost last)
// if the head is a VBuiltin.
func builtinSpine(v Val) (name string, args []Val, ok bool) {
	var rev []Val
	cur := v
	for {
		switch t := cur.(type) {
		case *VBuiltin:
			args = make([]Val, len(rev))
			for i, a := range rev {
				args[len(rev)-1-i] = a
			}
			return t.Name, args, true
		case *VApp:
			rev = append(rev, t.Arg)
			cur = t.Fn
		default:
			return "", nil, false
		}
	}
}
