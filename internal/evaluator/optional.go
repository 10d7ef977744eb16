package evaluator

// someWrapper is the native "Some" constructor Optional/build supplies when
// it has to eagerly unfold its argument.
func someWrapper(elemT Val) Val {
	return &VHLam{
		Info: Typed{Name: "x", Type: elemT},
		Fn:   func(x Val) Val { return &VSome{Value: x} },
	}
}

func reduceOptionalFold(env *Env, args []Val) Val {
	_, opt, _, just, nothing := args[0], args[1], args[2], args[3], args[4]
	switch o := opt.(type) {
	case *VSome:
		return ApplyVal(env, just, o.Value)
	case *VNone:
		return nothing
	default:
		return stuckBuiltin("Optional/fold", args)
	}
}

func reduceOptionalBuild(env *Env, args []Val) Val {
	a, g := args[0], args[1]
	if name, fargs, ok := builtinSpine(g); ok && name == "Optional/fold" && len(fargs) == 2 {
		return fargs[1]
	}
	optT := &VApp{Fn: &VBuiltin{Name: "Optional"}, Arg: a}
	return ApplyVal(env, ApplyVal(env, ApplyVal(env, g, optT), someWrapper(a)), &VNone{Type: a})
}
