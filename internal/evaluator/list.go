package evaluator

// reduceListAppend implements ListAppend's identity-on-empty and
// literal-concatenation rules; mixed literal/stuck operands stay a stuck
// VListAppend.
func reduceListAppend(l, r Val) Val {
	ll, lok := l.(*VList)
	rl, rok := r.(*VList)
	if lok && len(ll.Elems) == 0 {
		return r
	}
	if rok && len(rl.Elems) == 0 {
		return l
	}
	if lok && rok {
		elemT := ll.Type
		if elemT == nil {
			elemT = rl.Type
		}
		elems := make([]Val, 0, len(ll.Elems)+len(rl.Elems))
		elems = append(elems, ll.Elems...)
		elems = append(elems, rl.Elems...)
		return &VList{Type: elemT, Elems: elems}
	}
	return &VListAppend{L: l, R: r}
}

// listConsPrepender is the native cons function List/build supplies when it
// has to eagerly unfold its argument: a curried function of (element, list)
// prepending the element.
func listConsPrepender(elemT Val) Val {
	return &VHLam{
		Info: Typed{Name: "x", Type: elemT},
		Fn: func(x Val) Val {
			return &VHLam{
				Info: Typed{Name: "xs", Type: &VApp{Fn: &VBuiltin{Name: "List"}, Arg: elemT}},
				Fn: func(xs Val) Val {
					if lst, ok := xs.(*VList); ok {
						elems := make([]Val, 0, len(lst.Elems)+1)
						elems = append(elems, x)
						elems = append(elems, lst.Elems...)
						return &VList{Type: elemT, Elems: elems}
					}
					return reduceListAppend(&VList{Type: elemT, Elems: []Val{x}}, xs)
				},
			}
		},
	}
}

func reduceListFold(env *Env, args []Val) Val {
	_, xs, _, cons, nilV := args[0], args[1], args[2], args[3], args[4]
	lst, ok := xs.(*VList)
	if !ok {
		return stuckBuiltin("List/fold", args)
	}
	acc := nilV
	for i := len(lst.Elems) - 1; i >= 0; i-- {
		acc = ApplyVal(env, ApplyVal(env, cons, lst.Elems[i]), acc)
	}
	return acc
}

func reduceListBuild(env *Env, args []Val) Val {
	a, g := args[0], args[1]
	if name, fargs, ok := builtinSpine(g); ok && name == "List/fold" && len(fargs) == 2 {
		return fargs[1]
	}
	listT := &VApp{Fn: &VBuiltin{Name: "List"}, Arg: a}
	return ApplyVal(env, ApplyVal(env, ApplyVal(env, g, listT), listConsPrepender(a)), &VList{Type: a, Elems: nil})
}

func reduceListLength(_ *Env, args []Val) Val {
	lst, ok := args[1].(*VList)
	if !ok {
		return stuckBuiltin("List/length", args)
	}
	return natLit(len(lst.Elems))
}

func reduceListHead(_ *Env, args []Val) Val {
	a := args[0]
	lst, ok := args[1].(*VList)
	if !ok {
		return stuckBuiltin("List/head", args)
	}
	if len(lst.Elems) == 0 {
		return &VNone{Type: a}
	}
	return &VSome{Value: lst.Elems[0]}
}

func reduceListLast(_ *Env, args []Val) Val {
	a := args[0]
	lst, ok := args[1].(*VList)
	if !ok {
		return stuckBuiltin("List/last", args)
	}
	if len(lst.Elems) == 0 {
		return &VNone{Type: a}
	}
	return &VSome{Value: lst.Elems[len(lst.Elems)-1]}
}

// reduceListIndexed wraps each element in a { index : Natural, value : a }
// record; the result's element type is carried explicitly even for an
// empty list, since there is no element to infer it from otherwise.
func reduceListIndexed(_ *Env, args []Val) Val {
	a := args[0]
	lst, ok := args[1].(*VList)
	if !ok {
		return stuckBuiltin("List/indexed", args)
	}
	elemT := &VRecordType{Fields: NewFieldMap([]Field{
		{Label: "index", Value: natTypeVal},
		{Label: "value", Value: a},
	})}
	elems := make([]Val, len(lst.Elems))
	for i, e := range lst.Elems {
		elems[i] = &VRecordLit{Fields: NewFieldMap([]Field{
			{Label: "index", Value: natLit(i)},
			{Label: "value", Value: e},
		})}
	}
	return &VList{Type: elemT, Elems: elems}
}

func reduceListReverse(_ *Env, args []Val) Val {
	a := args[0]
	lst, ok := args[1].(*VList)
	if !ok {
		return stuckBuiltin("List/reverse", args)
	}
	elems := make([]Val, len(lst.Elems))
	for i, e := range lst.Elems {
		elems[len(lst.Elems)-1-i] = e
	}
	return &VList{Type: a, Elems: elems}
}

func natLit(n int) Val {
	return &VNatural{Value: bigIntFromInt(n)}
}
