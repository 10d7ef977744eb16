package evaluator

// reduceMerge implements `merge handlers union`: with a literal handler
// record and a concrete injection, look up the injection's label and apply
// the handler to its payload (or return it directly for a nullary
// alternative). `merge` also dispatches directly over Optional, since a
// Some/None value is not a VInject even though spec.md §8 treats `merge {
// Some = ..., None = ... }` on it the same way as a two-alternative union:
// Some applies the "Some" handler to its payload, None returns the "None"
// handler unapplied. Otherwise the merge stays stuck.
func reduceMerge(env *Env, handlers, union Val) Val {
	hm, hok := handlers.(*VRecordLit)
	if hok {
		switch u := union.(type) {
		case *VInject:
			handler, ok := hm.Fields.Get(u.Label)
			if !ok {
				abort("Merge: handler record is missing a label present in the union value")
			}
			if u.Value == nil {
				return handler
			}
			return ApplyVal(env, handler, u.Value)
		case *VSome:
			handler, ok := hm.Fields.Get("Some")
			if !ok {
				abort("Merge: handler record is missing \"Some\" for an Optional value")
			}
			return ApplyVal(env, handler, u.Value)
		case *VNone:
			handler, ok := hm.Fields.Get("None")
			if !ok {
				abort("Merge: handler record is missing \"None\" for an Optional value")
			}
			return handler
		}
	}
	return &VMerge{Handlers: handlers, Union: union}
}

// reduceToMap turns a record literal into a list of { mapKey, mapValue }
// records sorted by label (FieldMap's sortedness makes this free). An empty
// record has no entry to infer the list's element type from, so the
// caller-supplied annotation (the whole `List { mapKey : Text, mapValue : a
// }` type) is unwrapped to recover that element type.
func reduceToMap(record, annotation Val) Val {
	rec, ok := record.(*VRecordLit)
	if !ok {
		return &VToMap{Record: record}
	}
	elems := make([]Val, len(rec.Fields))
	for i, f := range rec.Fields {
		elems[i] = &VRecordLit{Fields: NewFieldMap([]Field{
			{Label: "mapKey", Value: textLitOf(f.Label)},
			{Label: "mapValue", Value: f.Value},
		})}
	}
	var elemT Val
	if len(elems) == 0 && annotation != nil {
		if app, ok := annotation.(*VApp); ok {
			if b, ok := app.Fn.(*VBuiltin); ok && b.Name == "List" {
				elemT = app.Arg
			}
		}
	}
	return &VList{Type: elemT, Elems: elems}
}
