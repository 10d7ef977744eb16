package evaluator

// reduceCombine implements the recursive record-merge operator ∧: an empty
// record literal on either side is the identity, a label present in only
// one operand is carried over, a label present in both recurses only when
// both values are themselves record literals, and any other conflict
// leaves the whole expression stuck.
func reduceCombine(l, r Val) Val {
	lr, lok := l.(*VRecordLit)
	rr, rok := r.(*VRecordLit)
	if lok && len(lr.Fields) == 0 {
		return r
	}
	if rok && len(rr.Fields) == 0 {
		return l
	}
	if lok && rok {
		if fm, ok := combineRecordFields(lr.Fields, rr.Fields); ok {
			return &VRecordLit{Fields: fm}
		}
	}
	return &VCombine{L: l, R: r}
}

func combineRecordFields(a, b FieldMap) (FieldMap, bool) {
	out := make([]Field, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Label < b[j].Label:
			out = append(out, a[i])
			i++
		case a[i].Label > b[j].Label:
			out = append(out, b[j])
			j++
		default:
			av, aok := a[i].Value.(*VRecordLit)
			bv, bok := b[j].Value.(*VRecordLit)
			if !aok || !bok {
				return nil, false
			}
			sub, ok := combineRecordFields(av.Fields, bv.Fields)
			if !ok {
				return nil, false
			}
			out = append(out, Field{Label: a[i].Label, Value: &VRecordLit{Fields: sub}})
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return NewFieldMap(out), true
}

// reduceCombineTypes is ∧'s analogue over record types (⩓).
func reduceCombineTypes(l, r Val) Val {
	lr, lok := l.(*VRecordType)
	rr, rok := r.(*VRecordType)
	if lok && len(lr.Fields) == 0 {
		return r
	}
	if rok && len(rr.Fields) == 0 {
		return l
	}
	if lok && rok {
		if fm, ok := combineTypeFields(lr.Fields, rr.Fields); ok {
			return &VRecordType{Fields: fm}
		}
	}
	return &VCombineTypes{L: l, R: r}
}

func combineTypeFields(a, b FieldMap) (FieldMap, bool) {
	out := make([]Field, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Label < b[j].Label:
			out = append(out, a[i])
			i++
		case a[i].Label > b[j].Label:
			out = append(out, b[j])
			j++
		default:
			av, aok := a[i].Value.(*VRecordType)
			bv, bok := b[j].Value.(*VRecordType)
			if !aok || !bok {
				return nil, false
			}
			sub, ok := combineTypeFields(av.Fields, bv.Fields)
			if !ok {
				return nil, false
			}
			out = append(out, Field{Label: a[i].Label, Value: &VRecordType{Fields: sub}})
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return NewFieldMap(out), true
}

// reducePrefer implements the right-biased shallow merge ⫽: empty record
// identity, the convertible-arguments collapse (either side, since they're
// equal), then a shallow field merge favoring r's values on conflict.
func reducePrefer(env *Env, l, r Val) Val {
	lr, lok := l.(*VRecordLit)
	rr, rok := r.(*VRecordLit)
	if lok && len(lr.Fields) == 0 {
		return r
	}
	if rok && len(rr.Fields) == 0 {
		return l
	}
	if Conv(env, l, r) {
		return l
	}
	if lok && rok {
		merged := lr.Fields.Merge(rr.Fields, func(_, right Val) Val { return right })
		return &VRecordLit{Fields: merged}
	}
	return &VPrefer{L: l, R: r}
}

// evalRecordCompletion desugars `T::r` to `(T.default ⫽ r) : T.Type` and
// evaluates it; the type annotation plays no role in evaluation.
func evalRecordCompletion(env *Env, typ, value Val) Val {
	defaultV := reduceField(env, typ, "default")
	return reducePrefer(env, defaultV, value)
}

// reduceField implements Field's distribution through Project, Prefer,
// Combine, and Union (spec.md §4.3): a literal record or union answers
// directly; a stuck structural form pushes the access into whichever
// subterm(s) could define the label, recursing through reduceCombine when
// both sides do.
func reduceField(env *Env, record Val, label string) Val {
	switch rec := record.(type) {
	case *VRecordLit:
		v, ok := rec.Fields.Get(label)
		if !ok {
			abort("Field: label not present in record literal")
		}
		return v
	case *VUnionType:
		typ, ok := rec.Alts.Get(label)
		if !ok {
			abort("Field: label not present in union type")
		}
		if typ == nil {
			return &VInject{Alts: rec.Alts, Label: label}
		}
		return &VHLam{
			Info: Prim{},
			Fn:   func(x Val) Val { return &VInject{Alts: rec.Alts, Label: label, Value: x} },
		}
	case *VProject:
		return reduceField(env, rec.Record, label)
	case *VPrefer:
		if v, ok := tryFieldOf(env, rec.R, label); ok {
			return v
		}
		return reduceField(env, rec.L, label)
	case *VCombine:
		lv, lok := tryFieldOf(env, rec.L, label)
		rv, rok := tryFieldOf(env, rec.R, label)
		switch {
		case lok && rok:
			return reduceCombine(lv, rv)
		case lok:
			return lv
		case rok:
			return rv
		}
		return &VField{Record: record, Label: label}
	default:
		return &VField{Record: record, Label: label}
	}
}

// tryFieldOf answers whether a (possibly still-structural) record value
// visibly defines label, without aborting when it doesn't — used by
// reduceField's Prefer/Combine distribution, where "not found on this side"
// is an ordinary case, not an internal inconsistency.
func tryFieldOf(env *Env, v Val, label string) (Val, bool) {
	switch rec := v.(type) {
	case *VRecordLit:
		return rec.Fields.Get(label)
	case *VPrefer:
		if val, ok := tryFieldOf(env, rec.R, label); ok {
			return val, true
		}
		return tryFieldOf(env, rec.L, label)
	case *VCombine:
		lv, lok := tryFieldOf(env, rec.L, label)
		rv, rok := tryFieldOf(env, rec.R, label)
		switch {
		case lok && rok:
			return reduceCombine(lv, rv), true
		case lok:
			return lv, true
		case rok:
			return rv, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// reduceProject restricts a record literal to a label set, flattens nested
// projections, and splits the label set across a Prefer whose right operand
// is already a literal.
func reduceProject(env *Env, record Val, labels []string) Val {
	switch rec := record.(type) {
	case *VRecordLit:
		seen := make(map[string]bool, len(labels))
		out := make([]Field, 0, len(labels))
		for _, l := range labels {
			if seen[l] {
				continue
			}
			seen[l] = true
			v, ok := rec.Fields.Get(l)
			if !ok {
				abort("Project: label not present in record literal")
			}
			out = append(out, Field{Label: l, Value: v})
		}
		return &VRecordLit{Fields: NewFieldMap(out)}
	case *VProject:
		return reduceProject(env, rec.Record, labels)
	case *VPrefer:
		if rr, ok := rec.R.(*VRecordLit); ok {
			var lLabels, rLabels []string
			for _, l := range labels {
				if rr.Fields.Has(l) {
					rLabels = append(rLabels, l)
				} else {
					lLabels = append(lLabels, l)
				}
			}
			lProj := reduceProject(env, rec.L, lLabels)
			rProj := reduceProject(env, rr, rLabels)
			return reducePrefer(env, lProj, rProj)
		}
		return &VProject{Record: record, Labels: labels}
	default:
		return &VProject{Record: record, Labels: labels}
	}
}

// reduceProjectType rewrites `t.(T)` into `t.{ keys(T)... }` once T has
// evaluated to a record type.
func reduceProjectType(env *Env, record, typ Val) Val {
	rt, ok := typ.(*VRecordType)
	if !ok {
		return &VProject{Record: record, Labels: recordTypeLabels(typ)}
	}
	return reduceProject(env, record, recordTypeLabels(rt))
}

func recordTypeLabels(v Val) []string {
	rt, ok := v.(*VRecordType)
	if !ok {
		return nil
	}
	labels := make([]string, len(rt.Fields))
	for i, f := range rt.Fields {
		labels[i] = f.Label
	}
	return labels
}
