package evaluator

// Conv decides judgmental equality of two values under env, which supplies
// the name-counting context used to mint fresh rigid variables when
// descending under binders. It is exported so internal/conv (quoting's own
// package) and internal/vellum can reuse it, but it also has to live here:
// the evaluator's own reduction rules for BoolAnd/Or, BoolEQ/NE, BoolIf,
// Prefer and Natural/subtract call it directly ("the convertible
// arguments rules"), and that dependency can only be satisfied without an
// import cycle if the algorithm and the Val domain share a package.
func Conv(env *Env, a, b Val) bool {
	// The η rule applies whenever either side is a function, including the
	// mixed lambda-vs-arbitrary-head case (e.g. comparing λ(x:A). f x against
	// f itself): apply both sides to the same fresh rigid variable and
	// compare bodies, rather than requiring both sides to already be lambdas.
	if isFunctionVal(a) || isFunctionVal(b) {
		return convFunction(env, a, b)
	}

	switch x := a.(type) {
	case *VConst:
		y, ok := b.(*VConst)
		return ok && x.Const == y.Const

	case *VVar:
		y, ok := b.(*VVar)
		return ok && x.Name == y.Name && x.Index == y.Index

	case *VBuiltin:
		y, ok := b.(*VBuiltin)
		return ok && x.Name == y.Name

	case *VBool:
		y, ok := b.(*VBool)
		return ok && x.Value == y.Value

	case *VNatural:
		y, ok := b.(*VNatural)
		return ok && x.Value.Cmp(y.Value) == 0

	case *VInteger:
		y, ok := b.(*VInteger)
		return ok && x.Value.Cmp(y.Value) == 0

	case *VDouble:
		y, ok := b.(*VDouble)
		return ok && x.Value.Equal(y.Value)

	case *VTextLit:
		y, ok := b.(*VTextLit)
		if !ok || len(x.Chunks) != len(y.Chunks) {
			return false
		}
		for i := range x.Chunks {
			if x.Chunks[i].Prefix != y.Chunks[i].Prefix {
				return false
			}
			if !Conv(env, x.Chunks[i].Val, y.Chunks[i].Val) {
				return false
			}
		}
		return x.Suffix == y.Suffix

	case *VSome:
		y, ok := b.(*VSome)
		return ok && Conv(env, x.Value, y.Value)
	case *VNone:
		y, ok := b.(*VNone)
		return ok && Conv(env, x.Type, y.Type)

	case *VList:
		y, ok := b.(*VList)
		return ok && Conv(env, x.Type, y.Type) && eqListBy(x.Elems, y.Elems, func(p, q Val) bool { return Conv(env, p, q) })

	case *VPi:
		return convPi(env, a, b)

	case *VApp:
		y, ok := b.(*VApp)
		return ok && Conv(env, x.Fn, y.Fn) && Conv(env, x.Arg, y.Arg)

	case *VIf:
		y, ok := b.(*VIf)
		return ok && Conv(env, x.Cond, y.Cond) && Conv(env, x.Then, y.Then) && Conv(env, x.Else, y.Else)
	case *VBoolBinop:
		y, ok := b.(*VBoolBinop)
		return ok && x.Op == y.Op && Conv(env, x.L, y.L) && Conv(env, x.R, y.R)
	case *VNaturalBinop:
		y, ok := b.(*VNaturalBinop)
		return ok && x.Op == y.Op && Conv(env, x.L, y.L) && Conv(env, x.R, y.R)
	case *VListAppend:
		y, ok := b.(*VListAppend)
		return ok && Conv(env, x.L, y.L) && Conv(env, x.R, y.R)

	case *VAssert:
		y, ok := b.(*VAssert)
		return ok && Conv(env, x.Annotation, y.Annotation)

	case *VRecordType:
		y, ok := b.(*VRecordType)
		return ok && eqFieldMaps(env, x.Fields, y.Fields)
	case *VRecordLit:
		y, ok := b.(*VRecordLit)
		return ok && eqFieldMaps(env, x.Fields, y.Fields)
	case *VUnionType:
		y, ok := b.(*VUnionType)
		return ok && eqFieldMaps(env, x.Alts, y.Alts)
	case *VInject:
		y, ok := b.(*VInject)
		return ok && x.Label == y.Label && eqFieldMaps(env, x.Alts, y.Alts) && eqMaybeBy(x.Value, y.Value, func(p, q Val) bool { return Conv(env, p, q) })

	case *VCombine:
		y, ok := b.(*VCombine)
		return ok && Conv(env, x.L, y.L) && Conv(env, x.R, y.R)
	case *VCombineTypes:
		y, ok := b.(*VCombineTypes)
		return ok && Conv(env, x.L, y.L) && Conv(env, x.R, y.R)
	case *VPrefer:
		y, ok := b.(*VPrefer)
		return ok && Conv(env, x.L, y.L) && Conv(env, x.R, y.R)
	case *VMerge:
		y, ok := b.(*VMerge)
		return ok && Conv(env, x.Handlers, y.Handlers) && Conv(env, x.Union, y.Union)
	case *VToMap:
		y, ok := b.(*VToMap)
		return ok && Conv(env, x.Record, y.Record)
	case *VField:
		y, ok := b.(*VField)
		return ok && x.Label == y.Label && Conv(env, x.Record, y.Record)
	case *VProject:
		y, ok := b.(*VProject)
		return ok && eqStringSets(x.Labels, y.Labels) && Conv(env, x.Record, y.Record)

	default:
		return false
	}
}

// convFunction handles the η rule for any pair where at least one side is a
// VLam/VHLam: apply both sides to the same fresh rigid variable and compare
// bodies. This covers lambda-vs-lambda (mixed VLam/VHLam included, since
// ApplyVal doesn't care which kind of function it is applying) as well as
// lambda-vs-arbitrary-head, where the neutral side just stays stuck as a
// VApp of itself applied to the fresh variable.
func convFunction(env *Env, a, b Val) bool {
	name := binderName(a)
	if name == "_" {
		name = binderName(b)
	}
	fresh := &VVar{Name: name, Index: CountEnv(env, name)}
	bodyA := ApplyVal(env, a, fresh)
	bodyB := ApplyVal(env, b, fresh)
	return Conv(Skip(env, name), bodyA, bodyB)
}

func convPi(env *Env, a, b Val) bool {
	x, ok := a.(*VPi)
	if !ok {
		return false
	}
	y, ok := b.(*VPi)
	if !ok {
		return false
	}
	if !Conv(env, x.Type, y.Type) {
		return false
	}
	fresh := &VVar{Name: x.Closure.Name, Index: CountEnv(env, x.Closure.Name)}
	bodyA := Instantiate(x.Closure, fresh)
	bodyB := Instantiate(y.Closure, fresh)
	return Conv(Skip(env, x.Closure.Name), bodyA, bodyB)
}

func isFunctionVal(v Val) bool {
	switch v.(type) {
	case *VLam, *VHLam:
		return true
	default:
		return false
	}
}

func binderName(v Val) string {
	switch f := v.(type) {
	case *VLam:
		return f.Closure.Name
	case *VHLam:
		if t, ok := f.Info.(Typed); ok {
			return t.Name
		}
		return "_"
	default:
		return "_"
	}
}

func eqFieldMaps(env *Env, a, b FieldMap) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Label != b[i].Label {
			return false
		}
		if !eqMaybeBy(a[i].Value, b[i].Value, func(p, q Val) bool { return Conv(env, p, q) }) {
			return false
		}
	}
	return true
}

func eqStringSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		if !seen[s] {
			return false
		}
	}
	return true
}

// eqListBy, eqMaybeBy are the generic pointwise-comparison helpers spec.md
// §4.4 names; eqMapsBy's job is done directly by eqFieldMaps above since
// FieldMap's sortedness makes the general map case unnecessary.
func eqListBy[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func eqMaybeBy(a, b Val, eq func(Val, Val) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return eq(a, b)
}
