package evaluator

// ReduceBuiltin fires a builtin's reduction rule once ApplyVal has
// accumulated exactly its declared arity worth of arguments (spec.md §6).
// Each case is grounded in the matching reduce* function's own file
// (natural.go, list.go, optional.go, integer.go, double.go, text.go);
// this table only does the name → rule dispatch.
func ReduceBuiltin(env *Env, name string, args []Val) Val {
	switch name {
	case "Natural/fold":
		return reduceNaturalFold(env, args)
	case "Natural/build":
		return reduceNaturalBuild(env, args)
	case "Natural/isZero":
		return reduceNaturalIsZero(env, args)
	case "Natural/even":
		return reduceNaturalEven(env, args)
	case "Natural/odd":
		return reduceNaturalOdd(env, args)
	case "Natural/toInteger":
		return reduceNaturalToInteger(env, args)
	case "Natural/show":
		return reduceNaturalShow(env, args)
	case "Natural/subtract":
		return reduceNaturalSubtract(env, args)

	case "Integer/show":
		return reduceIntegerShow(env, args)
	case "Integer/toDouble":
		return reduceIntegerToDouble(env, args)

	case "Double/show":
		return reduceDoubleShow(env, args)

	case "Text/show":
		return reduceTextShow(env, args)

	case "List/build":
		return reduceListBuild(env, args)
	case "List/fold":
		return reduceListFold(env, args)
	case "List/length":
		return reduceListLength(env, args)
	case "List/head":
		return reduceListHead(env, args)
	case "List/last":
		return reduceListLast(env, args)
	case "List/indexed":
		return reduceListIndexed(env, args)
	case "List/reverse":
		return reduceListReverse(env, args)

	case "Optional/fold":
		return reduceOptionalFold(env, args)
	case "Optional/build":
		return reduceOptionalBuild(env, args)

	case "None":
		return &VNone{Type: args[0]}

	default:
		abort("ReduceBuiltin: unrecognized saturated builtin " + name)
		return nil
	}
}
