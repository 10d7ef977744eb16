package evaluator

import "strconv"

// reduceIntegerShow implements Integer/show's sign convention: non-negative
// values get an explicit leading "+", negative values keep their "-".
func reduceIntegerShow(_ *Env, args []Val) Val {
	n, ok := args[0].(*VInteger)
	if !ok {
		return stuckBuiltin("Integer/show", args)
	}
	if n.Value.Sign() >= 0 {
		return textLitOf("+" + n.Value.String())
	}
	return textLitOf(n.Value.String())
}

// reduceIntegerToDouble parses the integer's canonical decimal string as a
// float64 rather than converting the big.Int directly, per the Open
// Question resolution in DESIGN.md: strconv.ParseFloat is guaranteed
// correctly-rounded, matching "parse the decimal representation as a
// double" without depending on a platform int64→float64 path.
func reduceIntegerToDouble(_ *Env, args []Val) Val {
	n, ok := args[0].(*VInteger)
	if !ok {
		return stuckBuiltin("Integer/toDouble", args)
	}
	f, err := strconv.ParseFloat(n.Value.String(), 64)
	if err != nil {
		abort("Integer/toDouble: decimal string failed to parse as float64: " + err.Error())
	}
	return &VDouble{Value: doubleOf(f)}
}
