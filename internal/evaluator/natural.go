package evaluator

import (
	"math/big"

	"github.com/vellum-lang/vellum/internal/ast"
)

var bigOne = big.NewInt(1)

func bigIntFromInt(n int) *big.Int {
	return big.NewInt(int64(n))
}

// reduceNaturalBinop implements Natural's two ring operators: identity
// elements, zero absorption for multiplication, and literal folding.
func reduceNaturalBinop(op ast.NaturalOp, l, r Val) Val {
	switch op {
	case ast.NaturalPlus:
		if ln, ok := l.(*VNatural); ok {
			if ln.Value.Sign() == 0 {
				return r
			}
			if rn, ok := r.(*VNatural); ok {
				return &VNatural{Value: new(big.Int).Add(ln.Value, rn.Value)}
			}
		}
		if rn, ok := r.(*VNatural); ok && rn.Value.Sign() == 0 {
			return l
		}
		return &VNaturalBinop{Op: op, L: l, R: r}

	case ast.NaturalTimes:
		if ln, ok := l.(*VNatural); ok {
			if ln.Value.Cmp(bigOne) == 0 {
				return r
			}
			if ln.Value.Sign() == 0 {
				return &VNatural{Value: big.NewInt(0)}
			}
			if rn, ok := r.(*VNatural); ok {
				return &VNatural{Value: new(big.Int).Mul(ln.Value, rn.Value)}
			}
		}
		if rn, ok := r.(*VNatural); ok {
			if rn.Value.Cmp(bigOne) == 0 {
				return l
			}
			if rn.Value.Sign() == 0 {
				return &VNatural{Value: big.NewInt(0)}
			}
		}
		return &VNaturalBinop{Op: op, L: l, R: r}

	default:
		abort("reduceNaturalBinop: unknown NaturalOp")
		return nil
	}
}

// stuckBuiltin rebuilds the VApp spine App(...App(Builtin name, args[0])..., args[last])
// representing a builtin that accumulated its full arity but whose
// reduction rule could not fire because an argument stayed stuck.
func stuckBuiltin(name string, args []Val) Val {
	v := Val(&VBuiltin{Name: name})
	for _, a := range args {
		v = &VApp{Fn: v, Arg: a}
	}
	return v
}

var natTypeVal Val = &VBuiltin{Name: "Natural"}

// natSuccAdder is the native "successor" function Natural/build applies its
// argument to when no fusion applies; it quotes back to λ(x:Natural). x + 1
// because its HLamInfo is Typed, not Prim.
func natSuccAdder() Val {
	return &VHLam{
		Info: Typed{Name: "x", Type: natTypeVal},
		Fn: func(x Val) Val {
			if n, ok := x.(*VNatural); ok {
				return &VNatural{Value: new(big.Int).Add(n.Value, bigOne)}
			}
			return &VNaturalBinop{Op: ast.NaturalPlus, L: x, R: &VNatural{Value: bigOne}}
		},
	}
}

func reduceNaturalFold(env *Env, args []Val) Val {
	n, _, succ, zero := args[0], args[1], args[2], args[3]
	lit, ok := n.(*VNatural)
	if !ok {
		return stuckBuiltin("Natural/fold", args)
	}
	acc := zero
	for i := big.NewInt(0); i.Cmp(lit.Value) < 0; i.Add(i, bigOne) {
		acc = ApplyVal(env, succ, acc)
	}
	return acc
}

func reduceNaturalBuild(env *Env, args []Val) Val {
	g := args[0]
	if name, fargs, ok := builtinSpine(g); ok && name == "Natural/fold" && len(fargs) == 1 {
		return fargs[0]
	}
	return ApplyVal(env, ApplyVal(env, ApplyVal(env, g, natTypeVal), natSuccAdder()), &VNatural{Value: big.NewInt(0)})
}

func reduceNaturalIsZero(_ *Env, args []Val) Val {
	if n, ok := args[0].(*VNatural); ok {
		return &VBool{Value: n.Value.Sign() == 0}
	}
	return stuckBuiltin("Natural/isZero", args)
}

func reduceNaturalEven(_ *Env, args []Val) Val {
	if n, ok := args[0].(*VNatural); ok {
		return &VBool{Value: n.Value.Bit(0) == 0}
	}
	return stuckBuiltin("Natural/even", args)
}

func reduceNaturalOdd(_ *Env, args []Val) Val {
	if n, ok := args[0].(*VNatural); ok {
		return &VBool{Value: n.Value.Bit(0) == 1}
	}
	return stuckBuiltin("Natural/odd", args)
}

func reduceNaturalToInteger(_ *Env, args []Val) Val {
	if n, ok := args[0].(*VNatural); ok {
		return &VInteger{Value: new(big.Int).Set(n.Value)}
	}
	return stuckBuiltin("Natural/toInteger", args)
}

func reduceNaturalShow(_ *Env, args []Val) Val {
	if n, ok := args[0].(*VNatural); ok {
		return textLitOf(n.Value.String())
	}
	return stuckBuiltin("Natural/show", args)
}

// reduceNaturalSubtract implements the three rules in §4.3: a literal zero
// left argument is the identity on the (possibly stuck) right argument;
// two literals compute max(0, n−m); convertible arguments (subtracting a
// value from itself) yield 0; otherwise stuck.
func reduceNaturalSubtract(env *Env, args []Val) Val {
	n, m := args[0], args[1]
	if ln, ok := n.(*VNatural); ok && ln.Value.Sign() == 0 {
		return m
	}
	if ln, ok := n.(*VNatural); ok {
		if lm, ok := m.(*VNatural); ok {
			d := new(big.Int).Sub(lm.Value, ln.Value)
			if d.Sign() < 0 {
				d = big.NewInt(0)
			}
			return &VNatural{Value: d}
		}
	}
	if Conv(env, n, m) {
		return &VNatural{Value: big.NewInt(0)}
	}
	return stuckBuiltin("Natural/subtract", args)
}

func textLitOf(s string) Val {
	return &VTextLit{Suffix: s}
}
