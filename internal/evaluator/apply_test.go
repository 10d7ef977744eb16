package evaluator

import (
	"math/big"
	"testing"
)

func TestApplyValFiresBuiltinOnceSaturated(t *testing.T) {
	// Natural/isZero has arity 1: one ApplyVal should both saturate and fire it.
	v := ApplyVal(nil, &VBuiltin{Name: "Natural/isZero"}, &VNatural{Value: big.NewInt(0)})
	b, ok := v.(*VBool)
	if !ok || !b.Value {
		t.Errorf("ApplyVal(Natural/isZero, 0) = %#v, want VBool(true)", v)
	}
}

func TestApplyValLeavesBuiltinStuckBelowArity(t *testing.T) {
	// Natural/subtract has arity 2: after one argument it must still be a
	// stuck VApp spine, not a fired reduction.
	v := ApplyVal(nil, &VBuiltin{Name: "Natural/subtract"}, &VNatural{Value: big.NewInt(1)})
	app, ok := v.(*VApp)
	if !ok {
		t.Fatalf("ApplyVal(Natural/subtract, 1) = %#v, want a stuck *VApp", v)
	}
	if _, ok := app.Fn.(*VBuiltin); !ok {
		t.Errorf("stuck spine head = %#v, want *VBuiltin", app.Fn)
	}
}

func TestApplyValSaturatesAcrossMultipleCalls(t *testing.T) {
	v := Val(&VBuiltin{Name: "Natural/subtract"})
	v = ApplyVal(nil, v, &VNatural{Value: big.NewInt(3)})
	v = ApplyVal(nil, v, &VNatural{Value: big.NewInt(10)})
	n, ok := v.(*VNatural)
	if !ok || n.Value.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("Natural/subtract 3 10 = %#v, want VNatural(7)", v)
	}
}

func TestApplyValPrimTypeNeverFires(t *testing.T) {
	// List is a primitive type (arity 0, IsPrimTyp): applying it builds a
	// stuck `List elem` spine rather than attempting a reduction rule.
	v := ApplyVal(nil, &VBuiltin{Name: "List"}, &VBuiltin{Name: "Natural"})
	app, ok := v.(*VApp)
	if !ok {
		t.Fatalf("ApplyVal(List, Natural) = %#v, want *VApp", v)
	}
	if b, ok := app.Fn.(*VBuiltin); !ok || b.Name != "List" {
		t.Errorf("spine head = %#v, want VBuiltin{List}", app.Fn)
	}
}
