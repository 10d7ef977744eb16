package evaluator

import (
	"testing"

	"github.com/vellum-lang/vellum/internal/ast"
)

func TestBoolEQAbsorbsLiteralTrue(t *testing.T) {
	stuckVar := &VVar{Name: "u", Index: -1}
	trueV := &VBool{Value: true}

	if got := reduceBoolBinop(nil, ast.BoolEQ, trueV, stuckVar); got != stuckVar {
		t.Errorf("True == u = %#v, want u unchanged", got)
	}
	if got := reduceBoolBinop(nil, ast.BoolEQ, stuckVar, trueV); got != stuckVar {
		t.Errorf("u == True = %#v, want u unchanged", got)
	}
}

func TestBoolNEAbsorbsLiteralFalse(t *testing.T) {
	stuckVar := &VVar{Name: "u", Index: -1}
	falseV := &VBool{Value: false}

	if got := reduceBoolBinop(nil, ast.BoolNE, falseV, stuckVar); got != stuckVar {
		t.Errorf("False != u = %#v, want u unchanged", got)
	}
	if got := reduceBoolBinop(nil, ast.BoolNE, stuckVar, falseV); got != stuckVar {
		t.Errorf("u != False = %#v, want u unchanged", got)
	}
}

func TestBoolEQNEBothLiteralStillComputesDirectly(t *testing.T) {
	if got := reduceBoolBinop(nil, ast.BoolEQ, &VBool{Value: true}, &VBool{Value: false}); got.(*VBool).Value {
		t.Errorf("True == False should be False")
	}
	if got := reduceBoolBinop(nil, ast.BoolNE, &VBool{Value: true}, &VBool{Value: false}); !got.(*VBool).Value {
		t.Errorf("True != False should be True")
	}
}
