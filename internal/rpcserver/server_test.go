package rpcserver

import (
	"context"
	"math/big"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vellum-lang/vellum/internal/ast"
	"github.com/vellum-lang/vellum/internal/wire"
)

func mustStructValue(t *testing.T, e ast.Expr) *structpb.Value {
	t.Helper()
	v, err := wire.ExprToStructValue(e)
	if err != nil {
		t.Fatalf("ExprToStructValue: %v", err)
	}
	return v
}

func TestServerNormalize(t *testing.T) {
	s := &Server{}
	expr := &ast.NaturalBinop{
		Op: ast.NaturalPlus,
		L:  &ast.NaturalLit{Value: big.NewInt(2)},
		R:  &ast.NaturalLit{Value: big.NewInt(3)},
	}
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		"expr": mustStructValue(t, expr),
	}}

	resp, err := s.Normalize(context.Background(), req)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	out, err := wire.StructValueToExpr(resp.GetFields()["expr"])
	if err != nil {
		t.Fatalf("StructValueToExpr: %v", err)
	}
	lit, ok := out.(*ast.NaturalLit)
	if !ok || lit.Value.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("Normalize(2+3) = %#v, want NaturalLit(5)", out)
	}
}

func TestServerNormalizeMissingField(t *testing.T) {
	s := &Server{}
	if _, err := s.Normalize(context.Background(), &structpb.Struct{}); err == nil {
		t.Fatal("expected an error when \"expr\" is missing")
	}
}

func TestServerEquivalent(t *testing.T) {
	s := &Server{}
	a := &ast.NaturalBinop{Op: ast.NaturalPlus, L: &ast.NaturalLit{Value: big.NewInt(1)}, R: &ast.NaturalLit{Value: big.NewInt(1)}}
	b := &ast.NaturalLit{Value: big.NewInt(2)}

	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		"a": mustStructValue(t, a),
		"b": mustStructValue(t, b),
	}}
	resp, err := s.Equivalent(context.Background(), req)
	if err != nil {
		t.Fatalf("Equivalent: %v", err)
	}
	if !resp.GetFields()["equal"].GetBoolValue() {
		t.Errorf("Equivalent(1+1, 2) = false, want true")
	}

	c := &ast.NaturalLit{Value: big.NewInt(3)}
	req2 := &structpb.Struct{Fields: map[string]*structpb.Value{
		"a": mustStructValue(t, a),
		"b": mustStructValue(t, c),
	}}
	resp2, err := s.Equivalent(context.Background(), req2)
	if err != nil {
		t.Fatalf("Equivalent: %v", err)
	}
	if resp2.GetFields()["equal"].GetBoolValue() {
		t.Errorf("Equivalent(1+1, 3) = true, want false")
	}
}
