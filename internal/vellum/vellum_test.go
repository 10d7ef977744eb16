package vellum

import (
	"errors"
	"math/big"
	"testing"

	"github.com/vellum-lang/vellum/internal/ast"
)

func natLit(n int64) ast.Expr { return &ast.NaturalLit{Value: big.NewInt(n)} }

func TestNormalizeArithmetic(t *testing.T) {
	e := &ast.NaturalBinop{Op: ast.NaturalTimes, L: natLit(6), R: natLit(7)}
	got, err := Normalize(e)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	lit, ok := got.(*ast.NaturalLit)
	if !ok || lit.Value.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("Normalize(6*7) = %#v, want NaturalLit(42)", got)
	}
}

func TestNormalizeBetaReducesApplication(t *testing.T) {
	// (λ(x : Natural) → x + 1) 41
	id := &ast.Lam{
		Name: "x",
		Type: &ast.Builtin{Name: "Natural"},
		Body: &ast.NaturalBinop{Op: ast.NaturalPlus, L: &ast.Var{Name: "x", Index: 0}, R: natLit(1)},
	}
	e := &ast.App{Fn: id, Arg: natLit(41)}
	got, err := Normalize(e)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	lit, ok := got.(*ast.NaturalLit)
	if !ok || lit.Value.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("Normalize((\\x -> x+1) 41) = %#v, want NaturalLit(42)", got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	e := &ast.NaturalBinop{Op: ast.NaturalPlus, L: natLit(1), R: natLit(1)}
	once, err := Normalize(e)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	twice, err := Normalize(once)
	if err != nil {
		t.Fatalf("Normalize (second pass): %v", err)
	}
	onceLit, _ := once.(*ast.NaturalLit)
	twiceLit, _ := twice.(*ast.NaturalLit)
	if onceLit == nil || twiceLit == nil || onceLit.Value.Cmp(twiceLit.Value) != 0 {
		t.Errorf("Normalize is not idempotent: once=%#v twice=%#v", once, twice)
	}
}

func TestJudgmentallyEqualAlphaEquivalence(t *testing.T) {
	// \x -> x  ≡  \y -> y
	a := &ast.Lam{Name: "x", Type: &ast.Builtin{Name: "Natural"}, Body: &ast.Var{Name: "x", Index: 0}}
	b := &ast.Lam{Name: "y", Type: &ast.Builtin{Name: "Natural"}, Body: &ast.Var{Name: "y", Index: 0}}
	equal, err := JudgmentallyEqual(a, b)
	if err != nil {
		t.Fatalf("JudgmentallyEqual: %v", err)
	}
	if !equal {
		t.Error("alpha-equivalent lambdas should be judgmentally equal")
	}
}

func TestJudgmentallyEqualDistinguishesDifferentValues(t *testing.T) {
	equal, err := JudgmentallyEqual(natLit(1), natLit(2))
	if err != nil {
		t.Fatalf("JudgmentallyEqual: %v", err)
	}
	if equal {
		t.Error("NaturalLit(1) should not be judgmentally equal to NaturalLit(2)")
	}
}

func TestNormalizeReportsInternalInconsistency(t *testing.T) {
	_, err := Normalize(&ast.Embed{Value: "unresolved import"})
	if err == nil {
		t.Fatal("expected an error normalizing an unresolved Embed leaf")
	}
	if !errors.Is(err, ErrInternalInconsistency) {
		t.Errorf("error = %v, want errors.Is(err, ErrInternalInconsistency)", err)
	}
}
