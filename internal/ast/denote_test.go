package ast

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/vellum-lang/vellum/internal/token"
)

func TestDenoteStripsNestedNotes(t *testing.T) {
	e := &Note{
		Range: token.Range{},
		Expr: &App{
			Fn:  &Note{Expr: &Builtin{Name: "Natural/even"}},
			Arg: &Note{Expr: &NaturalLit{Value: big.NewInt(2)}},
		},
	}
	got := Denote(e)
	app, ok := got.(*App)
	if !ok {
		t.Fatalf("Denote = %#v, want *App with the outer Note stripped", got)
	}
	if _, ok := app.Fn.(*Builtin); !ok {
		t.Errorf("App.Fn = %#v, want *Builtin with its Note stripped", app.Fn)
	}
	if _, ok := app.Arg.(*NaturalLit); !ok {
		t.Errorf("App.Arg = %#v, want *NaturalLit with its Note stripped", app.Arg)
	}
}

func TestDenoteIsIdempotent(t *testing.T) {
	e := &Lam{Name: "x", Type: &Note{Expr: &Builtin{Name: "Natural"}}, Body: &Var{Name: "x", Index: 0}}
	once := Denote(e)
	twice := Denote(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Denote is not idempotent: once=%#v twice=%#v", once, twice)
	}
}

func TestShallowDenotePeelsOnlyOutermostNote(t *testing.T) {
	inner := &App{Fn: &Note{Expr: &Builtin{Name: "Natural/even"}}, Arg: &NaturalLit{Value: big.NewInt(2)}}
	e := &Note{Expr: &Note{Expr: inner}}
	got := ShallowDenote(e)
	app, ok := got.(*App)
	if !ok {
		t.Fatalf("ShallowDenote = %#v, want the unwrapped *App", got)
	}
	if _, ok := app.Fn.(*Note); !ok {
		t.Errorf("ShallowDenote should not recurse into children: App.Fn = %#v, want it still wrapped in *Note", app.Fn)
	}
}

func TestDenotePreservesRecordFieldOrder(t *testing.T) {
	e := &RecordLit{Fields: Fields{
		{Label: "z", Value: &Note{Expr: &NaturalLit{Value: big.NewInt(1)}}},
		{Label: "a", Value: &NaturalLit{Value: big.NewInt(2)}},
	}}
	got := Denote(e).(*RecordLit)
	if got.Fields[0].Label != "z" || got.Fields[1].Label != "a" {
		t.Errorf("Denote reordered record fields: %v, want insertion order preserved", got.Fields)
	}
}
