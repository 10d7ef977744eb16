package wire

import (
	"math/big"
	"testing"

	"github.com/vellum-lang/vellum/internal/evaluator"
)

func TestExportStructpb(t *testing.T) {
	v := &evaluator.VRecordLit{Fields: evaluator.NewFieldMap([]evaluator.Field{
		{Label: "ok", Value: &evaluator.VBool{Value: true}},
		{Label: "count", Value: &evaluator.VNatural{Value: big.NewInt(1_000_000_000_000)}},
		{Label: "label", Value: &evaluator.VTextLit{Suffix: "x"}},
	})}

	s, err := ExportStructpb(v)
	if err != nil {
		t.Fatalf("ExportStructpb: %v", err)
	}

	if got := s.Fields["ok"].GetBoolValue(); got != true {
		t.Errorf("ok = %v, want true", got)
	}
	if got := s.Fields["count"].GetStringValue(); got != "1000000000000" {
		t.Errorf("count = %q, want the exact decimal string (precision would be lost as a float64)", got)
	}
	if got := s.Fields["label"].GetStringValue(); got != "x" {
		t.Errorf("label = %q, want \"x\"", got)
	}
}

func TestExportStructpbRequiresTopLevelRecord(t *testing.T) {
	_, err := ExportStructpb(&evaluator.VNatural{Value: big.NewInt(1)})
	if err == nil {
		t.Fatal("expected an error exporting a non-record as a structpb.Struct")
	}
}

func TestExportStructpbUnion(t *testing.T) {
	v, err := ExportStructpbValue(&evaluator.VInject{
		Alts:  evaluator.NewFieldMap([]evaluator.Field{{Label: "A"}, {Label: "B", Value: &evaluator.VBuiltin{Name: "Text"}}}),
		Label: "B",
		Value: &evaluator.VTextLit{Suffix: "hi"},
	})
	if err != nil {
		t.Fatalf("ExportStructpbValue: %v", err)
	}
	s := v.GetStructValue()
	if s == nil {
		t.Fatalf("expected a struct-valued union export, got %v", v)
	}
	if got := s.Fields["B"].GetStringValue(); got != "hi" {
		t.Errorf("B = %q, want \"hi\"", got)
	}
}
