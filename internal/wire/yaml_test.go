package wire

import (
	"math/big"
	"strings"
	"testing"

	"github.com/vellum-lang/vellum/internal/evaluator"
)

func TestExportYAML(t *testing.T) {
	v := &evaluator.VRecordLit{Fields: evaluator.NewFieldMap([]evaluator.Field{
		{Label: "name", Value: &evaluator.VTextLit{Suffix: "vellum"}},
		{Label: "replicas", Value: &evaluator.VNatural{Value: big.NewInt(3)}},
		{Label: "tags", Value: &evaluator.VList{
			Type:  &evaluator.VBuiltin{Name: "Text"},
			Elems: []evaluator.Val{&evaluator.VTextLit{Suffix: "a"}, &evaluator.VTextLit{Suffix: "b"}},
		}},
	})}

	out, err := ExportYAML(v)
	if err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}
	s := string(out)
	for _, want := range []string{"name: vellum", "replicas:", "- a", "- b"} {
		if !strings.Contains(s, want) {
			t.Errorf("ExportYAML output missing %q, got:\n%s", want, s)
		}
	}
}

func TestExportYAMLRejectsStuckValue(t *testing.T) {
	_, err := ExportYAML(&evaluator.VVar{Name: "x", Index: 0})
	if err == nil {
		t.Fatal("expected an error exporting an open/stuck value to YAML")
	}
}

func TestExportYAMLOptionalIsTransparent(t *testing.T) {
	out, err := ExportYAML(&evaluator.VSome{Value: &evaluator.VNatural{Value: big.NewInt(5)}})
	if err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}
	if strings.TrimSpace(string(out)) != "5" {
		t.Errorf("ExportYAML(Some 5) = %q, want \"5\"", out)
	}
}

func TestImportYAML(t *testing.T) {
	v, err := ImportYAML([]byte("a: 1\nb:\n  - x\n  - y\n"))
	if err != nil {
		t.Fatalf("ImportYAML: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("ImportYAML returned %T, want map[string]any", v)
	}
	if _, ok := m["a"]; !ok {
		t.Errorf("missing key \"a\" in %#v", m)
	}
	b, ok := m["b"].([]any)
	if !ok || len(b) != 2 {
		t.Errorf("m[\"b\"] = %#v, want a 2-element slice", m["b"])
	}
}
