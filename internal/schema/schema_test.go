package schema

import (
	"testing"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/vellum-lang/vellum/internal/evaluator"
)

func TestBuildMessageDescriptor(t *testing.T) {
	rt := &evaluator.VRecordType{Fields: evaluator.NewFieldMap([]evaluator.Field{
		{Label: "active", Value: &evaluator.VBuiltin{Name: "Bool"}},
		{Label: "name", Value: &evaluator.VBuiltin{Name: "Text"}},
		{Label: "tags", Value: &evaluator.VApp{Fn: &evaluator.VBuiltin{Name: "List"}, Arg: &evaluator.VBuiltin{Name: "Text"}}},
		{Label: "nickname", Value: &evaluator.VApp{Fn: &evaluator.VBuiltin{Name: "Optional"}, Arg: &evaluator.VBuiltin{Name: "Text"}}},
	})}

	md, err := BuildMessageDescriptor("Person", rt)
	if err != nil {
		t.Fatalf("BuildMessageDescriptor: %v", err)
	}

	nameField := md.FindFieldByName("name")
	if nameField == nil {
		t.Fatal("missing field \"name\"")
	}
	if nameField.GetType() != descriptorpb.FieldDescriptorProto_TYPE_STRING {
		t.Errorf("name field type = %v, want TYPE_STRING", nameField.GetType())
	}

	tagsField := md.FindFieldByName("tags")
	if tagsField == nil {
		t.Fatal("missing field \"tags\"")
	}
	if !tagsField.IsRepeated() {
		t.Errorf("tags field should be repeated (List Text)")
	}

	nicknameField := md.FindFieldByName("nickname")
	if nicknameField == nil {
		t.Fatal("missing field \"nickname\"")
	}
	if !nicknameField.IsProto3Optional() {
		t.Errorf("nickname field should be proto3 optional (Optional Text)")
	}
}

func TestBuildMessageDescriptorNested(t *testing.T) {
	inner := &evaluator.VRecordType{Fields: evaluator.NewFieldMap([]evaluator.Field{
		{Label: "city", Value: &evaluator.VBuiltin{Name: "Text"}},
	})}
	rt := &evaluator.VRecordType{Fields: evaluator.NewFieldMap([]evaluator.Field{
		{Label: "address", Value: inner},
	})}

	md, err := BuildMessageDescriptor("WithAddress", rt)
	if err != nil {
		t.Fatalf("BuildMessageDescriptor: %v", err)
	}
	addrField := md.FindFieldByName("address")
	if addrField == nil {
		t.Fatal("missing field \"address\"")
	}
	if addrField.GetMessageType() == nil {
		t.Fatal("address field should be a nested message type")
	}
	if addrField.GetMessageType().FindFieldByName("city") == nil {
		t.Error("nested message missing field \"city\"")
	}
}

func TestBuildMessageDescriptorRejectsUnsupportedType(t *testing.T) {
	rt := &evaluator.VRecordType{Fields: evaluator.NewFieldMap([]evaluator.Field{
		{Label: "fn", Value: &evaluator.VPi{}},
	})}
	if _, err := BuildMessageDescriptor("Bad", rt); err == nil {
		t.Fatal("expected an error for a field type with no schema representation")
	}
}
