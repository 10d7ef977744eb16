// Package schema derives a protobuf message descriptor from a normalized
// record type (a VRecordType), so internal/rpcserver/internal/wire's
// structpb traffic can be described to proto-aware tooling without a
// hand-written .proto file. It is grounded on funvibe-funxy's
// builtins_grpc.go grpcLoadProto, which calls protoparse.Parser to turn
// .proto source text into a *desc.FileDescriptor — vellum has no .proto
// text to parse (a record type is already a structured value, not source),
// so it builds the same *desc.MessageDescriptor programmatically with
// desc/builder instead of parsing anything.
package schema

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/builder"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/vellum-lang/vellum/internal/evaluator"
)

// BuildMessageDescriptor derives a proto message descriptor named name from
// a record type. Field numbers are assigned in FieldMap's sorted label
// order (invariant 3 already guarantees that order is stable), starting at
// 1.
func BuildMessageDescriptor(name string, recordType *evaluator.VRecordType) (*desc.MessageDescriptor, error) {
	mb := builder.NewMessage(name)
	if err := addFields(mb, name, recordType.Fields); err != nil {
		return nil, err
	}
	fd, err := builder.NewFile(name + ".proto").AddMessage(mb).Build()
	if err != nil {
		return nil, fmt.Errorf("schema: building descriptor for %q: %w", name, err)
	}
	md := fd.FindMessage(name)
	if md == nil {
		return nil, fmt.Errorf("schema: message %q missing from built file", name)
	}
	return md, nil
}

func addFields(mb *builder.MessageBuilder, parent string, fields evaluator.FieldMap) error {
	for i, f := range fields {
		field, err := fieldBuilder(parent, f.Label, f.Value)
		if err != nil {
			return fmt.Errorf("schema: field %q: %w", f.Label, err)
		}
		mb.AddField(field.SetNumber(int32(i + 1)))
	}
	return nil
}

// fieldBuilder maps one record field to a builder.FieldBuilder, handling
// List (repeated) and Optional (proto3 optional) as field-builder modifiers
// rather than as part of the FieldType itself, since protoreflect tracks
// repeated-ness and optionality on the field, not the type.
func fieldBuilder(parent, label string, v evaluator.Val) (*builder.FieldBuilder, error) {
	if app, ok := v.(*evaluator.VApp); ok {
		if head, elem, ok := listOrOptional(app); ok {
			ft, err := fieldType(parent, label, elem)
			if err != nil {
				return nil, err
			}
			fb := builder.NewField(label, ft)
			if head == "List" {
				return fb.SetRepeated(), nil
			}
			return fb.SetProto3Optional(true), nil
		}
	}
	ft, err := fieldType(parent, label, v)
	if err != nil {
		return nil, err
	}
	return builder.NewField(label, ft), nil
}

// fieldType maps one record field's value type to a builder.FieldType.
// parent/label only feed the synthetic nested-message name a VRecordType
// field needs.
func fieldType(parent, label string, v evaluator.Val) (*builder.FieldType, error) {
	switch x := v.(type) {
	case *evaluator.VBuiltin:
		switch x.Name {
		case "Bool":
			return builder.FieldTypeScalar(descriptorpb.FieldDescriptorProto_TYPE_BOOL), nil
		case "Natural":
			return builder.FieldTypeScalar(descriptorpb.FieldDescriptorProto_TYPE_UINT64), nil
		case "Integer":
			return builder.FieldTypeScalar(descriptorpb.FieldDescriptorProto_TYPE_INT64), nil
		case "Double":
			return builder.FieldTypeScalar(descriptorpb.FieldDescriptorProto_TYPE_DOUBLE), nil
		case "Text":
			return builder.FieldTypeScalar(descriptorpb.FieldDescriptorProto_TYPE_STRING), nil
		}
		return nil, fmt.Errorf("unsupported builtin type %q in schema position", x.Name)

	case *evaluator.VRecordType:
		nested := parent + "_" + label
		nmb := builder.NewMessage(nested)
		if err := addFields(nmb, nested, x.Fields); err != nil {
			return nil, err
		}
		return builder.FieldTypeMessage(nmb), nil

	default:
		return nil, fmt.Errorf("%T has no schema representation", v)
	}
}

// listOrOptional reports whether v is `List elem` or `Optional elem` and,
// if so, which and its element type.
func listOrOptional(v *evaluator.VApp) (head string, elem evaluator.Val, ok bool) {
	b, isBuiltin := v.Fn.(*evaluator.VBuiltin)
	if !isBuiltin {
		return "", nil, false
	}
	if b.Name != "List" && b.Name != "Optional" {
		return "", nil, false
	}
	return b.Name, v.Arg, true
}
