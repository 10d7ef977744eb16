package wire

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vellum-lang/vellum/internal/evaluator"
)

// ExportStructpb renders a normalized record Val as a structpb.Struct (a
// Struct is the only protobuf well-known type with a top-level field map,
// matching a config document's own top-level shape). internal/rpcserver does
// not use it: its messages carry the JSON Expr encoding via
// ExprToStructValue. Non-record top-level values go through
// ExportStructpbValue instead.
func ExportStructpb(v evaluator.Val) (*structpb.Struct, error) {
	rec, ok := v.(*evaluator.VRecordLit)
	if !ok {
		return nil, fmt.Errorf("wire: structpb.Struct export requires a top-level record, got %T", v)
	}
	fields := make(map[string]*structpb.Value, len(rec.Fields))
	for _, f := range rec.Fields {
		val, err := ExportStructpbValue(f.Value)
		if err != nil {
			return nil, err
		}
		fields[f.Label] = val
	}
	return &structpb.Struct{Fields: fields}, nil
}

// ExportStructpbValue renders any exportable Val as a structpb.Value.
// Natural/Integer go through NewStringValue rather than NewNumberValue:
// structpb's NumberValue is a float64, which silently loses precision past
// 2^53 — a Natural literal is arbitrary-precision (math/big), so the decimal
// string is the only lossless wire shape structpb offers.
func ExportStructpbValue(v evaluator.Val) (*structpb.Value, error) {
	switch x := v.(type) {
	case *evaluator.VBool:
		return structpb.NewBoolValue(x.Value), nil
	case *evaluator.VNatural:
		return structpb.NewStringValue(x.Value.String()), nil
	case *evaluator.VInteger:
		return structpb.NewStringValue(x.Value.String()), nil
	case *evaluator.VDouble:
		return structpb.NewNumberValue(x.Value.Value), nil
	case *evaluator.VTextLit:
		if len(x.Chunks) != 0 {
			return nil, fmt.Errorf("wire: cannot export a text value with unreduced splices to structpb")
		}
		return structpb.NewStringValue(x.Suffix), nil
	case *evaluator.VSome:
		return ExportStructpbValue(x.Value)
	case *evaluator.VNone:
		return structpb.NewNullValue(), nil
	case *evaluator.VList:
		elems := make([]*structpb.Value, len(x.Elems))
		for i, el := range x.Elems {
			ev, err := ExportStructpbValue(el)
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return structpb.NewListValue(&structpb.ListValue{Values: elems}), nil
	case *evaluator.VRecordLit:
		s, err := ExportStructpb(x)
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(s), nil
	case *evaluator.VInject:
		if x.Value == nil {
			return structpb.NewStringValue(x.Label), nil
		}
		inner, err := ExportStructpbValue(x.Value)
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{x.Label: inner},
		}), nil
	default:
		return nil, fmt.Errorf("wire: %T is not a fully normalized, exportable value", v)
	}
}
