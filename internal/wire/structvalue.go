package wire

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vellum-lang/vellum/internal/ast"
)

// ExprToStructValue round-trips an Expr through its JSON wire encoding into
// a structpb.Value, so internal/rpcserver can carry it inside a
// google.protobuf.Struct without a generated proto message for Expr's own
// discriminated-union shape.
func ExprToStructValue(e ast.Expr) (*structpb.Value, error) {
	data, err := EncodeJSON(e)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	v, err := structpb.NewValue(generic)
	if err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	return v, nil
}

// StructValueToExpr is ExprToStructValue's inverse.
func StructValueToExpr(v *structpb.Value) (ast.Expr, error) {
	data, err := json.Marshal(v.AsInterface())
	if err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	return DecodeJSON(data)
}
