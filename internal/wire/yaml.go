package wire

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vellum-lang/vellum/internal/evaluator"
)

// ExportYAML renders a normalized Val as a YAML document. It is
// funvibe-funxy's builtins_yaml.go inferFromYaml run in reverse: that
// function turns an arbitrary decoded YAML document into a language Object
// (map[interface{}]interface{}/[]interface{}/scalar → Object); this walks a
// normalized Val back down into the same plain-Go-value shape and lets
// yaml.Marshal serialize it. Only the closed, literal Val shapes a total
// config language can actually produce as output are handled — a stuck form
// (VApp, VVar, VIf, ...) means the input wasn't fully normalized and is
// reported as an error rather than serialized as nonsense.
func ExportYAML(v evaluator.Val) ([]byte, error) {
	plain, err := valToPlain(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(plain)
}

func valToPlain(v evaluator.Val) (any, error) {
	switch x := v.(type) {
	case *evaluator.VBool:
		return x.Value, nil
	case *evaluator.VNatural:
		// big.Int has no yaml.Marshaler; its decimal string is the lossless
		// plain scalar yaml.v3 emits unquoted, same precision concern
		// ExportStructpbValue documents for structpb.
		return yaml.Node{Kind: yaml.ScalarNode, Value: x.Value.String()}, nil
	case *evaluator.VInteger:
		return yaml.Node{Kind: yaml.ScalarNode, Value: x.Value.String()}, nil
	case *evaluator.VDouble:
		return x.Value.Value, nil
	case *evaluator.VTextLit:
		if len(x.Chunks) != 0 {
			return nil, fmt.Errorf("wire: cannot export a text value with unreduced splices to YAML")
		}
		return x.Suffix, nil
	case *evaluator.VSome:
		return valToPlain(x.Value)
	case *evaluator.VNone:
		return nil, nil
	case *evaluator.VList:
		out := make([]any, len(x.Elems))
		for i, el := range x.Elems {
			p, err := valToPlain(el)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	case *evaluator.VRecordLit:
		out := make(map[string]any, len(x.Fields))
		for _, f := range x.Fields {
			p, err := valToPlain(f.Value)
			if err != nil {
				return nil, err
			}
			out[f.Label] = p
		}
		return out, nil
	case *evaluator.VInject:
		// A union value exports as a single-key map tagging which
		// alternative was chosen, the same shape a hand-written YAML
		// config would use to discriminate a sum type.
		if x.Value == nil {
			return x.Label, nil
		}
		p, err := valToPlain(x.Value)
		if err != nil {
			return nil, err
		}
		return map[string]any{x.Label: p}, nil
	default:
		return nil, fmt.Errorf("wire: %T is not a fully normalized, exportable value", v)
	}
}

// ImportYAML is the forward direction funvibe-funxy's inferFromYaml
// performs: decode raw YAML bytes into the same plain-Go-value shape
// ExportYAML produces, for a caller (outside this package's scope — the
// external parser/type-checker layer, per spec.md §1) to re-embed as Expr
// literals. It does not attempt to reconstruct Val directly since a bare
// YAML document carries no type annotations to pick Natural vs Integer vs
// Double, or to know a single-key map means a union injection rather than a
// one-field record; that decision belongs to the type checker.
func ImportYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	return normalizeYAMLKeys(v), nil
}

// normalizeYAMLKeys rewrites yaml.v3's map[string]interface{} (already
// string-keyed, unlike funxy's yaml.v2-era map[interface{}]interface{}) so
// that every nested map/slice is built from the same any-keyed shape,
// recursing the same way inferFromYaml walks a decoded document.
func normalizeYAMLKeys(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalizeYAMLKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = normalizeYAMLKeys(el)
		}
		return out
	default:
		return x
	}
}
