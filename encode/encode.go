// Package encode renders binding nodes as text. Flow style is used
// for best-effort display of composite values inside rendered output.
package encode

import (
	"fmt"
	"strings"

	"github.com/brace-format/brace/ir"

	"github.com/goccy/go-yaml"
)

// Flow renders a node on a single line in YAML flow style, field
// order preserved.
func Flow(node *ir.Node) (string, error) {
	d, err := yaml.MarshalWithOptions(toAny(node), yaml.Flow(true))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(d), "\n"), nil
}

// MustFlow is Flow with a raw %v fallback instead of an error.
func MustFlow(node *ir.Node) string {
	s, err := Flow(node)
	if err != nil {
		return fmt.Sprintf("%v", node)
	}
	return s
}

func toAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		ms := make(yaml.MapSlice, 0, len(node.Fields))
		for i, f := range node.Fields {
			ms = append(ms, yaml.MapItem{Key: f, Value: toAny(node.Values[i])})
		}
		return ms
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = toAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return 0
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	case ir.RecordType:
		if s, ok := node.Record.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%v", node.Record)
	default:
		panic("type")
	}
}
