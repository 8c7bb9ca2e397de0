// Package parse loads binding documents from YAML or JSON.
package parse

import (
	"fmt"

	"github.com/brace-format/brace/ir"

	"github.com/goccy/go-yaml"
)

// Binding decodes a YAML or JSON document into a binding node. Object
// field order follows the document.
func Binding(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return node, nil
}
