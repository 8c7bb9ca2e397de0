package brace

import (
	"fmt"

	"github.com/brace-format/brace/debug"
	"github.com/brace-format/brace/ir"
)

// Template pairs a raw template string with its compiled segments and
// an optional default binding. Compilation happens once, at New; the
// compiled tree is immutable and safe to format concurrently.
type Template struct {
	raw     string
	segs    Segments
	binding *ir.Node
}

func New(raw string) *Template {
	return &Template{raw: raw, segs: Compile(raw)}
}

// Raw returns the template text as given.
func (t *Template) Raw() string {
	return t.raw
}

// Segments returns the compiled segment tree. Callers must not modify
// it.
func (t *Template) Segments() Segments {
	return t.segs
}

// Bind sets the default binding. Only mappings, sequences and records
// can serve; anything else, nil included, is rejected. Use Unbind to
// clear the default.
func (t *Template) Bind(v any) error {
	if v == nil {
		return &InvalidBindingError{Kind: "nothing"}
	}
	node, ok := v.(*ir.Node)
	if !ok {
		n, err := ir.FromAny(v)
		if err != nil {
			return &InvalidBindingError{Kind: fmt.Sprintf("%T", v)}
		}
		node = n
	}
	if node == nil || node.Type.IsScalar() {
		return &InvalidBindingError{Kind: fmt.Sprintf("%T", v)}
	}
	if debug.Bind() {
		debug.Logf("bind %s to %q\n", node.Type, t.raw)
	}
	t.binding = node
	return nil
}

// Unbind clears the default binding.
func (t *Template) Unbind() {
	t.binding = nil
}

// Binding returns the current default binding, nil when unbound.
func (t *Template) Binding() *ir.Node {
	return t.binding
}

// Format resolves the template against binding, falling back to the
// default binding when binding is nil.
func (t *Template) Format(binding *ir.Node) (string, []Warning, error) {
	if binding == nil {
		binding = t.binding
	}
	if binding == nil {
		return "", nil, &MissingBindingError{}
	}
	return Format(t.segs, binding)
}

// Render is the binding-free entry point: it formats against the
// default binding.
func (t *Template) Render() (string, []Warning, error) {
	return t.Format(nil)
}

// String renders against the default binding, falling back to the raw
// template text when rendering fails.
func (t *Template) String() string {
	s, _, err := t.Render()
	if err != nil {
		return t.raw
	}
	return s
}
