package brace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brace-format/brace/debug"
	"github.com/brace-format/brace/encode"
	"github.com/brace-format/brace/ir"
)

// Warning is a non-fatal resolution diagnostic: a placeholder resolved
// to a composite value and was rendered best-effort.
type Warning struct {
	Expr   string  // the key expression that resolved to a composite
	Actual ir.Type // kind of the composite result
}

func (w Warning) String() string {
	return fmt.Sprintf("non-scalar result for %q (%s)", w.Expr, w.Actual)
}

// Format resolves a compiled template against a binding. Errors abort
// with no partial output; warnings accompany a complete output.
func Format(segs Segments, binding *ir.Node) (string, []Warning, error) {
	var sb strings.Builder
	var warns []Warning
	if err := formatTo(&sb, &warns, segs, binding); err != nil {
		return "", nil, err
	}
	return sb.String(), warns, nil
}

func formatTo(sb *strings.Builder, warns *[]Warning, segs Segments, binding *ir.Node) error {
	for _, seg := range segs {
		if seg.Type == LiteralSegment {
			sb.WriteString(seg.Text)
			continue
		}
		// the children flatten to the key expression; their output is
		// never re-scanned for placeholders
		var kb strings.Builder
		if err := formatTo(&kb, warns, seg.Children, binding); err != nil {
			return err
		}
		expr := kb.String()
		node, err := Resolve(binding, expr)
		if err != nil {
			return err
		}
		if node == nil {
			// absent resolves to the empty substitution
			continue
		}
		if !node.Type.IsScalar() {
			*warns = append(*warns, Warning{Expr: expr, Actual: node.Type})
			sb.WriteString(encode.MustFlow(node))
			continue
		}
		sb.WriteString(node.Text())
	}
	return nil
}

// Resolve evaluates a key expression against a binding. Any format
// spec after the first ':' is split off and discarded. A nil result
// with nil error is an absent value.
func Resolve(binding *ir.Node, expr string) (*ir.Node, error) {
	path, spec, _ := strings.Cut(expr, ":")
	_ = spec // format specs are reserved, not yet interpreted
	node := binding
	for _, key := range strings.Split(path, ".") {
		next, err := resolveKey(node, key, expr)
		if err != nil {
			return nil, err
		}
		node = next
	}
	if debug.Resolve() {
		if node == nil {
			debug.Logf("resolve %q -> absent\n", expr)
		} else {
			debug.Logf("resolve %q -> %s\n", expr, node.Type)
		}
	}
	return node, nil
}

func resolveKey(node *ir.Node, key, expr string) (*ir.Node, error) {
	if node == nil {
		return nil, &TypeMismatchError{
			Key: key, Expr: expr,
			Expected: "mapping or record", Actual: "absent",
		}
	}
	if isIndex(key) {
		if node.Type != ir.ArrayType {
			return nil, &TypeMismatchError{
				Key: key, Expr: expr,
				Expected: "sequence", Actual: node.Type.String(),
			}
		}
		idx, err := strconv.Atoi(key)
		if err != nil || idx >= len(node.Values) {
			return nil, &TypeMismatchError{
				Key: key, Expr: expr,
				Expected: "sequence", Actual: node.Type.String(),
				Message: fmt.Sprintf("index %s out of range (len %d)", key, len(node.Values)),
			}
		}
		return node.Values[idx], nil
	}
	switch node.Type {
	case ir.ObjectType:
		// a miss is absent, not an error
		return ir.Get(node, key), nil
	case ir.RecordType:
		v, ok := node.Record.Access(key)
		if !ok {
			return nil, &TypeMismatchError{
				Key: key, Expr: expr,
				Expected: "record", Actual: node.Type.String(),
				Message: fmt.Sprintf("no accessor %q", key),
			}
		}
		res, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("accessor %q in %q: %w", key, expr, err)
		}
		return res, nil
	default:
		return nil, &TypeMismatchError{
			Key: key, Expr: expr,
			Expected: "mapping or record", Actual: node.Type.String(),
		}
	}
}

// isIndex reports whether a key token is composed entirely of digits.
func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
