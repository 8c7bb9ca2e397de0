// Package ir holds the binding data model: a closed union over
// scalars, objects, arrays and records that templates are resolved
// against.
package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one binding value. Type selects the variant; Fields/Values
// carry object entries (parallel, in document order), Values alone
// carries array elements, and the scalar payloads and Record are used
// per Type.
type Node struct {
	Type Type

	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64

	Record Record
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// FromMap builds an object node with fields in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(m))
	res.Fields = make([]string, 0, len(keys))
	res.Values = make([]*Node, 0, len(keys))
	for _, key := range keys {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// FromKeys builds an object node keeping the given field order.
// fields and values must have equal length.
func FromKeys(fields []string, values []*Node) *Node {
	if len(fields) != len(values) {
		panic("fields and values length mismatch")
	}
	return &Node{Type: ObjectType, Fields: fields, Values: values}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

func FromRecord(r Record) *Node {
	return &Node{Type: RecordType, Record: r}
}

// Get returns the value of field, or nil when the object has no such
// field.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Text renders a scalar node to text. Composite nodes render empty;
// callers display those through encode.
func (y *Node) Text() string {
	switch y.Type {
	case NullType:
		return "null"
	case StringType:
		return y.String
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'f', -1, 64)
		}
		return "0"
	}
	return ""
}
