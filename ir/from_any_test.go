package ir

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

type fromAnyTest struct {
	In   any
	Type Type
	Text string
	Err  string
}

type level int

func TestFromAny(t *testing.T) {
	tests := []fromAnyTest{
		{In: nil, Type: NullType, Text: "null"},
		{In: "s", Type: StringType, Text: "s"},
		{In: true, Type: BoolType, Text: "true"},
		{In: 42, Type: NumberType, Text: "42"},
		{In: int8(-7), Type: NumberType, Text: "-7"},
		{In: uint16(9), Type: NumberType, Text: "9"},
		{In: uint64(1 << 40), Type: NumberType, Text: "1099511627776"},
		{In: 2.25, Type: NumberType, Text: "2.25"},
		{In: float32(0.5), Type: NumberType, Text: "0.5"},
		{In: level(3), Type: NumberType, Text: "3"},
		{In: map[string]any{"a": 1}, Type: ObjectType},
		{In: map[string]int{"a": 1}, Type: ObjectType},
		{In: []any{1, "x"}, Type: ArrayType},
		{In: []string{"x"}, Type: ArrayType},
		{In: [3]int{1, 2, 3}, Type: ArrayType},
		{In: struct{ A int }{A: 1}, Type: RecordType},
		{In: &struct{ A int }{A: 1}, Type: RecordType},
		{In: (*struct{ A int })(nil), Type: NullType, Text: "null"},
		{In: map[int]any{1: "x"}, Err: "int keys"},
		{In: func() {}, Err: "func"},
		{In: make(chan int), Err: "chan"},
	}
	for i := range tests {
		tc := &tests[i]
		node, err := FromAny(tc.In)
		if tc.Err != "" {
			if err == nil {
				t.Errorf("FromAny(%T): expected error", tc.In)
			} else if !strings.Contains(err.Error(), tc.Err) {
				t.Errorf("FromAny(%T): error %q does not mention %q", tc.In, err, tc.Err)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromAny(%T): %v", tc.In, err)
			continue
		}
		if node.Type != tc.Type {
			t.Errorf("FromAny(%T): got type %s want %s", tc.In, node.Type, tc.Type)
			continue
		}
		if tc.Text != "" && node.Text() != tc.Text {
			t.Errorf("FromAny(%T): got text %q want %q", tc.In, node.Text(), tc.Text)
		}
	}
}

func TestFromAnyMapSlice(t *testing.T) {
	node, err := FromAny(yaml.MapSlice{
		{Key: "z", Value: 1},
		{Key: "a", Value: yaml.MapSlice{{Key: "name", Value: "Alice"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ObjectType {
		t.Fatalf("got %s want %s", node.Type, ObjectType)
	}
	// field order follows the slice, not sort order
	if len(node.Fields) != 2 || node.Fields[0] != "z" || node.Fields[1] != "a" {
		t.Fatalf("fields: %v", node.Fields)
	}
	a := Get(node, "a")
	if a == nil || a.Type != ObjectType {
		t.Fatalf("a: %v", a)
	}
	if name := Get(a, "name"); name == nil || name.Text() != "Alice" {
		t.Errorf("name: %v", name)
	}
}

func TestFromAnyNested(t *testing.T) {
	node, err := FromAny(map[string]any{
		"users": []any{
			map[string]any{"name": "Alice"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	users := Get(node, "users")
	if users == nil || users.Type != ArrayType {
		t.Fatalf("users: %v", users)
	}
	name := Get(users.Values[0], "name")
	if name == nil || name.Text() != "Alice" {
		t.Fatalf("name: %v", name)
	}
}

func TestFromAnyNestedError(t *testing.T) {
	_, err := FromAny(map[string]any{"f": func() {}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `field "f"`) {
		t.Errorf("error %q does not carry the field", err)
	}
}

func TestFromMapOrder(t *testing.T) {
	node := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
	})
	if len(node.Fields) != 2 || node.Fields[0] != "a" || node.Fields[1] != "b" {
		t.Errorf("fields not sorted: %v", node.Fields)
	}
	if got := Get(node, "b"); got == nil || got.Text() != "2" {
		t.Errorf("get b: %v", got)
	}
	if got := Get(node, "missing"); got != nil {
		t.Errorf("get missing: %v", got)
	}
}
