package ir

import "testing"

type widget struct {
	Label  string
	hidden string
}

func (w widget) ID() string           { return "w1" }
func (w *widget) PtrID() string       { return "pw1" }
func (w widget) TwoOut() (int, error) { return 0, nil }

func TestRecordOfMethods(t *testing.T) {
	r := RecordOf(widget{Label: "knob", hidden: "x"})
	v, ok := r.Access("ID")
	if !ok || v != "w1" {
		t.Errorf("ID: %v %t", v, ok)
	}
	// two-result methods are not accessors
	if _, ok := r.Access("TwoOut"); ok {
		t.Error("TwoOut should not be an accessor")
	}
}

func TestRecordOfPointer(t *testing.T) {
	r := RecordOf(&widget{Label: "knob"})
	if v, ok := r.Access("PtrID"); !ok || v != "pw1" {
		t.Errorf("PtrID: %v %t", v, ok)
	}
	if v, ok := r.Access("Label"); !ok || v != "knob" {
		t.Errorf("Label: %v %t", v, ok)
	}
}

func TestRecordOfFields(t *testing.T) {
	r := RecordOf(widget{Label: "knob", hidden: "x"})
	if v, ok := r.Access("Label"); !ok || v != "knob" {
		t.Errorf("Label: %v %t", v, ok)
	}
	if _, ok := r.Access("hidden"); ok {
		t.Error("unexported field should not be an accessor")
	}
	if _, ok := r.Access("Nope"); ok {
		t.Error("missing name should not be an accessor")
	}
}

func TestRecordOfNilPointer(t *testing.T) {
	r := RecordOf((*widget)(nil))
	if _, ok := r.Access("Label"); ok {
		t.Error("nil pointer should have no field accessors")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("round trip %s got %s", typ, back)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Nope")); err == nil {
		t.Error("expected error for unknown type name")
	}
}
