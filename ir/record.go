package ir

import (
	"fmt"
	"reflect"
)

// Record exposes named zero-argument accessors. Access returns the
// accessor's value and whether an accessor with that name exists.
type Record interface {
	Access(name string) (any, bool)
}

// RecordOf wraps an arbitrary Go value as a Record. Zero-argument
// single-result methods serve as accessors; exported struct fields
// serve as accessors of last resort.
func RecordOf(v any) Record {
	return reflectRecord{val: reflect.ValueOf(v)}
}

type reflectRecord struct {
	val reflect.Value
}

func (r reflectRecord) Access(name string) (any, bool) {
	if !r.val.IsValid() {
		return nil, false
	}
	if m := r.val.MethodByName(name); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 {
			return m.Call(nil)[0].Interface(), true
		}
	}
	elem := r.val
	for elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return nil, false
		}
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, false
	}
	f := elem.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return nil, false
	}
	return f.Interface(), true
}

func (r reflectRecord) String() string {
	return fmt.Sprintf("%v", r.val.Interface())
}
