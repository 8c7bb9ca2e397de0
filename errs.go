package brace

import "fmt"

// MissingBindingError reports a format call with neither an explicit
// binding nor a bound default.
type MissingBindingError struct{}

func (e *MissingBindingError) Error() string {
	return "format: no binding provided and no default binding bound"
}

// TypeMismatchError reports a key that cannot be applied to the value
// it reached: wrong container kind, missing record accessor, or an
// out-of-range sequence index.
type TypeMismatchError struct {
	Key      string // offending key token
	Expr     string // full key expression
	Expected string
	Actual   string
	Message  string // overrides the default expected/actual rendering
}

func (e *TypeMismatchError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("type mismatch at %q in %q: %s", e.Key, e.Expr, msg)
}

// InvalidBindingError reports a bind attempt with a value kind that
// cannot serve as a binding.
type InvalidBindingError struct {
	Kind string
}

func (e *InvalidBindingError) Error() string {
	return fmt.Sprintf("invalid binding: %s is not a mapping, sequence, or record", e.Kind)
}
