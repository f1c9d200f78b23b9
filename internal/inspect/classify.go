package inspect

import (
	"fmt"
	"reflect"
)

// Kind classifies a runtime value for display. Classification happens once
// per value; every formatting path dispatches on the result instead of
// re-testing the value at each call site.
type Kind uint8

const (
	// KindError is any value implementing the error interface.
	KindError Kind = iota
	// KindSequence is any value with an iteration capability.
	KindSequence
	// KindScalar is any value displayed as an atomic leaf.
	KindScalar
	// KindComposite is everything else; rendered headline-plus-members.
	KindComposite
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// classify decides the display kind of a non-nil value. Errors win over every
// other capability, then an explicit Sequence implementation, then the scalar
// test, then the built-in slice/array adapter. The scalar test sits before the
// adapter so identifier types backed by a byte array still display as leaves.
func classify(v any) Kind {
	if _, ok := v.(error); ok {
		return KindError
	}
	if _, ok := v.(Sequence); ok {
		return KindSequence
	}
	if isScalar(v) {
		return KindScalar
	}
	if asSequence(v) != nil {
		return KindSequence
	}
	return KindComposite
}

// isScalar reports whether v is displayed as an atomic leaf: booleans, text,
// all numeric kinds (enumeration constants are named numeric types and match
// here), plus values that print themselves via fmt.Stringer without exposing a
// member table (UUID-style identifier types). Pointer wrappers are unwrapped
// first, so an optional chain ending in a scalar is itself scalar.
func isScalar(v any) bool {
	v = unwrap(v)
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	if _, ok := v.(fmt.Stringer); ok {
		return membersOf(v) == nil
	}
	return false
}

// unwrap strips pointer indirections, up to MaxDepth hops. A nil pointer
// unwraps to nil so the caller renders it as an absent value. A chain longer
// than the cap (a pointer ultimately referring back to itself) comes back
// unstripped and falls through to composite handling, so classification
// terminates on every input.
func unwrap(v any) any {
	for i := 0; i < MaxDepth; i++ {
		if v == nil {
			return nil
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		v = rv.Elem().Interface()
	}
	return v
}

// typeName returns the fully qualified runtime type name of v.
func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
