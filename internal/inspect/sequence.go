package inspect

import (
	"fmt"
	"reflect"
)

// Sequence is implemented by values that support element-by-element
// iteration. Iterate calls yield for each element in order and stops early
// when yield returns false. A non-nil error means the underlying iteration
// failed partway; elements already yielded must be discarded by the caller.
type Sequence interface {
	Iterate(yield func(any) bool) error
}

// Grouping is a Sequence whose elements all share a single key.
type Grouping interface {
	Sequence
	Key() any
}

// asSequence resolves the iteration capability for v: a Sequence
// implementation wins, then the built-in slice/array adapter. Strings and
// maps are not sequences: text is atomic and maps render through the member
// adapter.
func asSequence(v any) Sequence {
	if s, ok := v.(Sequence); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return sliceSequence{rv}
	}
	return nil
}

// sliceSequence adapts a slice or array value to Sequence. Iteration over an
// in-memory slice cannot fail.
type sliceSequence struct {
	rv reflect.Value
}

func (s sliceSequence) Iterate(yield func(any) bool) error {
	for i := 0; i < s.rv.Len(); i++ {
		if !yield(s.rv.Index(i).Interface()) {
			return nil
		}
	}
	return nil
}

// buildSequence renders seq as a summary node with one child per element,
// capped at MaxElements. One extra element is probed past the cap so the
// summary can say whether the sequence was truncated. If iteration fails
// partway the partial children are dropped and the failure itself is rendered,
// labeled with the supplied label.
func buildSequence(seq Sequence, label string, depth int) *Node {
	var children []*Node
	truncated := false
	err := seq.Iterate(func(el any) bool {
		if len(children) == MaxElements {
			truncated = true
			return false
		}
		children = append(children, build(el, "", depth+1))
		return true
	})
	if err != nil {
		return threw(label, err, depth)
	}

	plus := ""
	if truncated {
		plus = "+"
	}
	value := fmt.Sprintf("<enumerable Count: %d%s>", len(children), plus)
	if g, ok := seq.(Grouping); ok {
		value = fmt.Sprintf("<grouping Count: %d%s Key: %s>", len(children), plus, formatValue(g.Key()))
	}
	return &Node{Label: label, Value: value, Children: children}
}
