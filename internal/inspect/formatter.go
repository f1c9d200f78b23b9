package inspect

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// Create builds the display tree for value. label becomes the root's label
// unless the value supplies its own headline (errors are labeled with their
// runtime type name). Create never blocks, reads only the value it is given,
// and retains no reference to it after returning.
//
// Member reads and sequence iterations are treated as untrusted: their
// failures degrade the affected node into an error rendering and leave the
// rest of the tree intact. Any other failure propagates to the caller.
func Create(value any, label string) *Node {
	return build(value, label, 0)
}

// build formats a value outside member context: the root call, a sequence
// element, or the expansion of a composite member. depth is the distance of
// the produced node from the root.
func build(v any, label string, depth int) *Node {
	if v == nil {
		return &Node{Label: label, Value: nullText}
	}
	if s, ok := v.(string); ok {
		return &Node{Label: label, Value: truncateText(s)}
	}

	k := classify(v)
	if depth+1 >= MaxDepth {
		l, val := headline(v, k, label)
		return &Node{Label: l, Value: val}
	}
	if k == KindSequence {
		return buildSequence(asSequence(v), label, depth)
	}

	l, val := headline(v, k, label)
	n := &Node{Label: l, Value: val}
	for _, m := range membersOf(v) {
		n.Children = append(n.Children, buildMember(m, depth+1))
	}
	return n
}

// buildMember formats one named member of an enclosing composite. depth is
// the distance of the produced node from the root. The read itself is the
// untrusted part: a getter failure renders as the failure with the member's
// name kept as the label.
func buildMember(m Member, depth int) *Node {
	v, err := m.Get()
	if err != nil {
		return threw(m.Name, err, depth)
	}
	if v == nil {
		return &Node{Label: m.Name, Value: nullText}
	}

	switch classify(v) {
	case KindScalar:
		return &Node{Label: m.Name, Value: formatValue(v)}
	case KindSequence:
		return buildSequence(asSequence(v), m.Name, depth)
	default:
		// Errors and other composites: headline now, full expansion as a
		// single child when the depth bound still allows one.
		n := &Node{Label: m.Name, Value: formatValue(v)}
		if depth+1 < MaxDepth {
			n.Children = []*Node{build(v, "", depth+1)}
		}
		return n
	}
}

// headline computes the (label, value) pair for a node's own line. Errors
// headline as their fully qualified type name and message; everything else
// keeps the caller's label.
func headline(v any, k Kind, label string) (string, string) {
	if k == KindError {
		err := v.(error)
		return typeName(err), truncateText(err.Error())
	}
	return label, formatValue(v)
}

// threw renders a failed member read or a failed iteration: the failure kind
// on the node itself, the full error tree as its only child.
func threw(label string, err error, depth int) *Node {
	return &Node{
		Label:    label,
		Value:    "Threw " + typeName(err),
		Children: []*Node{build(err, "", depth+1)},
	}
}

// formatValue is the null-safe textual conversion used for every value line.
// Pointer wrappers are unwrapped first so optionals display their payload,
// and the result is capped at MaxText.
func formatValue(v any) string {
	v = unwrap(v)
	if v == nil {
		return nullText
	}
	// Containers display as their type name: fmt would render their full
	// contents, which is unbounded work and does not terminate on cyclic
	// values. Their structure is shown through children instead.
	if _, ok := v.(fmt.Stringer); !ok {
		switch reflect.ValueOf(v).Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return truncateText(typeName(v))
		}
	}
	return truncateText(fmt.Sprint(v))
}

// truncateText caps s at MaxText runes. The cut lands on a rune boundary, so
// the result is always valid UTF-8.
func truncateText(s string) string {
	if utf8.RuneCountInString(s) <= MaxText {
		return s
	}
	n := 0
	for i := range s {
		if n == MaxText {
			return s[:i]
		}
		n++
	}
	return s
}
