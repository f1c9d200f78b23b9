package inspect

import (
	"reflect"
	"sort"
	"sync"
)

// Member is one publicly readable member of a composite value. Get reads the
// member's current value and may fail; a failed read degrades only the node
// built for this member, never the rest of the build.
type Member struct {
	Name string
	Get  func() (any, error)
}

// MemberProvider is implemented by values that expose their own member table.
// Members must return the table in a stable order across calls.
type MemberProvider interface {
	Members() []Member
}

// memberRegistry maps runtime types to member-table constructors, for types
// that cannot implement MemberProvider themselves.
var memberRegistry sync.Map // reflect.Type -> func(any) []Member

// RegisterMembers installs a member-table constructor for the runtime type of
// sample, replacing any previous registration for that type. The constructor
// receives the value being formatted and must produce members in a stable
// order.
func RegisterMembers(sample any, fn func(any) []Member) {
	memberRegistry.Store(reflect.TypeOf(sample), fn)
}

// membersOf resolves the member table for v. A MemberProvider implementation
// wins, then a RegisterMembers entry, then the built-in map adapter. Values
// with no table render as leaves.
func membersOf(v any) []Member {
	if p, ok := v.(MemberProvider); ok {
		return p.Members()
	}
	if fn, ok := memberRegistry.Load(reflect.TypeOf(v)); ok {
		return fn.(func(any) []Member)(v)
	}
	if m, ok := v.(map[string]any); ok {
		return mapMembers(m)
	}
	return nil
}

// mapMembers adapts a string-keyed map. Keys are sorted so two builds from an
// unchanged map produce identical trees.
func mapMembers(m map[string]any) []Member {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	members := make([]Member, 0, len(keys))
	for _, k := range keys {
		v := m[k]
		members = append(members, Member{
			Name: k,
			Get:  func() (any, error) { return v, nil },
		})
	}
	return members
}
