package conf

import (
	"maps"
	"slices"
	"strings"
)

// Section is an insertion-ordered string-keyed map. keys[i] is the
// key for values[i].
type Section struct {
	parent *Section
	name   string

	keys   []string
	values []any
}

func NewSection() *Section {
	return &Section{}
}

// Name returns the key this section is stored under in its parent, or
// "" for a root section.
func (s *Section) Name() string {
	return s.name
}

func (s *Section) Parent() *Section {
	return s.parent
}

// Path returns the dotted path from the root section, or "" for the
// root itself.
func (s *Section) Path() string {
	if s.parent == nil {
		return ""
	}
	var parts []string
	for cur := s; cur.parent != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// Set stores v under key, replacing any existing value in place. A
// nil v removes the key.
func (s *Section) Set(key string, v any) {
	if v == nil {
		s.Remove(key)
		return
	}
	if sub, ok := v.(*Section); ok && sub.parent == nil {
		sub.parent = s
		sub.name = key
	}
	for i := range s.keys {
		if s.keys[i] == key {
			s.values[i] = v
			return
		}
	}
	s.keys = append(s.keys, key)
	s.values = append(s.values, v)
}

// Get returns the value stored under key, or nil.
func (s *Section) Get(key string) any {
	if s == nil {
		return nil
	}
	for i := range s.keys {
		if s.keys[i] == key {
			return s.values[i]
		}
	}
	return nil
}

func (s *Section) Has(key string) bool {
	for i := range s.keys {
		if s.keys[i] == key {
			return true
		}
	}
	return false
}

func (s *Section) Remove(key string) {
	for i := range s.keys {
		if s.keys[i] == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			s.values = append(s.values[:i], s.values[i+1:]...)
			return
		}
	}
}

// GetSection returns the nested section under key, or nil if the key
// is absent or holds a non-section value.
func (s *Section) GetSection(key string) *Section {
	sub, _ := s.Get(key).(*Section)
	return sub
}

// CreateSection creates (or replaces) a nested section under key and
// returns it. The child links back to s, so writes through the child
// are visible from the root immediately.
func (s *Section) CreateSection(key string) *Section {
	sub := &Section{parent: s, name: key}
	s.Set(key, sub)
	return sub
}

// Keys returns the section's keys in insertion order.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Detach breaks the parent link, turning s into a root section.
func (s *Section) Detach() {
	s.parent = nil
	s.name = ""
}

// Clone returns a deep copy of the section, detached from any parent.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	dst := &Section{}
	for i, key := range s.keys {
		dst.Set(key, cloneValue(s.values[i]))
	}
	return dst
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case *Section:
		return x.Clone()
	case []any:
		cp := make([]any, len(x))
		for i := range x {
			cp[i] = cloneValue(x[i])
		}
		return cp
	case []byte:
		cp := make([]byte, len(x))
		copy(cp, x)
		return cp
	case []int32:
		cp := make([]int32, len(x))
		copy(cp, x)
		return cp
	default:
		return v
	}
}

// AsMap converts the section to a plain nested map. Nested sections
// become maps; lists are re-sliced. Leaf values are shared.
func (s *Section) AsMap() map[string]any {
	if s == nil {
		return nil
	}
	res := make(map[string]any, len(s.keys))
	for i, key := range s.keys {
		res[key] = asMapValue(s.values[i])
	}
	return res
}

func asMapValue(v any) any {
	switch x := v.(type) {
	case *Section:
		return x.AsMap()
	case []any:
		cp := make([]any, len(x))
		for i := range x {
			cp[i] = asMapValue(x[i])
		}
		return cp
	default:
		return v
	}
}

// FromMap builds a detached section from a plain nested map. Keys are
// inserted in sorted order since Go maps carry none.
func FromMap(m map[string]any) *Section {
	s := NewSection()
	applyMap(s, m)
	return s
}

func applyMap(s *Section, m map[string]any) {
	for _, key := range sortedKeys(m) {
		switch x := m[key].(type) {
		case map[string]any:
			applyMap(s.CreateSection(key), x)
		default:
			s.Set(key, x)
		}
	}
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
