package customdata

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mineworks/tagconf/codec"
	"github.com/mineworks/tagconf/conf"
	"github.com/mineworks/tagconf/debug"
	"github.com/mineworks/tagconf/tag"
)

// View is the mutable window onto an item's custom data. It wraps a
// section holding only non-reserved keys, plus the set of keys the
// caller has nulled out since the view was made: the backing section
// cannot hold nil, so pending deletions ride alongside it until
// ApplyToTree.
type View struct {
	section *conf.Section
	removed map[string]struct{}
}

// NewView returns an empty view.
func NewView() *View {
	return &View{section: conf.NewSection()}
}

// ExtractFromTree scans the tree's top-level keys, decodes the ones
// not reserved in the tag-tree namespace, and returns a view over
// them. If there are no custom keys it returns nil and allocates
// nothing.
func ExtractFromTree(c *codec.Codec, root *tag.Node, reserved KeySet) (*View, error) {
	custom := customTreeKeys(root, reserved)
	if custom == nil {
		return nil, nil
	}
	section := conf.NewSection()
	for _, key := range custom {
		v, err := c.Decode(root.Get(key), key, section)
		if err != nil {
			return nil, err
		}
		section.Set(key, v)
	}
	return &View{section: section}, nil
}

func customTreeKeys(root *tag.Node, reserved KeySet) []string {
	if root == nil || root.Type != tag.CompoundType {
		return nil
	}
	var custom []string
	for _, key := range root.Keys() {
		if reserved.Contains(key) || key == conf.MarkerKey {
			continue
		}
		custom = append(custom, key)
	}
	return custom
}

// ExtractFromMap is the config-map counterpart of ExtractFromTree,
// filtering against the map namespace. The marker key itself is
// excluded too: it belongs to the enclosing serialized-object
// envelope, not to custom payload. Values are deep-copied so the view
// never aliases caller memory.
func ExtractFromMap(m map[string]any, reserved KeySet) (*View, error) {
	if m == nil {
		return nil, nil
	}
	var custom []string
	for key := range m {
		if reserved.Contains(key) || key == conf.MarkerKey {
			continue
		}
		custom = append(custom, key)
	}
	if custom == nil {
		return nil, nil
	}
	section := conf.NewSection()
	sub := conf.FromMap(m)
	for _, key := range sub.Keys() {
		if reserved.Contains(key) || key == conf.MarkerKey {
			continue
		}
		section.Set(key, copyValue(section, key, sub.Get(key)))
	}
	return &View{section: section}, nil
}

func copyValue(parent *conf.Section, key string, v any) any {
	switch x := v.(type) {
	case *conf.Section:
		child := parent.CreateSection(key)
		for _, k := range x.Keys() {
			child.Set(k, copyValue(child, k, x.Get(k)))
		}
		return child
	case []any:
		cp := make([]any, len(x))
		for i := range x {
			switch e := x[i].(type) {
			case *conf.Section:
				cp[i] = e.Clone()
			default:
				cp[i] = copyValue(parent, key, e)
			}
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

// Section returns the backing section. Mutations through it are part
// of the view.
func (v *View) Section() *conf.Section {
	return v.section
}

// IsEmpty reports whether the view holds no keys. Callers use it to
// decide whether custom data needs persisting at all.
func (v *View) IsEmpty() bool {
	return v == nil || v.section.Len() == 0
}

func (v *View) Get(key string) any {
	return v.section.Get(key)
}

func (v *View) Has(key string) bool {
	return v.section.Has(key)
}

// Set stores value under key. A nil value marks the key for deletion:
// it disappears from the view at once and is removed from the target
// compound on the next ApplyToTree. Setting a real value again cancels
// the pending deletion.
func (v *View) Set(key string, value any) {
	if value == nil {
		if v.removed == nil {
			v.removed = map[string]struct{}{}
		}
		v.removed[key] = struct{}{}
		v.section.Remove(key)
		return
	}
	delete(v.removed, key)
	v.section.Set(key, value)
}

func (v *View) Keys() []string {
	return v.section.Keys()
}

// Equal is structural: two views are equal iff their sections hold
// equal data.
func (v *View) Equal(o *View) bool {
	if v == nil || o == nil {
		return v == nil && o == nil
	}
	return v.section.Equal(o.section)
}

func (v *View) Hash() uint64 {
	return v.section.Hash()
}

// ApplyToTree encodes every key in the view into root and deletes the
// keys the caller nulled out. When filterReserved is set, a custom key
// colliding with a reserved tag-tree name (or with the marker key)
// fails with a CollisionError before anything is written, deletions
// included; well-known fields are never clobbered silently. The write
// is two-phase: all keys encode first, so any failure leaves root
// untouched.
func (v *View) ApplyToTree(c *codec.Codec, root *tag.Node, reserved KeySet, filterReserved bool) error {
	if root == nil || root.Type != tag.CompoundType {
		return fmt.Errorf("apply target must be a compound, got %v", root)
	}

	removals := slices.Sorted(maps.Keys(v.removed))
	if filterReserved {
		for _, key := range removals {
			if reserved.Contains(key) || key == conf.MarkerKey {
				return &CollisionError{Key: key}
			}
		}
	}

	type staged struct {
		key  string
		node *tag.Node
	}
	writes := make([]staged, 0, v.section.Len())
	for _, key := range v.section.Keys() {
		if filterReserved && (reserved.Contains(key) || key == conf.MarkerKey) {
			return &CollisionError{Key: key}
		}
		node, err := c.Encode(v.section.Get(key))
		if err != nil {
			return err
		}
		writes = append(writes, staged{key: key, node: node})
	}

	if debug.Apply() {
		debug.Logf("applying %d custom keys, %d removals:\n%s", len(writes), len(removals), debug.Conf{Section: v.section})
	}

	for _, w := range writes {
		root.Set(w.key, w.node)
	}
	for _, key := range removals {
		root.Remove(key)
	}
	return nil
}

// CollisionError reports a custom key that would overwrite a
// reserved name during write-back.
type CollisionError struct {
	Key string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("cannot customize reserved key %q", e.Key)
}
