package codec

import (
	"fmt"

	"github.com/mineworks/tagconf/conf"
	"github.com/mineworks/tagconf/debug"
	"github.com/mineworks/tagconf/tag"
)

// Decode converts a tag tree node to a config value.
//
// Compounds carrying conf.MarkerKey are rehydrated through the
// registry; a failure there is fatal to the whole call. Other
// compounds become sections: attached under parent at key when parent
// is non-nil, detached otherwise. Lists decode element-wise with
// detached parents; elements that decode to nil are dropped, and a
// nested list element always decodes to nil (lists of lists are not
// supported by the config mapping). Primitive kinds map directly,
// preserving width and sign. A nil node decodes to nil.
func (c *Codec) Decode(n *tag.Node, key string, parent *conf.Section) (any, error) {
	return c.decode(n, key, parent, key, 0)
}

func (c *Codec) decode(n *tag.Node, key string, parent *conf.Section, path string, depth int) (any, error) {
	if n == nil {
		return nil, nil
	}
	if depth > c.maxDepth {
		return nil, &StructureTooDeepError{Depth: c.maxDepth}
	}

	switch n.Type {
	case tag.CompoundType:
		return c.decodeCompound(n, key, parent, path, depth)

	case tag.ListType:
		out := make([]any, 0, n.Len())
		for i, elem := range n.Values {
			if elem.Type == tag.ListType {
				// Nested lists cannot be represented; dropped.
				continue
			}
			v, err := c.decode(elem, "", nil, elemPath(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			if v == nil {
				continue
			}
			out = append(out, v)
		}
		return out, nil

	case tag.ByteType:
		return n.Byte, nil
	case tag.ShortType:
		return n.Short, nil
	case tag.IntType:
		return n.Int, nil
	case tag.LongType:
		return n.Long, nil
	case tag.FloatType:
		return n.Float, nil
	case tag.DoubleType:
		return n.Double, nil
	case tag.StringType:
		return n.String, nil
	case tag.ByteArrayType:
		cp := make([]byte, len(n.ByteArray))
		copy(cp, n.ByteArray)
		return cp, nil
	case tag.IntArrayType:
		cp := make([]int32, len(n.IntArray))
		copy(cp, n.IntArray)
		return cp, nil
	default:
		return nil, &StructuralError{
			Path:    path,
			Message: fmt.Sprintf("unsupported tag kind %s", n.Type),
		}
	}
}

func (c *Codec) decodeCompound(n *tag.Node, key string, parent *conf.Section, path string, depth int) (any, error) {
	marker := n.Get(conf.MarkerKey)
	if marker != nil && !c.keepSerialized {
		return c.decodeObject(n, marker, path, depth)
	}

	// Built detached and attached only once complete, so a failing
	// subtree leaves parent untouched.
	section := conf.NewSection()
	for _, name := range n.Keys() {
		v, err := c.decode(n.Get(name), name, section, childPath(path, name), depth+1)
		if err != nil {
			return nil, err
		}
		section.Set(name, v)
	}
	if parent != nil {
		parent.Set(key, section)
	}
	return section, nil
}

// decodeObject turns a marker-tagged compound back into a registered
// object. Every member other than the marker decodes with a detached
// parent, so nested compounds arrive at the factory as plain
// sections.
func (c *Codec) decodeObject(n *tag.Node, marker *tag.Node, path string, depth int) (any, error) {
	if marker.Type != tag.StringType {
		return nil, &StructuralError{
			Path:    path,
			Message: fmt.Sprintf("marker key %q must be a string, got %s", conf.MarkerKey, marker.Type),
		}
	}
	alias := marker.String

	data := conf.NewSection()
	for _, name := range n.Keys() {
		if name == conf.MarkerKey {
			continue
		}
		v, err := c.decode(n.Get(name), name, nil, childPath(path, name), depth+1)
		if err != nil {
			return nil, err
		}
		data.Set(name, v)
	}

	if debug.Decode() {
		debug.Logf("rehydrating %q at %s from %s\n", alias, path, debug.Conf{Section: data})
	}

	obj, err := c.rehydrate(alias, data)
	if err != nil {
		return nil, &DeserializationError{Alias: alias, Err: err}
	}
	return obj, nil
}

func (c *Codec) rehydrate(alias string, data *conf.Section) (conf.Serializable, error) {
	factory, ok := c.registry.Lookup(alias)
	if !ok {
		return nil, &UnknownTypeError{Alias: alias}
	}
	obj, err := factory(data)
	if err != nil {
		return nil, &RehydrationError{Alias: alias, Err: err}
	}
	if obj == nil {
		return nil, &RehydrationError{Alias: alias, Err: fmt.Errorf("factory returned nil")}
	}
	return obj, nil
}

func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func elemPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
