package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/mineworks/tagconf/conf"
	"github.com/mineworks/tagconf/debug"
	"github.com/mineworks/tagconf/tag"
)

// Encode converts a config value to a freshly built tag tree node.
//
// A nil value encodes to a nil node: absence means "remove this key",
// and the caller must delete rather than write. Sections and plain
// maps become compounds, with members that encode to nil omitted.
// Sequences become lists; a nested sequence element is dropped (the
// tag model has no list-of-lists), and every remaining element must
// encode to the same tag kind or the call fails with an EncodingError
// naming the offending index. Primitive widths are preserved exactly.
// Serializable values become compounds tagged with conf.MarkerKey.
// Any other value kind is an EncodingError.
func (c *Codec) Encode(v any) (*tag.Node, error) {
	return c.encode(v, "", 0)
}

func (c *Codec) encode(v any, path string, depth int) (*tag.Node, error) {
	if v == nil {
		return nil, nil
	}
	if depth > c.maxDepth {
		return nil, &StructureTooDeepError{Depth: c.maxDepth}
	}

	switch x := v.(type) {
	case *conf.Section:
		n := tag.NewCompound()
		for _, key := range x.Keys() {
			member, err := c.encode(x.Get(key), childPath(path, key), depth+1)
			if err != nil {
				return nil, err
			}
			if member == nil {
				continue
			}
			n.Set(key, member)
		}
		return n, nil

	case map[string]any:
		return c.encode(conf.FromMap(x), path, depth)

	case conf.Serializable:
		return c.encodeObject(x, path, depth)

	case []any:
		n := tag.NewList()
		for i, elem := range x {
			if _, ok := elem.([]any); ok {
				// Nested sequences cannot be represented; dropped.
				continue
			}
			member, err := c.encode(elem, elemPath(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			if member == nil {
				continue
			}
			if err := n.Append(member); err != nil {
				var ek *tag.ElemKindError
				if errors.As(err, &ek) {
					return nil, &EncodingError{
						Path:    path,
						Index:   i,
						GoType:  fmt.Sprintf("%T", elem),
						Message: fmt.Sprintf("mixed element kinds: list of %s cannot hold %s", ek.List, ek.Elem),
					}
				}
				return nil, err
			}
		}
		return n, nil

	case bool:
		if x {
			return tag.FromByte(1), nil
		}
		return tag.FromByte(0), nil
	case int8:
		return tag.FromByte(x), nil
	case int16:
		return tag.FromShort(x), nil
	case int32:
		return tag.FromInt(x), nil
	case int64:
		return tag.FromLong(x), nil
	case int:
		// Width is not observable on a plain int; use the
		// narrowest of the two wire kinds that fits.
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return tag.FromInt(int32(x)), nil
		}
		return tag.FromLong(int64(x)), nil
	case float32:
		return tag.FromFloat(x), nil
	case float64:
		return tag.FromDouble(x), nil
	case string:
		return tag.FromString(x), nil
	case []byte:
		return tag.FromByteArray(x), nil
	case []int32:
		return tag.FromIntArray(x), nil

	default:
		return nil, &EncodingError{
			Path:   path,
			Index:  -1,
			GoType: fmt.Sprintf("%T", v),
		}
	}
}

// encodeObject builds the serialized form of a registered object: a
// compound carrying the marker key mapped to the type alias plus
// every exported key/value pair.
func (c *Codec) encodeObject(obj conf.Serializable, path string, depth int) (*tag.Node, error) {
	alias := obj.SerialAlias()
	if debug.Encode() {
		debug.Logf("serializing %q at %s\n", alias, path)
	}
	data := conf.FromMap(obj.Serialize())

	n := tag.NewCompound()
	n.Set(conf.MarkerKey, tag.FromString(alias))
	for _, key := range data.Keys() {
		member, err := c.encode(data.Get(key), childPath(path, key), depth+1)
		if err != nil {
			return nil, err
		}
		if member == nil {
			continue
		}
		n.Set(key, member)
	}
	return n, nil
}
