package conf

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// ToYAML renders the section as YAML, preserving key order.
// Serialized objects render as nested maps with MarkerKey first, so
// the text form can be edited and loaded back.
func ToYAML(s *Section) ([]byte, error) {
	v, err := yamlValue(s)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func yamlValue(v any) (any, error) {
	switch x := v.(type) {
	case *Section:
		ms := make(yaml.MapSlice, 0, x.Len())
		for _, key := range x.Keys() {
			ev, err := yamlValue(x.Get(key))
			if err != nil {
				return nil, err
			}
			ms = append(ms, yaml.MapItem{Key: key, Value: ev})
		}
		return ms, nil
	case []any:
		out := make([]any, len(x))
		for i := range x {
			ev, err := yamlValue(x[i])
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case Serializable:
		ms := yaml.MapSlice{{Key: MarkerKey, Value: x.SerialAlias()}}
		data := FromMap(x.Serialize())
		for _, key := range data.Keys() {
			ev, err := yamlValue(data.Get(key))
			if err != nil {
				return nil, err
			}
			ms = append(ms, yaml.MapItem{Key: key, Value: ev})
		}
		return ms, nil
	case []byte:
		// Rendered as an integer sequence so the text stays editable;
		// the array kind itself is not expressible in the text form.
		out := make([]any, len(x))
		for i := range x {
			out[i] = int(x[i])
		}
		return out, nil
	case []int32:
		out := make([]any, len(x))
		for i := range x {
			out[i] = int(x[i])
		}
		return out, nil
	default:
		return v, nil
	}
}

// FromYAML parses YAML (or JSON, which goccy accepts) into a detached
// section, preserving key order. Integer scalars come back as int;
// the fixed-width kinds are a tag-tree notion the text form does not
// carry.
func FromYAML(data []byte) (*Section, error) {
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	s := NewSection()
	if err := applyMapSlice(s, ms); err != nil {
		return nil, err
	}
	return s, nil
}

func applyMapSlice(s *Section, ms yaml.MapSlice) error {
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("non-string key %v (%T)", item.Key, item.Key)
		}
		v, err := sectionValue(s, key, item.Value)
		if err != nil {
			return err
		}
		s.Set(key, v)
	}
	return nil
}

func sectionValue(parent *Section, key string, v any) (any, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		sub := &Section{parent: parent, name: key}
		if err := applyMapSlice(sub, x); err != nil {
			return nil, err
		}
		return sub, nil
	case map[string]any:
		sub := &Section{parent: parent, name: key}
		for _, k := range sortedKeys(x) {
			ev, err := sectionValue(sub, k, x[k])
			if err != nil {
				return nil, err
			}
			sub.Set(k, ev)
		}
		return sub, nil
	case []any:
		out := make([]any, 0, len(x))
		for _, e := range x {
			ev, err := sectionValue(nil, "", e)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil
	case uint64:
		if x > uint64(maxInt64) {
			return nil, fmt.Errorf("integer %d overflows at %q", x, key)
		}
		return normalizeInt(int64(x)), nil
	case int64:
		return normalizeInt(x), nil
	case int:
		return x, nil
	default:
		return v, nil
	}
}

const maxInt64 = int64(^uint64(0) >> 1)

func normalizeInt(v int64) any {
	if v >= int64(minInt) && v <= int64(maxInt) {
		return int(v)
	}
	return v
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
