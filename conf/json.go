package conf

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders the section as a JSON object with keys in
// insertion order. Serialized objects render with MarkerKey first.
func (s *Section) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSON is a convenience wrapper around MarshalJSON.
func ToJSON(s *Section) ([]byte, error) {
	return s.MarshalJSON()
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case *Section:
		buf.WriteByte('{')
		for i, key := range x.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := writeJSONValue(buf, x.Get(key)); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, x[i]); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case Serializable:
		obj := FromMap(x.Serialize())
		wrapped := NewSection()
		wrapped.Set(MarkerKey, x.SerialAlias())
		for _, key := range obj.Keys() {
			wrapped.Set(key, obj.Get(key))
		}
		return writeJSONValue(buf, wrapped)
	case []byte:
		// An integer array, not base64: the JSON form feeds merge
		// patches and must stay hand-editable.
		out := make([]any, len(x))
		for i := range x {
			out[i] = int(x[i])
		}
		return writeJSONValue(buf, out)
	case []int32:
		out := make([]any, len(x))
		for i := range x {
			out[i] = int(x[i])
		}
		return writeJSONValue(buf, out)
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(d)
		return nil
	}
}
