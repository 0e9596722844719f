package conf

import (
	"bytes"
	"encoding/binary"
	"hash/maphash"
	"math"
)

// Equal reports deep structural equality of two sections: the same
// key set mapping to equal values, regardless of insertion order.
func (s *Section) Equal(o *Section) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if len(s.keys) != len(o.keys) {
		return false
	}
	for i, key := range s.keys {
		if !o.Has(key) || !ValueEqual(s.values[i], o.Get(key)) {
			return false
		}
	}
	return true
}

// ValueEqual reports deep equality of two config values. Serializable
// values compare by alias and exported data.
func ValueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Section:
		y, ok := b.(*Section)
		return ok && x.Equal(y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !ValueEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	case []int32:
		y, ok := b.([]int32)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	case Serializable:
		y, ok := b.(Serializable)
		if !ok || x.SerialAlias() != y.SerialAlias() {
			return false
		}
		return FromMap(x.Serialize()).Equal(FromMap(y.Serialize()))
	default:
		return a == b
	}
}

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash, consistent with Equal: key
// contributions combine order-independently.
func (s *Section) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte('S')
	var b [8]byte
	var sum uint64
	for i, key := range s.keys {
		var hk maphash.Hash
		hk.SetSeed(hashSeed)
		hk.WriteString(key)
		binary.LittleEndian.PutUint64(b[:], hashValue(s.values[i]))
		hk.Write(b[:])
		sum += hk.Sum64()
	}
	binary.LittleEndian.PutUint64(b[:], sum)
	h.Write(b[:])
	return h.Sum64()
}

func hashValue(v any) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var b [8]byte
	switch x := v.(type) {
	case nil:
		h.WriteByte('n')
	case *Section:
		return x.Hash()
	case []any:
		h.WriteByte('L')
		for _, e := range x {
			binary.LittleEndian.PutUint64(b[:], hashValue(e))
			h.Write(b[:])
		}
	case []byte:
		h.WriteByte('B')
		h.Write(x)
	case []int32:
		h.WriteByte('I')
		for _, e := range x {
			binary.LittleEndian.PutUint32(b[:4], uint32(e))
			h.Write(b[:4])
		}
	case bool:
		h.WriteByte('b')
		if x {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case string:
		h.WriteByte('s')
		h.WriteString(x)
	case int8:
		h.WriteByte('1')
		h.WriteByte(byte(x))
	case int16:
		h.WriteByte('2')
		binary.LittleEndian.PutUint16(b[:2], uint16(x))
		h.Write(b[:2])
	case int32:
		h.WriteByte('4')
		binary.LittleEndian.PutUint32(b[:4], uint32(x))
		h.Write(b[:4])
	case int64:
		h.WriteByte('8')
		binary.LittleEndian.PutUint64(b[:], uint64(x))
		h.Write(b[:])
	case int:
		h.WriteByte('i')
		binary.LittleEndian.PutUint64(b[:], uint64(x))
		h.Write(b[:])
	case float32:
		h.WriteByte('f')
		binary.LittleEndian.PutUint32(b[:4], math.Float32bits(x))
		h.Write(b[:4])
	case float64:
		h.WriteByte('d')
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(x))
		h.Write(b[:])
	case Serializable:
		h.WriteByte('O')
		h.WriteString(x.SerialAlias())
		binary.LittleEndian.PutUint64(b[:], FromMap(x.Serialize()).Hash())
		h.Write(b[:])
	default:
		h.WriteByte('?')
	}
	return h.Sum64()
}
