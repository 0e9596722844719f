package tag

import (
	"bytes"
	"cmp"
	"strings"
)

// Equal reports deep structural equality. Compound member order is
// significant for Compare but not for Equal: two compounds are equal
// iff they hold the same name/value pairs.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case CompoundType:
		if len(a.Names) != len(b.Names) {
			return false
		}
		for i, name := range a.Names {
			if !Equal(a.Values[i], b.Get(name)) {
				return false
			}
		}
		return true
	default:
		return Compare(a, b) == 0
	}
}

// Compare returns an integer comparing two nodes. The result will be
// 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}

	switch a.Type {
	case ByteType:
		return cmp.Compare(a.Byte, b.Byte)
	case ShortType:
		return cmp.Compare(a.Short, b.Short)
	case IntType:
		return cmp.Compare(a.Int, b.Int)
	case LongType:
		return cmp.Compare(a.Long, b.Long)
	case FloatType:
		return cmp.Compare(a.Float, b.Float)
	case DoubleType:
		return cmp.Compare(a.Double, b.Double)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ByteArrayType:
		return bytes.Compare(a.ByteArray, b.ByteArray)
	case IntArrayType:
		return compareIntArrays(a.IntArray, b.IntArray)
	case ListType:
		return compareLists(a, b)
	case CompoundType:
		return compareCompounds(a, b)
	}
	return 0
}

func compareIntArrays(a, b []int32) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareLists(a, b *Node) int {
	minLen := min(len(a.Values), len(b.Values))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareCompounds(a, b *Node) int {
	minLen := min(len(a.Names), len(b.Names))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Names[i], b.Names[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Names), len(b.Names))
}
