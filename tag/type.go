package tag

import "fmt"

// Type identifies the kind of a Node. The numeric values are the tag
// ids used by the binary persistence format (see package nbtio).
type Type int

const (
	EndType Type = iota
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	ByteArrayType
	StringType
	ListType
	CompoundType
	IntArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		EndType:       "End",
		ByteType:      "Byte",
		ShortType:     "Short",
		IntType:       "Int",
		LongType:      "Long",
		FloatType:     "Float",
		DoubleType:    "Double",
		ByteArrayType: "ByteArray",
		StringType:    "String",
		ListType:      "List",
		CompoundType:  "Compound",
		IntArrayType:  "IntArray",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"End":       EndType,
		"Byte":      ByteType,
		"Short":     ShortType,
		"Int":       IntType,
		"Long":      LongType,
		"Float":     FloatType,
		"Double":    DoubleType,
		"ByteArray": ByteArrayType,
		"String":    StringType,
		"List":      ListType,
		"Compound":  CompoundType,
		"IntArray":  IntArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ByteType,
		ShortType,
		IntType,
		LongType,
		FloatType,
		DoubleType,
		ByteArrayType,
		StringType,
		ListType,
		CompoundType,
		IntArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, CompoundType:
		return false
	default:
		return true
	}
}

// Valid reports whether t is a kind a tree node may carry. EndType is
// a wire-level terminator, not a value kind.
func (t Type) Valid() bool {
	return t >= ByteType && t <= IntArrayType
}
