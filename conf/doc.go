// Package conf provides the keyed config structure that tag trees
// convert to and from.
//
// A Section is an insertion-ordered map from string keys to values.
// Values are one of: nil, bool, int8, int16, int32, int64, int,
// float32, float64, string, []byte, []int32, []any, *Section, or any
// type implementing Serializable. This set is closed; the codec
// package rejects anything else.
//
// Sections created with CreateSection keep a link to their parent, so
// a value written through a nested section is immediately visible
// from the root. There is no commit step.
//
// The Registry maps type aliases to factories for rehydrating
// serialized objects. Registration happens once at startup;
// lookups after that are read-only and safe to share across
// goroutines without locking.
package conf
