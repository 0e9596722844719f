package customdata

import (
	"maps"
	"slices"
)

// KeySet is a set of reserved key names.
type KeySet map[string]struct{}

func NewKeySet(keys ...string) KeySet {
	ks := make(KeySet, len(keys))
	ks.Add(keys...)
	return ks
}

func (ks KeySet) Add(keys ...string) {
	for _, k := range keys {
		ks[k] = struct{}{}
	}
}

func (ks KeySet) Contains(key string) bool {
	_, ok := ks[key]
	return ok
}

func (ks KeySet) Names() []string {
	return slices.Sorted(maps.Keys(ks))
}

// Reserved holds the two reserved-key namespaces. The tag tree and
// the config map may spell the same well-known field differently, so
// each side filters against its own set.
type Reserved struct {
	Tree KeySet
	Map  KeySet
}
