package customdata

import (
	"github.com/mineworks/tagconf/codec"
	"github.com/mineworks/tagconf/tag"
)

// Store is the boundary the typed item model talks to. It binds a
// backing compound, the codec, and the reserved namespaces.
type Store struct {
	root     *tag.Node
	codec    *codec.Codec
	reserved Reserved
}

func NewStore(root *tag.Node, c *codec.Codec, reserved Reserved) *Store {
	return &Store{root: root, codec: c, reserved: reserved}
}

// HasCustomData reports whether the backing tree carries any
// non-reserved top-level keys. It allocates nothing.
func (s *Store) HasCustomData() bool {
	return customTreeKeys(s.root, s.reserved.Tree) != nil
}

// CustomData returns a view over the tree's custom keys, creating an
// empty one when the tree has none yet. Each call materializes a
// fresh view; do not hold one across mutations of the backing tree.
func (s *Store) CustomData() (*View, error) {
	v, err := ExtractFromTree(s.codec, s.root, s.reserved.Tree)
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = NewView()
	}
	return v, nil
}

// Save writes the view back into the backing tree, refusing to
// overwrite reserved keys.
func (s *Store) Save(v *View) error {
	return v.ApplyToTree(s.codec, s.root, s.reserved.Tree, true)
}
