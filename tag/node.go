package tag

// Node is a single value in a tag tree. The Type field selects which
// of the value fields is meaningful; the others are zero.
type Node struct {
	Type Type

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string

	ByteArray []byte
	IntArray  []int32

	// Elem is the element kind of a ListType node. It is EndType
	// while the list is empty.
	Elem Type

	// Values holds list elements for ListType nodes and member
	// values for CompoundType nodes.
	Values []*Node

	// Names holds member names for CompoundType nodes, parallel to
	// Values.
	Names []string
}

func FromByte(v int8) *Node {
	return &Node{Type: ByteType, Byte: v}
}

func FromShort(v int16) *Node {
	return &Node{Type: ShortType, Short: v}
}

func FromInt(v int32) *Node {
	return &Node{Type: IntType, Int: v}
}

func FromLong(v int64) *Node {
	return &Node{Type: LongType, Long: v}
}

func FromFloat(v float32) *Node {
	return &Node{Type: FloatType, Float: v}
}

func FromDouble(v float64) *Node {
	return &Node{Type: DoubleType, Double: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromByteArray(v []byte) *Node {
	cp := make([]byte, len(v))
	copy(cp, v)
	return &Node{Type: ByteArrayType, ByteArray: cp}
}

func FromIntArray(v []int32) *Node {
	cp := make([]int32, len(v))
	copy(cp, v)
	return &Node{Type: IntArrayType, IntArray: cp}
}

func NewCompound() *Node {
	return &Node{Type: CompoundType}
}

func NewList() *Node {
	return &Node{Type: ListType, Elem: EndType}
}

// Get returns the member value stored under name, or nil.
func (n *Node) Get(name string) *Node {
	if n == nil || n.Type != CompoundType {
		return nil
	}
	for i := range n.Names {
		if n.Names[i] == name {
			return n.Values[i]
		}
	}
	return nil
}

// Has reports whether the compound has a member named name.
func (n *Node) Has(name string) bool {
	return n.Get(name) != nil
}

// Set stores v under name, replacing any existing member and keeping
// the original position; new names append.
func (n *Node) Set(name string, v *Node) {
	for i := range n.Names {
		if n.Names[i] == name {
			n.Values[i] = v
			return
		}
	}
	n.Names = append(n.Names, name)
	n.Values = append(n.Values, v)
}

// Remove deletes the member named name, if present.
func (n *Node) Remove(name string) {
	for i := range n.Names {
		if n.Names[i] == name {
			n.Names = append(n.Names[:i], n.Names[i+1:]...)
			n.Values = append(n.Values[:i], n.Values[i+1:]...)
			return
		}
	}
}

// Keys returns the compound's member names in insertion order.
func (n *Node) Keys() []string {
	if n == nil || n.Type != CompoundType {
		return nil
	}
	keys := make([]string, len(n.Names))
	copy(keys, n.Names)
	return keys
}

// Len returns the number of members of a compound or elements of a
// list.
func (n *Node) Len() int {
	return len(n.Values)
}

// Append adds an element to a list. The first element fixes the
// list's element kind; later elements must match it.
func (n *Node) Append(v *Node) error {
	if n.Type != ListType {
		return &ElemKindError{List: n.Type, Elem: v.Type}
	}
	if n.Elem == EndType {
		n.Elem = v.Type
	} else if n.Elem != v.Type {
		return &ElemKindError{List: n.Elem, Elem: v.Type}
	}
	n.Values = append(n.Values, v)
	return nil
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := &Node{
		Type:   n.Type,
		Byte:   n.Byte,
		Short:  n.Short,
		Int:    n.Int,
		Long:   n.Long,
		Float:  n.Float,
		Double: n.Double,
		String: n.String,
		Elem:   n.Elem,
	}
	if n.ByteArray != nil {
		dst.ByteArray = make([]byte, len(n.ByteArray))
		copy(dst.ByteArray, n.ByteArray)
	}
	if n.IntArray != nil {
		dst.IntArray = make([]int32, len(n.IntArray))
		copy(dst.IntArray, n.IntArray)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	if n.Names != nil {
		dst.Names = make([]string, len(n.Names))
		copy(dst.Names, n.Names)
	}
	return dst
}

// Visit walks the tree. f is called twice per node, pre and post
// order; returning false from the pre call skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
