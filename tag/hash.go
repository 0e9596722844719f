package tag

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// seed is fixed per process so equal trees hash equal for the
// lifetime of the process.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node, consistent with
// Equal: compound member hashes are combined order-independently.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("tag: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case ByteType:
		h.WriteByte(byte(n.Byte))
	case ShortType:
		binary.LittleEndian.PutUint16(b[:2], uint16(n.Short))
		h.Write(b[:2])
	case IntType:
		binary.LittleEndian.PutUint32(b[:4], uint32(n.Int))
		h.Write(b[:4])
	case LongType:
		binary.LittleEndian.PutUint64(b[:], uint64(n.Long))
		h.Write(b[:])
	case FloatType:
		binary.LittleEndian.PutUint32(b[:4], math.Float32bits(n.Float))
		h.Write(b[:4])
	case DoubleType:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.Double))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.String)
	case ByteArrayType:
		h.Write(n.ByteArray)
	case IntArrayType:
		for _, v := range n.IntArray {
			binary.LittleEndian.PutUint32(b[:4], uint32(v))
			h.Write(b[:4])
		}
	case ListType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case CompoundType:
		var sum uint64
		for i, name := range n.Names {
			var hk maphash.Hash
			hk.SetSeed(seed)
			hk.WriteString(name)
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			hk.Write(b[:])
			sum += hk.Sum64()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
	}
	return h.Sum64()
}
