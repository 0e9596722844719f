package nbtio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/mineworks/tagconf/tag"
)

type Encoder struct {
	w *bufio.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes one named root tag and flushes.
func (e *Encoder) Encode(name string, n *tag.Node) error {
	if n == nil {
		return fmt.Errorf("nil root node")
	}
	if err := e.w.WriteByte(byte(n.Type)); err != nil {
		return err
	}
	if err := e.writeString(name); err != nil {
		return err
	}
	if err := e.writePayload(n); err != nil {
		return err
	}
	return e.w.Flush()
}

func (e *Encoder) writePayload(n *tag.Node) error {
	switch n.Type {
	case tag.ByteType:
		return e.w.WriteByte(byte(n.Byte))
	case tag.ShortType:
		return e.writeUint16(uint16(n.Short))
	case tag.IntType:
		return e.writeUint32(uint32(n.Int))
	case tag.LongType:
		return e.writeUint64(uint64(n.Long))
	case tag.FloatType:
		return e.writeUint32(math.Float32bits(n.Float))
	case tag.DoubleType:
		return e.writeUint64(math.Float64bits(n.Double))
	case tag.ByteArrayType:
		if err := e.writeUint32(uint32(len(n.ByteArray))); err != nil {
			return err
		}
		_, err := e.w.Write(n.ByteArray)
		return err
	case tag.StringType:
		return e.writeString(n.String)
	case tag.IntArrayType:
		if err := e.writeUint32(uint32(len(n.IntArray))); err != nil {
			return err
		}
		for _, v := range n.IntArray {
			if err := e.writeUint32(uint32(v)); err != nil {
				return err
			}
		}
		return nil
	case tag.ListType:
		elem := n.Elem
		if len(n.Values) == 0 {
			elem = tag.EndType
		}
		if err := e.w.WriteByte(byte(elem)); err != nil {
			return err
		}
		if err := e.writeUint32(uint32(len(n.Values))); err != nil {
			return err
		}
		for _, v := range n.Values {
			if v.Type != elem {
				return fmt.Errorf("list of %s holds %s element", elem, v.Type)
			}
			if err := e.writePayload(v); err != nil {
				return err
			}
		}
		return nil
	case tag.CompoundType:
		for i, name := range n.Names {
			v := n.Values[i]
			if err := e.w.WriteByte(byte(v.Type)); err != nil {
				return err
			}
			if err := e.writeString(name); err != nil {
				return err
			}
			if err := e.writePayload(v); err != nil {
				return err
			}
		}
		return e.w.WriteByte(byte(tag.EndType))
	default:
		return fmt.Errorf("cannot encode kind %s", n.Type)
	}
}

func (e *Encoder) writeString(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("string of %d bytes exceeds name limit", len(s))
	}
	if err := e.writeUint16(uint16(len(s))); err != nil {
		return err
	}
	_, err := e.w.WriteString(s)
	return err
}

func (e *Encoder) writeUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := e.w.Write(b[:])
	return err
}

func (e *Encoder) writeUint32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := e.w.Write(b[:])
	return err
}

func (e *Encoder) writeUint64(v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err := e.w.Write(b[:])
	return err
}

// Marshal encodes a single root tag with an empty name.
func Marshal(n *tag.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode("", n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
