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

// DefaultMaxDepth caps nesting while reading, mirroring the codec's
// recursion guard.
const DefaultMaxDepth = 512

// maxArrayLen bounds a single length prefix so a corrupt header
// cannot drive one huge allocation.
const maxArrayLen = 1 << 26

// FormatError reports malformed or unsupported binary input.
type FormatError struct {
	Offset  int64
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bad tag data at offset %d: %s", e.Offset, e.Message)
}

type Decoder struct {
	r        *posReader
	maxDepth int
}

type DecoderOption func(*Decoder)

func DecodeMaxDepth(n int) DecoderOption {
	return func(d *Decoder) { d.maxDepth = n }
}

func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		r:        &posReader{r: bufio.NewReader(r)},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads one named root tag and returns its name and tree.
func (d *Decoder) Decode() (string, *tag.Node, error) {
	id, err := d.r.ReadByte()
	if err != nil {
		return "", nil, fmt.Errorf("reading root kind: %w", err)
	}
	t := tag.Type(id)
	if !t.Valid() {
		return "", nil, d.errf("unknown kind id %d", id)
	}
	name, err := d.readString()
	if err != nil {
		return "", nil, fmt.Errorf("reading root name: %w", err)
	}
	n, err := d.readPayload(t, 0)
	if err != nil {
		return "", nil, err
	}
	return name, n, nil
}

func (d *Decoder) readPayload(t tag.Type, depth int) (*tag.Node, error) {
	if depth > d.maxDepth {
		return nil, d.errf("nesting exceeds depth %d", d.maxDepth)
	}
	switch t {
	case tag.ByteType:
		b, err := d.r.ReadByte()
		if err != nil {
			return nil, err
		}
		return tag.FromByte(int8(b)), nil
	case tag.ShortType:
		v, err := d.readUint16()
		if err != nil {
			return nil, err
		}
		return tag.FromShort(int16(v)), nil
	case tag.IntType:
		v, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return tag.FromInt(int32(v)), nil
	case tag.LongType:
		v, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return tag.FromLong(int64(v)), nil
	case tag.FloatType:
		v, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return &tag.Node{Type: tag.FloatType, Float: math.Float32frombits(v)}, nil
	case tag.DoubleType:
		v, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return &tag.Node{Type: tag.DoubleType, Double: math.Float64frombits(v)}, nil
	case tag.ByteArrayType:
		length, err := d.readLen()
		if err != nil {
			return nil, err
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return nil, fmt.Errorf("reading byte array: %w", err)
		}
		return &tag.Node{Type: tag.ByteArrayType, ByteArray: buf}, nil
	case tag.StringType:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return tag.FromString(s), nil
	case tag.ListType:
		return d.readList(depth)
	case tag.CompoundType:
		return d.readCompound(depth)
	case tag.IntArrayType:
		length, err := d.readLen()
		if err != nil {
			return nil, err
		}
		arr := make([]int32, length)
		for i := range arr {
			v, err := d.readUint32()
			if err != nil {
				return nil, fmt.Errorf("reading int array: %w", err)
			}
			arr[i] = int32(v)
		}
		return &tag.Node{Type: tag.IntArrayType, IntArray: arr}, nil
	default:
		return nil, d.errf("unknown kind id %d", t)
	}
}

func (d *Decoder) readList(depth int) (*tag.Node, error) {
	id, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}
	elem := tag.Type(id)
	count, err := d.readLen()
	if err != nil {
		return nil, err
	}
	if count > 0 && !elem.Valid() {
		return nil, d.errf("list with %d elements of unknown kind id %d", count, id)
	}
	n := tag.NewList()
	n.Elem = elem
	for i := 0; i < count; i++ {
		v, err := d.readPayload(elem, depth+1)
		if err != nil {
			return nil, err
		}
		n.Values = append(n.Values, v)
	}
	return n, nil
}

func (d *Decoder) readCompound(depth int) (*tag.Node, error) {
	n := tag.NewCompound()
	for {
		id, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("reading compound member kind: %w", err)
		}
		t := tag.Type(id)
		if t == tag.EndType {
			return n, nil
		}
		if !t.Valid() {
			return nil, d.errf("unknown kind id %d", id)
		}
		name, err := d.readString()
		if err != nil {
			return nil, err
		}
		v, err := d.readPayload(t, depth+1)
		if err != nil {
			return nil, err
		}
		n.Set(name, v)
	}
}

func (d *Decoder) readString() (string, error) {
	length, err := d.readUint16()
	if err != nil {
		return "", err
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", fmt.Errorf("reading string: %w", err)
	}
	return string(buf), nil
}

func (d *Decoder) readLen() (int, error) {
	v, err := d.readUint32()
	if err != nil {
		return 0, err
	}
	length := int(int32(v))
	if length < 0 {
		return 0, d.errf("negative length %d", length)
	}
	if length > maxArrayLen {
		return 0, d.errf("length %d exceeds limit", length)
	}
	return length, nil
}

func (d *Decoder) readUint16() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func (d *Decoder) readUint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func (d *Decoder) readUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (d *Decoder) errf(format string, args ...any) error {
	return &FormatError{Offset: d.r.pos, Message: fmt.Sprintf(format, args...)}
}

// posReader tracks the byte offset for error reporting.
type posReader struct {
	r   *bufio.Reader
	pos int64
}

func (p *posReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.pos += int64(n)
	return n, err
}

func (p *posReader) ReadByte() (byte, error) {
	b, err := p.r.ReadByte()
	if err == nil {
		p.pos++
	}
	return b, err
}

// Unmarshal reads a single named root tag from data, ignoring the
// root's name.
func Unmarshal(data []byte) (*tag.Node, error) {
	_, n, err := NewDecoder(bytes.NewReader(data)).Decode()
	return n, err
}
