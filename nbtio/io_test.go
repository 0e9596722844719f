package nbtio

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mineworks/tagconf/tag"
)

func richTree(t *testing.T) *tag.Node {
	t.Helper()
	root := tag.NewCompound()
	root.Set("byte", tag.FromByte(-1))
	root.Set("short", tag.FromShort(-300))
	root.Set("int", tag.FromInt(1<<20))
	root.Set("long", tag.FromLong(-(int64(1) << 40)))
	root.Set("float", tag.FromFloat(1.5))
	root.Set("double", tag.FromDouble(-2.25))
	root.Set("string", tag.FromString("héllo"))
	root.Set("bytes", tag.FromByteArray([]byte{0, 127, 255}))
	root.Set("ints", tag.FromIntArray([]int32{-1, 0, 1}))

	list := tag.NewList()
	for _, s := range []string{"a", "b"} {
		if err := list.Append(tag.FromString(s)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	root.Set("list", list)
	root.Set("empty", tag.NewList())

	inner := tag.NewCompound()
	inner.Set("x", tag.FromInt(9))
	root.Set("inner", inner)
	return root
}

func TestMarshalRoundTrip(t *testing.T) {
	n := richTree(t)
	data, err := Marshal(n)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !tag.Equal(n, back) {
		t.Fatalf("round trip not equal")
	}

	// Re-marshaling the decoded tree reproduces the bytes exactly.
	again, err := Marshal(back)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("re-marshal differs from original bytes")
	}
}

func TestDecodePreservesName(t *testing.T) {
	n := tag.NewCompound()
	n.Set("x", tag.FromInt(1))
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode("root name", n); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	name, _, err := NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if name != "root name" {
		t.Errorf("name = %q", name)
	}
}

func TestFileRoundTrip(t *testing.T) {
	n := richTree(t)
	for _, compress := range []bool{false, true} {
		name := "plain"
		if compress {
			name = "gzip"
		}
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "item.dat")
			if err := WriteFile(path, n, compress); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			back, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if !tag.Equal(n, back) {
				t.Errorf("file round trip not equal")
			}
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		data, err := Marshal(richTree(t))
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if _, err := Unmarshal(data[:len(data)/2]); err == nil {
			t.Errorf("truncated input should fail")
		}
	})

	t.Run("unknown kind id", func(t *testing.T) {
		_, err := Unmarshal([]byte{0xee, 0, 0})
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("Unmarshal = %v, want FormatError", err)
		}
		if !strings.Contains(fe.Message, "unknown kind") {
			t.Errorf("message = %q", fe.Message)
		}
	})

	t.Run("negative length", func(t *testing.T) {
		// Byte array root with length -1.
		data := []byte{byte(tag.ByteArrayType), 0, 0, 0xff, 0xff, 0xff, 0xff}
		_, err := Unmarshal(data)
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("Unmarshal = %v, want FormatError", err)
		}
	})
}

func TestDecodeDepthGuard(t *testing.T) {
	root := tag.NewCompound()
	cur := root
	for i := 0; i < 40; i++ {
		next := tag.NewCompound()
		cur.Set("d", next)
		cur = next
	}
	data, err := Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	_, _, err = NewDecoder(bytes.NewReader(data), DecodeMaxDepth(16)).Decode()
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Decode = %v, want FormatError", err)
	}
}

func TestEncodeMixedListFails(t *testing.T) {
	l := &tag.Node{Type: tag.ListType, Elem: tag.IntType, Values: []*tag.Node{
		tag.FromInt(1),
		tag.FromString("x"),
	}}
	root := tag.NewCompound()
	root.Set("l", l)
	if _, err := Marshal(root); err == nil {
		t.Errorf("mixed list should fail to encode")
	}
}
