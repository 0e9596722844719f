package nbtio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/mineworks/tagconf/tag"
)

var gzipMagic = []byte{0x1f, 0x8b}

// ReadFile loads a tag tree from path, decompressing transparently
// when the file carries the gzip magic.
func ReadFile(path string, opts ...DecoderOption) (*tag.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r io.Reader = bytes.NewReader(data)
	if bytes.HasPrefix(data, gzipMagic) {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream in %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	_, n, err := NewDecoder(r, opts...).Decode()
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return n, nil
}

// WriteFile stores a tag tree at path with an empty root name,
// gzip-compressed when compress is set.
func WriteFile(path string, n *tag.Node, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	var zw *gzip.Writer
	if compress {
		zw = gzip.NewWriter(f)
		w = zw
	}
	if err := NewEncoder(w).Encode("", n); err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return err
		}
	}
	return f.Close()
}
