// Package input opens puzzle input files for the clustering engine.
// Files may be plain text or compressed with zstd or lz4 (frame format);
// the codec is detected from the leading magic bytes, not the file name.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/jbox/pointset"
)

// Format identifies the encoding of an input stream.
type Format int

const (
	// Plain is uncompressed text.
	Plain Format = iota
	// Zstd is a zstd frame (magic 28 B5 2F FD).
	Zstd
	// LZ4 is an lz4 frame (magic 04 22 4D 18).
	LZ4
)

// String returns the lower-case codec name.
func (f Format) String() string {
	switch f {
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "plain"
	}
}

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ErrDecode wraps failures while setting up a decompressor.
var ErrDecode = errors.New("input: cannot decode stream")

// Detect peeks at the first bytes of br and reports the stream format.
// Nothing is consumed.
func Detect(br *bufio.Reader) Format {
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.Equal(head, zstdMagic):
		return Zstd
	case bytes.Equal(head, lz4Magic):
		return LZ4
	default:
		return Plain
	}
}

// NewReader returns a reader of the decoded content of r.
// Closing the result releases decoder resources; it does not close r.
func NewReader(r io.Reader) (io.ReadCloser, Format, error) {
	br := bufio.NewReader(r)
	format := Detect(br)
	switch format {
	case Zstd:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, format, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		return dec.IOReadCloser(), format, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(br)), format, nil
	default:
		return io.NopCloser(br), format, nil
	}
}

// file closes both the decoder and the underlying *os.File.
type file struct {
	io.ReadCloser
	f *os.File
}

func (c file) Close() error {
	return errors.Join(c.ReadCloser.Close(), c.f.Close())
}

// Open opens path and returns a reader of its decoded content.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, _, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}

	return file{ReadCloser: rc, f: f}, nil
}

// Load opens path and parses it into a PointSet (one "x,y,z" row per line).
func Load(path string) (*pointset.PointSet, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	ps, err := pointset.Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}

	return ps, nil
}
