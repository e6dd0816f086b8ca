package input_test

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jbox/input"
	"github.com/katalvlaran/jbox/internal/fixture"
	"github.com/katalvlaran/jbox/pointset"
)

// zstdBytes compresses s with zstd.
func zstdBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// lz4Bytes compresses s with the lz4 frame format.
func lz4Bytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := io.WriteString(w, s)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestNewReader_Formats(t *testing.T) {
	cases := []struct {
		name   string
		data   []byte
		format input.Format
	}{
		{"plain", []byte(fixture.JunctionBoxes), input.Plain},
		{"zstd", zstdBytes(t, fixture.JunctionBoxes), input.Zstd},
		{"lz4", lz4Bytes(t, fixture.JunctionBoxes), input.LZ4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rc, format, err := input.NewReader(bytes.NewReader(tc.data))
			require.NoError(t, err)
			defer rc.Close()
			assert.Equal(t, tc.format, format)
			assert.Equal(t, tc.name, format.String())

			ps, err := pointset.Parse(rc)
			require.NoError(t, err)
			assert.Equal(t, 20, ps.Len())
		})
	}
}

func TestDetect_DoesNotConsume(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("1,2,3\n"))
	assert.Equal(t, input.Plain, input.Detect(br))
	line, err := br.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "1,2,3\n", line)

	// Inputs shorter than the magic are plain text.
	assert.Equal(t, input.Plain, input.Detect(bufio.NewReader(strings.NewReader("1"))))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "boxes.txt")
	packed := filepath.Join(dir, "boxes.bin")
	require.NoError(t, os.WriteFile(plain, []byte(fixture.JunctionBoxes), 0o600))
	require.NoError(t, os.WriteFile(packed, zstdBytes(t, fixture.JunctionBoxes), 0o600))

	for _, path := range []string{plain, packed} {
		ps, err := input.Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, 20, ps.Len())
		assert.Equal(t, 3, ps.Dim())
	}

	_, err := input.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1,2\n3\n"), 0o600))
	_, err = input.Load(bad)
	assert.ErrorIs(t, err, pointset.ErrRagged)
}
