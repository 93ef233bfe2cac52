package countsio

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matrix = "gene\tA\tB\ng1\t5\t0\n"

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func writeGz(t *testing.T, path, data string) {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestOpenPlain(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "m.tsv")
	require.NoError(t, os.WriteFile(fn, []byte(matrix), 0o644))
	rc, err := Open(fn, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, matrix, readAll(t, rc))
}

func TestOpenGzipByMagic(t *testing.T) {
	// no .gz suffix on purpose
	fn := filepath.Join(t.TempDir(), "m.counts")
	writeGz(t, fn, matrix)
	rc, err := Open(fn, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, matrix, readAll(t, rc))
}

func TestOpenStdin(t *testing.T) {
	rc, err := Open(Stdio, strings.NewReader(matrix), nil)
	require.NoError(t, err)
	assert.Equal(t, matrix, readAll(t, rc))
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.tsv"), nil, nil)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenWrapSeesRawBytes(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "m.tsv.gz")
	writeGz(t, fn, matrix)
	st, err := os.Stat(fn)
	require.NoError(t, err)

	var gotSize int64
	var n int64
	rc, err := Open(fn, nil, func(r io.Reader, size int64) io.Reader {
		gotSize = size
		return io.TeeReader(r, writerFunc(func(p []byte) { n += int64(len(p)) }))
	})
	require.NoError(t, err)
	assert.Equal(t, matrix, readAll(t, rc))
	assert.Equal(t, st.Size(), gotSize)
	assert.Equal(t, st.Size(), n)
}

type writerFunc func([]byte)

func (f writerFunc) Write(p []byte) (int, error) { f(p); return len(p), nil }

func TestCreateGzip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "meta.tsv.gz")
	w, err := Create(fn)
	require.NoError(t, err)
	_, err = io.WriteString(w, "feature\tA\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rc, err := Open(fn, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "feature\tA\n", readAll(t, rc))
}
