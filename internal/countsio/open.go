// internal/countsio/open.go
package countsio

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/shenwei356/xopen"
)

// Stdio names standard input.
const Stdio = "-"

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// WrapFunc lets callers observe the raw (possibly compressed) byte stream,
// e.g. for a progress bar. size is -1 when unknown.
type WrapFunc func(r io.Reader, size int64) io.Reader

// Open opens a counts matrix for reading. "-" reads stdin. Gzip input is
// detected by magic number (1F 8B), so the .gz suffix is optional.
func Open(path string, stdin io.Reader, wrap WrapFunc) (io.ReadCloser, error) {
	if path == Stdio {
		r := stdin
		if wrap != nil {
			r = wrap(r, -1)
		}
		return maybeGzip(r, nopCloser{})
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var r io.Reader = fh
	if wrap != nil {
		size := int64(-1)
		if st, err := fh.Stat(); err == nil && st.Mode().IsRegular() {
			size = st.Size()
		}
		r = wrap(fh, size)
	}
	rc, err := maybeGzip(r, fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func maybeGzip(r io.Reader, c io.Closer) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	sig, _ := br.Peek(2)
	if len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, c}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{c}}, nil
}

// Create opens an output file. A .gz suffix compresses. The returned writer is buffered; Close flushes it.
func Create(path string) (*xopen.Writer, error) {
	return xopen.Wopen(path)
}
