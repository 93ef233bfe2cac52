// internal/writers/outputs.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"htsfilter/internal/countsio"
)

// Outputs are the two logical destinations of a run. Meta is nil when
// metacounts are interleaved with Main.
type Outputs struct {
	Main *bufio.Writer
	Meta io.Writer

	metaCloser io.Closer
}

// Open buffers stdout as the main destination and, when metaPath is set,
// creates the metacount file.
func Open(stdout io.Writer, metaPath string) (*Outputs, error) {
	o := &Outputs{Main: bufio.NewWriterSize(stdout, 64<<10)}
	if metaPath == "" {
		return o, nil
	}
	w, err := countsio.Create(metaPath)
	if err != nil {
		return nil, fmt.Errorf("create metacount file: %w", err)
	}
	o.Meta, o.metaCloser = w, w
	return o, nil
}

// Close flushes main, then closes the metacount file. It returns the first
// error; the metacount file is closed even if main fails.
func (o *Outputs) Close() error {
	err := o.Main.Flush()
	if o.metaCloser != nil {
		if cerr := o.metaCloser.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close metacount file: %w", cerr)
		}
		o.metaCloser = nil
	}
	return err
}

// WriteFile creates path and hands it to write, closing it afterwards.
func WriteFile(path string, write func(io.Writer) error) error {
	w, err := countsio.Create(path)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
