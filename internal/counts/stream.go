// internal/counts/stream.go
package counts

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// maxLine bounds a single matrix line; wide single-cell matrices can be long.
const maxLine = 64 * 1024 * 1024

// Visitor receives the header once, then every data row in input order.
// Returning an error from either callback stops the stream with that error.
type Visitor struct {
	Header func(Header) error
	Row    func(lineNo int, r Row) error
}

// StreamCtx scans a matrix from r in one forward pass.
//
// It is cancelable: ctx is checked between lines.
func StreamCtx(ctx context.Context, r io.Reader, v Visitor) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		return ErrEmptyInput
	}
	h, err := ParseHeader(sc.Text())
	if err != nil {
		return err
	}
	if v.Header != nil {
		if err := v.Header(h); err != nil {
			return err
		}
	}

	p := NewParser(h)
	lineNo := 1
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		row := p.Parse(sc.Text())
		if v.Row != nil {
			if err := v.Row(lineNo, row); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return nil
}
