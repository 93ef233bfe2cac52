// internal/counts/parse.go
package counts

import (
	"fmt"
	"strconv"
	"strings"
)

// Header is the first line of a matrix.
type Header struct {
	Line    string   // verbatim, without line terminator
	Feature string   // first column label
	Samples []string // one name per sample column
}

// ParseHeader splits the header line. An empty line means there is no header.
func ParseHeader(line string) (Header, error) {
	line = TrimEOL(line)
	if line == "" {
		return Header{}, ErrEmptyInput
	}
	f := strings.Split(line, Delim)
	return Header{Line: line, Feature: f[0], Samples: f[1:]}, nil
}

// Parser turns data lines into Rows for a fixed sample count.
type Parser struct {
	samples int
	scratch []string
}

func NewParser(h Header) *Parser {
	return &Parser{samples: len(h.Samples)}
}

// Samples returns the sample count every row is validated against.
func (p *Parser) Samples() int { return p.samples }

// Parse classifies one line. Metafeature ids are recognized before any numeric
// parsing, so their values may be arbitrary text; ordinary rows are strict.
func (p *Parser) Parse(line string) Row {
	line = TrimEOL(line)
	p.scratch = splitInto(p.scratch[:0], line)
	f := p.scratch

	if len(f)-1 != p.samples {
		return malformed(line, fmt.Errorf("%w: got %d counts, want %d", ErrFieldCount, len(f)-1, p.samples))
	}
	id := f[0]
	if IsMeta(id) {
		return Row{Kind: KindMeta, ID: id, Fields: append([]string(nil), f[1:]...), Line: line}
	}

	vals := make([]uint64, p.samples)
	for i, s := range f[1:] {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return malformed(line, fmt.Errorf("%w %q in column %d", ErrBadCount, s, i+2))
		}
		vals[i] = v
	}
	return Row{Kind: KindOrdinary, ID: id, Counts: vals, Line: line}
}

func malformed(line string, err error) Row {
	return Row{Kind: KindMalformed, Line: line, Err: err}
}

// splitInto appends the Delim-separated fields of s to dst.
func splitInto(dst []string, s string) []string {
	for {
		i := strings.Index(s, Delim)
		if i < 0 {
			return append(dst, s)
		}
		dst = append(dst, s[:i])
		s = s[i+len(Delim):]
	}
}
