// internal/counts/row.go
package counts

import (
	"errors"
	"strings"
)

// Marker prefixes metafeature ids (e.g. "__no_feature", "__ambiguous").
const Marker = "__"

// Delim separates fields on every line.
const Delim = "\t"

var (
	ErrEmptyInput = errors.New("failed to read input file header")
	ErrFieldCount = errors.New("field count does not match header")
	ErrBadCount   = errors.New("invalid count")
)

// Kind tags a parsed Row.
type Kind int

const (
	KindOrdinary Kind = iota
	KindMeta
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindOrdinary:
		return "ordinary"
	case KindMeta:
		return "meta"
	case KindMalformed:
		return "malformed"
	}
	return "unknown"
}

// Row is one classified data line. Which fields are meaningful depends on Kind:
//   - KindOrdinary: ID, Counts (len == sample count), Line
//   - KindMeta:     ID, Fields (raw per-sample text), Line
//   - KindMalformed: Err, Line
type Row struct {
	Kind   Kind
	ID     string
	Counts []uint64
	Fields []string
	Line   string
	Err    error
}

// IsMeta reports whether a feature id names a metafeature.
func IsMeta(id string) bool { return strings.HasPrefix(id, Marker) }

// StripMarker removes one leading Marker from id.
func StripMarker(id string) string { return strings.TrimPrefix(id, Marker) }

// TrimEOL removes a trailing "\n" or "\r\n" and nothing else.
func TrimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
