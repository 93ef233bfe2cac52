// internal/output/router.go
package output

import (
	"io"

	"htsfilter/internal/counts"
	"htsfilter/internal/stats"
)

// Router sends rows to the main (filtered matrix) and metacount destinations.
// With a combined policy both destinations are the same writer.
//
// Router does no buffering of its own; wrap slow writers in bufio.
type Router struct {
	main   io.Writer
	meta   io.Writer
	policy Policy
	nl     []byte
}

// NewRouter builds a Router. When meta is nil the combined policy is used and
// metacounts go to main; otherwise the dedicated policy is used.
func NewRouter(main, meta io.Writer) *Router {
	r := &Router{main: main, meta: meta, policy: PolicyFor(meta != nil), nl: []byte{'\n'}}
	if meta == nil {
		r.meta = main
	}
	return r
}

func (r *Router) Policy() Policy { return r.policy }

// WriteHeader writes the input header verbatim to main and, for a dedicated
// destination, a "feature" header to metacount.
func (r *Router) WriteHeader(h counts.Header) error {
	if err := r.line(r.main, h.Line); err != nil {
		return err
	}
	if !r.policy.EmitHeader {
		return nil
	}
	return r.line(r.meta, FormatMetaRow(MetaHeaderFeature, h.Samples))
}

// WriteOrdinary writes a retained feature row verbatim to main.
func (r *Router) WriteOrdinary(row counts.Row) error {
	return r.line(r.main, row.Line)
}

// WriteMeta writes a metafeature row: verbatim into the combined stream, or
// with the marker stripped into a dedicated destination.
func (r *Router) WriteMeta(row counts.Row) error {
	if !r.policy.Separate {
		return r.line(r.main, row.Line)
	}
	id := row.ID
	if r.policy.StripMarker {
		id = counts.StripMarker(id)
	}
	return r.line(r.meta, FormatMetaRow(id, row.Fields))
}

// WriteSummary appends the per-sample summary rows. Call it once, after the
// last input row.
func (r *Router) WriteSummary(acc *stats.Accumulator) error {
	for _, s := range SummaryRows {
		if err := r.line(r.meta, FormatSummaryRow(r.policy.SummaryPrefix, s.Name, acc.Column(s.Value))); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) line(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	_, err := w.Write(r.nl)
	return err
}
