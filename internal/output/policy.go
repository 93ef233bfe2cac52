// internal/output/policy.go
package output

import "htsfilter/internal/counts"

// Policy fixes, once per run, how metafeature output differs between the
// combined stream (metacounts interleaved with the matrix) and a dedicated
// metacount destination.
type Policy struct {
	Separate      bool   // metafeature rows go to their own destination
	StripMarker   bool   // drop counts.Marker from metafeature ids
	EmitHeader    bool   // write "feature<TAB>samples..." to the metacount destination
	SummaryPrefix string // prepended to synthetic summary row names
}

// PolicyFor returns the policy for a combined (separate=false) or dedicated
// (separate=true) metacount destination.
func PolicyFor(separate bool) Policy {
	if separate {
		return Policy{Separate: true, StripMarker: true, EmitHeader: true}
	}
	return Policy{SummaryPrefix: counts.Marker}
}
