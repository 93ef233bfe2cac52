package output

import "htsfilter/internal/stats"

// MetaHeaderFeature is the first column label of a dedicated metacount file.
const MetaHeaderFeature = "feature"

// Summary rows, in the order they are written after all metafeature rows.
// Keep names stable; downstream tooling matches on them.
var SummaryRows = []struct {
	Name  string
	Value func(stats.Sample) uint64
}{
	{"total_count", func(s stats.Sample) uint64 { return s.TotalCount }},
	{"passed_count", func(s stats.Sample) uint64 { return s.PassedCount }},
	{"total_expressed", func(s stats.Sample) uint64 { return s.TotalExpressed }},
	{"passed_expressed", func(s stats.Sample) uint64 { return s.PassedExpressed }},
}
