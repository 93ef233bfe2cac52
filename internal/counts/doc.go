// Package counts parses htseq-count style matrices line by line.
//
// A matrix is tab-delimited: a header (feature column + one column per sample)
// followed by one row per feature. Rows whose id starts with Marker are
// metafeatures (summary counters such as __no_feature) and are kept as opaque
// text. Every other row must carry exactly one non-negative integer per sample.
//
// The package never imports output, pipeline, cli or app; keep it domain-only.
package counts
