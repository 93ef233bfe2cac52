// internal/output/json.go
package output

import (
	"io"

	"htsfilter/internal/jsonutil"
	"htsfilter/internal/stats"
	"htsfilter/pkg/api"
)

// RunInfo is what the stats report needs beyond the accumulator.
type RunInfo struct {
	Input     string
	Metacount string
	Malformed uint64
}

// ToAPIStats converts the final aggregates to the stable wire schema (v1).
func ToAPIStats(info RunInfo, acc *stats.Accumulator) api.StatsV1 {
	v := api.StatsV1{
		Input:        info.Input,
		MetacountTo:  info.Metacount,
		TotalGenes:   acc.TotalGenes,
		PassedGenes:  acc.PassedGenes,
		Malformed:    info.Malformed,
		Threshold:    acc.Threshold(),
		Samples:      make([]api.SampleV1, 0, len(acc.Samples())),
		Metafeatures: make([]api.MetafeatureV1, 0, len(acc.Metafeatures)),
	}
	for _, s := range acc.Samples() {
		v.Samples = append(v.Samples, api.SampleV1{
			Name:            s.Name,
			TotalCount:      s.TotalCount,
			PassedCount:     s.PassedCount,
			TotalExpressed:  s.TotalExpressed,
			PassedExpressed: s.PassedExpressed,
		})
	}
	for _, m := range acc.Metafeatures {
		v.Metafeatures = append(v.Metafeatures, api.MetafeatureV1{ID: m.ID, Values: append([]string(nil), m.Values...)})
	}
	return v
}

// WriteStatsJSON writes the run report as pretty-indented JSON.
func WriteStatsJSON(w io.Writer, info RunInfo, acc *stats.Accumulator) error {
	return jsonutil.EncodePretty(w, ToAPIStats(info, acc))
}
