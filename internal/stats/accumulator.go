// Package stats keeps the per-sample aggregates of a filtering pass.
package stats

// Sample holds the running totals for one sample column.
type Sample struct {
	Name            string
	TotalCount      uint64
	PassedCount     uint64
	TotalExpressed  uint64
	PassedExpressed uint64
}

// Metafeature is one metafeature row as seen in the input.
type Metafeature struct {
	ID     string
	Values []string
}

// Accumulator is owned by a single pass. Counts passed to RecordOrdinary and
// RecordPassed must have exactly one value per sample.
type Accumulator struct {
	threshold uint64
	samples   []Sample

	TotalGenes   uint64
	PassedGenes  uint64
	Metafeatures []Metafeature
}

// New returns zeroed aggregates for the given samples (header order).
// A sample expresses a feature when its count is >= threshold.
func New(names []string, threshold uint64) *Accumulator {
	s := make([]Sample, len(names))
	for i, n := range names {
		s[i].Name = n
	}
	return &Accumulator{threshold: threshold, samples: s}
}

func (a *Accumulator) Threshold() uint64 { return a.threshold }

// Samples returns the aggregates in header order. The slice is shared; callers
// must not modify it.
func (a *Accumulator) Samples() []Sample { return a.samples }

// RecordOrdinary counts an ordinary row, whether or not it is later kept.
func (a *Accumulator) RecordOrdinary(counts []uint64) {
	a.TotalGenes++
	for i, c := range counts {
		s := &a.samples[i]
		s.TotalCount += c
		if c >= a.threshold {
			s.TotalExpressed++
		}
	}
}

// RecordPassed counts a row that survived filtering.
func (a *Accumulator) RecordPassed(counts []uint64) {
	a.PassedGenes++
	for i, c := range counts {
		s := &a.samples[i]
		s.PassedCount += c
		if c >= a.threshold {
			s.PassedExpressed++
		}
	}
}

// RecordMeta appends a metafeature. Duplicate ids are kept as separate entries.
func (a *Accumulator) RecordMeta(id string, values []string) {
	a.Metafeatures = append(a.Metafeatures, Metafeature{ID: id, Values: values})
}

// Column returns one aggregate across all samples, in header order.
func (a *Accumulator) Column(f func(Sample) uint64) []uint64 {
	out := make([]uint64, len(a.samples))
	for i, s := range a.samples {
		out[i] = f(s)
	}
	return out
}
