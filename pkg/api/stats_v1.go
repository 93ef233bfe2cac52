// pkg/api/stats_v1.go
package api

// StatsV1 is the stable JSON schema for a filtering run report (--stats).
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StatsV1 struct {
	Input        string          `json:"input"`
	MetacountTo  string          `json:"metacount_file,omitempty"`
	TotalGenes   uint64          `json:"total_genes"`
	PassedGenes  uint64          `json:"passed_genes"`
	Malformed    uint64          `json:"malformed_rows"`
	Threshold    uint64          `json:"expression_threshold"`
	Samples      []SampleV1      `json:"samples"`
	Metafeatures []MetafeatureV1 `json:"metafeatures"`
}

// SampleV1 carries the per-sample aggregates of a run.
type SampleV1 struct {
	Name            string `json:"name"`
	TotalCount      uint64 `json:"total_count"`
	PassedCount     uint64 `json:"passed_count"`
	TotalExpressed  uint64 `json:"total_expressed"`
	PassedExpressed uint64 `json:"passed_expressed"`
}

// MetafeatureV1 is one metafeature row, id as it appeared in the input.
type MetafeatureV1 struct {
	ID     string   `json:"id"`
	Values []string `json:"values"`
}
