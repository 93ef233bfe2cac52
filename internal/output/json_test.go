package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htsfilter/internal/stats"
	"htsfilter/pkg/api"
)

func TestWriteStatsJSON(t *testing.T) {
	acc := stats.New([]string{"A", "B"}, 1)
	acc.RecordOrdinary([]uint64{5, 0})
	acc.RecordPassed([]uint64{5, 0})
	acc.RecordMeta("__no_feature", []string{"10", "20"})

	var buf bytes.Buffer
	require.NoError(t, WriteStatsJSON(&buf, RunInfo{Input: "in.tsv", Malformed: 2}, acc))

	var got api.StatsV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "in.tsv", got.Input)
	assert.Equal(t, uint64(1), got.TotalGenes)
	assert.Equal(t, uint64(1), got.PassedGenes)
	assert.Equal(t, uint64(2), got.Malformed)
	assert.Equal(t, uint64(1), got.Threshold)
	require.Len(t, got.Samples, 2)
	assert.Equal(t, api.SampleV1{Name: "A", TotalCount: 5, PassedCount: 5, TotalExpressed: 1, PassedExpressed: 1}, got.Samples[0])
	require.Len(t, got.Metafeatures, 1)
	assert.Equal(t, "__no_feature", got.Metafeatures[0].ID)
	assert.NotContains(t, buf.String(), "metacount_file")
}

func TestWriteStatsJSON_EmptyListsNotNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatsJSON(&buf, RunInfo{}, stats.New(nil, 1)))
	assert.Contains(t, buf.String(), `"samples": []`)
	assert.Contains(t, buf.String(), `"metafeatures": []`)
}
