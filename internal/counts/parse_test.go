package counts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHeader(t *testing.T, line string) Header {
	t.Helper()
	h, err := ParseHeader(line)
	require.NoError(t, err)
	return h
}

func TestParseHeader(t *testing.T) {
	h := mustHeader(t, "gene\tA\tB\r\n")
	assert.Equal(t, "gene\tA\tB", h.Line)
	assert.Equal(t, "gene", h.Feature)
	assert.Equal(t, []string{"A", "B"}, h.Samples)

	_, err := ParseHeader("\n")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseOrdinary(t *testing.T) {
	p := NewParser(mustHeader(t, "gene\tA\tB"))
	r := p.Parse("g1\t5\t0\n")
	require.Equal(t, KindOrdinary, r.Kind)
	assert.Equal(t, "g1", r.ID)
	assert.Equal(t, []uint64{5, 0}, r.Counts)
	assert.Equal(t, "g1\t5\t0", r.Line)
}

func TestParseLargeCounts(t *testing.T) {
	p := NewParser(mustHeader(t, "gene\tA"))
	r := p.Parse("g1\t18446744073709551615")
	require.Equal(t, KindOrdinary, r.Kind)
	assert.Equal(t, uint64(18446744073709551615), r.Counts[0])

	r = p.Parse("g1\t18446744073709551616")
	require.Equal(t, KindMalformed, r.Kind)
	assert.True(t, errors.Is(r.Err, ErrBadCount))
}

func TestParseMalformed(t *testing.T) {
	p := NewParser(mustHeader(t, "gene\tA\tB"))
	cases := map[string]error{
		"g1\t5":       ErrFieldCount,
		"g1\t5\t0\t1": ErrFieldCount,
		"g1\tx\t0":    ErrBadCount,
		"g1\t\t0":     ErrBadCount,
		"g1\t-1\t0":   ErrBadCount,
		"g1\t+3\t0":   ErrBadCount,
		"g1\t 1\t0":   ErrBadCount,
		"":            ErrFieldCount,
		"__meta\t1":   ErrFieldCount,
	}
	for line, want := range cases {
		r := p.Parse(line)
		assert.Equal(t, KindMalformed, r.Kind, "line %q", line)
		assert.ErrorIs(t, r.Err, want, "line %q", line)
		assert.Equal(t, line, r.Line)
	}
}

func TestParseMetaIsLenient(t *testing.T) {
	p := NewParser(mustHeader(t, "gene\tA\tB"))
	r := p.Parse("__no_feature\t10\tn/a")
	require.Equal(t, KindMeta, r.Kind)
	assert.Equal(t, "__no_feature", r.ID)
	assert.Equal(t, []string{"10", "n/a"}, r.Fields)
	assert.Nil(t, r.Counts)
}

func TestParseKeepsIDVerbatim(t *testing.T) {
	p := NewParser(mustHeader(t, "gene\tA"))
	r := p.Parse(" g1 \t3")
	require.Equal(t, KindOrdinary, r.Kind)
	assert.Equal(t, " g1 ", r.ID)
}

func TestParseFieldsNotAliased(t *testing.T) {
	p := NewParser(mustHeader(t, "gene\tA"))
	a := p.Parse("__a\t1")
	_ = p.Parse("__b\t2")
	assert.Equal(t, []string{"1"}, a.Fields)
}

func TestClassifier(t *testing.T) {
	assert.True(t, IsMeta("__ambiguous"))
	assert.True(t, IsMeta("__"))
	assert.False(t, IsMeta("_single"))
	assert.False(t, IsMeta("gene__x"))
	assert.Equal(t, "no_feature", StripMarker("__no_feature"))
	assert.Equal(t, "_x", StripMarker("___x"))
	assert.Equal(t, "gene", StripMarker("gene"))
}

func TestZeroSampleHeader(t *testing.T) {
	p := NewParser(mustHeader(t, "gene"))
	assert.Equal(t, 0, p.Samples())
	r := p.Parse("g1")
	require.Equal(t, KindOrdinary, r.Kind)
	assert.Empty(t, r.Counts)
}
