// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"htsfilter/internal/counts"
)

// appendUintsTSV appends "\t"-prefixed values to dst.
func appendUintsTSV(dst []byte, vals []uint64) []byte {
	for _, v := range vals {
		dst = append(dst, counts.Delim...)
		dst = strconv.AppendUint(dst, v, 10)
	}
	return dst
}

// FormatSummaryRow returns "<prefix><name>\tv1\tv2..." without a newline.
func FormatSummaryRow(prefix, name string, vals []uint64) string {
	b := make([]byte, 0, len(prefix)+len(name)+len(vals)*8)
	b = append(b, prefix...)
	b = append(b, name...)
	return string(appendUintsTSV(b, vals))
}

// FormatMetaRow returns "id\tf1\tf2..." without a newline.
func FormatMetaRow(id string, fields []string) string {
	if len(fields) == 0 {
		return id
	}
	return id + counts.Delim + strings.Join(fields, counts.Delim)
}
