// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"

	"htsfilter/internal/cmdutil"
	"htsfilter/internal/counts"
	"htsfilter/internal/filter"
	"htsfilter/internal/stats"
)

// Sink receives routed rows. output.Router is the production implementation.
type Sink interface {
	WriteHeader(counts.Header) error
	WriteOrdinary(counts.Row) error
	WriteMeta(counts.Row) error
	WriteSummary(*stats.Accumulator) error
}

// Config controls one pass.
type Config struct {
	Filter  filter.Config
	Summary bool // append summary rows after the last metafeature
}

// Result is the finalized state of a pass.
type Result struct {
	Acc       *stats.Accumulator
	Malformed uint64
}

// Run streams the matrix from in to sink. Malformed rows are logged and
// skipped; any read or write error aborts the pass and is returned as is,
// so callers can recognize a broken pipe.
func Run(ctx context.Context, in io.Reader, cfg Config, sink Sink, log *cmdutil.Logger) (Result, error) {
	if log == nil {
		log = cmdutil.Nop()
	}
	var res Result

	err := counts.StreamCtx(ctx, in, counts.Visitor{
		Header: func(h counts.Header) error {
			res.Acc = stats.New(h.Samples, cfg.Filter.ExpressionThreshold)
			log.Debugf("header has %d samples", len(h.Samples))
			return sink.WriteHeader(h)
		},
		Row: func(n int, r counts.Row) error {
			switch r.Kind {
			case counts.KindMalformed:
				res.Malformed++
				log.Warnf("line %d: %v; skipping: %s", n, r.Err, r.Line)
				return nil
			case counts.KindMeta:
				res.Acc.RecordMeta(r.ID, r.Fields)
				return sink.WriteMeta(r)
			}

			res.Acc.RecordOrdinary(r.Counts)
			v := cfg.Filter.Evaluate(r.Counts)
			if !v.Keep {
				log.Debugf("gene %s failed filtering (%s)", r.ID, v.Detail)
				return nil
			}
			log.Tracef("gene %s passed filtering", r.ID)
			res.Acc.RecordPassed(r.Counts)
			return sink.WriteOrdinary(r)
		},
	})
	if err != nil {
		return res, err
	}

	if cfg.Summary {
		if err := sink.WriteSummary(res.Acc); err != nil {
			return res, err
		}
	}
	log.Infof("%d / %d genes passed filter", res.Acc.PassedGenes, res.Acc.TotalGenes)
	log.Infof("%d metafeatures detected", len(res.Acc.Metafeatures))
	if res.Malformed > 0 {
		log.Warnf("%s skipped", plural(res.Malformed, "malformed row"))
	}
	return res, nil
}

func plural(n uint64, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
