// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"htsfilter/internal/countsio"
	"htsfilter/internal/filter"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input string

	// Filters; nil = disabled
	MinCount        *uint64
	MinExpressed    *uint64
	MaxZero         *uint64
	FilterIdentical bool
	Expression      uint64

	// Output
	MetacountFile string // "" = interleave metacounts with stdout
	Summary       bool
	StatsFile     string

	// Misc
	ConfigFile string
	Verbose    int
	Quiet      bool
	Progress   bool
	NoColor    bool
	Version    bool
}

// flagValues are the raw pflag targets; optional numerics are only honored
// when the flag was actually given.
type flagValues struct {
	minCount, minExpressed, maxZero uint64
}

// Register wires all flags onto fs and returns a finalize func that copies
// the optional values into o after parsing.
func Register(fs *pflag.FlagSet, o *Options) func() {
	var fv flagValues

	fs.Uint64VarP(&fv.minCount, "min-count", "m", 0, "minimum total gene count")
	fs.Uint64VarP(&fv.minExpressed, "min-expressed", "e", 0, "minimum number of expressed samples")
	fs.Uint64VarP(&fv.maxZero, "max-zero", "z", 0, "maximum number of zero-count samples")
	fs.BoolVarP(&o.FilterIdentical, "filter-identical", "i", false, "filter out genes with zero variance (all values identical)")
	fs.Uint64VarP(&o.Expression, "expression", "x", 1, "minimum count for a sample to count as expressed")

	fs.StringVarP(&o.MetacountFile, "metacount-file", "o", "", "extract metacounts (starting with __) to file (.gz compresses)")
	fs.BoolVarP(&o.Summary, "summary", "s", false, "include sample summary metacounts")
	fs.StringVar(&o.StatsFile, "stats", "", "write a JSON run report to file")

	fs.StringVar(&o.ConfigFile, "config", "", "YAML file with default option values")
	fs.CountVarP(&o.Verbose, "verbose", "v", "verbose output; repeat to increase")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only report errors")
	fs.BoolVar(&o.Progress, "progress", false, "show a progress bar on stderr")
	fs.BoolVar(&o.NoColor, "no-color", false, "disable colored log levels")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")

	return func() {
		if fs.Changed("min-count") {
			o.MinCount = &fv.minCount
		}
		if fs.Changed("min-expressed") {
			o.MinExpressed = &fv.minExpressed
		}
		if fs.Changed("max-zero") {
			o.MaxZero = &fv.maxZero
		}
	}
}

// Validate applies CLI invariants that pflag cannot express.
func Validate(o *Options) error {
	if o.Input == "" {
		return errors.New("an input counts file is required ('-' for stdin)")
	}
	if o.MetacountFile == countsio.Stdio {
		return errors.New("--metacount-file cannot be '-'; omit it to interleave metacounts with stdout")
	}
	if o.MetacountFile != "" && o.MetacountFile == o.Input {
		return fmt.Errorf("--metacount-file %q would overwrite the input", o.MetacountFile)
	}
	if o.StatsFile != "" && (o.StatsFile == o.Input || o.StatsFile == o.MetacountFile) {
		return fmt.Errorf("--stats %q clashes with another file", o.StatsFile)
	}
	if o.Quiet && o.Verbose > 0 {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// FilterConfig returns the predicate set selected by o.
func (o *Options) FilterConfig() filter.Config {
	return filter.Config{
		MinCount:            o.MinCount,
		MinExpressed:        o.MinExpressed,
		MaxZero:             o.MaxZero,
		FilterIdentical:     o.FilterIdentical,
		ExpressionThreshold: o.Expression,
	}
}
