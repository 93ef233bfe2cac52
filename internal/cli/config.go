// internal/cli/config.go
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the filter/output flags for --config files.
//
//	min_count: 10
//	filter_identical: true
//	metacount_file: meta.tsv
type FileConfig struct {
	MinCount        *uint64 `yaml:"min_count"`
	MinExpressed    *uint64 `yaml:"min_expressed"`
	MaxZero         *uint64 `yaml:"max_zero"`
	FilterIdentical *bool   `yaml:"filter_identical"`
	Expression      *uint64 `yaml:"expression"`
	MetacountFile   *string `yaml:"metacount_file"`
	Summary         *bool   `yaml:"summary"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected.
func LoadConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// Apply copies file values into o for every option not set on the command line.
func (fc FileConfig) Apply(fs *pflag.FlagSet, o *Options) {
	unset := func(name string) bool { return !fs.Changed(name) }

	if fc.MinCount != nil && unset("min-count") {
		o.MinCount = fc.MinCount
	}
	if fc.MinExpressed != nil && unset("min-expressed") {
		o.MinExpressed = fc.MinExpressed
	}
	if fc.MaxZero != nil && unset("max-zero") {
		o.MaxZero = fc.MaxZero
	}
	if fc.FilterIdentical != nil && unset("filter-identical") {
		o.FilterIdentical = *fc.FilterIdentical
	}
	if fc.Expression != nil && unset("expression") {
		o.Expression = *fc.Expression
	}
	if fc.MetacountFile != nil && unset("metacount-file") {
		o.MetacountFile = *fc.MetacountFile
	}
	if fc.Summary != nil && unset("summary") {
		o.Summary = *fc.Summary
	}
}
