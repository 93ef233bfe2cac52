// internal/filter/filter.go
package filter

import "fmt"

// Reason names the predicate that rejected a row.
type Reason int

const (
	Passed Reason = iota
	MinCount
	MinExpressed
	MaxZero
	Identical
)

func (r Reason) String() string {
	switch r {
	case Passed:
		return "passed"
	case MinCount:
		return "min-count"
	case MinExpressed:
		return "min-expressed"
	case MaxZero:
		return "max-zero"
	case Identical:
		return "identical"
	}
	return "unknown"
}

// Config is the active predicate set. A nil threshold disables its predicate.
type Config struct {
	MinCount            *uint64
	MinExpressed        *uint64
	MaxZero             *uint64
	FilterIdentical     bool
	ExpressionThreshold uint64
}

// Default has no predicate enabled and an expression threshold of 1.
func Default() Config { return Config{ExpressionThreshold: 1} }

// Verdict is the outcome of Evaluate. Detail is a human-readable explanation
// of a rejection, suitable for debug logs.
type Verdict struct {
	Keep   bool
	Reason Reason
	Detail string
}

// Enabled reports whether any predicate can reject a row.
func (c Config) Enabled() bool {
	return c.MinCount != nil || c.MinExpressed != nil || c.MaxZero != nil || c.FilterIdentical
}

// Evaluate applies the predicates in fixed order and stops at the first that
// fails. A row is kept only if every enabled predicate passes.
func (c Config) Evaluate(counts []uint64) Verdict {
	var sum, expressed, zeros uint64
	identical := true
	for _, v := range counts {
		sum += v
		if v >= c.ExpressionThreshold {
			expressed++
		}
		if v == 0 {
			zeros++
		}
		if v != counts[0] {
			identical = false
		}
	}

	if c.MinCount != nil && sum < *c.MinCount {
		return reject(MinCount, "total count %d < %d", sum, *c.MinCount)
	}
	if c.MinExpressed != nil && expressed < *c.MinExpressed {
		return reject(MinExpressed, "expressed count %d < %d", expressed, *c.MinExpressed)
	}
	if c.MaxZero != nil && zeros > *c.MaxZero {
		return reject(MaxZero, "zero count %d > %d", zeros, *c.MaxZero)
	}
	if c.FilterIdentical && identical {
		return reject(Identical, "zero variance")
	}
	return Verdict{Keep: true, Reason: Passed}
}

func reject(r Reason, format string, a ...any) Verdict {
	return Verdict{Reason: r, Detail: fmt.Sprintf(format, a...)}
}

// Uint is a convenience for building optional thresholds.
func Uint(v uint64) *uint64 { return &v }
