// Package version carries the release string; overridden at build time with
// -ldflags "-X htsfilter/internal/version.Version=...".
package version

var Version = "0.3.0"
