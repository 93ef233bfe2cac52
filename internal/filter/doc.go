// Package filter decides whether a feature row is retained.
//
// Evaluate is pure: it reads only the row's counts and the Config, never
// mutates either, and does no I/O.
package filter
