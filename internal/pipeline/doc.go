// Package pipeline runs the single forward pass over a counts matrix:
// parse, classify, accumulate, filter and route each row exactly once.
//
// The only contract to implement is Sink (see output.Router). This keeps the
// pass testable without files.
package pipeline
