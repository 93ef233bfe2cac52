// Package writers owns the output destinations of a run.
//
// Design:
//   • Writers own buffering, file creation and closing order.
//   • output formats rows; pipeline decides which rows exist.
//   • A broken pipe on any destination is a clean early exit, not an error.
package writers
