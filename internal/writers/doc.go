// Package writers dispatches run reports to format-specific renderers.
//
// Design:
//   • Renderers register themselves by format name (see internal/output).
//   • Callers pick a format string; unknown formats are an error, not a panic.
//   • Broken pipes on stdout are not failures (see IsBrokenPipe).
package writers
