// Package output formats scan results for machine consumption.
//
// Two formats are supported:
//   - json     — full structured report
//   - markdown — summary table suitable for PR comments
//
// The default text format is not rendered here: its lines are streamed by
// the scanner as commits are evaluated, so they interleave with diagnostics
// in processing order. Use [GetWriter] to obtain a [Writer] for a format
// string, or [WriteReport] to handle destination selection as well.
package output
