// Package cli wires together the Cobra command tree for the gitred binary.
//
// It defines the root command and all subcommands (scan, config, version),
// binds flags, reads configuration, invokes the scanner, and returns
// deterministic exit codes for CI gating.
package cli
