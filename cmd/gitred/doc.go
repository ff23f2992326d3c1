// Gitred is a CLI for finding deletion-heavy ("red") commits in a git
// repository's history.
//
// It lists the commits in a date window, computes per-commit line-change
// statistics, and prints the commits whose change volume and deletion
// percentage meet the configured thresholds — a quick way to surface
// refactors, reverts, and dead-code removals.
//
// Usage:
//
//	gitred scan                        # red commits in the last 30 days
//	gitred scan --since 2026-01-01     # explicit window start
//	gitred scan --min-lines 50 --min-pct 80
//	gitred scan --format json          # structured report
//	gitred config init                 # write a default config file
//
// See https://github.com/dshills/gitred for full documentation.
package main
