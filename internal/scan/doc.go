// Package scan decides which commits are "red": commits whose change
// profile is dominated by deletions.
//
// [Run] drives a [Client] through the pipeline: list the commits in the
// history window, skip merge commits, fetch per-commit line stats, apply
// the line-count and deletion-percentage thresholds, and look up authors
// for the survivors. Each commit is judged independently and emitted in
// the order received (newest first). Failures never abort a scan; they
// degrade to zero-valued stats or an empty author and are reported as
// single-line diagnostics.
package scan
