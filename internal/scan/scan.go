package scan

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/gitred/internal/gitlog"
)

// mergeSubjectPrefix marks commits that merge one branch into another.
// They are never red candidates and their stats are never fetched.
const mergeSubjectPrefix = "Merge branch"

// Client is the narrow view of a repository the scanner needs.
// *gitlog.Repo satisfies it; tests substitute fakes.
type Client interface {
	ListCommitsSince(since string) ([]gitlog.Commit, error)
	ChangeStats(hash string) (gitlog.Stats, error)
	Author(hash string) (string, error)
}

// Thresholds configure which commits qualify as red. Both numeric bounds
// are inclusive.
type Thresholds struct {
	Since    string // inclusive lower bound on commit date, YYYY-MM-DD
	MinLines int    // minimum added+deleted lines
	MinPct   int    // minimum deletion percentage on a 0-100 scale
}

// Match is one commit that passed both thresholds.
type Match struct {
	Hash       string  `json:"hash"`
	Subject    string  `json:"subject"`
	Author     string  `json:"author"`
	Added      int     `json:"added"`
	Deleted    int     `json:"deleted"`
	PctDeleted float64 `json:"pctDeleted"`
}

// Result is the outcome of one scan.
type Result struct {
	Since   string  `json:"since"`
	Matches []Match `json:"matches"`
}

// Options control where diagnostics go and how matches are delivered.
type Options struct {
	// Diag receives single-line diagnostics for recoverable failures.
	// Nil discards them.
	Diag io.Writer

	// OnMatch, if set, is called for each match in input order as soon
	// as it survives the filter, so text output can interleave with
	// diagnostics in processing order.
	OnMatch func(Match)
}

// Run walks the history window newest-first and collects red commits:
// non-merge commits whose change volume meets MinLines and whose deletion
// share meets MinPct. Failures never abort the scan: a failed history read
// scans zero commits, failed stats count as (0, 0), and a failed author
// lookup leaves the author empty.
func Run(client Client, th Thresholds, opts Options) *Result {
	diag := opts.Diag
	if diag == nil {
		diag = io.Discard
	}

	result := &Result{Since: th.Since, Matches: []Match{}}

	commits, err := client.ListCommitsSince(th.Since)
	if err != nil {
		fmt.Fprintf(diag, "Error retrieving git log: %v\n", err)
		return result
	}

	for _, c := range commits {
		if strings.HasPrefix(c.Subject, mergeSubjectPrefix) {
			continue
		}

		stats, err := client.ChangeStats(c.Hash)
		if err != nil {
			fmt.Fprintf(diag, "Error retrieving diff stats for commit %s: %v\n", ShortHash(c.Hash), err)
			stats = gitlog.Stats{}
		}

		total := stats.Total()
		if total < th.MinLines {
			continue
		}

		pct := 0.0
		if total > 0 {
			pct = float64(stats.Deleted) / float64(total) * 100
		}
		if pct < float64(th.MinPct) {
			continue
		}

		author, err := client.Author(c.Hash)
		if err != nil {
			fmt.Fprintf(diag, "Error retrieving author for commit %s: %v\n", ShortHash(c.Hash), err)
			author = ""
		}

		m := Match{
			Hash:       c.Hash,
			Subject:    c.Subject,
			Author:     author,
			Added:      stats.Added,
			Deleted:    stats.Deleted,
			PctDeleted: pct,
		}
		result.Matches = append(result.Matches, m)
		if opts.OnMatch != nil {
			opts.OnMatch(m)
		}
	}

	return result
}

// FormatLine renders a match in the fixed report format:
//
//	<hash8> | +<added>, -<deleted> |  <pct>% | <author>
//
// with the added count right-aligned in 5 columns, the deleted count in 6,
// and the percentage rounded to a whole number in 3.
func FormatLine(m Match) string {
	return fmt.Sprintf("%s | %5s, %6s | %3.0f%% | %s",
		ShortHash(m.Hash),
		"+"+strconv.Itoa(m.Added),
		"-"+strconv.Itoa(m.Deleted),
		m.PctDeleted,
		m.Author)
}

// Banner returns the line printed before any processing begins.
func Banner(since string) string {
	return fmt.Sprintf("Searching for commits since %s...", since)
}

// DefaultSince returns the default window start: days before now, formatted
// as YYYY-MM-DD. The clock is a parameter so callers and tests can pin it.
func DefaultSince(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format("2006-01-02")
}

// ShortHash truncates a commit hash to the 8-character display form.
func ShortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
