package gitlog

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Commit identifies one commit in the history window.
type Commit struct {
	Hash    string
	Subject string
}

// Stats holds total line counts across all files touched by one commit.
type Stats struct {
	Added   int
	Deleted int
}

// Total returns the combined number of changed lines.
func (s Stats) Total() int { return s.Added + s.Deleted }

// Repo issues git queries against a single repository. An empty Dir means
// the current working directory.
type Repo struct {
	Dir string
}

// ListCommitsSince returns all commits reachable from HEAD with a commit
// date at or after since (YYYY-MM-DD), newest first. An empty window yields
// an empty slice, not an error.
func (r *Repo) ListCommitsSince(since string) ([]Commit, error) {
	// %x09 is a tab, which cannot appear inside a hash or a subject line.
	out, err := r.git("log", "--since="+since, "--pretty=format:%H%x09%s")
	if err != nil {
		return nil, fmt.Errorf("git log --since=%s: %w", since, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}

	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		hash, subject, _ := strings.Cut(line, "\t")
		commits = append(commits, Commit{Hash: hash, Subject: subject})
	}
	return commits, nil
}

// ChangeStats returns the added and deleted line totals for one commit,
// parsed from its --stat summary.
func (r *Repo) ChangeStats(hash string) (Stats, error) {
	out, err := r.git("show", "--stat", hash)
	if err != nil {
		return Stats{}, fmt.Errorf("git show --stat %s: %w", hash, err)
	}
	return ParseStat(out)
}

// Author returns the author display name for one commit.
func (r *Repo) Author(hash string) (string, error) {
	out, err := r.git("log", "-1", "--pretty=format:%an", hash)
	if err != nil {
		return "", fmt.Errorf("git log -1 %s: %w", hash, err)
	}
	return strings.TrimSpace(out), nil
}

// ParseStat totals insertion and deletion counts from git --stat output.
// Summary lines look like
//
//	3 files changed, 10 insertions(+), 2 deletions(-)
//
// with singular forms for a count of 1. Each insertion/deletion token
// contributes the number immediately before it. A commit normally has a
// single trailer line, but multiple occurrences are summed. Any token
// without a parseable count fails the whole parse.
func ParseStat(text string) (Stats, error) {
	var stats Stats
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		for i, field := range fields {
			ins := strings.HasPrefix(field, "insertion(") || strings.HasPrefix(field, "insertions(")
			del := strings.HasPrefix(field, "deletion(") || strings.HasPrefix(field, "deletions(")
			if !ins && !del {
				continue
			}
			if i == 0 {
				return Stats{}, fmt.Errorf("no count before %q in summary line %q", field, line)
			}
			n, err := strconv.Atoi(fields[i-1])
			if err != nil {
				return Stats{}, fmt.Errorf("parsing count in summary line %q: %w", line, err)
			}
			if ins {
				stats.Added += n
			} else {
				stats.Deleted += n
			}
		}
	}
	return stats, nil
}

func (r *Repo) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
