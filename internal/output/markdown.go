package output

import (
	"fmt"
	"io"

	"github.com/dshills/gitred/internal/scan"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, result *scan.Result) error {
	fmt.Fprintf(w, "## Red Commits\n\n")
	fmt.Fprintf(w, "Commits since %s dominated by deletions: **%d**\n\n",
		result.Since, len(result.Matches))

	if len(result.Matches) == 0 {
		_, err := fmt.Fprintln(w, "No red commits found. :white_check_mark:")
		return err
	}

	fmt.Fprintf(w, "| Commit | Added | Deleted | Deleted %% | Author | Subject |\n")
	fmt.Fprintf(w, "|--------|------:|--------:|----------:|--------|---------|\n")
	for _, match := range result.Matches {
		if _, err := fmt.Fprintf(w, "| `%s` | +%d | -%d | %.0f%% | %s | %s |\n",
			scan.ShortHash(match.Hash),
			match.Added,
			match.Deleted,
			match.PctDeleted,
			match.Author,
			match.Subject); err != nil {
			return err
		}
	}
	return nil
}
