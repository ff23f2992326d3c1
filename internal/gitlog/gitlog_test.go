package gitlog

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseStat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Stats
	}{
		{
			"insertions and deletions",
			" 3 files changed, 10 insertions(+), 2 deletions(-)\n",
			Stats{Added: 10, Deleted: 2},
		},
		{
			"insertions only",
			" 1 file changed, 5 insertions(+)\n",
			Stats{Added: 5},
		},
		{
			"deletions only",
			" 2 files changed, 98 deletions(-)\n",
			Stats{Deleted: 98},
		},
		{
			"singular forms",
			" 1 file changed, 1 insertion(+), 1 deletion(-)\n",
			Stats{Added: 1, Deleted: 1},
		},
		{
			"multiple summary lines summed",
			" 1 file changed, 3 insertions(+), 4 deletions(-)\n 1 file changed, 7 insertions(+), 6 deletions(-)\n",
			Stats{Added: 10, Deleted: 10},
		},
		{
			"no summary lines",
			"commit abc\nAuthor: test\n\n    subject line\n\n main.go | 5 +++--\n",
			Stats{},
		},
		{
			"empty input",
			"",
			Stats{},
		},
		{
			"full git show output",
			"commit 1234567890abcdef1234567890abcdef12345678\n" +
				"Author: test <test@test.com>\n" +
				"Date:   Mon Jan 5 10:00:00 2026 +0000\n" +
				"\n" +
				"    remove legacy parser\n" +
				"\n" +
				" parser.go     |  4 +---\n" +
				" parser_old.go | 96 ----------\n" +
				" 2 files changed, 2 insertions(+), 98 deletions(-)\n",
			Stats{Added: 2, Deleted: 98},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStat(tt.in)
			if err != nil {
				t.Fatalf("ParseStat error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStat = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseStat_MalformedCount(t *testing.T) {
	_, err := ParseStat(" x insertions(+)\n")
	if err == nil {
		t.Fatal("ParseStat should fail on a non-numeric count")
	}
}

func TestParseStat_NoCountBeforeToken(t *testing.T) {
	_, err := ParseStat("insertions(+)\n")
	if err == nil {
		t.Fatal("ParseStat should fail when the token has no preceding count")
	}
}

func TestStatsTotal(t *testing.T) {
	s := Stats{Added: 2, Deleted: 98}
	if s.Total() != 100 {
		t.Errorf("Total = %d, want 100", s.Total())
	}
	if (Stats{}).Total() != 0 {
		t.Errorf("zero Stats Total = %d, want 0", (Stats{}).Total())
	}
}

// setupTestRepo creates a temp git repo with two commits: one adding a
// 100-line file, one shrinking it to 2 lines. Returns the repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test",
			"GIT_AUTHOR_EMAIL=test@test.com",
			"GIT_COMMITTER_NAME=test",
			"GIT_COMMITTER_EMAIL=test@test.com",
		)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("command %v failed: %v\n%s", args, err, out)
		}
	}

	run("git", "init")
	run("git", "checkout", "-b", "main")

	var big strings.Builder
	for i := 0; i < 100; i++ {
		big.WriteString("old line\n")
	}
	os.WriteFile(filepath.Join(dir, "data.txt"), []byte(big.String()), 0o644)
	run("git", "add", "-A")
	run("git", "commit", "-m", "add data file")

	os.WriteFile(filepath.Join(dir, "data.txt"), []byte("new one\nnew two\n"), 0o644)
	run("git", "add", "-A")
	run("git", "commit", "-m", "shrink data file")

	return dir
}

func TestListCommitsSince(t *testing.T) {
	repo := &Repo{Dir: setupTestRepo(t)}

	commits, err := repo.ListCommitsSince("2000-01-01")
	if err != nil {
		t.Fatalf("ListCommitsSince error: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("got %d commits, want 2", len(commits))
	}

	// Newest first
	if commits[0].Subject != "shrink data file" {
		t.Errorf("commits[0].Subject = %q, want %q", commits[0].Subject, "shrink data file")
	}
	if commits[1].Subject != "add data file" {
		t.Errorf("commits[1].Subject = %q, want %q", commits[1].Subject, "add data file")
	}
	for _, c := range commits {
		if len(c.Hash) != 40 {
			t.Errorf("hash length = %d, want 40", len(c.Hash))
		}
	}
}

func TestListCommitsSince_EmptyWindow(t *testing.T) {
	repo := &Repo{Dir: setupTestRepo(t)}

	commits, err := repo.ListCommitsSince("2999-01-01")
	if err != nil {
		t.Fatalf("ListCommitsSince error: %v", err)
	}
	if len(commits) != 0 {
		t.Errorf("got %d commits for a future window, want 0", len(commits))
	}
}

func TestListCommitsSince_NotARepo(t *testing.T) {
	repo := &Repo{Dir: t.TempDir()}

	if _, err := repo.ListCommitsSince("2000-01-01"); err == nil {
		t.Error("ListCommitsSince outside a repository should return an error")
	}
}

func TestChangeStats(t *testing.T) {
	repo := &Repo{Dir: setupTestRepo(t)}

	commits, err := repo.ListCommitsSince("2000-01-01")
	if err != nil {
		t.Fatalf("ListCommitsSince error: %v", err)
	}

	// The shrink commit replaced 100 lines with 2.
	stats, err := repo.ChangeStats(commits[0].Hash)
	if err != nil {
		t.Fatalf("ChangeStats error: %v", err)
	}
	if stats.Added != 2 {
		t.Errorf("Added = %d, want 2", stats.Added)
	}
	if stats.Deleted != 100 {
		t.Errorf("Deleted = %d, want 100", stats.Deleted)
	}
}

func TestChangeStats_BadHash(t *testing.T) {
	repo := &Repo{Dir: setupTestRepo(t)}

	if _, err := repo.ChangeStats("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"); err == nil {
		t.Error("ChangeStats with an unknown hash should return an error")
	}
}

func TestAuthor(t *testing.T) {
	repo := &Repo{Dir: setupTestRepo(t)}

	commits, err := repo.ListCommitsSince("2000-01-01")
	if err != nil {
		t.Fatalf("ListCommitsSince error: %v", err)
	}

	author, err := repo.Author(commits[0].Hash)
	if err != nil {
		t.Fatalf("Author error: %v", err)
	}
	if author != "test" {
		t.Errorf("Author = %q, want %q", author, "test")
	}
}
