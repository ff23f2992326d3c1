// Package gitlog queries commit history from a git repository by shelling
// out to git.
//
// A [Repo] answers three questions: which commits exist since a date
// ([Repo.ListCommitsSince]), how many lines a commit added and deleted
// ([Repo.ChangeStats]), and who authored it ([Repo.Author]). Each query is
// a fresh git subprocess; no handle or state is retained between calls.
//
// [ParseStat] is the pure parser behind ChangeStats: it reads the summary
// lines of `git show --stat` output and totals the insertion and deletion
// counts, so it can be tested without a live repository.
package gitlog
