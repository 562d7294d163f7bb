package git

import (
	"github.com/go-git/go-git/v5"
	"github.com/xvierd/fsh/internal/domain"
)

// statusFlags converts a go-git file status to domain flags.
// go-git reports untracked files as Untracked on both sides; only the
// worktree side counts, as a new file. Copies in the index are new files.
func statusFlags(s *git.FileStatus) domain.FileStatusFlags {
	var flags domain.FileStatusFlags

	switch s.Worktree {
	case git.Modified:
		flags |= domain.WorktreeModified
	case git.Deleted:
		flags |= domain.WorktreeDeleted
	case git.Untracked, git.Added:
		flags |= domain.WorktreeNew
	case git.Renamed:
		flags |= domain.WorktreeRenamed
	case git.UpdatedButUnmerged:
		flags |= domain.Conflicted
	}

	switch s.Staging {
	case git.Modified:
		flags |= domain.IndexModified
	case git.Deleted:
		flags |= domain.IndexDeleted
	case git.Added, git.Copied:
		flags |= domain.IndexNew
	case git.Renamed:
		flags |= domain.IndexRenamed
	case git.UpdatedButUnmerged:
		flags |= domain.Conflicted
	}

	return flags
}
