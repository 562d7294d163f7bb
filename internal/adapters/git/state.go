package git

import (
	"github.com/go-git/go-billy/v5"
	"github.com/xvierd/fsh/internal/domain"
)

// Marker files written by git while an operation is in progress.
const (
	rebaseMergeInteractive = "rebase-merge/interactive"
	rebaseMergeDir         = "rebase-merge"
	rebaseApplyRebasing    = "rebase-apply/rebasing"
	rebaseApplyApplying    = "rebase-apply/applying"
	rebaseApplyDir         = "rebase-apply"
	mergeHead              = "MERGE_HEAD"
	revertHead             = "REVERT_HEAD"
	cherryPickHead         = "CHERRY_PICK_HEAD"
	sequencerTodo          = "sequencer/todo"
	bisectLog              = "BISECT_LOG"
)

// detectLifecycle checks the marker files in precedence order; the first
// match wins, so exactly one state is reported.
func detectLifecycle(fs billy.Filesystem) domain.LifecycleState {
	switch {
	case isFile(fs, rebaseMergeInteractive):
		return domain.LifecycleRebaseInteractive
	case isDir(fs, rebaseMergeDir):
		return domain.LifecycleRebaseMerge
	case isFile(fs, rebaseApplyRebasing):
		return domain.LifecycleRebase
	case isFile(fs, rebaseApplyApplying):
		return domain.LifecycleApplyMailbox
	case isDir(fs, rebaseApplyDir):
		return domain.LifecycleApplyMailboxOrRebase
	case isFile(fs, mergeHead):
		return domain.LifecycleMerge
	case isFile(fs, revertHead):
		if isFile(fs, sequencerTodo) {
			return domain.LifecycleRevertSequence
		}
		return domain.LifecycleRevert
	case isFile(fs, cherryPickHead):
		if isFile(fs, sequencerTodo) {
			return domain.LifecycleCherryPickSequence
		}
		return domain.LifecycleCherryPick
	case isFile(fs, bisectLog):
		return domain.LifecycleBisect
	default:
		return domain.LifecycleNormal
	}
}

func isFile(fs billy.Filesystem, name string) bool {
	info, err := fs.Stat(name)
	return err == nil && !info.IsDir()
}

func isDir(fs billy.Filesystem, name string) bool {
	info, err := fs.Stat(name)
	return err == nil && info.IsDir()
}
