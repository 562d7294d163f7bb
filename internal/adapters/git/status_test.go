package git

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/xvierd/fsh/internal/domain"
)

func TestStatusFlags(t *testing.T) {
	tests := []struct {
		name     string
		staging  git.StatusCode
		worktree git.StatusCode
		want     domain.FileStatusFlags
	}{
		{"unmodified", git.Unmodified, git.Unmodified, 0},
		{"untracked", git.Untracked, git.Untracked, domain.WorktreeNew},
		{"modified in worktree", git.Unmodified, git.Modified, domain.WorktreeModified},
		{"deleted in worktree", git.Unmodified, git.Deleted, domain.WorktreeDeleted},
		{"added to index", git.Added, git.Unmodified, domain.IndexNew},
		{"copied in index", git.Copied, git.Unmodified, domain.IndexNew},
		{"renamed in index", git.Renamed, git.Unmodified, domain.IndexRenamed},
		{"deleted in index", git.Deleted, git.Unmodified, domain.IndexDeleted},
		{"staged then modified", git.Modified, git.Modified, domain.IndexModified | domain.WorktreeModified},
		{"added then deleted", git.Added, git.Deleted, domain.IndexNew | domain.WorktreeDeleted},
		{"unmerged", git.UpdatedButUnmerged, git.UpdatedButUnmerged, domain.Conflicted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusFlags(&git.FileStatus{Staging: tt.staging, Worktree: tt.worktree})
			if got != tt.want {
				t.Errorf("statusFlags() = %v, want %v", got, tt.want)
			}
		})
	}
}
