package git

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/xvierd/fsh/internal/domain"
	"github.com/xvierd/fsh/internal/ports"
	"go.uber.org/zap"
)

// headFile is the head-pointer file inside the git directory.
const headFile = "HEAD"

// Repository implements the ports.Repository interface using go-git.
// dotgit is the repository's git directory, used for files go-git does not model.
type Repository struct {
	repo   *git.Repository
	dotgit billy.Filesystem
	logger *zap.Logger
}

// Ensure Repository implements ports.Repository.
var _ ports.Repository = (*Repository)(nil)

// Head returns the branch name, or for a detached HEAD a tag pointing at
// the commit or its abbreviated hash.
func (r *Repository) Head(ctx context.Context) (string, error) {
	head, err := r.repo.Head()
	if err == nil {
		return r.displayName(head), nil
	}
	if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", err
	}

	// go-git reports a missing HEAD and a HEAD naming a branch without
	// commits the same way; the unresolved reference tells them apart.
	raw, rawErr := r.repo.Storer.Reference(plumbing.HEAD)
	switch {
	case errors.Is(rawErr, plumbing.ErrReferenceNotFound):
		return "", ports.ErrHeadNotFound
	case rawErr != nil:
		return "", rawErr
	case raw.Type() == plumbing.SymbolicReference:
		r.logger.Debug("head is unborn", zap.String("target", raw.Target().String()))
		return "", ports.ErrUnbornBranch
	default:
		return "", ports.ErrHeadNotFound
	}
}

// ReadHeadFile returns the raw contents of HEAD in the git directory.
func (r *Repository) ReadHeadFile(ctx context.Context) (string, error) {
	f, err := r.dotgit.Open(headFile)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", headFile, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", headFile, err)
	}
	return string(content), nil
}

// Statuses scans the whole worktree and index.
// A bare repository has no worktree and reports no entries.
func (r *Repository) Statuses(ctx context.Context) ([]domain.FileStatusFlags, error) {
	worktree, err := r.repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}

	entries := make([]domain.FileStatusFlags, 0, len(status))
	for _, s := range status {
		entries = append(entries, statusFlags(s))
	}
	return entries, nil
}

// State inspects the git directory for in-progress operations.
func (r *Repository) State(ctx context.Context) domain.LifecycleState {
	return detectLifecycle(r.dotgit)
}

// displayName returns the short name of a resolved HEAD.
func (r *Repository) displayName(head *plumbing.Reference) string {
	if head.Name() != plumbing.HEAD {
		return head.Name().Short()
	}
	if tag := r.tagAt(head.Hash()); tag != "" {
		return tag
	}
	return GetShortCommit(head.Hash().String())
}

// tagAt returns the lexically smallest tag pointing at hash, either directly
// or through an annotated tag object.
func (r *Repository) tagAt(hash plumbing.Hash) string {
	tags, err := r.repo.Tags()
	if err != nil {
		r.logger.Debug("failed to list tags", zap.Error(err))
		return ""
	}

	found := ""
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if tag, err := r.repo.TagObject(target); err == nil {
			target = tag.Target
		}
		if target != hash {
			return nil
		}
		name := ref.Name().Short()
		if found == "" || name < found {
			found = name
		}
		return nil
	})
	if err != nil {
		r.logger.Debug("failed to iterate tags", zap.Error(err))
	}
	return found
}

// GetShortCommit returns a shortened commit hash.
func GetShortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
