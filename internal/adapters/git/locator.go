// Package git provides repository inspection using go-git.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/xvierd/fsh/internal/ports"
	"go.uber.org/zap"
)

var errNoGitDir = errors.New("no .git directory found")

// Locator implements the ports.RepositoryLocator interface using go-git.
type Locator struct {
	logger *zap.Logger
}

// NewLocator creates a new repository locator.
func NewLocator(logger *zap.Logger) *Locator {
	return &Locator{logger: logger}
}

// Ensure Locator implements ports.RepositoryLocator.
var _ ports.RepositoryLocator = (*Locator)(nil)

// Discover finds and opens the repository enclosing workingDir.
func (l *Locator) Discover(ctx context.Context, workingDir string) (ports.Repository, error) {
	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	// Find the git repository by traversing up the directory tree
	repoPath, err := findGitRepo(workingDir)
	if errors.Is(err, errNoGitDir) {
		l.logger.Debug("not inside a git repository", zap.String("dir", workingDir))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		l.logger.Debug("ignoring .git without a repository", zap.String("path", repoPath))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, fmt.Errorf("unsupported repository storage %T", repo.Storer)
	}

	l.logger.Debug("opened repository", zap.String("path", repoPath))
	return &Repository{
		repo:   repo,
		dotgit: storage.Filesystem(),
		logger: l.logger,
	}, nil
}

// findGitRepo traverses up the directory tree to find a .git directory.
func findGitRepo(startPath string) (string, error) {
	currentPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", startPath, err)
	}

	for {
		gitPath := filepath.Join(currentPath, ".git")
		info, err := os.Stat(gitPath)
		if err == nil && info.IsDir() {
			return currentPath, nil
		}

		// A linked worktree or submodule has a .git file with a gitdir reference
		if err == nil && !info.IsDir() {
			content, err := os.ReadFile(gitPath)
			if err == nil && strings.HasPrefix(string(content), "gitdir: ") {
				return currentPath, nil
			}
		}

		parent := filepath.Dir(currentPath)
		if parent == currentPath {
			break
		}
		currentPath = parent
	}

	return "", errNoGitDir
}
