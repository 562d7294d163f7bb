// Package services implements prompt assembly on top of the ports.
package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/xvierd/fsh/internal/config"
	"github.com/xvierd/fsh/internal/domain"
	"github.com/xvierd/fsh/internal/ports"
	"go.uber.org/zap"
)

// PromptService implements the PromptStateProvider interface.
type PromptService struct {
	locator   ports.RepositoryLocator
	identity  ports.IdentityProvider
	inspector *RepoInspector
	cfg       config.PromptConfig
	glyphs    domain.Glyphs
	logger    *zap.Logger
	homeDir   func() (string, error)
}

var _ ports.PromptStateProvider = (*PromptService)(nil)

// NewPromptService creates a new prompt service.
func NewPromptService(
	locator ports.RepositoryLocator,
	identity ports.IdentityProvider,
	cfg config.PromptConfig,
	glyphs domain.Glyphs,
	logger *zap.Logger,
) *PromptService {
	return &PromptService{
		locator:   locator,
		identity:  identity,
		inspector: NewRepoInspector(glyphs, logger),
		cfg:       cfg,
		glyphs:    glyphs,
		logger:    logger,
		homeDir:   os.UserHomeDir,
	}
}

// Build implements ports.PromptStateProvider.
func (s *PromptService) Build(ctx context.Context, req ports.PromptRequest) ([]domain.Segment, error) {
	dir, err := s.resolveDir(req.Dir)
	if err != nil {
		return nil, err
	}

	vcs, err := s.vcsSegments(ctx, dir)
	if err != nil {
		if s.cfg.OnError == config.OnErrorFail {
			return nil, err
		}
		s.logger.Error("repository inspection failed",
			zap.String("dir", dir),
			zap.Error(err))
		vcs = nil
	}

	return lo.Flatten([][]domain.Segment{
		s.identitySegments(),
		{domain.Plain("in"), domain.Bold(s.formatDir(dir), domain.EmphasisLocation)},
		vcs,
		{s.exitSegment(req.ExitStatus)},
	}), nil
}

// RepoState implements ports.PromptStateProvider.
func (s *PromptService) RepoState(ctx context.Context, dir string) (*domain.RepoState, error) {
	dir, err := s.resolveDir(dir)
	if err != nil {
		return nil, err
	}
	repo, err := s.locator.Discover(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return s.inspector.Inspect(ctx, repo)
}

func (s *PromptService) vcsSegments(ctx context.Context, dir string) ([]domain.Segment, error) {
	if !s.cfg.VCS {
		return nil, nil
	}
	repo, err := s.locator.Discover(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return s.inspector.Segments(ctx, repo)
}

func (s *PromptService) identitySegments() []domain.Segment {
	user := domain.Bold(s.identity.Username(), domain.EmphasisIdentity)
	if !s.cfg.ShowHostname {
		return []domain.Segment{user}
	}
	return []domain.Segment{
		user.NoSpace(),
		domain.Plain("@").NoSpace(),
		domain.Bold(s.identity.Hostname(), domain.EmphasisHost),
	}
}

func (s *PromptService) exitSegment(status int) domain.Segment {
	if status == 0 {
		return domain.Bold(s.glyphs.Arrow, domain.EmphasisPrompt)
	}
	return domain.Bold(strconv.Itoa(status)+" "+s.glyphs.Arrow, domain.EmphasisNegative)
}

func (s *PromptService) resolveDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}
	return abs, nil
}

// formatDir renders dir according to the configured path style.
func (s *PromptService) formatDir(dir string) string {
	switch s.cfg.PathStyle {
	case config.PathStyleFull:
		return dir
	case config.PathStyleHome:
		home, err := s.homeDir()
		if err != nil || home == "" || home == "/" {
			return dir
		}
		if dir == home {
			return "~"
		}
		if strings.HasPrefix(dir, home+"/") {
			return "~" + strings.TrimPrefix(dir, home)
		}
		return dir
	default:
		return "C:" + strings.ReplaceAll(dir, "/", `\`)
	}
}
