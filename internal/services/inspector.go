package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/xvierd/fsh/internal/domain"
	"github.com/xvierd/fsh/internal/ports"
	"go.uber.org/zap"
)

// RepoInspector turns a repository into prompt segments.
type RepoInspector struct {
	glyphs domain.Glyphs
	logger *zap.Logger
}

// NewRepoInspector creates a new repository inspector.
func NewRepoInspector(glyphs domain.Glyphs, logger *zap.Logger) *RepoInspector {
	return &RepoInspector{glyphs: glyphs, logger: logger}
}

// ResolveReference determines the current position in history.
// A missing HEAD is reported as an absent reference; an unborn branch is
// named from the head file. Every other failure is returned.
func (i *RepoInspector) ResolveReference(ctx context.Context, repo ports.Repository) (domain.Reference, error) {
	name, err := repo.Head(ctx)
	switch {
	case err == nil:
		return domain.ResolvedReference(name), nil
	case errors.Is(err, ports.ErrHeadNotFound):
		return domain.AbsentReference(), nil
	case errors.Is(err, ports.ErrUnbornBranch):
		i.logger.Debug("head points to unborn branch, reading head file")
		content, err := repo.ReadHeadFile(ctx)
		if err != nil {
			return domain.Reference{}, fmt.Errorf("%w: %w", domain.ErrReferenceLookup, err)
		}
		branch, err := domain.ParseHeadFile(content)
		if err != nil {
			return domain.Reference{}, fmt.Errorf("%w: %w", domain.ErrReferenceLookup, err)
		}
		return domain.UnbornReference(branch), nil
	default:
		return domain.Reference{}, fmt.Errorf("%w: %w", domain.ErrReferenceLookup, err)
	}
}

// Inspect gathers the reference, lifecycle and change summary of repo.
// A nil repo means the directory is not inside a repository and yields nil.
func (i *RepoInspector) Inspect(ctx context.Context, repo ports.Repository) (*domain.RepoState, error) {
	if repo == nil {
		return nil, nil
	}

	ref, err := i.ResolveReference(ctx, repo)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lifecycle := repo.State(ctx)

	entries, err := repo.Statuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStatusScan, err)
	}

	state := &domain.RepoState{
		Reference: ref,
		Lifecycle: lifecycle,
		Changes:   domain.ClassifyStatus(entries),
	}
	i.logger.Debug("repository inspected",
		zap.String("reference", ref.Display()),
		zap.Stringer("kind", ref.Kind),
		zap.Stringer("lifecycle", lifecycle),
		zap.Bool("staged", state.Changes.Staged),
		zap.Bool("unstaged", state.Changes.Unstaged))
	return state, nil
}

// Segments returns the repository part of the prompt: the reference, the
// in-progress operation and the staged then unstaged markers.
// On failure no segments are returned.
func (i *RepoInspector) Segments(ctx context.Context, repo ports.Repository) ([]domain.Segment, error) {
	state, err := i.Inspect(ctx, repo)
	if err != nil {
		return nil, err
	}
	return i.StateSegments(state), nil
}

// StateSegments converts an inspected state into segments. A nil state
// yields an empty list.
func (i *RepoInspector) StateSegments(state *domain.RepoState) []domain.Segment {
	segments := []domain.Segment{}
	if state == nil {
		return segments
	}

	segments = append(segments,
		domain.Bold(i.glyphs.Branch+" "+state.Reference.Display(), domain.EmphasisReference))

	if label, ok := state.Operation(); ok {
		segments = append(segments,
			domain.Plain("performing a"),
			domain.Bold(label, domain.EmphasisOperation))
	}

	if state.Changes.Staged {
		segments = append(segments, domain.Bold(i.glyphs.Staged, domain.EmphasisPositive))
	}
	if state.Changes.Unstaged {
		segments = append(segments, domain.Bold(i.glyphs.Unstaged, domain.EmphasisNegative))
	}
	return segments
}
