package ports

import (
	"context"

	"github.com/xvierd/fsh/internal/domain"
)

// PromptRequest describes one prompt render.
type PromptRequest struct {
	// Dir is the directory the prompt describes.
	Dir string
	// ExitStatus is the previous command's exit status.
	ExitStatus int
}

// PromptStateProvider provides prompt and repository state to the CLI and
// the MCP server. It is implemented by the services layer.
type PromptStateProvider interface {
	// Build returns the ordered prompt segments for the request.
	Build(ctx context.Context, req PromptRequest) ([]domain.Segment, error)

	// RepoState inspects the repository enclosing dir.
	// It returns nil state and nil error when dir is not inside a repository.
	RepoState(ctx context.Context, dir string) (*domain.RepoState, error)
}
