// Package ports defines the interfaces (driven and driving ports)
// for fsh following hexagonal architecture principles.
// These interfaces define the contracts between the inspection logic and
// the version-control library, the operating system and the terminal.
package ports

import (
	"context"
	"errors"

	"github.com/xvierd/fsh/internal/domain"
)

// Head lookup outcomes that are states rather than failures.
var (
	// ErrHeadNotFound is returned by Repository.Head when there is no HEAD.
	ErrHeadNotFound = errors.New("head reference not found")
	// ErrUnbornBranch is returned by Repository.Head when HEAD names a
	// branch that has no commits yet.
	ErrUnbornBranch = errors.New("head points to an unborn branch")
)

// Repository is read-only access to one version-control repository.
// A Repository is opened for a single prompt render and then discarded.
// This is a driven port (implemented by adapters).
type Repository interface {
	// Head returns the short display name of the current position in history.
	// It returns ErrHeadNotFound or ErrUnbornBranch for those states; any
	// other error is a failed lookup.
	Head(ctx context.Context) (string, error)

	// ReadHeadFile returns the raw contents of the head-pointer file.
	ReadHeadFile(ctx context.Context) (string, error)

	// Statuses returns the status flags of every changed file, with no path filter.
	Statuses(ctx context.Context) ([]domain.FileStatusFlags, error)

	// State returns the current lifecycle state. It never fails.
	State(ctx context.Context) domain.LifecycleState
}

// RepositoryLocator finds the repository enclosing a directory.
// This is a driven port (implemented by adapters).
type RepositoryLocator interface {
	// Discover returns the repository containing dir, walking upwards.
	// It returns (nil, nil) when dir is not inside a repository.
	Discover(ctx context.Context, dir string) (Repository, error)
}

// IdentityProvider resolves who and where the prompt is rendered for.
// This is a driven port (implemented by adapters).
type IdentityProvider interface {
	// Username returns the current user's login name.
	Username() string

	// Hostname returns the machine's host name.
	Hostname() string
}
