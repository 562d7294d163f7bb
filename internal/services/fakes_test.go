package services

import (
	"context"

	"github.com/xvierd/fsh/internal/domain"
	"github.com/xvierd/fsh/internal/ports"
)

// fakeRepo is an in-memory ports.Repository.
type fakeRepo struct {
	head        string
	headErr     error
	headFile    string
	headFileErr error
	entries     []domain.FileStatusFlags
	statusErr   error
	state       domain.LifecycleState

	headFileReads int
}

func (r *fakeRepo) Head(context.Context) (string, error) {
	return r.head, r.headErr
}

func (r *fakeRepo) ReadHeadFile(context.Context) (string, error) {
	r.headFileReads++
	return r.headFile, r.headFileErr
}

func (r *fakeRepo) Statuses(context.Context) ([]domain.FileStatusFlags, error) {
	return r.entries, r.statusErr
}

func (r *fakeRepo) State(context.Context) domain.LifecycleState {
	return r.state
}

// fakeLocator returns a fixed repository for every directory.
type fakeLocator struct {
	repo ports.Repository
	err  error
	dirs []string
}

func (l *fakeLocator) Discover(_ context.Context, dir string) (ports.Repository, error) {
	l.dirs = append(l.dirs, dir)
	if l.err != nil {
		return nil, l.err
	}
	return l.repo, nil
}

type fakeIdentity struct {
	user string
	host string
}

func (i fakeIdentity) Username() string { return i.user }
func (i fakeIdentity) Hostname() string { return i.host }
