// Package identity looks up the current user and host name.
package identity

import (
	"os"
	"os/user"

	"github.com/xvierd/fsh/internal/ports"
	"go.uber.org/zap"
)

// Unknown is shown when a lookup fails.
const Unknown = "unknown"

// System reads identity from the operating system.
type System struct {
	logger   *zap.Logger
	current  func() (*user.User, error)
	hostname func() (string, error)
}

var _ ports.IdentityProvider = (*System)(nil)

// NewSystem creates an identity provider backed by os/user and os.Hostname.
func NewSystem(logger *zap.Logger) *System {
	return &System{
		logger:   logger,
		current:  user.Current,
		hostname: os.Hostname,
	}
}

// Username returns the login name of the current user.
func (s *System) Username() string {
	u, err := s.current()
	if err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	s.logger.Debug("username lookup failed", zap.Error(err))
	return Unknown
}

// Hostname returns the machine's host name.
func (s *System) Hostname() string {
	name, err := s.hostname()
	if err != nil || name == "" {
		s.logger.Debug("hostname lookup failed", zap.Error(err))
		return Unknown
	}
	return name
}
