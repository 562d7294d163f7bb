package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Repository inspection errors.
var (
	ErrReferenceLookup = errors.New("head reference lookup failed")
	ErrMalformedHead   = errors.New("malformed head file")
	ErrStatusScan      = errors.New("status scan failed")
)

// NoHeadPlaceholder is displayed when the repository has no HEAD at all.
const NoHeadPlaceholder = "(no HEAD)"

// ReferenceKind is the outcome of resolving HEAD.
type ReferenceKind int

const (
	// ReferenceResolved means HEAD points at an existing commit.
	ReferenceResolved ReferenceKind = iota
	// ReferenceAbsent means there is no HEAD reference.
	ReferenceAbsent
	// ReferenceUnborn means HEAD names a branch that has no commits yet.
	ReferenceUnborn
)

// String returns the lowercase name of the kind.
func (k ReferenceKind) String() string {
	switch k {
	case ReferenceResolved:
		return "resolved"
	case ReferenceAbsent:
		return "absent"
	case ReferenceUnborn:
		return "unborn"
	default:
		return "unknown"
	}
}

// Reference is the current position in history.
type Reference struct {
	Kind ReferenceKind
	Name string
}

// ResolvedReference creates a reference to an existing commit.
func ResolvedReference(name string) Reference {
	return Reference{Kind: ReferenceResolved, Name: name}
}

// UnbornReference creates a reference to a branch without commits.
func UnbornReference(name string) Reference {
	return Reference{Kind: ReferenceUnborn, Name: name}
}

// AbsentReference returns the reference used when HEAD is missing.
func AbsentReference() Reference {
	return Reference{Kind: ReferenceAbsent}
}

// Display returns the text shown in the prompt.
func (r Reference) Display() string {
	if r.Kind == ReferenceAbsent {
		return NoHeadPlaceholder
	}
	return r.Name
}

// ParseHeadFile extracts the branch name from the contents of a HEAD file.
// Only the first line is read; the name is the last "/" separated part,
// so "ref: refs/heads/my-feature" yields "my-feature".
func ParseHeadFile(content string) (string, error) {
	if content == "" {
		return "", fmt.Errorf("%w: empty file", ErrMalformedHead)
	}
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimSpace(line)
	parts := strings.Split(line, "/")
	name := parts[len(parts)-1]
	if name == "" {
		return "", fmt.Errorf("%w: no branch name in %q", ErrMalformedHead, line)
	}
	return name, nil
}
