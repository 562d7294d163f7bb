package domain

import "encoding/json"

// RepoState is everything fsh knows about a repository after one inspection.
type RepoState struct {
	Reference Reference
	Lifecycle LifecycleState
	Changes   ChangeSummary
}

// Operation returns the in-progress operation label, if any.
func (s *RepoState) Operation() (string, bool) {
	return s.Lifecycle.Operation()
}

// IsClean returns true if there are neither staged nor unstaged changes.
func (s *RepoState) IsClean() bool {
	return !s.Changes.Staged && !s.Changes.Unstaged
}

type repoStateJSON struct {
	InRepository bool    `json:"in_repository"`
	Reference    string  `json:"reference"`
	Kind         string  `json:"kind"`
	Lifecycle    string  `json:"lifecycle"`
	Operation    *string `json:"operation"`
	Staged       bool    `json:"staged"`
	Unstaged     bool    `json:"unstaged"`
}

// MarshalJSON flattens the state for diagnostics output.
func (s RepoState) MarshalJSON() ([]byte, error) {
	view := repoStateJSON{
		InRepository: true,
		Reference:    s.Reference.Display(),
		Kind:         s.Reference.Kind.String(),
		Lifecycle:    s.Lifecycle.String(),
		Staged:       s.Changes.Staged,
		Unstaged:     s.Changes.Unstaged,
	}
	if label, ok := s.Lifecycle.Operation(); ok {
		view.Operation = &label
	}
	return json.Marshal(view)
}
