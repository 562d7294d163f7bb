// Package domain contains the core entities for fsh.
// These entities describe repository state and prompt output and are
// independent of any version-control library or terminal renderer.
package domain

import (
	"fmt"
	"strings"
)

// Emphasis is the semantic styling role of a prompt segment.
// Renderers map each emphasis to a colour; classification logic never
// refers to colours directly.
type Emphasis int

const (
	EmphasisPlain Emphasis = iota
	EmphasisIdentity
	EmphasisHost
	EmphasisLocation
	EmphasisReference
	EmphasisOperation
	EmphasisPositive
	EmphasisNegative
	EmphasisPrompt
)

var emphasisNames = map[Emphasis]string{
	EmphasisPlain:     "plain",
	EmphasisIdentity:  "identity",
	EmphasisHost:      "host",
	EmphasisLocation:  "location",
	EmphasisReference: "reference",
	EmphasisOperation: "operation",
	EmphasisPositive:  "positive",
	EmphasisNegative:  "negative",
	EmphasisPrompt:    "prompt",
}

// Emphases returns every emphasis in declaration order.
func Emphases() []Emphasis {
	return []Emphasis{
		EmphasisPlain,
		EmphasisIdentity,
		EmphasisHost,
		EmphasisLocation,
		EmphasisReference,
		EmphasisOperation,
		EmphasisPositive,
		EmphasisNegative,
		EmphasisPrompt,
	}
}

// String returns the lowercase name of the emphasis.
func (e Emphasis) String() string {
	if name, ok := emphasisNames[e]; ok {
		return name
	}
	return fmt.Sprintf("emphasis(%d)", int(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e Emphasis) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Emphasis) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for k, v := range emphasisNames {
		if v == name {
			*e = k
			return nil
		}
	}
	return fmt.Errorf("unknown emphasis %q", string(text))
}

// Segment is one unit of prompt output.
type Segment struct {
	Text       string   `json:"text"`
	Emphasis   Emphasis `json:"emphasis"`
	SpaceAfter bool     `json:"space_after"`
}

// Bold creates an emphasized segment followed by a space.
func Bold(text string, emphasis Emphasis) Segment {
	return Segment{Text: text, Emphasis: emphasis, SpaceAfter: true}
}

// Plain creates an unstyled segment followed by a space.
func Plain(text string) Segment {
	return Segment{Text: text, Emphasis: EmphasisPlain, SpaceAfter: true}
}

// NoSpace returns a copy of the segment without the trailing space.
func (s Segment) NoSpace() Segment {
	s.SpaceAfter = false
	return s
}

// Glyphs holds the fixed symbols used in repository and prompt segments.
type Glyphs struct {
	Branch   string
	Staged   string
	Unstaged string
	Arrow    string
}

// DefaultGlyphs returns the Nerd Font glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Branch:   "\ue725",
		Staged:   "+",
		Unstaged: "●",
		Arrow:    "\uf061",
	}
}
