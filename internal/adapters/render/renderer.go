package render

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"
	"github.com/xvierd/fsh/internal/config"
	"github.com/xvierd/fsh/internal/domain"
)

// escapeSeq matches a CSI escape sequence as emitted by termenv.
var escapeSeq = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// bashEscaper quotes text for PS1. bash decodes prompt escapes and then runs
// parameter expansion and command substitution on the result, so each
// backslash passes through two rounds of unquoting.
var bashEscaper = strings.NewReplacer(`\`, `\\\\`, `$`, `\\$`, "`", "\\\\`")

// zshEscaper quotes text for PROMPT under prompt_subst, which "fsh init zsh"
// turns on.
var zshEscaper = strings.NewReplacer(`\`, `\\`, `$`, `\$`, "`", "\\`", `"`, `\"`, "%", "%%")

// Options configures a Renderer.
type Options struct {
	Color string
	Shell string
	Theme config.ThemeConfig
}

// Renderer writes segments as styled text.
type Renderer struct {
	palette Palette
	colored bool
	shell   string
}

// New creates a Renderer. In auto colour mode the decision is taken from
// stderr, since stdout is captured by the shell.
func New(opts Options) *Renderer {
	return newRenderer(Profile(opts.Color, term.IsTerminal(os.Stderr.Fd())), opts)
}

func newRenderer(profile termenv.Profile, opts Options) *Renderer {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(profile)

	shell := opts.Shell
	if shell == "" {
		shell = config.ShellNone
	}

	return &Renderer{
		palette: NewPalette(lr, opts.Theme),
		colored: profile != termenv.Ascii,
		shell:   shell,
	}
}

// Profile picks the colour profile for a colour mode.
func Profile(mode string, tty bool) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		return termenv.TrueColor
	case config.ColorNever:
		return termenv.Ascii
	default:
		if tty && !termenv.EnvNoColor() {
			return termenv.TrueColor
		}
		return termenv.Ascii
	}
}

// Render returns the segments as one string. Each segment is followed by a
// single space when SpaceAfter is set.
func (r *Renderer) Render(segments []domain.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(r.segment(s))
		if s.SpaceAfter {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Write renders the segments to w.
func (r *Renderer) Write(w io.Writer, segments []domain.Segment) error {
	_, err := io.WriteString(w, r.Render(segments))
	return err
}

func (r *Renderer) segment(s domain.Segment) string {
	text := r.escapeText(s.Text)
	if !r.colored || s.Emphasis == domain.EmphasisPlain || text == "" {
		return text
	}

	style, ok := r.palette[s.Emphasis]
	if !ok {
		return text
	}
	return r.wrapEscapes(style.Render(text))
}

// escapeText protects characters the shell would interpret inside a prompt.
func (r *Renderer) escapeText(text string) string {
	switch r.shell {
	case config.ShellBash:
		return bashEscaper.Replace(text)
	case config.ShellZsh:
		return zshEscaper.Replace(text)
	default:
		return text
	}
}

// wrapEscapes marks escape sequences as zero width for the shell's line editor.
func (r *Renderer) wrapEscapes(styled string) string {
	var start, end string
	switch r.shell {
	case config.ShellBash:
		start, end = `\[`, `\]`
	case config.ShellZsh:
		start, end = "%{", "%}"
	default:
		return styled
	}
	return escapeSeq.ReplaceAllStringFunc(styled, func(seq string) string {
		return start + seq + end
	})
}
