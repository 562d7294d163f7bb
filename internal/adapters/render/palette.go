// Package render turns prompt segments into terminal text.
package render

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/fsh/internal/config"
	"github.com/xvierd/fsh/internal/domain"
)

// Palette maps each emphasis to its style. Plain has no entry.
type Palette map[domain.Emphasis]lipgloss.Style

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
func resolveTheme(theme config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	resolved := theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// NewPalette builds the bold colour styles for every non-plain emphasis.
func NewPalette(r *lipgloss.Renderer, theme config.ThemeConfig) Palette {
	t := resolveTheme(theme)
	bold := func(hex string) lipgloss.Style {
		return r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(hex)).
			TabWidth(lipgloss.NoTabConversion)
	}

	return Palette{
		domain.EmphasisIdentity:  bold(t.ColorIdentity),
		domain.EmphasisHost:      bold(t.ColorHost),
		domain.EmphasisLocation:  bold(t.ColorLocation),
		domain.EmphasisReference: bold(t.ColorReference),
		domain.EmphasisOperation: bold(t.ColorOperation),
		domain.EmphasisPositive:  bold(t.ColorPositive),
		domain.EmphasisNegative:  bold(t.ColorNegative),
		domain.EmphasisPrompt:    bold(t.ColorPrompt),
	}
}
