// Package theme provides the colour palettes and lipgloss styles of the
// breadcrumb browser, plus the crumb bar appearance hosts can change at runtime.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents the complete visual theme for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Text    lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// UI element colors
	Border    lipgloss.Color
	Selection lipgloss.Color
	Highlight lipgloss.Color
}

// DefaultTheme returns the default dark theme (Midnight).
func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		// Deep space base palette
		Base:    lipgloss.Color("#0d1117"),
		Surface: lipgloss.Color("#161b22"),
		Overlay: lipgloss.Color("#21262d"),
		Muted:   lipgloss.Color("#484f58"),
		Subtle:  lipgloss.Color("#6e7681"),
		Text:    lipgloss.Color("#e6edf3"),

		Primary:   lipgloss.Color("#58a6ff"), // Electric blue
		Secondary: lipgloss.Color("#bc8cff"), // Soft purple

		Success: lipgloss.Color("#3fb950"),
		Warning: lipgloss.Color("#d29922"),
		Error:   lipgloss.Color("#f85149"),

		Border:    lipgloss.Color("#30363d"),
		Selection: lipgloss.Color("#388bfd"),
		Highlight: lipgloss.Color("#1f6feb"),
	}
}

// NeonTheme returns a vibrant neon theme.
func NeonTheme() *Theme {
	return &Theme{
		Name: "neon",

		Base:    lipgloss.Color("#0a0a0f"),
		Surface: lipgloss.Color("#12121a"),
		Overlay: lipgloss.Color("#1a1a24"),
		Muted:   lipgloss.Color("#3a3a4a"),
		Subtle:  lipgloss.Color("#5a5a6a"),
		Text:    lipgloss.Color("#f0f0f5"),

		Primary:   lipgloss.Color("#00ffff"), // Cyan
		Secondary: lipgloss.Color("#ff00ff"), // Magenta

		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0055"),

		Border:    lipgloss.Color("#2a2a3a"),
		Selection: lipgloss.Color("#00ffff"),
		Highlight: lipgloss.Color("#0088aa"),
	}
}

var themes = map[string]func() *Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
}

// ByName returns the theme registered under name.
func ByName(name string) (*Theme, error) {
	fn, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (valid: %v)", name, Names())
	}
	return fn(), nil
}

// Names returns the registered theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Appearance is the runtime-configurable look of the crumb bar.
// Title tints both the crumb text and the separator glyph.
type Appearance struct {
	Background    lipgloss.Color
	Title         lipgloss.Color
	SeparatorIcon string
}

// DefaultSeparatorIcon is drawn between crumbs when no icon is configured.
const DefaultSeparatorIcon = "›"

// DefaultAppearance derives the crumb bar appearance from a theme.
func DefaultAppearance(t *Theme) Appearance {
	if t == nil {
		t = DefaultTheme()
	}
	return Appearance{
		Background:    t.Surface,
		Title:         t.Text,
		SeparatorIcon: DefaultSeparatorIcon,
	}
}

// BarStyle returns the style of the crumb bar row.
func (a Appearance) BarStyle() lipgloss.Style {
	style := lipgloss.NewStyle()
	if a.Background != "" {
		style = style.Background(a.Background)
	}
	if a.Title != "" {
		style = style.Foreground(a.Title)
	}
	return style
}

// Styles holds all pre-configured styles for the UI.
type Styles struct {
	theme *Theme

	// Layout styles
	Header lipgloss.Style
	Footer lipgloss.Style

	// Component styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	BackHint lipgloss.Style

	// List styles
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	// Special styles
	KeyBinding lipgloss.Style
	KeyLabel   lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	s := &Styles{theme: theme}

	s.Header = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Surface).
		Bold(true).
		Padding(0, 2)

	s.Footer = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Background(theme.Surface).
		Padding(0, 1)

	s.Title = lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Italic(true)

	s.BackHint = lipgloss.NewStyle().
		Foreground(theme.Primary)

	s.ListItem = lipgloss.NewStyle().
		Foreground(theme.Text).
		Padding(0, 1)

	s.ListItemSelected = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Selection).
		Bold(true).
		Padding(0, 1)

	s.KeyBinding = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Background(theme.Overlay).
		Padding(0, 1).
		Bold(true)

	s.KeyLabel = lipgloss.NewStyle().
		Foreground(theme.Subtle)

	s.Muted = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.Error = lipgloss.NewStyle().
		Foreground(theme.Error)

	return s
}

// GetTheme returns the underlying theme.
func (s *Styles) GetTheme() *Theme {
	return s.theme
}
