package tui

import (
	"strings"

	"github.com/crumbnav/crumbnav/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// styleManager implements the StyleManager interface on top of a theme.
type styleManager struct {
	theme  *theme.Theme
	styles *theme.Styles
}

// NewStyleManager creates a StyleManager for t. A nil theme uses the default.
func NewStyleManager(t *theme.Theme) StyleManager {
	if t == nil {
		t = theme.DefaultTheme()
	}
	return &styleManager{
		theme:  t,
		styles: theme.NewStyles(t),
	}
}

// Header renders the title bar. back, when set, is drawn before the title.
func (s *styleManager) Header(title, back string, width int) string {
	var b strings.Builder
	if back != "" {
		b.WriteString(s.styles.BackHint.Render(back))
		b.WriteString(" ")
	}
	b.WriteString(title)

	return s.styles.Header.Render(fit(b.String(), width-4))
}

// Footer renders the key hint bar.
func (s *styleManager) Footer(text string, width int) string {
	return s.styles.Footer.Render(fit(text, width-2))
}

// KeyHint renders a key followed by its label.
func (s *styleManager) KeyHint(key, label string) string {
	return s.styles.KeyBinding.Render(key) + " " + s.styles.KeyLabel.Render(label)
}

// Subtitle renders a subtitle.
func (s *styleManager) Subtitle(text string) string {
	return s.styles.Subtitle.Render(text)
}

// DimText renders text with dimmed/grayed out styling.
func (s *styleManager) DimText(text string) string {
	return s.styles.Muted.Render(text)
}

// Error renders error text.
func (s *styleManager) Error(text string) string {
	return s.styles.Error.Render(text)
}

// GetStyles returns the underlying theme styles.
func (s *styleManager) GetStyles() *theme.Styles {
	return s.styles
}

// GetTheme returns the underlying theme.
func (s *styleManager) GetTheme() *theme.Theme {
	return s.theme
}

// fit pads or truncates rendered text to width cells. Non-positive widths
// leave the text alone.
func fit(text string, width int) string {
	if width <= 0 {
		return text
	}
	w := lipgloss.Width(text)
	switch {
	case w > width:
		return lipgloss.NewStyle().MaxWidth(width).Render(text)
	case w < width:
		return text + strings.Repeat(" ", width-w)
	}
	return text
}
