// Package tui renders the breadcrumb bar in a terminal and provides a small
// screen browser that drives it.
package tui

import (
	"context"

	"github.com/crumbnav/crumbnav/internal/config"
	"github.com/crumbnav/crumbnav/internal/tui/theme"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI provides the main terminal user interface.
type TUI interface {
	// Run starts the TUI with the given configuration and blocks until the
	// user exits or ctx is cancelled.
	Run(ctx context.Context, cfg *config.Config) error
}

// Model represents the application state for the TUI.
type Model interface {
	// Init initializes the model.
	Init() tea.Cmd

	// Update handles messages and updates the model.
	Update(tea.Msg) (tea.Model, tea.Cmd)

	// View renders the current view.
	View() string
}

// StyleManager provides consistent styling across the TUI.
type StyleManager interface {
	// Header renders the screen title bar across width columns.
	Header(title, back string, width int) string

	// Footer renders the key hint bar across width columns.
	Footer(text string, width int) string

	// KeyHint renders a single key with its label.
	KeyHint(key, label string) string

	// Subtitle renders a screen description.
	Subtitle(text string) string

	// DimText renders text with dimmed/grayed out styling.
	DimText(text string) string

	// Error renders error text.
	Error(text string) string

	// GetStyles returns the underlying theme styles.
	GetStyles() *theme.Styles

	// GetTheme returns the underlying theme.
	GetTheme() *theme.Theme
}

// FilterManager handles filtering of the child screen list.
type FilterManager interface {
	// ApplyFilter applies the given filter to the items.
	ApplyFilter(items []list.Item, filter string) []list.Item

	// IsActive returns true if filtering is currently active.
	IsActive() bool

	// SetActive sets the filter active state.
	SetActive(active bool)

	// UpdateInput updates the filter input model and returns a command.
	UpdateInput(msg tea.Msg) tea.Cmd

	// ClearFilter clears the current filter.
	ClearFilter()

	// GetFilterText returns the current filter text.
	GetFilterText() string

	// View renders the filter input.
	View() string
}
