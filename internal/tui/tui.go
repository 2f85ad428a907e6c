package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crumbnav/crumbnav/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// tui implements the TUI interface.
type tui struct {
	logger *slog.Logger
}

// NewTUI creates a new TUI instance.
func NewTUI(logger *slog.Logger) TUI {
	if logger == nil {
		logger = slog.Default()
	}
	return &tui{logger: logger}
}

// Run starts the browser and blocks until the user exits.
func (t *tui) Run(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	app, err := NewApp(cfg, t.logger)
	if err != nil {
		return err
	}

	t.logger.Info("starting crumb browser", "theme", cfg.Theme, "root", cfg.Screens.Title)

	// Alt screen for full terminal control, cell motion for crumb clicks.
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
