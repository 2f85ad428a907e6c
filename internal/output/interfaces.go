// Package output exports the screen tree, with the crumb trail each screen
// shows, in several text formats.
package output

import (
	"context"
	"io"

	"github.com/crumbnav/crumbnav/internal/config"
)

// Formatter writes a screen tree in one output format.
type Formatter interface {
	// Format formats the tree rooted at root and writes it to w.
	Format(ctx context.Context, root *config.ScreenNode, w io.Writer) error

	// Name returns the name of the formatter.
	Name() string

	// Description returns a description of the output format.
	Description() string
}

// Manager manages multiple output formatters.
type Manager interface {
	// RegisterFormatter registers a new formatter.
	RegisterFormatter(formatter Formatter)

	// GetFormatter returns a formatter by name.
	GetFormatter(name string) (Formatter, error)

	// ListFormatters returns all available formatter names.
	ListFormatters() []string

	// Format formats the tree using the named formatter.
	Format(ctx context.Context, formatName string, root *config.ScreenNode, w io.Writer) error
}
