// Package nav keeps a breadcrumb trail in sync with a navigation stack.
//
// The Controller owns the crumb list. Rendering surfaces and the layout engine
// read it through the CrumbSource, layout.DataSource and layout.Delegate
// capabilities and never mutate it.
package nav

import (
	"time"

	"github.com/crumbnav/crumbnav/internal/crumbs"
	"github.com/crumbnav/crumbnav/internal/layout"
	"github.com/crumbnav/crumbnav/internal/tui/theme"
)

// CrumbSource gives read-only access to the crumbs for rendering.
type CrumbSource interface {
	// NumberOfItems returns the number of crumbs.
	NumberOfItems() int

	// CrumbAt returns the crumb at index.
	CrumbAt(index int) (crumbs.Crumb, bool)
}

// CellSizer reports the optimal size of realized cells.
type CellSizer interface {
	// CellSize returns the optimal size of the cell at index, or false when
	// the cell is not realized.
	CellSize(index int) (layout.Size, bool)
}

// Scroller scrolls the crumb strip.
type Scroller interface {
	// IsItemVisible reports whether the cell at index is realized and inside
	// the visible area.
	IsItemVisible(index int) bool

	// ScrollToItem aligns the item with the trailing edge of the strip.
	ScrollToItem(index int, animated bool)
}

// Surface is the rendering side of the crumb bar.
type Surface interface {
	CellSizer
	Scroller

	// Reload re-reads every crumb from the data source.
	Reload()

	// InvalidateLayout runs a new layout pass.
	InvalidateLayout()

	// Transition shows or hides the bar. The visual effect is asynchronous;
	// the logical state has already changed when this is called.
	Transition(t Transition)

	// ApplyAppearance redraws the bar with a new appearance.
	ApplyAppearance(a theme.Appearance)
}

// Curve is an animation timing curve.
type Curve int

const (
	CurveLinear Curve = iota
	CurveEaseOut
)

// Transition describes a visibility change of the crumb bar.
type Transition struct {
	Visible  bool
	Duration time.Duration
	Curve    Curve
	Screen   Screen  // screen receiving the inset change
	Inset    float64 // top inset applied to Screen
}
