package nav

import (
	"io"
	"log/slog"
	"time"

	"github.com/crumbnav/crumbnav/internal/crumbs"
	"github.com/crumbnav/crumbnav/internal/layout"
	"github.com/crumbnav/crumbnav/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Defaults for the crumb bar.
const (
	DefaultHeaderHeight       = 60.0
	DefaultTransitionDuration = time.Second
)

// Controller keeps the crumb trail in sync with a Host's navigation stack.
// It is not safe for concurrent use; call it from the UI event loop.
type Controller struct {
	host    Host
	surface Surface
	trail   *crumbs.Trail

	visible      bool
	headerHeight float64
	duration     time.Duration
	appearance   theme.Appearance

	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHeaderHeight sets the top inset reserved for the bar.
func WithHeaderHeight(height float64) Option {
	return func(c *Controller) {
		c.headerHeight = height
	}
}

// WithTransitionDuration sets the show/hide animation duration.
func WithTransitionDuration(d time.Duration) Option {
	return func(c *Controller) {
		c.duration = d
	}
}

// WithAppearance sets the initial bar appearance.
func WithAppearance(a theme.Appearance) Option {
	return func(c *Controller) {
		c.appearance = a
	}
}

// New creates a controller driving host. The bar starts hidden.
// A nil host panics.
func New(host Host, opts ...Option) *Controller {
	if host == nil {
		panic("nav: New requires a Host")
	}

	c := &Controller{
		host:         host,
		trail:        crumbs.NewTrail(),
		headerHeight: DefaultHeaderHeight,
		duration:     DefaultTransitionDuration,
		appearance:   theme.DefaultAppearance(nil),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSurface attaches the rendering surface and pushes the current
// appearance to it. A nil surface detaches.
func (c *Controller) SetSurface(s Surface) {
	c.surface = s
	if s != nil {
		s.ApplyAppearance(c.appearance)
	}
}

// Push pushes screen on the host and records a crumb for the previous top.
func (c *Controller) Push(screen Screen, animated bool) {
	c.host.PushScreen(screen, animated)
	c.OnPush(screen)
}

// OnPush updates the trail after the host has pushed newScreen.
// The new crumb carries the title of the screen below newScreen.
func (c *Controller) OnPush(newScreen Screen) {
	screens := c.host.Screens()

	if !c.visible && len(screens) > 1 {
		c.transition(newScreen, true)
	}

	if len(screens) < 2 {
		return
	}
	previous := screens[len(screens)-2]

	c.trail.Append(CrumbTitle(previous))
	setTopInset(previous, c.headerHeight)
}

// Pop removes the last crumb and pops the host. Returns whatever the host
// returns.
func (c *Controller) Pop(animated bool) Screen {
	if c.trail.Len() > 0 {
		c.trail.RemoveLast()

		if screens := c.host.Screens(); len(screens) == 2 {
			c.transition(screens[0], false)
		}
	}

	return c.host.PopScreen(animated)
}

// TapCrumb pops back to the screen represented by the crumb at index.
// A trail of length L pops L-index times; only the final pop is animated.
// Out-of-range indices are ignored.
func (c *Controller) TapCrumb(index int) []Screen {
	count := c.trail.Len()
	if index < 0 || index >= count {
		c.logger.Debug("ignoring crumb tap", "index", index, "crumbs", count)
		return nil
	}

	popped := make([]Screen, 0, count-index)
	for i := index; i < count; i++ {
		popped = append(popped, c.Pop(i == count-1))
	}
	return popped
}

// WillShow clears the screen's back-button label and rebuilds the bar.
func (c *Controller) WillShow(screen Screen) {
	if bt, ok := screen.(BackTitler); ok {
		bt.SetBackButtonTitle("")
	}
	if c.surface != nil {
		c.surface.Reload()
		c.surface.InvalidateLayout()
	}
	c.logger.Debug("will show screen", "title", displayTitle(screen))
}

// DidShow re-lays out the bar and scrolls the last crumb to the trailing
// edge when its cell is on screen. Offscreen cells are skipped, not queued.
func (c *Controller) DidShow(screen Screen) {
	if c.surface == nil {
		return
	}

	c.surface.InvalidateLayout()

	if c.trail.Len() == 0 {
		return
	}

	target := c.trail.Len() - 1
	c.logger.Info("will scroll to crumb", "index", target)
	if c.surface.IsItemVisible(target) {
		c.surface.ScrollToItem(target, true)
		c.logger.Info("scrolled to crumb", "index", target)
	}
}

// NumberOfItems implements layout.DataSource and CrumbSource.
func (c *Controller) NumberOfItems() int {
	return c.trail.Len()
}

// CrumbAt implements CrumbSource.
func (c *Controller) CrumbAt(index int) (crumbs.Crumb, bool) {
	return c.trail.At(index)
}

// SizeForItem implements layout.Delegate. Unrealized cells have zero size.
func (c *Controller) SizeForItem(index int) layout.Size {
	if c.surface == nil {
		return layout.Size{}
	}
	size, ok := c.surface.CellSize(index)
	if !ok {
		return layout.Size{}
	}
	return size
}

// Crumbs returns a snapshot of the trail.
func (c *Controller) Crumbs() []crumbs.Crumb {
	return c.trail.Snapshot()
}

// Visible reports whether the bar is shown.
func (c *Controller) Visible() bool {
	return c.visible
}

// Depth returns the host stack depth.
func (c *Controller) Depth() int {
	return len(c.host.Screens())
}

// HeaderHeight returns the inset reserved for the bar.
func (c *Controller) HeaderHeight() float64 {
	return c.headerHeight
}

// Appearance returns the current bar appearance.
func (c *Controller) Appearance() theme.Appearance {
	return c.appearance
}

// SetBackgroundColor changes the bar background.
func (c *Controller) SetBackgroundColor(color lipgloss.Color) {
	c.appearance.Background = color
	c.applyAppearance()
}

// SetTitleColor changes the tint of crumb titles and separators.
func (c *Controller) SetTitleColor(color lipgloss.Color) {
	c.appearance.Title = color
	c.applyAppearance()
}

// SetSeparatorIcon changes the glyph drawn between crumbs.
func (c *Controller) SetSeparatorIcon(icon string) {
	c.appearance.SeparatorIcon = icon
	c.applyAppearance()
}

func (c *Controller) applyAppearance() {
	if c.surface != nil {
		c.surface.ApplyAppearance(c.appearance)
	}
}

func (c *Controller) transition(screen Screen, visible bool) {
	inset := 0.0
	if visible {
		inset = c.headerHeight
	}
	setTopInset(screen, inset)
	c.visible = visible

	c.logger.Debug("crumb bar transition", "visible", visible, "screen", displayTitle(screen))

	if c.surface != nil {
		c.surface.Transition(Transition{
			Visible:  visible,
			Duration: c.duration,
			Curve:    CurveEaseOut,
			Screen:   screen,
			Inset:    inset,
		})
	}
}
