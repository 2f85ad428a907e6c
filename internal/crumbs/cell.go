package crumbs

import (
	"strings"

	"github.com/crumbnav/crumbnav/internal/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Defaults for crumb cell measurement.
const (
	DefaultPaddingFactor = 1.2
	DefaultCellHeight    = 40.0
	DefaultStackSpacing  = 8.0
	DefaultSeparatorIcon = "›"
)

// Metrics controls how a cell turns measured text into its optimal size.
type Metrics struct {
	PaddingFactor float64 // horizontal scale applied to the measured title
	Height        float64 // fixed cell height
	StackSpacing  float64 // gap between the title and the separator
}

// DefaultMetrics returns the standard crumb metrics.
func DefaultMetrics() Metrics {
	return Metrics{
		PaddingFactor: DefaultPaddingFactor,
		Height:        DefaultCellHeight,
		StackSpacing:  DefaultStackSpacing,
	}
}

// Cell holds the content of one realized crumb and reports its optimal size.
type Cell struct {
	measurer Measurer
	metrics  Metrics

	title         string
	showSeparator bool
	separatorIcon string
	tint          lipgloss.Color
	maxWidth      float64
}

// NewCell creates a cell. A nil measurer is a usage error and panics.
func NewCell(measurer Measurer, metrics Metrics) *Cell {
	if measurer == nil {
		panic("crumbs: NewCell requires a Measurer")
	}
	return &Cell{
		measurer:      measurer,
		metrics:       metrics,
		separatorIcon: DefaultSeparatorIcon,
	}
}

// Configure loads a crumb into the cell.
func (c *Cell) Configure(crumb Crumb) {
	c.title = crumb.Title
	c.showSeparator = crumb.ShowSeparator
}

// SetSeparatorIcon sets the glyph drawn after the title.
func (c *Cell) SetSeparatorIcon(icon string) {
	c.separatorIcon = icon
}

// SetTint sets the colour of the title and separator.
func (c *Cell) SetTint(color lipgloss.Color) {
	c.tint = color
}

// Style returns the lipgloss style the cell is drawn with.
func (c *Cell) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.tint != "" {
		style = style.Foreground(c.tint)
	}
	return style
}

// SetMaxWidth limits title measurement to the container width. Zero means
// unconstrained.
func (c *Cell) SetMaxWidth(width float64) {
	c.maxWidth = width
}

// Title returns the configured title.
func (c *Cell) Title() string {
	return c.title
}

// SeparatorVisible reports whether the separator is drawn.
func (c *Cell) SeparatorVisible() bool {
	return c.showSeparator
}

// SeparatorWidth returns the measured width of the separator glyph.
func (c *Cell) SeparatorWidth() float64 {
	if c.separatorIcon == "" {
		return 0
	}
	return c.measurer.Measure(c.separatorIcon, 0).Width
}

// OptimalSize returns the preferred size of the cell. The measured title
// width is scaled by the padding factor, the separator and its spacing are
// added when visible, and the height is always the fixed cell height.
func (c *Cell) OptimalSize() layout.Size {
	size := c.measurer.Measure(c.title, c.maxWidth)
	size.Width *= c.metrics.PaddingFactor
	if c.showSeparator {
		size.Width += c.SeparatorWidth() + c.metrics.StackSpacing
	}
	size.Height = c.metrics.Height
	return size
}

// Text returns the plain cell content padded or cut to width columns.
func (c *Cell) Text(width int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(c.title)
	if c.showSeparator {
		b.WriteString(strings.Repeat(" ", int(c.metrics.StackSpacing)))
		b.WriteString(c.separatorIcon)
	}

	text := b.String()
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "")
	}
	return runewidth.FillRight(text, width)
}
