package tui

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/crumbnav/crumbnav/internal/crumbs"
	"github.com/crumbnav/crumbnav/internal/layout"
	"github.com/crumbnav/crumbnav/internal/nav"
	"github.com/crumbnav/crumbnav/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// StripSource feeds the strip with crumbs and their sizes.
// nav.Controller implements it.
type StripSource interface {
	nav.CrumbSource
	layout.Delegate
}

// StripConfig holds the geometry of a Strip.
type StripConfig struct {
	Metrics   crumbs.Metrics
	Spacing   float64
	LeftInset float64
	Height    float64 // container height, in layout units
	Measurer  crumbs.Measurer
	Logger    *slog.Logger
}

// DefaultStripConfig returns the standard strip geometry.
func DefaultStripConfig() StripConfig {
	return StripConfig{
		Metrics:   crumbs.DefaultMetrics(),
		Spacing:   layout.DefaultSpacing,
		LeftInset: layout.DefaultSpacing,
		Height:    nav.DefaultHeaderHeight,
	}
}

// Strip draws the crumb bar on a single terminal row and implements
// nav.Surface. Horizontal layout units are terminal columns.
type Strip struct {
	source   StripSource
	layout   *layout.TagLayout
	measurer crumbs.Measurer
	metrics  crumbs.Metrics
	logger   *slog.Logger

	appearance theme.Appearance
	cells      []*crumbs.Cell

	width     int
	height    float64
	leftInset float64
	offset    float64

	hidden  bool
	anim    stripAnimation
	nextID  int
	pending []tea.Cmd
}

type stripAnimation struct {
	id       int
	active   bool
	showing  bool
	curve    nav.Curve
	duration time.Duration
	elapsed  time.Duration
}

func (a stripAnimation) progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	p := float64(a.elapsed) / float64(a.duration)
	if p > 1 {
		return 1
	}
	return p
}

func ease(curve nav.Curve, p float64) float64 {
	switch curve {
	case nav.CurveEaseOut:
		return 1 - (1-p)*(1-p)
	default:
		return p
	}
}

// NewStrip creates a hidden strip reading from source.
func NewStrip(source StripSource, cfg StripConfig) *Strip {
	if cfg.Measurer == nil {
		cfg.Measurer = crumbs.NewTerminalMeasurer()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	l := layout.NewTagLayout()
	l.SetContainer(cfg.Height, cfg.LeftInset)
	l.SetSpacing(cfg.Spacing)
	if source != nil {
		l.SetDataSource(source)
		l.SetDelegate(source)
	}

	return &Strip{
		source:     source,
		layout:     l,
		measurer:   cfg.Measurer,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
		appearance: theme.DefaultAppearance(nil),
		cells:      make([]*crumbs.Cell, 0),
		height:     cfg.Height,
		leftInset:  cfg.LeftInset,
		hidden:     true,
	}
}

// Reload rebuilds every cell from the source.
func (s *Strip) Reload() {
	s.cells = s.cells[:0]
	if s.source == nil {
		return
	}

	for i := 0; i < s.source.NumberOfItems(); i++ {
		cr, ok := s.source.CrumbAt(i)
		if !ok {
			break
		}
		cell := crumbs.NewCell(s.measurer, s.metrics)
		cell.Configure(cr)
		s.styleCell(cell)
		s.cells = append(s.cells, cell)
	}
}

// InvalidateLayout runs a layout pass and keeps the offset in range.
func (s *Strip) InvalidateLayout() {
	s.layout.Prepare()
	s.clampOffset()
}

// CellSize implements nav.CellSizer.
func (s *Strip) CellSize(index int) (layout.Size, bool) {
	cell := s.CellFor(index)
	if cell == nil {
		return layout.Size{}, false
	}
	return cell.OptimalSize(), true
}

// CellFor returns the realized cell at index, or nil.
func (s *Strip) CellFor(index int) *crumbs.Cell {
	if index < 0 || index >= len(s.cells) {
		return nil
	}
	return s.cells[index]
}

// IsItemVisible reports whether the cell at index is realized and overlaps
// the visible window.
func (s *Strip) IsItemVisible(index int) bool {
	if s.CellFor(index) == nil {
		return false
	}
	frame, ok := s.layout.FrameAt(index)
	if !ok {
		return false
	}
	return frame.Intersects(s.viewport())
}

// ScrollToItem moves the offset so the item ends at the right edge of the
// window, leaving the trailing inset.
func (s *Strip) ScrollToItem(index int, animated bool) {
	frame, ok := s.layout.FrameAt(index)
	if !ok {
		return
	}
	s.offset = math.Max(0, frame.MaxX()+s.leftInset-float64(s.width))
	s.logger.Debug("crumb strip scrolled", "index", index, "offset", s.offset, "animated", animated)
}

// Transition flips the hidden state and starts the reveal animation.
// A transition in flight is replaced.
func (s *Strip) Transition(t nav.Transition) {
	s.hidden = !t.Visible
	s.nextID++
	s.anim = stripAnimation{
		id:       s.nextID,
		active:   t.Duration > 0,
		showing:  t.Visible,
		curve:    t.Curve,
		duration: t.Duration,
	}
	if s.anim.active {
		s.pending = append(s.pending, s.tick(s.anim.id))
	}
}

// ApplyAppearance restyles every cell.
func (s *Strip) ApplyAppearance(a theme.Appearance) {
	s.appearance = a
	for _, cell := range s.cells {
		s.styleCell(cell)
	}
}

// SetWidth sets the window width in columns.
func (s *Strip) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	s.width = width
	for _, cell := range s.cells {
		cell.SetMaxWidth(float64(width))
	}
	s.InvalidateLayout()
}

// TakeCmd returns the commands queued by transitions since the last call.
func (s *Strip) TakeCmd() tea.Cmd {
	pending := s.pending
	s.pending = nil

	switch len(pending) {
	case 0:
		return nil
	case 1:
		return pending[0]
	default:
		return tea.Batch(pending...)
	}
}

// Update advances animations and turns clicks into CrumbTappedMsg.
// Mouse events are expected in strip coordinates (row ignored).
func (s *Strip) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case AnimationTickMsg:
		if !s.anim.active || msg.ID != s.anim.id {
			return nil
		}
		s.anim.elapsed += AnimationFrame
		if s.anim.progress() >= 1 {
			s.anim.active = false
			return nil
		}
		return s.tick(s.anim.id)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		index, ok := s.HitTest(msg.X)
		if !ok {
			return nil
		}
		return func() tea.Msg { return CrumbTappedMsg{Index: index} }
	}
	return nil
}

// HitTest returns the crumb drawn at column x of the window.
func (s *Strip) HitTest(x int) (int, bool) {
	if x < 0 || x >= s.revealed() {
		return -1, false
	}
	index, ok := s.layout.ItemAt(s.offset+float64(x)+0.5, s.height/2)
	if !ok || s.CellFor(index) == nil {
		return -1, false
	}
	return index, true
}

// Hidden reports the logical visibility of the bar.
func (s *Strip) Hidden() bool {
	return s.hidden
}

// Animating reports whether a transition is still running.
func (s *Strip) Animating() bool {
	return s.anim.active
}

// Offset returns the horizontal scroll offset.
func (s *Strip) Offset() float64 {
	return s.offset
}

// ContentWidth returns the scrollable width of the crumb row.
func (s *Strip) ContentWidth() float64 {
	return s.layout.ContentSize().Width
}

// Width returns the window width in columns.
func (s *Strip) Width() int {
	return s.width
}

// View renders the visible part of the crumb row, exactly Width columns
// wide, or an empty string when the bar is hidden and idle.
func (s *Strip) View() string {
	if s.width <= 0 || (s.hidden && !s.anim.active) {
		return ""
	}

	limit := s.revealed()
	row := s.renderRow(limit)
	if limit < s.width {
		row += strings.Repeat(" ", s.width-limit)
	}
	return row
}

func (s *Strip) revealed() int {
	if !s.anim.active {
		if s.hidden {
			return 0
		}
		return s.width
	}
	frac := ease(s.anim.curve, s.anim.progress())
	if !s.anim.showing {
		frac = 1 - frac
	}
	return int(math.Round(frac * float64(s.width)))
}

func (s *Strip) renderRow(limit int) string {
	if limit <= 0 {
		return ""
	}

	bar := s.appearance.BarStyle()
	start := int(math.Round(s.offset))

	var b strings.Builder
	col := 0
	for _, f := range s.layout.FramesIn(s.viewport()) {
		cell := s.CellFor(f.Index)
		if cell == nil {
			break
		}
		x0 := int(math.Round(f.X)) - start
		x1 := int(math.Round(f.MaxX())) - start
		if x1 <= col {
			continue
		}
		if x0 >= limit {
			break
		}
		if x0 > col {
			b.WriteString(bar.Render(strings.Repeat(" ", x0-col)))
			col = x0
		}

		end := min(x1, limit)
		text := sliceColumns(cell.Text(x1-x0), col-x0, end-x0)
		style := cell.Style()
		if s.appearance.Background != "" {
			style = style.Background(s.appearance.Background)
		}
		b.WriteString(style.Render(text))
		col = end
	}

	if col < limit {
		b.WriteString(bar.Render(strings.Repeat(" ", limit-col)))
	}
	return b.String()
}

func (s *Strip) viewport() layout.Rect {
	return layout.Rect{X: s.offset, Y: 0, Width: float64(s.width), Height: s.height}
}

func (s *Strip) clampOffset() {
	limit := math.Max(0, s.ContentWidth()+s.leftInset-float64(s.width))
	if s.offset > limit {
		s.offset = limit
	}
}

func (s *Strip) styleCell(cell *crumbs.Cell) {
	cell.SetSeparatorIcon(s.appearance.SeparatorIcon)
	cell.SetTint(s.appearance.Title)
	if s.width > 0 {
		cell.SetMaxWidth(float64(s.width))
	}
}

func (s *Strip) tick(id int) tea.Cmd {
	return tea.Tick(AnimationFrame, func(t time.Time) tea.Msg {
		return AnimationTickMsg{ID: id, Time: t}
	})
}

// sliceColumns cuts the display columns [from, to) out of text. Wide runes
// split by either edge are replaced with spaces.
func sliceColumns(text string, from, to int) string {
	if to <= from {
		return ""
	}

	var b strings.Builder
	col := 0
	for _, r := range text {
		if col >= to {
			break
		}
		w := runewidth.RuneWidth(r)
		switch {
		case w == 0:
			if col >= from {
				b.WriteRune(r)
			}
		case col >= from && col+w <= to:
			b.WriteRune(r)
		case col+w > from:
			lo := max(col, from)
			hi := min(col+w, to)
			b.WriteString(strings.Repeat(" ", hi-lo))
		}
		col += w
	}
	return runewidth.FillRight(b.String(), to-from)
}
