package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/crumbnav/crumbnav/internal/config"
	"github.com/crumbnav/crumbnav/internal/crumbs"
	"github.com/crumbnav/crumbnav/internal/nav"
	"github.com/crumbnav/crumbnav/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is a screen browser over a configured screen tree. Navigation goes
// through a nav.Controller, which keeps the crumb strip in sync.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	styles StyleManager
	filter FilterManager
	keys   keyMap

	stack *nav.Stack
	ctrl  *nav.Controller
	strip *Strip
	list  list.Model

	width  int
	height int
}

// NewApp builds the browser for cfg. The root screen is shown immediately.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	t, err := theme.ByName(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	styles := NewStyleManager(t)

	root := NewScreen(cfg.Screens)
	stack := nav.NewStack(root)
	ctrl := nav.New(stack,
		nav.WithLogger(logger),
		nav.WithHeaderHeight(cfg.Layout.HeaderHeight),
		nav.WithAppearance(appearanceFor(t, cfg.Appearance)),
	)

	strip := NewStrip(ctrl, StripConfig{
		Metrics: crumbs.Metrics{
			PaddingFactor: cfg.Layout.PaddingFactor,
			Height:        cfg.Layout.CellHeight,
			StackSpacing:  cfg.Layout.StackSpacing,
		},
		Spacing:   cfg.Layout.Spacing,
		LeftInset: cfg.Layout.LeftInset,
		Height:    cfg.Layout.HeaderHeight,
		Logger:    logger,
	})
	ctrl.SetSurface(strip)

	a := &App{
		cfg:    cfg,
		logger: logger,
		styles: styles,
		filter: NewFilterManager(),
		keys:   defaultKeyMap(),
		stack:  stack,
		ctrl:   ctrl,
		strip:  strip,
		list:   newScreenList(styles.GetTheme()),
		width:  80,
		height: 24,
	}
	a.resize()
	a.show(root)

	return a, nil
}

func appearanceFor(t *theme.Theme, c config.AppearanceConfig) theme.Appearance {
	a := theme.DefaultAppearance(t)
	if c.Background != "" {
		a.Background = lipgloss.Color(c.Background)
	}
	if c.Title != "" {
		a.Title = lipgloss.Color(c.Title)
	}
	if c.Separator != "" {
		a.SeparatorIcon = c.Separator
	}
	return a
}

func newScreenList(t *theme.Theme) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(t.Text).
		Background(t.Selection).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(t.Subtle).
		Background(t.Selection)

	l := list.New([]list.Item{}, delegate, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

// Init delivers the did-show notification for the root screen.
func (a *App) Init() tea.Cmd {
	return a.shown(a.Top())
}

// Update handles messages and updates the model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.MouseMsg:
		if a.stripShown() && msg.Y == HeaderRows {
			return a, a.strip.Update(msg)
		}
		return a, nil

	case AnimationTickMsg:
		return a, a.strip.Update(msg)

	case CrumbTappedMsg:
		return a, a.TapCrumb(msg.Index)

	case screenShownMsg:
		if msg.screen != nil && msg.screen == a.Top() {
			a.ctrl.DidShow(msg.screen)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.filter.IsActive() {
		switch msg.String() {
		case "esc":
			a.filter.ClearFilter()
			return a, a.refreshItems()
		case "enter":
			a.filter.SetActive(false)
			return a, nil
		default:
			cmd := a.filter.UpdateInput(msg)
			return a, tea.Batch(cmd, a.refreshItems())
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Open):
		item, ok := a.list.SelectedItem().(ScreenItem)
		if !ok || item.Node == nil {
			return a, nil
		}
		return a, a.Push(item.Node)

	case key.Matches(msg, a.keys.Back):
		return a, a.Pop()

	case key.Matches(msg, a.keys.Crumb):
		if index, ok := crumbIndex(msg.String()); ok {
			return a, a.TapCrumb(index)
		}
		return a, nil

	case key.Matches(msg, a.keys.Filter):
		a.filter.SetActive(true)
		return a, nil
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// Push opens the screen for node.
func (a *App) Push(node *config.ScreenNode) tea.Cmd {
	a.Top().selected = a.list.Index()

	screen := NewScreen(node)
	a.ctrl.Push(screen, true)
	a.logger.Debug("pushed screen", "title", screen.Title(), "depth", a.stack.Len())
	return a.show(screen)
}

// Pop returns to the previous screen. The root screen stays.
func (a *App) Pop() tea.Cmd {
	if a.stack.Len() <= 1 {
		return nil
	}
	a.ctrl.Pop(true)
	return a.show(a.Top())
}

// TapCrumb pops back to the screen represented by the crumb at index.
func (a *App) TapCrumb(index int) tea.Cmd {
	if popped := a.ctrl.TapCrumb(index); len(popped) == 0 {
		return nil
	}
	return a.show(a.Top())
}

// Top returns the visible screen.
func (a *App) Top() *Screen {
	top, _ := a.stack.Top().(*Screen)
	return top
}

// Controller returns the crumb controller.
func (a *App) Controller() *nav.Controller {
	return a.ctrl
}

// Strip returns the crumb strip.
func (a *App) Strip() *Strip {
	return a.strip
}

// show runs the will-show step synchronously and schedules did-show.
func (a *App) show(screen *Screen) tea.Cmd {
	a.ctrl.WillShow(screen)
	a.filter.ClearFilter()
	a.resize()

	cmds := []tea.Cmd{a.refreshItems()}
	a.list.Select(screen.selected)

	cmds = append(cmds, a.strip.TakeCmd(), a.shown(screen))
	return tea.Batch(cmds...)
}

func (a *App) shown(screen *Screen) tea.Cmd {
	return func() tea.Msg {
		return screenShownMsg{screen: screen}
	}
}

func (a *App) refreshItems() tea.Cmd {
	items := a.Top().Items()
	items = a.filter.ApplyFilter(items, a.filter.GetFilterText())
	return a.list.SetItems(items)
}

func (a *App) stripShown() bool {
	return !a.strip.Hidden() || a.strip.Animating()
}

func (a *App) resize() {
	a.strip.SetWidth(a.width)

	rows := a.height - HeaderRows - FooterRows - 1
	if a.stripShown() {
		rows -= StripRows
	}
	if rows < 1 {
		rows = 1
	}
	a.list.SetSize(a.width, rows)
}

// View renders the browser.
func (a *App) View() string {
	top := a.Top()

	back := ""
	if a.stack.Len() > 1 {
		back = strings.TrimSpace("‹ " + top.BackButtonTitle())
	}

	sections := []string{a.styles.Header(top.Title(), back, a.width)}
	if a.stripShown() {
		sections = append(sections, a.strip.View())
	}

	subtitle := top.Node().Description
	if a.filter.IsActive() || a.filter.GetFilterText() != "" {
		subtitle = a.filter.View()
	}
	sections = append(sections, a.styles.Subtitle(subtitle))

	if len(a.list.Items()) == 0 {
		sections = append(sections, a.styles.DimText("  No further screens"))
	} else {
		sections = append(sections, a.list.View())
	}

	sections = append(sections, a.styles.Footer(a.footer(), a.width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) footer() string {
	hints := make([]string, 0, len(a.keys.ShortHelp()))
	for _, b := range a.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, a.styles.KeyHint(h.Key, h.Desc))
	}
	return strings.Join(hints, "  ")
}
