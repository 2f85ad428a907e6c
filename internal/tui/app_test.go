package tui

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/crumbnav/crumbnav/internal/config"
	"github.com/crumbnav/crumbnav/internal/crumbs"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	app, err := NewApp(config.NewConfig(), nil)
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(app *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = app.Update(keyPress(k))
	}
	return cmd
}

func crumbTitles(list []crumbs.Crumb) []string {
	titles := make([]string, 0, len(list))
	for _, c := range list {
		titles = append(titles, c.Title)
	}
	return titles
}

func TestNewAppErrors(t *testing.T) {
	if _, err := NewApp(nil, nil); err == nil {
		t.Error("NewApp(nil) should fail")
	}

	cfg := config.NewConfig()
	cfg.Theme = "unknown"
	if _, err := NewApp(cfg, nil); err == nil {
		t.Error("NewApp() with an unknown theme should fail")
	}
}

func TestAppStartsAtRoot(t *testing.T) {
	app := newTestApp(t)

	if got := app.Top().Title(); got != "Home" {
		t.Errorf("Top() = %q, want %q", got, "Home")
	}
	if app.Controller().Visible() {
		t.Error("crumb bar should be hidden at the root")
	}
	if len(app.list.Items()) != 3 {
		t.Errorf("list items = %d, want 3", len(app.list.Items()))
	}
	if app.Init() == nil {
		t.Error("Init() should schedule the did-show notification")
	}
}

func TestAppPushAndPop(t *testing.T) {
	app := newTestApp(t)

	press(app, "enter")
	if got := app.Top().Title(); got != "Settings" {
		t.Fatalf("Top() = %q, want %q", got, "Settings")
	}
	if got := crumbTitles(app.Controller().Crumbs()); !reflect.DeepEqual(got, []string{"Home"}) {
		t.Errorf("crumbs = %v, want [Home]", got)
	}
	if !app.Controller().Visible() || app.Strip().Hidden() {
		t.Error("crumb bar should be visible after the first push")
	}
	if app.Top().BackButtonTitle() != "" {
		t.Errorf("back title = %q, want cleared", app.Top().BackButtonTitle())
	}
	if app.Top().TopInset() != config.DefaultHeaderHeight {
		t.Errorf("top inset = %v, want %v", app.Top().TopInset(), config.DefaultHeaderHeight)
	}

	press(app, "down", "enter")
	if got := app.Top().Title(); got != "Display" {
		t.Fatalf("Top() = %q, want %q", got, "Display")
	}
	list := app.Controller().Crumbs()
	want := []crumbs.Crumb{{Title: "Home", ShowSeparator: true}, {Title: "Settings", ShowSeparator: false}}
	if !reflect.DeepEqual(list, want) {
		t.Errorf("crumbs = %+v, want %+v", list, want)
	}

	press(app, "esc")
	if got := app.Top().Title(); got != "Settings" {
		t.Errorf("Top() after pop = %q, want %q", got, "Settings")
	}
	if got := app.list.Index(); got != 1 {
		t.Errorf("restored selection = %d, want 1", got)
	}

	press(app, "esc")
	if app.Controller().Visible() {
		t.Error("crumb bar should hide when back at the root")
	}

	if cmd := press(app, "esc"); cmd != nil {
		t.Error("popping the root should do nothing")
	}
	if app.stack.Len() != 1 {
		t.Errorf("depth = %d, want 1", app.stack.Len())
	}
}

func TestAppCrumbUsesShortTitle(t *testing.T) {
	app := newTestApp(t)

	// Home > Library > Collections (crumb title "Colls") > Favorites
	press(app, "down", "enter", "enter", "enter")

	got := crumbTitles(app.Controller().Crumbs())
	if !reflect.DeepEqual(got, []string{"Home", "Library", "Colls"}) {
		t.Errorf("crumbs = %v, want [Home Library Colls]", got)
	}
}

func TestAppDigitTapsCrumb(t *testing.T) {
	app := newTestApp(t)
	press(app, "enter", "enter", "enter")

	if app.stack.Len() != 4 {
		t.Fatalf("depth = %d, want 4", app.stack.Len())
	}
	app.stack.ResetPopLog()

	press(app, "2")
	if got := app.Top().Title(); got != "Settings" {
		t.Errorf("Top() = %q, want %q", got, "Settings")
	}
	if got := app.stack.PopLog(); !reflect.DeepEqual(got, []bool{false, true}) {
		t.Errorf("pop flags = %v, want [false true]", got)
	}

	if cmd := press(app, "9"); cmd != nil {
		t.Error("tapping a missing crumb should do nothing")
	}
}

func TestAppMouseTapsCrumb(t *testing.T) {
	app := newTestApp(t)
	press(app, "enter", "enter")
	finishAnimation(t, app.Strip())

	view := app.View()
	if !strings.Contains(view, "Home") {
		t.Fatalf("View() should show the crumb bar:\n%s", view)
	}

	// Home starts at the left inset.
	_, cmd := app.Update(tea.MouseMsg{X: 9, Y: HeaderRows, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd == nil {
		t.Fatal("click on the first crumb should produce a command")
	}
	app.Update(cmd())

	if got := app.Top().Title(); got != "Home" {
		t.Errorf("Top() = %q, want %q", got, "Home")
	}

	// Clicks outside the strip row are ignored.
	press(app, "enter")
	finishAnimation(t, app.Strip())
	if _, cmd := app.Update(tea.MouseMsg{X: 9, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}); cmd != nil {
		t.Error("click below the strip should be ignored")
	}
}

func TestAppDidShowOnlyForTop(t *testing.T) {
	app := newTestApp(t)
	press(app, "enter")
	stale := app.Top()
	press(app, "enter")

	// A late notification for a screen that is no longer on top is ignored.
	app.Update(screenShownMsg{screen: stale})
	app.Update(screenShownMsg{screen: app.Top()})

	if got := app.Strip().Offset(); got != 0 {
		t.Errorf("Offset() = %v, want 0 while the crumbs fit", got)
	}
}

func TestAppFilter(t *testing.T) {
	app := newTestApp(t)
	press(app, "enter")

	press(app, "/", "n", "e", "t")
	if got := len(app.list.Items()); got != 1 {
		t.Fatalf("filtered items = %d, want 1", got)
	}
	if got := app.list.Items()[0].(ScreenItem).Node.Title; got != "Network" {
		t.Errorf("filtered item = %q, want %q", got, "Network")
	}

	// q types into the filter instead of quitting.
	press(app, "q")
	if got := app.filter.GetFilterText(); got != "netq" {
		t.Errorf("filter text = %q, want %q", got, "netq")
	}

	press(app, "esc")
	if got := len(app.list.Items()); got != 3 {
		t.Errorf("items after clearing = %d, want 3", got)
	}
	if app.stack.Len() != 2 {
		t.Errorf("esc in the filter should not pop, depth = %d", app.stack.Len())
	}
}

func TestAppQuit(t *testing.T) {
	app := newTestApp(t)

	cmd := press(app, "q")
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce tea.QuitMsg")
	}
}

func TestAppView(t *testing.T) {
	app := newTestApp(t)

	view := app.View()
	for _, want := range []string{"Home", "Settings", "Library", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q", want)
		}
	}

	press(app, "enter", "enter", "enter")
	view = app.View()
	if !strings.Contains(view, "Wi-Fi") {
		t.Errorf("View() should show the Wi-Fi screen:\n%s", view)
	}
	if !strings.Contains(view, "No further screens") {
		t.Errorf("View() of a leaf screen should say so:\n%s", view)
	}
	if !strings.Contains(view, "‹") {
		t.Errorf("View() should show the back hint:\n%s", view)
	}
}

func TestTUIRunRequiresConfig(t *testing.T) {
	if err := NewTUI(nil).Run(context.Background(), nil); err == nil {
		t.Error("Run() with a nil config should fail")
	}
}
