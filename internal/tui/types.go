package tui

import (
	"time"

	"github.com/crumbnav/crumbnav/internal/config"

	"github.com/charmbracelet/bubbles/list"
)

// Layout constants for the terminal.
const (
	HeaderRows = 1
	StripRows  = 1
	FooterRows = 1

	// DefaultBackTitle is shown next to the back hint until the crumb
	// controller clears it.
	DefaultBackTitle = "Back"

	// AnimationFrame is the interval between crumb bar animation ticks.
	AnimationFrame = 33 * time.Millisecond
)

// AnimationTickMsg advances the crumb bar show/hide animation.
type AnimationTickMsg struct {
	ID   int
	Time time.Time
}

// CrumbTappedMsg is sent when a crumb is clicked.
type CrumbTappedMsg struct {
	Index int
}

// screenShownMsg marks the end of a navigation, after the new top screen
// has been drawn once.
type screenShownMsg struct {
	screen *Screen
}

// ScreenItem is a child screen entry in the list.
type ScreenItem struct {
	Node *config.ScreenNode
}

// FilterValue implements list.Item.
func (i ScreenItem) FilterValue() string {
	if i.Node == nil {
		return ""
	}
	return i.Node.Title
}

// Title implements list.DefaultItem.
func (i ScreenItem) Title() string {
	if i.Node == nil {
		return ""
	}
	if n := len(i.Node.Children); n > 0 {
		return i.Node.Title + " ›"
	}
	return i.Node.Title
}

// Description implements list.DefaultItem.
func (i ScreenItem) Description() string {
	if i.Node == nil {
		return ""
	}
	return i.Node.Description
}

func screenItems(node *config.ScreenNode) []list.Item {
	if node == nil {
		return []list.Item{}
	}
	items := make([]list.Item, 0, len(node.Children))
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		items = append(items, ScreenItem{Node: child})
	}
	return items
}
