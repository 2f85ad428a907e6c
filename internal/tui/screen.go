package tui

import (
	"github.com/crumbnav/crumbnav/internal/config"

	"github.com/charmbracelet/bubbles/list"
)

// Screen is one page of the browser. It implements nav.Screen along with the
// crumb title, top inset and back title capabilities.
type Screen struct {
	node      *config.ScreenNode
	topInset  float64
	backTitle string
	selected  int
}

// NewScreen creates a screen for node.
func NewScreen(node *config.ScreenNode) *Screen {
	if node == nil {
		node = &config.ScreenNode{}
	}
	return &Screen{
		node:      node,
		backTitle: DefaultBackTitle,
	}
}

// Title returns the screen title.
func (s *Screen) Title() string {
	return s.node.Title
}

// CrumbTitle returns the short title used in the crumb bar.
func (s *Screen) CrumbTitle() string {
	if s.node.CrumbTitle != "" {
		return s.node.CrumbTitle
	}
	return s.node.Title
}

// SetTopInset records the room reserved above the content.
func (s *Screen) SetTopInset(inset float64) {
	s.topInset = inset
}

// TopInset returns the reserved room above the content.
func (s *Screen) TopInset() float64 {
	return s.topInset
}

// SetBackButtonTitle sets the label next to the back hint.
func (s *Screen) SetBackButtonTitle(title string) {
	s.backTitle = title
}

// BackButtonTitle returns the label next to the back hint.
func (s *Screen) BackButtonTitle() string {
	return s.backTitle
}

// Node returns the config node the screen was built from.
func (s *Screen) Node() *config.ScreenNode {
	return s.node
}

// Items returns the list entries for the child screens.
func (s *Screen) Items() []list.Item {
	return screenItems(s.node)
}
