package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// filterManager implements the FilterManager interface.
type filterManager struct {
	input  textinput.Model
	active bool
}

// NewFilterManager creates a new FilterManager instance.
func NewFilterManager() FilterManager {
	input := textinput.New()
	input.Placeholder = "Filter screens..."
	input.CharLimit = 64
	input.Width = 40
	input.Prompt = "/ "

	return &filterManager{
		input:  input,
		active: false,
	}
}

// ApplyFilter keeps the screen items whose title, crumb title or
// description match filter.
func (fm *filterManager) ApplyFilter(items []list.Item, filter string) []list.Item {
	if filter == "" {
		return items
	}

	filtered := make([]list.Item, 0, len(items))
	for _, item := range items {
		si, ok := item.(ScreenItem)
		if !ok || si.Node == nil {
			continue
		}
		if FuzzyMatch(si.Node.Title, filter) ||
			FuzzyMatch(si.Node.CrumbTitle, filter) ||
			strings.Contains(strings.ToLower(si.Node.Description), strings.ToLower(filter)) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// IsActive returns true if filtering is currently active.
func (fm *filterManager) IsActive() bool {
	return fm.active
}

// SetActive sets the filter active state.
func (fm *filterManager) SetActive(active bool) {
	fm.active = active
	if active {
		fm.input.Focus()
	} else {
		fm.input.Blur()
	}
}

// UpdateInput updates the filter input model and returns a command.
func (fm *filterManager) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	fm.input, cmd = fm.input.Update(msg)
	return cmd
}

// ClearFilter clears the current filter.
func (fm *filterManager) ClearFilter() {
	fm.input.SetValue("")
	fm.active = false
	fm.input.Blur()
}

// GetFilterText returns the current filter text.
func (fm *filterManager) GetFilterText() string {
	return fm.input.Value()
}

// View renders the filter input.
func (fm *filterManager) View() string {
	return fm.input.View()
}

// FuzzyMatch reports whether every rune of pattern appears in s in order,
// ignoring case.
func FuzzyMatch(s, pattern string) bool {
	if pattern == "" {
		return true
	}

	s = strings.ToLower(s)
	pattern = strings.ToLower(pattern)

	if strings.Contains(s, pattern) {
		return true
	}

	want := []rune(pattern)
	i := 0
	for _, r := range s {
		if i < len(want) && r == want[i] {
			i++
		}
	}
	return i == len(want)
}
