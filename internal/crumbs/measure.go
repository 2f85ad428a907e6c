package crumbs

import (
	"strings"

	"github.com/crumbnav/crumbnav/internal/layout"

	"github.com/mattn/go-runewidth"
)

// Measurer computes the bounding box of a string of text.
type Measurer interface {
	// Measure returns the size of text laid out on a single line fragment,
	// limited to maxWidth when maxWidth is positive.
	Measure(text string, maxWidth float64) layout.Size
}

// TerminalMeasurer measures text in terminal columns. Wide runes count as two
// columns; every line is LineHeight units tall.
type TerminalMeasurer struct {
	LineHeight float64
}

// NewTerminalMeasurer returns a measurer with one unit per line.
func NewTerminalMeasurer() *TerminalMeasurer {
	return &TerminalMeasurer{LineHeight: 1}
}

// Measure implements Measurer. Lines are never wrapped; the widest one wins.
func (m *TerminalMeasurer) Measure(text string, maxWidth float64) layout.Size {
	lines := strings.Split(text, "\n")

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	size := layout.Size{
		Width:  float64(width),
		Height: float64(len(lines)) * m.LineHeight,
	}
	if maxWidth > 0 && size.Width > maxWidth {
		size.Width = maxWidth
	}
	return size
}
