package output

import (
	"strconv"

	"github.com/crumbnav/crumbnav/internal/config"
)

// ScreenEntry is one screen of the tree as it appears in exports.
type ScreenEntry struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	CrumbTitle  string         `json:"crumb_title"`
	Description string         `json:"description,omitempty"`
	Depth       int            `json:"depth"`
	Crumbs      []string       `json:"crumbs"`
	Children    []*ScreenEntry `json:"children,omitempty"`
}

// TreeStats summarizes a screen tree.
type TreeStats struct {
	Screens  int `json:"screens"`
	Leaves   int `json:"leaves"`
	MaxDepth int `json:"max_depth"`
	// MaxCrumbs is the longest trail the crumb bar will ever show.
	MaxCrumbs int `json:"max_crumbs"`
}

// Document is the exported form of a screen tree.
type Document struct {
	Root  *ScreenEntry `json:"root"`
	Stats TreeStats    `json:"stats"`
}

// Build converts a screen tree into its exported form. Each entry carries
// the crumbs the bar shows while that screen is on top: one per ancestor,
// using the ancestor's crumb title.
func Build(root *config.ScreenNode) *Document {
	doc := &Document{}
	if root == nil {
		return doc
	}
	doc.Root = buildEntry(root, "n0", 1, nil, &doc.Stats)
	return doc
}

func buildEntry(node *config.ScreenNode, id string, depth int, crumbs []string, stats *TreeStats) *ScreenEntry {
	entry := &ScreenEntry{
		ID:          id,
		Title:       node.Title,
		CrumbTitle:  crumbTitle(node),
		Description: node.Description,
		Depth:       depth,
		Crumbs:      append([]string{}, crumbs...),
	}

	stats.Screens++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if len(crumbs) > stats.MaxCrumbs {
		stats.MaxCrumbs = len(crumbs)
	}

	trail := append(append([]string{}, crumbs...), entry.CrumbTitle)
	for i, child := range node.Children {
		if child == nil {
			continue
		}
		entry.Children = append(entry.Children, buildEntry(child, id+"_"+strconv.Itoa(i), depth+1, trail, stats))
	}
	if len(entry.Children) == 0 {
		stats.Leaves++
	}
	return entry
}

func crumbTitle(node *config.ScreenNode) string {
	if node.CrumbTitle != "" {
		return node.CrumbTitle
	}
	return node.Title
}

// Walk visits every entry depth first, parents before children.
func (e *ScreenEntry) Walk(fn func(*ScreenEntry)) {
	if e == nil {
		return
	}
	fn(e)
	for _, child := range e.Children {
		child.Walk(fn)
	}
}
