package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/crumbnav/crumbnav/internal/config"
)

type manager struct {
	formatters map[string]Formatter
}

// NewManager returns a Manager with every built-in formatter registered.
func NewManager() Manager {
	m := &manager{formatters: make(map[string]Formatter)}
	m.RegisterFormatter(NewJSONFormatter())
	m.RegisterFormatter(NewDOTFormatter())
	m.RegisterFormatter(NewMermaidFormatter())
	m.RegisterFormatter(NewMarkdownFormatter())
	return m
}

func (m *manager) RegisterFormatter(formatter Formatter) {
	m.formatters[formatter.Name()] = formatter
}

func (m *manager) GetFormatter(name string) (Formatter, error) {
	f, ok := m.formatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (valid: %s)", name, strings.Join(m.ListFormatters(), ", "))
	}
	return f, nil
}

func (m *manager) ListFormatters() []string {
	names := make([]string, 0, len(m.formatters))
	for name := range m.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *manager) Format(ctx context.Context, formatName string, root *config.ScreenNode, w io.Writer) error {
	f, err := m.GetFormatter(formatName)
	if err != nil {
		return err
	}
	return f.Format(ctx, root, w)
}

// textFormatter adapts a render function to the Formatter interface.
type textFormatter struct {
	name        string
	description string
	render      func(doc *Document) string
}

// NewDOTFormatter creates a Graphviz DOT formatter.
func NewDOTFormatter() Formatter {
	return &textFormatter{name: "dot", description: "DOT format for Graphviz", render: renderDOT}
}

// NewMermaidFormatter creates a Mermaid flowchart formatter.
func NewMermaidFormatter() Formatter {
	return &textFormatter{name: "mermaid", description: "Mermaid flowchart", render: renderMermaid}
}

// NewMarkdownFormatter creates a Markdown documentation formatter.
func NewMarkdownFormatter() Formatter {
	return &textFormatter{name: "markdown", description: "Markdown screen map with crumb trails", render: renderMarkdown}
}

func (f *textFormatter) Format(ctx context.Context, root *config.ScreenNode, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(w, f.render(Build(root)))
	return err
}

func (f *textFormatter) Name() string { return f.name }
func (f *textFormatter) Description() string { return f.description }

func renderDOT(doc *Document) string {
	var buf bytes.Buffer

	buf.WriteString("digraph Screens {\n")
	buf.WriteString("  graph [rankdir=LR, nodesep=0.6, ranksep=0.8];\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\"];\n\n")

	doc.Root.Walk(func(e *ScreenEntry) {
		label := escapeString(e.Title)
		if e.CrumbTitle != e.Title {
			label += "\\n(" + escapeString(e.CrumbTitle) + ")"
		}
		buf.WriteString(fmt.Sprintf("  %s [label=\"%s\", fillcolor=\"%s\"];\n", e.ID, label, nodeColor(e)))
	})

	buf.WriteString("\n")
	doc.Root.Walk(func(e *ScreenEntry) {
		for _, child := range e.Children {
			buf.WriteString(fmt.Sprintf("  %s -> %s;\n", e.ID, child.ID))
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

func renderMermaid(doc *Document) string {
	var buf bytes.Buffer

	buf.WriteString("```mermaid\nflowchart LR\n")
	doc.Root.Walk(func(e *ScreenEntry) {
		if e.Depth == 1 {
			buf.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", e.ID, mermaidText(e.Title)))
			return
		}
		buf.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", e.ID, mermaidText(e.Title)))
	})
	doc.Root.Walk(func(e *ScreenEntry) {
		for _, child := range e.Children {
			buf.WriteString(fmt.Sprintf("    %s --> %s\n", e.ID, child.ID))
		}
	})
	buf.WriteString("```\n")
	return buf.String()
}

func renderMarkdown(doc *Document) string {
	var buf bytes.Buffer

	buf.WriteString("# Screen Map\n\n")

	buf.WriteString("| Metric | Count |\n")
	buf.WriteString("|--------|-------|\n")
	buf.WriteString(fmt.Sprintf("| Screens | %d |\n", doc.Stats.Screens))
	buf.WriteString(fmt.Sprintf("| Leaves | %d |\n", doc.Stats.Leaves))
	buf.WriteString(fmt.Sprintf("| Max Depth | %d |\n", doc.Stats.MaxDepth))
	buf.WriteString(fmt.Sprintf("| Max Crumbs | %d |\n", doc.Stats.MaxCrumbs))
	buf.WriteString("\n## Screens\n\n")

	doc.Root.Walk(func(e *ScreenEntry) {
		indent := strings.Repeat("  ", e.Depth-1)
		buf.WriteString(fmt.Sprintf("%s- **%s**", indent, e.Title))
		if len(e.Crumbs) > 0 {
			buf.WriteString(fmt.Sprintf(" `%s`", strings.Join(e.Crumbs, " › ")))
		}
		if e.Description != "" {
			buf.WriteString(": " + e.Description)
		}
		buf.WriteString("\n")
	})

	if doc.Root != nil {
		buf.WriteString("\n## Graph\n\n")
		buf.WriteString(renderMermaid(doc))
	}
	return buf.String()
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

func mermaidText(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}

func nodeColor(e *ScreenEntry) string {
	switch {
	case e.Depth == 1:
		return "#a371f7"
	case len(e.Children) == 0:
		return "#7ee787"
	default:
		return "#58a6ff"
	}
}
