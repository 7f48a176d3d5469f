package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire UI
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		footer,
	)
}

// renderHeader renders the title line with the dump path
func (m Model) renderHeader() string {
	title := headerStyle.Render("Statistics Dump Explorer")
	name := pathStyle.Render(m.dumpPath)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", name)
}

// renderBody renders the visible window of tree rows
func (m Model) renderBody() string {
	body := m.bodyHeight()
	if m.tree.Len() == 0 {
		lines := make([]string, body)
		lines[0] = childCountStyle.Render("(empty dump)")
		return strings.Join(lines, "\n")
	}

	matched := make(map[string]bool, len(m.matches))
	if m.query != "" {
		for _, path := range m.matches {
			matched[path] = true
		}
	}

	lines := make([]string, 0, body)
	for row := m.offset; row < m.offset+body; row++ {
		item := m.tree.At(row)
		if item == nil {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, m.renderRow(item, row == m.cursor, matched[item.Path]))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders a single tree row with indentation and cursor/search
// highlighting
func (m Model) renderRow(item *Item, selected, matched bool) string {
	indent := strings.Repeat("  ", item.Depth)

	marker := "  "
	if item.HasChildren {
		if item.Expanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	var suffix string
	if item.HasChildren {
		suffix = fmt.Sprintf(" (%d)", item.ChildCount)
	} else {
		suffix = ": " + item.Value
	}

	// The cursor row is styled as a whole so the highlight spans the line.
	if selected {
		line := indent + marker + item.Name + suffix
		if m.width > 0 {
			line = truncate(line, m.width)
		}
		return cursorStyle.Render(line)
	}

	name := item.Name
	switch {
	case matched:
		name = searchMatchStyle.Render(name)
	case item.HasChildren:
		name = namespaceStyle.Render(name)
	default:
		name = counterStyle.Render(name)
	}
	if item.HasChildren {
		suffix = childCountStyle.Render(suffix)
	} else {
		suffix = ": " + valueStyle.Render(item.Value)
	}
	return indent + marker + name + suffix
}

// renderFooter renders the search prompt while typing, otherwise the
// status bar
func (m Model) renderFooter() string {
	if m.mode == SearchMode {
		return m.searchInput.View()
	}

	namespaces, counters := m.tree.Counts()
	counts := fmt.Sprintf("%s namespaces · %s counters",
		statusCountStyle.Render(fmt.Sprintf("%d", namespaces)),
		statusCountStyle.Render(fmt.Sprintf("%d", counters)))

	left := m.status
	if left == "" {
		if item := m.current(); item != nil {
			left = item.Path
		}
	}

	line := fmt.Sprintf("%s  |  %s  |  ? help · q quit", left, counts)
	return statusStyle.Render(truncate(line, max(m.width-2, 10)))
}

// renderHelpOverlay renders the full-screen key binding reference
func (m Model) renderHelpOverlay() string {
	bindings := []struct {
		keys string
		desc string
	}{
		{"↑/k, ↓/j", "move up / down"},
		{"pgup, pgdn", "page up / down"},
		{"g, G", "go to top / bottom"},
		{"enter, space", "toggle namespace"},
		{"→/l, ←/h", "expand / collapse"},
		{"E, C", "expand / collapse all"},
		{"/", "search names and values"},
		{"n, N", "next / previous match"},
		{"c/y", "copy path to clipboard"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Key Bindings"))
	b.WriteString("\n")
	for _, bind := range bindings {
		b.WriteString(helpKeyStyle.Render(bind.keys))
		b.WriteString(helpDescStyle.Render(bind.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(childCountStyle.Render("press any key to close"))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}
