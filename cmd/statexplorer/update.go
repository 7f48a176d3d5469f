package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = msg.Width - 4
		m.clampScroll()
		return m, nil
	case tea.KeyMsg:
		if m.mode == SearchMode {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

// updateSearch handles keys while the search prompt is active.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = NormalMode
		m.searchInput.Blur()
		m.query = m.searchInput.Value()
		m.matches = m.tree.Matches(m.query)
		m.matchIdx = -1
		if len(m.matches) == 0 {
			if m.query != "" {
				m.status = errorStyle.Render(fmt.Sprintf("no matches for %q", m.query))
			}
			return m, nil
		}
		return m.gotoMatch(0), nil
	case "esc", "ctrl+c":
		m.mode = NormalMode
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// updateNormal handles keys during regular tree navigation.
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.bodyHeight())

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.bodyHeight())

	case key.Matches(msg, m.keys.Home):
		m.jumpTo(0)

	case key.Matches(msg, m.keys.End):
		m.jumpTo(m.tree.Len() - 1)

	case key.Matches(msg, m.keys.Toggle):
		if item := m.current(); item != nil {
			if item.HasChildren {
				// Rebuild recycles the visible slice, so keep the path
				// rather than the item pointer.
				path := item.Path
				m.tree.Toggle(path)
				m.settleCursor(path)
			} else {
				m.status = fmt.Sprintf("%s = %s", item.Path, item.Value)
			}
		}

	case key.Matches(msg, m.keys.Expand):
		if item := m.current(); item != nil && item.HasChildren {
			if item.Expanded {
				// Already open: step into the first child.
				m.moveCursor(1)
			} else {
				path := item.Path
				m.tree.Expand(path)
				m.settleCursor(path)
			}
		}

	case key.Matches(msg, m.keys.Collapse):
		if item := m.current(); item != nil {
			switch {
			case item.HasChildren && item.Expanded:
				path := item.Path
				m.tree.Collapse(path)
				m.settleCursor(path)
			case item.Parent != "":
				if row := m.tree.VisibleIndex(item.Parent); row >= 0 {
					m.jumpTo(row)
				}
			}
		}

	case key.Matches(msg, m.keys.ExpandAll):
		path := ""
		if item := m.current(); item != nil {
			path = item.Path
		}
		m.tree.ExpandAll()
		m.settleCursor(path)

	case key.Matches(msg, m.keys.CollapseAll):
		path := ""
		if item := m.current(); item != nil {
			path = item.Path
		}
		m.tree.CollapseAll()
		m.settleCursor(path)

	case key.Matches(msg, m.keys.Search):
		m.mode = SearchMode
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.NextMatch):
		m = m.gotoMatch(m.matchIdx + 1)

	case key.Matches(msg, m.keys.PrevMatch):
		m = m.gotoMatch(m.matchIdx - 1)

	case key.Matches(msg, m.keys.CopyPath):
		if item := m.current(); item != nil {
			if err := clipboard.WriteAll(item.Path); err != nil {
				m.status = errorStyle.Render(fmt.Sprintf("copy failed: %v", err))
			} else {
				m.status = fmt.Sprintf("copied %s", item.Path)
			}
		}
	}

	return m, nil
}

// gotoMatch wraps the match index, reveals the target row, and moves the
// cursor onto it.
func (m Model) gotoMatch(i int) Model {
	if len(m.matches) == 0 {
		m.status = errorStyle.Render("no search matches")
		return m
	}
	n := len(m.matches)
	m.matchIdx = ((i % n) + n) % n
	path := m.matches[m.matchIdx]
	m.tree.Reveal(path)
	if row := m.tree.VisibleIndex(path); row >= 0 {
		m.jumpTo(row)
	}
	m.status = fmt.Sprintf("match %d/%d: %s", m.matchIdx+1, n, path)
	return m
}
