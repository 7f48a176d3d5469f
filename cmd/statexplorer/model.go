package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputMode tracks whether keystrokes drive navigation or the search prompt.
type InputMode int

const (
	// NormalMode is regular tree navigation
	NormalMode InputMode = iota
	// SearchMode is active when typing a search query
	SearchMode
)

// Model is the bubbletea model for the dump explorer.
type Model struct {
	dumpPath string
	tree     *Tree

	cursor int // index into the visible rows
	offset int // first visible row on screen
	width  int
	height int

	keys KeyMap
	mode InputMode

	searchInput textinput.Model
	query       string
	matches     []string
	matchIdx    int

	showHelp bool
	status   string
}

// NewModel creates the explorer model for an already loaded dump tree.
func NewModel(dumpPath string, tree *Tree) Model {
	input := textinput.New()
	input.Placeholder = "name or value"
	input.Prompt = searchPromptStyle.Render("/")
	input.CharLimit = 128

	return Model{
		dumpPath:    dumpPath,
		tree:        tree,
		keys:        DefaultKeyMap(),
		mode:        NormalMode,
		searchInput: input,
		matchIdx:    -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// bodyHeight returns the number of tree rows that fit between the header
// and the status bar.
func (m Model) bodyHeight() int {
	h := m.height - 2
	if h < 1 {
		return 1
	}
	return h
}

// current returns the item under the cursor, or nil for an empty tree.
func (m *Model) current() *Item {
	return m.tree.At(m.cursor)
}

// clampScroll keeps the cursor inside the visible window after any cursor
// move, resize, or tree rebuild.
func (m *Model) clampScroll() {
	if n := m.tree.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	body := m.bodyHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+body {
		m.offset = m.cursor - body + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// moveCursor shifts the cursor by delta rows.
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampScroll()
}

// jumpTo places the cursor on an absolute row.
func (m *Model) jumpTo(row int) {
	m.cursor = row
	m.clampScroll()
}

// settleCursor moves the cursor back onto path after a tree mutation, or
// onto the nearest ancestor that is still visible.
func (m *Model) settleCursor(path string) {
	for path != "" {
		if row := m.tree.VisibleIndex(path); row >= 0 {
			m.jumpTo(row)
			return
		}
		i, ok := m.tree.byPath[path]
		if !ok {
			break
		}
		path = m.tree.all[i].Parent
	}
	m.jumpTo(0)
}
