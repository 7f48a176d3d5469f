package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item represents one row of the dump tree: a namespace or a counter.
type Item struct {
	Path        string // dot-joined ancestry, unique within the dump
	Name        string
	Value       string // rendered value, empty for namespaces
	Depth       int
	Parent      string
	HasChildren bool
	ChildCount  int
	Expanded    bool
}

// Tree holds every row of a parsed dump plus the expand/collapse state
// that decides which rows are currently visible.
type Tree struct {
	all      []Item
	visible  []Item
	byPath   map[string]int
	expanded map[string]bool
}

// LoadDump reads a YAML statistics dump from disk and builds its tree.
func LoadDump(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dump %s: %w", path, err)
	}
	return BuildTree(&doc)
}

// BuildTree flattens a parsed dump document into tree items. The document
// must hold a single mapping at the top level, the shape every statkit
// dump has.
func BuildTree(doc *yaml.Node) (*Tree, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("dump is not a single YAML document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dump top level is not a mapping")
	}

	items, err := appendItems(nil, root, "", 0)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		all:      items,
		byPath:   make(map[string]int, len(items)),
		expanded: make(map[string]bool),
	}
	for i := range t.all {
		t.byPath[t.all[i].Path] = i
	}
	// Top-level namespaces start expanded so the dump is not a wall of
	// closed folders on startup.
	for i := range t.all {
		if t.all[i].Depth == 0 && t.all[i].HasChildren {
			t.expanded[t.all[i].Path] = true
		}
	}
	t.Rebuild()
	return t, nil
}

func appendItems(items []Item, node *yaml.Node, parent string, depth int) ([]Item, error) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		path := joinPath(parent, key.Value)
		switch value.Kind {
		case yaml.ScalarNode:
			items = append(items, Item{
				Path:   path,
				Name:   key.Value,
				Value:  value.Value,
				Depth:  depth,
				Parent: parent,
			})
		case yaml.SequenceNode:
			rendered, err := renderSequence(value, path)
			if err != nil {
				return nil, err
			}
			items = append(items, Item{
				Path:   path,
				Name:   key.Value,
				Value:  rendered,
				Depth:  depth,
				Parent: parent,
			})
		case yaml.MappingNode:
			items = append(items, Item{
				Path:        path,
				Name:        key.Value,
				Depth:       depth,
				Parent:      parent,
				HasChildren: true,
				ChildCount:  len(value.Content) / 2,
			})
			var err error
			items, err = appendItems(items, value, path, depth+1)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unsupported YAML node at %q", path)
		}
	}
	return items, nil
}

func renderSequence(node *yaml.Node, path string) (string, error) {
	parts := make([]string, 0, len(node.Content))
	for _, elem := range node.Content {
		if elem.Kind != yaml.ScalarNode {
			return "", fmt.Errorf("array element at %q is not a scalar", path)
		}
		parts = append(parts, elem.Value)
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// Rebuild recomputes the visible rows from the full item list and the
// current expand state. Items are stored in pre-order, so a parent's
// visibility is always decided before its children are reached.
func (t *Tree) Rebuild() {
	t.visible = t.visible[:0]
	shown := make(map[string]bool, len(t.expanded)+1)
	shown[""] = true
	for _, item := range t.all {
		if !shown[item.Parent] {
			continue
		}
		item.Expanded = t.expanded[item.Path]
		t.visible = append(t.visible, item)
		if item.HasChildren {
			shown[item.Path] = item.Expanded
		}
	}
}

// Len returns the number of visible rows.
func (t *Tree) Len() int {
	return len(t.visible)
}

// At returns the visible row at index i, or nil if out of bounds.
func (t *Tree) At(i int) *Item {
	if i < 0 || i >= len(t.visible) {
		return nil
	}
	return &t.visible[i]
}

// VisibleIndex returns the row index of path among the visible rows, or
// -1 when the path is hidden inside a collapsed namespace or unknown.
func (t *Tree) VisibleIndex(path string) int {
	for i := range t.visible {
		if t.visible[i].Path == path {
			return i
		}
	}
	return -1
}

// Toggle flips the expand state of a namespace. Counters are ignored.
func (t *Tree) Toggle(path string) {
	i, ok := t.byPath[path]
	if !ok || !t.all[i].HasChildren {
		return
	}
	t.expanded[path] = !t.expanded[path]
	t.Rebuild()
}

// Expand opens a single namespace.
func (t *Tree) Expand(path string) {
	i, ok := t.byPath[path]
	if !ok || !t.all[i].HasChildren {
		return
	}
	t.expanded[path] = true
	t.Rebuild()
}

// Collapse closes a single namespace.
func (t *Tree) Collapse(path string) {
	if !t.expanded[path] {
		return
	}
	t.expanded[path] = false
	t.Rebuild()
}

// ExpandAll opens every namespace in the dump.
func (t *Tree) ExpandAll() {
	for i := range t.all {
		if t.all[i].HasChildren {
			t.expanded[t.all[i].Path] = true
		}
	}
	t.Rebuild()
}

// CollapseAll closes every namespace, leaving only the top level visible.
func (t *Tree) CollapseAll() {
	t.expanded = make(map[string]bool)
	t.Rebuild()
}

// Reveal expands every ancestor of path so the row becomes visible.
func (t *Tree) Reveal(path string) {
	i, ok := t.byPath[path]
	if !ok {
		return
	}
	for parent := t.all[i].Parent; parent != ""; {
		t.expanded[parent] = true
		j, ok := t.byPath[parent]
		if !ok {
			break
		}
		parent = t.all[j].Parent
	}
	t.Rebuild()
}

// Matches returns the paths of all items whose name or value contains
// the query, case-insensitively, in dump order.
func (t *Tree) Matches(query string) []string {
	if query == "" {
		return nil
	}
	query = strings.ToLower(query)
	var paths []string
	for i := range t.all {
		item := &t.all[i]
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Value), query) {
			paths = append(paths, item.Path)
		}
	}
	return paths
}

// Counts reports how many namespaces and counters the dump holds.
func (t *Tree) Counts() (namespaces, counters int) {
	for i := range t.all {
		if t.all[i].HasChildren {
			namespaces++
		} else {
			counters++
		}
	}
	return namespaces, counters
}
