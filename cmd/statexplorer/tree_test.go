package main

import (
	"testing"

	"gopkg.in/yaml.v3"
)

const testDump = `cycles: 100
cache:
  hits: 3
  lat: [0, 0, 7, 0]
  l1:
    hits: 9
mem:
  reads: 2
`

func buildTestTree(t *testing.T) *Tree {
	t.Helper()
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(testDump), &doc); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	tree, err := BuildTree(&doc)
	if err != nil {
		t.Fatalf("BuildTree() error: %v", err)
	}
	return tree
}

func visiblePaths(t *Tree) []string {
	paths := make([]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		paths = append(paths, t.At(i).Path)
	}
	return paths
}

func assertPaths(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d visible rows %v, got %d rows %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

// TestBuildTree_Items verifies the flattened items carry the right
// paths, depths, values, and child counts
func TestBuildTree_Items(t *testing.T) {
	tree := buildTestTree(t)

	namespaces, counters := tree.Counts()
	if namespaces != 3 {
		t.Errorf("expected 3 namespaces, got %d", namespaces)
	}
	if counters != 5 {
		t.Errorf("expected 5 counters, got %d", counters)
	}

	checks := []struct {
		path        string
		name        string
		value       string
		depth       int
		parent      string
		hasChildren bool
		childCount  int
	}{
		{"cycles", "cycles", "100", 0, "", false, 0},
		{"cache", "cache", "", 0, "", true, 3},
		{"cache.hits", "hits", "3", 1, "cache", false, 0},
		{"cache.lat", "lat", "[0, 0, 7, 0]", 1, "cache", false, 0},
		{"cache.l1", "l1", "", 1, "cache", true, 1},
		{"cache.l1.hits", "hits", "9", 2, "cache.l1", false, 0},
		{"mem.reads", "reads", "2", 1, "mem", false, 0},
	}
	for _, want := range checks {
		i, ok := tree.byPath[want.path]
		if !ok {
			t.Fatalf("path %q not found in tree", want.path)
		}
		item := tree.all[i]
		if item.Name != want.name {
			t.Errorf("%s: expected name %q, got %q", want.path, want.name, item.Name)
		}
		if item.Value != want.value {
			t.Errorf("%s: expected value %q, got %q", want.path, want.value, item.Value)
		}
		if item.Depth != want.depth {
			t.Errorf("%s: expected depth %d, got %d", want.path, want.depth, item.Depth)
		}
		if item.Parent != want.parent {
			t.Errorf("%s: expected parent %q, got %q", want.path, want.parent, item.Parent)
		}
		if item.HasChildren != want.hasChildren {
			t.Errorf("%s: expected hasChildren=%v", want.path, want.hasChildren)
		}
		if item.ChildCount != want.childCount {
			t.Errorf("%s: expected %d children, got %d", want.path, want.childCount, item.ChildCount)
		}
	}
}

// TestBuildTree_InitialVisibility verifies top-level namespaces start
// expanded and nested ones start collapsed
func TestBuildTree_InitialVisibility(t *testing.T) {
	tree := buildTestTree(t)

	assertPaths(t, visiblePaths(tree), []string{
		"cycles",
		"cache",
		"cache.hits",
		"cache.lat",
		"cache.l1",
		"mem",
		"mem.reads",
	})
}

// TestTree_ExpandCollapse verifies single-namespace expand and collapse
func TestTree_ExpandCollapse(t *testing.T) {
	tree := buildTestTree(t)

	tree.Expand("cache.l1")
	if got := tree.Len(); got != 8 {
		t.Fatalf("expected 8 rows after expanding cache.l1, got %d", got)
	}
	if row := tree.VisibleIndex("cache.l1.hits"); row != 5 {
		t.Errorf("expected cache.l1.hits at row 5, got %d", row)
	}

	tree.Collapse("cache")
	assertPaths(t, visiblePaths(tree), []string{
		"cycles",
		"cache",
		"mem",
		"mem.reads",
	})

	// Re-opening cache must remember that cache.l1 was expanded.
	tree.Expand("cache")
	if row := tree.VisibleIndex("cache.l1.hits"); row < 0 {
		t.Error("expected cache.l1 to stay expanded across a parent collapse")
	}
}

// TestTree_Toggle verifies toggling flips state and ignores counters
func TestTree_Toggle(t *testing.T) {
	tree := buildTestTree(t)
	baseline := tree.Len()

	tree.Toggle("cache")
	if tree.Len() >= baseline {
		t.Error("expected toggle to collapse cache")
	}
	tree.Toggle("cache")
	if got := tree.Len(); got != baseline {
		t.Errorf("expected %d rows after double toggle, got %d", baseline, got)
	}

	tree.Toggle("cycles")
	tree.Toggle("no.such.path")
	if got := tree.Len(); got != baseline {
		t.Errorf("expected counters and unknown paths to be ignored, got %d rows", got)
	}
}

// TestTree_ExpandAllCollapseAll verifies the whole-tree operations
func TestTree_ExpandAllCollapseAll(t *testing.T) {
	tree := buildTestTree(t)

	tree.ExpandAll()
	if got := tree.Len(); got != 8 {
		t.Errorf("expected 8 rows after ExpandAll, got %d", got)
	}

	tree.CollapseAll()
	assertPaths(t, visiblePaths(tree), []string{"cycles", "cache", "mem"})
}

// TestTree_Reveal verifies ancestors expand so a hidden row becomes
// visible, without touching unrelated namespaces
func TestTree_Reveal(t *testing.T) {
	tree := buildTestTree(t)
	tree.CollapseAll()

	tree.Reveal("cache.l1.hits")

	assertPaths(t, visiblePaths(tree), []string{
		"cycles",
		"cache",
		"cache.hits",
		"cache.lat",
		"cache.l1",
		"cache.l1.hits",
		"mem",
	})
	if row := tree.VisibleIndex("cache.l1.hits"); row != 5 {
		t.Errorf("expected revealed row at index 5, got %d", row)
	}
	if row := tree.VisibleIndex("mem.reads"); row != -1 {
		t.Errorf("expected mem to stay collapsed, got row %d", row)
	}
}

// TestTree_Matches verifies case-insensitive search over names and values
func TestTree_Matches(t *testing.T) {
	tree := buildTestTree(t)

	got := tree.Matches("hits")
	want := []string{"cache.hits", "cache.l1.hits"}
	if len(got) != len(want) {
		t.Fatalf("expected matches %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if upper := tree.Matches("HITS"); len(upper) != len(got) {
		t.Errorf("expected case-insensitive search, got %v", upper)
	}

	byValue := tree.Matches("7")
	if len(byValue) != 1 || byValue[0] != "cache.lat" {
		t.Errorf("expected value search to find cache.lat, got %v", byValue)
	}

	if none := tree.Matches(""); none != nil {
		t.Errorf("expected empty query to match nothing, got %v", none)
	}
}

// TestTree_At verifies bounds handling
func TestTree_At(t *testing.T) {
	tree := buildTestTree(t)

	if tree.At(-1) != nil {
		t.Error("expected nil for negative index")
	}
	if tree.At(tree.Len()) != nil {
		t.Error("expected nil for index past the end")
	}
	if item := tree.At(0); item == nil || item.Path != "cycles" {
		t.Errorf("expected first row to be cycles, got %+v", item)
	}
}

// TestBuildTree_Rejects verifies malformed documents are refused
func TestBuildTree_Rejects(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"sequence root", "- 1\n- 2\n"},
		{"scalar root", "42\n"},
		{"empty document", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var doc yaml.Node
			if err := yaml.Unmarshal([]byte(tc.text), &doc); err != nil {
				t.Fatalf("parse: %v", err)
			}
			if _, err := BuildTree(&doc); err == nil {
				t.Error("expected BuildTree to fail")
			}
		})
	}
}

// TestBuildTree_NestedSequence verifies non-scalar array elements are
// refused
func TestBuildTree_NestedSequence(t *testing.T) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte("lat:\n- [1, 2]\n"), &doc); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := BuildTree(&doc); err == nil {
		t.Error("expected BuildTree to reject nested sequences")
	}
}
