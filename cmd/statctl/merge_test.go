package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dumpA = `cycles: 10
cache:
  hits: 3
  lat: [1, 0, 2, 0]
ipc: 1.5
`

const dumpB = `cycles: 5
cache:
  hits: 4
  lat: [0, 1, 1, 7]
ipc: 0.25
`

func TestMergeCommand(t *testing.T) {
	quiet = false
	verbose = false
	mergeOut = ""

	a := writeTempDump(t, "a.yaml", dumpA)
	b := writeTempDump(t, "b.yaml", dumpB)

	output, err := captureOutput(t, func() error {
		return runMerge([]string{a, b})
	})
	if err != nil {
		t.Fatalf("runMerge failed: %v", err)
	}

	assertContains(t, output, []string{
		"cycles: 15",
		"hits: 7",
		"lat: [1, 1, 3, 7]",
		"ipc: 1.75",
	})
}

func TestMergeCommand_ThreeDumps(t *testing.T) {
	quiet = false
	mergeOut = ""

	a := writeTempDump(t, "a.yaml", dumpA)
	b := writeTempDump(t, "b.yaml", dumpB)
	c := writeTempDump(t, "c.yaml", dumpB)

	output, err := captureOutput(t, func() error {
		return runMerge([]string{a, b, c})
	})
	if err != nil {
		t.Fatalf("runMerge failed: %v", err)
	}

	assertContains(t, output, []string{"cycles: 20", "hits: 11"})
}

func TestMergeCommand_OutFile(t *testing.T) {
	quiet = false
	mergeOut = filepath.Join(t.TempDir(), "total.yaml")
	defer func() { mergeOut = "" }()

	a := writeTempDump(t, "a.yaml", dumpA)
	b := writeTempDump(t, "b.yaml", dumpB)

	output, err := captureOutput(t, func() error {
		return runMerge([]string{a, b})
	})
	if err != nil {
		t.Fatalf("runMerge failed: %v", err)
	}
	assertNotContains(t, output, []string{"cycles"})

	data, err := os.ReadFile(mergeOut)
	if err != nil {
		t.Fatalf("merged dump not written: %v", err)
	}
	assertContains(t, string(data), []string{"cycles: 15", "lat: [1, 1, 3, 7]"})
}

func TestMergeCommand_ShapeMismatch(t *testing.T) {
	quiet = false
	mergeOut = ""

	a := writeTempDump(t, "a.yaml", dumpA)
	b := writeTempDump(t, "b.yaml", "cycles: 5\nmem:\n  reads: 1\n")

	_, err := captureOutput(t, func() error {
		return runMerge([]string{a, b})
	})
	if err == nil {
		t.Fatal("expected an error for dumps with different schemas")
	}
}

func TestMergeCommand_ArrayLengthMismatch(t *testing.T) {
	quiet = false
	mergeOut = ""

	a := writeTempDump(t, "a.yaml", "lat: [1, 2]\n")
	b := writeTempDump(t, "b.yaml", "lat: [1, 2, 3]\n")

	_, err := captureOutput(t, func() error {
		return runMerge([]string{a, b})
	})
	if err == nil {
		t.Fatal("expected an error for different array lengths")
	}
	if !strings.Contains(err.Error(), "array lengths") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMergeCommand_NonNumeric(t *testing.T) {
	quiet = false
	mergeOut = ""

	a := writeTempDump(t, "a.yaml", "name: alpha\n")
	b := writeTempDump(t, "b.yaml", "name: beta\n")

	_, err := captureOutput(t, func() error {
		return runMerge([]string{a, b})
	})
	if err == nil {
		t.Fatal("expected an error for non-numeric values")
	}
	if !strings.Contains(err.Error(), "non-numeric") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMergeCommand_MissingFile(t *testing.T) {
	quiet = false
	mergeOut = ""

	a := writeTempDump(t, "a.yaml", dumpA)

	_, err := captureOutput(t, func() error {
		return runMerge([]string{a, filepath.Join(t.TempDir(), "nope.yaml")})
	})
	if err == nil {
		t.Fatal("expected an error for a missing dump file")
	}
	if !strings.Contains(err.Error(), "read dump") {
		t.Errorf("unexpected error: %v", err)
	}
}
