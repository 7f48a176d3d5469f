package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/statkit/stats/statsfile"
)

// loadDump reads a YAML statistics dump and returns its root mapping.
func loadDump(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dump %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("parse dump %s: not a single YAML document", path)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse dump %s: top level is not a mapping", path)
	}
	return root, nil
}

// writeDump encodes a dump mapping as YAML to the --out file when set,
// else to stdout.
func writeDump(root *yaml.Node, outPath string) error {
	if outPath == "" {
		return encodeDump(os.Stdout, root)
	}
	return statsfile.WriteFrom(outPath, func(w io.Writer) error {
		return encodeDump(w, root)
	}, statsfile.DefaultOptions())
}

func encodeDump(w io.Writer, root *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// combineDump folds src into dst elementwise: scalars combine through op,
// mappings and sequences must match key for key and element for element.
// Both dumps must come from the same counter schema.
func combineDump(dst, src *yaml.Node, op combineOp, path string) error {
	if dst.Kind != src.Kind {
		return fmt.Errorf("shape mismatch at %q", dumpPath(path))
	}

	switch dst.Kind {
	case yaml.MappingNode:
		if len(dst.Content) != len(src.Content) {
			return fmt.Errorf("different keys at %q", dumpPath(path))
		}
		for i := 0; i < len(dst.Content); i += 2 {
			dk, sk := dst.Content[i], src.Content[i]
			if dk.Value != sk.Value {
				return fmt.Errorf("key order differs at %q: %q vs %q",
					dumpPath(path), dk.Value, sk.Value)
			}
			child := joinDumpPath(path, dk.Value)
			if err := combineDump(dst.Content[i+1], src.Content[i+1], op, child); err != nil {
				return err
			}
		}
		return nil

	case yaml.SequenceNode:
		if len(dst.Content) != len(src.Content) {
			return fmt.Errorf("different array lengths at %q: %d vs %d",
				dumpPath(path), len(dst.Content), len(src.Content))
		}
		for i := range dst.Content {
			elem := fmt.Sprintf("%s[%d]", path, i)
			if err := combineDump(dst.Content[i], src.Content[i], op, elem); err != nil {
				return err
			}
		}
		return nil

	case yaml.ScalarNode:
		return combineScalar(dst, src, op, path)

	default:
		return fmt.Errorf("unsupported node at %q", dumpPath(path))
	}
}

// combineOp combines two counter values; add for merge, subtract for diff.
type combineOp int

const (
	opAdd combineOp = iota
	opSubtract
)

// combineScalar rewrites dst's value to op(dst, src). Integer counters stay
// integers; a float on either side promotes the result to float. Unsigned
// arithmetic drops to signed when a subtraction would go below zero.
func combineScalar(dst, src *yaml.Node, op combineOp, path string) error {
	if dst.Tag == "!!float" || src.Tag == "!!float" {
		a, errA := strconv.ParseFloat(dst.Value, 64)
		b, errB := strconv.ParseFloat(src.Value, 64)
		if errA != nil || errB != nil {
			return fmt.Errorf("non-numeric value at %q", dumpPath(path))
		}
		if op == opSubtract {
			b = -b
		}
		dst.Value = strconv.FormatFloat(a+b, 'g', -1, 64)
		dst.Tag = "!!float"
		return nil
	}

	if dst.Tag != "!!int" || src.Tag != "!!int" {
		return fmt.Errorf("non-numeric value at %q", dumpPath(path))
	}

	ua, errA := strconv.ParseUint(dst.Value, 10, 64)
	ub, errB := strconv.ParseUint(src.Value, 10, 64)
	if errA == nil && errB == nil {
		if op == opAdd {
			dst.Value = strconv.FormatUint(ua+ub, 10)
			return nil
		}
		if ua >= ub {
			dst.Value = strconv.FormatUint(ua-ub, 10)
			return nil
		}
		// Fall through to signed so small deltas print as negatives
		// instead of wrapped 64-bit values.
	}

	ia, errA := strconv.ParseInt(dst.Value, 10, 64)
	ib, errB := strconv.ParseInt(src.Value, 10, 64)
	if errA != nil || errB != nil {
		return fmt.Errorf("non-numeric value at %q", dumpPath(path))
	}
	if op == opSubtract {
		ib = -ib
	}
	dst.Value = strconv.FormatInt(ia+ib, 10)
	return nil
}

// renderDumpText re-renders a dump mapping in the plain text format: one
// "name: value" line per counter, indented namespaces, space-separated
// array elements.
func renderDumpText(w io.Writer, m *yaml.Node, indent string) error {
	for i := 0; i < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]

		switch val.Kind {
		case yaml.ScalarNode:
			if _, err := fmt.Fprintf(w, "%s%s: %s\n", indent, key.Value, val.Value); err != nil {
				return err
			}

		case yaml.SequenceNode:
			if _, err := fmt.Fprintf(w, "%s%s:", indent, key.Value); err != nil {
				return err
			}
			for _, elem := range val.Content {
				if _, err := fmt.Fprintf(w, " %s", elem.Value); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, " "); err != nil {
				return err
			}

		case yaml.MappingNode:
			if _, err := fmt.Fprintf(w, "%s%s:\n", indent, key.Value); err != nil {
				return err
			}
			if err := renderDumpText(w, val, indent+"  "); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unsupported node under %q", key.Value)
		}
	}
	return nil
}

func joinDumpPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func dumpPath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
