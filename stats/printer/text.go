package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/statkit/stats"
)

// printText writes a subtree in the text dump format. The plain case
// delegates to the core renderer so the output is byte-identical to
// Registry.RenderText; non-default options take the configurable walk.
func (p *Printer) printText(node *stats.Node, inst *stats.Instance) error {
	if p.opts.IndentSize == DefaultIndentSize && p.opts.MaxDepth == 0 && !p.opts.Humanize {
		return node.RenderText(p.writer, inst)
	}
	return p.printNodeText(node, inst, 0)
}

// printNodeText prints one namespace level: counters first, then child
// headers with their subtrees indented one level deeper.
func (p *Printer) printNodeText(node *stats.Node, inst *stats.Instance, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	for _, leaf := range node.Leaves() {
		if err := p.printLeafText(leaf, inst, indent); err != nil {
			return err
		}
	}

	for _, child := range node.Children() {
		if p.opts.MaxDepth > 0 && depth+1 > p.opts.MaxDepth {
			break
		}
		if _, err := fmt.Fprintf(p.writer, "%s%s:\n", indent, child.Name()); err != nil {
			return err
		}
		if err := p.printNodeText(child, inst, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// printLeafText prints one counter line, matching the core format:
// "name: value" for scalars, space-separated elements for arrays.
func (p *Printer) printLeafText(leaf stats.Stat, inst *stats.Instance, indent string) error {
	var frag leafCapture
	leaf.RenderStructured(&frag, inst)

	if _, err := fmt.Fprintf(p.writer, "%s%s:", indent, frag.name); err != nil {
		return err
	}
	for _, v := range frag.values {
		if _, err := fmt.Fprintf(p.writer, " %s", p.formatValue(v)); err != nil {
			return err
		}
	}
	if frag.sequence {
		if _, err := fmt.Fprint(p.writer, " "); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.writer)
	return err
}

// formatValue renders one counter value, with thousands separators when
// Humanize is set.
func (p *Printer) formatValue(v any) string {
	if p.num != nil {
		return p.num.Sprintf("%v", v)
	}
	return fmt.Sprintf("%v", v)
}

// leafCapture records the single key/value fragment one counter emits, so
// the text walker can format the values itself. Counters emit either a
// key and one scalar, or a key and one sequence.
type leafCapture struct {
	name     string
	sequence bool
	values   []any
}

func (c *leafCapture) BeginMapping() {}
func (c *leafCapture) EndMapping()   {}

func (c *leafCapture) Key(name string) {
	c.name = name
}

func (c *leafCapture) Value(v any) {
	c.values = append(c.values, v)
}

func (c *leafCapture) BeginSequence() {
	c.sequence = true
}

func (c *leafCapture) EndSequence() {}
