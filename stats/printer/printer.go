package printer

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/statkit/stats"
)

const DefaultIndentSize = 2

// ErrUnknownNode reports a PrintNode path that matches no namespace.
var ErrUnknownNode = errors.New("printer: unknown node path")

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the classic human-readable dump.
	FormatText Format = "text"

	// FormatYAML outputs a YAML document.
	FormatYAML Format = "yaml"

	// FormatJSON outputs a JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, yaml, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many namespace levels below the starting node are
	// printed (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// Humanize renders values with locale thousands separators, so a cycle
	// counter reads 1,048,576 instead of 1048576. Text format only; the
	// structured formats stay machine-parseable.
	// Default: false
	Humanize bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   0,
		Humanize:   false,
	}
}

// Printer handles formatted output of a counter tree.
type Printer struct {
	opts   Options
	writer io.Writer
	reg    *stats.Registry
	num    *message.Printer
}

// New creates a new Printer.
//
// The Registry supplies the counter tree, the Writer receives the output,
// and Options controls formatting behavior.
//
// Example:
//
//	p := printer.New(reg, os.Stdout, printer.DefaultOptions())
//	p.Print(inst)
func New(reg *stats.Registry, w io.Writer, opts Options) *Printer {
	p := &Printer{
		reg:    reg,
		writer: w,
		opts:   opts,
	}
	if opts.Humanize {
		p.num = message.NewPrinter(language.English)
	}
	return p
}

// Print writes the whole counter tree, read from inst, in the configured
// format.
func (p *Printer) Print(inst *stats.Instance) error {
	return p.printNode(p.reg.Root(), inst)
}

// PrintNode writes the subtree at the dot-separated path, read from inst.
//
// Example:
//
//	p.PrintNode("core0.dcache", inst)
func (p *Printer) PrintNode(path string, inst *stats.Instance) error {
	node := p.reg.Root().Lookup(path)
	if node == nil {
		return fmt.Errorf("%w: %q", ErrUnknownNode, path)
	}
	return p.printNode(node, inst)
}

func (p *Printer) printNode(node *stats.Node, inst *stats.Instance) error {
	switch p.opts.Format {
	case FormatYAML:
		return p.printStructured(node, inst, FormatYAML)
	case FormatJSON:
		return p.printStructured(node, inst, FormatJSON)
	case FormatText:
		return p.printText(node, inst)
	default:
		return p.printText(node, inst)
	}
}
