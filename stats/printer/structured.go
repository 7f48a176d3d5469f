package printer

import (
	"io"

	"github.com/joshuapare/statkit/stats"
	"github.com/joshuapare/statkit/stats/emit"
)

// structuredEmitter is the writable subset shared by the YAML and JSON
// emitters.
type structuredEmitter interface {
	stats.Emitter
	WriteTo(w io.Writer) error
}

// printStructured writes a subtree as a YAML or JSON document. With
// MaxDepth unset the document matches Node.RenderStructured through the
// same emitter; a depth limit prunes namespaces below it.
func (p *Printer) printStructured(node *stats.Node, inst *stats.Instance, format Format) error {
	var em structuredEmitter
	if format == FormatJSON {
		em = emit.NewJSON()
	} else {
		em = emit.NewYAML()
	}

	if p.opts.MaxDepth == 0 {
		node.RenderStructured(em, inst)
	} else {
		p.emitNode(em, node, inst, 0)
	}
	return em.WriteTo(p.writer)
}

// emitNode mirrors the core structured walk with the depth limit applied.
func (p *Printer) emitNode(em stats.Emitter, node *stats.Node, inst *stats.Instance, depth int) {
	em.BeginMapping()
	for _, leaf := range node.Leaves() {
		leaf.RenderStructured(em, inst)
	}
	for _, child := range node.Children() {
		if depth+1 > p.opts.MaxDepth {
			break
		}
		em.Key(child.Name())
		p.emitNode(em, child, inst, depth+1)
	}
	em.EndMapping()
}
