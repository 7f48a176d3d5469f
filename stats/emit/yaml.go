package emit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/statkit/stats"
)

// Compile-time check that YAML satisfies the emitter contract.
var _ stats.Emitter = (*YAML)(nil)

// YAML builds a yaml.v3 document from the structured event stream.
// Mappings render block style, counter sequences flow style, matching the
// classic simulator stats dump.
type YAML struct {
	doc   *yaml.Node
	stack []*yaml.Node
}

// NewYAML returns an empty single-use YAML emitter.
func NewYAML() *YAML {
	return &YAML{}
}

// BeginMapping opens a mapping, as the document root or as the pending
// value of the enclosing container.
func (y *YAML) BeginMapping() {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	y.attach(n)
	y.stack = append(y.stack, n)
}

// EndMapping closes the innermost open mapping.
func (y *YAML) EndMapping() {
	y.close(yaml.MappingNode)
}

// Key emits a mapping key; the next event supplies its value.
func (y *YAML) Key(name string) {
	m := y.top()
	if m == nil || m.Kind != yaml.MappingNode {
		panic(fmt.Errorf("emit: key %q outside a mapping", name))
	}
	if len(m.Content)%2 != 0 {
		panic(fmt.Errorf("emit: key %q while key %q still awaits a value",
			name, m.Content[len(m.Content)-1].Value))
	}
	m.Content = append(m.Content, &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: name,
	})
}

// Value emits one numeric scalar.
func (y *YAML) Value(v any) {
	y.attach(scalarNode(v))
}

// BeginSequence opens a flow-style sequence as the pending value.
func (y *YAML) BeginSequence() {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	y.attach(n)
	y.stack = append(y.stack, n)
}

// EndSequence closes the innermost open sequence.
func (y *YAML) EndSequence() {
	y.close(yaml.SequenceNode)
}

// WriteTo encodes the finished document to w with two-space indentation.
// It fails when no events arrived or a container was left open.
func (y *YAML) WriteTo(w io.Writer) error {
	if y.doc == nil {
		return errors.New("emit: empty document")
	}
	if len(y.stack) != 0 {
		return fmt.Errorf("emit: document has %d unclosed containers", len(y.stack))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(y.doc); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Bytes returns the encoded document.
func (y *YAML) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := y.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// attach places n as the document root, the pending mapping value, or the
// next sequence element.
func (y *YAML) attach(n *yaml.Node) {
	parent := y.top()
	if parent == nil {
		if y.doc != nil {
			panic(errors.New("emit: multiple document roots"))
		}
		y.doc = n
		return
	}
	if parent.Kind == yaml.MappingNode && len(parent.Content)%2 == 0 {
		panic(errors.New("emit: value in a mapping without a key"))
	}
	parent.Content = append(parent.Content, n)
}

func (y *YAML) close(kind yaml.Kind) {
	n := y.top()
	if n == nil || n.Kind != kind {
		panic(errors.New("emit: mismatched container end"))
	}
	if kind == yaml.MappingNode && len(n.Content)%2 != 0 {
		panic(fmt.Errorf("emit: mapping closed while key %q awaits a value",
			n.Content[len(n.Content)-1].Value))
	}
	y.stack = y.stack[:len(y.stack)-1]
}

func (y *YAML) top() *yaml.Node {
	if len(y.stack) == 0 {
		return nil
	}
	return y.stack[len(y.stack)-1]
}

// scalarNode encodes one counter value. Integer kinds carry full 64-bit
// precision; floats use the shortest round-trip form with YAML's spellings
// for the non-finite values.
func scalarNode(v any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch x := v.(type) {
	case uint8:
		n.Tag, n.Value = "!!int", strconv.FormatUint(uint64(x), 10)
	case uint16:
		n.Tag, n.Value = "!!int", strconv.FormatUint(uint64(x), 10)
	case uint32:
		n.Tag, n.Value = "!!int", strconv.FormatUint(uint64(x), 10)
	case uint64:
		n.Tag, n.Value = "!!int", strconv.FormatUint(x, 10)
	case int8:
		n.Tag, n.Value = "!!int", strconv.FormatInt(int64(x), 10)
	case int16:
		n.Tag, n.Value = "!!int", strconv.FormatInt(int64(x), 10)
	case int32:
		n.Tag, n.Value = "!!int", strconv.FormatInt(int64(x), 10)
	case int64:
		n.Tag, n.Value = "!!int", strconv.FormatInt(x, 10)
	case int:
		n.Tag, n.Value = "!!int", strconv.Itoa(x)
	case float32:
		n.Tag, n.Value = "!!float", formatFloat(float64(x), 32)
	case float64:
		n.Tag, n.Value = "!!float", formatFloat(x, 64)
	default:
		n.Tag, n.Value = "!!str", fmt.Sprint(v)
	}
	return n
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
