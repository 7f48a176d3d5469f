package emit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/statkit/stats"
)

// Compile-time check that JSON satisfies the emitter contract.
var _ stats.Emitter = (*JSON)(nil)

// JSON streams the structured event stream into a JSON document,
// preserving attachment order. Keys are escaped with encoding/json.
//
// JSON has no spelling for NaN or the infinities; such values render as
// null and the first occurrence is reported by Bytes and WriteTo.
type JSON struct {
	buf   bytes.Buffer
	stack []jsonFrame
	err   error
}

type jsonFrame struct {
	mapping    bool
	entries    int
	pendingKey bool
}

// NewJSON returns an empty single-use JSON emitter.
func NewJSON() *JSON {
	return &JSON{}
}

// BeginMapping opens an object, as the document root or as the pending
// value of the enclosing container.
func (j *JSON) BeginMapping() {
	j.valuePrefix()
	j.buf.WriteByte('{')
	j.stack = append(j.stack, jsonFrame{mapping: true})
}

// EndMapping closes the innermost open object.
func (j *JSON) EndMapping() {
	f := j.top()
	if f == nil || !f.mapping {
		panic(errors.New("emit: mismatched object end"))
	}
	if f.pendingKey {
		panic(errors.New("emit: object closed while a key awaits a value"))
	}
	j.buf.WriteByte('}')
	j.stack = j.stack[:len(j.stack)-1]
}

// Key emits an object key; the next event supplies its value.
func (j *JSON) Key(name string) {
	f := j.top()
	if f == nil || !f.mapping {
		panic(fmt.Errorf("emit: key %q outside an object", name))
	}
	if f.pendingKey {
		panic(fmt.Errorf("emit: key %q while another key awaits a value", name))
	}
	if f.entries > 0 {
		j.buf.WriteByte(',')
	}
	quoted, err := json.Marshal(name)
	if err != nil {
		j.fail(err)
		quoted = []byte(`""`)
	}
	j.buf.Write(quoted)
	j.buf.WriteByte(':')
	f.pendingKey = true
}

// Value emits one numeric scalar.
func (j *JSON) Value(v any) {
	j.valuePrefix()
	j.writeScalar(v)
}

// BeginSequence opens an array as the pending value.
func (j *JSON) BeginSequence() {
	j.valuePrefix()
	j.buf.WriteByte('[')
	j.stack = append(j.stack, jsonFrame{})
}

// EndSequence closes the innermost open array.
func (j *JSON) EndSequence() {
	f := j.top()
	if f == nil || f.mapping {
		panic(errors.New("emit: mismatched array end"))
	}
	j.buf.WriteByte(']')
	j.stack = j.stack[:len(j.stack)-1]
}

// Bytes returns the finished document in compact form.
func (j *JSON) Bytes() ([]byte, error) {
	if err := j.finish(); err != nil {
		return nil, err
	}
	return bytes.Clone(j.buf.Bytes()), nil
}

// WriteTo writes the finished document to w, indented two spaces and
// terminated by a newline.
func (j *JSON) WriteTo(w io.Writer) error {
	if err := j.finish(); err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, j.buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func (j *JSON) finish() error {
	if j.err != nil {
		return j.err
	}
	if j.buf.Len() == 0 {
		return errors.New("emit: empty document")
	}
	if len(j.stack) != 0 {
		return fmt.Errorf("emit: document has %d unclosed containers", len(j.stack))
	}
	return nil
}

// valuePrefix accounts for one value position: the document root, a keyed
// object entry, or the next array element (with its separating comma).
func (j *JSON) valuePrefix() {
	f := j.top()
	if f == nil {
		if j.buf.Len() != 0 {
			panic(errors.New("emit: multiple document roots"))
		}
		return
	}
	if f.mapping {
		if !f.pendingKey {
			panic(errors.New("emit: value in an object without a key"))
		}
		f.pendingKey = false
		f.entries++
		return
	}
	if f.entries > 0 {
		j.buf.WriteByte(',')
	}
	f.entries++
}

func (j *JSON) writeScalar(v any) {
	switch x := v.(type) {
	case float32:
		j.writeFloat(float64(x))
		return
	case float64:
		j.writeFloat(x)
		return
	}
	enc, err := json.Marshal(v)
	if err != nil {
		j.fail(err)
		enc = []byte("null")
	}
	j.buf.Write(enc)
}

func (j *JSON) writeFloat(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		j.fail(fmt.Errorf("emit: %v has no JSON representation", f))
		j.buf.WriteString("null")
		return
	}
	enc, err := json.Marshal(f)
	if err != nil {
		j.fail(err)
		enc = []byte("null")
	}
	j.buf.Write(enc)
}

// fail records the first error; later ones would only obscure it.
func (j *JSON) fail(err error) {
	if j.err == nil {
		j.err = err
	}
}

func (j *JSON) top() *jsonFrame {
	if len(j.stack) == 0 {
		return nil
	}
	return &j.stack[len(j.stack)-1]
}
