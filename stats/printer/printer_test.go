package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/statkit/stats"
)

// buildTestTree returns a registry with a small two-level schema and a
// filled instance.
func buildTestTree(t *testing.T) (*stats.Registry, *stats.Instance) {
	t.Helper()
	reg := stats.New(nil)

	cycles := stats.NewScalar[uint64](reg.Root(), "cycles")
	cache := reg.NewNode("cache")
	hits := stats.NewScalar[uint64](cache, "hits")
	lat := stats.NewArray[uint64](cache, "lat", 4)
	l1 := cache.NewChild("l1")
	l1hits := stats.NewScalar[uint64](l1, "hits")
	mem := reg.NewNode("mem")
	reads := stats.NewScalar[uint64](mem, "reads")

	inst := reg.NewInstance()
	cycles.In(inst).Set(1048576)
	hits.In(inst).Set(3)
	lat.In(inst).Set(2, 7)
	l1hits.In(inst).Set(9)
	reads.In(inst).Set(2)
	return reg, inst
}

func TestPrinter_Print_Text(t *testing.T) {
	reg, inst := buildTestTree(t)

	var buf bytes.Buffer
	p := New(reg, &buf, DefaultOptions())
	err := p.Print(inst)
	require.NoError(t, err)

	// The default text format is the core renderer's, byte for byte.
	var want bytes.Buffer
	require.NoError(t, reg.RenderText(&want, inst))
	require.Equal(t, want.String(), buf.String())

	require.Contains(t, buf.String(), "cycles: 1048576\n")
	require.Contains(t, buf.String(), "  lat: 0 0 7 0 \n")
}

func TestPrinter_Print_TextHumanized(t *testing.T) {
	reg, inst := buildTestTree(t)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Humanize = true

	p := New(reg, &buf, opts)
	err := p.Print(inst)
	require.NoError(t, err)

	output := buf.String()
	require.Contains(t, output, "cycles: 1,048,576\n")
	require.Contains(t, output, "  hits: 3\n", "small values gain no separators")
}

func TestPrinter_Print_YAML(t *testing.T) {
	reg, inst := buildTestTree(t)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatYAML

	p := New(reg, &buf, opts)
	err := p.Print(inst)
	require.NoError(t, err)

	output := buf.String()
	t.Logf("YAML output:\n%s", output)

	require.Contains(t, output, "cycles: 1048576\n")
	require.Contains(t, output, "  lat: [0, 0, 7, 0]\n")

	// Verify it parses back.
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Contains(t, doc, "cache")
	require.Contains(t, doc, "mem")
}

func TestPrinter_Print_JSON(t *testing.T) {
	reg, inst := buildTestTree(t)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON

	p := New(reg, &buf, opts)
	err := p.Print(inst)
	require.NoError(t, err)

	output := buf.String()
	t.Logf("JSON output:\n%s", output)

	require.Contains(t, output, `"cycles": 1048576`)
	require.Contains(t, output, `"hits": 3`)
	require.True(t, strings.HasSuffix(output, "\n"))
}

func TestPrinter_PrintNode(t *testing.T) {
	reg, inst := buildTestTree(t)

	var buf bytes.Buffer
	p := New(reg, &buf, DefaultOptions())
	err := p.PrintNode("cache", inst)
	require.NoError(t, err)

	want := strings.Join([]string{
		"hits: 3",
		"lat: 0 0 7 0 ",
		"l1:",
		"  hits: 9",
	}, "\n") + "\n"
	require.Equal(t, want, buf.String())
}

func TestPrinter_PrintNode_Unknown(t *testing.T) {
	reg, inst := buildTestTree(t)

	var buf bytes.Buffer
	p := New(reg, &buf, DefaultOptions())
	err := p.PrintNode("cache.l2", inst)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownNode)
	require.Zero(t, buf.Len(), "nothing should be written on a bad path")
}

func TestPrinter_Options_MaxDepth(t *testing.T) {
	reg, inst := buildTestTree(t)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.MaxDepth = 1

	p := New(reg, &buf, opts)
	err := p.Print(inst)
	require.NoError(t, err)

	output := buf.String()
	require.Contains(t, output, "cache:")
	require.Contains(t, output, "  hits: 3")
	require.NotContains(t, output, "l1", "namespaces below the limit are pruned")
}

func TestPrinter_Options_MaxDepth_YAML(t *testing.T) {
	reg, inst := buildTestTree(t)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatYAML
	opts.MaxDepth = 1

	p := New(reg, &buf, opts)
	err := p.Print(inst)
	require.NoError(t, err)

	output := buf.String()
	require.Contains(t, output, "cache:")
	require.NotContains(t, output, "l1")
}

func TestPrinter_Options_IndentSize(t *testing.T) {
	reg, inst := buildTestTree(t)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.IndentSize = 4

	p := New(reg, &buf, opts)
	err := p.Print(inst)
	require.NoError(t, err)

	output := buf.String()
	require.Contains(t, output, "    hits: 3\n")
	require.Contains(t, output, "        hits: 9\n", "two levels deep indents twice")
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	require.Equal(t, FormatText, opts.Format)
	require.Equal(t, 2, opts.IndentSize)
	require.Equal(t, 0, opts.MaxDepth)
	require.False(t, opts.Humanize)
}
