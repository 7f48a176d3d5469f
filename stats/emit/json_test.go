package emit

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJSON_Document tests the compact dump: insertion order preserved,
// arrays inline.
func TestJSON_Document(t *testing.T) {
	reg, inst := dumpRegistry(t)

	em := NewJSON()
	reg.RenderStructured(em, inst)

	out, err := em.Bytes()
	require.NoError(t, err)

	want := `{"cycles":100,"cache":{"hits":3,"lat":[0,0,7,0],"l1":{"hits":9}},"mem":{"reads":2}}`
	assert.Equal(t, want, string(out))
	assert.True(t, json.Valid(out))
}

// TestJSON_WriteToIndents tests the pretty form produced for files and
// terminals.
func TestJSON_WriteToIndents(t *testing.T) {
	em := NewJSON()
	em.BeginMapping()
	em.Key("hits")
	em.Value(uint64(3))
	em.Key("lat")
	em.BeginSequence()
	em.Value(uint64(0))
	em.Value(uint64(7))
	em.EndSequence()
	em.EndMapping()

	var sb strings.Builder
	require.NoError(t, em.WriteTo(&sb))

	want := strings.Join([]string{
		"{",
		`  "hits": 3,`,
		`  "lat": [`,
		"    0,",
		"    7",
		"  ]",
		"}",
	}, "\n") + "\n"
	assert.Equal(t, want, sb.String())
}

// TestJSON_Uint64Precision tests that counters near 2^64 encode without
// float rounding.
func TestJSON_Uint64Precision(t *testing.T) {
	em := NewJSON()
	em.BeginMapping()
	em.Key("v")
	em.Value(uint64(math.MaxUint64))
	em.EndMapping()

	out, err := em.Bytes()
	require.NoError(t, err)
	assert.Equal(t, `{"v":18446744073709551615}`, string(out))
}

// TestJSON_KeyEscaping tests that counter names pass through the JSON
// string escaper.
func TestJSON_KeyEscaping(t *testing.T) {
	em := NewJSON()
	em.BeginMapping()
	em.Key(`quo"te`)
	em.Value(1)
	em.EndMapping()

	out, err := em.Bytes()
	require.NoError(t, err)
	assert.Equal(t, `{"quo\"te":1}`, string(out))
}

// TestJSON_NonFiniteFloats tests the lossy path: JSON has no NaN, so the
// emitter writes null and surfaces an error at the end.
func TestJSON_NonFiniteFloats(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := NewJSON()
			em.BeginMapping()
			em.Key("v")
			em.Value(tt.v)
			em.EndMapping()

			_, err := em.Bytes()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "JSON")
		})
	}
}

// TestJSON_UnclosedDocument tests that partial streams are rejected.
func TestJSON_UnclosedDocument(t *testing.T) {
	em := NewJSON()
	em.BeginMapping()
	em.Key("v")
	em.Value(1)

	_, err := em.Bytes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unclosed")
}

// TestJSON_MisusePanics mirrors the YAML misuse cases.
func TestJSON_MisusePanics(t *testing.T) {
	assert.Panics(t, func() {
		em := NewJSON()
		em.BeginMapping()
		em.Value(1) // value without a key
	})
	assert.Panics(t, func() {
		em := NewJSON()
		em.Key("a") // key outside any mapping
	})
	assert.Panics(t, func() {
		em := NewJSON()
		em.BeginMapping()
		em.EndSequence() // mismatched container end
	})
	assert.Panics(t, func() {
		em := NewJSON()
		em.BeginMapping()
		em.EndMapping()
		em.BeginMapping() // second root
	})
}
