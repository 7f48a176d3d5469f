package statsfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/statkit/stats"
)

func TestWrite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.stats")

	err := Write(path, []byte("hits: 3\n"), DefaultOptions())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hits: 3\n", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, DefaultPerm, info.Mode().Perm())
	}
}

func TestWrite_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.stats")
	require.NoError(t, os.WriteFile(path, []byte("old dump"), 0o644))

	err := Write(path, []byte("new dump"), DefaultOptions())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new dump", string(data))
}

func TestWrite_Durable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final.stats")

	opts := DefaultOptions()
	opts.Durable = true

	err := Write(path, []byte("cycles: 100\n"), opts)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "cycles: 100\n", string(data))
}

func TestWrite_ZeroPermDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on Windows")
	}
	path := filepath.Join(t.TempDir(), "run.stats")

	err := Write(path, []byte("x"), Options{})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, DefaultPerm, info.Mode().Perm())
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "run.stats")

	err := Write(path, []byte("x"), DefaultOptions())
	require.Error(t, err)
	require.Contains(t, err.Error(), "create temp file")
}

func TestWriteFrom_RenderError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.stats")
	require.NoError(t, os.WriteFile(path, []byte("previous dump"), 0o644))

	renderErr := errors.New("boom")
	err := WriteFrom(path, func(io.Writer) error { return renderErr }, DefaultOptions())
	require.Error(t, err)
	require.ErrorIs(t, err, renderErr)

	// The old dump survives and the temp file is cleaned up.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "previous dump", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "failed writes must not leave temp files")
}

func TestWriteFrom_StreamsDump(t *testing.T) {
	reg := stats.New(nil)
	hits := stats.NewScalar[uint64](reg.NewNode("cache"), "hits")

	inst := reg.NewInstance()
	hits.In(inst).Set(3)

	path := filepath.Join(t.TempDir(), "run.stats")
	err := WriteFrom(path, func(w io.Writer) error {
		return reg.RenderText(w, inst)
	}, DefaultOptions())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "cache:\n  hits: 3\n", string(data))
	require.False(t, strings.Contains(string(data), ".statkit-tmp"))
}
