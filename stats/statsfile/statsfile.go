package statsfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultPerm is the file mode new dump files are created with.
const DefaultPerm os.FileMode = 0o644

// Options controls how dump files reach the disk.
type Options struct {
	// Durable forces the file and its directory to stable storage before
	// Write returns. Slower; meant for end-of-run dumps.
	// Default: false
	Durable bool

	// Perm is the file mode for newly created dump files.
	// Default: 0644
	Perm os.FileMode
}

// DefaultOptions returns sensible defaults for dump files.
func DefaultOptions() Options {
	return Options{
		Durable: false,
		Perm:    DefaultPerm,
	}
}

// Write writes data to path atomically via temp file + rename.
func Write(path string, data []byte, opts Options) error {
	return WriteFrom(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}, opts)
}

// WriteFrom streams the output of render to path atomically. The render
// callback receives the temporary file; nothing it writes becomes visible
// at path until it returns successfully.
func WriteFrom(path string, render func(w io.Writer) error, opts Options) error {
	if opts.Perm == 0 {
		opts.Perm = DefaultPerm
	}

	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".statkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if renderErr := render(tmpFile); renderErr != nil {
		return fmt.Errorf("render dump: %w", renderErr)
	}

	if opts.Durable {
		if syncErr := fdatasync(tmpFile); syncErr != nil {
			return fmt.Errorf("sync temp file: %w", syncErr)
		}
	}

	if chmodErr := tmpFile.Chmod(opts.Perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	// Atomic rename
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	if opts.Durable {
		if syncErr := syncDir(dir); syncErr != nil {
			return fmt.Errorf("sync directory: %w", syncErr)
		}
	}

	return nil
}
