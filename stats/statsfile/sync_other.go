//go:build !linux && !freebsd && !darwin && !windows

package statsfile

import "os"

// fdatasync falls back to a full fsync on platforms without a cheaper
// data-only sync.
func fdatasync(f *os.File) error {
	return f.Sync()
}

// syncDir is best-effort on platforms without directory sync semantics.
func syncDir(string) error {
	return nil
}
