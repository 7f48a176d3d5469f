//go:build windows

package statsfile

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync forces the file's data to stable storage.
//
// On Windows, FlushFileBuffers ensures all file data and metadata is
// written to disk.
func fdatasync(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}

// syncDir is a no-op on Windows; directories cannot be opened for
// flushing and NTFS journals the rename itself.
func syncDir(string) error {
	return nil
}
