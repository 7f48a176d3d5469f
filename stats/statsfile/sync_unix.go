//go:build linux || freebsd

package statsfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync forces the file's data to stable storage.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees: the dump's
// bytes are durable, and the metadata-only timestamp update may be skipped.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}

// syncDir forces the directory entry of a renamed file to stable storage.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
