//go:build darwin

package statsfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync forces the file's data to stable storage.
//
// On macOS, fsync() only pushes data to the drive cache; F_FULLFSYNC
// ensures it reaches the physical disk, which is what Durable promises.
func fdatasync(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
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
