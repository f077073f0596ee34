//go:build unix

package shell

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// Access reports whether the caller may enter dir, as chdir would.
func (OSFS) Access(dir string) error {
	if err := unix.Access(dir, unix.X_OK); err != nil {
		return &fs.PathError{Op: "access", Path: dir, Err: err}
	}

	return nil
}
