//go:build !unix

package shell

import (
	"os"
)

// Access reports whether the caller may enter dir by opening it.
func (OSFS) Access(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}

	return f.Close()
}
