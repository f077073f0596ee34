package shell

import (
	"os"
	"path/filepath"
)

// FS is the set of filesystem operations the builtins are allowed to use.
type FS interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Mkdir(name string, perm os.FileMode) error
	CreateNew(name string) error
	ReadFile(name string) ([]byte, error)
	Access(dir string) error
	EvalSymlinks(path string) (string, error)
}

// OSFS implements [FS] on top of the real filesystem.
type OSFS struct{}

// Stat wraps around [os.Stat].
func (OSFS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir wraps around [os.ReadDir].
func (OSFS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Mkdir wraps around [os.Mkdir].
func (OSFS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

// CreateNew creates an empty file and fails with [fs.ErrExist] if the file
// is already there.
func (OSFS) CreateNew(name string) error {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	return f.Close()
}

// ReadFile wraps around [os.ReadFile].
func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// EvalSymlinks wraps around [filepath.EvalSymlinks].
func (OSFS) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

var _ FS = OSFS{}
