package domain

import (
	"os"

	"github.com/spf13/afero"
)

// FileSystemAdapter defines the interface for file operations.
type FileSystemAdapter interface {
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	// ReadDirNames returns the names of the entries in a directory, sorted.
	ReadDirNames(path string) ([]string, error)
	Open(path string) (afero.File, error)
	OpenFile(path string, flag int, perm os.FileMode) (afero.File, error)
	Mkdir(path string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
	Rename(oldPath, newPath string) error
	// RealPath resolves path to an absolute, symlink-free form when the
	// backing file system supports it.
	RealPath(path string) (string, error)
}
