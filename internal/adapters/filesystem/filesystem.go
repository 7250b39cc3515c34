package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// Adapter provides file system operations on top of an afero.Fs.
type Adapter struct {
	fs           afero.Fs
	resolveLinks bool
}

// New creates a filesystem adapter backed by the operating system.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewMemory creates an adapter over an in-memory file system.
func NewMemory() *Adapter {
	return NewWithFs(afero.NewMemMapFs())
}

// NewReadOnly wraps base so every mutation fails with a permission error.
func NewReadOnly(base afero.Fs) *Adapter {
	return &Adapter{
		fs:           afero.NewReadOnlyFs(base),
		resolveLinks: isOsFs(base),
	}
}

// NewWithFs creates an adapter over an arbitrary afero.Fs.
func NewWithFs(fs afero.Fs) *Adapter {
	return &Adapter{
		fs:           fs,
		resolveLinks: isOsFs(fs),
	}
}

// Fs exposes the underlying afero file system.
func (a *Adapter) Fs() afero.Fs {
	return a.fs
}

// Stat returns file info.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// Lstat returns file info without following a final symlink when the
// backing file system supports it.
func (a *Adapter) Lstat(path string) (os.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return a.fs.Stat(path)
}

// ReadDirNames lists the entry names of a directory in sorted order.
func (a *Adapter) ReadDirNames(path string) ([]string, error) {
	dir, err := a.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Open opens a file for reading.
func (a *Adapter) Open(path string) (afero.File, error) {
	return a.fs.Open(path)
}

// OpenFile opens a file with the given flags.
func (a *Adapter) OpenFile(path string, flag int, perm os.FileMode) (afero.File, error) {
	return a.fs.OpenFile(path, flag, perm)
}

// Mkdir creates a single directory.
func (a *Adapter) Mkdir(path string, perm os.FileMode) error {
	return a.fs.Mkdir(path, perm)
}

// MkdirAll creates a directory and all necessary parents.
func (a *Adapter) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// Remove deletes a file or an empty directory.
func (a *Adapter) Remove(path string) error {
	return a.fs.Remove(path)
}

// Rename moves oldPath to newPath.
func (a *Adapter) Rename(oldPath, newPath string) error {
	return a.fs.Rename(oldPath, newPath)
}

// RealPath returns the absolute path with symlinks resolved. For a path
// that does not exist yet, the deepest existing ancestor is resolved and
// the missing tail appended. File systems that cannot resolve links get
// the cleaned absolute path.
func (a *Adapter) RealPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	if !a.resolveLinks {
		return abs, nil
	}

	var tail []string
	current := abs
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			return filepath.Join(append([]string{resolved}, tail...)...), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return abs, nil
		}
		tail = append([]string{filepath.Base(current)}, tail...)
		current = parent
	}
}

func isOsFs(fs afero.Fs) bool {
	_, ok := fs.(*afero.OsFs)
	return ok
}
