package operations

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"fsops/internal/domain"
	fserrors "fsops/internal/errors"
)

// CreateFile creates an empty regular file called name inside parent.
// It fails without logging if any entry of that name already exists.
// A missing parent fails with NotFound, logged at error.
func (m *Manager) CreateFile(ctx context.Context, name, parent string) domain.Result {
	path := filepath.Join(parent, name)
	log := m.begin(OpCreateFile, path, "")
	res := domain.Result{Op: OpCreateFile, Path: path}
	res.Err = m.createFile(ctx, name, parent, path)
	return m.finish(ctx, log, res)
}

func (m *Manager) createFile(ctx context.Context, name, parent, path string) error {
	if err := m.checkCreate(OpCreateFile, name, parent, path); err != nil {
		return err
	}
	if err := m.wait(ctx, OpCreateFile, path); err != nil {
		return err
	}

	f, err := m.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, m.filePerm)
	if err != nil {
		return fserrors.Wrap(OpCreateFile, path, err)
	}
	if err := f.Close(); err != nil {
		return fserrors.Wrap(OpCreateFile, path, err)
	}
	return nil
}

// CreateDirectory creates a single directory called name inside parent.
// An existing entry of that name, file or directory, fails without logging.
// A missing parent is not created; it fails with NotFound, logged at error.
func (m *Manager) CreateDirectory(ctx context.Context, name, parent string) domain.Result {
	path := filepath.Join(parent, name)
	log := m.begin(OpCreateDirectory, path, "")
	res := domain.Result{Op: OpCreateDirectory, Path: path}
	res.Err = m.createDirectory(ctx, name, parent, path)
	return m.finish(ctx, log, res)
}

func (m *Manager) createDirectory(ctx context.Context, name, parent, path string) error {
	if err := m.checkCreate(OpCreateDirectory, name, parent, path); err != nil {
		return err
	}
	if err := m.wait(ctx, OpCreateDirectory, path); err != nil {
		return err
	}

	if err := m.fs.Mkdir(path, m.dirPerm); err != nil {
		return fserrors.Wrap(OpCreateDirectory, path, err)
	}
	return nil
}

// checkCreate validates name, requires parent to be an existing directory
// and rejects a path that is already taken.
func (m *Manager) checkCreate(op, name, parent, path string) error {
	if err := validateName(name); err != nil {
		return fserrors.New(op, path, fserrors.KindInvalidName, err)
	}

	info, err := m.fs.Stat(parent)
	if err != nil {
		return fserrors.Wrap(op, parent, err)
	}
	if !info.IsDir() {
		return fserrors.New(op, parent, fserrors.KindIO, errors.New("parent is not a directory"))
	}

	if m.exists(path) {
		return fserrors.New(op, path, fserrors.KindAlreadyExists, nil)
	}
	return nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return errors.New("name is empty")
	case name == "." || name == "..":
		return errors.New("name refers to a directory link")
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return errors.New("name contains a path separator")
	default:
		return nil
	}
}
