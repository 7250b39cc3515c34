package operations

import (
	"context"
	"errors"
	"path/filepath"

	"fsops/internal/domain"
	fserrors "fsops/internal/errors"
)

// DeleteItem removes a regular file, or a directory and everything below
// it. A missing item is reported as a NotFound failure.
func (m *Manager) DeleteItem(ctx context.Context, item string) domain.Result {
	log := m.begin(OpDelete, item, "")
	res := domain.Result{Op: OpDelete, Path: item}
	res.Err = m.deleteItem(ctx, newTraversal(m.fs, m.maxDepth), item, 0)
	return m.finish(ctx, log, res)
}

// DeleteDirectory deletes every child of directory depth-first and then the
// directory itself. The result is that of the final removal; when it fails,
// the child failures that caused it are included in the error.
func (m *Manager) DeleteDirectory(ctx context.Context, directory string) domain.Result {
	log := m.begin(OpDeleteDirectory, directory, "")
	res := domain.Result{Op: OpDeleteDirectory, Path: directory}

	info, err := m.fs.Lstat(directory)
	switch {
	case err != nil:
		res.Err = fserrors.Wrap(OpDeleteDirectory, directory, err)
	case !info.IsDir():
		res.Err = fserrors.New(OpDeleteDirectory, directory, fserrors.KindUnsupported,
			errors.New("not a directory"))
	default:
		res.Err = m.deleteDirectory(ctx, newTraversal(m.fs, m.maxDepth), directory, 0)
	}

	return m.finish(ctx, log, res)
}

// deleteItem does not follow symlinks: a link is removed, never descended.
func (m *Manager) deleteItem(ctx context.Context, t *traversal, item string, depth int) error {
	info, err := m.fs.Lstat(item)
	if err != nil {
		return fserrors.Wrap(OpDelete, item, err)
	}

	if info.IsDir() {
		return m.deleteDirectory(ctx, t, item, depth)
	}
	return m.remove(ctx, OpDelete, item)
}

func (m *Manager) deleteDirectory(ctx context.Context, t *traversal, directory string, depth int) error {
	leave, err := t.enter(OpDeleteDirectory, directory, depth)
	if err != nil {
		return err
	}
	defer leave()

	names, err := m.fs.ReadDirNames(directory)
	if err != nil {
		return fserrors.Wrap(OpDeleteDirectory, directory, err)
	}

	var failures []error
	for _, name := range names {
		if err := m.deleteItem(ctx, t, filepath.Join(directory, name), depth+1); err != nil {
			failures = appendFailure(failures, err)
		}
	}

	if err := m.remove(ctx, OpDeleteDirectory, directory); err != nil {
		return fserrors.Join(append(failures, err)...)
	}
	return nil
}

func (m *Manager) remove(ctx context.Context, op, path string) error {
	if err := m.wait(ctx, op, path); err != nil {
		return err
	}
	if err := m.fs.Remove(path); err != nil {
		return fserrors.Wrap(op, path, err)
	}
	return nil
}
