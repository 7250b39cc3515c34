package operations

import (
	"context"
	"errors"

	"fsops/internal/domain"
	fserrors "fsops/internal/errors"
)

// RenameItem renames oldItem to newItem. Nothing is done if an entry
// already exists at newItem. The rename only counts as successful when
// oldItem is gone afterwards.
func (m *Manager) RenameItem(ctx context.Context, oldItem, newItem string) domain.Result {
	log := m.begin(OpRename, oldItem, newItem)
	res := domain.Result{Op: OpRename, Path: oldItem, Target: newItem}
	res.Err = m.renameItem(ctx, oldItem, newItem)
	return m.finish(ctx, log, res)
}

func (m *Manager) renameItem(ctx context.Context, oldItem, newItem string) error {
	if m.exists(newItem) {
		return fserrors.New(OpRename, newItem, fserrors.KindAlreadyExists, nil)
	}
	if _, err := m.fs.Lstat(oldItem); err != nil {
		return fserrors.Wrap(OpRename, oldItem, err)
	}
	if err := m.wait(ctx, OpRename, oldItem); err != nil {
		return err
	}

	if err := m.fs.Rename(oldItem, newItem); err != nil {
		return fserrors.Wrap(OpRename, oldItem, err)
	}

	if m.exists(oldItem) {
		return fserrors.New(OpRename, oldItem, fserrors.KindIncomplete,
			errors.New("entry still present after rename"))
	}
	return nil
}
