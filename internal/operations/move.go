package operations

import (
	"context"

	"fsops/internal/domain"
	fserrors "fsops/internal/errors"
)

// MoveItem copies source to target and then deletes source. The move
// succeeds whenever the copy does. If the source cannot be removed
// afterwards both copies remain and Result.CleanupErr says why.
// The exclude filter does not apply: every entry is moved.
func (m *Manager) MoveItem(ctx context.Context, source, target string) domain.Result {
	log := m.begin(OpMove, source, target)
	res := domain.Result{Op: OpMove, Path: source, Target: target}

	if m.exists(source) && m.samePath(source, target) {
		return m.finish(ctx, log, res)
	}

	if res.Err = m.copyItem(ctx, source, target, nil); res.Err != nil {
		return m.finish(ctx, log, res)
	}

	if err := m.deleteItem(ctx, newTraversal(m.fs, m.maxDepth), source, 0); err != nil {
		res.CleanupErr = err
		log.WarnContext(ctx, "source not removed after copy",
			"kind", fserrors.KindOf(err).String(),
			"error", err)
	}

	return m.finish(ctx, log, res)
}
