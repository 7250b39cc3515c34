package operations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fsops/internal/domain"
	fserrors "fsops/internal/errors"
)

// CopyItem copies source to target. A regular file replaces whatever file
// is at target. A directory is copied depth-first; the copy succeeds only if
// every nested entry was copied and the target ends up with the same
// top-level names as the source.
func (m *Manager) CopyItem(ctx context.Context, source, target string) domain.Result {
	log := m.begin(OpCopy, source, target)
	res := domain.Result{Op: OpCopy, Path: source, Target: target}
	res.Err = m.copyItem(ctx, source, target, m.exclude)
	return m.finish(ctx, log, res)
}

func (m *Manager) copyItem(ctx context.Context, source, target string, exclude domain.EntryFilter) error {
	info, err := m.fs.Stat(source)
	if err != nil {
		return fserrors.Wrap(OpCopy, source, err)
	}

	if info.IsDir() {
		if m.isWithin(source, target) {
			return fserrors.New(OpCopy, target, fserrors.KindCycle,
				errors.New("target is inside the source directory"))
		}
	} else if info.Mode().IsRegular() && m.samePath(source, target) {
		return nil
	}

	t := newTraversal(m.fs, m.maxDepth)
	t.exclude = exclude
	return m.copyEntry(ctx, t, source, target, 0)
}

func (m *Manager) copyEntry(ctx context.Context, t *traversal, source, target string, depth int) error {
	info, err := m.fs.Stat(source)
	if err != nil {
		return fserrors.Wrap(OpCopy, source, err)
	}

	switch {
	case info.Mode().IsRegular():
		return m.copyFile(ctx, source, target)
	case info.IsDir():
		return m.copyDirectory(ctx, t, source, target, depth)
	default:
		return fserrors.New(OpCopy, source, fserrors.KindUnsupported,
			fmt.Errorf("cannot copy entry of type %s", info.Mode().Type()))
	}
}

func (m *Manager) copyFile(ctx context.Context, source, target string) error {
	if err := m.wait(ctx, OpCopy, target); err != nil {
		return err
	}

	src, err := m.fs.Open(source)
	if err != nil {
		return fserrors.Wrap(OpCopy, source, err)
	}
	defer src.Close()

	dst, err := m.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, m.filePerm)
	if err != nil {
		return fserrors.Wrap(OpCopy, target, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fserrors.Wrap(OpCopy, target, err)
	}

	if err := dst.Close(); err != nil {
		return fserrors.Wrap(OpCopy, target, err)
	}

	return nil
}

func (m *Manager) copyDirectory(ctx context.Context, t *traversal, source, target string, depth int) error {
	leave, err := t.enter(OpCopy, source, depth)
	if err != nil {
		return err
	}
	defer leave()

	if err := m.wait(ctx, OpCopy, target); err != nil {
		return err
	}
	if err := m.fs.MkdirAll(target, m.dirPerm); err != nil {
		return fserrors.Wrap(OpCopy, target, err)
	}

	listed, err := m.fs.ReadDirNames(source)
	if err != nil {
		return fserrors.Wrap(OpCopy, source, err)
	}

	var names, excluded []string
	for _, name := range listed {
		if t.excluded(name) {
			m.logger.DebugContext(ctx, "entry excluded", "path", filepath.Join(source, name))
			excluded = append(excluded, name)
			continue
		}
		names = append(names, name)
	}

	var failures []error
	for _, name := range names {
		childSource := filepath.Join(source, name)
		childTarget := filepath.Join(target, name)
		if err := m.copyEntry(ctx, t, childSource, childTarget, depth+1); err != nil {
			failures = appendFailure(failures, err)
		}
	}

	if len(failures) == 0 {
		if err := m.verifyListing(target, names, excluded); err != nil {
			failures = append(failures, err)
		}
	}

	return fserrors.Join(failures...)
}

// verifyListing checks that the target holds exactly the names copied from
// the source. Excluded names may be present in the target or not.
func (m *Manager) verifyListing(target string, names, excluded []string) error {
	copied, err := m.fs.ReadDirNames(target)
	if err != nil {
		return fserrors.Wrap(OpCopy, target, err)
	}

	present := make(map[string]struct{}, len(copied))
	for _, name := range copied {
		present[name] = struct{}{}
	}
	expected := make(map[string]struct{}, len(names)+len(excluded))
	for _, name := range names {
		expected[name] = struct{}{}
	}
	for _, name := range excluded {
		expected[name] = struct{}{}
	}

	var missing, extra []string
	for _, name := range names {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	for _, name := range copied {
		if _, ok := expected[name]; !ok {
			extra = append(extra, name)
		}
	}

	switch {
	case len(missing) > 0:
		return fserrors.New(OpCopy, target, fserrors.KindIncomplete,
			fmt.Errorf("missing entries: %s", strings.Join(missing, ", ")))
	case len(extra) > 0:
		return fserrors.New(OpCopy, target, fserrors.KindIncomplete,
			fmt.Errorf("target holds entries not in source: %s", strings.Join(extra, ", ")))
	}
	return nil
}

// isWithin reports whether target is source itself or lies below it.
func (m *Manager) isWithin(source, target string) bool {
	realSource, err := m.fs.RealPath(source)
	if err != nil {
		return false
	}
	realTarget, err := m.fs.RealPath(target)
	if err != nil {
		return false
	}

	rel, err := filepath.Rel(realSource, realTarget)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
