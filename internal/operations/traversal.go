package operations

import (
	"fmt"

	"fsops/internal/domain"
	fserrors "fsops/internal/errors"
)

// traversal guards one recursive walk against unbounded depth and against
// re-entering a directory that is already on the current path, which is
// what a symlink pointing at an ancestor produces.
type traversal struct {
	fs       domain.FileSystemAdapter
	maxDepth int
	active   map[string]struct{}
	// exclude, when set, drops matching entry names from a directory copy.
	exclude domain.EntryFilter
}

func newTraversal(fs domain.FileSystemAdapter, maxDepth int) *traversal {
	return &traversal{
		fs:       fs,
		maxDepth: maxDepth,
		active:   make(map[string]struct{}),
	}
}

// enter marks dir as being walked at depth. The returned func must be
// called once the directory's children are done.
func (t *traversal) enter(op, dir string, depth int) (func(), error) {
	if depth > t.maxDepth {
		return nil, fserrors.New(op, dir, fserrors.KindDepthExceeded,
			fmt.Errorf("depth %d exceeds limit %d", depth, t.maxDepth))
	}

	resolved, err := t.fs.RealPath(dir)
	if err != nil {
		return nil, fserrors.Wrap(op, dir, err)
	}
	if _, seen := t.active[resolved]; seen {
		return nil, fserrors.New(op, dir, fserrors.KindCycle,
			fmt.Errorf("%s is already being traversed", resolved))
	}

	t.active[resolved] = struct{}{}
	return func() { delete(t.active, resolved) }, nil
}

func (t *traversal) excluded(name string) bool {
	return t.exclude != nil && t.exclude.ShouldExclude(name)
}
