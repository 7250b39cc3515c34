package domain

import (
	"context"

	fserrors "fsops/internal/errors"
)

// Result is the outcome of one operation.
type Result struct {
	Op     string
	Path   string
	Target string
	Err    error
	// CleanupErr is set when a move copied successfully but could not
	// remove its source.
	CleanupErr error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind returns why the operation failed, or KindNone.
func (r Result) Kind() fserrors.Kind {
	return fserrors.KindOf(r.Err)
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
	IsInteractive() bool
}

// EntryFilter decides whether an entry name is skipped by a directory copy.
type EntryFilter interface {
	ShouldExclude(name string) bool
}
