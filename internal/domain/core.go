package domain

import "context"

// Operations performs one-shot file system operations on a single source
// and optional target. Failures are reported in the Result, never panicked.
type Operations interface {
	// CopyItem copies a file, or a directory tree depth-first.
	CopyItem(ctx context.Context, source, target string) Result

	// DeleteItem removes a file, or a directory and all its descendants.
	DeleteItem(ctx context.Context, item string) Result

	// DeleteDirectory empties a directory depth-first and then removes it.
	DeleteDirectory(ctx context.Context, directory string) Result

	// MoveItem copies source to target and then deletes source.
	MoveItem(ctx context.Context, source, target string) Result

	// CreateFile creates an empty file called name inside parent.
	CreateFile(ctx context.Context, name, parent string) Result

	// CreateDirectory creates a directory called name inside parent.
	CreateDirectory(ctx context.Context, name, parent string) Result

	// RenameItem renames oldItem to newItem when nothing exists at newItem.
	RenameItem(ctx context.Context, oldItem, newItem string) Result
}
