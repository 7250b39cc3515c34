package commands

import (
	"context"
	"errors"
	"log/slog"

	"fsops/internal/domain"
)

// RenameCommand renames one entry.
type RenameCommand struct {
	ops    domain.Operations
	logger *slog.Logger
}

// NewRenameCommand creates a new rename command.
func NewRenameCommand(ops domain.Operations, logger *slog.Logger) *RenameCommand {
	return &RenameCommand{
		ops:    ops,
		logger: logger,
	}
}

// RenameRequest contains the parameters for the rename command.
type RenameRequest struct {
	OldPath string
	NewPath string
}

// Execute runs the rename.
func (c *RenameCommand) Execute(ctx context.Context, req RenameRequest) (domain.Result, error) {
	if req.OldPath == "" || req.NewPath == "" {
		return domain.Result{}, errors.New("both old and new paths must be specified")
	}

	c.logger.DebugContext(ctx, "Renaming entry", "old", req.OldPath, "new", req.NewPath)
	res := c.ops.RenameItem(ctx, req.OldPath, req.NewPath)

	return res, Failures(res)
}
