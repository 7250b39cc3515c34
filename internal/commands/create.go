package commands

import (
	"context"
	"log/slog"

	"fsops/internal/domain"
)

// CreateCommand creates an empty file or a directory.
type CreateCommand struct {
	ops    domain.Operations
	logger *slog.Logger
}

// NewCreateCommand creates a new create command.
func NewCreateCommand(ops domain.Operations, logger *slog.Logger) *CreateCommand {
	return &CreateCommand{
		ops:    ops,
		logger: logger,
	}
}

// CreateRequest contains the parameters for the create command.
type CreateRequest struct {
	Name      string
	Parent    string
	Directory bool
}

// Execute creates the entry. Name validation is left to the operation.
func (c *CreateCommand) Execute(ctx context.Context, req CreateRequest) (domain.Result, error) {
	var res domain.Result
	if req.Directory {
		res = c.ops.CreateDirectory(ctx, req.Name, req.Parent)
	} else {
		res = c.ops.CreateFile(ctx, req.Name, req.Parent)
	}

	c.logger.DebugContext(ctx, "Create finished", "name", req.Name, "parent", req.Parent, "ok", res.OK())

	return res, Failures(res)
}
