package commands

import (
	"context"
	"errors"
	"log/slog"

	"fsops/internal/domain"
)

// TransferCommand copies or moves one entry.
type TransferCommand struct {
	ops    domain.Operations
	logger *slog.Logger
}

// NewTransferCommand creates a new transfer command.
func NewTransferCommand(ops domain.Operations, logger *slog.Logger) *TransferCommand {
	return &TransferCommand{
		ops:    ops,
		logger: logger,
	}
}

// TransferRequest contains the parameters for the transfer command.
type TransferRequest struct {
	Source string
	Target string
	// Move deletes the source after a successful copy.
	Move bool
}

// Execute runs the copy or move.
func (c *TransferCommand) Execute(ctx context.Context, req TransferRequest) (domain.Result, error) {
	if req.Source == "" || req.Target == "" {
		return domain.Result{}, errors.New("both source and target must be specified")
	}

	if req.Move {
		c.logger.DebugContext(ctx, "Moving entry", "source", req.Source, "target", req.Target)
		res := c.ops.MoveItem(ctx, req.Source, req.Target)
		if res.OK() && res.CleanupErr != nil {
			c.logger.WarnContext(ctx, "Source left in place after move", "source", req.Source, "error", res.CleanupErr)
		}
		return res, Failures(res)
	}

	c.logger.DebugContext(ctx, "Copying entry", "source", req.Source, "target", req.Target)
	res := c.ops.CopyItem(ctx, req.Source, req.Target)
	return res, Failures(res)
}
