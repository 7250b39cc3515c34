package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fsops/internal/domain"
)

// ErrDeclined is returned when the user does not confirm a deletion.
var ErrDeclined = errors.New("deletion not confirmed")

// DeleteCommand removes entries after optional confirmation.
type DeleteCommand struct {
	ops       domain.Operations
	confirmer domain.Confirmer
	logger    *slog.Logger
}

// NewDeleteCommand creates a new delete command.
func NewDeleteCommand(ops domain.Operations, confirmer domain.Confirmer, logger *slog.Logger) *DeleteCommand {
	return &DeleteCommand{
		ops:       ops,
		confirmer: confirmer,
		logger:    logger,
	}
}

// DeleteRequest contains the parameters for the delete command.
type DeleteRequest struct {
	Paths []string
	// AssumeYes skips the confirmation prompt.
	AssumeYes bool
	// DirectoryOnly refuses anything that is not a directory.
	DirectoryOnly bool
}

// Execute deletes every path in order. It keeps going after a failure and
// returns one result per path.
func (c *DeleteCommand) Execute(ctx context.Context, req DeleteRequest) ([]domain.Result, error) {
	if len(req.Paths) == 0 {
		return nil, errors.New("at least one path must be specified")
	}

	if !req.AssumeYes && c.confirmer != nil && c.confirmer.IsInteractive() {
		prompt := fmt.Sprintf("Delete %s and everything below it?", strings.Join(req.Paths, ", "))
		ok, err := c.confirmer.Confirm(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("failed to confirm deletion: %w", err)
		}
		if !ok {
			return nil, ErrDeclined
		}
	}

	results := make([]domain.Result, 0, len(req.Paths))
	for _, path := range req.Paths {
		var res domain.Result
		if req.DirectoryOnly {
			res = c.ops.DeleteDirectory(ctx, path)
		} else {
			res = c.ops.DeleteItem(ctx, path)
		}
		results = append(results, res)
	}

	c.logger.DebugContext(ctx, "Delete finished", "paths", len(req.Paths))

	return results, Failures(results...)
}
