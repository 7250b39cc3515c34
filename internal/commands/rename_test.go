package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fsops/internal/domain"
	"fsops/internal/mocks"
	"fsops/internal/testutil"
)

func TestRenameCommand_Execute(t *testing.T) {
	ops := mocks.NewMockOperations(t)
	ops.On("RenameItem", mock.Anything, "/a", "/b").Return(domain.Result{Op: "rename", Path: "/a", Target: "/b"})

	cmd := NewRenameCommand(ops, testutil.Logger())

	res, err := cmd.Execute(context.Background(), RenameRequest{OldPath: "/a", NewPath: "/b"})

	require.NoError(t, err)
	assert.Equal(t, "/b", res.Target)
}

func TestRenameCommand_Execute_MissingArguments(t *testing.T) {
	cmd := NewRenameCommand(mocks.NewMockOperations(t), testutil.Logger())

	_, err := cmd.Execute(context.Background(), RenameRequest{NewPath: "/b"})

	require.Error(t, err)
}
