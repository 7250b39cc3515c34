package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsops/internal/adapters/filesystem"
	"fsops/internal/config"
	"fsops/internal/logging"
	"fsops/internal/mocks"
	"fsops/internal/operations"
)

func TestNewApp_Defaults(t *testing.T) {
	a, err := NewApp(context.Background(), WithFileSystem(filesystem.NewMemory()))

	require.NoError(t, err)
	assert.Equal(t, logging.LevelWarn, a.Config.LogLevel)
	assert.Equal(t, operations.DefaultMaxDepth, a.Config.MaxDepth)
	assert.NotNil(t, a.Operations)
	assert.NotNil(t, a.Confirmer)
	assert.NotNil(t, a.Logger)
}

func TestNewApp_SettingsThenVerbose(t *testing.T) {
	settings := &config.Settings{
		LogLevel:  "error",
		LogFormat: logging.FormatJSON,
		MaxDepth:  7,
		RateLimit: 3,
	}

	a, err := NewApp(context.Background(),
		WithFileSystem(filesystem.NewMemory()),
		WithSettings(settings),
		WithVerbose(true),
	)

	require.NoError(t, err)
	assert.Equal(t, logging.LevelDebug, a.Config.LogLevel)
	assert.Equal(t, logging.FormatJSON, a.Config.LogFormat)
	assert.Equal(t, 7, a.Config.MaxDepth)
	assert.InDelta(t, 3.0, a.Config.RateLimit, 0.0001)

	manager, ok := a.Operations.(*operations.Manager)
	require.True(t, ok)
	assert.Equal(t, 7, manager.MaxDepth())
}

func TestNewApp_WiresInjectedDependencies(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/work", 0o755))
	confirmer := mocks.NewMockConfirmer(t)
	var logs bytes.Buffer

	a, err := NewApp(context.Background(),
		WithFileSystem(fs),
		WithConfirmer(confirmer),
		WithLogOutput(&logs),
		WithLogLevel(logging.LevelDebug),
	)
	require.NoError(t, err)

	res := a.Operations.CreateDirectory(context.Background(), "sub", "/work")

	require.True(t, res.OK())
	_, err = fs.Stat("/work/sub")
	require.NoError(t, err)
	assert.Same(t, confirmer, a.Confirmer)
	assert.Contains(t, logs.String(), "Initializing fsops")
	assert.Contains(t, logs.String(), "operation=create_directory")
}

func TestNewApp_InvalidExcludePattern(t *testing.T) {
	settings := &config.Settings{
		LogLevel: "warn",
		MaxDepth: 3,
		Exclude:  []string{"("},
	}

	a, err := NewApp(context.Background(), WithFileSystem(filesystem.NewMemory()), WithSettings(settings))

	require.Error(t, err)
	assert.Nil(t, a)
	assert.Contains(t, err.Error(), "failed to build exclude filter")
}
