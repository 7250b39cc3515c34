package operations

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsops/internal/adapters/filesystem"
	fserrors "fsops/internal/errors"
	"fsops/internal/testutil"
)

func TestCreateFile(t *testing.T) {
	m, fs := newMemoryManager(t)
	require.NoError(t, fs.MkdirAll("/work", 0o755))

	res := m.CreateFile(context.Background(), "new.txt", "/work")

	require.True(t, res.OK(), "create failed: %v", res.Err)
	assert.Equal(t, "/work/new.txt", res.Path)
	info, err := fs.Stat("/work/new.txt")
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.Zero(t, info.Size())
}

func TestCreateFile_AlreadyExists(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	fs := filesystem.NewMemory()
	m := NewManager(fs, logger)
	testutil.WriteTree(t, fs.Fs(), "/work", map[string]string{"taken.txt": "keep"})

	res := m.CreateFile(context.Background(), "taken.txt", "/work")

	require.False(t, res.OK())
	assert.Equal(t, fserrors.KindAlreadyExists, res.Kind())
	assert.Equal(t, "keep", testutil.ReadFile(t, fs.Fs(), "/work/taken.txt"))
	assert.Empty(t, buf.String())
}

func TestCreateFile_MissingParent(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	m := NewManager(filesystem.NewMemory(), logger)

	res := m.CreateFile(context.Background(), "a.txt", "/missing")

	require.False(t, res.OK())
	assert.Equal(t, fserrors.KindNotFound, res.Kind())
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestCreateFile_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/work", 0o755))
	m := NewManager(filesystem.NewReadOnly(base), testutil.Logger())

	res := m.CreateFile(context.Background(), "a.txt", "/work")

	require.False(t, res.OK())
	assert.Equal(t, fserrors.KindPermission, res.Kind())
}

func TestCreateFile_InvalidNames(t *testing.T) {
	m, fs := newMemoryManager(t)
	require.NoError(t, fs.MkdirAll("/work", 0o755))

	tests := []struct {
		name     string
		fileName string
	}{
		{"empty", ""},
		{"dot", "."},
		{"dot dot", ".."},
		{"separator", "a/b.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.CreateFile(context.Background(), tt.fileName, "/work")

			require.False(t, res.OK())
			assert.Equal(t, fserrors.KindInvalidName, res.Kind())
		})
	}
}

func TestCreateDirectory_Twice(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	fs := filesystem.NewMemory()
	m := NewManager(fs, logger)
	require.NoError(t, fs.MkdirAll("/work", 0o755))

	first := m.CreateDirectory(context.Background(), "sub", "/work")
	require.True(t, first.OK(), "create failed: %v", first.Err)

	isDir, err := afero.IsDir(fs.Fs(), "/work/sub")
	require.NoError(t, err)
	assert.True(t, isDir)

	buf.Reset()
	second := m.CreateDirectory(context.Background(), "sub", "/work")

	require.False(t, second.OK())
	assert.Equal(t, fserrors.KindAlreadyExists, second.Kind())
	assert.Empty(t, buf.String())
}

func TestCreateDirectory_FileWithSameName(t *testing.T) {
	m, fs := newMemoryManager(t)
	testutil.WriteTree(t, fs, "/work", map[string]string{"name": "file"})

	res := m.CreateDirectory(context.Background(), "name", "/work")

	require.False(t, res.OK())
	assert.Equal(t, fserrors.KindAlreadyExists, res.Kind())
}

func TestCreateDirectory_ParentIsFile(t *testing.T) {
	m, fs := newMemoryManager(t)
	testutil.WriteTree(t, fs, "/work", map[string]string{"file.txt": "x"})

	res := m.CreateDirectory(context.Background(), "sub", "/work/file.txt")

	require.False(t, res.OK())
	assert.Equal(t, fserrors.KindIO, res.Kind())
}

func TestCreateDirectory_MissingParent(t *testing.T) {
	m, fs := newMemoryManager(t)

	res := m.CreateDirectory(context.Background(), "sub", "/a/b")

	require.False(t, res.OK())
	assert.Equal(t, fserrors.KindNotFound, res.Kind())
	exists, err := afero.Exists(fs, "/a")
	require.NoError(t, err)
	assert.False(t, exists)
}
