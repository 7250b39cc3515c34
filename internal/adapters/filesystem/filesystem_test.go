package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDirNames_Sorted(t *testing.T) {
	a := NewMemory()
	require.NoError(t, a.MkdirAll("/root/dir", 0o755))
	for _, name := range []string{"c.txt", "a.txt", "b"} {
		require.NoError(t, afero.WriteFile(a.Fs(), filepath.Join("/root/dir", name), []byte(name), 0o644))
	}

	names, err := a.ReadDirNames("/root/dir")

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b", "c.txt"}, names)
}

func TestReadDirNames_Missing(t *testing.T) {
	a := NewMemory()

	_, err := a.ReadDirNames("/nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadOnly_RejectsMutations(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/f.txt", []byte("x"), 0o644))
	a := NewReadOnly(base)

	err := a.Remove("/f.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)

	_, err = a.Stat("/f.txt")
	require.NoError(t, err)
}

func TestRealPath_MemoryIsAbsolute(t *testing.T) {
	a := NewMemory()

	p, err := a.RealPath("/a/../b")

	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/b"), p)
}

func TestRealPath_ResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(realDir, 0o755))
	link := filepath.Join(dir, "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	a := New()
	resolvedLink, err := a.RealPath(link)
	require.NoError(t, err)
	resolvedReal, err := a.RealPath(realDir)
	require.NoError(t, err)

	assert.Equal(t, resolvedReal, resolvedLink)
}

func TestRealPath_MissingPathOnOs(t *testing.T) {
	a := New()
	dir := t.TempDir()
	resolvedDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	p, err := a.RealPath(filepath.Join(dir, "missing", "child"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(resolvedDir, "missing", "child"), p)
}

func TestRealPath_MissingPathBelowSymlink(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(realDir, 0o755))
	link := filepath.Join(dir, "link")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	a := New()
	resolvedReal, err := a.RealPath(realDir)
	require.NoError(t, err)

	p, err := a.RealPath(filepath.Join(link, "sub", "deeper"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(resolvedReal, "sub", "deeper"), p)
}

func TestLstat_DoesNotFollowLinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	a := New()
	info, err := a.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	info, err = a.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
