package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFileCopiesContent(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.jpg")
	dst := filepath.Join(tmp, "dst.jpg")

	require.NoError(t, os.WriteFile(src, []byte("image bytes"), 0o644))

	fsys := OSFS{}
	require.NoError(t, fsys.CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), got)
}

func TestCopyFileOverwritesExistingDestination(t *testing.T) {
	tmp := t.TempDir()
	first := filepath.Join(tmp, "first.jpg")
	second := filepath.Join(tmp, "second.jpg")
	dst := filepath.Join(tmp, "dst.jpg")

	require.NoError(t, os.WriteFile(first, []byte("first"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("second"), 0o644))

	fsys := OSFS{}
	require.NoError(t, fsys.CopyFile(first, dst))
	require.NoError(t, fsys.CopyFile(second, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got, "last copy wins on collision")
}

func TestCopyFileMissingSource(t *testing.T) {
	tmp := t.TempDir()

	fsys := OSFS{}
	err := fsys.CopyFile(filepath.Join(tmp, "missing.jpg"), filepath.Join(tmp, "dst.jpg"))
	assert.Error(t, err)
}

func TestTimestampsAreUTC(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "file.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	fsys := OSFS{}
	created, modified, err := fsys.Timestamps(path)
	require.NoError(t, err)

	assert.False(t, created.IsZero())
	assert.False(t, modified.IsZero())
	assert.Equal(t, time.UTC, created.Location())
	assert.Equal(t, time.UTC, modified.Location())
}

func TestTimestampsReflectModTime(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "file.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	want := time.Date(2021, time.March, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, want, want))

	fsys := OSFS{}
	_, modified, err := fsys.Timestamps(path)
	require.NoError(t, err)
	assert.True(t, modified.Equal(want), "modified = %v, want %v", modified, want)
}

func TestMkdirAllIsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "2021", "March")

	fsys := OSFS{}
	require.NoError(t, fsys.MkdirAll(dir, 0o755))
	require.NoError(t, fsys.MkdirAll(dir, 0o755))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
