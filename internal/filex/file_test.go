package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirectories(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "a", "b", "cache.db")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Join(tmp, "a", "b"))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestEnsureParentDir_BareFileNameIsNoop(t *testing.T) {
	require.NoError(t, EnsureParentDir("cache.db"))
}

func TestEnsureParentDir_FailsUnderRegularFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "sub", "cache.db"))
	require.Error(t, err)
}

func TestReadWithContentType(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "avatar.png")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	require.NoError(t, os.WriteFile(path, png, 0o600))

	data, ct, err := ReadWithContentType(path)
	require.NoError(t, err)
	assert.Equal(t, png, data)
	assert.Equal(t, "image/png", ct)
}

func TestReadWithContentType_MissingFile(t *testing.T) {
	_, _, err := ReadWithContentType(filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
}
