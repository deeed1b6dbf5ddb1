package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "nested", "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), FileModeDefault))

	require.NoError(t, Move(src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}

func TestMoveEmptyPaths(t *testing.T) {
	assert.Error(t, Move("", "x"))
	assert.Error(t, Move("x", ""))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "file.json")

	require.NoError(t, WriteFileAtomic(path, []byte(`{"ok":true}`), FileModeDefault))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(content))

	// No temp residue next to the target.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestVersionPaths(t *testing.T) {
	game := filepath.Join("home", "game")
	assert.Equal(t, filepath.Join(game, "assets", "indexes"), IndexesDir(game))
	assert.Equal(t, filepath.Join(game, "assets", "objects"), ObjectsDir(game))
	assert.Equal(t, filepath.Join(game, "versions", "1.8.9", "natives"), NativesDir(game, "1.8.9"))
	assert.Equal(t, filepath.Join(game, "versions", "1.8.9", "1.8.9.jar"), ClientJar(game, "1.8.9"))
}
