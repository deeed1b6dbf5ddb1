package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installVersion(t *testing.T, gameDir, id string, complete bool) {
	t.Helper()
	require.NoError(t, os.MkdirAll(fsutil.VersionDir(gameDir, id), 0o755))
	if complete {
		require.NoError(t, os.WriteFile(fsutil.ClientJar(gameDir, id), []byte("jar"), 0o644))
		require.NoError(t, os.WriteFile(fsutil.VersionDescriptor(gameDir, id), []byte("{}"), 0o644))
	}
}

func TestListInstalledVersionsSortsSemverDescending(t *testing.T) {
	gameDir := t.TempDir()
	installVersion(t, gameDir, "1.8.9", true)
	installVersion(t, gameDir, "1.12.2", true)
	installVersion(t, gameDir, "1.7.10", true)
	installVersion(t, gameDir, "snapshot-x", true)

	versions, err := listInstalledVersions(gameDir)
	require.NoError(t, err)
	require.Len(t, versions, 4)

	ids := make([]string, len(versions))
	for i, v := range versions {
		ids[i] = v.id
	}
	assert.Equal(t, []string{"1.12.2", "1.8.9", "1.7.10", "snapshot-x"}, ids)
}

func TestListInstalledVersionsCompleteness(t *testing.T) {
	gameDir := t.TempDir()
	installVersion(t, gameDir, "1.8.9", true)
	installVersion(t, gameDir, "1.9.4", false)

	versions, err := listInstalledVersions(gameDir)
	require.NoError(t, err)
	require.Len(t, versions, 2)

	byID := map[string]bool{}
	for _, v := range versions {
		byID[v.id] = v.complete
	}
	assert.True(t, byID["1.8.9"])
	assert.False(t, byID["1.9.4"])
}

func TestListInstalledVersionsMissingDir(t *testing.T) {
	versions, err := listInstalledVersions(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, versions)
}
