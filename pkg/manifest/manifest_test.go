package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/echo-launcher/echolauncher/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDescriptor = `{
  "id": "1.8.9",
  "assetIndex": {"id": "1.8", "url": "https://example.com/indexes/1.8.json"},
  "mainClass": "net.minecraft.client.main.Main",
  "downloads": {
    "client": {"url": "https://example.com/client.jar", "size": 1234}
  },
  "libraries": [
    {
      "name": "org.lwjgl.lwjgl:lwjgl:2.9.4",
      "rules": [
        {"action": "allow"},
        {"action": "disallow", "os": {"name": "osx", "version": "^10\\.5\\."}}
      ],
      "downloads": {
        "artifact": {"url": "https://example.com/lwjgl.jar", "path": "org/lwjgl/lwjgl/lwjgl/2.9.4/lwjgl-2.9.4.jar", "size": 10},
        "classifiers": {
          "natives-linux": {"url": "https://example.com/lwjgl-natives.jar", "path": "org/lwjgl/lwjgl/lwjgl/2.9.4/lwjgl-2.9.4-natives-linux.jar", "size": 20}
        }
      },
      "natives": {"linux": "natives-linux", "windows": "natives-windows-${arch}"}
    }
  ]
}`

func TestParseDescriptor(t *testing.T) {
	desc, err := ParseDescriptor([]byte(sampleDescriptor))
	require.NoError(t, err)

	assert.Equal(t, "1.8.9", desc.ID)
	require.NotNil(t, desc.AssetIndex)
	assert.Equal(t, "1.8", desc.AssetIndex.ID)

	client := desc.ClientArtifact()
	require.NotNil(t, client)
	assert.Equal(t, int64(1234), client.Size)

	require.Len(t, desc.Libraries, 1)
	lib := desc.Libraries[0]
	assert.Len(t, lib.Rules, 2)
	require.NotNil(t, lib.Downloads.Artifact)
	assert.Equal(t, "natives-windows-${arch}", lib.Natives["windows"])
	assert.Contains(t, lib.Downloads.Classifiers, "natives-linux")
}

func TestParseDescriptorMalformed(t *testing.T) {
	_, err := ParseDescriptor([]byte(`{"libraries": [`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrParse)
}

func TestParseDescriptorFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.8.9.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDescriptor), 0o644))

	desc, err := ParseDescriptorFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.8.9", desc.ID)

	_, err = ParseDescriptorFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestClientArtifactAbsent(t *testing.T) {
	desc, err := ParseDescriptor([]byte(`{"id": "old"}`))
	require.NoError(t, err)
	assert.Nil(t, desc.ClientArtifact())
}
