package library

import (
	"path/filepath"
	"testing"

	"github.com/echo-launcher/echolauncher/pkg/manifest"
	"github.com/echo-launcher/echolauncher/pkg/model"
	"github.com/echo-launcher/echolauncher/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linux64 = platform.Platform{OS: platform.OSLinux, Arch: platform.Arch64}

func artifactEntry(name, url, path string) manifest.Library {
	return manifest.Library{
		Name: name,
		Downloads: &manifest.LibraryDownloads{
			Artifact: &manifest.ArtifactRef{URL: url, Path: path, Size: 100},
		},
	}
}

func TestResolvePreservesManifestOrder(t *testing.T) {
	root := filepath.Join("game", "libraries")
	r := NewResolver(root)

	denied := artifactEntry("com.example:b:1.0", "https://example.com/b.jar", "com/example/b/1.0/b-1.0.jar")
	denied.Rules = []manifest.Rule{
		{Action: manifest.ActionDisallow, OS: &manifest.OSRule{Name: platform.OSLinux}},
	}

	entries := []manifest.Library{
		artifactEntry("com.example:a:1.0", "https://example.com/a.jar", "com/example/a/1.0/a-1.0.jar"),
		denied,
		artifactEntry("com.example:c:1.0", "https://example.com/c.jar", "com/example/c/1.0/c-1.0.jar"),
	}

	res := r.Resolve(entries, linux64)

	require.Len(t, res.Classpath, 2)
	assert.Equal(t, filepath.Join(root, "com", "example", "a", "1.0", "a-1.0.jar"), res.Classpath[0])
	assert.Equal(t, filepath.Join(root, "com", "example", "c", "1.0", "c-1.0.jar"), res.Classpath[1])
	assert.Len(t, res.Downloads, 2)
	assert.Empty(t, res.Synthesized)
}

func TestResolveSynthesizesLegacyPath(t *testing.T) {
	root := filepath.Join("game", "libraries")
	r := NewResolver(root)

	entries := []manifest.Library{
		{Name: "com.google.guava:guava:17.0"},
		{Name: "not-a-coordinate"},
	}

	res := r.Resolve(entries, linux64)

	require.Len(t, res.Classpath, 1)
	expected := filepath.Join(root, "com", "google", "guava", "guava", "17.0", "guava-17.0.jar")
	assert.Equal(t, expected, res.Classpath[0])
	assert.Equal(t, []string{expected}, res.Synthesized)
	assert.Empty(t, res.Downloads, "synthesized paths emit no download")
}

func TestResolveNativeClassifier(t *testing.T) {
	root := filepath.Join("game", "libraries")
	r := NewResolver(root)

	entry := manifest.Library{
		Name: "org.lwjgl.lwjgl:lwjgl-platform:2.9.4",
		Downloads: &manifest.LibraryDownloads{
			Artifact: &manifest.ArtifactRef{
				URL:  "https://example.com/lwjgl-platform.jar",
				Path: "org/lwjgl/lwjgl/lwjgl-platform/2.9.4/lwjgl-platform-2.9.4.jar",
			},
			Classifiers: map[string]manifest.ArtifactRef{
				"natives-linux-64": {
					URL:  "https://example.com/lwjgl-platform-natives.jar",
					Path: "org/lwjgl/lwjgl/lwjgl-platform/2.9.4/lwjgl-platform-2.9.4-natives-linux-64.jar",
					Size: 500,
				},
			},
		},
		Natives: map[string]string{
			platform.OSLinux:   "natives-linux-${arch}",
			platform.OSWindows: "natives-windows-${arch}",
		},
	}

	res := r.Resolve([]manifest.Library{entry}, linux64)

	require.Len(t, res.Downloads, 2)
	assert.Len(t, res.Classpath, 1, "native archive never joins the classpath")

	var native *model.ResolvedDownload
	for i := range res.Downloads {
		if res.Downloads[i].Native {
			native = &res.Downloads[i]
		}
	}
	require.NotNil(t, native)
	assert.Equal(t, "https://example.com/lwjgl-platform-natives.jar", native.URL)
	assert.Equal(t, int64(500), native.Size)
}

func TestResolveNativeNoClassifierForPlatform(t *testing.T) {
	r := NewResolver("libs")
	entry := manifest.Library{
		Name: "org.lwjgl.lwjgl:lwjgl-platform:2.9.4",
		Downloads: &manifest.LibraryDownloads{
			Classifiers: map[string]manifest.ArtifactRef{
				"natives-windows-64": {URL: "https://example.com/win.jar", Path: "w.jar"},
			},
		},
		Natives: map[string]string{platform.OSWindows: "natives-windows-${arch}"},
	}

	res := r.Resolve([]manifest.Library{entry}, linux64)
	assert.Empty(t, res.Downloads, "no classifier matches this platform")
	// The entry still synthesizes its main artifact path from the name.
	require.Len(t, res.Classpath, 1)
	assert.Equal(t, res.Classpath, res.Synthesized)
}

func TestClasspathClientJarFirst(t *testing.T) {
	root := filepath.Join("game", "libraries")
	r := NewResolver(root)
	client := filepath.Join("game", "versions", "1.8.9", "1.8.9.jar")

	entries := []manifest.Library{
		artifactEntry("com.example:a:1.0", "https://example.com/a.jar", "com/example/a/1.0/a-1.0.jar"),
	}

	cp := r.Classpath(client, entries, linux64)
	require.Len(t, cp, 2)
	assert.Equal(t, client, cp[0])
}

func TestResolveArtifactWithoutDeclaredPath(t *testing.T) {
	root := "libs"
	r := NewResolver(root)
	entry := manifest.Library{
		Name: "com.example:thing:2.1",
		Downloads: &manifest.LibraryDownloads{
			Artifact: &manifest.ArtifactRef{URL: "https://example.com/thing.jar"},
		},
	}

	res := r.Resolve([]manifest.Library{entry}, linux64)
	require.Len(t, res.Downloads, 1)
	assert.Equal(t, filepath.Join(root, "com", "example", "thing", "2.1", "thing-2.1.jar"), res.Downloads[0].Dest)
}
