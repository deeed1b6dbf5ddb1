package fsutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application used in paths
	AppName = "echolauncher"
)

// GetGameDir returns the default root directory for launcher data
// (assets, libraries, versions). It follows the platform user data
// directory convention; callers may override it via configuration.
func GetGameDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// AssetsDir returns the assets root below the game directory.
func AssetsDir(gameDir string) string {
	return filepath.Join(gameDir, "assets")
}

// IndexesDir returns the directory holding cached asset index files.
// Format: <game_dir>/assets/indexes/
func IndexesDir(gameDir string) string {
	return filepath.Join(AssetsDir(gameDir), "indexes")
}

// ObjectsDir returns the content-addressed object tree root.
// Format: <game_dir>/assets/objects/
func ObjectsDir(gameDir string) string {
	return filepath.Join(AssetsDir(gameDir), "objects")
}

// LibrariesDir returns the maven-layout library tree root.
func LibrariesDir(gameDir string) string {
	return filepath.Join(gameDir, "libraries")
}

// VersionsDir returns the per-version directory root.
func VersionsDir(gameDir string) string {
	return filepath.Join(gameDir, "versions")
}

// VersionDir returns the directory of one installed version.
func VersionDir(gameDir, versionID string) string {
	return filepath.Join(VersionsDir(gameDir), versionID)
}

// NativesDir returns the flat extraction target for a version's native
// libraries. Format: <game_dir>/versions/<id>/natives/
func NativesDir(gameDir, versionID string) string {
	return filepath.Join(VersionDir(gameDir, versionID), "natives")
}

// ClientJar returns the path of the primary client artifact for a version.
func ClientJar(gameDir, versionID string) string {
	return filepath.Join(VersionDir(gameDir, versionID), versionID+".jar")
}

// VersionDescriptor returns the path of the cached version manifest.
func VersionDescriptor(gameDir, versionID string) string {
	return filepath.Join(VersionDir(gameDir, versionID), versionID+".json")
}
