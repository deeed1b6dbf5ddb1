// Package platform resolves the running host into the naming convention
// used by version manifests: OS keys windows/linux/osx and architecture
// bits "32"/"64".
package platform

const (
	// OSWindows is the manifest key for Windows.
	OSWindows = "windows"
	// OSLinux is the manifest key for Linux.
	OSLinux = "linux"
	// OSX is the manifest key for macOS (manifests predate the "macos" rename).
	OSX = "osx"

	// Arch64 marks a 64-bit host in ${arch} substitutions.
	Arch64 = "64"
	// Arch32 marks a 32-bit host in ${arch} substitutions.
	Arch32 = "32"
)

// ValidOS returns the OS keys a manifest may name.
func ValidOS() []string {
	return []string{OSWindows, OSLinux, OSX}
}
