package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform identifies the host a manifest rule or native classifier is
// matched against. Version carries the OS version string used by rule
// regexes; it is empty unless the caller supplies one.
type Platform struct {
	OS      string
	Arch    string
	Version string
}

// Current returns the running platform in manifest naming convention.
func Current() Platform {
	return Platform{
		OS:   NormalizeOS(runtime.GOOS),
		Arch: ArchBits(runtime.GOARCH),
	}
}

// String returns a string representation of the platform.
func (p Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}

// NormalizeOS maps Go and common vendor OS names onto manifest keys.
func NormalizeOS(os string) string {
	switch strings.ToLower(os) {
	case "darwin", "macos", "osx":
		return OSX
	case "win", "windows":
		return OSWindows
	default:
		return strings.ToLower(os)
	}
}

// ArchBits maps an architecture name onto the "32"/"64" convention used
// in ${arch} classifier substitutions.
func ArchBits(arch string) string {
	switch strings.ToLower(arch) {
	case "386", "x86", "i386", "i686", "arm":
		return Arch32
	default:
		return Arch64
	}
}
