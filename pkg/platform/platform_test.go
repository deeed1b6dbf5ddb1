package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "darwin maps to osx", input: "darwin", expected: OSX},
		{name: "macos maps to osx", input: "macos", expected: OSX},
		{name: "windows stays windows", input: "Windows", expected: OSWindows},
		{name: "win shorthand", input: "win", expected: OSWindows},
		{name: "linux stays linux", input: "linux", expected: OSLinux},
		{name: "unknown lowercased", input: "FreeBSD", expected: "freebsd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeOS(tt.input))
		})
	}
}

func TestArchBits(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "amd64", expected: Arch64},
		{input: "arm64", expected: Arch64},
		{input: "386", expected: Arch32},
		{input: "i686", expected: Arch32},
		{input: "arm", expected: Arch32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ArchBits(tt.input), tt.input)
	}
}

func TestCurrent(t *testing.T) {
	p := Current()
	assert.NotEmpty(t, p.OS)
	assert.Contains(t, []string{Arch32, Arch64}, p.Arch)
	assert.Empty(t, p.Version)
	assert.Contains(t, p.String(), "/")
}
