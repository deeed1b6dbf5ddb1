// Package manifest defines the version descriptor format consumed by the
// acquisition engine and the rule DSL that gates library entries per
// platform. Descriptors are immutable once parsed; every resolver treats
// them as read-only input.
package manifest

import (
	"encoding/json"
	"io"
	"os"

	"github.com/echo-launcher/echolauncher/pkg/errors"
)

// ClientDownloadKey is the downloads key of the primary client artifact.
const ClientDownloadKey = "client"

// VersionDescriptor is the parsed upstream version manifest. It declares
// the client artifact, the asset index and the full library set; nothing
// in it is resolved transitively.
type VersionDescriptor struct {
	ID         string                 `json:"id"`
	AssetIndex *AssetIndexRef         `json:"assetIndex,omitempty"`
	Libraries  []Library              `json:"libraries,omitempty"`
	Downloads  map[string]ArtifactRef `json:"downloads,omitempty"`
	MainClass  string                 `json:"mainClass,omitempty"`
}

// AssetIndexRef points at the asset index document for a version.
type AssetIndexRef struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	SHA1      string `json:"sha1,omitempty"`
	Size      int64  `json:"size,omitempty"`
	TotalSize int64  `json:"totalSize,omitempty"`
}

// Library is one manifest library entry. Each entry is fully specified:
// rules gate it per platform, downloads carry the concrete artifacts, and
// natives maps an OS key to the classifier template for that platform.
type Library struct {
	Name      string            `json:"name"`
	Rules     []Rule            `json:"rules,omitempty"`
	Downloads *LibraryDownloads `json:"downloads,omitempty"`
	Natives   map[string]string `json:"natives,omitempty"`
}

// LibraryDownloads carries the main artifact and any classifier variants.
type LibraryDownloads struct {
	Artifact    *ArtifactRef           `json:"artifact,omitempty"`
	Classifiers map[string]ArtifactRef `json:"classifiers,omitempty"`
}

// ArtifactRef is one concrete downloadable artifact.
type ArtifactRef struct {
	URL  string `json:"url"`
	Path string `json:"path,omitempty"`
	SHA1 string `json:"sha1,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// ClientArtifact returns the primary client artifact, or nil when the
// descriptor declares none.
func (d *VersionDescriptor) ClientArtifact() *ArtifactRef {
	if d.Downloads == nil {
		return nil
	}
	if ref, ok := d.Downloads[ClientDownloadKey]; ok {
		return &ref
	}
	return nil
}

// ParseDescriptor parses a version descriptor from JSON data.
func ParseDescriptor(data []byte) (*VersionDescriptor, error) {
	var desc VersionDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, errors.Wrapf(errors.ErrParse, "version descriptor: %v", err)
	}
	return &desc, nil
}

// ParseDescriptorFromReader parses a version descriptor from an io.Reader.
func ParseDescriptorFromReader(reader io.Reader) (*VersionDescriptor, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read version descriptor")
	}
	return ParseDescriptor(data)
}

// ParseDescriptorFromFile parses a version descriptor from a local file.
func ParseDescriptorFromFile(filePath string) (*VersionDescriptor, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open version descriptor %s", filePath)
	}
	defer func() { _ = file.Close() }()
	return ParseDescriptorFromReader(file)
}
