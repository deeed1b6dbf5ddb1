// Package natives extracts platform-native binaries out of downloaded
// classifier jars into a flat directory the runtime loads from. Archive
// directory structure is discarded; only the platform's library suffixes
// survive the filter.
package natives

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	pkgerrors "github.com/echo-launcher/echolauncher/pkg/errors"
	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	"github.com/echo-launcher/echolauncher/pkg/platform"
	"github.com/mholt/archives"
)

// metadataPrefix is the reserved jar metadata tree, never extracted.
const metadataPrefix = "META-INF/"

// macJunkSegment marks resource-fork entries some archives carry.
const macJunkSegment = "__MACOSX"

// platformExtensions is the fixed per-platform native-library suffix table.
var platformExtensions = map[string][]string{
	platform.OSWindows: {".dll"},
	platform.OSLinux:   {".so"},
	platform.OSX:       {".dylib", ".jnilib"},
}

// Extractor extracts native libraries from classifier archives.
type Extractor struct{}

// NewExtractor creates a new Extractor instance.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract opens the archive and writes every platform-matching native
// file flat into outputDir. An entry is skipped when its destination
// already exists and is not older than the archive. A batch caller treats
// the returned error as scoped to this one archive.
func (e *Extractor) Extract(ctx context.Context, archivePath, outputDir string, plat platform.Platform) error {
	archiveInfo, err := os.Stat(archivePath)
	if err != nil {
		return pkgerrors.Wrapf(pkgerrors.ErrExtract, "%s: %v", archivePath, err)
	}

	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return pkgerrors.Wrapf(pkgerrors.ErrExtract, "%s: %v", archivePath, err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	if err := fsutil.EnsureDir(outputDir); err != nil {
		return pkgerrors.Wrapf(err, "could not create natives directory %s", outputDir)
	}

	walkFn := func(entryPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entryPath == "." || d.IsDir() {
			return nil
		}
		if !wanted(entryPath, plat) {
			return nil
		}
		dest := filepath.Join(outputDir, path.Base(entryPath))
		if st, statErr := os.Stat(dest); statErr == nil && !archiveInfo.ModTime().After(st.ModTime()) {
			// Already extracted from this archive generation.
			return nil
		}
		return extractEntry(fsys, entryPath, dest)
	}

	if err := fs.WalkDir(fsys, ".", walkFn); err != nil {
		return pkgerrors.Wrapf(pkgerrors.ErrExtract, "%s: %v", archivePath, err)
	}
	return nil
}

// wanted filters one archive entry: metadata trees are excluded, then the
// filename extension must be in the platform's native suffix set.
func wanted(entryPath string, plat platform.Platform) bool {
	if strings.HasPrefix(entryPath, metadataPrefix) {
		return false
	}
	for _, segment := range strings.Split(entryPath, "/") {
		if segment == macJunkSegment {
			return false
		}
	}
	lower := strings.ToLower(entryPath)
	for _, ext := range platformExtensions[plat.OS] {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func extractEntry(fsys fs.FS, entryPath, dest string) error {
	src, err := fsys.Open(entryPath)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open archive entry %s", entryPath)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to create %s", dest)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return pkgerrors.Wrapf(err, "failed to extract %s", entryPath)
	}
	return nil
}
