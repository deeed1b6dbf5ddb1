package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	pkgerrors "github.com/echo-launcher/echolauncher/pkg/errors"
)

// Move moves a file from src to dst. It first attempts an atomic os.Rename
// and falls back to copy + delete when the rename fails (e.g. across
// filesystem boundaries).
func Move(src, dst string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("source and destination paths cannot be empty: %w", pkgerrors.ErrInvalidPath)
	}
	if err := EnsureFileDir(dst); err != nil {
		return pkgerrors.Wrapf(err, "failed to create destination directory for %s", dst)
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := Copy(src, dst); err != nil {
		return pkgerrors.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	if err := os.Remove(src); err != nil {
		return pkgerrors.Wrapf(err, "failed to remove source file %s after copy", src)
	}
	return nil
}

// Copy copies the contents of srcFile to dstFile.
func Copy(srcFile, dstFile string) error {
	src, err := os.Open(srcFile)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open source file %s", srcFile)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(dstFile)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to create destination file %s", dstFile)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return pkgerrors.Wrapf(err, "failed to copy from %s to %s", srcFile, dstFile)
	}
	return nil
}

// WriteFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so readers never observe partial content and no
// partially-written file is left at the final path on failure.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := EnsureFileDir(path); err != nil {
		return pkgerrors.Wrapf(err, "failed to create directory for %s", path)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrapf(err, "could not write %s", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not close temp file")
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrapf(err, "could not finalize %s", path)
	}
	return nil
}
