// Package store implements the content-addressable object store backing
// asset acquisition. An object's location is a pure function of its SHA-1
// hash (objects/<hash[:2]>/<hash>), which gives deduplication and tamper
// detection for free: a file that exists at its derived path with the
// right digest never needs to be fetched again. Entries are never evicted.
package store

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/echo-launcher/echolauncher/pkg/errors"
	"github.com/echo-launcher/echolauncher/pkg/fsutil"
)

// hashChunkSize bounds memory during verification independent of object
// size; objects are streamed through the digest in fixed-size chunks.
const hashChunkSize = 64 * 1024

const sha1HexLen = 40

// Store owns the objects/ tree below its root. Concurrent Put calls for
// distinct hashes are safe; writes go through a temp file and rename so a
// reader never observes partial content.
type Store struct {
	root string
}

// New creates a store rooted at the given objects directory.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the objects directory the store owns.
func (s *Store) Root() string {
	return s.root
}

// Path returns the storage location derived from a content hash.
func (s *Store) Path(hash string) string {
	return filepath.Join(s.root, hash[:2], hash)
}

// Has reports whether the object is present with a matching digest. A file
// at the derived path whose digest disagrees with the hash is stale; it is
// deleted so a subsequent fetch can replace it.
func (s *Store) Has(hash string) bool {
	if !validHash(hash) {
		return false
	}
	path := s.Path(hash)
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if !digestMatches(path, hash) {
		_ = os.Remove(path)
		return false
	}
	return true
}

// Put stores the content read from r under the given hash. The content is
// written to a temp file in the final directory, re-verified against the
// hash, and renamed into place; on mismatch nothing is left at the final
// path and ErrHashMismatch is returned. Storing an object that already
// satisfies Has is a no-op reported as success.
func (s *Store) Put(hash string, r io.Reader) error {
	if !validHash(hash) {
		return errors.Wrapf(errors.ErrInvalidHash, "%q", hash)
	}
	if s.Has(hash) {
		return nil
	}

	path := s.Path(hash)
	if err := fsutil.EnsureFileDir(path); err != nil {
		return errors.Wrapf(err, "could not create object directory for %s", hash)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".obj-*")
	if err != nil {
		return errors.Wrap(err, "could not create temp object")
	}
	tmpPath := tmp.Name()
	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "could not write object %s", hash)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "could not close temp object")
	}

	if !digestMatches(tmpPath, hash) {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(errors.ErrHashMismatch, "object %s", hash)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "could not finalize object %s", hash)
	}
	if err := os.Chmod(path, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(err, "could not set object permissions")
	}
	return nil
}

// Open returns the verified content of a stored object. Objects that are
// absent or fail verification yield ErrObjectNotFound.
func (s *Store) Open(hash string) (io.ReadCloser, error) {
	if !s.Has(hash) {
		return nil, errors.Wrapf(errors.ErrObjectNotFound, "%s", hash)
	}
	f, err := os.Open(s.Path(hash))
	if err != nil {
		return nil, errors.Wrapf(err, "could not open object %s", hash)
	}
	return f, nil
}

// digestMatches streams the file through SHA-1 in fixed-size chunks and
// compares the result with the expected hex digest.
func digestMatches(path, wantHex string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	h := sha1.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return false
	}
	return hex.EncodeToString(h.Sum(nil)) == wantHex
}

func validHash(hash string) bool {
	if len(hash) != sha1HexLen {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
