// Package assets resolves a version's asset index: fetch the document the
// descriptor points at (once; index ids are content-versioned upstream,
// so a cached copy is never re-fetched), parse it, and expand its objects
// into resolved downloads against the fixed resources host.
package assets

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"os"

	"github.com/echo-launcher/echolauncher/pkg/errors"
)

const hashHexLen = 40

// Index maps logical asset paths to their content-addressed objects.
type Index struct {
	Objects map[string]Object `json:"objects"`
}

// Object is one asset: a 40-hex-char SHA-1 hash and its byte size.
type Object struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// ParseIndex parses an asset index document.
func ParseIndex(data []byte) (*Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, errors.Wrapf(errors.ErrParse, "asset index: %v", err)
	}
	if idx.Objects == nil {
		return nil, errors.Wrap(errors.ErrMissingField, "asset index has no objects")
	}
	// Downstream consumers derive paths and URLs from hash[:2]; a document
	// with a malformed hash is rejected here, not at expansion time.
	for path, obj := range idx.Objects {
		if !validObjectHash(obj.Hash) {
			return nil, errors.Wrapf(errors.ErrParse, "asset index: object %q has malformed hash %q", path, obj.Hash)
		}
	}
	return &idx, nil
}

func validObjectHash(hash string) bool {
	if len(hash) != hashHexLen {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}

// ParseIndexFromFile parses a cached asset index file.
func ParseIndexFromFile(filePath string) (*Index, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open asset index %s", filePath)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read asset index %s", filePath)
	}
	return ParseIndex(data)
}
