package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/echo-launcher/echolauncher/pkg/errors"
	"github.com/echo-launcher/echolauncher/pkg/manifest"
	"github.com/echo-launcher/echolauncher/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIndex = `{"objects": {
  "minecraft/sounds/ambient/cave/cave1.ogg": {"hash": "da39a3ee5e6b4b0d3255bfef95601890afd80709", "size": 11},
  "minecraft/lang/en_US.lang": {"hash": "356a192b7913b04c54574d18c28d46e6395428ab", "size": 22}
}}`

func descriptorFor(url string) *manifest.VersionDescriptor {
	return &manifest.VersionDescriptor{
		ID:         "1.8.9",
		AssetIndex: &manifest.AssetIndexRef{ID: "1.8", URL: url},
	}
}

func TestEnsureIndexFetchesOnceAndCaches(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(sampleIndex))
	}))
	defer server.Close()

	dir := t.TempDir()
	m := NewManager(dir, time.Second, "")

	id, err := m.EnsureIndex(context.Background(), descriptorFor(server.URL))
	require.NoError(t, err)
	assert.Equal(t, "1.8", id)
	assert.FileExists(t, filepath.Join(dir, "1.8.json"))

	// A cached index is immutable per id: no second fetch.
	id, err = m.EnsureIndex(context.Background(), descriptorFor(server.URL))
	require.NoError(t, err)
	assert.Equal(t, "1.8", id)
	assert.Equal(t, int32(1), hits.Load())
}

func TestEnsureIndexMissingField(t *testing.T) {
	m := NewManager(t.TempDir(), time.Second, "")

	_, err := m.EnsureIndex(context.Background(), &manifest.VersionDescriptor{ID: "old"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingField)

	_, err = m.EnsureIndex(context.Background(), descriptorFor(""))
	assert.ErrorIs(t, err, errors.ErrMissingField)
}

func TestEnsureIndexTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dir := t.TempDir()
	m := NewManager(dir, time.Second, "")

	_, err := m.EnsureIndex(context.Background(), descriptorFor(server.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)

	// Nothing is written on failure.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestEnsureIndexMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"objects": [`))
	}))
	defer server.Close()

	dir := t.TempDir()
	m := NewManager(dir, time.Second, "")

	_, err := m.EnsureIndex(context.Background(), descriptorFor(server.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrParse)
	assert.NoFileExists(t, filepath.Join(dir, "1.8.json"))
}

func TestLoadIndexAndItems(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.8.json"), []byte(sampleIndex), 0o644))

	m := NewManager(dir, time.Second, "")
	m.SetResourcesURL("https://assets.example.com")
	idx, err := m.LoadIndex("1.8")
	require.NoError(t, err)
	require.Len(t, idx.Objects, 2)

	st := store.New(filepath.Join(dir, "objects"))
	items := m.Items(idx, st)
	require.Len(t, items, 2)

	byHash := map[string]bool{}
	for _, item := range items {
		byHash[item.SHA1] = true
		assert.Equal(t, "https://assets.example.com/"+item.SHA1[:2]+"/"+item.SHA1, item.URL)
		assert.Equal(t, st.Path(item.SHA1), item.Dest)
		assert.False(t, item.Native)
	}
	assert.True(t, byHash["da39a3ee5e6b4b0d3255bfef95601890afd80709"])
	assert.True(t, byHash["356a192b7913b04c54574d18c28d46e6395428ab"])
}

func TestParseIndexWithoutObjects(t *testing.T) {
	_, err := ParseIndex([]byte(`{"virtual": true}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingField)
}

func TestParseIndexMalformedObjectHash(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty hash", doc: `{"objects": {"broken/path": {"hash": "", "size": 3}}}`},
		{name: "short hash", doc: `{"objects": {"broken/path": {"hash": "da39a3", "size": 3}}}`},
		{name: "non-hex hash", doc: `{"objects": {"broken/path": {"hash": "zz39a3ee5e6b4b0d3255bfef95601890afd80709", "size": 3}}}`},
		{name: "missing hash", doc: `{"objects": {"broken/path": {"size": 3}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIndex([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrParse)
		})
	}
}

func TestEnsureIndexRejectsMalformedObjectHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"objects": {"broken/path": {"hash": "", "size": 3}}}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	m := NewManager(dir, time.Second, "")

	_, err := m.EnsureIndex(context.Background(), descriptorFor(server.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrParse)
	assert.NoFileExists(t, filepath.Join(dir, "1.8.json"))
}
