package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/echo-launcher/echolauncher/pkg/errors"
	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	"github.com/echo-launcher/echolauncher/pkg/manifest"
	"github.com/echo-launcher/echolauncher/pkg/model"
	"github.com/echo-launcher/echolauncher/pkg/store"
)

// DefaultResourcesURL is the fixed upstream convention for asset content:
// <host>/<hash[:2]>/<hash>.
const DefaultResourcesURL = "https://resources.download.minecraft.net"

// DefaultUserAgent identifies the launcher on every request it issues.
const DefaultUserAgent = "Echo-Launcher/1.0"

// Manager owns the asset index cache directory and performs the single
// network fetch an uncached index requires.
type Manager struct {
	indexesDir   string
	resourcesURL string
	userAgent    string
	client       *http.Client
}

// NewManager creates an asset index manager caching into indexesDir.
func NewManager(indexesDir string, timeout time.Duration, userAgent string) *Manager {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Manager{
		indexesDir:   indexesDir,
		resourcesURL: DefaultResourcesURL,
		userAgent:    userAgent,
		client:       &http.Client{Timeout: timeout},
	}
}

// SetResourcesURL overrides the asset content host (used by tests).
func (m *Manager) SetResourcesURL(url string) {
	m.resourcesURL = url
}

// IndexPath returns the cache location of an index id.
func (m *Manager) IndexPath(id string) string {
	return filepath.Join(m.indexesDir, id+".json")
}

// EnsureIndex makes the asset index named by the descriptor available
// locally and returns its id. A cached index is trusted as-is; otherwise
// the document is fetched, parsed, and persisted atomically: exactly one
// file is written on success and none on failure.
func (m *Manager) EnsureIndex(ctx context.Context, desc *manifest.VersionDescriptor) (string, error) {
	if desc == nil || desc.AssetIndex == nil {
		return "", errors.Wrap(errors.ErrMissingField, "version descriptor has no asset index")
	}
	ref := desc.AssetIndex
	if ref.ID == "" || ref.URL == "" {
		return "", errors.Wrap(errors.ErrMissingField, "asset index reference is incomplete")
	}

	indexPath := m.IndexPath(ref.ID)
	if _, err := os.Stat(indexPath); err == nil {
		return ref.ID, nil
	}

	body, err := m.fetch(ctx, ref.URL)
	if err != nil {
		return "", err
	}
	if _, err := ParseIndex(body); err != nil {
		return "", err
	}
	if err := fsutil.WriteFileAtomic(indexPath, body, fsutil.FileModeDefault); err != nil {
		return "", errors.Wrapf(err, "could not persist asset index %s", ref.ID)
	}
	return ref.ID, nil
}

// LoadIndex parses a previously ensured index from the cache.
func (m *Manager) LoadIndex(id string) (*Index, error) {
	return ParseIndexFromFile(m.IndexPath(id))
}

// Items expands an index into the resolved downloads the scheduler
// consumes. Destinations are the store's derived object paths; output
// order is unspecified, mirroring the index map.
func (m *Manager) Items(idx *Index, st *store.Store) []model.ResolvedDownload {
	items := make([]model.ResolvedDownload, 0, len(idx.Objects))
	for _, obj := range idx.Objects {
		items = append(items, model.ResolvedDownload{
			Kind: model.KindAsset,
			URL:  fmt.Sprintf("%s/%s/%s", m.resourcesURL, obj.Hash[:2], obj.Hash),
			Dest: st.Path(obj.Hash),
			SHA1: obj.Hash,
			Size: obj.Size,
		})
	}
	return items
}

func (m *Manager) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDownloadFailed, "asset index: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errors.ErrDownloadFailed, "asset index: unexpected status code %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read asset index body")
	}
	return body, nil
}
