// Package download implements the concurrent fetch scheduler: a fixed-size
// worker pool that acquires resolved downloads, verifies asset content
// through the object store, and aggregates per-item outcomes without ever
// letting one failure abort the run.
package download

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/echo-launcher/echolauncher/internal/logger"
	pkgerrors "github.com/echo-launcher/echolauncher/pkg/errors"
	"github.com/echo-launcher/echolauncher/pkg/fsutil"
	"github.com/echo-launcher/echolauncher/pkg/model"
	"github.com/echo-launcher/echolauncher/pkg/store"
)

// maxDefaultWorkers caps the derived default pool size; downloads are
// I/O-bound and more workers than this just thrash the remote host.
const maxDefaultWorkers = 32

// ManagerImpl is the HTTP-based scheduler. Asset items are written through
// the content-addressable store; library items are written directly to
// their destination paths via temp-then-rename.
type ManagerImpl struct {
	store     *store.Store
	userAgent string
	timeout   time.Duration
}

// NewManager creates a scheduler storing asset content in st.
func NewManager(st *store.Store, timeout time.Duration, userAgent string) *ManagerImpl {
	if userAgent == "" {
		userAgent = "Echo-Launcher/1.0"
	}
	return &ManagerImpl{
		store:     st,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// DefaultConcurrency balances throughput against resource usage for
// I/O-bound fetches.
func DefaultConcurrency() int {
	return min(maxDefaultWorkers, runtime.NumCPU()*4)
}

// FetchAll runs the worker pool over the item list. Exactly
// opts.Concurrency workers pull items from a shared channel; each worker
// owns one HTTP session for its whole lifetime. When ctx is cancelled the
// pool stops dispatching and the remaining queued items are reported as
// failed; in-flight items complete and are counted normally.
func (m *ManagerImpl) FetchAll(ctx context.Context, items []model.ResolvedDownload, opts Options) model.Outcome {
	if len(items) == 0 {
		return model.Outcome{}
	}
	workers := opts.Concurrency
	if workers <= 0 {
		workers = DefaultConcurrency()
	}
	if workers > len(items) {
		workers = len(items)
	}

	var (
		mu      sync.Mutex
		outcome model.Outcome
		wg      sync.WaitGroup
	)
	record := func(result model.ItemResult) {
		mu.Lock()
		if result.Err != nil {
			outcome.Failed++
		} else {
			outcome.Succeeded++
		}
		mu.Unlock()
		if opts.OnProgress != nil {
			opts.OnProgress(result)
		}
	}

	tasks := make(chan model.ResolvedDownload)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// One session per worker, never shared across workers:
			// a private transport gives the worker its own
			// keep-alive connection pool for the items it processes.
			session := m.newSession()
			for item := range tasks {
				record(m.fetchOne(ctx, session, item))
			}
		}()
	}

	dispatched := 0
dispatch:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break dispatch
		case tasks <- item:
			dispatched++
		}
	}
	close(tasks)
	wg.Wait()

	// Items never handed to a worker still owe exactly one outcome.
	for _, item := range items[dispatched:] {
		record(model.ItemResult{Item: item, Err: ctx.Err()})
	}
	return outcome
}

func (m *ManagerImpl) newSession() *http.Client {
	return &http.Client{
		Timeout: m.timeout,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// fetchOne acquires a single item: local-satisfaction check first, then at
// most one GET, then verify-and-place.
func (m *ManagerImpl) fetchOne(ctx context.Context, session *http.Client, item model.ResolvedDownload) model.ItemResult {
	if m.satisfiedLocally(item) {
		return model.ItemResult{Item: item, Skipped: true}
	}

	resp, err := m.doRequest(ctx, session, item.URL)
	if err != nil {
		return model.ItemResult{Item: item, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if item.Kind == model.KindAsset {
		if err := m.store.Put(item.SHA1, resp.Body); err != nil {
			return model.ItemResult{Item: item, Err: err}
		}
		return model.ItemResult{Item: item}
	}
	if err := m.writeLibrary(item, resp.Body); err != nil {
		return model.ItemResult{Item: item, Err: err}
	}
	return model.ItemResult{Item: item}
}

// satisfiedLocally is the dedup path: asset items pass through store
// verification, library items are satisfied by bare existence. Checked
// before any network work is issued.
func (m *ManagerImpl) satisfiedLocally(item model.ResolvedDownload) bool {
	if item.Kind == model.KindAsset {
		return m.store.Has(item.SHA1)
	}
	st, err := os.Stat(item.Dest)
	return err == nil && !st.IsDir()
}

func (m *ManagerImpl) doRequest(ctx context.Context, session *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)

	resp, err := session.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrDownloadFailed, "%s: %v", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, pkgerrors.Wrapf(pkgerrors.ErrDownloadFailed, "%s: unexpected status code %d", url, resp.StatusCode)
	}
	return resp, nil
}

// writeLibrary streams the body to a temp file next to the destination and
// renames it into place. Library entries declare no content hash; a
// declared size that disagrees with the written length is logged, not
// fatal.
func (m *ManagerImpl) writeLibrary(item model.ResolvedDownload, body io.Reader) error {
	if err := fsutil.EnsureFileDir(item.Dest); err != nil {
		return pkgerrors.Wrapf(err, "could not create directory for %s", item.Dest)
	}
	tmp, err := os.CreateTemp(filepath.Dir(item.Dest), "dl-*.tmp")
	if err != nil {
		return pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	written, err := io.Copy(tmp, body)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrapf(err, "could not write %s", item.Dest)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not close temp file")
	}
	if item.Size > 0 && written != item.Size {
		logger.Warn("library size mismatch", logger.Fields{
			"dest":     item.Dest,
			"declared": item.Size,
			"written":  written,
		})
	}
	if err := fsutil.Move(tmpPath, item.Dest); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrapf(err, "could not finalize %s", item.Dest)
	}
	if err := os.Chmod(item.Dest, fsutil.FileModeDefault); err != nil {
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	return nil
}
