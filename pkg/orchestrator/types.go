//go:generate mockgen -destination=./mocks/orchestrator.go -package=mocks . AssetResolver,Downloader,NativeExtractor

package orchestrator

import (
	"context"

	"github.com/echo-launcher/echolauncher/pkg/assets"
	"github.com/echo-launcher/echolauncher/pkg/download"
	"github.com/echo-launcher/echolauncher/pkg/manifest"
	"github.com/echo-launcher/echolauncher/pkg/model"
	"github.com/echo-launcher/echolauncher/pkg/platform"
	"github.com/echo-launcher/echolauncher/pkg/store"
)

// AssetResolver is the subset of the assets manager used by the
// orchestrator.
type AssetResolver interface {
	EnsureIndex(ctx context.Context, desc *manifest.VersionDescriptor) (string, error)
	LoadIndex(id string) (*assets.Index, error)
	Items(idx *assets.Index, st *store.Store) []model.ResolvedDownload
}

// Downloader executes resolved downloads.
type Downloader interface {
	FetchAll(ctx context.Context, items []model.ResolvedDownload, opts download.Options) model.Outcome
}

// NativeExtractor extracts platform natives from classifier archives.
type NativeExtractor interface {
	Extract(ctx context.Context, archivePath, outputDir string, plat platform.Platform) error
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // resolving|downloading|extracting|done|error
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Options control an acquisition run.
type Options struct {
	// Platform the run resolves against; zero value means the current
	// host.
	Platform platform.Platform
	// GameDir is the data root the run operates under, exposed to hook
	// scripts.
	GameDir string
	// Concurrency is handed to the fetch scheduler.
	Concurrency int
	// NativesDir is the flat extraction target for native libraries.
	NativesDir string
	// ClientJar, when set, leads the returned classpath.
	ClientJar string
	// OnProgress is forwarded to the scheduler for per-item reporting.
	OnProgress func(model.ItemResult)
}

// Summary aggregates one acquisition run. Outcome sums always match the
// scheduled item counts; phase-level failures surface as the Acquire
// error instead.
type Summary struct {
	AssetIndexID string
	Assets       model.Outcome
	Libraries    model.Outcome
	Classpath    []string
	// Synthesized lists classpath entries derived from library names
	// without download metadata: present on the classpath, never
	// verified.
	Synthesized []string
	// NativesExtracted counts classifier archives successfully
	// extracted; NativesFailed counts archives that reported an error.
	NativesExtracted int
	NativesFailed    int
}
