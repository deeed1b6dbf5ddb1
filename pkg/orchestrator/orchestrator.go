// Package orchestrator drives a full acquisition run: resolve the library
// set and asset index for a version, fetch both through the scheduler as
// concurrent phases, then extract the platform natives from the fetched
// classifier jars.
package orchestrator

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/echo-launcher/echolauncher/internal/logger"
	"github.com/echo-launcher/echolauncher/pkg/download"
	"github.com/echo-launcher/echolauncher/pkg/hook"
	"github.com/echo-launcher/echolauncher/pkg/library"
	"github.com/echo-launcher/echolauncher/pkg/manifest"
	"github.com/echo-launcher/echolauncher/pkg/model"
	"github.com/echo-launcher/echolauncher/pkg/platform"
	"github.com/echo-launcher/echolauncher/pkg/store"
)

// Orchestrator ties the resolvers, the scheduler and the extractor
// together for acquisition runs.
type Orchestrator struct {
	Assets    AssetResolver
	Libraries *library.Resolver
	DL        Downloader
	Extractor NativeExtractor
	Store     *store.Store
	// HookManager runs optional pre/post-fetch scripts; nil disables
	// hooks entirely.
	HookManager hook.Manager
	Hooks       Hooks
}

// Acquire performs one run for the given descriptor. Per-item failures
// are aggregated into the summary; the returned error reports phase-level
// failures only (asset index unavailable, hook rejection). Library and
// asset phases run concurrently and a failure in one never aborts the
// other, so the summary is meaningful even when err != nil.
func (o *Orchestrator) Acquire(ctx context.Context, desc *manifest.VersionDescriptor, opts Options) (*Summary, error) {
	if o.DL == nil {
		return nil, fmt.Errorf("download manager is not configured")
	}
	plat := opts.Platform
	if plat.OS == "" {
		plat = platform.Current()
	}

	if err := o.runHook(hook.PreFetch, desc.ID, opts.GameDir, model.Outcome{}, model.Outcome{}); err != nil {
		return nil, err
	}

	emit(o.Hooks, Event{Phase: "resolving", Msg: desc.ID})
	res := o.Libraries.Resolve(desc.Libraries, plat)
	for _, path := range res.Synthesized {
		logger.Warn("library path synthesized from name, not verified", logger.Fields{"path": path})
	}

	summary := &Summary{
		Classpath:   o.Libraries.Classpath(opts.ClientJar, desc.Libraries, plat),
		Synthesized: res.Synthesized,
	}

	dlOpts := download.Options{Concurrency: opts.Concurrency, OnProgress: opts.OnProgress}

	// The two fetch phases are independent: no shared context
	// cancellation, the group is only the completion barrier and the
	// carrier of the asset phase error.
	var g errgroup.Group
	g.Go(func() error {
		return o.acquireAssets(ctx, desc, dlOpts, summary)
	})
	g.Go(func() error {
		emit(o.Hooks, Event{Phase: "downloading", Msg: fmt.Sprintf("%d libraries", len(res.Downloads))})
		summary.Libraries = o.DL.FetchAll(ctx, res.Downloads, dlOpts)
		return nil
	})
	phaseErr := g.Wait()
	if phaseErr != nil {
		emit(o.Hooks, Event{Phase: "error", Msg: phaseErr.Error()})
	}

	o.extractNatives(ctx, res.Downloads, opts.NativesDir, plat, summary)

	if err := o.runHook(hook.PostFetch, desc.ID, opts.GameDir, summary.Assets, summary.Libraries); err != nil {
		logger.Warn("post-fetch hook failed", logger.Fields{"error": err.Error()})
	}

	emit(o.Hooks, Event{Phase: "done", Msg: fmt.Sprintf(
		"%d succeeded, %d failed",
		summary.Assets.Succeeded+summary.Libraries.Succeeded,
		summary.Assets.Failed+summary.Libraries.Failed,
	)})
	return summary, phaseErr
}

// acquireAssets resolves the asset index and fetches every object it
// names. An index-level failure aborts only this phase.
func (o *Orchestrator) acquireAssets(ctx context.Context, desc *manifest.VersionDescriptor, dlOpts download.Options, summary *Summary) error {
	indexID, err := o.Assets.EnsureIndex(ctx, desc)
	if err != nil {
		return err
	}
	summary.AssetIndexID = indexID

	idx, err := o.Assets.LoadIndex(indexID)
	if err != nil {
		return err
	}
	items := o.Assets.Items(idx, o.Store)
	emit(o.Hooks, Event{Phase: "downloading", Msg: fmt.Sprintf("%d assets", len(items))})
	summary.Assets = o.DL.FetchAll(ctx, items, dlOpts)
	return nil
}

// extractNatives unpacks every fetched classifier archive. Failures are
// soft and per-archive; the remaining archives are still processed.
func (o *Orchestrator) extractNatives(ctx context.Context, downloads []model.ResolvedDownload, nativesDir string, plat platform.Platform, summary *Summary) {
	if o.Extractor == nil || nativesDir == "" {
		return
	}
	for _, item := range downloads {
		if !item.Native {
			continue
		}
		if _, err := os.Stat(item.Dest); err != nil {
			logger.Warn("native archive missing, skipping extraction", logger.Fields{"path": item.Dest})
			summary.NativesFailed++
			continue
		}
		emit(o.Hooks, Event{Phase: "extracting", Msg: item.Dest})
		if err := o.Extractor.Extract(ctx, item.Dest, nativesDir, plat); err != nil {
			logger.Error("native extraction failed", logger.Fields{"archive": item.Dest, "error": err.Error()})
			summary.NativesFailed++
			continue
		}
		summary.NativesExtracted++
	}
}

func (o *Orchestrator) runHook(hookType hook.Type, versionID, gameDir string, assets, libraries model.Outcome) error {
	if o.HookManager == nil {
		return nil
	}
	return o.HookManager.Execute(hookType, hook.Context{
		VersionID: versionID,
		GameDir:   gameDir,
		Succeeded: assets.Succeeded + libraries.Succeeded,
		Failed:    assets.Failed + libraries.Failed,
	})
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}
