//go:generate mockgen -destination=./mocks/manager.go -package=mocks . Manager

package download

import (
	"context"

	"github.com/echo-launcher/echolauncher/pkg/model"
)

// Manager executes a resolved download list with bounded parallelism.
// Per-item failures never raise out of a run; they are aggregated into
// the returned outcome.
type Manager interface {
	// FetchAll processes every item and returns the aggregate outcome.
	// The call is a synchronous barrier: it returns only once each item
	// has reported exactly one result.
	FetchAll(ctx context.Context, items []model.ResolvedDownload, opts Options) model.Outcome
}

// Options control a scheduler run.
type Options struct {
	// Concurrency is the fixed worker-pool size; if <=0 a default
	// derived from the CPU count is used.
	Concurrency int
	// OnProgress, when set, is invoked exactly once per completed item,
	// success or failure. Calls come concurrently from the worker
	// goroutines, so the callback must synchronize any state it shares.
	// It is a reporting side-channel only and must not be used for
	// control flow.
	OnProgress func(model.ItemResult)
}
