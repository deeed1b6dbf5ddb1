// Package model holds the value types shared between the resolvers, the
// fetch scheduler and the orchestrator.
package model

// Kind discriminates how a resolved download is verified and stored.
type Kind string

const (
	// KindAsset is written through the content-addressable object store
	// and verified against its SHA-1 hash.
	KindAsset Kind = "asset"
	// KindLibrary is written directly to its destination path; the
	// manifest declares no content hash for it.
	KindLibrary Kind = "library"
)

// ResolvedDownload is one fully concrete unit of fetch work: everything the
// scheduler needs to acquire, verify and place a single remote file. It is
// created per run and discarded after completion.
type ResolvedDownload struct {
	Kind Kind
	URL  string
	// Dest is the absolute destination path. For assets this is the
	// derived object-store location; the store owns writes to it.
	Dest string
	// SHA1 is the expected content hash, hex encoded. Assets only.
	SHA1 string
	// Size is the declared byte size, zero when the manifest omits it.
	// Library sizes are checked opportunistically, never fatally.
	Size int64
	// Native marks a platform classifier archive. Natives are fetched
	// like any library but never appear on the classpath.
	Native bool
}

// ItemResult reports the outcome of one scheduled item. It is delivered to
// the progress callback exactly once per item.
type ItemResult struct {
	Item ResolvedDownload
	// Err is nil on success.
	Err error
	// Skipped is true when the item was satisfied locally and no
	// network request was made.
	Skipped bool
}

// Outcome aggregates a scheduler run. Succeeded+Failed always equals the
// number of input items once the run completes.
type Outcome struct {
	Succeeded int
	Failed    int
}

// Total returns the number of items that reported an outcome.
func (o Outcome) Total() int {
	return o.Succeeded + o.Failed
}
