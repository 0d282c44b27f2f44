// Package transfer defines the contract for the external tools that
// move catalog and genome files over the network. The program manages
// no connections of its own; parallelism lives inside the invoked
// tool and is opaque here.
package transfer

import "context"

// Item is one file to fetch: the source URL plus the directory and
// file name to place it under.
type Item struct {
	Accession string
	URL       string
	Dir       string
	Filename  string
}

// Result partitions a finished batch by accession.
type Result struct {
	Succeeded []string
	Failed    []string
}

// Tool is one discovered external transfer executable.
type Tool interface {
	// Name returns the executable name, e.g. "aria2c".
	Name() string

	// Batch reports whether the tool accepts a whole URL list per
	// invocation. A batch tool is invoked once per batch to amortize
	// connection setup; a non-batch tool once per item.
	Batch() bool

	// FetchAll downloads every item and reports per-accession
	// outcomes. For a batch tool a non-zero exit marks all items of
	// the batch failed, because per-file outcomes cannot be
	// attributed. Failed items are not retried here; a re-run is the
	// retry.
	FetchAll(ctx context.Context, items []Item) (Result, error)
}

// Probe selects an available transfer tool, preferring batch-capable
// ones, and fails when none is installed. Selection depends only on
// which executables are discoverable; it runs at most once per run
// and every component shares the selected tool.
type Probe func() (Tool, error)
