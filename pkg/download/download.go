// Package download defines the contract for the assembly download
// pipeline.
package download

import "context"

// Report is the end-of-run summary of one download: how the taxon
// resolved and what happened to each accession. Per-item failures are
// collected here rather than aborting the run.
type Report struct {
	// CatalogRows and SkippedRows describe the catalog ingestion.
	CatalogRows int
	SkippedRows int

	// Resolved is the number of accessions the taxon query matched.
	Resolved int
	// Present counts accessions already in the content store.
	Present int
	// Fetched counts accessions downloaded by this run.
	Fetched int
	// FailedTransfers counts accessions whose transfer failed.
	FailedTransfers int
	// FailedLinks counts accessions whose taxonomy link could not be
	// created.
	FailedLinks int
	// Links counts taxonomy links materialized or confirmed.
	Links int
	// Bytes is the total on-disk size of the linked genome files.
	Bytes int64
}

// Ok reports whether every resolved accession ended up fetched (or
// already present) and linked.
func (r Report) Ok() bool {
	return r.FailedTransfers == 0 && r.FailedLinks == 0
}

// Downloader runs the download pipeline for one configured release,
// dataset and taxon.
type Downloader interface {
	// Download runs the full pipeline: ensure the catalog, build the
	// taxonomy index, resolve the taxon query, fetch missing genomes
	// through an external transfer tool, and materialize taxonomy
	// links. Per-accession transfer and link failures are reported in
	// the Report; the returned error is reserved for fatal conditions
	// that abort the run.
	Download(ctx context.Context) (Report, error)

	// EnsureMetadata fetches the release catalog when absent and
	// returns its path, with no genome work.
	EnsureMetadata(ctx context.Context) (string, error)
}
