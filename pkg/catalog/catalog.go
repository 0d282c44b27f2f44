// Package catalog defines the contract for obtaining and reading the
// assembly catalogs GTDB publishes per release.
package catalog

import (
	"context"

	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
)

// Row is one parsed catalog record: an assembly accession, its typed
// lineage, and the NCBI assembly name used to derive the genome file
// name and download URL.
type Row struct {
	Accession    string
	Lineage      gtdb.Lineage
	AssemblyName string
}

// ReadStats summarizes one catalog read.
type ReadStats struct {
	// Rows is the number of well-formed rows delivered to the caller.
	Rows int
	// Skipped is the number of malformed rows dropped during the read.
	Skipped int
}

// Store obtains release catalogs and streams their rows.
//
// Catalogs are immutable once published, so a present file is trusted
// as-is; freshness checking is deliberately absent.
type Store interface {
	// EnsureCatalog makes sure the catalog file for the configured
	// release and dataset exists locally and returns its path. An
	// absent or empty file is fetched from the configured mirror via a
	// temporary path and an atomic rename, so a failed transfer never
	// leaves a partial catalog behind.
	EnsureCatalog(ctx context.Context) (string, error)

	// Read streams the rows of the catalog at path to fn in file
	// order. Malformed rows (missing accession, unparseable lineage)
	// are skipped and counted rather than failing the read. A non-nil
	// error from fn aborts the read and is returned as-is.
	Read(path string, fn func(Row) error) (ReadStats, error)
}
