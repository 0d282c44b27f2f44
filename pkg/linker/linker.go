// Package linker defines the contract for materializing the browsable
// taxonomy tree of symlinks over the content store.
package linker

import "github.com/gtdbfetch/gtdbfetch/pkg/gtdb"

// Materializer creates and repairs taxonomy links under an output
// root. Implementations keep a per-root manifest of the links they
// made, so a lineage change across runs removes the superseded link
// instead of orphaning it.
type Materializer interface {
	// Root returns the output root the links live under.
	Root() string

	// LinkPath computes the link path a lineage maps to for a given
	// file name without touching the filesystem. Dry runs preview
	// with it.
	LinkPath(lin gtdb.Lineage, filename string) string

	// Materialize ensures the taxonomy link for one accession and
	// returns its path: a missing link is created, a correct one is
	// left untouched, and one resolving elsewhere is removed and
	// recreated. Intermediate directories are created as needed.
	Materialize(accession string, lin gtdb.Lineage, contentPath string) (string, error)

	// Close persists the link manifest for the next run.
	Close() error
}
