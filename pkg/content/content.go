// Package content defines the contract for the deduplicated genome
// content store.
package content

// Entry describes one accession's expected place in the content store.
type Entry struct {
	Accession string
	Filename  string
	Path      string
	Present   bool
	// Size is the on-disk size in bytes, zero when absent.
	Size int64
}

// Store locates genome files inside the flat, release-scoped content
// store. The store exclusively owns genome file bytes; every other
// directory holds links or metadata referencing it, never copies.
type Store interface {
	// Dir returns the content store directory for the configured
	// release.
	Dir() string

	// Locate derives the expected file for an accession and reports
	// whether it is already present. Present means the file exists
	// with size greater than zero; a truncated leftover from an
	// interrupted transfer counts as absent, so it is fetched again.
	// Presence is checked on every call, never cached.
	Locate(accession, assemblyName string) (Entry, error)
}
