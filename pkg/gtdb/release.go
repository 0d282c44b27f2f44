// Package gtdb holds the domain model shared across the project:
// taxonomic ranks and lineages, assembly accessions, release metadata
// and the mirror registry. Everything here is pure data and parsing,
// free of I/O.
package gtdb

import (
	"path/filepath"
	"strings"
)

// GTDB dataset names as used in catalog file names. The bacterial
// catalog is built on 120 marker genes, the archaeal one on 53.
const (
	DatasetBacteria = "bac120"
	DatasetArchaea  = "ar53"
)

// Release identifies one GTDB release together with the relative path
// a mirror serves it under, e.g. version "r220" at "release220/220.0".
type Release struct {
	Version string
	Path    string
}

// CatalogFilename returns the file name of the catalog for a dataset
// within this release, e.g. "bac120_metadata_r220.tsv.gz". The pattern
// argument carries one "%s" placeholder filled with the release
// version.
func (r Release) CatalogFilename(pattern string) string {
	return strings.ReplaceAll(pattern, "%s", r.Version)
}

// Dir returns the local directory for this release under the given
// base directory.
func (r Release) Dir(baseDir string) string {
	return filepath.Join(baseDir, r.Version)
}

// GenomesDir returns the content store directory for this release:
// "<base>/<version>/genomes/raw".
func (r Release) GenomesDir(baseDir string) string {
	return filepath.Join(baseDir, r.Version, "genomes", "raw")
}

// TaxonomyDir returns the default taxonomy tree directory for this
// release: "<base>/<version>/genomes/taxonomy".
func (r Release) TaxonomyDir(baseDir string) string {
	return filepath.Join(baseDir, r.Version, "genomes", "taxonomy")
}
