package gtdb

import (
	"path/filepath"
	"strings"
)

// RegistrySource loads the mirror registry from its on-disk location.
type RegistrySource interface {
	Load() (*Registry, error)
}

// Source identifies one remote catalog file: the mirror serving it,
// the release it belongs to and its file name with the release version
// already substituted.
type Source struct {
	// MirrorBase is the base URL of the releases tree on the mirror.
	MirrorBase string
	// Release is the GTDB release the catalog describes.
	Release Release
	// Filename is the catalog file name, e.g. "bac120_metadata_r220.tsv.gz".
	Filename string
}

// CatalogURL returns the full download URL of the catalog file.
func (s Source) CatalogURL() string {
	base := s.MirrorBase
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + s.Release.Path + "/" + s.Filename
}

// CatalogPath returns the local path of the catalog file under baseDir.
func (s Source) CatalogPath(baseDir string) string {
	return filepath.Join(s.Release.Dir(baseDir), s.Filename)
}
