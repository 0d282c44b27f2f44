// Package iocontent implements the deduplicated genome content store:
// a flat, release-scoped directory holding the actual genome files.
package iocontent

import (
	"os"
	"path/filepath"

	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/content"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
)

type iocontent struct {
	dir string
}

func New(cfg *config.Config, rel gtdb.Release) (content.Store, error) {
	dir := rel.GenomesDir(cfg.BaseDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, CreateDirError(dir, err)
	}
	res := iocontent{dir: dir}
	return &res, nil
}

func (c *iocontent) Dir() string {
	return c.dir
}

// Locate derives the expected genome file name for an accession and
// stats it. A zero-byte file counts as absent: transfer tools can
// leave an empty file behind when interrupted, and such a leftover
// must be fetched again on the next run.
func (c *iocontent) Locate(
	accession, assemblyName string,
) (content.Entry, error) {
	var entry content.Entry

	name, err := gtdb.GenomeFilename(accession, assemblyName)
	if err != nil {
		return entry, BadAccessionError(accession, err)
	}

	entry.Accession = accession
	entry.Filename = name
	entry.Path = filepath.Join(c.dir, name)

	st, err := os.Stat(entry.Path)
	switch {
	case err == nil:
		entry.Size = st.Size()
		entry.Present = entry.Size > 0
	case os.IsNotExist(err):
		entry.Present = false
	default:
		return entry, ContentStoreError(entry.Path, err)
	}
	return entry, nil
}
