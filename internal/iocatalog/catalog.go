// Package iocatalog fetches and parses the per-release assembly
// catalogs GTDB mirrors publish as gzipped TSV files.
package iocatalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gtdbfetch/gtdbfetch/pkg/catalog"
	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"github.com/gtdbfetch/gtdbfetch/pkg/transfer"
)

type iocatalog struct {
	cfg   *config.Config
	src   gtdb.Source
	probe transfer.Probe
}

func New(
	cfg *config.Config,
	src gtdb.Source,
	probe transfer.Probe,
) catalog.Store {
	res := iocatalog{cfg: cfg, src: src, probe: probe}
	return &res
}

// EnsureCatalog returns the local path of the catalog file, fetching
// it from the configured mirror first if it is absent or empty.
// The download goes to a temporary name and is renamed into place, so
// an interrupted transfer never leaves a partial catalog at the final
// path. A present catalog is trusted as-is: releases are immutable.
func (c *iocatalog) EnsureCatalog(ctx context.Context) (string, error) {
	path := c.src.CatalogPath(c.cfg.BaseDir)

	if st, err := os.Stat(path); err == nil && st.Size() > 0 {
		slog.Debug("Catalog already present", "path", path)
		return path, nil
	}

	tool, err := c.probe()
	if err != nil {
		return "", err
	}

	dir := c.src.Release.Dir(c.cfg.BaseDir)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return "", CreateDirError(dir, err)
	}

	tmpName := c.src.Filename + "." + uuid.New().String() + ".tmp"
	tmpPath := filepath.Join(dir, tmpName)
	defer os.Remove(tmpPath)

	url := c.src.CatalogURL()
	slog.Info("Downloading catalog", "url", url, "tool", tool.Name())

	res, err := tool.FetchAll(ctx, []transfer.Item{{
		Accession: c.src.Filename,
		URL:       url,
		Dir:       dir,
		Filename:  tmpName,
	}})
	if err != nil {
		return "", CatalogUnavailableError(url, err)
	}
	if len(res.Failed) > 0 {
		return "", CatalogUnavailableError(
			url,
			fmt.Errorf("%s reported a failed transfer", tool.Name()),
		)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return "", CatalogUnavailableError(url, err)
	}

	slog.Info("Catalog downloaded", "path", path)
	return path, nil
}
