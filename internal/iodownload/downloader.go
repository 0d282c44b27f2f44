// Package iodownload implements the Downloader interface: the
// pipeline that turns a taxon query into genome files on disk and a
// browsable taxonomy tree of links over them.
// This is an impure I/O package tying the catalog store, the content
// store, the transfer tool and the link materializer together.
package iodownload

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gtdbfetch/gtdbfetch/pkg/catalog"
	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/content"
	"github.com/gtdbfetch/gtdbfetch/pkg/download"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"github.com/gtdbfetch/gtdbfetch/pkg/linker"
	"github.com/gtdbfetch/gtdbfetch/pkg/taxonomy"
	"github.com/gtdbfetch/gtdbfetch/pkg/transfer"
)

// iodownload implements the Downloader interface.
type iodownload struct {
	cfg   *config.Config
	src   gtdb.Source
	cat   catalog.Store
	store content.Store
	mat   linker.Materializer
	probe transfer.Probe
}

// New creates a new Downloader.
func New(
	cfg *config.Config,
	src gtdb.Source,
	cat catalog.Store,
	store content.Store,
	mat linker.Materializer,
	probe transfer.Probe,
) download.Downloader {
	return &iodownload{
		cfg:   cfg,
		src:   src,
		cat:   cat,
		store: store,
		mat:   mat,
		probe: probe,
	}
}

// planned pairs one resolved accession with its content store entry,
// lineage and download URL. Accessions that cannot be planned (no
// assembly name, malformed accession) never make it into the slice;
// they are counted as failed transfers up front.
type planned struct {
	entry content.Entry
	lin   gtdb.Lineage
	asm   string
	url   string
}

// Download runs the full pipeline for the configured taxon.
// Orchestrates all phases: catalog, taxonomy index, taxon resolution,
// genome transfer, and taxonomy links. Per-accession failures are
// counted and reported; only conditions that invalidate the whole run
// return an error.
func (d *iodownload) Download(
	ctx context.Context,
) (download.Report, error) {
	startTime := time.Now()
	var rep download.Report
	slog.Info("Starting download",
		"release", d.src.Release.Version,
		"taxon", d.cfg.Download.Taxon,
	)

	gn.Info("(1/5) Getting catalog <em>%s</em>", d.src.Filename)
	catalogPath, err := d.cat.EnsureCatalog(ctx)
	if err != nil {
		return rep, err
	}

	gn.Info("(2/5) Indexing taxonomy...")
	ix, err := d.buildIndex(catalogPath, &rep)
	if err != nil {
		return rep, err
	}

	gn.Info("(3/5) Resolving taxon <em>%s</em>", d.cfg.Download.Taxon)
	accs, err := ix.Resolve(d.cfg.Download.Taxon)
	if err != nil {
		return rep, TaxonNotFoundError(d.cfg.Download.Taxon, err)
	}
	rep.Resolved = len(accs)
	slog.Info("Taxon resolved",
		"taxon", d.cfg.Download.Taxon,
		"accessions", len(accs),
	)
	gn.Message("<em>Matched %s assemblies</em>",
		humanize.Comma(int64(len(accs))))

	plan := d.plan(ix, accs, &rep)

	if d.cfg.Download.DryRun {
		d.preview(plan, &rep)
		return rep, nil
	}

	// Check context cancellation
	select {
	case <-ctx.Done():
		return rep, CancelledError(ctx.Err())
	default:
	}

	gn.Info("(4/5) Fetching missing genomes...")
	if err = d.fetch(ctx, plan, &rep); err != nil {
		return rep, err
	}

	gn.Info("(5/5) Linking taxonomy tree...")
	d.link(plan, &rep)
	if err = d.mat.Close(); err != nil {
		return rep, err
	}

	d.summary(&rep, time.Since(startTime))
	return rep, nil
}

// EnsureMetadata fetches the release catalog when it is absent and
// reports where it lives. No genome work happens here.
func (d *iodownload) EnsureMetadata(
	ctx context.Context,
) (string, error) {
	gn.Info("Getting catalog <em>%s</em>", d.src.Filename)
	path, err := d.cat.EnsureCatalog(ctx)
	if err != nil {
		return "", err
	}

	if st, err := os.Stat(path); err == nil {
		gn.Info("Catalog is at <em>%s</em> (%s)",
			path, humanize.Bytes(uint64(st.Size())))
	}
	return path, nil
}

// buildIndex streams the catalog into a fresh taxonomy index.
func (d *iodownload) buildIndex(
	path string,
	rep *download.Report,
) (*taxonomy.Index, error) {
	ix := taxonomy.New()
	stats, err := d.cat.Read(path, func(row catalog.Row) error {
		ix.Add(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	rep.CatalogRows = stats.Rows
	rep.SkippedRows = stats.Skipped
	slog.Info("Catalog indexed",
		"rows", stats.Rows,
		"skipped", stats.Skipped,
	)
	gn.Message("<em>Indexed %s catalog rows</em>",
		humanize.Comma(int64(stats.Rows)))
	return ix, nil
}

// plan checks every resolved accession against the content store and
// derives its download URL. Accessions the store cannot place are
// dropped here and counted as failed, so later phases only see
// workable items.
func (d *iodownload) plan(
	ix *taxonomy.Index,
	accs []string,
	rep *download.Report,
) []planned {
	bar := newProgressBar(len(accs), "Checking content store: ")
	defer bar.Finish()

	res := make([]planned, 0, len(accs))
	for _, acc := range accs {
		bar.Increment()

		lin, _ := ix.Lineage(acc)
		asm, _ := ix.AssemblyName(acc)
		entry, err := d.store.Locate(acc, asm)
		if err != nil {
			slog.Warn("Cannot place accession in content store",
				"accession", acc, "error", err)
			rep.FailedTransfers++
			continue
		}
		url, err := gtdb.GenomeURL(acc, asm)
		if err != nil {
			slog.Warn("Cannot derive download URL",
				"accession", acc, "error", err)
			rep.FailedTransfers++
			continue
		}
		if entry.Present {
			rep.Present++
		}
		res = append(res, planned{entry: entry, lin: lin, asm: asm, url: url})
	}
	return res
}

// fetch hands the absent genomes to the transfer tool in one batch
// and re-checks the content store afterwards, so only files that
// actually arrived count as fetched. A tool that cannot start fails
// the batch, not the run: present genomes still get linked.
func (d *iodownload) fetch(
	ctx context.Context,
	plan []planned,
	rep *download.Report,
) error {
	missing := make(map[string]*planned)
	var items []transfer.Item
	for i := range plan {
		p := &plan[i]
		if p.entry.Present {
			continue
		}
		missing[p.entry.Accession] = p
		items = append(items, transfer.Item{
			Accession: p.entry.Accession,
			URL:       p.url,
			Dir:       d.store.Dir(),
			Filename:  p.entry.Filename,
		})
	}

	if len(items) == 0 {
		gn.Message("<em>All matched genomes are already present</em>")
		return nil
	}

	tool, err := d.probe()
	if err != nil {
		return err
	}
	slog.Info("Fetching genomes",
		"count", len(items),
		"tool", tool.Name(),
		"dir", d.store.Dir(),
	)
	gn.Message("<em>Fetching %s genomes with %s</em>",
		humanize.Comma(int64(len(items))), tool.Name())

	result, err := tool.FetchAll(ctx, items)
	if err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return CancelledError(err)
		}
		// The tool itself could not run; nothing was transferred.
		slog.Error("Transfer tool failed to run",
			"tool", tool.Name(), "error", err)
		rep.FailedTransfers += len(items)
		return nil
	}

	for _, acc := range result.Succeeded {
		p, ok := missing[acc]
		if !ok {
			continue
		}
		entry, err := d.store.Locate(acc, p.asm)
		if err != nil || !entry.Present {
			slog.Warn("Transfer reported success but file is absent",
				"accession", acc, "path", p.entry.Path)
			rep.FailedTransfers++
			continue
		}
		p.entry = entry
		rep.Fetched++
	}
	rep.FailedTransfers += len(result.Failed)
	return nil
}

// link materializes the taxonomy link of every genome that is on
// disk. Linking is idempotent, so genomes that were present before
// this run get their links confirmed or repaired too.
func (d *iodownload) link(plan []planned, rep *download.Report) {
	bar := newProgressBar(len(plan), "Linking taxonomy tree: ")
	defer bar.Finish()

	for i := range plan {
		bar.Increment()

		p := &plan[i]
		if !p.entry.Present {
			continue
		}
		_, err := d.mat.Materialize(p.entry.Accession, p.lin, p.entry.Path)
		if err != nil {
			rep.FailedLinks++
			slog.Error("Failed to link genome",
				"accession", p.entry.Accession,
				"error", err,
			)
			// Continue with next genome instead of failing
			continue
		}
		rep.Links++
		rep.Bytes += p.entry.Size
	}
}

func (d *iodownload) summary(
	rep *download.Report,
	elapsed time.Duration,
) {
	slog.Info("Download complete",
		"resolved", rep.Resolved,
		"present", rep.Present,
		"fetched", rep.Fetched,
		"failed_transfers", rep.FailedTransfers,
		"links", rep.Links,
		"failed_links", rep.FailedLinks,
		"bytes", rep.Bytes,
		"duration", gnfmt.TimeString(elapsed.Seconds()),
	)
	gn.Info(`Download complete
Assemblies matched: %s, already present %s, fetched %s, failed %s.
Taxonomy links: %s made or confirmed, %s failed.
Linked data: <em>%s</em> at <em>%s</em>
		Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(rep.Resolved)),
		humanize.Comma(int64(rep.Present)),
		humanize.Comma(int64(rep.Fetched)),
		humanize.Comma(int64(rep.FailedTransfers)),
		humanize.Comma(int64(rep.Links)),
		humanize.Comma(int64(rep.FailedLinks)),
		humanize.Bytes(uint64(rep.Bytes)),
		d.mat.Root(),
		gnfmt.TimeString(elapsed.Seconds()),
	)

	if !rep.Ok() {
		slog.Warn("Some assemblies failed",
			"failed_transfers", rep.FailedTransfers,
			"failed_links", rep.FailedLinks,
		)
	}
}
