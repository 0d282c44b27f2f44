/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/internal/iocatalog"
	"github.com/gtdbfetch/gtdbfetch/internal/iocontent"
	"github.com/gtdbfetch/gtdbfetch/internal/iodownload"
	"github.com/gtdbfetch/gtdbfetch/internal/iolinker"
	"github.com/gtdbfetch/gtdbfetch/internal/ioregistry"
	"github.com/gtdbfetch/gtdbfetch/internal/iotransfer"
	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/download"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"github.com/gtdbfetch/gtdbfetch/pkg/linker"
	"github.com/spf13/cobra"
)

// getDownloadCmd returns the download command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getDownloadCmd() *cobra.Command {
	var (
		release     string
		taxon       string
		dataset     string
		mirror      string
		outputDir   string
		flatRank    string
		dryRun      bool
		connections int
	)

	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download genome assemblies for a taxon",
		Long: `Download the genome assemblies a taxon query matches in a GTDB
release.

This command:
  1. Fetches the release assembly catalog from the configured mirror
     (skipped when already on disk)
  2. Indexes the catalog's taxonomy in memory
  3. Resolves the taxon query to a set of assembly accessions
  4. Downloads missing genomes from the NCBI assembly archive with
     aria2c, or wget when aria2c is not installed
  5. Links every genome into a taxonomy tree of symbolic links

Genome files land once in the content store under
<base_dir>/<release>/genomes/raw; the taxonomy tree only holds links,
so overlapping queries never duplicate data. Re-running the same
command retries failed assemblies and repairs missing links.

The taxon can be a bare name matched at any rank, or a full
seven-rank lineage path matched exactly.

Examples:
  # All genomes of a genus
  gtdbfetch download -r r220 -t Bacillus

  # One species, by full lineage path
  gtdbfetch download -r r220 \
    -t "d__Bacteria;p__Bacillota;c__Bacilli;o__Bacillales;f__Bacillaceae;g__Bacillus;s__Bacillus subtilis"

  # Archaea, flat layout with one directory per species
  gtdbfetch download -r r220 -d ar53 -t Methanobrevibacter --flat species

  # See what would be downloaded
  gtdbfetch download -r r220 -t Clostridium --dry-run`,
		Aliases: []string{"dl"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDownload(
				cmd, release, taxon, dataset, mirror,
				outputDir, flatRank, dryRun, connections,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	downloadCmd.Flags().StringVarP(
		&release, "release", "r", "",
		"GTDB release version, e.g. r220 (required)",
	)
	downloadCmd.Flags().StringVarP(
		&taxon, "taxon", "t", "",
		"taxon name or full lineage path (required)",
	)
	downloadCmd.Flags().StringVarP(
		&dataset, "dataset", "d", "",
		"catalog dataset: bac120 or ar53",
	)
	downloadCmd.Flags().StringVarP(
		&mirror, "mirror", "m", "",
		"GTDB mirror name from mirrors.yaml",
	)
	downloadCmd.Flags().StringVarP(
		&outputDir, "output", "o", "",
		"taxonomy tree root (default <base_dir>/<release>/genomes/taxonomy)",
	)
	downloadCmd.Flags().StringVarP(
		&flatRank, "flat", "f", "",
		"flat layout: one directory per label of the given rank",
	)
	downloadCmd.Flags().BoolVarP(
		&dryRun, "dry-run", "n", false,
		"resolve and report, download and link nothing",
	)
	downloadCmd.Flags().IntVarP(
		&connections, "connections", "c", 0,
		"per-server connection count for aria2c",
	)

	return downloadCmd
}

func runDownload(
	cmd *cobra.Command,
	release, taxon, dataset, mirror string,
	outputDir, flatRank string,
	dryRun bool,
	connections int,
) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if release == "" {
		gn.Warn("<warn>The --release flag is required, e.g. -r r220</warn>")
		err := fmt.Errorf("missing required flag --release")
		slog.Error("missing required flag", "flag", "release")
		return err
	}
	if taxon == "" {
		gn.Warn("<warn>The --taxon flag is required, e.g. -t Bacillus</warn>")
		err := fmt.Errorf("missing required flag --taxon")
		slog.Error("missing required flag", "flag", "taxon")
		return err
	}

	// Build options from explicitly set flags
	dlOpts := []config.Option{
		config.OptDownloadRelease(release),
		config.OptDownloadTaxon(taxon),
	}

	if cmd.Flags().Changed("dataset") {
		dlOpts = append(dlOpts, config.OptDataset(dataset))
	}

	if cmd.Flags().Changed("mirror") {
		dlOpts = append(dlOpts, config.OptMirror(mirror))
	}

	if cmd.Flags().Changed("output") {
		dlOpts = append(dlOpts, config.OptDownloadOutputDir(outputDir))
	}

	if cmd.Flags().Changed("flat") {
		r, err := gtdb.ParseRank(flatRank)
		if err != nil {
			gn.Warn(
				"<warn>Unknown rank <em>%s</em>, use one of: %s</warn>",
				flatRank, strings.Join(rankNames(), ", "),
			)
			slog.Error("unknown rank", "rank", flatRank, "error", err)
			return err
		}
		dlOpts = append(dlOpts, config.OptDownloadFlatRank(r.String()))
	}

	if cmd.Flags().Changed("dry-run") {
		dlOpts = append(dlOpts, config.OptDownloadDryRun(dryRun))
	}

	if cmd.Flags().Changed("connections") {
		dlOpts = append(dlOpts, config.OptDownloadConnections(connections))
	}

	cfg.Update(dlOpts)

	dl, err := buildPipeline()
	if err != nil {
		return err
	}

	rep, err := dl.Download(ctx)
	if err != nil {
		return err
	}

	if !rep.Ok() {
		gn.Warn(
			"<warn>Some assemblies failed, re-run the same command to retry them</warn>",
		)
		return nil
	}

	if !cfg.Download.DryRun {
		gn.Info(`Next steps:
	 - Browse the taxonomy tree under the output directory
	 - Re-run with another taxon; shared genomes are not downloaded twice
`)
	}
	return nil
}

// resolveSource loads the mirror registry and resolves the configured
// mirror, release and dataset into a concrete catalog source.
func resolveSource() (gtdb.Source, error) {
	reg, err := ioregistry.New(cfg).Load()
	if err != nil {
		return gtdb.Source{}, err
	}

	src, err := ioregistry.Resolve(
		reg, cfg.Mirror, cfg.Download.Release, cfg.Dataset,
	)
	if err != nil {
		return gtdb.Source{}, err
	}

	gn.Info("Using release <em>%s</em> (%s) from mirror <em>%s</em>",
		cfg.Download.Release, cfg.Dataset, cfg.Mirror)
	slog.Info("Pipeline configured",
		"release", cfg.Download.Release,
		"dataset", cfg.Dataset,
		"mirror", cfg.Mirror,
		"catalog_url", src.CatalogURL(),
	)
	return src, nil
}

// buildPipeline wires the download pipeline from the loaded
// configuration: mirror registry, catalog store, content store, link
// materializer and transfer tool probe.
func buildPipeline() (download.Downloader, error) {
	src, err := resolveSource()
	if err != nil {
		return nil, err
	}

	probe := iotransfer.NewProbe(cfg)
	cat := iocatalog.New(cfg, src, probe)

	store, err := iocontent.New(cfg, src.Release)
	if err != nil {
		return nil, err
	}

	root := cfg.Download.OutputDir
	if root == "" {
		root = src.Release.TaxonomyDir(cfg.BaseDir)
	}

	var mat linker.Materializer
	if cfg.Download.FlatRank == "" {
		mat, err = iolinker.New(root)
	} else {
		var r gtdb.Rank
		r, err = gtdb.ParseRank(cfg.Download.FlatRank)
		if err == nil {
			mat, err = iolinker.NewFlat(root, r)
		}
	}
	if err != nil {
		return nil, err
	}

	return iodownload.New(cfg, src, cat, store, mat, probe), nil
}

// rankNames lists the accepted values of the --flat flag.
func rankNames() []string {
	ranks := gtdb.Ranks()
	res := make([]string, len(ranks))
	for i, r := range ranks {
		res[i] = r.String()
	}
	return res
}
