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
	"syscall"

	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/internal/iocatalog"
	"github.com/gtdbfetch/gtdbfetch/internal/iodownload"
	"github.com/gtdbfetch/gtdbfetch/internal/iotransfer"
	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/spf13/cobra"
)

// getMetadataCmd returns the metadata command.
func getMetadataCmd() *cobra.Command {
	var (
		release string
		dataset string
		mirror  string
	)

	metadataCmd := &cobra.Command{
		Use:   "metadata",
		Short: "Fetch the assembly catalog of a release",
		Long: `Fetch the assembly catalog (metadata TSV) of a GTDB release
without downloading any genomes.

The catalog lands under <base_dir>/<release>/ and later download runs
reuse it. Releases are immutable, so a catalog already on disk is
never fetched again.

Examples:
  # Bacterial catalog of release r220
  gtdbfetch metadata -r r220

  # Archaeal catalog from a specific mirror
  gtdbfetch metadata -r r220 -d ar53 -m asia-pacific1`,
		Aliases: []string{"md"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runMetadata(cmd, release, dataset, mirror)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	metadataCmd.Flags().StringVarP(
		&release, "release", "r", "",
		"GTDB release version, e.g. r220 (required)",
	)
	metadataCmd.Flags().StringVarP(
		&dataset, "dataset", "d", "",
		"catalog dataset: bac120 or ar53",
	)
	metadataCmd.Flags().StringVarP(
		&mirror, "mirror", "m", "",
		"GTDB mirror name from mirrors.yaml",
	)

	return metadataCmd
}

func runMetadata(
	cmd *cobra.Command,
	release, dataset, mirror string,
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

	mdOpts := []config.Option{
		config.OptDownloadRelease(release),
	}

	if cmd.Flags().Changed("dataset") {
		mdOpts = append(mdOpts, config.OptDataset(dataset))
	}

	if cmd.Flags().Changed("mirror") {
		mdOpts = append(mdOpts, config.OptMirror(mirror))
	}

	cfg.Update(mdOpts)

	// Only the catalog path of the pipeline is wired; no genome
	// directories are touched in metadata-only mode.
	src, err := resolveSource()
	if err != nil {
		return err
	}
	probe := iotransfer.NewProbe(cfg)
	cat := iocatalog.New(cfg, src, probe)
	dl := iodownload.New(cfg, src, cat, nil, nil, probe)

	if _, err = dl.EnsureMetadata(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Run '<em>gtdbfetch download</em>' with a taxon to fetch genomes
	 - The catalog is reused, downloads start right away
`)
	return nil
}
