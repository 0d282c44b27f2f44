package iotransfer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/transfer"
)

// wget options:
//
//	-q : quiet
//	-O <path> : write the downloaded document to path
type wget struct {
	cfg *config.Config
}

func newWget(cfg *config.Config) transfer.Tool {
	return &wget{cfg: cfg}
}

func (w *wget) Name() string { return "wget" }
func (w *wget) Batch() bool  { return false }

// FetchAll invokes wget once per item. Exit codes are per file, so
// failures are attributed exactly and the rest of the batch continues.
// In quiet mode a progress bar stands in for wget's own output.
func (w *wget) FetchAll(
	ctx context.Context,
	items []transfer.Item,
) (transfer.Result, error) {
	var res transfer.Result

	var bar *pb.ProgressBar
	if !w.cfg.Download.Verbose {
		bar = pb.Full.Start(len(items))
		bar.Set("prefix", "Downloading files: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	for _, item := range items {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		if bar != nil {
			bar.Increment()
		}

		dest := filepath.Join(item.Dir, item.Filename)
		var args []string
		if !w.cfg.Download.Verbose {
			args = append(args, "-q")
		}
		args = append(args, "-O", dest, item.URL)

		command := exec.CommandContext(ctx, "wget", args...)
		if w.cfg.Download.Verbose {
			command.Stdout = os.Stdout
			command.Stderr = os.Stderr
		}

		if err := command.Run(); err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				return res, TransferToolStartError("wget", err)
			}
			slog.Warn("wget failed",
				"accession", item.Accession,
				"url", item.URL, "error", err)
			res.Failed = append(res.Failed, item.Accession)
			continue
		}
		res.Succeeded = append(res.Succeeded, item.Accession)
	}
	return res, nil
}
