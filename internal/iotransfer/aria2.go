package iotransfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/transfer"
)

// aria2c options:
//
//	-i <file> : read URIs from file; each URI line is followed by
//	            indented dir= and out= option lines
//	-x <n> : max connections to one server
//	-s <n> : split each download into n pieces
//	-k 1M : minimum split size
//	--allow-overwrite=true : replace leftover files in place
//	--auto-file-renaming=false : never save under "name.1" aliases
//	--quiet : suppress console output
type aria2 struct {
	cfg *config.Config
}

func newAria2(cfg *config.Config) transfer.Tool {
	return &aria2{cfg: cfg}
}

func (a *aria2) Name() string { return "aria2c" }
func (a *aria2) Batch() bool  { return true }

// FetchAll downloads the whole batch in one aria2c invocation driven
// by an input-list file. aria2c reports one exit code for the batch,
// so a non-zero exit marks every item failed: per-file outcomes cannot
// be attributed, and re-running skips whatever did land intact.
func (a *aria2) FetchAll(
	ctx context.Context,
	items []transfer.Item,
) (transfer.Result, error) {
	var res transfer.Result
	if len(items) == 0 {
		return res, nil
	}

	listPath, err := writeInputList(items)
	if err != nil {
		return res, TransferToolStartError("aria2c", err)
	}
	defer os.Remove(listPath)

	conn := strconv.Itoa(a.cfg.Download.Connections)
	args := []string{
		"-i", listPath,
		"-x", conn,
		"-s", conn,
		"-k", "1M",
		"--allow-overwrite=true",
		"--auto-file-renaming=false",
	}
	if !a.cfg.Download.Verbose {
		args = append(args, "--quiet")
	}

	command := exec.CommandContext(ctx, "aria2c", args...)
	if a.cfg.Download.Verbose {
		command.Stdout = os.Stdout
		command.Stderr = os.Stderr
	}

	if err = command.Run(); err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, TransferToolStartError("aria2c", err)
		}
		slog.Error("aria2c batch failed",
			"items", len(items), "error", err)
		for _, item := range items {
			res.Failed = append(res.Failed, item.Accession)
		}
		return res, nil
	}

	for _, item := range items {
		res.Succeeded = append(res.Succeeded, item.Accession)
	}
	return res, nil
}

// writeInputList writes the aria2c input file: a URI per item followed
// by indented dir= and out= lines naming its destination.
func writeInputList(items []transfer.Item) (string, error) {
	f, err := os.CreateTemp("", "gtdbfetch-aria2-*.txt")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s\n  dir=%s\n  out=%s\n",
			item.URL, item.Dir, item.Filename)
	}

	_, err = f.WriteString(b.String())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
