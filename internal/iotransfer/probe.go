// Package iotransfer discovers and drives the external transfer tools
// that move catalog and genome files. aria2c is preferred for its
// batched, parallel downloads; wget is the single-file fallback. The
// program itself opens no network connections.
package iotransfer

import (
	"log/slog"
	"os/exec"
	"sync"

	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/transfer"
)

// NewProbe returns a memoized tool probe. The PATH lookup runs at most
// once per process and every component shares the selected tool, so a
// run that needs no transfers never probes at all.
func NewProbe(cfg *config.Config) transfer.Probe {
	return sync.OnceValues(func() (transfer.Tool, error) {
		if path, err := exec.LookPath("aria2c"); err == nil {
			slog.Debug("Selected transfer tool",
				"tool", "aria2c", "path", path)
			return newAria2(cfg), nil
		}
		if path, err := exec.LookPath("wget"); err == nil {
			slog.Debug("Selected transfer tool",
				"tool", "wget", "path", path)
			return newWget(cfg), nil
		}
		return nil, NoTransferToolError()
	})
}
