package iocatalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/errcode"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"github.com/gtdbfetch/gtdbfetch/pkg/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTool pretends to be an external downloader. On success it writes
// content to the requested destination, like aria2c or wget would. With
// partial set it writes the file and still reports failure, imitating
// an interrupted transfer.
type stubTool struct {
	content []byte
	fail    bool
	partial bool
	err     error
	calls   int
}

func (s *stubTool) Name() string { return "stub" }
func (s *stubTool) Batch() bool  { return true }

func (s *stubTool) FetchAll(
	_ context.Context,
	items []transfer.Item,
) (transfer.Result, error) {
	s.calls++
	if s.err != nil {
		return transfer.Result{}, s.err
	}

	var res transfer.Result
	for _, item := range items {
		if s.fail || s.partial {
			res.Failed = append(res.Failed, item.Accession)
			if !s.partial {
				continue
			}
		}
		path := filepath.Join(item.Dir, item.Filename)
		if err := os.WriteFile(path, s.content, 0644); err != nil {
			return res, err
		}
		if !s.fail && !s.partial {
			res.Succeeded = append(res.Succeeded, item.Accession)
		}
	}
	return res, nil
}

func testSource() gtdb.Source {
	return gtdb.Source{
		MirrorBase: "https://example.org/releases/",
		Release:    gtdb.Release{Version: "r220", Path: "release220/220.0"},
		Filename:   "bac120_metadata_r220.tsv.gz",
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptBaseDir(t.TempDir())})
	return cfg
}

func probeFor(tool transfer.Tool) transfer.Probe {
	return func() (transfer.Tool, error) { return tool, nil }
}

func TestEnsureCatalogDownloads(t *testing.T) {
	cfg := testConfig(t)
	src := testSource()
	tool := &stubTool{content: []byte("catalog data")}

	store := New(cfg, src, probeFor(tool))
	path, err := store.EnsureCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, src.CatalogPath(cfg.BaseDir), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "catalog data", string(data))
	assert.Equal(t, 1, tool.calls)
}

func TestEnsureCatalogPresentSkipsTool(t *testing.T) {
	cfg := testConfig(t)
	src := testSource()

	path := src.CatalogPath(cfg.BaseDir)
	err := os.MkdirAll(filepath.Dir(path), 0755)
	require.NoError(t, err)
	err = os.WriteFile(path, []byte("already here"), 0644)
	require.NoError(t, err)

	probed := false
	probe := func() (transfer.Tool, error) {
		probed = true
		return nil, errors.New("should not be probed")
	}

	store := New(cfg, src, probe)
	got, err := store.EnsureCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.False(t, probed)
}

// A zero-byte catalog counts as absent and is fetched again.
func TestEnsureCatalogEmptyFileRefetched(t *testing.T) {
	cfg := testConfig(t)
	src := testSource()

	path := src.CatalogPath(cfg.BaseDir)
	err := os.MkdirAll(filepath.Dir(path), 0755)
	require.NoError(t, err)
	err = os.WriteFile(path, nil, 0644)
	require.NoError(t, err)

	tool := &stubTool{content: []byte("fresh")}
	store := New(cfg, src, probeFor(tool))
	got, err := store.EnsureCatalog(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
	assert.Equal(t, 1, tool.calls)
}

func TestEnsureCatalogProbeErrorPropagates(t *testing.T) {
	cfg := testConfig(t)
	noTool := errors.New("no transfer tool")
	probe := func() (transfer.Tool, error) { return nil, noTool }

	store := New(cfg, testSource(), probe)
	_, err := store.EnsureCatalog(context.Background())
	assert.ErrorIs(t, err, noTool)
}

func TestEnsureCatalogFailedTransfer(t *testing.T) {
	tests := []struct {
		name string
		tool *stubTool
	}{
		{"tool error", &stubTool{err: errors.New("exit status 1")}},
		{"tool reports failure", &stubTool{fail: true}},
		{
			"partial download cleaned up",
			&stubTool{partial: true, content: []byte("trunca")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			src := testSource()

			store := New(cfg, src, probeFor(tt.tool))
			_, err := store.EnsureCatalog(context.Background())
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, errcode.CatalogUnavailableError, gnErr.Code)
			assert.Equal(t, src.CatalogURL(), gnErr.Vars[0])

			// no partial catalog and no leftover temp file
			_, err = os.Stat(src.CatalogPath(cfg.BaseDir))
			assert.True(t, os.IsNotExist(err))
			leftovers, err := filepath.Glob(
				filepath.Join(src.Release.Dir(cfg.BaseDir), "*.tmp"),
			)
			require.NoError(t, err)
			assert.Empty(t, leftovers)
		})
	}
}
