package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gtdbfetch"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "gtdbfetch"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gtdbfetch", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gtdbfetch", "config.yaml"),
		},
		{
			msg: "mirrors file",
			fn:  config.MirrorsFilePath,
			res: filepath.Join(tempHome, ".config", "gtdbfetch", "mirrors.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Catalog source defaults
		assert.Equal(t, "europe", cfg.Mirror)
		assert.Equal(t, "bac120", cfg.Dataset)
		assert.Equal(t, "", cfg.BaseDir)

		// Download defaults
		assert.Equal(t, 4, cfg.Download.Connections)
		assert.Equal(t, "", cfg.Download.Release)
		assert.Equal(t, "", cfg.Download.Taxon)
		assert.False(t, cfg.Download.DryRun)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)
	})
}

func TestOptionMirror(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid mirror",
			input:    "asia-pacific1",
			expected: "asia-pacific1",
		},
		{
			name:     "trims whitespace",
			input:    "  asia-pacific2  ",
			expected: "asia-pacific2",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "europe", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "europe", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptMirror(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Mirror)
		})
	}
}

func TestOptionDataset(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets archaeal dataset",
			input:    "ar53",
			expected: "ar53",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "bac120", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDataset(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Dataset)
		})
	}
}

func TestOptionDownloadConnections(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid connections",
			input:    16,
			expected: 16,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 4, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -2,
			expected: 4, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDownloadConnections(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Download.Connections)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - error",
			input:    "error",
			expected: "error",
		},
		{
			name:     "normalizes to lowercase",
			input:    "DEBUG",
			expected: "debug",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid format - json",
			input:    "json",
			expected: "json",
		},
		{
			name:     "sets valid format - text",
			input:    "text",
			expected: "text",
		},
		{
			name:     "ignores invalid value",
			input:    "xml",
			expected: "json", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogFormat(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Format)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets stderr",
			input:    "stderr",
			expected: "stderr",
		},
		{
			name:     "normalizes to lowercase",
			input:    "STDOUT",
			expected: "stdout",
		},
		{
			name:     "ignores invalid value",
			input:    "syslog",
			expected: "file", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogDestination(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Destination)
		})
	}
}

func TestRuntimeOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDownloadRelease("r226"),
		config.OptDownloadTaxon("Firmicutes"),
		config.OptDownloadOutputDir("/data/taxonomy"),
		config.OptDownloadFlatRank("species"),
		config.OptDownloadDryRun(true),
		config.OptDownloadVerbose(true),
		config.OptHomeDir("/custom/home"),
	})

	assert.Equal(t, "r226", cfg.Download.Release)
	assert.Equal(t, "Firmicutes", cfg.Download.Taxon)
	assert.Equal(t, "/data/taxonomy", cfg.Download.OutputDir)
	assert.Equal(t, "species", cfg.Download.FlatRank)
	assert.True(t, cfg.Download.DryRun)
	assert.True(t, cfg.Download.Verbose)
	assert.Equal(t, "/custom/home", cfg.HomeDir)
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptBaseDir("/data/gtdb"),
			config.OptMirror("asia-pacific1"),
			config.OptDataset("ar53"),
			config.OptLogLevel("debug"),
			config.OptDownloadConnections(8),
		}

		cfg.Update(opts)

		assert.Equal(t, "/data/gtdb", cfg.BaseDir)
		assert.Equal(t, "asia-pacific1", cfg.Mirror)
		assert.Equal(t, "ar53", cfg.Dataset)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 8, cfg.Download.Connections)

		// Unchanged fields keep defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "file", cfg.Log.Destination)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptMirror("europe"),
			config.OptMirror("asia-pacific2"),
		}

		cfg.Update(opts)

		assert.Equal(t, "asia-pacific2", cfg.Mirror)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptBaseDir("/srv/gtdb"),
			config.OptMirror("asia-pacific1"),
			config.OptDataset("ar53"),
			config.OptDownloadConnections(12),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
		}
		original.Update(opts)

		// Convert to options and apply to new config
		convertedOpts := original.ToOptions()
		newCfg := config.New()
		newCfg.Update(convertedOpts)

		// Verify persistent fields match
		assert.Equal(t, original.BaseDir, newCfg.BaseDir)
		assert.Equal(t, original.Mirror, newCfg.Mirror)
		assert.Equal(t, original.Dataset, newCfg.Dataset)
		assert.Equal(t, original.Download.Connections, newCfg.Download.Connections)
		assert.Equal(t, original.Log.Level, newCfg.Log.Level)
		assert.Equal(t, original.Log.Format, newCfg.Log.Format)
		assert.Equal(t, original.Log.Destination, newCfg.Log.Destination)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptDownloadRelease("r220"),
			config.OptDownloadTaxon("Bacillus"),
			config.OptDownloadOutputDir("/out"),
			config.OptDownloadFlatRank("genus"),
			config.OptDownloadDryRun(true),
		})

		// These fields should not be in ToOptions() output
		opts := cfg.ToOptions()
		newCfg := config.New()
		newCfg.Update(opts)

		// Runtime fields should remain at defaults in newCfg
		assert.Equal(t, "", newCfg.HomeDir)
		assert.Equal(t, "", newCfg.Download.Release)
		assert.Equal(t, "", newCfg.Download.Taxon)
		assert.Equal(t, "", newCfg.Download.OutputDir)
		assert.Equal(t, "", newCfg.Download.FlatRank)
		assert.False(t, newCfg.Download.DryRun)
	})
}
