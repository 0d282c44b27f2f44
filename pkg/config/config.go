// Package config provides configuration management for gtdbfetch.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - General: base_dir, mirror, dataset
//   - Download: connections
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Download.Release, Taxon, OutputDir, FlatRank, DryRun, Verbose
//     (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GTDBFETCH_ prefix with underscores for nesting:
//
//	GTDBFETCH_BASE_DIR=/data/gtdb
//	GTDBFETCH_MIRROR=europe
//	GTDBFETCH_DOWNLOAD_CONNECTIONS=8
//	GTDBFETCH_LOG_LEVEL=info
package config

// Config represents the complete gtdbfetch configuration.
type Config struct {
	// BaseDir is the root under which release catalogs and the genome
	// content store live (<base>/<release>/...). Defaults to the data
	// dir under the user's home; point it at another volume for large
	// downloads.
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir"`

	// Mirror is the named GTDB mirror to fetch catalogs from. Names
	// are defined in mirrors.yaml; the name is validated against the
	// registry at run start, not here.
	Mirror string `mapstructure:"mirror" yaml:"mirror"`

	// Dataset selects the catalog: "bac120" (bacteria) or "ar53"
	// (archaea). Validated against the registry at run start.
	Dataset string `mapstructure:"dataset" yaml:"dataset"`

	// Download contains settings specific to the download command.
	Download DownloadConfig `mapstructure:"download" yaml:"download"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, data and logs directories
	// reside. It must be set by CLI during init, there is no default
	// value for it.
	HomeDir string
}

// DownloadConfig contains settings specific to the download command.
type DownloadConfig struct {
	// Connections is the per-server connection and split count handed
	// to the parallel transfer tool. It only tunes aria2c; the
	// sequential fallback ignores it.
	Connections int `mapstructure:"connections" yaml:"connections"`

	// Release is the GTDB release version to work with, e.g. "r220".
	// Validated against the registry at run start.
	// Runtime-only field, set per command invocation.
	Release string `mapstructure:"release" yaml:"release"`

	// Taxon is the query to resolve: a bare taxon name or a full
	// lineage path. Runtime-only field.
	Taxon string `mapstructure:"taxon" yaml:"taxon"`

	// OutputDir is the root of the symlink taxonomy tree. Empty means
	// the release default <base>/<release>/genomes/taxonomy.
	// Runtime-only field.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// FlatRank, when non-empty, selects the flat taxonomy layout: one
	// directory per accession named after the given rank's label
	// instead of the seven-level tree. The CLI canonicalizes rank
	// names before setting this. Runtime-only field.
	FlatRank string `mapstructure:"flat_rank" yaml:"flat_rank"`

	// DryRun stops the pipeline after resolution and presence
	// accounting; nothing is downloaded or linked. Runtime-only field.
	DryRun bool `mapstructure:"dry_run" yaml:"dry_run"`

	// Verbose leaves external tool output visible and raises log
	// verbosity. Runtime-only field.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Mirror:  "europe",
		Dataset: "bac120",
		Download: DownloadConfig{
			Connections: 4,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
