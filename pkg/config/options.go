package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptBaseDir sets the root directory for catalogs and the genome
// content store.
func OptBaseDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Base Directory", s) {
			c.BaseDir = s
		}
	}
}

// OptMirror sets the named GTDB mirror to fetch catalogs from.
// The name is checked against the mirror registry at run start.
func OptMirror(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Mirror", s) {
			c.Mirror = s
		}
	}
}

// OptDataset sets the catalog dataset, e.g. "bac120" or "ar53".
// The name is checked against the mirror registry at run start.
func OptDataset(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset", s) {
			c.Dataset = s
		}
	}
}

// OptDownloadConnections sets the connection count handed to the
// parallel transfer tool.
func OptDownloadConnections(i int) Option {
	return func(c *Config) {
		if isValidInt("Connections", i) {
			c.Download.Connections = i
		}
	}
}

// OptDownloadRelease sets the GTDB release version, e.g. "r220".
// The version is checked against the mirror registry at run start.
// Runtime-only field - not in ToOptions().
func OptDownloadRelease(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Release", s) {
			c.Download.Release = s
		}
	}
}

// OptDownloadTaxon sets the taxon query: a bare name or a full
// lineage path.
// Runtime-only field - not in ToOptions().
func OptDownloadTaxon(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Taxon", s) {
			c.Download.Taxon = s
		}
	}
}

// OptDownloadOutputDir sets the root of the symlink taxonomy tree.
// Runtime-only field - not in ToOptions().
func OptDownloadOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.Download.OutputDir = s
		}
	}
}

// OptDownloadFlatRank selects the flat taxonomy layout at the given
// rank. The CLI canonicalizes rank names ("s", "species") before
// calling this.
// Runtime-only field - not in ToOptions().
func OptDownloadFlatRank(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Flat Rank", s) {
			c.Download.FlatRank = s
		}
	}
}

// OptDownloadDryRun stops the pipeline after resolution and presence
// accounting.
// Runtime-only field - not in ToOptions().
func OptDownloadDryRun(b bool) Option {
	return func(c *Config) {
		c.Download.DryRun = b
	}
}

// OptDownloadVerbose keeps external tool output visible and raises
// log verbosity.
// Runtime-only field - not in ToOptions().
func OptDownloadVerbose(b bool) Option {
	return func(c *Config) {
		c.Download.Verbose = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, data, and log
// locations. Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
