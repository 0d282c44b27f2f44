package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gtdbfetch"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gtdbfetch by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the default base directory for catalogs and genome
// files. Returns ~/.local/share/gtdbfetch by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gtdbfetch/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gtdbfetch/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// MirrorsFilePath returns the full path to the mirrors.yaml registry
// file. Returns ~/.config/gtdbfetch/mirrors.yaml by default.
func MirrorsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "mirrors.yaml")
}
