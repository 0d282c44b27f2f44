package iofs

import (
	_ "embed"
	"os"

	"github.com/gtdbfetch/gtdbfetch/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed mirrors.yaml
var MirrorsYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

func EnsureMirrorsFile(homeDir string) error {
	mirrorsPath := config.MirrorsFilePath(homeDir)

	// Check if mirrors file already exists
	if _, err := os.Stat(mirrorsPath); err == nil {
		return nil
	}

	// Write embedded mirrors.yaml to the config directory
	if err := os.WriteFile(mirrorsPath, []byte(MirrorsYAML), 0644); err != nil {
		return CopyFileError(mirrorsPath, err)
	}

	return nil
}
