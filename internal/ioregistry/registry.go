// Package ioregistry loads the mirror registry from mirrors.yaml and
// resolves a configured mirror, release and dataset into a concrete
// catalog source.
package ioregistry

import (
	"os"

	"github.com/gtdbfetch/gtdbfetch/pkg/config"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"gopkg.in/yaml.v3"
)

type ioregistry struct {
	cfg *config.Config
}

func New(cfg *config.Config) gtdb.RegistrySource {
	res := ioregistry{cfg: cfg}
	return &res
}

// Load reads mirrors.yaml from the user's config directory, parses it
// and validates it. The registry is the single source of truth for
// mirror, release and dataset names for the rest of the run.
func (r *ioregistry) Load() (*gtdb.Registry, error) {
	path := config.MirrorsFilePath(r.cfg.HomeDir)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, RegistryReadError(path, err)
	}

	var reg gtdb.Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, RegistryParseError(path, err)
	}

	if err := reg.Validate(); err != nil {
		return nil, RegistryInvalidError(path, err)
	}

	return &reg, nil
}
