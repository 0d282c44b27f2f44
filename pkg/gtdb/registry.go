package gtdb

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Registry describes where catalogs come from: the known mirrors, the
// releases they serve and the catalog file pattern for each dataset.
// It is decoded from mirrors.yaml and fixed for the rest of the run.
type Registry struct {
	// Mirrors maps a mirror name to the base URL of its releases tree.
	Mirrors map[string]string `yaml:"mirrors"`
	// Releases maps a release version such as "r220" to the relative
	// path a mirror serves it under, e.g. "release220/220.0".
	Releases map[string]string `yaml:"releases"`
	// Datasets maps a dataset name to its catalog file pattern. The
	// pattern carries one "%s" placeholder for the release version.
	Datasets map[string]string `yaml:"datasets"`
}

// Validate checks that the registry is usable before any of it is
// trusted: mirrors must be absolute HTTP URLs, releases must have
// paths, and dataset patterns must carry exactly one placeholder.
func (r *Registry) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Mirrors,
			validation.Required,
			validation.Each(validation.Required, validation.By(checkMirrorURL)),
		),
		validation.Field(&r.Releases,
			validation.Required,
			validation.Each(validation.Required),
		),
		validation.Field(&r.Datasets,
			validation.Required,
			validation.Each(validation.Required, validation.By(checkCatalogPattern)),
		),
	)
}

func checkMirrorURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("not an absolute http(s) URL: %q", s)
	}
	return nil
}

func checkCatalogPattern(value any) error {
	s, _ := value.(string)
	if strings.Count(s, "%s") != 1 {
		return errors.New("must contain exactly one %s placeholder")
	}
	return nil
}

// Mirror returns the base URL of a named mirror.
func (r *Registry) Mirror(name string) (string, bool) {
	u, ok := r.Mirrors[name]
	return u, ok
}

// Release returns the release metadata for a version such as "r220".
func (r *Registry) Release(version string) (Release, bool) {
	path, ok := r.Releases[version]
	if !ok {
		return Release{}, false
	}
	return Release{Version: version, Path: path}, true
}

// CatalogPattern returns the catalog file pattern for a dataset name.
func (r *Registry) CatalogPattern(dataset string) (string, bool) {
	p, ok := r.Datasets[dataset]
	return p, ok
}

// MirrorNames lists the configured mirror names in sorted order.
func (r *Registry) MirrorNames() []string {
	return slices.Sorted(maps.Keys(r.Mirrors))
}

// ReleaseVersions lists the known release versions in sorted order.
func (r *Registry) ReleaseVersions() []string {
	return slices.Sorted(maps.Keys(r.Releases))
}

// DatasetNames lists the known dataset names in sorted order.
func (r *Registry) DatasetNames() []string {
	return slices.Sorted(maps.Keys(r.Datasets))
}
