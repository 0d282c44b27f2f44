package ioregistry

import (
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
)

// Resolve maps the configured mirror, release version and dataset onto
// a catalog source using the registry. Unknown names are fatal: the
// returned errors list the names the registry actually knows, so a
// typo never falls back to a different catalog silently.
func Resolve(
	reg *gtdb.Registry,
	mirror, version, dataset string,
) (gtdb.Source, error) {
	base, ok := reg.Mirror(mirror)
	if !ok {
		return gtdb.Source{}, UnknownMirrorError(mirror, reg.MirrorNames())
	}

	rel, ok := reg.Release(version)
	if !ok {
		return gtdb.Source{}, UnknownReleaseError(version, reg.ReleaseVersions())
	}

	pattern, ok := reg.CatalogPattern(dataset)
	if !ok {
		return gtdb.Source{}, UnknownDatasetError(dataset, reg.DatasetNames())
	}

	return gtdb.Source{
		MirrorBase: base,
		Release:    rel,
		Filename:   rel.CatalogFilename(pattern),
	}, nil
}
