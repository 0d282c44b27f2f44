// Package iolinker materializes the browsable taxonomy tree: symlinks
// under an output root, one per accession, pointing into the content
// store. A manifest under the root records every link made, so lineage
// changes across runs repair links instead of orphaning them.
package iolinker

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"github.com/gtdbfetch/gtdbfetch/pkg/linker"
)

type iolinker struct {
	root     string
	flat     bool
	flatRank gtdb.Rank
	man      *manifest
}

// New creates a tree-mode materializer: links live under seven
// sanitized rank segments, domain through species.
func New(root string) (linker.Materializer, error) {
	return newLinker(root, false, 0)
}

// NewFlat creates a flat-mode materializer: links live under a single
// "<prefix>__<label>" segment taken from the given rank.
func NewFlat(root string, r gtdb.Rank) (linker.Materializer, error) {
	return newLinker(root, true, r)
}

func newLinker(
	root string,
	flat bool,
	r gtdb.Rank,
) (linker.Materializer, error) {
	man, err := loadManifest(root)
	if err != nil {
		return nil, ManifestReadError(manifestPath(root), err)
	}
	res := iolinker{root: root, flat: flat, flatRank: r, man: man}
	return &res, nil
}

func (l *iolinker) Root() string {
	return l.root
}

// LinkPath computes where a lineage places a file without touching
// the filesystem.
func (l *iolinker) LinkPath(lin gtdb.Lineage, filename string) string {
	if l.flat {
		return filepath.Join(l.root, lin.FlatSegment(l.flatRank), filename)
	}
	segs := append([]string{l.root}, lin.PathSegments()...)
	segs = append(segs, filename)
	return filepath.Join(segs...)
}

// Materialize ensures the taxonomy link for an accession. A correct
// link is left untouched, a link resolving elsewhere is removed and
// recreated, and a superseded link from an earlier run with a
// different lineage is removed via the manifest.
func (l *iolinker) Materialize(
	accession string,
	lin gtdb.Lineage,
	contentPath string,
) (string, error) {
	target, err := filepath.Abs(contentPath)
	if err != nil {
		return "", LinkCreationError(accession, contentPath, err)
	}

	linkPath := l.LinkPath(lin, filepath.Base(target))
	if err = ensureLink(linkPath, target); err != nil {
		return "", LinkCreationError(accession, linkPath, err)
	}

	rel, err := filepath.Rel(l.root, linkPath)
	if err != nil {
		return "", LinkCreationError(accession, linkPath, err)
	}
	if old, superseded := l.man.record(accession, rel); superseded {
		l.removeStale(old)
	}
	return linkPath, nil
}

// Close writes the manifest back if any link mapping changed. A run
// that changed nothing leaves the manifest file untouched.
func (l *iolinker) Close() error {
	if err := l.man.save(); err != nil {
		return ManifestWriteError(manifestPath(l.root), err)
	}
	return nil
}

// ensureLink makes linkPath a symlink to target. Whatever occupies the
// path with a different resolution is removed first.
func ensureLink(linkPath, target string) error {
	if existing, err := os.Readlink(linkPath); err == nil {
		if existing == target {
			return nil
		}
		if err = os.Remove(linkPath); err != nil {
			return err
		}
	} else if _, lerr := os.Lstat(linkPath); lerr == nil {
		// not a symlink at all
		if err = os.Remove(linkPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return err
	}
	return os.Symlink(target, linkPath)
}

func (l *iolinker) removeStale(rel string) {
	path := filepath.Join(l.root, rel)
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("Cannot remove superseded link",
			"path", path, "error", err)
	}
}
