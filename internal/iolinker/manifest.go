package iolinker

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// manifestName is the per-root link manifest: one "accession<TAB>path"
// line per link, paths relative to the root so a moved output tree
// stays consistent.
const manifestName = ".gtdbfetch-links.tsv"

func manifestPath(root string) string {
	return filepath.Join(root, manifestName)
}

type manifest struct {
	root  string
	links map[string]string
	dirty bool
}

func loadManifest(root string) (*manifest, error) {
	m := &manifest{root: root, links: make(map[string]string)}

	f, err := os.Open(manifestPath(root))
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		acc, rel, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("malformed manifest line: %q", line)
		}
		m.links[acc] = rel
	}
	return m, sc.Err()
}

// record stores the link path for an accession. When the accession
// already had a different path, the superseded path is returned so the
// caller can remove the stale link.
func (m *manifest) record(acc, rel string) (string, bool) {
	old, ok := m.links[acc]
	if ok && old == rel {
		return "", false
	}
	m.links[acc] = rel
	m.dirty = true
	if !ok {
		return "", false
	}
	return old, true
}

// save writes the manifest atomically, sorted by accession. It is a
// no-op when no mapping changed since load.
func (m *manifest) save() error {
	if !m.dirty {
		return nil
	}

	var b strings.Builder
	for _, acc := range slices.Sorted(maps.Keys(m.links)) {
		fmt.Fprintf(&b, "%s\t%s\n", acc, m.links[acc])
	}

	path := manifestPath(m.root)
	tmp := path + "." + uuid.New().String() + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	m.dirty = false
	return nil
}
