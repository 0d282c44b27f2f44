// Package taxonomy builds the in-memory index over a release catalog
// and resolves taxon queries against it. The index lives for one run
// only; it is rebuilt from the on-disk catalog every time.
package taxonomy

import (
	"strings"

	"github.com/gtdbfetch/gtdbfetch/pkg/catalog"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
)

// Index is the per-run view of one release catalog: the lineage and
// assembly name of every accession, an inverted index from normalized
// rank labels to accessions, and an exact typed-lineage index. The
// lineage array is comparable, so full-lineage resolution is a single
// map lookup.
type Index struct {
	lineages   map[string]gtdb.Lineage
	assemblies map[string]string
	labels     map[string][]string
	byLineage  map[gtdb.Lineage][]string
}

// New returns an empty index ready to ingest catalog rows.
func New() *Index {
	return &Index{
		lineages:   make(map[string]gtdb.Lineage),
		assemblies: make(map[string]string),
		labels:     make(map[string][]string),
		byLineage:  make(map[gtdb.Lineage][]string),
	}
}

// Add ingests one catalog row. Each rank label of the row's lineage
// becomes one search token pointing back at the accession, keeping
// construction linear in catalog size.
func (ix *Index) Add(row catalog.Row) {
	acc := row.Accession
	ix.lineages[acc] = row.Lineage
	if row.AssemblyName != "" {
		ix.assemblies[acc] = row.AssemblyName
	}
	ix.byLineage[row.Lineage] = append(ix.byLineage[row.Lineage], acc)
	for _, label := range row.Lineage {
		tok := normalizeLabel(label)
		if tok == "" {
			continue
		}
		ix.labels[tok] = append(ix.labels[tok], acc)
	}
}

// Len returns the number of indexed accessions.
func (ix *Index) Len() int {
	return len(ix.lineages)
}

// Lineage returns the lineage recorded for an accession.
func (ix *Index) Lineage(acc string) (gtdb.Lineage, bool) {
	l, ok := ix.lineages[acc]
	return l, ok
}

// AssemblyName returns the NCBI assembly name recorded for an
// accession, when the catalog carried one.
func (ix *Index) AssemblyName(acc string) (string, bool) {
	s, ok := ix.assemblies[acc]
	return s, ok
}

// Search tokens are whole rank labels, lowercased and trimmed, with
// the rank prefix already stripped during lineage parsing.
func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
