package taxonomy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
)

// Resolve maps a taxon query to the accessions it denotes, sorted and
// deduplicated. Two query shapes are auto-detected:
//
//   - a full lineage path (contains ";"): must parse as the complete
//     7-rank form and is matched by exact typed equality, so every
//     rank label has to agree, case-sensitively;
//   - a bare taxon name: one leading rank prefix is stripped if
//     present, the rest is normalized like index tokens and looked up
//     in the inverted index. A name matching labels at several ranks
//     or lineages returns the union of all matches; the resolver never
//     guesses which rank was meant.
//
// Zero matches is an error, never an empty result: a run that would
// download nothing is a mistake worth surfacing.
func (ix *Index) Resolve(query string) ([]string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("empty taxon query")
	}

	var accs []string
	if strings.Contains(q, ";") {
		lin, err := gtdb.ParseLineage(q)
		if err != nil {
			return nil, fmt.Errorf(
				"taxon query %q is not a full lineage path: %w", query, err,
			)
		}
		accs = ix.byLineage[lin]
	} else {
		accs = ix.labels[normalizeLabel(stripRankPrefix(q))]
	}

	if len(accs) == 0 {
		return nil, fmt.Errorf("no accessions match taxon %q", query)
	}

	res := slices.Clone(accs)
	slices.Sort(res)
	return slices.Compact(res), nil
}

// stripRankPrefix removes one leading rank prefix from a bare query,
// so "s__Bacillus subtilis" resolves the same as "Bacillus subtilis".
func stripRankPrefix(s string) string {
	for _, r := range gtdb.Ranks() {
		if strings.HasPrefix(s, r.Prefix()) {
			return s[len(r.Prefix()):]
		}
	}
	return s
}
