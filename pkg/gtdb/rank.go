package gtdb

import (
	"fmt"
	"strings"
)

// Rank is one of the seven fixed taxonomic levels used by GTDB
// classification strings, ordered from domain down to species.
type Rank int

const (
	Domain Rank = iota
	Phylum
	Class
	Order
	Family
	Genus
	Species
)

// NumRanks is the fixed depth of a GTDB lineage.
const NumRanks = 7

var rankNames = [NumRanks]string{
	"domain", "phylum", "class", "order", "family", "genus", "species",
}

var rankPrefixes = [NumRanks]string{
	"d__", "p__", "c__", "o__", "f__", "g__", "s__",
}

// String returns the lowercase English name of the rank.
func (r Rank) String() string {
	if r < Domain || r > Species {
		return fmt.Sprintf("rank(%d)", int(r))
	}
	return rankNames[r]
}

// Prefix returns the GTDB label prefix for the rank, e.g. "d__" for
// domain or "s__" for species.
func (r Rank) Prefix() string {
	if r < Domain || r > Species {
		return ""
	}
	return rankPrefixes[r]
}

// Ranks returns all ranks in lineage order.
func Ranks() [NumRanks]Rank {
	return [NumRanks]Rank{Domain, Phylum, Class, Order, Family, Genus, Species}
}

// ParseRank converts a rank name or its single-letter GTDB abbreviation
// into a Rank. Accepted forms are case-insensitive: "domain" or "d",
// "phylum" or "p", and so on.
func ParseRank(s string) (Rank, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for i, name := range rankNames {
		if n == name || n == name[:1] {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}
