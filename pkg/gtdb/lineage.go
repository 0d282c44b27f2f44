package gtdb

import (
	"fmt"
	"strings"
)

// Unclassified is the placeholder directory segment used when a rank
// label is empty, so a materialized taxonomy path always has the full
// seven-level depth.
const Unclassified = "unclassified"

// Lineage is the parsed form of a GTDB classification string: one label
// per rank, indexed by Rank, without the rank prefixes. Labels may be
// empty for unclassified ranks. The array form is comparable, so typed
// lineages can be map keys and checked for equality directly.
type Lineage [NumRanks]string

// ParseLineage parses a full GTDB classification string such as
// "d__Bacteria;p__Firmicutes;...;s__Bacillus subtilis" into its typed
// form. The string must contain exactly seven semicolon-delimited
// fields carrying the rank prefixes in fixed order; any label may be
// empty.
func ParseLineage(s string) (Lineage, error) {
	var l Lineage
	parts := strings.Split(s, ";")
	if len(parts) != NumRanks {
		return l, fmt.Errorf(
			"lineage has %d ranks, want %d: %q", len(parts), NumRanks, s,
		)
	}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		prefix := Rank(i).Prefix()
		if !strings.HasPrefix(part, prefix) {
			return l, fmt.Errorf(
				"rank %d is %q, want %q prefix: %q", i+1, part, prefix, s,
			)
		}
		l[i] = strings.TrimSpace(strings.TrimPrefix(part, prefix))
	}
	return l, nil
}

// String reconstructs the canonical GTDB classification string.
func (l Lineage) String() string {
	parts := make([]string, NumRanks)
	for i := range l {
		parts[i] = Rank(i).Prefix() + l[i]
	}
	return strings.Join(parts, ";")
}

// Label returns the raw label at the given rank.
func (l Lineage) Label(r Rank) string {
	return l[r]
}

// PathSegments returns the seven directory segments for the lineage,
// sanitized for filesystem use. Empty labels become the Unclassified
// placeholder so the depth is always NumRanks.
func (l Lineage) PathSegments() []string {
	segs := make([]string, NumRanks)
	for i, label := range l {
		segs[i] = SanitizeLabel(label)
	}
	return segs
}

// FlatSegment returns the single directory segment used in flat
// materialization mode: the rank prefix followed by the sanitized
// label, e.g. "s__Bacillus subtilis".
func (l Lineage) FlatSegment(r Rank) string {
	return r.Prefix() + SanitizeLabel(l[r])
}

// SanitizeLabel converts a rank label into a safe directory segment:
// characters that are illegal in paths become underscores, and an
// empty label collapses to the Unclassified placeholder. Spaces are
// legal and survive, so species directories keep their binomial form.
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return Unclassified
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('_')
		case r < 0x20:
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
