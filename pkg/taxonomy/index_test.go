package taxonomy_test

import (
	"testing"

	"github.com/gtdbfetch/gtdbfetch/pkg/catalog"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"github.com/gtdbfetch/gtdbfetch/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clostridiumLineage = "d__Bacteria;p__Firmicutes;c__Clostridia;" +
		"o__Clostridiales;f__Clostridiaceae;g__Clostridium;" +
		"s__Clostridium cuniculi"
	bacillusLineage = "d__Bacteria;p__Firmicutes;c__Bacilli;" +
		"o__Bacillales;f__Bacillaceae;g__Bacillus;s__Bacillus subtilis"
	methanoLineage = "d__Archaea;p__Methanobacteriota;c__Methanobacteria;" +
		"o__Methanobacteriales;f__Methanobacteriaceae;" +
		"g__Methanobrevibacter;s__Methanobrevibacter smithii"
)

func row(t *testing.T, acc, lineage, asm string) catalog.Row {
	t.Helper()
	lin, err := gtdb.ParseLineage(lineage)
	require.NoError(t, err)
	return catalog.Row{Accession: acc, Lineage: lin, AssemblyName: asm}
}

func testIndex(t *testing.T) *taxonomy.Index {
	t.Helper()
	ix := taxonomy.New()
	ix.Add(row(t, "GCA_000001.1", clostridiumLineage, "ASM1v1"))
	ix.Add(row(t, "GCA_000002.1", bacillusLineage, "ASM2v1"))
	ix.Add(row(t, "GCA_000003.1", methanoLineage, ""))
	return ix
}

func TestIndexAccessors(t *testing.T) {
	ix := testIndex(t)

	assert.Equal(t, 3, ix.Len())

	lin, ok := ix.Lineage("GCA_000001.1")
	require.True(t, ok)
	assert.Equal(t, "Clostridium cuniculi", lin.Label(gtdb.Species))

	_, ok = ix.Lineage("GCA_999999.1")
	assert.False(t, ok)

	asm, ok := ix.AssemblyName("GCA_000002.1")
	require.True(t, ok)
	assert.Equal(t, "ASM2v1", asm)

	_, ok = ix.AssemblyName("GCA_000003.1")
	assert.False(t, ok, "row without assembly name")
}

func TestResolveBareName(t *testing.T) {
	ix := testIndex(t)

	accs, err := ix.Resolve("Firmicutes")
	require.NoError(t, err)
	assert.Equal(t, []string{"GCA_000001.1", "GCA_000002.1"}, accs)
}

func TestResolveBareNameNormalized(t *testing.T) {
	ix := testIndex(t)

	for _, q := range []string{"firmicutes", "FIRMICUTES", "  Firmicutes  "} {
		accs, err := ix.Resolve(q)
		require.NoError(t, err, q)
		assert.Equal(t, []string{"GCA_000001.1", "GCA_000002.1"}, accs, q)
	}
}

func TestResolvePrefixedBareName(t *testing.T) {
	ix := testIndex(t)

	accs, err := ix.Resolve("s__Bacillus subtilis")
	require.NoError(t, err)
	assert.Equal(t, []string{"GCA_000002.1"}, accs)

	accs, err = ix.Resolve("g__Clostridium")
	require.NoError(t, err)
	assert.Equal(t, []string{"GCA_000001.1"}, accs)
}

func TestResolveFullLineage(t *testing.T) {
	ix := testIndex(t)

	accs, err := ix.Resolve(clostridiumLineage)
	require.NoError(t, err)
	assert.Equal(t, []string{"GCA_000001.1"}, accs)
}

func TestResolveFullLineageCaseSensitive(t *testing.T) {
	ix := testIndex(t)

	lowered := "d__bacteria;p__firmicutes;c__clostridia;" +
		"o__clostridiales;f__clostridiaceae;g__clostridium;" +
		"s__clostridium cuniculi"
	_, err := ix.Resolve(lowered)
	assert.Error(t, err, "full lineage matching does not fold case")
}

func TestResolveNotFound(t *testing.T) {
	ix := testIndex(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "unknown name", query: "Nonexistentphylum"},
		{name: "partial lineage path", query: "d__Bacteria;p__Firmicutes"},
		{name: "empty query", query: ""},
		{name: "blank query", query: "   "},
		{
			name: "well-formed lineage absent from catalog",
			query: "d__Bacteria;p__Firmicutes;c__Clostridia;" +
				"o__Clostridiales;f__Clostridiaceae;g__Clostridium;" +
				"s__Clostridium fictum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ix.Resolve(tt.query)
			assert.Error(t, err)
		})
	}
}

func TestResolveAmbiguousNameUnion(t *testing.T) {
	// "Coprothermobacter" sits at two ranks in different lineages; a
	// bare-name query returns the union instead of guessing a rank.
	ix := taxonomy.New()
	ix.Add(row(t, "GCA_000011.1",
		"d__Bacteria;p__Firmicutes;c__Bacilli;o__Bacillales;"+
			"f__Coprothermobacter;g__Solum;s__Solum primum", "A1"))
	ix.Add(row(t, "GCA_000012.1",
		"d__Bacteria;p__Coprothermobacterota;c__Coprothermobacteria;"+
			"o__Coprothermobacterales;f__Coprothermobacteraceae;"+
			"g__Coprothermobacter;s__Coprothermobacter proteolyticus", "A2"))

	accs, err := ix.Resolve("Coprothermobacter")
	require.NoError(t, err)
	assert.Equal(t, []string{"GCA_000011.1", "GCA_000012.1"}, accs)
}

func TestResolveDeduplicates(t *testing.T) {
	// The same label at two ranks of one lineage must not double the
	// accession in the result.
	ix := taxonomy.New()
	ix.Add(row(t, "GCA_000021.1",
		"d__Bacteria;p__Firmicutes;c__Sama;o__Sama;f__Samaceae;"+
			"g__Samum;s__Samum unicum", ""))

	accs, err := ix.Resolve("Sama")
	require.NoError(t, err)
	assert.Equal(t, []string{"GCA_000021.1"}, accs)
}

func TestResolveRoundTrip(t *testing.T) {
	ix := testIndex(t)

	for _, acc := range []string{"GCA_000001.1", "GCA_000002.1", "GCA_000003.1"} {
		lin, ok := ix.Lineage(acc)
		require.True(t, ok)

		accs, err := ix.Resolve(lin.String())
		require.NoError(t, err, acc)
		assert.Contains(t, accs, acc,
			"resolving an accession's own lineage finds it")
	}
}

func TestResolveSubsetProperty(t *testing.T) {
	ix := testIndex(t)

	parent, err := ix.Resolve("Firmicutes")
	require.NoError(t, err)
	child, err := ix.Resolve(clostridiumLineage)
	require.NoError(t, err)

	assert.Subset(t, parent, child,
		"full-lineage results nest under the bare parent name")
}
