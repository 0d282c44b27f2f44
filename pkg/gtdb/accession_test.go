package gtdb_test

import (
	"testing"

	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripSourcePrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "refseq", input: "RS_GCF_000005845.2", want: "GCF_000005845.2"},
		{name: "genbank", input: "GB_GCA_000469605.1", want: "GCA_000469605.1"},
		{name: "bare", input: "GCA_000469605.1", want: "GCA_000469605.1"},
		{name: "unrelated", input: "XYZ_1", want: "XYZ_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gtdb.StripSourcePrefix(tt.input))
		})
	}
}

func TestGenomeURL(t *testing.T) {
	url, err := gtdb.GenomeURL("GCF_034719275.1", "ASM3471927v1")
	require.NoError(t, err)

	want := "https://ftp.ncbi.nlm.nih.gov/genomes/all/GCF/034/719/275/" +
		"GCF_034719275.1_ASM3471927v1/" +
		"GCF_034719275.1_ASM3471927v1_genomic.fna.gz"
	assert.Equal(t, want, url)
}

func TestGenomeURLStripsSourcePrefix(t *testing.T) {
	plain, err := gtdb.GenomeURL("GCA_000469605.1", "ASM46960v1")
	require.NoError(t, err)
	prefixed, err := gtdb.GenomeURL("GB_GCA_000469605.1", "ASM46960v1")
	require.NoError(t, err)

	assert.Equal(t, plain, prefixed, "GTDB source prefix does not change the URL")
}

func TestGenomeURLErrors(t *testing.T) {
	tests := []struct {
		name      string
		accession string
		assembly  string
	}{
		{name: "unknown format", accession: "XXX_034719275.1", assembly: "ASM1"},
		{name: "short numeric id", accession: "GCA_123.1", assembly: "ASM1"},
		{name: "missing assembly name", accession: "GCA_000469605.1", assembly: ""},
		{name: "empty accession", accession: "", assembly: "ASM1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gtdb.GenomeURL(tt.accession, tt.assembly)
			assert.Error(t, err)
		})
	}
}

func TestGenomeFilename(t *testing.T) {
	name, err := gtdb.GenomeFilename("GB_GCA_000469605.1", "ASM46960v1")
	require.NoError(t, err)
	assert.Equal(t, "GCA_000469605.1_ASM46960v1_genomic.fna.gz", name)

	_, err = gtdb.GenomeFilename("GCA_000469605.1", "")
	assert.Error(t, err)
}
