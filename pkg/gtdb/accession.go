package gtdb

import (
	"fmt"
	"strings"
)

// NCBIAssemblyBase is the root of the NCBI assembly archive from which
// genome files are fetched. Catalog files come from GTDB mirrors, but
// the assemblies themselves live in the NCBI archive, addressed by
// accession-derived path segments.
const NCBIAssemblyBase = "https://ftp.ncbi.nlm.nih.gov/genomes/all"

// StripSourcePrefix removes the GTDB source prefix ("RS_" for RefSeq,
// "GB_" for GenBank) from an accession, leaving the bare NCBI assembly
// accession. Accessions without a known prefix are returned unchanged.
func StripSourcePrefix(accession string) string {
	switch {
	case strings.HasPrefix(accession, "RS_"):
		return accession[3:]
	case strings.HasPrefix(accession, "GB_"):
		return accession[3:]
	}
	return accession
}

// splitAccession breaks a bare assembly accession such as
// "GCF_034719275.1" into its database prefix ("GCF") and the three
// digit-triplet path segments NCBI uses ("034", "719", "275").
func splitAccession(accession string) (prefix string, triplets [3]string, err error) {
	if !strings.HasPrefix(accession, "GCA_") && !strings.HasPrefix(accession, "GCF_") {
		return "", triplets, fmt.Errorf("unknown accession format: %q", accession)
	}
	prefix = accession[:3]
	numeric := accession[4:]
	if i := strings.IndexByte(numeric, '.'); i >= 0 {
		numeric = numeric[:i]
	}
	if len(numeric) < 7 {
		return "", triplets, fmt.Errorf(
			"accession numeric id too short: %q", accession,
		)
	}
	triplets = [3]string{numeric[:3], numeric[3:6], numeric[6:]}
	return prefix, triplets, nil
}

// GenomeFilename derives the expected genome file name for an
// accession and its NCBI assembly name, following the archive's naming
// convention: "<accession>_<assembly>_genomic.fna.gz".
func GenomeFilename(accession, assemblyName string) (string, error) {
	acc := StripSourcePrefix(accession)
	if _, _, err := splitAccession(acc); err != nil {
		return "", err
	}
	if assemblyName == "" {
		return "", fmt.Errorf("missing assembly name for %q", accession)
	}
	return fmt.Sprintf("%s_%s_genomic.fna.gz", acc, assemblyName), nil
}

// GenomeURL derives the NCBI download URL for an accession and its
// assembly name. The path groups the numeric accession id into digit
// triplets, e.g. GCF_034719275.1 with assembly ASM3471927v1 yields
// .../all/GCF/034/719/275/GCF_034719275.1_ASM3471927v1/
// GCF_034719275.1_ASM3471927v1_genomic.fna.gz.
func GenomeURL(accession, assemblyName string) (string, error) {
	acc := StripSourcePrefix(accession)
	prefix, triplets, err := splitAccession(acc)
	if err != nil {
		return "", err
	}
	if assemblyName == "" {
		return "", fmt.Errorf("missing assembly name for %q", accession)
	}
	dir := fmt.Sprintf("%s/%s/%s/%s/%s/%s_%s",
		NCBIAssemblyBase, prefix,
		triplets[0], triplets[1], triplets[2],
		acc, assemblyName,
	)
	return fmt.Sprintf("%s/%s_%s_genomic.fna.gz", dir, acc, assemblyName), nil
}
