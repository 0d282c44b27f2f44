package iocatalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gtdbfetch/gtdbfetch/pkg/catalog"
	"github.com/gtdbfetch/gtdbfetch/pkg/gtdb"
	"github.com/klauspost/pgzip"
)

// columns holds the indices of the catalog columns we care about,
// resolved from the header row. Column order and the presence of other
// columns vary between releases.
type columns struct {
	accession int
	lineage   int
	// assembly is -1 when the catalog carries no assembly name column.
	assembly int
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{accession: -1, lineage: -1, assembly: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "accession":
			cols.accession = i
		case "Genome":
			// fallback used by some derived catalogs
			if cols.accession < 0 {
				cols.accession = i
			}
		case "gtdb_taxonomy":
			cols.lineage = i
		case "classification":
			if cols.lineage < 0 {
				cols.lineage = i
			}
		case "ncbi_assembly_name":
			cols.assembly = i
		}
	}
	if cols.accession < 0 {
		return cols, errors.New("no accession column in header")
	}
	if cols.lineage < 0 {
		return cols, errors.New("no taxonomy column in header")
	}
	return cols, nil
}

// Read streams catalog rows to fn in file order, decompressing on the
// fly. The whole catalog never sits in memory. Malformed rows are
// counted and skipped; an error from fn aborts the read unchanged.
func (c *iocatalog) Read(
	path string,
	fn func(catalog.Row) error,
) (catalog.ReadStats, error) {
	var stats catalog.ReadStats

	f, err := os.Open(path)
	if err != nil {
		return stats, ReadFileError(path, err)
	}
	defer f.Close()

	gz, err := pgzip.NewReader(bufio.NewReader(f))
	if err != nil {
		return stats, CatalogParseError(path, err)
	}
	defer gz.Close()

	r := csv.NewReader(gz)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return stats, CatalogParseError(path, err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return stats, CatalogParseError(path, err)
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, CatalogParseError(path, err)
		}

		row, ok := parseRow(rec, cols)
		if !ok {
			stats.Skipped++
			continue
		}

		if err = fn(row); err != nil {
			return stats, err
		}
		stats.Rows++
	}

	if stats.Skipped > 0 {
		slog.Warn("Skipped malformed catalog rows",
			"skipped", stats.Skipped, "path", path)
	}
	return stats, nil
}

func parseRow(rec []string, cols columns) (catalog.Row, bool) {
	var row catalog.Row

	if cols.accession >= len(rec) || cols.lineage >= len(rec) {
		slog.Debug("Skipping short catalog row", "fields", len(rec))
		return row, false
	}

	row.Accession = strings.TrimSpace(rec[cols.accession])
	if row.Accession == "" {
		return row, false
	}

	lin, err := gtdb.ParseLineage(rec[cols.lineage])
	if err != nil {
		slog.Debug("Skipping malformed catalog row",
			"accession", row.Accession, "reason", err)
		return row, false
	}
	row.Lineage = lin

	if cols.assembly >= 0 && cols.assembly < len(rec) {
		row.AssemblyName = strings.TrimSpace(rec[cols.assembly])
	}
	return row, true
}
