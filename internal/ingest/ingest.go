// Package ingest parses uploaded lead files (CSV, JSON, XLSX) into leads.
package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/model"
)

// ErrUnsupportedFormat is returned for files that are not CSV, JSON or XLSX.
var ErrUnsupportedFormat = eris.New("ingest: unsupported file format")

// ReadFile parses the lead file at path, choosing a parser by extension.
func ReadFile(ctx context.Context, path string) ([]model.Lead, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: open %s", path)
		}
		defer f.Close() //nolint:errcheck

		if ext == ".csv" {
			return ParseCSV(ctx, f)
		}
		return ParseJSON(ctx, f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "ingest: %q", ext)
	}
}
