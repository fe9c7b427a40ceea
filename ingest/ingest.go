package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// Result is a successful ingestion: the detected source and the canonical
// record batch, ready for filtering and aggregation.
type Result struct {
	Source  models.Source  `json:"source"`
	Records []models.Movie `json:"records"`
}

// FromReader runs the full pipeline over CSV text: read, detect, validate,
// normalize. Failures are ErrUnrecognizedFormat, *MissingColumnsError, or a
// wrapped CSV read error; there is no partial ingestion.
func FromReader(r io.Reader) (*Result, error) {
	start := time.Now()

	reader, err := NewExportReader(r)
	if err != nil {
		return nil, err
	}

	source := DetectSource(reader.Headers())
	if source == models.SourceUnknown {
		return nil, ErrUnrecognizedFormat
	}

	if missing := MissingColumns(reader.Headers(), source); len(missing) > 0 {
		return nil, &MissingColumnsError{Source: source, Columns: missing}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	records := Normalize(rows, source)
	slog.Debug("ingested export",
		slog.String("source", string(source)),
		slog.Int("rows", len(rows)),
		slog.Int("records", len(records)),
		slog.Duration("took", time.Since(start)),
	)

	return &Result{Source: source, Records: records}, nil
}

// File ingests a .csv export from disk.
func File(path string) (*Result, error) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return nil, fmt.Errorf("%s is not a .csv file: expected a Letterboxd or IMDb export", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening export: %w", err)
	}
	defer f.Close()

	return FromReader(f)
}
