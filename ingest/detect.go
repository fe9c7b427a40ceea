// Package ingest turns a raw CSV export into the canonical record batch:
// it detects which service produced the file, validates that the schema
// carries the required columns, and normalizes every row into a Movie.
package ingest

import (
	"strings"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// DetectSource sniffs which service exported the CSV by looking at the
// column headers. Letterboxd markers win over IMDb markers; comparison is
// case-insensitive.
func DetectSource(headers []string) models.Source {
	lowered := make(map[string]bool, len(headers))
	for _, h := range headers {
		lowered[strings.ToLower(strings.TrimSpace(h))] = true
	}

	if lowered["letterboxd uri"] || lowered["rewatch"] {
		return models.SourceLetterboxd
	}
	if lowered["your rating"] || lowered["imdb rating"] || lowered["const"] {
		return models.SourceIMDb
	}
	return models.SourceUnknown
}
