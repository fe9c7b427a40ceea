package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// ErrUnrecognizedFormat means the headers matched neither known export
// schema. Nothing is ingested in that case.
var ErrUnrecognizedFormat = errors.New("unrecognized export format: headers match neither Letterboxd nor IMDb")

// MissingColumnsError reports which required columns a detected schema is
// lacking. The caller must not substitute defaults for them.
type MissingColumnsError struct {
	Source  models.Source
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s export is missing required columns: %s", e.Source, strings.Join(e.Columns, ", "))
}

// requirement is one required column; any of the alternatives satisfies it,
// and the first one names it in diagnostics.
type requirement struct {
	alternatives []string
}

func (r requirement) name() string { return r.alternatives[0] }

var requiredColumns = map[models.Source][]requirement{
	models.SourceLetterboxd: {
		{alternatives: []string{"Name", "Title"}},
		{alternatives: []string{"Year"}},
		{alternatives: []string{"Rating"}},
	},
	models.SourceIMDb: {
		{alternatives: []string{"Title", "Primary Title"}},
		{alternatives: []string{"Year"}},
		{alternatives: []string{"Your Rating"}},
		{alternatives: []string{"Date Rated"}},
		{alternatives: []string{"Genres"}},
	},
}

// MissingColumns returns the required columns absent from headers for the
// given source, in schema order. An empty result means the batch may proceed
// to normalization. Header comparison is case-insensitive.
func MissingColumns(headers []string, source models.Source) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[strings.ToLower(strings.TrimSpace(h))] = true
	}

	var missing []string
	for _, req := range requiredColumns[source] {
		satisfied := false
		for _, alt := range req.alternatives {
			if present[strings.ToLower(alt)] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			missing = append(missing, req.name())
		}
	}
	return missing
}
