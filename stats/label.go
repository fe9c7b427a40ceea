package stats

import (
	"strings"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// Label infers the noun describing a record set. Letterboxd only exports
// films; for IMDb the distinct title types present decide, and anything
// mixed or unrecognized falls back to "titles".
func Label(movies []models.Movie, source models.Source) string {
	if source == models.SourceLetterboxd {
		return "films"
	}

	types := make(map[string]bool)
	for _, m := range movies {
		if m.TitleType != "" {
			types[m.TitleType] = true
		}
	}
	if len(types) != 1 {
		return "titles"
	}

	var only string
	for t := range types {
		only = t
	}

	switch strings.ReplaceAll(strings.ToLower(only), " ", "") {
	case "movie", "tvmovie":
		return "films"
	case "tvepisode":
		return "episodes"
	case "tvseries", "tvminiseries":
		return "series"
	case "short":
		return "shorts"
	default:
		return "titles"
	}
}

// Singular returns the count-of-one form of a label. "series" is its own
// singular; everything else drops the trailing s.
func Singular(label string) string {
	if label == "series" {
		return label
	}
	return strings.TrimSuffix(label, "s")
}
