package ingest

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// Normalize maps a validated row batch into canonical Movies. Rows whose
// title-bearing columns are all blank are dropped; every other anomaly only
// degrades the affected field to absent.
func Normalize(rows []models.RawRow, source models.Source) []models.Movie {
	movies := make([]models.Movie, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		var movie models.Movie
		var ok bool
		switch source {
		case models.SourceLetterboxd:
			movie, ok = normalizeLetterboxd(row)
		case models.SourceIMDb:
			movie, ok = normalizeIMDb(row)
		default:
			return nil
		}
		if !ok {
			dropped++
			continue
		}
		movies = append(movies, movie)
	}

	if dropped > 0 {
		slog.Warn("dropped rows without a title", slog.Int("dropped", dropped), slog.String("source", string(source)))
	}
	return movies
}

func normalizeLetterboxd(row models.RawRow) (models.Movie, bool) {
	title := field(row, "Name", "Title")
	if title == "" {
		return models.Movie{}, false
	}

	return models.Movie{
		Title:       title,
		Year:        parseYear(field(row, "Year")),
		Rating:      convertLetterboxdRating(field(row, "Rating")),
		WatchedDate: parseDate(field(row, "Watched Date", "Date")),
		Rewatch:     strings.EqualFold(field(row, "Rewatch"), "Yes"),
		Genres:      []string{},
		Source:      models.SourceLetterboxd,
	}, true
}

func normalizeIMDb(row models.RawRow) (models.Movie, bool) {
	title := field(row, "Title", "Primary Title")
	if title == "" {
		return models.Movie{}, false
	}

	return models.Movie{
		Title:       title,
		Year:        parseYear(field(row, "Year")),
		Rating:      parseRating(field(row, "Your Rating")),
		WatchedDate: parseDate(field(row, "Date Rated")),
		Genres:      splitList(field(row, "Genres")),
		// Kept unsplit; a row can credit several comma-joined directors and
		// only the director projection decides how to count them.
		Director:       strings.TrimSpace(field(row, "Directors")),
		TitleType:      strings.TrimSpace(field(row, "Title Type")),
		RuntimeMinutes: parseRuntime(field(row, "Runtime (mins)")),
		Source:         models.SourceIMDb,
	}, true
}

// field returns the first non-blank value among the named columns, matching
// column names case-insensitively.
func field(row models.RawRow, columns ...string) string {
	for _, col := range columns {
		if v, ok := row[col]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	for _, col := range columns {
		for k, v := range row {
			if strings.EqualFold(strings.TrimSpace(k), col) && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// convertLetterboxdRating rescales the native 0.5-5.0 half-star value onto
// the unified 1-10 scale (x2, one decimal). Unparsable or out-of-range input
// resolves to absent.
func convertLetterboxdRating(raw string) float64 {
	if raw == "" {
		return 0
	}
	native, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	rating := math.Round(native*2*10) / 10
	if rating < 1 || rating > 10 {
		return 0
	}
	return rating
}

// parseRating reads an already 1-10 scaled rating; absent when unparsable or
// outside the scale.
func parseRating(raw string) float64 {
	if raw == "" {
		return 0
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil || rating < 1 || rating > 10 {
		return 0
	}
	return rating
}

func parseYear(raw string) int {
	if raw == "" {
		return 0
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0
	}
	return year
}

func parseRuntime(raw string) int {
	if raw == "" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0
	}
	return minutes
}

// parseDate keeps a YYYY-MM-DD string only when it is a real calendar date.
func parseDate(raw string) string {
	if raw == "" {
		return ""
	}
	if _, err := parseISODate(raw); err != nil {
		return ""
	}
	return raw
}

func parseISODate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}

// splitList splits a comma-delimited list, trimming whitespace and dropping
// empty entries while preserving order.
func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
