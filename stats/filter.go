// Package stats derives every aggregate projection from a canonical record
// set, along with the filter predicate that selects which records to
// aggregate. Everything here is a pure function; each call recomputes from
// scratch over the full input.
package stats

import (
	"sort"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// Apply selects the records matching every active constraint. A record
// without a watched date fails any active year bound.
func Apply(movies []models.Movie, f models.Filters) []models.Movie {
	if !f.Active() {
		return movies
	}
	return filter(movies, func(m models.Movie) bool { return matches(m, f) })
}

func matches(m models.Movie, f models.Filters) bool {
	if f.FromYear != nil || f.ToYear != nil {
		year, ok := m.WatchedYear()
		if !ok {
			return false
		}
		if f.FromYear != nil && year < *f.FromYear {
			return false
		}
		if f.ToYear != nil && year > *f.ToYear {
			return false
		}
	}
	if f.Genre != "" && !m.HasGenre(f.Genre) {
		return false
	}
	if f.MinRating != nil && (!m.Rated() || m.Rating < *f.MinRating) {
		return false
	}
	if f.TitleType != "" && m.TitleType != f.TitleType {
		return false
	}
	return true
}

// FilterOptions are the values a UI can offer for each filter control,
// discovered from the full (unfiltered) record set.
type FilterOptions struct {
	WatchYears  []int     `json:"watch_years"`
	Genres      []string  `json:"genres"`
	RatingSteps []float64 `json:"rating_steps"`
}

// Options lists distinct watch years ascending, distinct genres sorted
// (IMDb only; Letterboxd exports carry none), and the minimum-rating steps
// of the unified scale.
func Options(movies []models.Movie) FilterOptions {
	yearSet := make(map[int]bool)
	genreSet := make(map[string]bool)
	for _, m := range movies {
		if year, ok := m.WatchedYear(); ok {
			yearSet[year] = true
		}
		for _, g := range m.Genres {
			genreSet[g] = true
		}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	genres := make([]string, 0, len(genreSet))
	for g := range genreSet {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	steps := make([]float64, 0, 10)
	for s := 1; s <= 10; s++ {
		steps = append(steps, float64(s))
	}

	return FilterOptions{WatchYears: years, Genres: genres, RatingSteps: steps}
}

func filter[T any](slice []T, predicate func(T) bool) []T {
	var result []T
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}
