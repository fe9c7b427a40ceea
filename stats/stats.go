package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// Runtime assumed for records whose export carries none.
const fallbackRuntimeMinutes = 120

const topDirectorsLimit = 10

// Compute derives every projection from the given record set. An empty set
// yields empty slices and absent scalars, never an error.
func Compute(movies []models.Movie) models.Stats {
	return models.Stats{
		Basic:     basicStats(movies),
		Genres:    genreDistribution(movies),
		Ratings:   ratingDistribution(movies),
		Timeline:  watchTimeline(movies),
		Directors: topDirectors(movies),
		Decades:   decadeBreakdown(movies),
	}
}

func basicStats(movies []models.Movie) models.BasicStats {
	stats := models.BasicStats{Total: len(movies)}

	totalMinutes := 0
	ratingSum := 0.0
	for _, m := range movies {
		if m.RuntimeMinutes > 0 {
			totalMinutes += m.RuntimeMinutes
		} else {
			totalMinutes += fallbackRuntimeMinutes
		}
		if m.Rated() {
			ratingSum += m.Rating
			stats.RatedCount++
		}
		if m.WatchedDate != "" {
			// ISO dates order lexicographically, so min/max is chronological.
			if stats.FirstWatch == "" || m.WatchedDate < stats.FirstWatch {
				stats.FirstWatch = m.WatchedDate
			}
			if m.WatchedDate > stats.LastWatch {
				stats.LastWatch = m.WatchedDate
			}
		}
	}

	stats.EstimatedHours = int(math.Round(float64(totalMinutes) / 60))
	if stats.RatedCount > 0 {
		avg := round2(ratingSum / float64(stats.RatedCount))
		stats.AvgRating = &avg
	}
	return stats
}

// genreDistribution counts records per genre; a record with N genres lands in
// N buckets. Sorted descending by count, ties keep first-seen order.
func genreDistribution(movies []models.Movie) []models.GenreCount {
	counts := make(map[string]int)
	var order []string
	for _, m := range movies {
		for _, g := range m.Genres {
			if _, seen := counts[g]; !seen {
				order = append(order, g)
			}
			counts[g]++
		}
	}

	distribution := make([]models.GenreCount, 0, len(order))
	for _, g := range order {
		distribution = append(distribution, models.GenreCount{Genre: g, Count: counts[g]})
	}
	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})
	return distribution
}

// ratingDistribution groups rated records into buckets, dispatching the
// bucket width on each record's own source: Letterboxd ratings snap to the
// nearest half step, IMDb ratings to the nearest whole number. Sorted
// ascending by bucket value.
func ratingDistribution(movies []models.Movie) []models.RatingBucket {
	rated := filter(movies, models.Movie.Rated)
	if len(rated) == 0 {
		return nil
	}

	counts := make(map[float64]int)
	for _, m := range rated {
		counts[ratingBucket(m)]++
	}

	buckets := make([]models.RatingBucket, 0, len(counts))
	for stars, count := range counts {
		buckets = append(buckets, models.RatingBucket{
			Stars:      stars,
			Count:      count,
			Percentage: percentage(count, len(rated)),
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Stars < buckets[j].Stars })
	return buckets
}

func ratingBucket(m models.Movie) float64 {
	if m.Source == models.SourceLetterboxd {
		return math.Round(m.Rating*2) / 2
	}
	return math.Round(m.Rating)
}

// watchTimeline counts records per YYYY-MM of the watched date, sorted
// chronologically. Months without watches are absent here; FillTimeline
// expands the gaps for chart consumers.
func watchTimeline(movies []models.Movie) []models.MonthCount {
	counts := make(map[string]int)
	for _, m := range movies {
		if len(m.WatchedDate) < 7 {
			continue
		}
		counts[m.WatchedDate[:7]]++
	}

	timeline := make([]models.MonthCount, 0, len(counts))
	for month, count := range counts {
		timeline = append(timeline, models.MonthCount{Month: month, Count: count})
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Month < timeline[j].Month })
	return timeline
}

type directorAccumulator struct {
	films      int
	ratingSum  float64
	ratedCount int
}

// topDirectors credits every comma-joined name on a record independently,
// then ranks by film count. Ties keep first-seen order; the list is cut to
// the top ten.
func topDirectors(movies []models.Movie) []models.DirectorStat {
	accumulators := make(map[string]*directorAccumulator)
	var order []string

	for _, m := range movies {
		if m.Director == "" {
			continue
		}
		for _, name := range splitNames(m.Director) {
			acc, seen := accumulators[name]
			if !seen {
				acc = &directorAccumulator{}
				accumulators[name] = acc
				order = append(order, name)
			}
			acc.films++
			if m.Rated() {
				acc.ratingSum += m.Rating
				acc.ratedCount++
			}
		}
	}

	directors := make([]models.DirectorStat, 0, len(order))
	for _, name := range order {
		acc := accumulators[name]
		stat := models.DirectorStat{Name: name, Films: acc.films}
		if acc.ratedCount > 0 {
			avg := round1(acc.ratingSum / float64(acc.ratedCount))
			stat.AvgRating = &avg
		}
		directors = append(directors, stat)
	}

	sort.SliceStable(directors, func(i, j int) bool {
		return directors[i].Films > directors[j].Films
	})
	if len(directors) > topDirectorsLimit {
		directors = directors[:topDirectorsLimit]
	}
	return directors
}

func splitNames(joined string) []string {
	parts := strings.Split(joined, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// decadeBreakdown groups records with a release year by decade, ascending.
// Percentages are of the records that carry a year.
func decadeBreakdown(movies []models.Movie) []models.DecadeBucket {
	withYear := filter(movies, func(m models.Movie) bool { return m.Year > 0 })
	if len(withYear) == 0 {
		return nil
	}

	counts := make(map[int]int)
	for _, m := range withYear {
		counts[m.Year/10*10]++
	}

	decades := make([]models.DecadeBucket, 0, len(counts))
	for decade, count := range counts {
		decades = append(decades, models.DecadeBucket{
			Decade:     decade,
			Label:      fmt.Sprintf("%ds", decade),
			Count:      count,
			Percentage: percentage(count, len(withYear)),
		})
	}
	sort.Slice(decades, func(i, j int) bool { return decades[i].Decade < decades[j].Decade })
	return decades
}

// percentage rounds half away from zero.
func percentage(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
