package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestApplyYearBounds(t *testing.T) {
	movies := []models.Movie{
		{Title: "in range", WatchedDate: "2020-06-01"},
		{Title: "too early", WatchedDate: "2019-12-31"},
		{Title: "too late", WatchedDate: "2022-01-01"},
		{Title: "undated"},
	}

	filtered := Apply(movies, models.Filters{FromYear: intp(2020), ToYear: intp(2021)})

	require.Len(t, filtered, 1)
	require.Equal(t, "in range", filtered[0].Title)
}

func TestApplyUndatedFailsOpenEndedBound(t *testing.T) {
	movies := []models.Movie{
		{Title: "undated"},
		{Title: "dated", WatchedDate: "2021-05-01"},
	}
	filtered := Apply(movies, models.Filters{FromYear: intp(2000)})
	require.Len(t, filtered, 1)
	require.Equal(t, "dated", filtered[0].Title)
}

func TestApplyCombinesConstraintsWithAnd(t *testing.T) {
	movies := []models.Movie{
		{Title: "match", WatchedDate: "2021-02-03", Genres: []string{"Drama"}, Rating: 8, TitleType: "Movie"},
		{Title: "wrong genre", WatchedDate: "2021-02-03", Genres: []string{"Comedy"}, Rating: 8, TitleType: "Movie"},
		{Title: "too low", WatchedDate: "2021-02-03", Genres: []string{"Drama"}, Rating: 6, TitleType: "Movie"},
		{Title: "unrated", WatchedDate: "2021-02-03", Genres: []string{"Drama"}, TitleType: "Movie"},
		{Title: "wrong type", WatchedDate: "2021-02-03", Genres: []string{"Drama"}, Rating: 8, TitleType: "TV Episode"},
	}

	filtered := Apply(movies, models.Filters{
		FromYear:  intp(2021),
		Genre:     "Drama",
		MinRating: floatp(7),
		TitleType: "Movie",
	})

	require.Len(t, filtered, 1)
	require.Equal(t, "match", filtered[0].Title)
}

func TestApplyNoConstraintsReturnsAll(t *testing.T) {
	movies := []models.Movie{{Title: "a"}, {Title: "b"}}
	require.Equal(t, movies, Apply(movies, models.Filters{}))
}

func TestOptions(t *testing.T) {
	movies := []models.Movie{
		{Title: "a", WatchedDate: "2021-05-01", Genres: []string{"Drama", "Comedy"}},
		{Title: "b", WatchedDate: "2019-01-01", Genres: []string{"Drama"}},
		{Title: "c"},
	}

	opts := Options(movies)
	require.Equal(t, []int{2019, 2021}, opts.WatchYears)
	require.Equal(t, []string{"Comedy", "Drama"}, opts.Genres)
	require.Len(t, opts.RatingSteps, 10)
	require.Equal(t, 1.0, opts.RatingSteps[0])
	require.Equal(t, 10.0, opts.RatingSteps[9])
}
