package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

func imdbMovie(title string, year int, rating float64, watched, genres, director string) models.Movie {
	m := models.Movie{
		Title:       title,
		Year:        year,
		Rating:      rating,
		WatchedDate: watched,
		Genres:      []string{},
		Director:    director,
		Source:      models.SourceIMDb,
	}
	if genres != "" {
		m.Genres = splitNames(genres)
	}
	return m
}

func TestComputeEndToEnd(t *testing.T) {
	movies := []models.Movie{
		imdbMovie("Inception", 2010, 9, "2021-03-05", "Action, Sci-Fi", "Christopher Nolan"),
		imdbMovie("Arrival", 2016, 8, "2021-03-20", "Sci-Fi", "Denis Villeneuve"),
	}

	st := Compute(movies)

	require.Equal(t, 2, st.Basic.Total)
	require.Equal(t, 2, st.Basic.RatedCount)
	require.NotNil(t, st.Basic.AvgRating)
	require.Equal(t, 8.5, *st.Basic.AvgRating)
	require.Equal(t, 4, st.Basic.EstimatedHours) // 2x 120-minute fallback
	require.Equal(t, "2021-03-05", st.Basic.FirstWatch)
	require.Equal(t, "2021-03-20", st.Basic.LastWatch)

	require.Equal(t, []models.GenreCount{
		{Genre: "Sci-Fi", Count: 2},
		{Genre: "Action", Count: 1},
	}, st.Genres)

	require.Equal(t, []models.MonthCount{{Month: "2021-03", Count: 2}}, st.Timeline)
}

func TestComputeEmptySet(t *testing.T) {
	st := Compute(nil)

	require.Zero(t, st.Basic.Total)
	require.Zero(t, st.Basic.EstimatedHours)
	require.Nil(t, st.Basic.AvgRating)
	require.Empty(t, st.Basic.FirstWatch)
	require.Empty(t, st.Genres)
	require.Empty(t, st.Ratings)
	require.Empty(t, st.Timeline)
	require.Empty(t, st.Directors)
	require.Empty(t, st.Decades)
}

func TestBasicStatsRuntimeAwareHours(t *testing.T) {
	movies := []models.Movie{
		{Title: "a", RuntimeMinutes: 90, Source: models.SourceIMDb},
		{Title: "b", Source: models.SourceIMDb}, // falls back to 120
	}
	st := basicStats(movies)
	require.Equal(t, 4, st.EstimatedHours) // round(210/60)
	require.Nil(t, st.AvgRating)
}

func TestGenreDistributionTiesKeepFirstSeenOrder(t *testing.T) {
	movies := []models.Movie{
		{Title: "a", Genres: []string{"Drama", "Comedy"}},
		{Title: "b", Genres: []string{"Drama", "Comedy", "Horror"}},
	}
	dist := genreDistribution(movies)
	require.Equal(t, []models.GenreCount{
		{Genre: "Drama", Count: 2},
		{Genre: "Comedy", Count: 2},
		{Genre: "Horror", Count: 1},
	}, dist)
}

func TestRatingDistributionBucketWidthPerSource(t *testing.T) {
	tests := []struct {
		name     string
		movies   []models.Movie
		expected []models.RatingBucket
	}{
		{
			name: "imdb snaps to whole numbers",
			movies: []models.Movie{
				{Title: "a", Rating: 7, Source: models.SourceIMDb},
				{Title: "b", Rating: 7, Source: models.SourceIMDb},
				{Title: "c", Rating: 9, Source: models.SourceIMDb},
				{Title: "d", Source: models.SourceIMDb}, // unrated, excluded
			},
			expected: []models.RatingBucket{
				{Stars: 7, Count: 2, Percentage: 67},
				{Stars: 9, Count: 1, Percentage: 33},
			},
		},
		{
			name: "letterboxd snaps to half steps",
			movies: []models.Movie{
				{Title: "a", Rating: 8.2, Source: models.SourceLetterboxd},
				{Title: "b", Rating: 8.4, Source: models.SourceLetterboxd},
			},
			expected: []models.RatingBucket{
				{Stars: 8, Count: 1, Percentage: 50},
				{Stars: 8.5, Count: 1, Percentage: 50},
			},
		},
		{
			name:     "no rated records",
			movies:   []models.Movie{{Title: "a", Source: models.SourceIMDb}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ratingDistribution(tt.movies))
		})
	}
}

func TestRatingDistributionPercentagesSumNear100(t *testing.T) {
	movies := []models.Movie{
		{Title: "a", Rating: 5, Source: models.SourceIMDb},
		{Title: "b", Rating: 6, Source: models.SourceIMDb},
		{Title: "c", Rating: 7, Source: models.SourceIMDb},
	}
	buckets := ratingDistribution(movies)

	sum := 0
	for _, b := range buckets {
		sum += b.Percentage
	}
	tolerance := len(buckets) - 1
	require.GreaterOrEqual(t, sum, 100-tolerance)
	require.LessOrEqual(t, sum, 100+tolerance)
}

func TestTopDirectorsCreditsEveryName(t *testing.T) {
	movies := []models.Movie{
		imdbMovie("Speed Racer", 2008, 8, "", "", "A, B"),
		imdbMovie("Bound", 1996, 0, "", "", "A"),
	}
	directors := topDirectors(movies)

	require.Len(t, directors, 2)
	require.Equal(t, "A", directors[0].Name)
	require.Equal(t, 2, directors[0].Films)
	require.NotNil(t, directors[0].AvgRating)
	require.Equal(t, 8.0, *directors[0].AvgRating) // unrated film not averaged

	require.Equal(t, "B", directors[1].Name)
	require.Equal(t, 1, directors[1].Films)
	require.Equal(t, 8.0, *directors[1].AvgRating)
}

func TestTopDirectorsTruncatesToTen(t *testing.T) {
	var movies []models.Movie
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, n := range names {
		movies = append(movies, imdbMovie(n, 0, 0, "", "", n))
	}
	directors := topDirectors(movies)
	require.Len(t, directors, 10)
	// all tied at one film, so first-seen order holds
	require.Equal(t, "a", directors[0].Name)
	require.Equal(t, "j", directors[9].Name)
}

func TestDecadeBreakdown(t *testing.T) {
	movies := []models.Movie{
		{Title: "a", Year: 1994},
		{Title: "b", Year: 1999},
		{Title: "c", Year: 2005},
		{Title: "d"}, // no year, excluded
	}
	decades := decadeBreakdown(movies)

	require.Equal(t, []models.DecadeBucket{
		{Decade: 1990, Label: "1990s", Count: 2, Percentage: 67},
		{Decade: 2000, Label: "2000s", Count: 1, Percentage: 33},
	}, decades)
}

func TestWatchTimelineSortsChronologically(t *testing.T) {
	movies := []models.Movie{
		{Title: "a", WatchedDate: "2021-12-31"},
		{Title: "b", WatchedDate: "2021-01-05"},
		{Title: "c", WatchedDate: "2021-01-20"},
		{Title: "d"},
	}
	timeline := watchTimeline(movies)
	require.Equal(t, []models.MonthCount{
		{Month: "2021-01", Count: 2},
		{Month: "2021-12", Count: 1},
	}, timeline)
}
