package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

func TestMissingColumns(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		source   models.Source
		expected []string
	}{
		{
			name:     "complete letterboxd export",
			headers:  []string{"Date", "Name", "Year", "Letterboxd URI", "Rating", "Rewatch"},
			source:   models.SourceLetterboxd,
			expected: nil,
		},
		{
			name:     "letterboxd with Title instead of Name",
			headers:  []string{"Title", "Year", "Rating", "Rewatch"},
			source:   models.SourceLetterboxd,
			expected: nil,
		},
		{
			name:     "letterboxd missing rating",
			headers:  []string{"Name", "Year", "Rewatch"},
			source:   models.SourceLetterboxd,
			expected: []string{"Rating"},
		},
		{
			name:     "complete imdb export",
			headers:  []string{"Const", "Title", "Year", "Your Rating", "Date Rated", "Genres", "Directors"},
			source:   models.SourceIMDb,
			expected: nil,
		},
		{
			name:     "imdb missing several columns",
			headers:  []string{"Const", "Title", "Your Rating"},
			source:   models.SourceIMDb,
			expected: []string{"Year", "Date Rated", "Genres"},
		},
		{
			name:     "case insensitive headers",
			headers:  []string{"name", "YEAR", "rating"},
			source:   models.SourceLetterboxd,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, MissingColumns(tt.headers, tt.source))
		})
	}
}

func TestMissingColumnsErrorMessage(t *testing.T) {
	err := &MissingColumnsError{
		Source:  models.SourceIMDb,
		Columns: []string{"Year", "Genres"},
	}
	require.EqualError(t, err, "imdb export is missing required columns: Year, Genres")
}
