package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

const imdbExport = `Const,Title,Year,Your Rating,Date Rated,Genres,Directors
tt1375666,Inception,2010,9,2021-03-05,"Action, Sci-Fi",Christopher Nolan
tt2543164,Arrival,2016,8,2021-03-20,Sci-Fi,Denis Villeneuve
`

const letterboxdExport = `Date,Name,Year,Letterboxd URI,Rating,Rewatch
2023-01-14,Aftersun,2022,https://boxd.it/abc,4.5,
2023-02-01,Heat,1995,https://boxd.it/def,5,Yes
`

func TestFromReaderIMDb(t *testing.T) {
	result, err := FromReader(strings.NewReader(imdbExport))
	require.NoError(t, err)
	require.Equal(t, models.SourceIMDb, result.Source)
	require.Len(t, result.Records, 2)

	require.Equal(t, "Inception", result.Records[0].Title)
	require.Equal(t, []string{"Action", "Sci-Fi"}, result.Records[0].Genres)
	require.Equal(t, "Arrival", result.Records[1].Title)
	require.Equal(t, 8.0, result.Records[1].Rating)
}

func TestFromReaderLetterboxd(t *testing.T) {
	result, err := FromReader(strings.NewReader(letterboxdExport))
	require.NoError(t, err)
	require.Equal(t, models.SourceLetterboxd, result.Source)
	require.Len(t, result.Records, 2)

	require.Equal(t, 9.0, result.Records[0].Rating)
	require.False(t, result.Records[0].Rewatch)
	require.Equal(t, 10.0, result.Records[1].Rating)
	require.True(t, result.Records[1].Rewatch)
}

func TestFromReaderUnrecognizedFormat(t *testing.T) {
	_, err := FromReader(strings.NewReader("Film,Score\nHeat,10\n"))
	require.ErrorIs(t, err, ErrUnrecognizedFormat)
}

func TestFromReaderMissingColumns(t *testing.T) {
	_, err := FromReader(strings.NewReader("Const,Title,Your Rating\ntt1,Heat,10\n"))

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, models.SourceIMDb, missing.Source)
	require.Equal(t, []string{"Year", "Date Rated", "Genres"}, missing.Columns)
}

func TestFromReaderQuotedFieldWithLineBreak(t *testing.T) {
	export := "Const,Title,Year,Your Rating,Date Rated,Genres\n" +
		"tt1,\"A Very\nLong Title\",2020,7,2021-01-01,Drama\n"
	result, err := FromReader(strings.NewReader(export))
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ratings.csv")
	require.NoError(t, os.WriteFile(path, []byte(imdbExport), 0644))

	result, err := File(path)
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
}

func TestFileRejectsNonCSV(t *testing.T) {
	_, err := File("export.xlsx")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a .csv file")
}
