package models

// Source identifies which service produced the export a record came from.
type Source string

const (
	SourceLetterboxd Source = "letterboxd"
	SourceIMDb       Source = "imdb"
	SourceUnknown    Source = "unknown"
)

// RawRow is one CSV line keyed by column header, as delivered by the reader.
// It is consumed entirely during normalization and never kept around.
type RawRow map[string]string

// Movie is the canonical record every projection operates on. Zero values
// mean "absent" for Year, Rating, WatchedDate, Director, TitleType and
// RuntimeMinutes; a Movie always has a non-empty Title. Ratings live on the
// unified 1-10 scale regardless of source.
type Movie struct {
	Title          string   `json:"title"`
	Year           int      `json:"year,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	WatchedDate    string   `json:"watched_date,omitempty"`
	Rewatch        bool     `json:"rewatch"`
	Genres         []string `json:"genres"`
	Director       string   `json:"director,omitempty"`
	TitleType      string   `json:"title_type,omitempty"`
	RuntimeMinutes int      `json:"runtime_minutes,omitempty"`
	Source         Source   `json:"source"`
}

// Rated reports whether the record carries a rating.
func (m Movie) Rated() bool {
	return m.Rating != 0
}

// WatchedYear returns the calendar year of the watched date.
func (m Movie) WatchedYear() (int, bool) {
	if len(m.WatchedDate) < 4 {
		return 0, false
	}
	year := 0
	for _, c := range m.WatchedDate[:4] {
		if c < '0' || c > '9' {
			return 0, false
		}
		year = year*10 + int(c-'0')
	}
	return year, true
}

// HasGenre reports whether the record lists the given genre.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Filters is the constraint object the UI layer hands over; nil/empty fields
// mean "no constraint on that dimension". Year bounds apply to the watched
// year, not the release year.
type Filters struct {
	FromYear  *int     `json:"from_year,omitempty"`
	ToYear    *int     `json:"to_year,omitempty"`
	Genre     string   `json:"genre,omitempty"`
	MinRating *float64 `json:"min_rating,omitempty"`
	TitleType string   `json:"title_type,omitempty"`
}

// Active reports whether any constraint is set.
func (f Filters) Active() bool {
	return f.FromYear != nil || f.ToYear != nil || f.Genre != "" || f.MinRating != nil || f.TitleType != ""
}
