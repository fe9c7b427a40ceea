package models

// BasicStats are the headline numbers for a record set. AvgRating is nil when
// no record is rated; FirstWatch/LastWatch are empty when no record carries a
// watched date.
type BasicStats struct {
	Total          int      `json:"total"`
	EstimatedHours int      `json:"estimated_hours"`
	AvgRating      *float64 `json:"avg_rating"`
	RatedCount     int      `json:"rated_count"`
	FirstWatch     string   `json:"first_watch,omitempty"`
	LastWatch      string   `json:"last_watch,omitempty"`
}

// GenreCount is one bucket of the genre distribution.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// RatingBucket is one bucket of the rating distribution. Stars is the bucket
// value on the unified 1-10 scale; Percentage is of the rated records.
type RatingBucket struct {
	Stars      float64 `json:"stars"`
	Count      int     `json:"count"`
	Percentage int     `json:"percentage"`
}

// MonthCount is one YYYY-MM entry of the watch timeline.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DirectorStat is one entry of the top-directors list. AvgRating is the mean
// over that director's rated films, nil when none are rated.
type DirectorStat struct {
	Name      string   `json:"name"`
	Films     int      `json:"films"`
	AvgRating *float64 `json:"avg_rating"`
}

// DecadeBucket is one bucket of the release-decade breakdown. Percentage is
// of the records that carry a release year.
type DecadeBucket struct {
	Decade     int    `json:"decade"`
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// Stats holds every projection derived from one (filtered) record set. It is
// recomputed from scratch on each evaluation, never updated in place.
type Stats struct {
	Basic     BasicStats     `json:"basic"`
	Genres    []GenreCount   `json:"genres"`
	Ratings   []RatingBucket `json:"ratings"`
	Timeline  []MonthCount   `json:"timeline"`
	Directors []DirectorStat `json:"directors"`
	Decades   []DecadeBucket `json:"decades"`
}
