package stats

import (
	"fmt"
	"time"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// Insights phrases the highlights of a statistics object as English
// sentences, using the resolved content label for the record noun.
func Insights(st models.Stats, label string) []string {
	var lines []string

	if st.Basic.EstimatedHours > 0 {
		lines = append(lines, fmt.Sprintf("You've watched an estimated %d hours of film.", st.Basic.EstimatedHours))
	}

	if st.Basic.FirstWatch != "" {
		since := st.Basic.FirstWatch[:4]
		until := st.Basic.LastWatch[:4]
		span := since
		if since != until {
			span = since + " to " + until
		}
		noun := label
		if st.Basic.Total == 1 {
			noun = Singular(label)
		}
		lines = append(lines, fmt.Sprintf("You logged %d %s from %s.", st.Basic.Total, noun, span))
	}

	if peak, ok := busiestMonth(st.Timeline); ok {
		noun := label
		if peak.Count == 1 {
			noun = Singular(label)
		}
		lines = append(lines, fmt.Sprintf("Your busiest month was %s with %d %s.", formatMonth(peak.Month), peak.Count, noun))
	}

	if st.Basic.AvgRating != nil {
		lines = append(lines, fmt.Sprintf("Your average rating is %v out of 10.", *st.Basic.AvgRating))
	}

	return lines
}

func busiestMonth(timeline []models.MonthCount) (models.MonthCount, bool) {
	if len(timeline) == 0 {
		return models.MonthCount{}, false
	}
	peak := timeline[0]
	for _, entry := range timeline[1:] {
		if entry.Count > peak.Count {
			peak = entry
		}
	}
	return peak, true
}

// formatMonth turns "2021-03" into "March 2021"; a malformed key is returned
// untouched.
func formatMonth(key string) string {
	year, month, ok := splitMonthKey(key)
	if !ok {
		return key
	}
	return fmt.Sprintf("%s %d", time.Month(month), year)
}
