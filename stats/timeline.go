package stats

import (
	"fmt"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
)

// FillTimeline expands a sparse timeline so every month between the first
// and last entry appears, zeroing months with no watches. Charts then show
// gaps instead of compressing them.
func FillTimeline(timeline []models.MonthCount) []models.MonthCount {
	if len(timeline) == 0 {
		return nil
	}

	counts := make(map[string]int, len(timeline))
	for _, entry := range timeline {
		counts[entry.Month] = entry.Count
	}

	year, month, ok := splitMonthKey(timeline[0].Month)
	endYear, endMonth, endOK := splitMonthKey(timeline[len(timeline)-1].Month)
	if !ok || !endOK {
		return timeline
	}

	var filled []models.MonthCount
	for year < endYear || (year == endYear && month <= endMonth) {
		key := fmt.Sprintf("%04d-%02d", year, month)
		filled = append(filled, models.MonthCount{Month: key, Count: counts[key]})
		month++
		if month > 12 {
			year++
			month = 1
		}
	}
	return filled
}

func splitMonthKey(key string) (year, month int, ok bool) {
	if _, err := fmt.Sscanf(key, "%4d-%2d", &year, &month); err != nil {
		return 0, 0, false
	}
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
