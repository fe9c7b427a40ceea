// Package tui renders a statistics object for the terminal. It is the
// built-in consumer of the engine's output; the web dashboard consumes the
// same object as JSON instead.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
	"github.com/aravinth-kanesh/my-watch-stats/stats"
)

var (
	accent  = lipgloss.Color("#FF9F1C")
	muted   = lipgloss.Color("#666666")
	white   = lipgloss.Color("#FFFFFF")
	barTint = lipgloss.Color("#5FAFFF")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(white)
	accentStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	barStyle     = lipgloss.NewStyle().Foreground(barTint)
	insightStyle = lipgloss.NewStyle().Foreground(white).Italic(true)
)

const maxBarWidth = 30

// Render lays out every projection as terminal text.
func Render(source models.Source, st models.Stats, label string, insights []string) string {
	var b strings.Builder

	b.WriteString("\n" + titleStyle.Render("  MY WATCH STATS") + mutedStyle.Render("  "+string(source)+" export") + "\n\n")
	renderBasic(&b, st.Basic, label)

	if len(insights) > 0 {
		b.WriteString("\n")
		for _, line := range insights {
			b.WriteString("  " + insightStyle.Render(line) + "\n")
		}
	}

	if len(st.Genres) > 0 {
		section(&b, "GENRES")
		max := st.Genres[0].Count
		for _, g := range st.Genres {
			row(&b, g.Genre, g.Count, max, "")
		}
	}

	if len(st.Ratings) > 0 {
		section(&b, "RATINGS")
		max := 0
		for _, r := range st.Ratings {
			if r.Count > max {
				max = r.Count
			}
		}
		for _, r := range st.Ratings {
			row(&b, trimFloat(r.Stars), r.Count, max, fmt.Sprintf("%d%%", r.Percentage))
		}
	}

	if len(st.Timeline) > 0 {
		section(&b, "TIMELINE")
		filled := stats.FillTimeline(st.Timeline)
		max := 0
		for _, m := range filled {
			if m.Count > max {
				max = m.Count
			}
		}
		for _, m := range filled {
			row(&b, m.Month, m.Count, max, "")
		}
	}

	if len(st.Directors) > 0 {
		section(&b, "TOP DIRECTORS")
		for _, d := range st.Directors {
			avg := mutedStyle.Render("unrated")
			if d.AvgRating != nil {
				avg = fmt.Sprintf("avg %v", *d.AvgRating)
			}
			b.WriteString(fmt.Sprintf("  %-28s %3d  %s\n", d.Name, d.Films, avg))
		}
	}

	if len(st.Decades) > 0 {
		section(&b, "DECADES")
		max := 0
		for _, d := range st.Decades {
			if d.Count > max {
				max = d.Count
			}
		}
		for _, d := range st.Decades {
			row(&b, d.Label, d.Count, max, fmt.Sprintf("%d%%", d.Percentage))
		}
	}

	return b.String()
}

func renderBasic(b *strings.Builder, basic models.BasicStats, label string) {
	noun := label
	if basic.Total == 1 {
		noun = stats.Singular(label)
	}
	b.WriteString(fmt.Sprintf("  %s %s watched\n", accentStyle.Render(fmt.Sprintf("%d", basic.Total)), noun))
	b.WriteString(fmt.Sprintf("  %s estimated hours\n", accentStyle.Render(fmt.Sprintf("%d", basic.EstimatedHours))))
	if basic.AvgRating != nil {
		b.WriteString(fmt.Sprintf("  %s average rating (%d rated)\n", accentStyle.Render(fmt.Sprintf("%v", *basic.AvgRating)), basic.RatedCount))
	}
	if basic.FirstWatch != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s — %s\n", basic.FirstWatch, basic.LastWatch)))
	}
}

func section(b *strings.Builder, name string) {
	b.WriteString("\n" + accentStyle.Render("  ▸ "+name) + "\n")
}

func row(b *strings.Builder, name string, count, max int, suffix string) {
	width := 0
	if max > 0 {
		width = count * maxBarWidth / max
	}
	bar := barStyle.Render(strings.Repeat("█", width))
	b.WriteString(fmt.Sprintf("  %-12s %s %d", name, bar, count))
	if suffix != "" {
		b.WriteString(" " + mutedStyle.Render(suffix))
	}
	b.WriteString("\n")
}

// trimFloat prints 7 as "7" and 7.5 as "7.5".
func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.1f", v), "0"), ".")
}
