package mcp

import (
	"fmt"

	"github.com/gorewood/tweetbook/internal/organize"
)

// warningCollector gathers skipped-record warnings for tool output.
type warningCollector struct {
	warnings []string
}

// Warn records a formatted warning.
func (w *warningCollector) Warn(format string, args ...any) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, args...))
}

// ToYearStats converts organizer counts to their JSON form, shared by the
// stats tool and the CLI stats command.
func ToYearStats(counts []organize.YearCount) []YearStats {
	result := make([]YearStats, 0, len(counts))
	for _, yc := range counts {
		months := make([]MonthStats, 0, len(yc.Months))
		for _, mc := range yc.Months {
			months = append(months, MonthStats{Month: mc.Month.String(), Posts: mc.Posts})
		}
		result = append(result, YearStats{Year: yc.Year, Posts: yc.Posts, Months: months})
	}
	return result
}
