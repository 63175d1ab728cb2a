package appointment

import (
	"fmt"
	"time"
)

// parseDate accepts RFC3339 or a bare "2006-01-02" date.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, &ValidationError{Message: fmt.Sprintf("invalid date %q", raw)}
	}
	return t, nil
}

// withTimeOfDay keeps the calendar date of d but substitutes the wall-clock
// time of now, so a same-day booking is never flagged as already past.
func withTimeOfDay(d, now time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, d.Location())
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func formatTime(t time.Time) string {
	return t.Format("3:04 PM")
}

func formatDateTime(t time.Time) string {
	return formatDate(t) + " at " + formatTime(t)
}
