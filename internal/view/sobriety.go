package view

import (
	"fmt"
	"math"
	"time"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// SobrietyDays returns the whole-day distance between now and the stored
// sobriety date, rounded up. The distance is absolute: a date in the future
// still yields a positive streak, which is the behavior being reproduced,
// not an oversight to correct. An unparsable date counts as zero days.
func SobrietyDays(now time.Time, sobrietyDate string) int {
	start, err := parseDate(sobrietyDate)
	if err != nil {
		return 0
	}
	diff := now.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
