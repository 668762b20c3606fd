package domain

import (
	"strings"
	"time"
)

// ParseDate parses a YYYY-MM-DD date, trimming surrounding whitespace.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, strings.TrimSpace(s))
}

// DaysBetween returns the inclusive day count of the closed interval
// [start, end]: DaysBetween(d, d) == 1. Time-of-day is ignored.
func DaysBetween(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	return int(e.Sub(s).Hours()/24) + 1
}

// RangesOverlap reports whether two closed date ranges [aStart, aEnd] and
// [bStart, bEnd] overlap. Touching endpoints count as overlapping.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
