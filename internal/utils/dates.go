package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all rental dates.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// Today returns the current date in wire format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// CompactDate returns the current date as yyyymmdd, used in booking numbers.
func CompactDate(t time.Time) string {
	return t.Format("20060102")
}

// RangesOverlap reports whether two inclusive date ranges intersect:
// [aStart,aEnd] and [bStart,bEnd] overlap iff aStart <= bEnd && bStart <= aEnd.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// DaysSince returns the number of whole days elapsed since t.
func DaysSince(t time.Time, now time.Time) int {
	if now.Before(t) {
		return 0
	}
	return int(now.Sub(t).Hours() / 24)
}
