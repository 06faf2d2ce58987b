package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DisplayLayout is the dd-MM-yyyy layout used on reservations and on screen.
	DisplayLayout = "02-01-2006"
	// CalendarLayout is the layout produced by the scheduling calendar.
	CalendarLayout = "2006-01-02"
)

var inputLayouts = []string{DisplayLayout, CalendarLayout, time.RFC3339}

// ParseDate accepts dd-MM-yyyy, yyyy-MM-dd or an RFC 3339 timestamp and
// returns midnight UTC of that calendar day.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// FormatDate renders t as dd-MM-yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ShiftDate parses value, moves it by days and renders it as dd-MM-yyyy.
func ShiftDate(value string, days int) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, days)), nil
}

// DaysInclusive counts calendar days from start to end, both included.
// It returns 0 when end is before start.
func DaysInclusive(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
