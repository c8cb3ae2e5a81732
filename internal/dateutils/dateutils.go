// Package dateutils provides the calendar-day arithmetic the ledger relies
// on: due-date computation, day differences and month grouping. All
// operations normalize to local midnight first so that month/year rollover
// and DST shifts never move a date into a neighboring day.
package dateutils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	DateLayoutISO   = "2006-01-02"
	MonthLayoutISO  = "2006-01"
	DateLayoutHuman = "Mon, 02 Jan 2006"
)

// CommonFormats is the list of formats tried when parsing user input.
var CommonFormats = []string{
	DateLayoutISO,
	"02.01.2006",
	"02/01/2006",
	"2006/01/02",
	"2 January 2006",
	"Jan 2, 2006",
}

// ParseDate parses a date string using the common formats and returns the
// result normalized to local midnight.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, format := range CommonFormats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return Midnight(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// Midnight truncates a timestamp to local midnight of the same calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays advances a date by n calendar days. This is calendar arithmetic,
// not elapsed-time arithmetic: month and year boundaries roll over
// correctly, e.g. 2024-01-28 plus 5 days is 2024-02-02.
func AddDays(date time.Time, n int) time.Time {
	return Midnight(date).AddDate(0, 0, n)
}

// DaysUntil returns the number of calendar days from `from` until `until`.
// Both dates are normalized to midnight before subtracting, so the result
// is negative for past dates, zero for the same day and positive for
// future dates regardless of the time-of-day components.
func DaysUntil(from, until time.Time) int {
	diff := Midnight(until).Sub(Midnight(from))
	return int(math.Round(diff.Hours() / 24))
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}

// ToISODate formats a timestamp as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey formats a year/month pair as an ISO month prefix (YYYY-MM).
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// InMonth reports whether a date falls within the given calendar month.
// Membership is decided by ISO-date prefix match on the normalized date, so
// a due date on the last day of a month is attributed to that month and
// never rolled into the next by timezone drift.
func InMonth(date time.Time, year int, month time.Month) bool {
	return strings.HasPrefix(ToISODate(Midnight(date)), MonthKey(year, month))
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// CompareDates compares two dates by calendar day:
//
//	-1 if a is before b
//	 0 if a and b are the same day
//	 1 if a is after b
func CompareDates(a, b time.Time) int {
	am, bm := Midnight(a), Midnight(b)
	switch {
	case am.Before(bm):
		return -1
	case am.After(bm):
		return 1
	default:
		return 0
	}
}
