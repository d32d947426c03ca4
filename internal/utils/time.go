package utils

import (
	"fmt"
	"time"

	"github.com/svasisht/prepdash/internal/constants"
)

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number
// of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes-from-midnight as HH:MM. Inputs past
// 1439 are rendered as-is (e.g. 1440 -> "24:00"); callers cap before
// display where same-day representation matters.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
// The result is anchored at UTC midnight so that day arithmetic is
// timezone-naive: a date is a calendar day, never an instant.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// DaysBetween returns the whole-day count dateB - dateA. The result is
// negative when dateB precedes dateA. Both dates are treated as UTC
// calendar days, so DST transitions cannot shift the count.
func DaysBetween(dateA, dateB string) (int, error) {
	a, err := ParseDate(dateA)
	if err != nil {
		return 0, err
	}
	b, err := ParseDate(dateB)
	if err != nil {
		return 0, err
	}
	return int(b.Sub(a).Hours() / 24), nil
}

// AddDays returns the date that is days calendar days after dateStr.
func AddDays(dateStr string, days int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(constants.DateFormat), nil
}

// Today returns the current local calendar date (YYYY-MM-DD).
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}
