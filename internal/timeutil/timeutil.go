package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the calendar date of now in loc, formatted as YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return FormatDate(now.In(loc))
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	parsed, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(parsed.AddDate(0, 0, n)), nil
}

// DateRange returns every date from today-back through today+ahead inclusive.
func DateRange(today string, back, ahead int) []string {
	parsed, err := ParseDate(today)
	if err != nil {
		return nil
	}
	out := make([]string, 0, back+ahead+1)
	for i := -back; i <= ahead; i++ {
		out = append(out, FormatDate(parsed.AddDate(0, 0, i)))
	}
	return out
}

// LongDate renders a date like "Friday, January 05, 2024".
func LongDate(date string) string {
	parsed, err := ParseDate(date)
	if err != nil {
		return date
	}
	return parsed.Format("Monday, January 02, 2006")
}
