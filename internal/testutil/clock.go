package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NoonUTC returns a clock fixed at 12:00 UTC on a YYYY-MM-DD date; it panics on
// a malformed date and is intended for tests.
func NoonUTC(date string) func() time.Time {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return NowAt(day.Add(12 * time.Hour))
}
