package testutil

import "time"

// Day returns local noon of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// Clock is a settable time source for code that takes a func() time.Time.
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time {
	return c.T
}
