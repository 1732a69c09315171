// Package calendar turns clock values into the YYYY-MM-DD keys used by the
// activity document and groups them into weeks.
package calendar

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

func Key(t time.Time) string {
	return t.Format(DateLayout)
}

// TodayKey returns the local calendar date of now.
func TodayKey(now time.Time) string {
	return Key(now.Local())
}

// ParseKey parses a date key as local midnight.
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", key, err)
	}
	return t, nil
}

// addDays moves by calendar days so DST changes never skip or repeat a date.
func addDays(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, t.Location())
}

// WeekBounds returns Monday and Sunday of the ISO week containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	t = t.Local()
	offset := (int(t.Weekday()) + 6) % 7
	monday := addDays(t, -offset)
	return monday, addDays(monday, 6)
}

// WeekKeys returns the seven keys Monday through Sunday of the week containing t.
func WeekKeys(t time.Time) []string {
	monday, _ := WeekBounds(t)
	keys := make([]string, 7)
	for i := range keys {
		keys[i] = Key(addDays(monday, i))
	}
	return keys
}

// LastDays returns n keys ending on t inclusive, oldest first.
func LastDays(t time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	t = t.Local()
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = Key(addDays(t, i-n+1))
	}
	return keys
}
