package utils

import "time"

// StartOfDay returns midnight (00:00:00.000) of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayRange returns the [start, end) epoch-millisecond bounds of the calendar
// day containing t.
func DayRange(t time.Time) (int64, int64) {
	start := StartOfDay(t)
	return ToMillis(start), ToMillis(start.AddDate(0, 0, 1))
}

func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// MinutesOfDay returns the wall-clock minutes elapsed since midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
