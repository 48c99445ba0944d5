package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2025, 10, 14, 21, 37, 12, 500_000_000, loc)
	out := StartOfDay(in)

	assert.Equal(t, time.Date(2025, 10, 14, 0, 0, 0, 0, loc), out)
	assert.Equal(t, loc, out.Location())
}

func TestDayRange(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2025, 10, 14, 12, 0, 0, 0, loc)

	start, end := DayRange(in)

	assert.Equal(t, ToMillis(time.Date(2025, 10, 14, 0, 0, 0, 0, loc)), start)
	assert.Equal(t, ToMillis(time.Date(2025, 10, 15, 0, 0, 0, 0, loc)), end)
	assert.Equal(t, int64(24*60*60*1000), end-start)
}

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		minute   int
		expected int
	}{
		{name: "Midnight", hour: 0, minute: 0, expected: 0},
		{name: "Morning", hour: 8, minute: 0, expected: 480},
		{name: "Evening", hour: 19, minute: 0, expected: 1140},
		{name: "One before midnight", hour: 23, minute: 59, expected: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := time.Date(2025, 10, 14, tt.hour, tt.minute, 30, 0, time.UTC)
			assert.Equal(t, tt.expected, MinutesOfDay(in))
		})
	}
}
