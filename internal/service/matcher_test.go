package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsDue проверяет сопоставление локального времени с расписанием
func TestIsDue(t *testing.T) {
	matcher := NewTimeMatcher("Europe/Paris")

	tests := []struct {
		name         string
		instant      time.Time
		timezone     string
		scheduleTime string
		due          bool
	}{
		{
			name:         "UTC exact match",
			instant:      time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			timezone:     "UTC",
			scheduleTime: "08:00",
			due:          true,
		},
		{
			name:         "UTC off by one minute",
			instant:      time.Date(2024, 3, 1, 8, 1, 0, 0, time.UTC),
			timezone:     "UTC",
			scheduleTime: "08:00",
			due:          false,
		},
		{
			name:         "Tokyo 08:00 is 23:00 UTC the day before",
			instant:      time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC),
			timezone:     "Asia/Tokyo",
			scheduleTime: "08:00",
			due:          true,
		},
		{
			name:         "Tokyo does not fire at naive UTC 08:00",
			instant:      time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			timezone:     "Asia/Tokyo",
			scheduleTime: "08:00",
			due:          false,
		},
		{
			name:         "Paris pre-DST is UTC+1",
			instant:      time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC),
			timezone:     "Europe/Paris",
			scheduleTime: "08:00",
			due:          true,
		},
		{
			name:         "invalid timezone falls back to default zone",
			instant:      time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC),
			timezone:     "Not/AZone",
			scheduleTime: "08:00",
			due:          true,
		},
		{
			name:         "empty timezone falls back to default zone",
			instant:      time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC),
			timezone:     "",
			scheduleTime: "08:00",
			due:          true,
		},
		{
			name:         "seconds are ignored by the minute granularity",
			instant:      time.Date(2024, 3, 1, 8, 0, 59, 0, time.UTC),
			timezone:     "UTC",
			scheduleTime: "08:00",
			due:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.due, matcher.IsDue(tt.instant, tt.timezone, tt.scheduleTime))
		})
	}
}

// TestLocalClock проверяет форматирование локального времени
func TestLocalClock(t *testing.T) {
	matcher := NewTimeMatcher("Europe/Paris")

	tests := []struct {
		name     string
		instant  time.Time
		timezone string
		want     string
	}{
		{
			name:     "zero padded hours and minutes",
			instant:  time.Date(2024, 3, 1, 5, 7, 0, 0, time.UTC),
			timezone: "UTC",
			want:     "05:07",
		},
		{
			name:     "24-hour clock, no AM/PM",
			instant:  time.Date(2024, 3, 1, 21, 30, 0, 0, time.UTC),
			timezone: "UTC",
			want:     "21:30",
		},
		{
			name:     "half-hour offset zone",
			instant:  time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			timezone: "Asia/Kolkata",
			want:     "13:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.LocalClock(tt.instant, tt.timezone))
		})
	}
}

func TestTimeMatcherDefaultZoneFallback(t *testing.T) {
	// broken default degrades to UTC instead of failing
	matcher := NewTimeMatcher("Broken/Zone")

	instant := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	require.True(t, matcher.IsDue(instant, "Also/Broken", "08:00"))
}
