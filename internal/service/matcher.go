package service

import (
	"time"

	"github.com/nutritrack/notification-service/internal/entity"
)

// TimeMatcher decides whether a schedule entry is due at a given
// instant in a user's timezone. Pure, no I/O.
type TimeMatcher struct {
	defaultTimezone string
}

func NewTimeMatcher(defaultTimezone string) *TimeMatcher {
	if defaultTimezone == "" {
		defaultTimezone = entity.DefaultTimezone
	}
	return &TimeMatcher{defaultTimezone: defaultTimezone}
}

// LocalClock formats the instant as zero-padded 24-hour "HH:MM" in the
// given timezone. Unknown or empty zones fall back to the default zone
// rather than failing.
func (m *TimeMatcher) LocalClock(instant time.Time, timezone string) string {
	return instant.In(m.location(timezone)).Format("15:04")
}

// IsDue reports whether the schedule time matches the instant's local
// wall clock exactly. Matching granularity is one minute.
func (m *TimeMatcher) IsDue(instant time.Time, timezone, scheduleTime string) bool {
	return m.LocalClock(instant, timezone) == scheduleTime
}

func (m *TimeMatcher) location(timezone string) *time.Location {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(m.defaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}
