package entity

// Meal kinds with canonical reminder texts. Any other schedule ID is
// treated as a custom reminder and uses the entry's own title/body.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnack     = "snack"
	MealDinner    = "dinner"
)

// DefaultTimezone is used when a profile carries no timezone or an
// unknown one.
const DefaultTimezone = "Europe/Paris"

// ScheduleEntry is one recurring daily reminder. Time is local
// wall-clock "HH:MM", 24-hour, matched by exact string comparison.
type ScheduleEntry struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"`
	Title   string `json:"title,omitempty"`
	Body    string `json:"body,omitempty"`
}

// Profile is a user's stored notification configuration. The core only
// ever writes FCMToken back (clearing it); everything else is owned by
// the directory.
type Profile struct {
	UserID    string          `json:"user_id"`
	FCMToken  string          `json:"fcm_token,omitempty"`
	Timezone  string          `json:"timezone"`
	Schedules []ScheduleEntry `json:"schedules"`
}

// HasToken reports whether the profile has an active device registration.
func (p *Profile) HasToken() bool {
	return p != nil && p.FCMToken != ""
}
