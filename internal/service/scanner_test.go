package service

import (
	"testing"
	"time"

	"github.com/nutritrack/notification-service/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScanDeps() (*TimeMatcher, *MessageBuilder) {
	return NewTimeMatcher("Europe/Paris"),
		NewMessageBuilder("https://nutritraack.web.app", "/icon-192.png", "/icon-192.png")
}

// TestScan проверяет выборку due-записей по населению пользователей
func TestScan(t *testing.T) {
	matcher, builder := testScanDeps()
	now := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC) // 08:00 in Paris (pre-DST)

	tests := []struct {
		name     string
		profiles []*entity.Profile
		want     int
	}{
		{
			name: "due entry yields one request",
			profiles: []*entity.Profile{
				{
					UserID:   "u1",
					FCMToken: "tok-1",
					Timezone: "Europe/Paris",
					Schedules: []entity.ScheduleEntry{
						{ID: entity.MealBreakfast, Enabled: true, Time: "08:00"},
					},
				},
			},
			want: 1,
		},
		{
			name: "disabled entry never matches",
			profiles: []*entity.Profile{
				{
					UserID:   "u1",
					FCMToken: "tok-1",
					Timezone: "Europe/Paris",
					Schedules: []entity.ScheduleEntry{
						{ID: entity.MealBreakfast, Enabled: false, Time: "08:00"},
					},
				},
			},
			want: 0,
		},
		{
			name: "profile without token yields nothing",
			profiles: []*entity.Profile{
				{
					UserID:   "u1",
					Timezone: "Europe/Paris",
					Schedules: []entity.ScheduleEntry{
						{ID: entity.MealBreakfast, Enabled: true, Time: "08:00"},
					},
				},
			},
			want: 0,
		},
		{
			name: "not due entry yields nothing",
			profiles: []*entity.Profile{
				{
					UserID:   "u1",
					FCMToken: "tok-1",
					Timezone: "Europe/Paris",
					Schedules: []entity.ScheduleEntry{
						{ID: entity.MealLunch, Enabled: true, Time: "12:30"},
					},
				},
			},
			want: 0,
		},
		{
			name: "profiles are matched independently",
			profiles: []*entity.Profile{
				{
					UserID:   "paris",
					FCMToken: "tok-paris",
					Timezone: "Europe/Paris",
					Schedules: []entity.ScheduleEntry{
						{ID: entity.MealBreakfast, Enabled: true, Time: "08:00"},
					},
				},
				{
					UserID:   "tokyo",
					FCMToken: "tok-tokyo",
					Timezone: "Asia/Tokyo",
					Schedules: []entity.ScheduleEntry{
						// 07:00 UTC is 16:00 in Tokyo
						{ID: entity.MealBreakfast, Enabled: true, Time: "08:00"},
					},
				},
			},
			want: 1,
		},
		{
			name: "same entry matched at most once per tick",
			profiles: []*entity.Profile{
				{
					UserID:   "u1",
					FCMToken: "tok-1",
					Timezone: "Europe/Paris",
					Schedules: []entity.ScheduleEntry{
						{ID: entity.MealBreakfast, Enabled: true, Time: "08:00"},
						{ID: entity.MealLunch, Enabled: true, Time: "12:30"},
					},
				},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := Scan(now, tt.profiles, matcher, builder)
			assert.Len(t, requests, tt.want)
		})
	}
}

// TestScanEndToEnd проверяет полный сценарий из одного профиля
func TestScanEndToEnd(t *testing.T) {
	matcher, builder := testScanDeps()

	now := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	profiles := []*entity.Profile{
		{
			UserID:   "u42",
			FCMToken: "tok-42",
			Timezone: "Europe/Paris",
			Schedules: []entity.ScheduleEntry{
				{ID: entity.MealBreakfast, Enabled: true, Time: "08:00"},
			},
		},
	}

	requests := Scan(now, profiles, matcher, builder)

	require.Len(t, requests, 1)
	req := requests[0]

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "u42", req.UserID)
	assert.Equal(t, "tok-42", req.Payload.Token)
	assert.Equal(t, "Petit-déjeuner", req.Payload.Notification.Title)
	assert.Equal(t, entity.MealBreakfast, req.Payload.Data.MealType)
}
