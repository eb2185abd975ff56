package service

import (
	"testing"

	"github.com/nutritrack/notification-service/internal/entity"

	"github.com/stretchr/testify/assert"
)

// TestBuildPayloadMealKinds проверяет канонические сообщения для фиксированных типов
func TestBuildPayloadMealKinds(t *testing.T) {
	builder := NewMessageBuilder("https://nutritraack.web.app", "/icon-192.png", "/icon-192.png")

	tests := []struct {
		name      string
		entry     entity.ScheduleEntry
		wantTitle string
		wantBody  string
	}{
		{
			name:      "breakfast",
			entry:     entity.ScheduleEntry{ID: entity.MealBreakfast},
			wantTitle: "Petit-déjeuner",
			wantBody:  "Bonjour ! N'oublie pas de noter ton petit-déjeuner.",
		},
		{
			name:      "lunch",
			entry:     entity.ScheduleEntry{ID: entity.MealLunch},
			wantTitle: "Déjeuner",
			wantBody:  "C'est l'heure du déj ! Pense à logger ton repas.",
		},
		{
			name:      "snack",
			entry:     entity.ScheduleEntry{ID: entity.MealSnack},
			wantTitle: "Goûter",
			wantBody:  "Un petit goûter ? Note-le pour garder le cap !",
		},
		{
			name:      "dinner",
			entry:     entity.ScheduleEntry{ID: entity.MealDinner},
			wantTitle: "Dîner",
			wantBody:  "Bon appétit ! N'oublie pas de noter ton dîner.",
		},
		{
			name: "meal kind wins over supplied overrides",
			entry: entity.ScheduleEntry{
				ID:    entity.MealLunch,
				Title: "Custom title",
				Body:  "Custom body",
			},
			wantTitle: "Déjeuner",
			wantBody:  "C'est l'heure du déj ! Pense à logger ton repas.",
		},
		{
			name: "custom id uses overrides",
			entry: entity.ScheduleEntry{
				ID:    "custom-x",
				Title: "T",
				Body:  "B",
			},
			wantTitle: "T",
			wantBody:  "B",
		},
		{
			name:      "custom id without overrides uses fallback",
			entry:     entity.ScheduleEntry{ID: "late-night"},
			wantTitle: "NutriTrack",
			wantBody:  "N'oublie pas de noter ton repas !",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := builder.BuildPayload(tt.entry)

			assert.Equal(t, tt.wantTitle, payload.Notification.Title)
			assert.Equal(t, tt.wantBody, payload.Notification.Body)
		})
	}
}

// TestBuildPayloadMetadata проверяет постоянные метаданные и display hints
func TestBuildPayloadMetadata(t *testing.T) {
	builder := NewMessageBuilder("https://nutritraack.web.app", "/icon-192.png", "/badge-96.png")

	payload := builder.BuildPayload(entity.ScheduleEntry{ID: entity.MealDinner})

	assert.Equal(t, "meal_reminder", payload.Data.Type)
	assert.Equal(t, entity.MealDinner, payload.Data.MealType)
	assert.Equal(t, "https://nutritraack.web.app", payload.Data.DeepLink)

	assert.Equal(t, "/icon-192.png", payload.DisplayHints.Icon)
	assert.Equal(t, "/badge-96.png", payload.DisplayHints.Badge)
	assert.Equal(t, []int{200, 100, 200}, payload.DisplayHints.Vibrate)

	// builder never sets the recipient, the scanner owns that
	assert.Empty(t, payload.Token)
}
