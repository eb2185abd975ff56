package service

import (
	"github.com/nutritrack/notification-service/internal/entity"
)

const (
	fallbackTitle = "NutriTrack"
	fallbackBody  = "N'oublie pas de noter ton repas !"
)

// MessageBuilder renders a schedule entry into a complete push payload.
// Side-effect free.
type MessageBuilder struct {
	deepLink string
	icon     string
	badge    string
}

func NewMessageBuilder(deepLink, icon, badge string) *MessageBuilder {
	return &MessageBuilder{
		deepLink: deepLink,
		icon:     icon,
		badge:    badge,
	}
}

// BuildPayload maps a schedule entry to its outbound payload. The fixed
// meal kinds always resolve to their canonical texts, even when the
// entry carries overrides; only unrecognized IDs use Title/Body.
func (b *MessageBuilder) BuildPayload(entry entity.ScheduleEntry) entity.Payload {
	title, body := reminderMessage(entry)

	return entity.Payload{
		Notification: entity.Notification{
			Title: title,
			Body:  body,
		},
		Data: entity.Data{
			Type:     "meal_reminder",
			MealType: entry.ID,
			DeepLink: b.deepLink,
		},
		DisplayHints: entity.DisplayHints{
			Icon:    b.icon,
			Badge:   b.badge,
			Vibrate: []int{200, 100, 200},
		},
	}
}

func reminderMessage(entry entity.ScheduleEntry) (title, body string) {
	switch entry.ID {
	case entity.MealBreakfast:
		return "Petit-déjeuner", "Bonjour ! N'oublie pas de noter ton petit-déjeuner."
	case entity.MealLunch:
		return "Déjeuner", "C'est l'heure du déj ! Pense à logger ton repas."
	case entity.MealSnack:
		return "Goûter", "Un petit goûter ? Note-le pour garder le cap !"
	case entity.MealDinner:
		return "Dîner", "Bon appétit ! N'oublie pas de noter ton dîner."
	default:
		title = entry.Title
		if title == "" {
			title = fallbackTitle
		}
		body = entry.Body
		if body == "" {
			body = fallbackBody
		}
		return title, body
	}
}
