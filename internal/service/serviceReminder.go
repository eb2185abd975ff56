package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nutritrack/notification-service/internal/database"
	"github.com/nutritrack/notification-service/internal/entity"

	"github.com/sirupsen/logrus"
)

type reminderUseCase struct {
	repo    database.ProfileRepository
	gateway PushGateway
	matcher *TimeMatcher
	builder *MessageBuilder
}

func NewReminderUseCase(repo database.ProfileRepository, gateway PushGateway, matcher *TimeMatcher, builder *MessageBuilder) ReminderUseCase {
	return &reminderUseCase{
		repo:    repo,
		gateway: gateway,
		matcher: matcher,
		builder: builder,
	}
}

// ProcessDueReminders runs one scan tick: pull the population, match
// due entries, dispatch everything and report the outcome. A directory
// failure aborts the tick; per-message failures never do.
func (uc *reminderUseCase) ProcessDueReminders(ctx context.Context, now time.Time) (*entity.DispatchReport, error) {
	profiles, err := uc.repo.GetProfilesWithToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDirectoryQuery, err)
	}

	requests := Scan(now, profiles, uc.matcher, uc.builder)
	if len(requests) == 0 {
		logrus.WithField("time", uc.matcher.LocalClock(now, "")).Info("No reminders due this tick")
		return &entity.DispatchReport{}, nil
	}

	report := uc.DispatchAll(ctx, requests)

	logrus.WithFields(logrus.Fields{
		"sent":   report.Sent,
		"failed": report.Failed,
		"total":  report.Total,
	}).Info("Reminder dispatch completed")

	return report, nil
}

// SendTestNotification pushes a fixed test message to one user so they
// can verify their registration end to end.
func (uc *reminderUseCase) SendTestNotification(ctx context.Context, userID string) error {
	profile, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrDirectoryQuery, err)
	}
	if profile == nil {
		return entity.ErrProfileNotFound
	}
	if !profile.HasToken() {
		return entity.ErrNoDeliveryToken
	}

	payload := &entity.Payload{
		Token: profile.FCMToken,
		Notification: entity.Notification{
			Title: "Test NutriTrack",
			Body:  "Si tu vois ce message, les notifications fonctionnent !",
		},
		Data: entity.Data{
			Type:     "meal_reminder",
			MealType: "test",
			DeepLink: uc.builder.deepLink,
		},
		DisplayHints: entity.DisplayHints{
			Icon:    uc.builder.icon,
			Badge:   uc.builder.badge,
			Vibrate: []int{200, 100, 200},
		},
	}

	if err := uc.gateway.Send(ctx, payload); err != nil {
		return fmt.Errorf("failed to send test notification: %w", err)
	}

	return nil
}
