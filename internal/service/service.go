package service

import (
	"context"
	"time"

	"github.com/nutritrack/notification-service/internal/entity"
)

// ReminderUseCase is the core shared by the HTTP trigger and the
// queue-driven cadence worker.
type ReminderUseCase interface {
	ProcessDueReminders(ctx context.Context, now time.Time) (*entity.DispatchReport, error)
	SweepTokens(ctx context.Context) (*entity.SweepReport, error)
	SendTestNotification(ctx context.Context, userID string) error
}

// PushGateway is the outbound push backend. Errors wrap
// entity.ErrTokenNotRegistered / entity.ErrTokenInvalid for dead
// registrations; anything else is transient.
type PushGateway interface {
	Send(ctx context.Context, payload *entity.Payload) error
	SendDryRun(ctx context.Context, token string) error
}
