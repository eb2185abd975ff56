package database

import (
	"context"

	"github.com/nutritrack/notification-service/internal/entity"
)

// ProfileRepository is the user directory as seen by the core. The
// directory owns every profile field; the core only reads, except for
// ClearToken which drops a dead registration.
type ProfileRepository interface {
	GetProfilesWithToken(ctx context.Context) ([]*entity.Profile, error)
	GetByID(ctx context.Context, userID string) (*entity.Profile, error)
	ClearToken(ctx context.Context, userID string) error
}
