package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/nutritrack/notification-service/internal/entity"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetProfilesWithToken(ctx context.Context) ([]*entity.Profile, error) {
	query := `
		SELECT id, fcm_token, timezone, schedules
		FROM users
		WHERE fcm_token IS NOT NULL
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

func (r *profileRepository) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT id, fcm_token, timezone, schedules
		FROM users
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, userID)

	profile, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ClearToken drops the delivery token only. Single-field conditional
// update so concurrent schedule edits by the user are never clobbered.
func (r *profileRepository) ClearToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET fcm_token = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND fcm_token IS NOT NULL`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	// Already-cleared rows match zero rows: sweeping twice is a no-op.
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*entity.Profile, error) {
	var (
		profile   entity.Profile
		token     sql.NullString
		schedules []byte
	)

	err := row.Scan(&profile.UserID, &token, &profile.Timezone, &schedules)
	if err != nil {
		return nil, err
	}

	if token.Valid {
		profile.FCMToken = token.String
	}

	if len(schedules) > 0 {
		if err := json.Unmarshal(schedules, &profile.Schedules); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schedules for user %s: %w", profile.UserID, err)
		}
	}

	return &profile, nil
}
