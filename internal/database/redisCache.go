package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nutritrack/notification-service/internal/entity"

	"github.com/go-redis/redis/v8"
)

const profilesCacheKey = "profiles:with_token"

// cachedProfileRepository is a read-through cache in front of the
// directory. The every-minute scan hits the same query each tick, so a
// short TTL takes most of that load off Postgres without delaying
// reminder matching past one tick.
type cachedProfileRepository struct {
	inner  ProfileRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedProfileRepository(inner ProfileRepository, client *redis.Client, ttl time.Duration) ProfileRepository {
	return &cachedProfileRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (r *cachedProfileRepository) GetProfilesWithToken(ctx context.Context) ([]*entity.Profile, error) {
	data, err := r.client.Get(ctx, profilesCacheKey).Result()
	if err == nil {
		var profiles []*entity.Profile
		if err := json.Unmarshal([]byte(data), &profiles); err == nil {
			return profiles, nil
		}
		// corrupt cache entry, fall through to the directory
	} else if err != redis.Nil {
		// Redis being down must not break the scan
		return r.inner.GetProfilesWithToken(ctx)
	}

	profiles, err := r.inner.GetProfilesWithToken(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(profiles); err == nil {
		r.client.Set(ctx, profilesCacheKey, encoded, r.ttl)
	}

	return profiles, nil
}

func (r *cachedProfileRepository) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	return r.inner.GetByID(ctx, userID)
}

func (r *cachedProfileRepository) ClearToken(ctx context.Context, userID string) error {
	if err := r.inner.ClearToken(ctx, userID); err != nil {
		return err
	}

	// Drop the cached population so the next tick skips the dead token
	r.client.Del(ctx, profilesCacheKey)

	return nil
}
