package service

import (
	"time"

	"github.com/nutritrack/notification-service/internal/entity"

	"github.com/google/uuid"
)

// Scan walks the user population and returns one dispatch request per
// due schedule entry. No sending happens here; the dispatcher owns
// delivery. Each entry is considered exactly once per invocation.
func Scan(now time.Time, profiles []*entity.Profile, matcher *TimeMatcher, builder *MessageBuilder) []entity.DispatchRequest {
	var requests []entity.DispatchRequest

	for _, profile := range profiles {
		if !profile.HasToken() {
			continue
		}

		for _, entry := range profile.Schedules {
			if !entry.Enabled {
				continue
			}
			if !matcher.IsDue(now, profile.Timezone, entry.Time) {
				continue
			}

			payload := builder.BuildPayload(entry)
			payload.Token = profile.FCMToken

			requests = append(requests, entity.DispatchRequest{
				ID:      uuid.New().String(),
				UserID:  profile.UserID,
				Payload: payload,
			})
		}
	}

	return requests
}
