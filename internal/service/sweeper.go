package service

import (
	"context"
	"fmt"

	"github.com/nutritrack/notification-service/internal/entity"

	"github.com/sirupsen/logrus"
)

// SweepTokens probes every stored token with a dry-run send and clears
// the ones the gateway reports as permanently dead. Idempotent: a
// profile cleared once no longer shows up in the population.
func (uc *reminderUseCase) SweepTokens(ctx context.Context) (*entity.SweepReport, error) {
	profiles, err := uc.repo.GetProfilesWithToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDirectoryQuery, err)
	}

	report := &entity.SweepReport{}

	for _, profile := range profiles {
		if !profile.HasToken() {
			continue
		}

		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		report.Checked++

		err := uc.gateway.SendDryRun(ctx, profile.FCMToken)
		if err == nil {
			continue
		}

		if !entity.PermanentReason(entity.ClassifyFailure(err)) {
			// transient probe failure, token stays; next sweep retries
			logrus.Debugf("Token probe failed for user %s: %v", profile.UserID, err)
			continue
		}

		if err := uc.repo.ClearToken(ctx, profile.UserID); err != nil {
			logrus.Errorf("Failed to clear token for user %s: %v", profile.UserID, err)
			continue
		}

		report.Cleaned++
		logrus.WithField("user_id", profile.UserID).Info("Swept invalid delivery token")
	}

	logrus.Infof("Token sweep completed: %d checked, %d cleaned", report.Checked, report.Cleaned)

	return report, nil
}
