package service

import (
	"context"
	"sync"

	"github.com/nutritrack/notification-service/internal/entity"

	"github.com/sirupsen/logrus"
)

// DispatchAll fans out every request concurrently and joins on all
// outcomes. One slow or failing send never delays or aborts another;
// there is no retry here, the next cadence re-evaluates due-ness.
func (uc *reminderUseCase) DispatchAll(ctx context.Context, requests []entity.DispatchRequest) *entity.DispatchReport {
	report := &entity.DispatchReport{Total: len(requests)}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, req := range requests {
		wg.Add(1)
		go func(req entity.DispatchRequest) {
			defer wg.Done()

			err := uc.gateway.Send(ctx, &req.Payload)

			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				report.Sent++
				return
			}

			reason := entity.ClassifyFailure(err)
			report.Failed++
			report.Failures = append(report.Failures, entity.DispatchFailure{
				RequestID: req.ID,
				UserID:    req.UserID,
				Reason:    reason,
				Error:     err.Error(),
			})

			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,
				"reason":  reason,
			}).Errorf("Failed to send reminder: %v", err)
		}(req)
	}

	wg.Wait()

	uc.clearDeadTokens(ctx, report.Failures)

	return report
}

// clearDeadTokens writes back the one mutable field the core owns:
// a permanently invalid token is set to null in the directory.
func (uc *reminderUseCase) clearDeadTokens(ctx context.Context, failures []entity.DispatchFailure) {
	cleared := make(map[string]bool)

	for _, failure := range failures {
		if !entity.PermanentReason(failure.Reason) || cleared[failure.UserID] {
			continue
		}

		if err := uc.repo.ClearToken(ctx, failure.UserID); err != nil {
			logrus.Errorf("Failed to clear token for user %s: %v", failure.UserID, err)
			continue
		}

		cleared[failure.UserID] = true
		logrus.WithField("user_id", failure.UserID).Info("Cleared invalid delivery token")
	}
}
