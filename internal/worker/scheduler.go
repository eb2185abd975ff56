package worker

import (
	"context"
	"time"

	"github.com/nutritrack/notification-service/internal/entity"
	"github.com/nutritrack/notification-service/internal/rabbitMQ"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CadenceScheduler publishes scan and sweep tasks on fixed intervals.
// It holds no state between ticks; the user directory is the only
// durable state in the system.
type CadenceScheduler struct {
	queue         rabbitMQ.Queue
	scanInterval  time.Duration
	sweepInterval time.Duration
}

func NewCadenceScheduler(queue rabbitMQ.Queue, scanInterval, sweepInterval time.Duration) *CadenceScheduler {
	return &CadenceScheduler{
		queue:         queue,
		scanInterval:  scanInterval,
		sweepInterval: sweepInterval,
	}
}

func (s *CadenceScheduler) Start(ctx context.Context) {
	scanTicker := time.NewTicker(s.scanInterval)
	defer scanTicker.Stop()

	sweepTicker := time.NewTicker(s.sweepInterval)
	defer sweepTicker.Stop()

	logrus.Infof("Cadence scheduler started: scan every %s, sweep every %s", s.scanInterval, s.sweepInterval)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Cadence scheduler stopped")
			return
		case <-scanTicker.C:
			s.publish(ctx, entity.TaskScan)
		case <-sweepTicker.C:
			s.publish(ctx, entity.TaskSweep)
		}
	}
}

func (s *CadenceScheduler) publish(ctx context.Context, taskType string) {
	task := &entity.Task{
		ID:          uuid.New().String(),
		Type:        taskType,
		TriggeredAt: time.Now().UTC(),
	}

	if err := s.queue.Publish(ctx, task); err != nil {
		// a missed tick is an accepted loss, the next one re-evaluates
		logrus.Errorf("Failed to publish %s task: %v", taskType, err)
	}
}
