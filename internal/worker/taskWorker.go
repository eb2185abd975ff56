package worker

import (
	"context"
	"fmt"

	"github.com/nutritrack/notification-service/internal/entity"
	"github.com/nutritrack/notification-service/internal/rabbitMQ"
	"github.com/nutritrack/notification-service/internal/service"

	"github.com/sirupsen/logrus"
)

// TaskWorker consumes cadence tasks from the queue and runs them
// through the same core the HTTP trigger uses.
type TaskWorker struct {
	queue   rabbitMQ.Queue
	usecase service.ReminderUseCase
}

func NewTaskWorker(queue rabbitMQ.Queue, usecase service.ReminderUseCase) *TaskWorker {
	return &TaskWorker{
		queue:   queue,
		usecase: usecase,
	}
}

func (w *TaskWorker) Start(ctx context.Context) error {
	logrus.Info("Task worker started")

	return w.queue.Consume(ctx, func(task *entity.Task) error {
		return w.handle(ctx, task)
	})
}

func (w *TaskWorker) handle(ctx context.Context, task *entity.Task) error {
	log := logrus.WithFields(logrus.Fields{
		"task_id":   task.ID,
		"task_type": task.Type,
	})

	switch task.Type {
	case entity.TaskScan:
		report, err := w.usecase.ProcessDueReminders(ctx, task.TriggeredAt)
		if err != nil {
			log.Errorf("Scan tick failed: %v", err)
			return err
		}
		log.WithFields(logrus.Fields{
			"sent":   report.Sent,
			"failed": report.Failed,
			"total":  report.Total,
		}).Info("Scan tick processed")
		return nil

	case entity.TaskSweep:
		report, err := w.usecase.SweepTokens(ctx)
		if err != nil {
			log.Errorf("Token sweep failed: %v", err)
			return err
		}
		log.WithFields(logrus.Fields{
			"checked": report.Checked,
			"cleaned": report.Cleaned,
		}).Info("Token sweep processed")
		return nil

	default:
		return fmt.Errorf("unknown task type: %s", task.Type)
	}
}
