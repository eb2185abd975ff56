package entity

import "time"

// Task types carried over the internal job queue.
const (
	TaskScan  = "scan"
	TaskSweep = "sweep"
)

// Task is one unit of work published by the cadence scheduler and
// consumed by the worker. Both the HTTP trigger and the queue consumer
// end up in the same core use case.
type Task struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	TriggeredAt time.Time `json:"triggered_at"`
}
