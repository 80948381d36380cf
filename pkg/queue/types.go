// Package queue is the daemon worker pool: it polls the remote task
// service queue, claims tasks, and runs the iteration engine on each
// claim with bounded concurrency.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/agx-dev/agx/pkg/engine"
	"github.com/agx-dev/agx/pkg/taskservice"
)

// Sentinel errors for worker poll outcomes.
var (
	// ErrNoTasksAvailable means the remote queue was empty.
	ErrNoTasksAvailable = errors.New("no queued tasks available")

	// ErrTaskInFlight means another worker in this daemon already holds
	// the claimed task id.
	ErrTaskInFlight = errors.New("task already in flight")
)

// TaskExecutor runs one claimed task to completion.
type TaskExecutor interface {
	Execute(ctx context.Context, task *taskservice.Task) *ExecutionResult
}

// ExecutionResult is the terminal outcome of one task execution.
type ExecutionResult struct {
	Code      int
	Decision  engine.Decision
	NewStage  string
	Cancelled bool
	Err       error
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}

// PoolHealth is the pool-level health snapshot served by the status API.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	InFlightTasks    int            `json:"in_flight_tasks"`
	SpawnedChildren  int            `json:"spawned_children"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}
