package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/taskservice"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id       string
	tasks    *taskservice.Client
	cfg      config.DaemonConfig
	executor TaskExecutor
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for in-flight
// registration.
type TaskRegistry interface {
	TryAcquireTask(taskID string, cancel context.CancelFunc) bool
	ReleaseTask(taskID string)
}

// NewWorker creates a queue worker.
func NewWorker(id string, tasks *taskservice.Client, cfg config.DaemonConfig, executor TaskExecutor, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		tasks:        tasks,
		cfg:          cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				switch {
				case errors.Is(err, ErrNoTasksAvailable), errors.Is(err, ErrTaskInFlight):
					w.sleep(w.cfg.PollInterval)
				default:
					log.Error("Error processing task", "error", err)
					w.sleep(time.Second) // Brief backoff on error
				}
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next queued task and executes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	task, err := w.tasks.ClaimQueued(ctx)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrNoTasksAvailable
	}

	log := slog.With("task_id", task.ID, "worker_id", w.id)

	taskCtx, cancelTask := context.WithCancel(ctx)
	defer cancelTask()

	if !w.pool.TryAcquireTask(task.ID, cancelTask) {
		log.Warn("Discarding duplicate claim, task already in flight")
		return ErrTaskInFlight
	}
	defer w.pool.ReleaseTask(task.ID)

	log.Info("Task claimed", "slug", task.Slug, "stage", task.Stage)

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	result := w.executor.Execute(taskCtx, task)
	if result == nil {
		result = &ExecutionResult{Err: errors.New("executor returned nil result")}
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	switch {
	case result.Cancelled:
		log.Info("Task cancelled", "decision", result.Decision.Decision)
	case result.Err != nil:
		log.Error("Task execution failed", "error", result.Err)
	default:
		log.Info("Task processing complete",
			"code", result.Code,
			"decision", result.Decision.Decision,
			"new_stage", result.NewStage)
	}
	return nil
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
