package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/provider"
	"github.com/agx-dev/agx/pkg/taskservice"
)

// WorkerPool manages the daemon's claim/execute workers, the in-flight
// task registry, and the orphan heartbeat sweep.
type WorkerPool struct {
	daemonID string
	tasks    *taskservice.Client
	cfg      config.DaemonConfig
	executor TaskExecutor
	manager  *provider.Manager
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// In-flight registry: task_id → cancel function. Guards against two
	// workers executing the same task id.
	mu       sync.RWMutex
	inFlight map[string]context.CancelFunc
	started  bool

	orphans orphanState
}

// NewWorkerPool creates a worker pool. manager may be nil (no spawned
// child registry, orphan sweep disabled).
func NewWorkerPool(daemonID string, tasks *taskservice.Client, cfg config.DaemonConfig, executor TaskExecutor, manager *provider.Manager) *WorkerPool {
	return &WorkerPool{
		daemonID: daemonID,
		tasks:    tasks,
		cfg:      cfg,
		executor: executor,
		manager:  manager,
		workers:  make([]*Worker, 0, cfg.MaxWorkers),
		stopCh:   make(chan struct{}),
		inFlight: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan sweep background task.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "daemon_id", p.daemonID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "daemon_id", p.daemonID, "worker_count", p.cfg.MaxWorkers)

	for i := 0; i < p.cfg.MaxWorkers; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.daemonID, i)
		worker := NewWorker(workerID, p.tasks, p.cfg, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	if p.manager != nil {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.runOrphanSweep()
		}()
	}

	slog.Info("Worker pool started")
	return nil
}

// Stop drains the pool: spawned provider children are killed so in-flight
// executions fail fast, then workers finish their current task before
// exiting.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.inFlightTaskIDs()
	if len(active) > 0 {
		slog.Info("Waiting for in-flight tasks to complete",
			"count", len(active), "task_ids", active)
	}

	p.stopOnce.Do(func() { close(p.stopCh) })

	if p.manager != nil {
		p.manager.KillAll()
	}

	for _, worker := range p.workers {
		worker.Stop()
	}
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// TryAcquireTask registers a task id as in-flight. Returns false when the
// id is already held by another worker; the duplicate claim is discarded.
func (p *WorkerPool) TryAcquireTask(taskID string, cancel context.CancelFunc) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, held := p.inFlight[taskID]; held {
		return false
	}
	p.inFlight[taskID] = cancel
	return true
}

// ReleaseTask removes a task id from the in-flight registry.
func (p *WorkerPool) ReleaseTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, taskID)
}

// CancelTask triggers context cancellation for an in-flight task.
// Returns true if the task was found on this daemon.
func (p *WorkerPool) CancelTask(taskID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.inFlight[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the pool's health snapshot.
func (p *WorkerPool) Health() *PoolHealth {
	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	p.mu.RLock()
	inFlight := len(p.inFlight)
	p.mu.RUnlock()

	spawned := 0
	if p.manager != nil {
		spawned = p.manager.Active()
	}

	p.orphans.mu.Lock()
	lastScan := p.orphans.lastScan
	recovered := p.orphans.recovered
	p.orphans.mu.Unlock()

	return &PoolHealth{
		IsHealthy:        len(p.workers) > 0 && inFlight <= p.cfg.MaxWorkers,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		InFlightTasks:    inFlight,
		SpawnedChildren:  spawned,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastScan,
		OrphansRecovered: recovered,
	}
}

func (p *WorkerPool) inFlightTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.inFlight))
	for id := range p.inFlight {
		ids = append(ids, id)
	}
	return ids
}
