package graph

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TickPayload is the body of one tick job.
type TickPayload struct {
	GraphID string `json:"graphId"`
}

// SendOptions controls job enqueueing. At most one pending job may exist
// per singleton key; duplicate sends are dropped.
type SendOptions struct {
	SingletonKey    string
	ExpireInSeconds int
}

// WorkOptions controls job delivery.
type WorkOptions struct {
	BatchSize int
}

// Handler processes one tick job. A non-nil error causes redelivery, so
// handlers must be idempotent with respect to the graph's version.
type Handler func(ctx context.Context, payload TickPayload) error

// TickQueue is a durable FIFO-ish job queue. The in-memory implementation
// backs tests; the database-backed implementation survives restarts.
type TickQueue interface {
	Start(ctx context.Context) error
	Stop()
	Send(ctx context.Context, queue string, payload TickPayload, opts SendOptions) error
	Work(queue string, opts WorkOptions, handler Handler) error
}

type memJob struct {
	payload      TickPayload
	singletonKey string
}

// MemQueue is the in-process TickQueue. Jobs are delivered one at a time
// per queue; failed jobs are redelivered after a short delay.
type MemQueue struct {
	redeliverDelay time.Duration

	mu        sync.Mutex
	pending   map[string][]memJob        // queue → FIFO jobs
	singleton map[string]map[string]bool // queue → pending singleton keys
	handlers  map[string]Handler
	active    int
	started   bool

	wake   chan struct{}
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewMemQueue creates an in-memory tick queue.
func NewMemQueue() *MemQueue {
	return &MemQueue{
		redeliverDelay: 10 * time.Millisecond,
		pending:        make(map[string][]memJob),
		singleton:      make(map[string]map[string]bool),
		handlers:       make(map[string]Handler),
		wake:           make(chan struct{}, 1),
		stopCh:         make(chan struct{}),
	}
}

// Work registers the handler for a queue. Must be called before Start.
func (q *MemQueue) Work(queue string, opts WorkOptions, handler Handler) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[queue] = handler
	return nil
}

// Start launches one dispatch goroutine per registered queue.
func (q *MemQueue) Start(ctx context.Context) error {
	q.mu.Lock()
	if q.started {
		q.mu.Unlock()
		return nil
	}
	q.started = true
	queues := make([]string, 0, len(q.handlers))
	for name := range q.handlers {
		queues = append(queues, name)
	}
	q.mu.Unlock()

	for _, name := range queues {
		q.wg.Add(1)
		go q.dispatch(ctx, name)
	}
	return nil
}

// Stop halts delivery. In-flight handlers complete their current attempt.
func (q *MemQueue) Stop() {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return
	}
	q.started = false
	q.mu.Unlock()

	close(q.stopCh)
	q.wg.Wait()

	// Allow a later Start on the same queue contents.
	q.mu.Lock()
	q.stopCh = make(chan struct{})
	q.mu.Unlock()
}

// Send enqueues a tick job, deduplicating on the singleton key.
func (q *MemQueue) Send(ctx context.Context, queue string, payload TickPayload, opts SendOptions) error {
	q.mu.Lock()
	if opts.SingletonKey != "" {
		keys := q.singleton[queue]
		if keys == nil {
			keys = make(map[string]bool)
			q.singleton[queue] = keys
		}
		if keys[opts.SingletonKey] {
			q.mu.Unlock()
			return nil
		}
		keys[opts.SingletonKey] = true
	}
	q.pending[queue] = append(q.pending[queue], memJob{
		payload:      payload,
		singletonKey: opts.SingletonKey,
	})
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return nil
}

// Idle reports whether no jobs are pending or being processed.
func (q *MemQueue) Idle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.active > 0 {
		return false
	}
	for _, jobs := range q.pending {
		if len(jobs) > 0 {
			return false
		}
	}
	return true
}

func (q *MemQueue) dispatch(ctx context.Context, queue string) {
	defer q.wg.Done()

	q.mu.Lock()
	handler := q.handlers[queue]
	stopCh := q.stopCh
	q.mu.Unlock()

	for {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		job, ok := q.take(queue)
		if !ok {
			select {
			case <-stopCh:
				return
			case <-ctx.Done():
				return
			case <-q.wake:
				continue
			case <-time.After(10 * time.Millisecond):
				continue
			}
		}

		if err := handler(ctx, job.payload); err != nil {
			slog.Warn("Tick job failed, redelivering", "queue", queue, "graph_id", job.payload.GraphID, "error", err)
			time.Sleep(q.redeliverDelay)
			_ = q.Send(ctx, queue, job.payload, SendOptions{SingletonKey: job.singletonKey})
		}
		q.mu.Lock()
		q.active--
		q.mu.Unlock()
	}
}

// take pops the next job and marks it active; the singleton key is freed
// so a new tick for the same graph can queue while this one runs.
func (q *MemQueue) take(queue string) (memJob, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	jobs := q.pending[queue]
	if len(jobs) == 0 {
		return memJob{}, false
	}
	job := jobs[0]
	q.pending[queue] = jobs[1:]
	if job.singletonKey != "" {
		delete(q.singleton[queue], job.singletonKey)
	}
	q.active++
	return job, true
}
