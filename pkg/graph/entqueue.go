package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/agx-dev/agx/ent"
	"github.com/agx-dev/agx/pkg/database"
)

const entQueuePollInterval = 500 * time.Millisecond

// EntQueue is the PostgreSQL-backed TickQueue. Jobs are rows in
// tick_jobs; claiming uses FOR UPDATE SKIP LOCKED so any number of
// daemons can drain the same queue, and a partial unique index enforces
// the singleton-key guarantee.
type EntQueue struct {
	client *database.Client
	logger *slog.Logger

	mu       sync.Mutex
	handlers map[string]handlerSpec
	started  bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type handlerSpec struct {
	handler   Handler
	batchSize int
}

// NewEntQueue creates a durable tick queue over the database client.
func NewEntQueue(client *database.Client) *EntQueue {
	return &EntQueue{
		client:   client,
		logger:   slog.Default().With("component", "tick_queue"),
		handlers: make(map[string]handlerSpec),
		stopCh:   make(chan struct{}),
	}
}

// Work registers the handler for a queue. Must be called before Start.
func (q *EntQueue) Work(queue string, opts WorkOptions, handler Handler) error {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 1
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[queue] = handlerSpec{handler: handler, batchSize: opts.BatchSize}
	return nil
}

// Start launches one polling goroutine per registered queue.
func (q *EntQueue) Start(ctx context.Context) error {
	q.mu.Lock()
	if q.started {
		q.mu.Unlock()
		return nil
	}
	q.started = true
	specs := make(map[string]handlerSpec, len(q.handlers))
	for name, spec := range q.handlers {
		specs[name] = spec
	}
	q.mu.Unlock()

	for name, spec := range specs {
		q.wg.Add(1)
		go q.drain(ctx, name, spec)
	}
	return nil
}

// Stop halts delivery. Claimed jobs finish their current attempt; pending
// rows survive for the next start.
func (q *EntQueue) Stop() {
	q.stopOnce.Do(func() { close(q.stopCh) })
	q.wg.Wait()
}

// Send enqueues a job. A pending job with the same singleton key already
// in the queue absorbs the send.
func (q *EntQueue) Send(ctx context.Context, queue string, payload TickPayload, opts SendOptions) error {
	var body map[string]interface{}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode tick payload: %w", err)
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return fmt.Errorf("failed to encode tick payload: %w", err)
	}

	_, err = q.client.TickJob.Create().
		SetID(ulid.Make().String()).
		SetQueue(queue).
		SetPayload(body).
		SetSingletonKey(opts.SingletonKey).
		SetExpireInSeconds(opts.ExpireInSeconds).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// The partial unique index on (queue, singleton_key) caught a
		// duplicate pending job.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue tick for %s: %w", payload.GraphID, err)
	}
	return nil
}

type claimedJob struct {
	id           string
	payload      TickPayload
	singletonKey string
	attempts     int
}

func (q *EntQueue) drain(ctx context.Context, queue string, spec handlerSpec) {
	defer q.wg.Done()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-q.stopCh:
			return
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		q.requeueExpired(ctx, queue)

		jobs, err := q.claim(ctx, queue, spec.batchSize)
		if err != nil {
			q.logger.Error("Failed to claim tick jobs", "queue", queue, "error", err)
			timer.Reset(entQueuePollInterval)
			continue
		}
		for _, job := range jobs {
			q.deliver(ctx, queue, spec.handler, job)
		}
		if len(jobs) == 0 {
			timer.Reset(entQueuePollInterval)
		} else {
			timer.Reset(0)
		}
	}
}

// claim atomically flips up to limit pending jobs to active. SKIP LOCKED
// keeps concurrent daemons from double-claiming.
func (q *EntQueue) claim(ctx context.Context, queue string, limit int) ([]claimedJob, error) {
	rows, err := q.client.DB().QueryContext(ctx, `
		UPDATE tick_jobs
		SET state = 'active', started_at = now(), attempts = attempts + 1
		WHERE job_id IN (
			SELECT job_id FROM tick_jobs
			WHERE queue = $1 AND state = 'pending'
			ORDER BY created_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING job_id, payload, singleton_key, attempts`, queue, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var jobs []claimedJob
	for rows.Next() {
		var job claimedJob
		var payload []byte
		if err := rows.Scan(&job.id, &payload, &job.singletonKey, &job.attempts); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &job.payload); err != nil {
			return nil, fmt.Errorf("corrupt payload on job %s: %w", job.id, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (q *EntQueue) deliver(ctx context.Context, queue string, handler Handler, job claimedJob) {
	err := handler(ctx, job.payload)
	state := "completed"
	if err != nil {
		q.logger.Warn("Tick job failed",
			"queue", queue, "job_id", job.id, "graph_id", job.payload.GraphID,
			"attempts", job.attempts, "error", err)
		state = "pending" // redeliver
	}

	_, dbErr := q.client.DB().ExecContext(ctx, `
		UPDATE tick_jobs
		SET state = $2, finished_at = CASE WHEN $2 = 'completed' THEN now() ELSE NULL END
		WHERE job_id = $1`, job.id, state)
	if dbErr != nil && state == "pending" {
		// A newer pending job with the same singleton key beat us to the
		// partial unique index; this attempt is superseded.
		_, dbErr = q.client.DB().ExecContext(ctx,
			`UPDATE tick_jobs SET state = 'failed', finished_at = now() WHERE job_id = $1`, job.id)
	}
	if dbErr != nil {
		q.logger.Error("Failed to settle tick job", "queue", queue, "job_id", job.id, "error", dbErr)
	}
}

// requeueExpired returns stuck active jobs to pending once their
// visibility window lapses, e.g. after a daemon crash mid-tick.
func (q *EntQueue) requeueExpired(ctx context.Context, queue string) {
	res, err := q.client.DB().ExecContext(ctx, `
		UPDATE tick_jobs
		SET state = 'pending', started_at = NULL
		WHERE queue = $1 AND state = 'active' AND expire_in_seconds > 0
		  AND started_at < now() - make_interval(secs => expire_in_seconds)
		  AND (singleton_key = '' OR NOT EXISTS (
			SELECT 1 FROM tick_jobs p
			WHERE p.queue = tick_jobs.queue
			  AND p.singleton_key = tick_jobs.singleton_key
			  AND p.state = 'pending'))`, queue)
	if err != nil {
		q.logger.Error("Failed to requeue expired jobs", "queue", queue, "error", err)
		return
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		q.logger.Info("Requeued expired tick jobs", "queue", queue, "count", n)
	}
}
