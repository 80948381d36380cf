package queue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/provider"
	"github.com/agx-dev/agx/pkg/taskservice"
)

func testDaemonConfig() config.DaemonConfig {
	return config.DaemonConfig{
		MaxWorkers:              1,
		PollInterval:            10 * time.Millisecond,
		OrphanSweepInterval:     time.Hour,
		GracefulShutdownTimeout: time.Minute,
	}
}

func TestPoolInFlightRegistry(t *testing.T) {
	p := NewWorkerPool("d1", nil, testDaemonConfig(), nil, nil)

	var cancelled atomic.Bool
	require.True(t, p.TryAcquireTask("t1", func() { cancelled.Store(true) }))
	assert.False(t, p.TryAcquireTask("t1", func() {}), "duplicate acquire must fail")

	assert.True(t, p.CancelTask("t1"))
	assert.True(t, cancelled.Load())

	p.ReleaseTask("t1")
	assert.False(t, p.CancelTask("t1"))
	assert.True(t, p.TryAcquireTask("t1", func() {}))
}

func TestPoolStartStop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"task":null}`))
	}))
	defer srv.Close()

	tasks := taskservice.NewClient(srv.URL, "u")
	manager := provider.NewManager(t.TempDir())
	p := NewWorkerPool("d1", tasks, testDaemonConfig(), &stubExecutor{}, manager)

	require.NoError(t, p.Start(context.Background()))
	require.NoError(t, p.Start(context.Background()), "second Start is a no-op")

	health := p.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 1, health.TotalWorkers)

	p.Stop()

	// Startup sweep ran at least once.
	health = p.Health()
	assert.False(t, health.LastOrphanScan.IsZero())
}

type stubExecutor struct {
	executed chan *taskservice.Task
	result   *ExecutionResult
}

func (s *stubExecutor) Execute(ctx context.Context, task *taskservice.Task) *ExecutionResult {
	if s.executed != nil {
		s.executed <- task
	}
	return s.result
}
