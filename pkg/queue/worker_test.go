package queue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agx-dev/agx/pkg/taskservice"
)

type fakeRegistry struct {
	mu       sync.Mutex
	inFlight map[string]bool
	rejected atomic.Int32
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{inFlight: make(map[string]bool)}
}

func (r *fakeRegistry) TryAcquireTask(taskID string, cancel context.CancelFunc) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight[taskID] {
		r.rejected.Add(1)
		return false
	}
	r.inFlight[taskID] = true
	return true
}

func (r *fakeRegistry) ReleaseTask(taskID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inFlight, taskID)
}

// queueServer serves one claimable task, then an empty queue.
func queueServer(t *testing.T, task taskservice.Task) *httptest.Server {
	t.Helper()
	var claimed atomic.Bool
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/queue" {
			http.NotFound(w, r)
			return
		}
		if claimed.CompareAndSwap(false, true) {
			_ = json.NewEncoder(w).Encode(map[string]any{"task": task})
			return
		}
		_, _ = w.Write([]byte(`{"task":null}`))
	}))
}

func TestWorkerClaimsAndExecutes(t *testing.T) {
	srv := queueServer(t, taskservice.Task{ID: "t1", Slug: "fix", Stage: "execution"})
	defer srv.Close()

	executor := &stubExecutor{
		executed: make(chan *taskservice.Task, 1),
		result:   &ExecutionResult{Code: 0, NewStage: "done"},
	}
	w := NewWorker("w0", taskservice.NewClient(srv.URL, "u"), testDaemonConfig(), executor, newFakeRegistry())
	w.Start(context.Background())
	defer w.Stop()

	select {
	case task := <-executor.executed:
		assert.Equal(t, "t1", task.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("worker never executed the claimed task")
	}

	require.Eventually(t, func() bool {
		return w.Health().Status == WorkerStatusIdle && w.Health().TasksProcessed == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWorkerDiscardsDuplicateClaim(t *testing.T) {
	srv := queueServer(t, taskservice.Task{ID: "t1", Slug: "fix"})
	defer srv.Close()

	registry := newFakeRegistry()
	registry.inFlight["t1"] = true // already running elsewhere

	executor := &stubExecutor{executed: make(chan *taskservice.Task, 1)}
	w := NewWorker("w0", taskservice.NewClient(srv.URL, "u"), testDaemonConfig(), executor, registry)
	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool {
		return registry.rejected.Load() >= 1
	}, 5*time.Second, 10*time.Millisecond)

	select {
	case <-executor.executed:
		t.Fatal("duplicate claim must not be executed")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWorkerNilResultTolerated(t *testing.T) {
	srv := queueServer(t, taskservice.Task{ID: "t1"})
	defer srv.Close()

	executor := &stubExecutor{executed: make(chan *taskservice.Task, 1), result: nil}
	w := NewWorker("w0", taskservice.NewClient(srv.URL, "u"), testDaemonConfig(), executor, newFakeRegistry())
	w.Start(context.Background())
	defer w.Stop()

	<-executor.executed
	require.Eventually(t, func() bool {
		return w.Health().TasksProcessed == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWorkerStopsPromptly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"task":null}`))
	}))
	defer srv.Close()

	w := NewWorker("w0", taskservice.NewClient(srv.URL, "u"), testDaemonConfig(), &stubExecutor{}, newFakeRegistry())
	w.Start(context.Background())

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}
