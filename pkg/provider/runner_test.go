package provider

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceRecorder collects trace events under a lock so stream goroutines
// can emit safely.
type traceRecorder struct {
	mu     sync.Mutex
	events []TraceEvent
}

func (r *traceRecorder) record(ev TraceEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *traceRecorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Event)
	}
	return out
}

func (r *traceRecorder) last() TraceEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func TestRunnerCapturesOutputOnSuccess(t *testing.T) {
	rec := &traceRecorder{}
	var chunks []string
	runner := NewRunner(nil)

	result, err := runner.Run(context.Background(), SpawnInput{
		Args:    []string{"/bin/sh", "-c", "echo out-line; echo err-line >&2"},
		Timeout: 10 * time.Second,
		Label:   "echo",
		Handlers: Handlers{
			OnStdout: func(chunk []byte) { chunks = append(chunks, string(chunk)) },
			OnTrace:  rec.record,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Code)
	assert.Equal(t, "out-line\n", result.Stdout)
	assert.Equal(t, "err-line\n", result.Stderr)
	assert.Contains(t, strings.Join(chunks, ""), "out-line")

	assert.Equal(t, []string{"start", "exit"}, rec.names())
	exit := rec.last()
	require.NotNil(t, exit.ExitCode)
	assert.Equal(t, 0, *exit.ExitCode)
	assert.Equal(t, "out-line\n", exit.StdoutTail)
	assert.NotEmpty(t, exit.FinishedAt)
}

func TestRunnerNonZeroExit(t *testing.T) {
	rec := &traceRecorder{}
	runner := NewRunner(nil)

	_, err := runner.Run(context.Background(), SpawnInput{
		Args:     []string{"/bin/sh", "-c", "echo partial; exit 3"},
		Timeout:  10 * time.Second,
		Label:    "failing",
		Handlers: Handlers{OnTrace: rec.record},
	})

	var exitErr *ProviderExitedNonZeroError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "partial\n", exitErr.Stdout)

	exit := rec.last()
	assert.Equal(t, "exit", exit.Event)
	require.NotNil(t, exit.ExitCode)
	assert.Equal(t, 3, *exit.ExitCode)
}

func TestRunnerTimeoutKills(t *testing.T) {
	rec := &traceRecorder{}
	runner := NewRunner(nil)

	start := time.Now()
	_, err := runner.Run(context.Background(), SpawnInput{
		Args:     []string{"sleep", "60"},
		Timeout:  100 * time.Millisecond,
		Label:    "sleeper",
		Handlers: Handlers{OnTrace: rec.record},
	})

	var timeoutErr *ProviderTimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, []string{"start", "timeout"}, rec.names())
}

func TestRunnerCancelViaWatcher(t *testing.T) {
	rec := &traceRecorder{}
	watcher := NewPollWatcher(nil, time.Hour)
	defer watcher.Destroy()
	runner := NewRunner(nil)

	go func() {
		time.Sleep(100 * time.Millisecond)
		watcher.Trigger("task deleted")
	}()

	_, err := runner.Run(context.Background(), SpawnInput{
		Args:    []string{"sleep", "60"},
		Timeout: 30 * time.Second,
		Label:   "cancellable",
		Handlers: Handlers{
			OnTrace: rec.record,
			Watcher: watcher,
		},
	})

	var cancelErr *CancellationRequestedError
	require.ErrorAs(t, err, &cancelErr)
	assert.Equal(t, "task deleted", cancelErr.Reason)

	cancel := rec.last()
	assert.Equal(t, "cancel", cancel.Event)
	assert.Equal(t, "task deleted", cancel.Reason)
}

func TestRunnerContextCancellation(t *testing.T) {
	runner := NewRunner(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := runner.Run(ctx, SpawnInput{
		Args:    []string{"sleep", "60"},
		Timeout: 30 * time.Second,
		Label:   "ctx",
	})

	var cancelErr *CancellationRequestedError
	require.ErrorAs(t, err, &cancelErr)
}

func TestRunnerRegistersWithManager(t *testing.T) {
	m := NewManager(t.TempDir())
	runner := NewRunner(m)

	var during int
	_, err := runner.Run(context.Background(), SpawnInput{
		Args:    []string{"/bin/sh", "-c", "echo go"},
		Timeout: 10 * time.Second,
		Label:   "tracked",
		Handlers: Handlers{
			OnStdout: func([]byte) { during = m.Active() },
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, during)
	assert.Equal(t, 0, m.Active())
}

func TestRunnerStripsNulBytes(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Run(context.Background(), SpawnInput{
		Args:    []string{"/bin/echo", "cl\x00ean"},
		Timeout: 10 * time.Second,
		Label:   "nul",
	})
	require.NoError(t, err)
	assert.Equal(t, "clean\n", result.Stdout)
}

func TestRunnerEmptyArgv(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Run(context.Background(), SpawnInput{Label: "empty"})
	require.Error(t, err)
}

func TestRunnerTailBounded(t *testing.T) {
	rec := &traceRecorder{}
	runner := NewRunner(nil)

	result, err := runner.Run(context.Background(), SpawnInput{
		Args:     []string{"/bin/sh", "-c", "head -c 10000 /dev/zero | tr '\\0' 'x'"},
		Timeout:  10 * time.Second,
		Label:    "bigout",
		Handlers: Handlers{OnTrace: rec.record},
	})
	require.NoError(t, err)
	assert.Len(t, result.Stdout, 10000)
	assert.Len(t, rec.last().StdoutTail, tailLimit)
}
