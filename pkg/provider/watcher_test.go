package provider

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollWatcherTriggerFansOutOnce(t *testing.T) {
	w := NewPollWatcher(nil, time.Hour)
	defer w.Destroy()

	var calls atomic.Int32
	var got atomic.Value
	w.OnCancel(func(reason string) {
		calls.Add(1)
		got.Store(reason)
	})

	w.Trigger("user cancel")
	w.Trigger("second trigger ignored")

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "user cancel", got.Load())
	assert.True(t, w.IsCancelled())
	assert.Equal(t, "user cancel", w.Reason())
}

func TestPollWatcherOnCancelAfterCancelledFiresImmediately(t *testing.T) {
	w := NewPollWatcher(nil, time.Hour)
	defer w.Destroy()
	w.Trigger("done")

	fired := false
	w.OnCancel(func(reason string) {
		fired = true
		assert.Equal(t, "done", reason)
	})
	assert.True(t, fired)
}

func TestPollWatcherUnsubscribe(t *testing.T) {
	w := NewPollWatcher(nil, time.Hour)
	defer w.Destroy()

	var calls atomic.Int32
	unsubscribe := w.OnCancel(func(string) { calls.Add(1) })
	unsubscribe()

	w.Trigger("cancel")
	assert.Equal(t, int32(0), calls.Load())
}

func TestPollWatcherCheck(t *testing.T) {
	w := NewPollWatcher(nil, time.Hour)
	defer w.Destroy()

	require.NoError(t, w.Check())
	w.Trigger("stop now")

	err := w.Check()
	var cancelErr *CancellationRequestedError
	require.ErrorAs(t, err, &cancelErr)
	assert.Equal(t, "stop now", cancelErr.Reason)
}

func TestPollWatcherPollsProbe(t *testing.T) {
	var polls atomic.Int32
	probe := func(ctx context.Context) (bool, string, error) {
		if polls.Add(1) >= 2 {
			return true, "remote cancel", nil
		}
		return false, "", nil
	}

	w := NewPollWatcher(probe, 10*time.Millisecond)
	defer w.Destroy()

	done := make(chan string, 1)
	w.OnCancel(func(reason string) { done <- reason })
	w.Start()

	select {
	case reason := <-done:
		assert.Equal(t, "remote cancel", reason)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never cancelled")
	}
}

func TestPollWatcherSwallowsProbeErrors(t *testing.T) {
	var polls atomic.Int32
	probe := func(ctx context.Context) (bool, string, error) {
		n := polls.Add(1)
		if n == 1 {
			return false, "", errors.New("transient")
		}
		return true, "after error", nil
	}

	w := NewPollWatcher(probe, 10*time.Millisecond)
	defer w.Destroy()

	done := make(chan struct{})
	w.OnCancel(func(string) { close(done) })
	w.Start()

	select {
	case <-done:
		assert.Equal(t, "after error", w.Reason())
	case <-time.After(2 * time.Second):
		t.Fatal("watcher stopped polling after probe error")
	}
}

func TestPollWatcherDestroyStopsPolling(t *testing.T) {
	var polls atomic.Int32
	probe := func(ctx context.Context) (bool, string, error) {
		polls.Add(1)
		return false, "", nil
	}

	w := NewPollWatcher(probe, 5*time.Millisecond)
	w.Start()
	time.Sleep(30 * time.Millisecond)
	w.Destroy()

	settled := polls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, polls.Load())
}
