package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// CancellationRequestedError unwinds the iteration loop when an external
// cancel signal arrives.
type CancellationRequestedError struct {
	Reason string
}

func (e *CancellationRequestedError) Error() string {
	if e.Reason == "" {
		return "cancellation requested"
	}
	return fmt.Sprintf("cancellation requested: %s", e.Reason)
}

// CancellationWatcher is the cancellation signal source consulted by the
// runner and the iteration engine. Callbacks must be registered before
// Start so delivery stays deterministic.
type CancellationWatcher interface {
	Start()
	// OnCancel registers fn and returns an unsubscribe func. If the
	// watcher is already cancelled, fn fires immediately.
	OnCancel(fn func(reason string)) (unsubscribe func())
	// Check returns *CancellationRequestedError when cancelled.
	Check() error
	IsCancelled() bool
	Reason() string
	Destroy()
}

// CancelProbe reports whether cancellation has been requested externally.
// Probe errors are swallowed; the watcher keeps polling.
type CancelProbe func(ctx context.Context) (cancelled bool, reason string, err error)

// PollWatcher polls a CancelProbe on an interval and fans the signal out to
// registered callbacks. It satisfies CancellationWatcher.
type PollWatcher struct {
	probe    CancelProbe
	interval time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	started   bool
	destroyed bool
	cancelled bool
	reason    string
	nextSubID int
	subs      map[int]func(reason string)

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPollWatcher creates a watcher that polls probe every interval.
func NewPollWatcher(probe CancelProbe, interval time.Duration) *PollWatcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &PollWatcher{
		probe:    probe,
		interval: interval,
		logger:   slog.Default(),
		subs:     make(map[int]func(string)),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the polling goroutine. Safe to call once; later calls
// are no-ops.
func (w *PollWatcher) Start() {
	w.mu.Lock()
	if w.started || w.destroyed {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run()
}

func (w *PollWatcher) run() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), w.interval)
			cancelled, reason, err := w.probe(ctx)
			cancel()
			if err != nil {
				w.logger.Warn("Cancellation probe failed", "error", err)
				continue
			}
			if cancelled {
				w.Trigger(reason)
				return
			}
		}
	}
}

// Trigger flips the watcher to cancelled and notifies subscribers once.
func (w *PollWatcher) Trigger(reason string) {
	w.mu.Lock()
	if w.cancelled {
		w.mu.Unlock()
		return
	}
	w.cancelled = true
	w.reason = reason
	subs := make([]func(string), 0, len(w.subs))
	for _, fn := range w.subs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	for _, fn := range subs {
		fn(reason)
	}
}

// OnCancel registers a cancellation callback.
func (w *PollWatcher) OnCancel(fn func(reason string)) func() {
	w.mu.Lock()
	if w.cancelled {
		reason := w.reason
		w.mu.Unlock()
		fn(reason)
		return func() {}
	}
	id := w.nextSubID
	w.nextSubID++
	w.subs[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.subs, id)
		w.mu.Unlock()
	}
}

// Check returns a CancellationRequestedError when cancelled.
func (w *PollWatcher) Check() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancelled {
		return &CancellationRequestedError{Reason: w.reason}
	}
	return nil
}

// IsCancelled reports the cancel state.
func (w *PollWatcher) IsCancelled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancelled
}

// Reason returns the cancellation reason, if any.
func (w *PollWatcher) Reason() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reason
}

// Destroy stops the polling goroutine and drops all subscribers.
func (w *PollWatcher) Destroy() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
	w.mu.Lock()
	w.destroyed = true
	w.subs = make(map[int]func(string))
	w.mu.Unlock()
}
