// Package provider spawns and supervises external LLM agent CLIs as opaque
// child processes: stream tees, bounded output tails, trace events,
// timeouts, and cooperative cancellation.
package provider

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"
)

// tailLimit bounds the stdout/stderr tails embedded in trace events.
const tailLimit = 4000

// ProviderExitedNonZeroError is a child that ran to completion with a
// non-zero exit code.
type ProviderExitedNonZeroError struct {
	Label  string
	Code   int
	Stdout string
	Stderr string
}

func (e *ProviderExitedNonZeroError) Error() string {
	return fmt.Sprintf("provider %s exited with code %d", e.Label, e.Code)
}

// ProviderTimeoutError is a child killed after exceeding its timeout.
type ProviderTimeoutError struct {
	Label   string
	Timeout time.Duration
}

func (e *ProviderTimeoutError) Error() string {
	return fmt.Sprintf("provider %s timed out after %s", e.Label, e.Timeout)
}

// TraceEvent is one runner lifecycle event, appended to the run's
// events.ndjson by the caller's OnTrace handler.
type TraceEvent struct {
	Event      string   `json:"event"` // start | exit | timeout | cancel
	Label      string   `json:"label,omitempty"`
	PID        int      `json:"pid,omitempty"`
	Args       []string `json:"args,omitempty"`
	TimeoutMs  int64    `json:"timeout_ms,omitempty"`
	TS         string   `json:"ts"`
	ExitCode   *int     `json:"exit_code,omitempty"`
	DurationMs int64    `json:"duration_ms,omitempty"`
	FinishedAt string   `json:"finished_at,omitempty"`
	StdoutTail string   `json:"stdout_tail,omitempty"`
	StderrTail string   `json:"stderr_tail,omitempty"`
	Reason     string   `json:"reason,omitempty"`
}

// Handlers receive the child's streams and lifecycle events as they occur.
// Any handler may be nil.
type Handlers struct {
	OnStdout func(chunk []byte)
	OnStderr func(chunk []byte)
	OnTrace  func(ev TraceEvent)
	Watcher  CancellationWatcher
}

// SpawnInput describes one child invocation. Args is a full argv vector;
// no shell interpretation occurs and embedded NUL bytes are stripped.
type SpawnInput struct {
	Args     []string
	Timeout  time.Duration
	Label    string
	Dir      string
	Handlers Handlers
}

// SpawnResult is the captured output of a zero-exit child.
type SpawnResult struct {
	Stdout string
	Stderr string
	Code   int
}

// Runner spawns provider children. The runner never retries; callers that
// want retries re-invoke Run per attempt so each attempt emits its own
// full trace.
type Runner struct {
	manager *Manager
}

// NewRunner creates a runner registering children with manager.
// manager may be nil (no heartbeat/kill registry).
func NewRunner(manager *Manager) *Runner {
	return &Runner{manager: manager}
}

// Run spawns the child and supervises it to completion.
func (r *Runner) Run(ctx context.Context, in SpawnInput) (*SpawnResult, error) {
	args := sanitizeArgs(in.Args)
	if len(args) == 0 {
		return nil, fmt.Errorf("spawn %s: empty argv", in.Label)
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = in.Dir
	cmd.Stdin = strings.NewReader("")
	// Own process group so cancellation reaches grandchildren too.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("spawn %s: stdout pipe: %w", in.Label, err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("spawn %s: stderr pipe: %w", in.Label, err)
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", in.Label, err)
	}
	pid := cmd.Process.Pid

	if r.manager != nil {
		r.manager.Register(pid, in.Label)
		defer r.manager.Deregister(pid)
	}

	r.emit(in, TraceEvent{
		Event:     "start",
		Label:     in.Label,
		PID:       pid,
		Args:      args,
		TimeoutMs: in.Timeout.Milliseconds(),
		TS:        isoNow(),
	})

	var (
		stdout, stderr capture
		readers        sync.WaitGroup
	)
	readers.Add(2)
	go tee(&readers, stdoutPipe, &stdout, in.Handlers.OnStdout)
	go tee(&readers, stderrPipe, &stderr, in.Handlers.OnStderr)

	done := make(chan error, 1)
	go func() {
		readers.Wait()
		done <- cmd.Wait()
	}()

	cancelCh := make(chan string, 1)
	if w := in.Handlers.Watcher; w != nil {
		unsubscribe := w.OnCancel(func(reason string) {
			select {
			case cancelCh <- reason:
			default:
			}
		})
		defer unsubscribe()
	}

	var timeoutCh <-chan time.Time
	if in.Timeout > 0 {
		timer := time.NewTimer(in.Timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case waitErr := <-done:
		return r.finishExit(in, pid, start, &stdout, &stderr, cmd, waitErr)

	case <-timeoutCh:
		signalGroup(pid, syscall.SIGKILL)
		<-done
		r.emit(in, TraceEvent{
			Event:      "timeout",
			Label:      in.Label,
			PID:        pid,
			TS:         isoNow(),
			DurationMs: time.Since(start).Milliseconds(),
			StdoutTail: stdout.tailString(),
			StderrTail: stderr.tailString(),
		})
		return nil, &ProviderTimeoutError{Label: in.Label, Timeout: in.Timeout}

	case reason := <-cancelCh:
		return nil, r.finishCancel(in, pid, start, &stdout, &stderr, done, reason)

	case <-ctx.Done():
		return nil, r.finishCancel(in, pid, start, &stdout, &stderr, done, ctx.Err().Error())
	}
}

// finishCancel escalates SIGTERM → SIGKILL after the grace window.
func (r *Runner) finishCancel(in SpawnInput, pid int, start time.Time, stdout, stderr *capture, done <-chan error, reason string) error {
	signalGroup(pid, syscall.SIGTERM)
	select {
	case <-done:
	case <-time.After(killGrace):
		signalGroup(pid, syscall.SIGKILL)
		<-done
	}
	r.emit(in, TraceEvent{
		Event:      "cancel",
		Label:      in.Label,
		PID:        pid,
		TS:         isoNow(),
		DurationMs: time.Since(start).Milliseconds(),
		Reason:     reason,
		StdoutTail: stdout.tailString(),
		StderrTail: stderr.tailString(),
	})
	return &CancellationRequestedError{Reason: reason}
}

func (r *Runner) finishExit(in SpawnInput, pid int, start time.Time, stdout, stderr *capture, cmd *exec.Cmd, waitErr error) (*SpawnResult, error) {
	code := -1
	if cmd.ProcessState != nil {
		code = cmd.ProcessState.ExitCode()
	}
	r.emit(in, TraceEvent{
		Event:      "exit",
		Label:      in.Label,
		PID:        pid,
		TS:         isoNow(),
		ExitCode:   &code,
		DurationMs: time.Since(start).Milliseconds(),
		FinishedAt: isoNow(),
		StdoutTail: stdout.tailString(),
		StderrTail: stderr.tailString(),
	})

	if waitErr != nil && code == -1 {
		return nil, fmt.Errorf("wait for %s: %w", in.Label, waitErr)
	}
	if code != 0 {
		return nil, &ProviderExitedNonZeroError{
			Label:  in.Label,
			Code:   code,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}
	}
	return &SpawnResult{Stdout: stdout.String(), Stderr: stderr.String(), Code: code}, nil
}

func (r *Runner) emit(in SpawnInput, ev TraceEvent) {
	if in.Handlers.OnTrace != nil {
		in.Handlers.OnTrace(ev)
	}
}

// tee streams a pipe into the capture buffer and the chunk handler.
func tee(wg *sync.WaitGroup, pipe io.Reader, cap_ *capture, handler func([]byte)) {
	defer wg.Done()
	buf := make([]byte, 4096)
	for {
		n, err := pipe.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			cap_.Write(chunk)
			if handler != nil {
				handler(chunk)
			}
		}
		if err != nil {
			return
		}
	}
}

// capture accumulates a full stream plus a bounded tail.
type capture struct {
	mu   sync.Mutex
	full strings.Builder
	tail []byte
}

func (c *capture) Write(p []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.full.Write(p)
	c.tail = append(c.tail, p...)
	if len(c.tail) > tailLimit {
		c.tail = c.tail[len(c.tail)-tailLimit:]
	}
}

func (c *capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.full.String()
}

func (c *capture) tailString() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.tail)
}

// sanitizeArgs strips embedded NUL bytes from every argument.
func sanitizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, strings.ReplaceAll(a, "\x00", ""))
	}
	return out
}

func isoNow() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
