package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agx-dev/agx/pkg/procutil"
)

// LockFileName is the sentinel file guarding a task directory.
const LockFileName = "task.lock"

// LockHeldError indicates the task lock is held by a live process.
type LockHeldError struct {
	Path string
	PID  int
}

func (e *LockHeldError) Error() string {
	return fmt.Sprintf("task lock %s held by live pid %d", e.Path, e.PID)
}

// TaskLock is a held task-directory lock.
type TaskLock struct {
	path     string
	released bool
}

// Path returns the lock file location.
func (l *TaskLock) Path() string { return l.path }

type lockFile struct {
	PID        int    `json:"pid"`
	AcquiredAt string `json:"acquired_at"`
}

// AcquireTaskLockOptions controls lock acquisition.
type AcquireTaskLockOptions struct {
	// Force steals a lock held by a dead process AND a lock held by a live
	// one. Without Force only stale (dead-holder) locks are stolen.
	Force bool
}

// AcquireTaskLock takes the exclusive per-task lock under taskRoot.
// The lock file records the holder pid so liveness is checkable: a lock
// whose holder is dead is considered stale and silently re-acquired.
// A lock held by a live process fails with *LockHeldError unless Force.
func AcquireTaskLock(taskRoot string, opts AcquireTaskLockOptions) (*TaskLock, error) {
	if err := os.MkdirAll(taskRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create task root: %w", err)
	}
	path := filepath.Join(taskRoot, LockFileName)

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			payload, _ := json.Marshal(lockFile{PID: os.Getpid(), AcquiredAt: nowISO()})
			if _, werr := f.Write(append(payload, '\n')); werr != nil {
				_ = f.Close()
				_ = os.Remove(path)
				return nil, fmt.Errorf("write lock file: %w", werr)
			}
			if cerr := f.Close(); cerr != nil {
				return nil, cerr
			}
			return &TaskLock{path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("acquire task lock: %w", err)
		}

		holder, readErr := readLockHolder(path)
		switch {
		case readErr != nil:
			// Unreadable lock file: treat as stale.
		case procutil.PIDAlive(holder.PID) && !opts.Force:
			return nil, &LockHeldError{Path: path, PID: holder.PID}
		}
		// Stale or forced: remove and retry the exclusive create once.
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			return nil, fmt.Errorf("steal task lock: %w", rmErr)
		}
	}
	return nil, fmt.Errorf("acquire task lock %s: contention after steal", path)
}

// ReleaseTaskLock removes the lock file. Safe to call twice.
func ReleaseTaskLock(l *TaskLock) error {
	if l == nil || l.released {
		return nil
	}
	l.released = true
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("release task lock: %w", err)
	}
	return nil
}

func readLockHolder(path string) (lockFile, error) {
	var lf lockFile
	data, err := os.ReadFile(path)
	if err != nil {
		return lf, err
	}
	if err := json.Unmarshal(data, &lf); err != nil {
		return lf, err
	}
	return lf, nil
}
