package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndReleaseTaskLock(t *testing.T) {
	root := t.TempDir()

	lock, err := AcquireTaskLock(root, AcquireTaskLockOptions{})
	require.NoError(t, err)
	assert.FileExists(t, lock.Path())

	require.NoError(t, ReleaseTaskLock(lock))
	assert.NoFileExists(t, lock.Path())

	// Release twice is a no-op.
	assert.NoError(t, ReleaseTaskLock(lock))
}

func TestAcquireTaskLockHeldByLiveProcess(t *testing.T) {
	root := t.TempDir()

	first, err := AcquireTaskLock(root, AcquireTaskLockOptions{})
	require.NoError(t, err)
	defer func() { _ = ReleaseTaskLock(first) }()

	// The lock holder (this test process) is alive, so a second acquire
	// without force must fail with LockHeldError.
	_, err = AcquireTaskLock(root, AcquireTaskLockOptions{})
	require.Error(t, err)
	var held *LockHeldError
	require.ErrorAs(t, err, &held)
	assert.Equal(t, os.Getpid(), held.PID)
}

func TestAcquireTaskLockForceStealsLiveLock(t *testing.T) {
	root := t.TempDir()

	first, err := AcquireTaskLock(root, AcquireTaskLockOptions{})
	require.NoError(t, err)
	defer func() { _ = ReleaseTaskLock(first) }()

	second, err := AcquireTaskLock(root, AcquireTaskLockOptions{Force: true})
	require.NoError(t, err)
	require.NoError(t, ReleaseTaskLock(second))
}

func TestAcquireTaskLockStealsStaleLock(t *testing.T) {
	root := t.TempDir()

	// Plant a lock file referencing a pid that cannot exist.
	payload, _ := json.Marshal(lockFile{PID: 99999999, AcquiredAt: "2020-01-01T00:00:00.000Z"})
	require.NoError(t, os.WriteFile(filepath.Join(root, LockFileName), payload, 0o644))

	lock, err := AcquireTaskLock(root, AcquireTaskLockOptions{})
	require.NoError(t, err)
	require.NoError(t, ReleaseTaskLock(lock))
}

func TestAcquireTaskLockUnreadableLockTreatedAsStale(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, LockFileName), []byte("not json"), 0o644))

	lock, err := AcquireTaskLock(root, AcquireTaskLockOptions{})
	require.NoError(t, err)
	require.NoError(t, ReleaseTaskLock(lock))
}
