package cleanup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/store"
)

func newTestService(t *testing.T, cfg config.RetentionConfig) (*Service, *store.Store) {
	t.Helper()
	st := store.New(t.TempDir())
	return NewService(&cfg, st), st
}

// makeContainer creates runs/<name> with one stage file and backdates
// every mtime to age ago.
func makeContainer(t *testing.T, st *store.Store, project, task, name string, age time.Duration) string {
	t.Helper()
	dir := filepath.Join(st.TaskDir(project, task), "runs", name)
	stageDir := filepath.Join(dir, "stage-1")
	require.NoError(t, os.MkdirAll(stageDir, 0o755))
	metaPath := filepath.Join(stageDir, "meta.json")
	require.NoError(t, os.WriteFile(metaPath, []byte(`{"status":"completed"}`), 0o644))

	old := time.Now().Add(-age)
	for _, p := range []string{metaPath, stageDir, dir} {
		require.NoError(t, os.Chtimes(p, old, old))
	}
	return dir
}

func TestSweepDeletesExpiredContainers(t *testing.T) {
	svc, st := newTestService(t, config.RetentionConfig{RunRetentionDays: 7})

	expired := makeContainer(t, st, "proj", "task", "01AAAAAAAAAAAAAAAAAAAAAAAA", 10*24*time.Hour)
	fresh := makeContainer(t, st, "proj", "task", "01BBBBBBBBBBBBBBBBBBBBBBBB", 24*time.Hour)

	svc.Sweep()

	assert.NoDirExists(t, expired)
	assert.DirExists(t, fresh)
}

func TestSweepEnforcesPerTaskCap(t *testing.T) {
	svc, st := newTestService(t, config.RetentionConfig{MaxRunsPerTask: 2})

	var dirs []string
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("01AAAAAAAAAAAAAAAAAAAAAA%02d", i)
		dirs = append(dirs, makeContainer(t, st, "proj", "task", name, 48*time.Hour))
	}

	svc.Sweep()

	// Oldest two (lowest ULIDs) go, newest two stay.
	assert.NoDirExists(t, dirs[0])
	assert.NoDirExists(t, dirs[1])
	assert.DirExists(t, dirs[2])
	assert.DirExists(t, dirs[3])
}

func TestSweepSparesRecentlyTouchedContainers(t *testing.T) {
	svc, st := newTestService(t, config.RetentionConfig{RunRetentionDays: 7})

	// The container dir is old but a log file inside was just written.
	dir := makeContainer(t, st, "proj", "task", "01AAAAAAAAAAAAAAAAAAAAAAAA", 30*24*time.Hour)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stage-1", "events.ndjson"), []byte("{}\n"), 0o644))

	svc.Sweep()

	assert.DirExists(t, dir)
}

func TestSweepScansAllTasks(t *testing.T) {
	svc, st := newTestService(t, config.RetentionConfig{RunRetentionDays: 7})

	a := makeContainer(t, st, "proj-a", "task-1", "01AAAAAAAAAAAAAAAAAAAAAAAA", 10*24*time.Hour)
	b := makeContainer(t, st, "proj-b", "task-2", "01AAAAAAAAAAAAAAAAAAAAAAAA", 10*24*time.Hour)

	svc.Sweep()

	assert.NoDirExists(t, a)
	assert.NoDirExists(t, b)
}

func TestSweepNoopWhenDisabled(t *testing.T) {
	svc, st := newTestService(t, config.RetentionConfig{})

	dir := makeContainer(t, st, "proj", "task", "01AAAAAAAAAAAAAAAAAAAAAAAA", 365*24*time.Hour)

	svc.Sweep()

	assert.DirExists(t, dir)
}

func TestStartStop(t *testing.T) {
	svc, st := newTestService(t, config.RetentionConfig{
		RunRetentionDays: 7,
		CleanupInterval:  time.Hour,
	})
	expired := makeContainer(t, st, "proj", "task", "01AAAAAAAAAAAAAAAAAAAAAAAA", 10*24*time.Hour)

	svc.Start(context.Background())
	// The initial sweep runs on Start, before the first tick.
	assert.Eventually(t, func() bool {
		_, err := os.Stat(expired)
		return os.IsNotExist(err)
	}, 5*time.Second, 10*time.Millisecond)
	svc.Stop()
}
