package provider

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRegisterWritesHeartbeat(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	m.Register(4242, "claude")
	assert.Equal(t, 1, m.Active())

	data, err := os.ReadFile(filepath.Join(dir, "4242.json"))
	require.NoError(t, err)

	var hb heartbeatFile
	require.NoError(t, json.Unmarshal(data, &hb))
	assert.Equal(t, 4242, hb.PID)
	assert.Equal(t, "claude", hb.Label)
	assert.NotEmpty(t, hb.StartedAt)

	m.Deregister(4242)
	assert.Equal(t, 0, m.Active())
	assert.NoFileExists(t, filepath.Join(dir, "4242.json"))
}

func TestManagerSweepOrphansRemovesDeadPids(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	// A pid that cannot exist on Linux (beyond pid_max).
	dead := 99999999
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, strconv.Itoa(dead)+".json"),
		[]byte(`{"pid":99999999}`), 0o644))

	// Our own pid is certainly alive.
	alive := os.Getpid()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, strconv.Itoa(alive)+".json"),
		[]byte(`{"pid":`+strconv.Itoa(alive)+`}`), 0o644))

	// Non-heartbeat files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	removed := m.SweepOrphans()
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, filepath.Join(dir, strconv.Itoa(dead)+".json"))
	assert.FileExists(t, filepath.Join(dir, strconv.Itoa(alive)+".json"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestManagerSweepOrphansMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 0, m.SweepOrphans())
}

func TestManagerKillAllTerminatesChildren(t *testing.T) {
	m := NewManager(t.TempDir())

	cmd := exec.Command("sleep", "60")
	require.NoError(t, cmd.Start())
	pid := cmd.Process.Pid
	m.Register(pid, "sleeper")

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	m.KillAll()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("child survived KillAll")
	}
	assert.Equal(t, 0, m.Active())
}
