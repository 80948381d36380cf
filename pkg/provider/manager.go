package provider

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/agx-dev/agx/pkg/procutil"
)

// killGrace is the SIGTERM to SIGKILL escalation window.
const killGrace = 500 * time.Millisecond

// Manager is the process-wide registry of spawned provider children.
// Each spawn registers a pid (and an on-disk heartbeat file so a later
// daemon can sweep orphans); exits deregister. KillAll is called on
// daemon shutdown.
type Manager struct {
	heartbeatDir string
	logger       *slog.Logger

	mu    sync.Mutex
	procs map[int]string // pid → label
}

// NewManager creates a process manager writing heartbeat files under dir.
func NewManager(heartbeatDir string) *Manager {
	return &Manager{
		heartbeatDir: heartbeatDir,
		logger:       slog.Default(),
		procs:        make(map[int]string),
	}
}

type heartbeatFile struct {
	PID       int    `json:"pid"`
	Label     string `json:"label,omitempty"`
	StartedAt string `json:"started_at"`
}

// Register records a spawned child and writes its heartbeat file.
func (m *Manager) Register(pid int, label string) {
	m.mu.Lock()
	m.procs[pid] = label
	m.mu.Unlock()

	if m.heartbeatDir == "" {
		return
	}
	if err := os.MkdirAll(m.heartbeatDir, 0o755); err != nil {
		m.logger.Warn("Failed to create heartbeat dir", "dir", m.heartbeatDir, "error", err)
		return
	}
	payload, _ := json.Marshal(heartbeatFile{
		PID:       pid,
		Label:     label,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	})
	path := m.heartbeatPath(pid)
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		m.logger.Warn("Failed to write heartbeat file", "path", path, "error", err)
	}
}

// Deregister removes a child from the registry and deletes its heartbeat.
func (m *Manager) Deregister(pid int) {
	m.mu.Lock()
	delete(m.procs, pid)
	m.mu.Unlock()

	if m.heartbeatDir != "" {
		_ = os.Remove(m.heartbeatPath(pid))
	}
}

// Active returns the number of registered children.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.procs)
}

// KillAll terminates every registered child: SIGTERM to the process group,
// then SIGKILL after the grace window. Used during daemon shutdown.
func (m *Manager) KillAll() {
	m.mu.Lock()
	pids := make([]int, 0, len(m.procs))
	for pid := range m.procs {
		pids = append(pids, pid)
	}
	m.mu.Unlock()

	if len(pids) == 0 {
		return
	}
	m.logger.Info("Killing spawned provider children", "count", len(pids))

	for _, pid := range pids {
		signalGroup(pid, syscall.SIGTERM)
	}
	time.Sleep(killGrace)
	for _, pid := range pids {
		if procutil.PIDAlive(pid) {
			signalGroup(pid, syscall.SIGKILL)
		}
		m.Deregister(pid)
	}
}

// SweepOrphans removes heartbeat files whose pids are no longer alive.
// Returns the number of files removed.
func (m *Manager) SweepOrphans() int {
	if m.heartbeatDir == "" {
		return 0
	}
	entries, err := os.ReadDir(m.heartbeatDir)
	if err != nil {
		if !os.IsNotExist(err) {
			m.logger.Warn("Failed to read heartbeat dir", "dir", m.heartbeatDir, "error", err)
		}
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			continue
		}
		if procutil.PIDAlive(pid) {
			continue
		}
		path := filepath.Join(m.heartbeatDir, entry.Name())
		if err := os.Remove(path); err == nil {
			removed++
			m.logger.Info("Removed orphaned heartbeat file", "pid", pid, "path", path)
		}
	}
	return removed
}

func (m *Manager) heartbeatPath(pid int) string {
	return filepath.Join(m.heartbeatDir, strconv.Itoa(pid)+".json")
}

// signalGroup signals the child's process group, falling back to the pid
// itself when the group signal fails.
func signalGroup(pid int, sig syscall.Signal) {
	if err := syscall.Kill(-pid, sig); err != nil {
		_ = syscall.Kill(pid, sig)
	}
}
