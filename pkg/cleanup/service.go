// Package cleanup provides data retention for the local artifact store.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/store"
)

// graceWindow protects containers that are still being written: nothing
// touched this recently is deleted, whatever its age says.
const graceWindow = time.Hour

// Service periodically enforces retention on run artifacts:
//   - Deletes run containers older than the retention window
//   - Caps the number of retained run containers per task
//
// All operations are idempotent and safe to re-run after a crash.
type Service struct {
	config *config.RetentionConfig
	store  *store.Store

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, st *store.Store) *Service {
	return &Service{
		config: cfg,
		store:  st,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"max_runs_per_task", s.config.MaxRunsPerTask,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep()

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep walks every task's runs/ tree once and applies both policies.
func (s *Service) Sweep() {
	removed := 0
	for _, runsDir := range s.taskRunDirs() {
		removed += s.enforceRetention(runsDir)
	}
	if removed > 0 {
		slog.Info("Retention: deleted old run containers", "count", removed)
	}
}

// taskRunDirs lists <root>/<project>/<task>/runs directories.
func (s *Service) taskRunDirs() []string {
	var dirs []string
	projects, err := os.ReadDir(s.store.Root())
	if err != nil {
		return nil
	}
	for _, project := range projects {
		if !project.IsDir() {
			continue
		}
		tasks, err := os.ReadDir(s.store.ProjectDir(project.Name()))
		if err != nil {
			continue
		}
		for _, task := range tasks {
			if !task.IsDir() {
				continue
			}
			runsDir := filepath.Join(s.store.TaskDir(project.Name(), task.Name()), "runs")
			if info, err := os.Stat(runsDir); err == nil && info.IsDir() {
				dirs = append(dirs, runsDir)
			}
		}
	}
	return dirs
}

type containerInfo struct {
	path    string
	modTime time.Time
}

func (s *Service) enforceRetention(runsDir string) int {
	entries, err := os.ReadDir(runsDir)
	if err != nil {
		return 0
	}

	var containers []containerInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(runsDir, entry.Name())
		containers = append(containers, containerInfo{
			path:    path,
			modTime: newestModTime(path),
		})
	}
	// Container ids are ULIDs, so name order is creation order.
	sort.Slice(containers, func(i, j int) bool {
		return containers[i].path < containers[j].path
	})

	now := time.Now()
	removed := 0

	// Age-based deletion.
	if days := s.config.RunRetentionDays; days > 0 {
		cutoff := now.AddDate(0, 0, -days)
		kept := containers[:0]
		for _, c := range containers {
			if c.modTime.Before(cutoff) && s.remove(c, now) {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		containers = kept
	}

	// Count cap: oldest first.
	if cap := s.config.MaxRunsPerTask; cap > 0 && len(containers) > cap {
		for _, c := range containers[:len(containers)-cap] {
			if s.remove(c, now) {
				removed++
			}
		}
	}
	return removed
}

func (s *Service) remove(c containerInfo, now time.Time) bool {
	if now.Sub(c.modTime) < graceWindow {
		return false
	}
	if err := os.RemoveAll(c.path); err != nil {
		slog.Error("Retention: failed to delete run container", "path", c.path, "error", err)
		return false
	}
	return true
}

// newestModTime returns the most recent mtime in the container tree, so
// an old container with a fresh log file is treated as active.
func newestModTime(root string) time.Time {
	var newest time.Time
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if info, err := d.Info(); err == nil && info.ModTime().After(newest) {
			newest = info.ModTime()
		}
		return nil
	})
	return newest
}
