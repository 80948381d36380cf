package queue

import (
	"log/slog"
	"sync"
	"time"
)

// orphanState tracks the heartbeat sweep for health reporting.
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanSweep periodically removes heartbeat files of spawned provider
// children whose pids are no longer alive. A startup sweep runs
// immediately to clean up after a crashed daemon.
func (p *WorkerPool) runOrphanSweep() {
	p.sweepOnce()

	interval := p.cfg.OrphanSweepInterval
	if interval <= 0 {
		interval = 60 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.sweepOnce()
		}
	}
}

func (p *WorkerPool) sweepOnce() {
	removed := p.manager.SweepOrphans()
	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.recovered += removed
	p.orphans.mu.Unlock()

	if removed > 0 {
		slog.Info("Orphan sweep removed dead heartbeats", "count", removed)
	}
}
