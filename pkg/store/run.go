package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Stage identifies the kind of sub-run within a run container.
type Stage string

// Run stages.
const (
	StagePlan    Stage = "plan"
	StageExecute Stage = "execute"
	StageVerify  Stage = "verify"
	StageResume  Stage = "resume"
)

// RunStatus is the lifecycle status of a sub-run.
type RunStatus string

// Run statuses. StatusRunning is the only non-terminal status.
const (
	StatusRunning  RunStatus = "running"
	StatusDone     RunStatus = "done"
	StatusContinue RunStatus = "continue"
	StatusFailed   RunStatus = "failed"
	StatusBlocked  RunStatus = "blocked"
)

// Terminal reports whether a status finalizes a run.
func (s RunStatus) Terminal() bool { return s != "" && s != StatusRunning }

// RunMeta is the persisted meta.json of a sub-run.
type RunMeta struct {
	RunID        string    `json:"run_id"`
	Stage        Stage     `json:"stage"`
	Engine       string    `json:"engine,omitempty"`
	Model        string    `json:"model,omitempty"`
	Status       RunStatus `json:"status"`
	Reason       string    `json:"reason,omitempty"`
	CreatedAt    string    `json:"created_at"`
	FinalizedAt  string    `json:"finalized_at,omitempty"`
	ResumesRunID string    `json:"resumes_run_id,omitempty"`
}

// Run is a handle to one sub-run directory. Finalization is idempotent and
// guarded for concurrent use.
type Run struct {
	Meta RunMeta

	dir          string // stage dir: runs/<container>/<stage>
	containerDir string // runs/<container>

	mu        sync.Mutex
	finalized bool
}

// Dir returns the sub-run's stage directory.
func (r *Run) Dir() string { return r.dir }

// ContainerDir returns the run container directory shared by the
// execute and verify sub-runs of one iteration.
func (r *Run) ContainerDir() string { return r.containerDir }

// EventsPath returns the sub-run's append-only event log.
func (r *Run) EventsPath() string { return filepath.Join(r.dir, "events.ndjson") }

// ArtifactsDir returns the sub-run's artifacts directory.
func (r *Run) ArtifactsDir() string { return filepath.Join(r.dir, "artifacts") }

// Finalized reports whether the in-memory handle has been finalized.
func (r *Run) Finalized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finalized
}

// NewRunID returns a fresh run container id. ULIDs sort by creation time,
// which keeps runs/ listings chronological.
func NewRunID() string {
	return ulid.Make().String()
}

// CreateRunInput describes a sub-run to create.
type CreateRunInput struct {
	ProjectSlug string
	TaskSlug    string
	Stage       Stage
	// RunID reuses an existing container id, linking an execute+verify
	// pair under one container. Empty generates a fresh id.
	RunID  string
	Engine string
	Model  string
	// ResumesRunID marks a resume run with the abandoned run it recovers.
	ResumesRunID string
}

// CreateRun materializes a sub-run directory skeleton and its initial
// meta.json with status running.
func (s *Store) CreateRun(in CreateRunInput) (*Run, error) {
	if in.Stage == "" {
		return nil, fmt.Errorf("run stage is required")
	}
	id := in.RunID
	if id == "" {
		id = NewRunID()
	}

	containerDir := filepath.Join(s.TaskDir(in.ProjectSlug, in.TaskSlug), "runs", id)
	dir := filepath.Join(containerDir, string(in.Stage))
	if err := os.MkdirAll(filepath.Join(dir, "artifacts"), 0o755); err != nil {
		return nil, fmt.Errorf("create run dirs: %w", err)
	}

	meta := RunMeta{
		RunID:        id,
		Stage:        in.Stage,
		Engine:       in.Engine,
		Model:        in.Model,
		Status:       StatusRunning,
		CreatedAt:    nowISO(),
		ResumesRunID: in.ResumesRunID,
	}
	if err := writeJSONAtomic(filepath.Join(dir, "meta.json"), meta); err != nil {
		return nil, fmt.Errorf("write run meta: %w", err)
	}

	return &Run{Meta: meta, dir: dir, containerDir: containerDir}, nil
}

// WritePrompt records the prompt text and appends a prompt event.
func (s *Store) WritePrompt(run *Run, text string, event any) error {
	if err := os.WriteFile(filepath.Join(run.dir, "prompt.md"), []byte(text), 0o644); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	if event != nil {
		return AppendEvent(run.EventsPath(), event)
	}
	return nil
}

// WriteOutput records the provider output using write-then-rename.
func (s *Store) WriteOutput(run *Run, text string) error {
	return writeFileAtomic(filepath.Join(run.dir, "output.md"), []byte(text))
}

// WriteDecision records the adjudicated decision using write-then-rename.
func (s *Store) WriteDecision(run *Run, decision any) error {
	return writeJSONAtomic(filepath.Join(run.dir, "decision.json"), decision)
}

// WriteArtifact writes bytes under the sub-run's artifacts directory,
// creating intermediate directories as needed.
func (s *Store) WriteArtifact(run *Run, relPath string, data []byte) error {
	path := filepath.Join(run.ArtifactsDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// AppendEvent appends one line-delimited JSON event, newline-terminated.
func AppendEvent(eventsPath string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(eventsPath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(eventsPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// FinalizeRunInput is the terminal outcome of a sub-run.
type FinalizeRunInput struct {
	Status RunStatus
	Reason string
}

// FinalizeRun writes the terminal status into meta.json, emits a terminal
// event, and fsyncs the event log. Idempotent: a second call is a no-op.
func (s *Store) FinalizeRun(run *Run, in FinalizeRunInput) error {
	run.mu.Lock()
	defer run.mu.Unlock()
	if run.finalized {
		return nil
	}

	status := in.Status
	if !status.Terminal() {
		status = StatusFailed
	}
	now := nowISO()
	run.Meta.Status = status
	run.Meta.Reason = in.Reason
	run.Meta.FinalizedAt = now

	if err := writeJSONAtomic(filepath.Join(run.dir, "meta.json"), run.Meta); err != nil {
		return fmt.Errorf("finalize run meta: %w", err)
	}

	terminal := map[string]any{
		"event":  "finalized",
		"run_id": run.Meta.RunID,
		"stage":  run.Meta.Stage,
		"status": status,
		"reason": in.Reason,
		"ts":     now,
	}
	if err := AppendEvent(run.EventsPath(), terminal); err != nil {
		return err
	}
	if err := syncFile(run.EventsPath()); err != nil {
		return err
	}

	run.finalized = true
	return nil
}

// FailRunInput is the shorthand failure outcome.
type FailRunInput struct {
	Error string
	Code  string
}

// FailRun finalizes the run as failed and appends an error event.
func (s *Store) FailRun(run *Run, in FailRunInput) error {
	if !run.Finalized() {
		_ = AppendEvent(run.EventsPath(), map[string]any{
			"event":  "error",
			"run_id": run.Meta.RunID,
			"stage":  run.Meta.Stage,
			"error":  in.Error,
			"code":   in.Code,
			"ts":     nowISO(),
		})
	}
	return s.FinalizeRun(run, FinalizeRunInput{Status: StatusFailed, Reason: in.Error})
}

// IncompleteRun describes an on-disk sub-run whose meta.json lacks a
// terminal status.
type IncompleteRun struct {
	Meta RunMeta
	Dir  string
}

// FindIncompleteRuns scans the task's runs/ tree for sub-runs that were
// never finalized (left behind by a crashed or killed daemon).
func (s *Store) FindIncompleteRuns(projectSlug, taskSlug string) ([]IncompleteRun, error) {
	runsDir := filepath.Join(s.TaskDir(projectSlug, taskSlug), "runs")
	containers, err := os.ReadDir(runsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var incomplete []IncompleteRun
	for _, container := range containers {
		if !container.IsDir() {
			continue
		}
		containerDir := filepath.Join(runsDir, container.Name())
		stages, err := os.ReadDir(containerDir)
		if err != nil {
			continue
		}
		for _, stage := range stages {
			if !stage.IsDir() {
				continue
			}
			metaPath := filepath.Join(containerDir, stage.Name(), "meta.json")
			var meta RunMeta
			if err := readJSON(metaPath, &meta); err != nil {
				continue
			}
			if !meta.Status.Terminal() {
				incomplete = append(incomplete, IncompleteRun{
					Meta: meta,
					Dir:  filepath.Join(containerDir, stage.Name()),
				})
			}
		}
	}
	return incomplete, nil
}

// ReasonDaemonRestart marks runs abandoned by a daemon restart.
const ReasonDaemonRestart = "daemon_restart"

// CreateRecoveryRun finalizes an abandoned sub-run as failed with reason
// daemon_restart and writes a fresh resume run that references it.
func (s *Store) CreateRecoveryRun(projectSlug, taskSlug string, abandoned IncompleteRun) (*Run, error) {
	orphan := &Run{
		Meta:         abandoned.Meta,
		dir:          abandoned.Dir,
		containerDir: filepath.Dir(abandoned.Dir),
	}
	if err := s.FinalizeRun(orphan, FinalizeRunInput{
		Status: StatusFailed,
		Reason: ReasonDaemonRestart,
	}); err != nil {
		return nil, fmt.Errorf("finalize abandoned run: %w", err)
	}

	return s.CreateRun(CreateRunInput{
		ProjectSlug:  projectSlug,
		TaskSlug:     taskSlug,
		Stage:        StageResume,
		Engine:       abandoned.Meta.Engine,
		Model:        abandoned.Meta.Model,
		ResumesRunID: abandoned.Meta.RunID,
	})
}

// WritePlan writes the container-level plan/plan.md.
func (s *Store) WritePlan(run *Run, content string) error {
	path := filepath.Join(run.containerDir, "plan", "plan.md")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func syncFile(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	return f.Sync()
}
