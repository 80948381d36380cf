package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/engine"
	"github.com/agx-dev/agx/pkg/provider"
	"github.com/agx-dev/agx/pkg/store"
	"github.com/agx-dev/agx/pkg/taskservice"
)

// watcherPollInterval is how often the cancellation probe re-reads the
// remote task.
const watcherPollInterval = 2 * time.Second

// defaultProvider is used when a task does not name one.
const defaultProvider = "claude"

// EngineExecutor is the TaskExecutor backed by the iteration engine: it
// mirrors the task locally, guards it with a task lock, recovers abandoned
// runs, and posts the completion when the loop terminates.
type EngineExecutor struct {
	store  *store.Store
	engine *engine.Engine
	tasks  *taskservice.Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewEngineExecutor creates the production task executor.
func NewEngineExecutor(st *store.Store, eng *engine.Engine, tasks *taskservice.Client, cfg *config.Config) *EngineExecutor {
	return &EngineExecutor{
		store:  st,
		engine: eng,
		tasks:  tasks,
		cfg:    cfg,
		logger: slog.Default(),
	}
}

// Execute runs one claimed task through the iteration engine.
func (e *EngineExecutor) Execute(ctx context.Context, task *taskservice.Task) *ExecutionResult {
	log := e.logger.With("task_id", task.ID, "slug", task.Slug)

	projectSlug, err := e.store.ResolveProjectSlug(task.Project.ID, task.Project.Name)
	if err != nil {
		return &ExecutionResult{Err: fmt.Errorf("resolve project slug: %w", err)}
	}
	if _, err := e.store.WriteProjectState(projectSlug, store.ProjectState{
		CloudProjectID: task.Project.ID,
		Name:           task.Project.Name,
	}); err != nil {
		return &ExecutionResult{Err: fmt.Errorf("write project state: %w", err)}
	}

	taskSlug := task.Slug
	if taskSlug == "" {
		taskSlug = store.Slugify(task.Title, store.SlugifyOptions{})
	}
	if err := e.ensureTaskMirror(projectSlug, taskSlug, task); err != nil {
		return &ExecutionResult{Err: err}
	}

	taskDir := e.store.TaskDir(projectSlug, taskSlug)
	lock, err := store.AcquireTaskLock(taskDir, store.AcquireTaskLockOptions{})
	if err != nil {
		var held *store.LockHeldError
		if errors.As(err, &held) {
			log.Warn("Task locked by another process, skipping", "holder_pid", held.PID)
			return &ExecutionResult{Err: err}
		}
		return &ExecutionResult{Err: fmt.Errorf("acquire task lock: %w", err)}
	}
	defer func() {
		if err := store.ReleaseTaskLock(lock); err != nil {
			log.Warn("Failed to release task lock", "error", err)
		}
	}()

	e.recoverAbandonedRuns(projectSlug, taskSlug, log)

	if err := e.store.WriteWorkingSet(projectSlug, taskSlug, workingSetContent(task)); err != nil {
		log.Warn("Failed to write working set", "error", err)
	}

	e.markStarted(ctx, task, log)

	watcher := provider.NewPollWatcher(e.cancelProbe(task.ID), watcherPollInterval)
	watcher.Start()
	defer watcher.Destroy()

	runResult, err := e.engine.Run(ctx, engine.RunInput{
		TaskID:               task.ID,
		Task:                 task,
		ProjectSlug:          projectSlug,
		TaskSlug:             taskSlug,
		Providers:            providersFor(task),
		Model:                task.Model,
		Watcher:              watcher,
		InitialPromptContext: task.Content,
		WorkDir:              e.store.ProjectDir(projectSlug),
	})
	if err != nil {
		var cancelled *provider.CancellationRequestedError
		if errors.As(err, &cancelled) {
			log.Info("Task execution cancelled", "reason", cancelled.Reason)
			return &ExecutionResult{Code: 1, Cancelled: true, Decision: engine.FailedDecision("cancelled: " + cancelled.Reason)}
		}
		return &ExecutionResult{Err: err}
	}

	newStage := e.postCompletion(ctx, task, runResult, log)

	return &ExecutionResult{
		Code:     runResult.Code,
		Decision: runResult.Decision,
		NewStage: newStage,
	}
}

// ensureTaskMirror creates the local task state when it does not exist yet.
func (e *EngineExecutor) ensureTaskMirror(projectSlug, taskSlug string, task *taskservice.Task) error {
	if _, err := e.store.ReadTaskState(projectSlug, taskSlug); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read task state: %w", err)
	}
	_, err := e.store.CreateTask(projectSlug, store.CreateTaskInput{
		TaskSlug:    taskSlug,
		CloudTaskID: task.ID,
		UserRequest: task.Title,
		Goal:        task.Content,
	})
	if err != nil {
		return fmt.Errorf("create task mirror: %w", err)
	}
	return nil
}

// recoverAbandonedRuns finalizes sub-runs left non-terminal by a crashed
// daemon and records resume runs referencing them.
func (e *EngineExecutor) recoverAbandonedRuns(projectSlug, taskSlug string, log *slog.Logger) {
	incomplete, err := e.store.FindIncompleteRuns(projectSlug, taskSlug)
	if err != nil {
		log.Warn("Failed to scan for incomplete runs", "error", err)
		return
	}
	for _, abandoned := range incomplete {
		resume, err := e.store.CreateRecoveryRun(projectSlug, taskSlug, abandoned)
		if err != nil {
			log.Warn("Failed to create recovery run", "abandoned_run_id", abandoned.Meta.RunID, "error", err)
			continue
		}
		_ = e.store.FinalizeRun(resume, store.FinalizeRunInput{
			Status: store.StatusContinue,
			Reason: "recovered after daemon restart",
		})
		log.Info("Recovered abandoned run", "abandoned_run_id", abandoned.Meta.RunID, "resume_run_id", resume.Meta.RunID)
	}
}

// markStarted patches the remote task to in_progress. Best effort.
func (e *EngineExecutor) markStarted(ctx context.Context, task *taskservice.Task, log *slog.Logger) {
	if e.tasks == nil {
		return
	}
	status := taskservice.StatusInProgress
	now := nowISO()
	if _, err := e.tasks.PatchTask(ctx, task.ID, taskservice.TaskPatch{
		Status:    &status,
		StartedAt: &now,
	}); err != nil {
		log.Warn("Failed to mark task in progress", "error", err)
	}
}

// cancelProbe reports external cancellation: the task was deleted, or its
// status was moved to a terminal state by someone else while we run.
func (e *EngineExecutor) cancelProbe(taskID string) provider.CancelProbe {
	return func(ctx context.Context) (bool, string, error) {
		if e.tasks == nil {
			return false, "", nil
		}
		task, err := e.tasks.GetTask(ctx, taskID)
		if err != nil {
			var tsErr *taskservice.TaskServiceError
			if errors.As(err, &tsErr) && tsErr.StatusCode == http.StatusNotFound {
				return true, "task deleted", nil
			}
			return false, "", err
		}
		switch task.Status {
		case taskservice.StatusFailed, taskservice.StatusCompleted:
			return true, "task moved to " + task.Status + " remotely", nil
		}
		return false, "", nil
	}
}

// postCompletion posts the terminal decision and aligns the remote status.
// Returns the stage the task advanced to.
func (e *EngineExecutor) postCompletion(ctx context.Context, task *taskservice.Task, result *engine.RunResult, log *slog.Logger) string {
	if e.tasks == nil {
		return ""
	}

	payload := taskservice.CompletionPayload{
		TaskID:      task.ID,
		Log:         result.Decision.Summary,
		Decision:    result.Decision.Decision,
		FinalResult: result.Decision.FinalResult,
		Explanation: result.Decision.Explanation,
	}
	if result.LastRun != nil {
		payload.ArtifactPath = result.LastRun.ContainerDir()
		if host, err := os.Hostname(); err == nil {
			payload.ArtifactHost = host
		}
	}
	if result.RunIndexEntry != nil {
		if raw, err := json.Marshal(result.RunIndexEntry); err == nil {
			payload.RunEntry = raw
		}
	}

	completion, err := e.tasks.Complete(ctx, payload)
	if err != nil {
		log.Error("Failed to post completion", "error", err)
		return ""
	}

	if patch := engine.BuildCloudTaskTerminalPatch(result.Decision.Decision, completion.NewStage, nowISO()); patch != nil {
		if _, err := e.tasks.PatchTask(ctx, task.ID, *patch); err != nil {
			log.Warn("Failed to align remote task status", "error", err)
		}
	}
	return completion.NewStage
}

// providersFor splits the task's provider field into the execute-phase
// provider list. Swarm tasks may name several providers comma-separated.
func providersFor(task *taskservice.Task) []string {
	raw := task.Provider
	if raw == "" {
		raw = defaultProvider
	}
	if !task.Swarm {
		return []string{strings.TrimSpace(strings.Split(raw, ",")[0])}
	}
	var providers []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			providers = append(providers, p)
		}
	}
	if len(providers) == 0 {
		providers = []string{defaultProvider}
	}
	return providers
}

// workingSetContent renders the task's working_set.md from cloud fields.
func workingSetContent(task *taskservice.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", task.Title)
	fmt.Fprintf(&b, "- id: %s\n- slug: %s\n- stage: %s\n- status: %s\n", task.ID, task.Slug, task.Stage, task.Status)
	if task.Content != "" {
		b.WriteString("\n")
		b.WriteString(task.Content)
		b.WriteString("\n")
	}
	return b.String()
}

func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
