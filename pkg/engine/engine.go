package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/provider"
	"github.com/agx-dev/agx/pkg/store"
	"github.com/agx-dev/agx/pkg/taskservice"
)

// Engine drives the execute/verify iteration loop for one claimed task.
// One Engine is shared across workers; per-task state lives in RunInput
// and the loop's locals.
type Engine struct {
	store  *store.Store
	runner *provider.Runner
	tasks  *taskservice.Client
	cfg    config.EngineConfig
	logger *slog.Logger
}

// New creates an iteration engine. tasks may be nil for offline runs;
// comments and status patches are then skipped.
func New(st *store.Store, runner *provider.Runner, tasks *taskservice.Client, cfg config.EngineConfig) *Engine {
	return &Engine{
		store:  st,
		runner: runner,
		tasks:  tasks,
		cfg:    cfg,
		logger: slog.Default(),
	}
}

// RunInput describes one iteration-engine invocation.
type RunInput struct {
	TaskID string
	Task   *taskservice.Task

	ProjectSlug string
	TaskSlug    string

	// Providers to spawn in the execute phase. One entry for single-agent
	// tasks; several for swarm tasks (one child per provider, the first
	// acting as the verifier).
	Providers []string
	Model     string

	Watcher provider.CancellationWatcher

	// InitialPromptContext is recorded as iteration 1's prompt.md and
	// prepended to its execute prompt.
	InitialPromptContext string

	// MaxIters overrides the configured iteration cap when > 0.
	MaxIters int

	// WorkDir is the working repository inspected for verification
	// evidence and used as the provider's cwd.
	WorkDir string
}

// RunResult is the iteration loop's outcome.
type RunResult struct {
	Code          int
	Decision      Decision
	LastRun       *store.Run
	RunIndexEntry *store.RunIndexEntry
}

// iterationOutcome carries one iteration's result inside the loop.
type iterationOutcome struct {
	decision  Decision
	verifyRun *store.Run
	index     *store.RunIndexEntry
}

// decisionRunStatus maps a decision to the run status both sub-runs are
// finalized with.
func decisionRunStatus(decision string) store.RunStatus {
	switch decision {
	case DecisionDone:
		return store.StatusDone
	case DecisionBlocked:
		return store.StatusBlocked
	case DecisionNotDone:
		return store.StatusContinue
	default:
		return store.StatusFailed
	}
}

// decisionTaskStatus maps a decision to the local mirror's task status.
func decisionTaskStatus(decision string) string {
	switch decision {
	case DecisionDone:
		return "done"
	case DecisionBlocked:
		return "blocked"
	case DecisionNotDone:
		return "running"
	default:
		return "failed"
	}
}

const executeFinalizeReason = "Execute phase completed; see verify stage for decision."

// Run executes up to maxIters execute/verify iterations and returns the
// terminal result. A CancellationRequestedError is returned as an error;
// every other failure is folded into a failed decision.
func (e *Engine) Run(ctx context.Context, in RunInput) (*RunResult, error) {
	if len(in.Providers) == 0 {
		return nil, fmt.Errorf("run task %s: no providers", in.TaskID)
	}
	maxIters := in.MaxIters
	if maxIters <= 0 {
		maxIters = e.cfg.MaxItersFor(in.Task != nil && in.Task.Swarm)
	}

	var (
		nextPrompt string
		lastRun    *store.Run
		lastIndex  *store.RunIndexEntry
	)
	for iteration := 1; iteration <= maxIters; iteration++ {
		outcome, err := e.iterate(ctx, in, iteration, nextPrompt)
		if err != nil {
			return nil, err
		}
		if outcome.verifyRun != nil {
			lastRun = outcome.verifyRun
		}
		if outcome.index != nil {
			lastIndex = outcome.index
		}

		d := outcome.decision
		switch d.Decision {
		case DecisionDone:
			return &RunResult{Code: 0, Decision: d, LastRun: lastRun, RunIndexEntry: lastIndex}, nil
		case DecisionBlocked, DecisionFailed:
			return &RunResult{Code: 1, Decision: d, LastRun: lastRun, RunIndexEntry: lastIndex}, nil
		}
		nextPrompt = AugmentNextPrompt(d.NextPrompt, d)
	}

	d := NormalizeDecision(Decision{
		Decision:    DecisionNotDone,
		Explanation: fmt.Sprintf("Reached max iterations (%d) without a terminal decision.", maxIters),
	})
	return &RunResult{Code: 1, Decision: d, LastRun: lastRun, RunIndexEntry: lastIndex}, nil
}

// iterate runs one execute+verify cycle under a fresh run container.
func (e *Engine) iterate(ctx context.Context, in RunInput, iteration int, nextPrompt string) (*iterationOutcome, error) {
	if err := e.checkCancelled(in, nil, nil); err != nil {
		return nil, err
	}

	containerID := store.NewRunID()
	execRun, err := e.store.CreateRun(store.CreateRunInput{
		ProjectSlug: in.ProjectSlug,
		TaskSlug:    in.TaskSlug,
		Stage:       store.StageExecute,
		RunID:       containerID,
		Engine:      in.Providers[0],
		Model:       in.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("create execute run: %w", err)
	}

	executePrompt := BuildExecutePrompt(iteration, in.InitialPromptContext, nextPrompt)
	if err := e.store.WritePrompt(execRun, executePrompt, map[string]any{
		"event":     "prompt",
		"stage":     store.StageExecute,
		"iteration": iteration,
		"ts":        nowISO(),
	}); err != nil {
		e.logger.Warn("Failed to write execute prompt", "task_id", in.TaskID, "error", err)
	}

	output, err := e.executePhase(ctx, in, execRun, executePrompt)
	if err != nil {
		var cancelled *provider.CancellationRequestedError
		if errors.As(err, &cancelled) {
			return nil, e.cancelRuns(in, execRun, nil, cancelled)
		}
		d := FailedDecision("Execute Error: " + err.Error())
		e.persistIterationArtifacts(execRun, nil, d, Evidence{})
		_ = e.store.FailRun(execRun, store.FailRunInput{Error: err.Error(), Code: "execute_error"})
		return &iterationOutcome{decision: d}, nil
	}

	if err := e.store.WriteOutput(execRun, "# Provider Output\n\n"+output); err != nil {
		e.logArtifactError(execRun.ContainerDir(), "output.md", err)
	}

	verifyRun, err := e.store.CreateRun(store.CreateRunInput{
		ProjectSlug: in.ProjectSlug,
		TaskSlug:    in.TaskSlug,
		Stage:       store.StageVerify,
		RunID:       containerID,
		Engine:      in.Providers[0],
		Model:       in.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("create verify run: %w", err)
	}

	evidence := CollectEvidence(ctx, in.WorkDir)
	verifyPrompt := BuildVerifyPrompt(in.Task, evidence, e.cfg.VerifyPromptMaxChars)
	if err := e.store.WritePrompt(verifyRun, verifyPrompt, map[string]any{
		"event":     "prompt",
		"stage":     store.StageVerify,
		"iteration": iteration,
		"ts":        nowISO(),
	}); err != nil {
		e.logger.Warn("Failed to write verify prompt", "task_id", in.TaskID, "error", err)
	}

	if err := e.checkCancelled(in, execRun, verifyRun); err != nil {
		return nil, err
	}

	verifyResult, err := e.spawnVerifier(ctx, in, verifyRun, verifyPrompt)
	if err != nil {
		var cancelled *provider.CancellationRequestedError
		if errors.As(err, &cancelled) {
			return nil, e.cancelRuns(in, execRun, verifyRun, cancelled)
		}
		e.persistIterationArtifacts(execRun, verifyRun, NormalizeDecision(Decision{}), evidence)
		_ = e.store.WriteOutput(verifyRun, "# Verifier Error\n\n"+err.Error())
		_ = e.store.FailRun(verifyRun, store.FailRunInput{Error: err.Error(), Code: "verify_error"})
		_ = e.store.FinalizeRun(execRun, store.FinalizeRunInput{Status: store.StatusFailed, Reason: "Verifier failed: " + err.Error()})
		return &iterationOutcome{decision: FailedDecision("Verifier Error: " + err.Error()), verifyRun: verifyRun}, nil
	}

	if err := e.store.WriteOutput(verifyRun, verifyResult.Stdout); err != nil {
		e.logArtifactError(verifyRun.ContainerDir(), "output.md", err)
	}

	d, ok := ParseDecision(verifyResult.Stdout, verifyResult.Stderr)
	if !ok {
		d = Decision{Decision: DecisionFailed, Explanation: "Verifier returned invalid JSON."}
	}
	stage := ""
	if in.Task != nil {
		stage = in.Task.Stage
	}
	d = EnforceStageRequirement(stage, d)

	if err := e.store.WriteDecision(verifyRun, d); err != nil {
		e.logArtifactError(verifyRun.ContainerDir(), "decision.json", err)
	}
	e.persistIterationArtifacts(execRun, verifyRun, d, evidence)

	status := decisionRunStatus(d.Decision)
	_ = e.store.FinalizeRun(execRun, store.FinalizeRunInput{Status: status, Reason: executeFinalizeReason})
	_ = e.store.FinalizeRun(verifyRun, store.FinalizeRunInput{Status: status, Reason: d.Explanation})

	var index *store.RunIndexEntry
	if entry, err := e.store.BuildRunIndexEntry(verifyRun, e.cfg.ArtifactShaMaxBytes); err == nil {
		index = &entry
	} else {
		e.logger.Warn("Failed to build run index entry", "task_id", in.TaskID, "error", err)
	}

	if _, err := e.store.UpdateTaskState(in.ProjectSlug, in.TaskSlug, store.TaskState{
		Status:    decisionTaskStatus(d.Decision),
		LastRunID: containerID,
	}); err != nil {
		e.logger.Warn("Failed to update local task state", "task_id", in.TaskID, "error", err)
	}

	e.postDecisionComment(ctx, in, iteration, d)

	return &iterationOutcome{decision: d, verifyRun: verifyRun, index: index}, nil
}

// executePhase spawns the provider(s) with retries and returns the
// combined output. Swarm tasks spawn all providers concurrently.
func (e *Engine) executePhase(ctx context.Context, in RunInput, execRun *store.Run, prompt string) (string, error) {
	if len(in.Providers) == 1 {
		result, err := e.spawnExecute(ctx, in, execRun, in.Providers[0], prompt, "spawned")
		if err != nil {
			return "", err
		}
		return result.Stdout, nil
	}

	type swarmOut struct {
		provider string
		result   *provider.SpawnResult
		err      error
	}
	outs := make([]swarmOut, len(in.Providers))
	var wg sync.WaitGroup
	for i, name := range in.Providers {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			logBase := fmt.Sprintf("spawned.%02d-%s", i+1, name)
			result, err := e.spawnExecute(ctx, in, execRun, name, prompt, logBase)
			outs[i] = swarmOut{provider: name, result: result, err: err}
		}(i, name)
	}
	wg.Wait()

	var combined string
	for _, out := range outs {
		if out.err != nil {
			var cancelled *provider.CancellationRequestedError
			if errors.As(out.err, &cancelled) {
				return "", out.err
			}
			return "", fmt.Errorf("provider %s: %w", out.provider, out.err)
		}
		combined += fmt.Sprintf("## %s\n\n%s\n\n", out.provider, out.result.Stdout)
	}
	return combined, nil
}

// spawnExecute runs one execute-phase provider invocation, retrying
// timeouts and non-zero exits up to the configured retry count.
func (e *Engine) spawnExecute(ctx context.Context, in RunInput, execRun *store.Run, providerName, prompt, logBase string) (*provider.SpawnResult, error) {
	args := []string{providerName, "--cloud-task", in.TaskID}
	if in.Model != "" {
		args = append(args, "--model", in.Model)
	}
	args = append(args, "--prompt", prompt)

	attempts := 1 + e.cfg.ProviderRetries
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := e.spawn(ctx, in, execRun, spawnSpec{
			args:    args,
			timeout: e.cfg.ProviderTimeout,
			label:   providerName,
			logBase: logBase,
		})
		if err == nil {
			return result, nil
		}
		lastErr = err

		var timeout *provider.ProviderTimeoutError
		var nonZero *provider.ProviderExitedNonZeroError
		if !errors.As(err, &timeout) && !errors.As(err, &nonZero) {
			return nil, err
		}
		if attempt < attempts {
			e.logger.Warn("Provider invocation failed, retrying",
				"provider", providerName, "attempt", attempt, "error", err)
		}
	}
	return nil, lastErr
}

// spawnVerifier runs the verifier provider once.
func (e *Engine) spawnVerifier(ctx context.Context, in RunInput, verifyRun *store.Run, prompt string) (*provider.SpawnResult, error) {
	verifier := in.Providers[0]
	args := []string{verifier, "--prompt", prompt, "--print"}
	if in.Model != "" {
		args = append(args, "--model", in.Model)
	}
	return e.spawn(ctx, in, verifyRun, spawnSpec{
		args:    args,
		timeout: e.cfg.VerifyTimeout,
		label:   verifier + "-verify",
		logBase: "spawned",
	})
}

type spawnSpec struct {
	args    []string
	timeout time.Duration
	label   string
	logBase string
}

// spawn invokes the runner, teeing stdout/stderr to log files under the
// run's artifacts directory and appending trace events to its event log.
func (e *Engine) spawn(ctx context.Context, in RunInput, run *store.Run, spec spawnSpec) (*provider.SpawnResult, error) {
	stdoutLog := e.openStreamLog(run, spec.logBase+".stdout.log")
	stderrLog := e.openStreamLog(run, spec.logBase+".stderr.log")
	defer closeStreamLog(stdoutLog)
	defer closeStreamLog(stderrLog)

	return e.runner.Run(ctx, provider.SpawnInput{
		Args:    spec.args,
		Timeout: spec.timeout,
		Label:   spec.label,
		Dir:     in.WorkDir,
		Handlers: provider.Handlers{
			OnStdout: writeStream(stdoutLog),
			OnStderr: writeStream(stderrLog),
			OnTrace: func(ev provider.TraceEvent) {
				if err := store.AppendEvent(run.EventsPath(), ev); err != nil {
					e.logger.Warn("Failed to append trace event", "error", err)
				}
			},
			Watcher: in.Watcher,
		},
	})
}

func (e *Engine) openStreamLog(run *store.Run, name string) *os.File {
	path := filepath.Join(run.ArtifactsDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		e.logger.Warn("Failed to open stream log", "path", path, "error", err)
		return nil
	}
	return f
}

func writeStream(f *os.File) func([]byte) {
	if f == nil {
		return nil
	}
	return func(chunk []byte) { _, _ = f.Write(chunk) }
}

func closeStreamLog(f *os.File) {
	if f != nil {
		_ = f.Close()
	}
}

// checkCancelled consults the watcher and, when cancelled, finalizes the
// in-flight runs before returning the cancellation error.
func (e *Engine) checkCancelled(in RunInput, execRun, verifyRun *store.Run) error {
	if in.Watcher == nil {
		return nil
	}
	if err := in.Watcher.Check(); err != nil {
		var cancelled *provider.CancellationRequestedError
		if errors.As(err, &cancelled) {
			return e.cancelRuns(in, execRun, verifyRun, cancelled)
		}
		return err
	}
	return nil
}

// cancelRuns finalizes the in-flight runs as failed with reason
// "cancelled" and returns the cancellation error for the caller to unwind.
// No completion is posted.
func (e *Engine) cancelRuns(in RunInput, execRun, verifyRun *store.Run, cancelled *provider.CancellationRequestedError) error {
	e.logger.Info("Cancellation requested, unwinding iteration loop",
		"task_id", in.TaskID, "reason", cancelled.Reason)
	for _, run := range []*store.Run{execRun, verifyRun} {
		if run != nil && !run.Finalized() {
			_ = e.store.FinalizeRun(run, store.FinalizeRunInput{
				Status: store.StatusFailed,
				Reason: "cancelled",
			})
		}
	}
	return cancelled
}

// postDecisionComment posts the decision summary to the task. Best effort.
func (e *Engine) postDecisionComment(ctx context.Context, in RunInput, iteration int, d Decision) {
	if e.tasks == nil {
		return
	}
	content := fmt.Sprintf("Iteration %d: %s\n\n%s", iteration, d.Decision, d.Summary)
	if err := e.tasks.PostComment(ctx, in.TaskID, content); err != nil {
		e.logger.Warn("Failed to post decision comment", "task_id", in.TaskID, "error", err)
	}
}

func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
