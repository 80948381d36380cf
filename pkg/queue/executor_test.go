package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/engine"
	"github.com/agx-dev/agx/pkg/provider"
	"github.com/agx-dev/agx/pkg/store"
	"github.com/agx-dev/agx/pkg/taskservice"
)

// fakeTaskService records completions and patches for one task.
type fakeTaskService struct {
	mu          sync.Mutex
	task        taskservice.Task
	newStage    string
	completions []taskservice.CompletionPayload
	patches     []map[string]any
	comments    []string
}

func (f *fakeTaskService) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch {
		case r.URL.Path == "/api/queue/complete":
			var payload taskservice.CompletionPayload
			_ = json.NewDecoder(r.Body).Decode(&payload)
			f.completions = append(f.completions, payload)
			_ = json.NewEncoder(w).Encode(map[string]any{"task": f.task, "newStage": f.newStage})
		case r.Method == http.MethodPatch:
			var patch map[string]any
			_ = json.NewDecoder(r.Body).Decode(&patch)
			f.patches = append(f.patches, patch)
			_ = json.NewEncoder(w).Encode(map[string]any{"task": f.task})
		case r.Method == http.MethodPost: // comments
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.comments = append(f.comments, body["content"])
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{}`))
		default: // GET /api/tasks/:id for the cancel probe
			_ = json.NewEncoder(w).Encode(map[string]any{"task": f.task})
		}
	}
}

func doneProviderScript(t *testing.T) string {
	t.Helper()
	decision := `{"done":true,"decision":"done","explanation":"verified","final_result":"shipped","summary":"all good","next_prompt":"","implementation_summary_md":"# Summary"}`
	script := fmt.Sprintf(`#!/bin/sh
verify=0
for a in "$@"; do
  if [ "$a" = "--print" ]; then verify=1; fi
done
if [ "$verify" = "1" ]; then
  printf '%%s\n' '%s'
else
  echo "worked"
fi
`, decision)
	path := filepath.Join(t.TempDir(), "fake-provider")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func newTestExecutor(t *testing.T, baseURL string) (*EngineExecutor, *store.Store) {
	t.Helper()
	st := store.New(t.TempDir())
	cfg := &config.Config{
		CloudURL: baseURL,
		Engine: config.EngineConfig{
			ProviderTimeout:      30 * time.Second,
			VerifyTimeout:        30 * time.Second,
			SwarmMaxIters:        2,
			SingleMaxIters:       6,
			VerifyPromptMaxChars: 6000,
			ArtifactShaMaxBytes:  5 * 1024 * 1024,
		},
	}
	client := taskservice.NewClient(baseURL, "u")
	eng := engine.New(st, provider.NewRunner(nil), client, cfg.Engine)
	return NewEngineExecutor(st, eng, client, cfg), st
}

func claimedTask(providerPath string) *taskservice.Task {
	return &taskservice.Task{
		ID:       "t1",
		Slug:     "fix-bug",
		Title:    "Fix the bug",
		Content:  "The login endpoint 500s.",
		Stage:    taskservice.StageExecution,
		Status:   taskservice.StatusInProgress,
		Provider: providerPath,
		Project:  taskservice.Project{ID: "p1", Name: "Web App"},
	}
}

func TestExecutorRunsTaskToCompletion(t *testing.T) {
	svc := &fakeTaskService{newStage: "verification"}
	svc.task = taskservice.Task{ID: "t1", Status: taskservice.StatusInProgress}
	srv := httptest.NewServer(svc.handler())
	defer srv.Close()

	executor, st := newTestExecutor(t, srv.URL)
	task := claimedTask(doneProviderScript(t))
	svc.mu.Lock()
	svc.task.Stage = task.Stage
	svc.mu.Unlock()

	result := executor.Execute(context.Background(), task)
	require.NotNil(t, result)
	require.NoError(t, result.Err)
	assert.Equal(t, 0, result.Code)
	assert.Equal(t, engine.DecisionDone, result.Decision.Decision)
	assert.Equal(t, "verification", result.NewStage)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	require.Len(t, svc.completions, 1)
	completion := svc.completions[0]
	assert.Equal(t, "t1", completion.TaskID)
	assert.Equal(t, "done", completion.Decision)
	assert.NotEmpty(t, completion.RunEntry)

	// done decision with non-done stage promotes the task remotely.
	var sawTerminalPatch bool
	for _, patch := range svc.patches {
		if patch["status"] == "completed" && patch["stage"] == "done" {
			sawTerminalPatch = true
		}
	}
	assert.True(t, sawTerminalPatch, "expected terminal status patch, got %v", svc.patches)

	// Local mirror exists and the lock was released.
	state, err := st.ReadTaskState("web-app", "fix-bug")
	require.NoError(t, err)
	assert.Equal(t, "t1", state.CloudTaskID)
	assert.Equal(t, "done", state.Status)

	lock, err := store.AcquireTaskLock(st.TaskDir("web-app", "fix-bug"), store.AcquireTaskLockOptions{})
	require.NoError(t, err, "task lock must be released after execution")
	_ = store.ReleaseTaskLock(lock)
}

func TestExecutorSkipsLockedTask(t *testing.T) {
	svc := &fakeTaskService{newStage: "done"}
	srv := httptest.NewServer(svc.handler())
	defer srv.Close()

	executor, st := newTestExecutor(t, srv.URL)
	task := claimedTask(doneProviderScript(t))

	// Hold the lock with a live pid.
	taskDir := st.TaskDir("web-app", "fix-bug")
	require.NoError(t, os.MkdirAll(taskDir, 0o755))
	lock, err := store.AcquireTaskLock(taskDir, store.AcquireTaskLockOptions{})
	require.NoError(t, err)
	defer func() { _ = store.ReleaseTaskLock(lock) }()

	result := executor.Execute(context.Background(), task)
	require.NotNil(t, result)
	var held *store.LockHeldError
	require.ErrorAs(t, result.Err, &held)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	assert.Empty(t, svc.completions, "no completion for a skipped task")
}

func TestExecutorRecoversAbandonedRuns(t *testing.T) {
	svc := &fakeTaskService{newStage: "done"}
	srv := httptest.NewServer(svc.handler())
	defer srv.Close()

	executor, st := newTestExecutor(t, srv.URL)
	task := claimedTask(doneProviderScript(t))

	// Simulate a crashed daemon: a running sub-run that was never finalized.
	_, err := st.CreateTask("web-app", store.CreateTaskInput{TaskSlug: "fix-bug", CloudTaskID: "t1"})
	require.NoError(t, err)
	abandoned, err := st.CreateRun(store.CreateRunInput{
		ProjectSlug: "web-app",
		TaskSlug:    "fix-bug",
		Stage:       store.StageExecute,
	})
	require.NoError(t, err)

	result := executor.Execute(context.Background(), task)
	require.NoError(t, result.Err)

	incomplete, err := st.FindIncompleteRuns("web-app", "fix-bug")
	require.NoError(t, err)
	assert.Empty(t, incomplete, "all runs must be terminal after recovery")

	meta := readRunMeta(t, filepath.Join(abandoned.Dir(), "meta.json"))
	assert.Equal(t, store.StatusFailed, meta.Status)
	assert.Equal(t, store.ReasonDaemonRestart, meta.Reason)
}

func TestProvidersFor(t *testing.T) {
	single := claimedTask("claude, codex")
	assert.Equal(t, []string{"claude"}, providersFor(single))

	swarm := claimedTask("claude, codex")
	swarm.Swarm = true
	assert.Equal(t, []string{"claude", "codex"}, providersFor(swarm))

	empty := claimedTask("")
	assert.Equal(t, []string{defaultProvider}, providersFor(empty))
}

func readRunMeta(t *testing.T, path string) store.RunMeta {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var meta store.RunMeta
	require.NoError(t, json.Unmarshal(data, &meta))
	return meta
}
