package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agx-dev/agx/pkg/config"
	"github.com/agx-dev/agx/pkg/provider"
	"github.com/agx-dev/agx/pkg/store"
	"github.com/agx-dev/agx/pkg/taskservice"
)

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		ProviderTimeout:      30 * time.Second,
		VerifyTimeout:        30 * time.Second,
		ProviderRetries:      0,
		SwarmMaxIters:        2,
		SingleMaxIters:       6,
		VerifyPromptMaxChars: 6000,
		ArtifactShaMaxBytes:  5 * 1024 * 1024,
	}
}

// fakeProvider writes an executable sh script acting as both the execute
// provider and the verifier (distinguished by --print).
func fakeProvider(t *testing.T, verifyBody string) string {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
verify=0
for a in "$@"; do
  if [ "$a" = "--print" ]; then verify=1; fi
done
if [ "$verify" = "1" ]; then
%s
else
  echo "provider did work"
fi
`, verifyBody)
	path := filepath.Join(t.TempDir(), "fake-provider")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	st := store.New(t.TempDir())
	return New(st, provider.NewRunner(nil), nil, testEngineConfig()), st
}

func execTask() *taskservice.Task {
	return &taskservice.Task{
		ID:    "task-1",
		Slug:  "fix-bug",
		Title: "Fix the bug",
		Stage: taskservice.StageExecution,
	}
}

func runInput(providerPath string, workDir string) RunInput {
	return RunInput{
		TaskID:               "task-1",
		Task:                 execTask(),
		ProjectSlug:          "proj",
		TaskSlug:             "fix-bug",
		Providers:            []string{providerPath},
		InitialPromptContext: "Initial task context.",
		WorkDir:              workDir,
	}
}

const doneDecisionJSON = `{"done":true,"decision":"done","explanation":"verified","final_result":"shipped","summary":"all good","next_prompt":"","implementation_summary_md":"# Summary\nDid the thing."}`

func TestEngineRunDoneFirstIteration(t *testing.T) {
	eng, st := newTestEngine(t)
	script := fakeProvider(t, `  printf '%s\n' '`+doneDecisionJSON+`'`)

	result, err := eng.Run(context.Background(), runInput(script, t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Code)
	assert.Equal(t, DecisionDone, result.Decision.Decision)
	assert.Equal(t, "verified", result.Decision.Explanation)

	require.NotNil(t, result.LastRun)
	assert.Equal(t, store.StatusDone, result.LastRun.Meta.Status)
	require.NotNil(t, result.RunIndexEntry)
	assert.NotEmpty(t, result.RunIndexEntry.ArtifactManifest)

	containerDir := result.LastRun.ContainerDir()
	stdoutLog, err := os.ReadFile(filepath.Join(containerDir, "execute", "artifacts", "spawned.stdout.log"))
	require.NoError(t, err)
	assert.Contains(t, string(stdoutLog), "provider did work")
	assert.FileExists(t, filepath.Join(containerDir, "execute", "artifacts", "implementation_summary.md"))
	assert.FileExists(t, filepath.Join(containerDir, "verify", "decision.json"))
	assert.FileExists(t, filepath.Join(containerDir, "plan", "plan.md"))

	state, err := st.ReadTaskState("proj", "fix-bug")
	require.NoError(t, err)
	assert.Equal(t, "done", state.Status)
	assert.NotEmpty(t, state.LastRunID)
}

func TestEngineRunIteratesUntilDone(t *testing.T) {
	eng, _ := newTestEngine(t)
	countFile := filepath.Join(t.TempDir(), "count")
	verifyBody := fmt.Sprintf(`  n=$(cat %q 2>/dev/null || echo 0)
  n=$((n+1))
  echo "$n" > %q
  if [ "$n" -ge 2 ]; then
    printf '%%s\n' '%s'
  else
    printf '%%s\n' '{"decision":"not_done","explanation":"tests missing","next_prompt":"write tests","summary":"partial","final_result":"partial"}'
  fi`, countFile, countFile, doneDecisionJSON)
	script := fakeProvider(t, verifyBody)

	result, err := eng.Run(context.Background(), runInput(script, t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Code)
	assert.Equal(t, DecisionDone, result.Decision.Decision)

	count, err := os.ReadFile(countFile)
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(string(count)))
}

func TestEngineRunInvalidVerifierJSON(t *testing.T) {
	eng, _ := newTestEngine(t)
	script := fakeProvider(t, `  echo "definitely not json"`)

	result, err := eng.Run(context.Background(), runInput(script, t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Code)
	assert.Equal(t, DecisionFailed, result.Decision.Decision)
	assert.Equal(t, "Verifier returned invalid JSON.", result.Decision.Explanation)
}

func TestEngineRunMaxIters(t *testing.T) {
	eng, _ := newTestEngine(t)
	script := fakeProvider(t, `  printf '%s\n' '{"decision":"not_done","explanation":"still going","next_prompt":"more","summary":"s","final_result":"f"}'`)

	in := runInput(script, t.TempDir())
	in.MaxIters = 2
	result, err := eng.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Code)
	assert.Equal(t, DecisionNotDone, result.Decision.Decision)
	assert.Contains(t, result.Decision.Explanation, "max iterations")
}

func TestEngineRunCancelledBeforeSpawn(t *testing.T) {
	eng, _ := newTestEngine(t)
	script := fakeProvider(t, `  printf '%s\n' '`+doneDecisionJSON+`'`)

	watcher := provider.NewPollWatcher(nil, time.Hour)
	defer watcher.Destroy()
	watcher.Trigger("task deleted")

	in := runInput(script, t.TempDir())
	in.Watcher = watcher
	_, err := eng.Run(context.Background(), in)

	var cancelled *provider.CancellationRequestedError
	require.ErrorAs(t, err, &cancelled)
	assert.Equal(t, "task deleted", cancelled.Reason)
}

func TestEngineRunExecuteFailure(t *testing.T) {
	eng, _ := newTestEngine(t)
	script := filepath.Join(t.TempDir(), "broken-provider")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 7\n"), 0o755))

	result, err := eng.Run(context.Background(), runInput(script, t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Code)
	assert.Equal(t, DecisionFailed, result.Decision.Decision)
	assert.Contains(t, result.Decision.Explanation, "Execute Error")
}

func TestEngineRunStageRequirementDowngrade(t *testing.T) {
	eng, _ := newTestEngine(t)
	// Claims done but omits implementation_summary_md in the execution stage.
	script := fakeProvider(t, `  printf '%s\n' '{"done":true,"decision":"done","explanation":"looks done","summary":"s","final_result":"f","next_prompt":""}'`)

	in := runInput(script, t.TempDir())
	in.MaxIters = 1
	result, err := eng.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Code)
	assert.Equal(t, DecisionNotDone, result.Decision.Decision)
}

func TestEngineRunSwarmCombinesProviders(t *testing.T) {
	eng, _ := newTestEngine(t)
	script := fakeProvider(t, `  printf '%s\n' '`+doneDecisionJSON+`'`)

	in := runInput(script, t.TempDir())
	in.Task.Swarm = true
	in.Providers = []string{script, script}
	result, err := eng.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Code)

	containerDir := result.LastRun.ContainerDir()
	output, err := os.ReadFile(filepath.Join(containerDir, "execute", "output.md"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(output), "provider did work"))
}
