package store

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRun(t *testing.T, s *Store, stage Stage, runID string) *Run {
	t.Helper()
	run, err := s.CreateRun(CreateRunInput{
		ProjectSlug: "proj",
		TaskSlug:    "task",
		Stage:       stage,
		RunID:       runID,
		Engine:      "claude",
		Model:       "test-model",
	})
	require.NoError(t, err)
	return run
}

func readEvents(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var ev map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &ev))
		events = append(events, ev)
	}
	require.NoError(t, sc.Err())
	return events
}

func TestCreateRunMaterializesSkeleton(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, StageExecute, "")

	assert.NotEmpty(t, run.Meta.RunID)
	assert.Equal(t, StatusRunning, run.Meta.Status)
	assert.DirExists(t, run.ArtifactsDir())
	assert.FileExists(t, filepath.Join(run.Dir(), "meta.json"))
}

func TestCreateRunReusesContainerID(t *testing.T) {
	s := newTestStore(t)
	execute := createTestRun(t, s, StageExecute, "")
	verify := createTestRun(t, s, StageVerify, execute.Meta.RunID)

	assert.Equal(t, execute.Meta.RunID, verify.Meta.RunID)
	assert.Equal(t, execute.ContainerDir(), verify.ContainerDir())
	assert.NotEqual(t, execute.Dir(), verify.Dir())
}

func TestWritePromptOutputAndArtifact(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, StageExecute, "")

	require.NoError(t, s.WritePrompt(run, "do it", map[string]any{"event": "prompt", "ts": "t"}))
	require.NoError(t, s.WriteOutput(run, "done"))
	require.NoError(t, s.WriteArtifact(run, "verify_results/01-lint.stdout.txt", []byte("ok")))

	prompt, err := os.ReadFile(filepath.Join(run.Dir(), "prompt.md"))
	require.NoError(t, err)
	assert.Equal(t, "do it", string(prompt))

	events := readEvents(t, run.EventsPath())
	require.Len(t, events, 1)
	assert.Equal(t, "prompt", events[0]["event"])

	assert.FileExists(t, filepath.Join(run.ArtifactsDir(), "verify_results", "01-lint.stdout.txt"))
}

func TestFinalizeRunIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, StageExecute, "")

	require.NoError(t, s.FinalizeRun(run, FinalizeRunInput{Status: StatusDone, Reason: "all good"}))
	assert.True(t, run.Finalized())

	// Second finalize with a different status must be a no-op.
	require.NoError(t, s.FinalizeRun(run, FinalizeRunInput{Status: StatusFailed, Reason: "ignored"}))

	var meta RunMeta
	require.NoError(t, readJSON(filepath.Join(run.Dir(), "meta.json"), &meta))
	assert.Equal(t, StatusDone, meta.Status)
	assert.Equal(t, "all good", meta.Reason)
	assert.NotEmpty(t, meta.FinalizedAt)

	events := readEvents(t, run.EventsPath())
	require.Len(t, events, 1)
	assert.Equal(t, "finalized", events[0]["event"])
}

func TestFailRunWritesErrorEventThenFinalizes(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, StageVerify, "")

	require.NoError(t, s.FailRun(run, FailRunInput{Error: "provider exploded", Code: "provider_error"}))

	var meta RunMeta
	require.NoError(t, readJSON(filepath.Join(run.Dir(), "meta.json"), &meta))
	assert.Equal(t, StatusFailed, meta.Status)
	assert.Equal(t, "provider exploded", meta.Reason)

	events := readEvents(t, run.EventsPath())
	require.Len(t, events, 2)
	assert.Equal(t, "error", events[0]["event"])
	assert.Equal(t, "finalized", events[1]["event"])
}

func TestFindIncompleteRuns(t *testing.T) {
	s := newTestStore(t)

	finished := createTestRun(t, s, StageExecute, "")
	require.NoError(t, s.FinalizeRun(finished, FinalizeRunInput{Status: StatusDone}))

	abandoned := createTestRun(t, s, StageExecute, "")

	incomplete, err := s.FindIncompleteRuns("proj", "task")
	require.NoError(t, err)
	require.Len(t, incomplete, 1)
	assert.Equal(t, abandoned.Meta.RunID, incomplete[0].Meta.RunID)
}

func TestFindIncompleteRunsEmptyTask(t *testing.T) {
	s := newTestStore(t)
	incomplete, err := s.FindIncompleteRuns("proj", "no-such-task")
	require.NoError(t, err)
	assert.Empty(t, incomplete)
}

func TestCreateRecoveryRun(t *testing.T) {
	s := newTestStore(t)
	abandoned := createTestRun(t, s, StageExecute, "")

	incomplete, err := s.FindIncompleteRuns("proj", "task")
	require.NoError(t, err)
	require.Len(t, incomplete, 1)

	recovery, err := s.CreateRecoveryRun("proj", "task", incomplete[0])
	require.NoError(t, err)
	assert.Equal(t, StageResume, recovery.Meta.Stage)
	assert.Equal(t, abandoned.Meta.RunID, recovery.Meta.ResumesRunID)

	// The abandoned run is now failed with the restart reason.
	var meta RunMeta
	require.NoError(t, readJSON(filepath.Join(incomplete[0].Dir, "meta.json"), &meta))
	assert.Equal(t, StatusFailed, meta.Status)
	assert.Equal(t, ReasonDaemonRestart, meta.Reason)

	// And nothing except the fresh resume run remains incomplete.
	incomplete, err = s.FindIncompleteRuns("proj", "task")
	require.NoError(t, err)
	require.Len(t, incomplete, 1)
	assert.Equal(t, StageResume, incomplete[0].Meta.Stage)
}

func TestAppendEventOrdering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")
	for i := 0; i < 5; i++ {
		require.NoError(t, AppendEvent(path, map[string]any{"seq": i}))
	}
	events := readEvents(t, path)
	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, float64(i), ev["seq"])
	}
}
