package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func TestResolveProjectSlugFreshProject(t *testing.T) {
	s := newTestStore(t)
	slug, err := s.ResolveProjectSlug("cloud-1", "My Project")
	require.NoError(t, err)
	assert.Equal(t, "my-project", slug)
}

func TestResolveProjectSlugSameCloudID(t *testing.T) {
	s := newTestStore(t)
	_, err := s.WriteProjectState("my-project", ProjectState{CloudProjectID: "cloud-1", Name: "My Project"})
	require.NoError(t, err)

	slug, err := s.ResolveProjectSlug("cloud-1", "My Project")
	require.NoError(t, err)
	assert.Equal(t, "my-project", slug)
}

func TestResolveProjectSlugCollisionGetsStableSuffix(t *testing.T) {
	s := newTestStore(t)
	_, err := s.WriteProjectState("my-project", ProjectState{CloudProjectID: "cloud-1", Name: "My Project"})
	require.NoError(t, err)

	// A different cloud project with the same name must land in a
	// different, deterministic folder.
	first, err := s.ResolveProjectSlug("cloud-2", "My Project")
	require.NoError(t, err)
	second, err := s.ResolveProjectSlug("cloud-2", "My Project")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, "my-project", first)
	assert.Contains(t, first, "my-project-")
}

func TestWriteProjectStateMergeSemantics(t *testing.T) {
	s := newTestStore(t)

	initial, err := s.WriteProjectState("proj", ProjectState{CloudProjectID: "c1", Name: "Proj", Slug: "proj"})
	require.NoError(t, err)
	assert.NotEmpty(t, initial.CreatedAt)

	// Cloud identity is always overwritten; other fields survive the merge.
	updated, err := s.WriteProjectState("proj", ProjectState{CloudProjectID: "c2", Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "c2", updated.CloudProjectID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "proj", updated.Slug)
	assert.Equal(t, initial.CreatedAt, updated.CreatedAt)
}

func TestCreateAndUpdateTaskState(t *testing.T) {
	s := newTestStore(t)

	state, err := s.CreateTask("proj", CreateTaskInput{
		UserRequest: "do the thing",
		Goal:        "thing done",
		TaskSlug:    "do-the-thing",
		CloudTaskID: "task-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "task-9", state.CloudTaskID)

	// runs/ skeleton exists
	info, err := os.Stat(filepath.Join(s.TaskDir("proj", "do-the-thing"), "runs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	updated, err := s.UpdateTaskState("proj", "do-the-thing", TaskState{Status: "running", LastRunID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, "running", updated.Status)
	assert.Equal(t, "r1", updated.LastRunID)
	assert.Equal(t, "do the thing", updated.UserRequest)

	read, err := s.ReadTaskState("proj", "do-the-thing")
	require.NoError(t, err)
	assert.Equal(t, updated.Status, read.Status)
}

func TestCreateTaskRequiresSlug(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateTask("proj", CreateTaskInput{})
	assert.Error(t, err)
}

func TestWriteJSONAtomicLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "state.json")
	require.NoError(t, writeJSONAtomic(path, map[string]string{"k": "v"}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.json", entries[0].Name())
}
