// Package store is the filesystem-backed artifact store: projects, tasks,
// runs, append-only event logs, and per-task locks. One Store instance
// owns a single root directory; all paths are relative to it.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store is the local artifact store rooted at a single directory.
type Store struct {
	root string
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

// ProjectDir returns the directory for a project slug.
func (s *Store) ProjectDir(projectSlug string) string {
	return filepath.Join(s.root, projectSlug)
}

// TaskDir returns the directory for a task within a project.
func (s *Store) TaskDir(projectSlug, taskSlug string) string {
	return filepath.Join(s.root, projectSlug, taskSlug)
}

// ProjectState mirrors the cloud project identity plus local bookkeeping.
type ProjectState struct {
	// Cloud identity. Always overwritten on write so drift between the
	// local folder and the cloud project is detectable.
	CloudProjectID string `json:"cloud_project_id"`
	Name           string `json:"name"`

	Slug      string `json:"slug,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// TaskState is the local lifecycle mirror of a cloud task.
type TaskState struct {
	CloudTaskID string `json:"cloud_task_id,omitempty"`
	TaskSlug    string `json:"task_slug,omitempty"`
	UserRequest string `json:"user_request,omitempty"`
	Goal        string `json:"goal,omitempty"`
	Stage       string `json:"stage,omitempty"`
	Status      string `json:"status,omitempty"`
	LastRunID   string `json:"last_run_id,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ResolveProjectSlug returns the stable folder slug for a cloud project.
// The base slug derives from the project name; if the folder is already
// owned by a different cloud id, a hash-derived suffix of this cloud id is
// appended. Idempotent across restarts for a given (id, name) pair.
func (s *Store) ResolveProjectSlug(cloudProjectID, name string) (string, error) {
	base := Slugify(name, SlugifyOptions{MaxLength: 48})
	state, err := s.ReadProjectState(base)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return "", err
	}
	if state.CloudProjectID == "" || state.CloudProjectID == cloudProjectID {
		return base, nil
	}
	return base + "-" + cloudIDSuffix(cloudProjectID), nil
}

// WriteProjectState merges partial into the stored project state.
// Non-zero fields of partial overwrite; cloud-identity fields
// (CloudProjectID, Name) are always taken from partial.
func (s *Store) WriteProjectState(projectSlug string, partial ProjectState) (ProjectState, error) {
	current, err := s.ReadProjectState(projectSlug)
	if err != nil && !os.IsNotExist(err) {
		return ProjectState{}, err
	}
	now := nowISO()

	merged := current
	merged.CloudProjectID = partial.CloudProjectID
	merged.Name = partial.Name
	if partial.Slug != "" {
		merged.Slug = partial.Slug
	}
	if merged.Slug == "" {
		merged.Slug = projectSlug
	}
	if merged.CreatedAt == "" {
		merged.CreatedAt = now
	}
	merged.UpdatedAt = now

	path := filepath.Join(s.ProjectDir(projectSlug), "state.json")
	if err := writeJSONAtomic(path, merged); err != nil {
		return ProjectState{}, fmt.Errorf("write project state: %w", err)
	}
	return merged, nil
}

// ReadProjectState reads a project's state.json.
// Returns an os.IsNotExist error when the project has never been written.
func (s *Store) ReadProjectState(projectSlug string) (ProjectState, error) {
	var state ProjectState
	err := readJSON(filepath.Join(s.ProjectDir(projectSlug), "state.json"), &state)
	return state, err
}

// CreateTaskInput holds the fields for a new local task mirror.
type CreateTaskInput struct {
	UserRequest string
	Goal        string
	TaskSlug    string
	CloudTaskID string
}

// CreateTask materializes the task directory and its initial state.json.
func (s *Store) CreateTask(projectSlug string, in CreateTaskInput) (TaskState, error) {
	if in.TaskSlug == "" {
		return TaskState{}, fmt.Errorf("task slug is required")
	}
	now := nowISO()
	state := TaskState{
		CloudTaskID: in.CloudTaskID,
		TaskSlug:    in.TaskSlug,
		UserRequest: in.UserRequest,
		Goal:        in.Goal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	dir := s.TaskDir(projectSlug, in.TaskSlug)
	if err := os.MkdirAll(filepath.Join(dir, "runs"), 0o755); err != nil {
		return TaskState{}, fmt.Errorf("create task dir: %w", err)
	}
	if err := writeJSONAtomic(filepath.Join(dir, "state.json"), state); err != nil {
		return TaskState{}, fmt.Errorf("write task state: %w", err)
	}
	return state, nil
}

// ReadTaskState reads a task's state.json.
func (s *Store) ReadTaskState(projectSlug, taskSlug string) (TaskState, error) {
	var state TaskState
	err := readJSON(filepath.Join(s.TaskDir(projectSlug, taskSlug), "state.json"), &state)
	return state, err
}

// UpdateTaskState merges the non-zero fields of partial into the task state.
func (s *Store) UpdateTaskState(projectSlug, taskSlug string, partial TaskState) (TaskState, error) {
	current, err := s.ReadTaskState(projectSlug, taskSlug)
	if err != nil && !os.IsNotExist(err) {
		return TaskState{}, err
	}

	merged := current
	if partial.CloudTaskID != "" {
		merged.CloudTaskID = partial.CloudTaskID
	}
	if partial.TaskSlug != "" {
		merged.TaskSlug = partial.TaskSlug
	}
	if partial.UserRequest != "" {
		merged.UserRequest = partial.UserRequest
	}
	if partial.Goal != "" {
		merged.Goal = partial.Goal
	}
	if partial.Stage != "" {
		merged.Stage = partial.Stage
	}
	if partial.Status != "" {
		merged.Status = partial.Status
	}
	if partial.LastRunID != "" {
		merged.LastRunID = partial.LastRunID
	}
	merged.UpdatedAt = nowISO()

	path := filepath.Join(s.TaskDir(projectSlug, taskSlug), "state.json")
	if err := writeJSONAtomic(path, merged); err != nil {
		return TaskState{}, fmt.Errorf("write task state: %w", err)
	}
	return merged, nil
}

// WriteWorkingSet renders the task's working_set.md from cloud fields.
func (s *Store) WriteWorkingSet(projectSlug, taskSlug, content string) error {
	path := filepath.Join(s.TaskDir(projectSlug, taskSlug), "working_set.md")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// nowISO returns the current UTC time in RFC3339 with millisecond precision,
// the timestamp format used across all on-disk artifacts.
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// writeJSONAtomic writes v as indented JSON using write-then-rename so a
// crash never leaves a truncated file behind.
func writeJSONAtomic(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
