// Package taskservice is a thin REST client for the remote task/board
// service: queue claiming, task detail, state patches, logs, comments,
// completion, and a server-sent event stream.
package taskservice

import "encoding/json"

// Task stages.
const (
	StageIdeation     = "ideation"
	StagePlanning     = "planning"
	StageExecution    = "execution"
	StageVerification = "verification"
	StageDone         = "done"
)

// Task statuses.
const (
	StatusQueued     = "queued"
	StatusInProgress = "in_progress"
	StatusBlocked    = "blocked"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Project is the nested project identity on a task.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task is the remote, authoritative task record.
type Task struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Content     string  `json:"content,omitempty"`
	Stage       string  `json:"stage"`
	Status      string  `json:"status"`
	Provider    string  `json:"provider,omitempty"`
	Model       string  `json:"model,omitempty"`
	Swarm       bool    `json:"swarm,omitempty"`
	Project     Project `json:"project"`
	CreatedAt   string  `json:"created_at,omitempty"`
	StartedAt   string  `json:"started_at,omitempty"`
	CompletedAt string  `json:"completed_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// Comment is a task comment.
type Comment struct {
	ID         string `json:"id"`
	AuthorType string `json:"author_type"`
	CreatedAt  string `json:"created_at"`
	Content    string `json:"content"`
}

// LogEntry is a task log line.
type LogEntry struct {
	CreatedAt string `json:"created_at"`
	LogType   string `json:"log_type"`
	Content   string `json:"content"`
}

// TaskPatch is a partial task state update for PATCH /api/tasks/:id.
// Nil fields are omitted from the request body.
type TaskPatch struct {
	Status      *string `json:"status,omitempty"`
	Stage       *string `json:"stage,omitempty"`
	StartedAt   *string `json:"started_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// CompletionPayload is the POST /api/queue/complete body.
type CompletionPayload struct {
	TaskID       string          `json:"taskId"`
	Log          string          `json:"log"`
	Decision     string          `json:"decision"` // done | blocked | not_done | failed
	FinalResult  string          `json:"final_result"`
	Explanation  string          `json:"explanation"`
	ArtifactPath string          `json:"artifact_path,omitempty"`
	ArtifactHost string          `json:"artifact_host,omitempty"`
	ArtifactKey  string          `json:"artifact_key,omitempty"`
	RunEntry     json.RawMessage `json:"run_entry,omitempty"`
}

// CompletionResult is the POST /api/queue/complete response.
type CompletionResult struct {
	Task     *Task  `json:"task"`
	NewStage string `json:"newStage"`
}
