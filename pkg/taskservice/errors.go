package taskservice

import (
	"fmt"
	"strings"
)

// TaskServiceError is a non-2xx response from the task service after any
// token refresh attempt.
type TaskServiceError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *TaskServiceError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	return fmt.Sprintf("task service %s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// TaskNotFoundError indicates no task matched an identifier.
type TaskNotFoundError struct {
	Identifier string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("no task matches %q", e.Identifier)
}

// AmbiguousIdentifierError indicates a prefix matched multiple tasks.
// Candidates holds up to 5 matching slugs.
type AmbiguousIdentifierError struct {
	Identifier string
	Candidates []string
}

func (e *AmbiguousIdentifierError) Error() string {
	return fmt.Sprintf("identifier %q is ambiguous: %s", e.Identifier, strings.Join(e.Candidates, ", "))
}

// NoCachedTaskError indicates a numeric identifier was used before any
// task listing was cached.
type NoCachedTaskError struct {
	Index int
}

func (e *NoCachedTaskError) Error() string {
	return fmt.Sprintf("no cached task listing for index %d; run a task list first", e.Index)
}
