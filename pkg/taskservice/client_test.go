package taskservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimQueuedEmptyQueue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/queue", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "user-7", r.Header.Get("x-user-id"))
		_, _ = w.Write([]byte(`{"task":null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user-7")
	task, err := c.ClaimQueued(context.Background())
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestClaimQueuedReturnsTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"task":{"id":"t1","slug":"fix-bug","stage":"execution","status":"queued","project":{"id":"p1","name":"Proj"}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	task, err := c.ClaimQueued(context.Background())
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "fix-bug", task.Slug)
	assert.Equal(t, "p1", task.Project.ID)
}

func TestRefreshOnceOn401(t *testing.T) {
	var refreshes, retries atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh":
			refreshes.Add(1)
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "refresh-1", body["refresh_token"])
			_, _ = w.Write([]byte(`{"access_token":"fresh","refresh_token":"refresh-2"}`))
		case "/api/queue":
			if r.Header.Get("Authorization") == "Bearer fresh" {
				retries.Add(1)
				_, _ = w.Write([]byte(`{"task":null}`))
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"token expired"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "u", WithTokens("stale", "refresh-1"))
	_, err := c.ClaimQueued(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), refreshes.Load())
	assert.Equal(t, int32(1), retries.Load())
}

func TestRefreshFailureSurfacesTaskServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"refresh revoked"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "u", WithTokens("stale", "refresh-1"))
	_, err := c.ClaimQueued(context.Background())
	var tsErr *TaskServiceError
	require.ErrorAs(t, err, &tsErr)
	assert.Equal(t, http.StatusForbidden, tsErr.StatusCode)
	assert.Equal(t, "refresh revoked", tsErr.Message)
}

func TestNon2xxCarriesErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"task already claimed"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	_, err := c.ClaimQueued(context.Background())
	var tsErr *TaskServiceError
	require.ErrorAs(t, err, &tsErr)
	assert.Equal(t, http.StatusConflict, tsErr.StatusCode)
	assert.Equal(t, "task already claimed", tsErr.Message)
}

func TestCompletePostsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/queue/complete", r.URL.Path)
		var payload CompletionPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "t1", payload.TaskID)
		assert.Equal(t, "done", payload.Decision)
		_, _ = w.Write([]byte(`{"task":{"id":"t1","slug":"s","stage":"done","status":"completed","project":{"id":"p","name":"n"}},"newStage":"done"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	result, err := c.Complete(context.Background(), CompletionPayload{
		TaskID:      "t1",
		Log:         "finished",
		Decision:    "done",
		FinalResult: "shipped",
		Explanation: "all checks green",
	})
	require.NoError(t, err)
	assert.Equal(t, "done", result.NewStage)
	require.NotNil(t, result.Task)
	assert.Equal(t, "completed", result.Task.Status)
}

func TestPatchTaskOmitsNilFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, map[string]any{"status": "failed"}, raw)
		_, _ = w.Write([]byte(`{"task":{"id":"t1","slug":"s","stage":"execution","status":"failed","project":{"id":"p","name":"n"}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	status := "failed"
	task, err := c.PatchTask(context.Background(), "t1", TaskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "failed", task.Status)
}

func TestStreamEventsParsesFrames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(": keepalive\n\n"))
		_, _ = w.Write([]byte("event: task_updated\ndata: {\"id\":\"t1\"}\n\n"))
		_, _ = w.Write([]byte("data: first\ndata: second\n\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	var events []ServerEvent
	err := c.StreamEvents(context.Background(), func(ev ServerEvent) {
		events = append(events, ev)
	})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "task_updated", events[0].Event)
	assert.Equal(t, `{"id":"t1"}`, events[0].Data)
	assert.Equal(t, "first\nsecond", events[1].Data)
}
