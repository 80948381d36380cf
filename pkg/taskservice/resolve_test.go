package taskservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newResolveServer serves a fixed task listing plus the exact-slug endpoint.
func newResolveServer(t *testing.T, tasks []Task, slugHits map[string]Task) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks" {
			http.NotFound(w, r)
			return
		}
		if slug := r.URL.Query().Get("slug"); slug != "" {
			if task, ok := slugHits[slug]; ok {
				_ = json.NewEncoder(w).Encode(map[string]any{"task": task})
			} else {
				_, _ = w.Write([]byte(`{"task":null}`))
			}
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"tasks": tasks})
	}))
}

func TestResolveTaskIDUUIDPassesThrough(t *testing.T) {
	c := NewClient("http://unused", "u")
	id, err := c.ResolveTaskID(context.Background(), "123e4567-e89b-12d3-a456-426614174000")
	require.NoError(t, err)
	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", id)
}

func TestResolveTaskIDNumericUsesCache(t *testing.T) {
	tasks := []Task{
		{ID: "id-a", Slug: "alpha"},
		{ID: "id-b", Slug: "beta"},
	}
	srv := newResolveServer(t, tasks, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "u", WithCacheDir(t.TempDir()))

	// Populate the cache through a listing first.
	_, err := c.ListTasks(context.Background())
	require.NoError(t, err)

	id, err := c.ResolveTaskID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "id-b", id)
}

func TestResolveTaskIDNumericWithoutCache(t *testing.T) {
	c := NewClient("http://unused", "u", WithCacheDir(t.TempDir()))
	_, err := c.ResolveTaskID(context.Background(), "1")
	var noCache *NoCachedTaskError
	require.ErrorAs(t, err, &noCache)
	assert.Equal(t, 1, noCache.Index)
}

func TestResolveTaskIDExactSlugEndpoint(t *testing.T) {
	srv := newResolveServer(t, nil, map[string]Task{
		"fix-login": {ID: "id-1", Slug: "fix-login"},
	})
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	id, err := c.ResolveTaskID(context.Background(), "fix-login")
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
}

func TestResolveTaskIDExactSlugFromListing(t *testing.T) {
	tasks := []Task{
		{ID: "id-1", Slug: "fix-login"},
		{ID: "id-2", Slug: "fix-login-tests"},
	}
	srv := newResolveServer(t, tasks, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	// "fix-login" is a prefix of both, but the exact match wins.
	id, err := c.ResolveTaskID(context.Background(), "fix-login")
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
}

func TestResolveTaskIDUniqueSlugPrefix(t *testing.T) {
	tasks := []Task{
		{ID: "id-1", Slug: "deploy-frontend"},
		{ID: "id-2", Slug: "fix-login"},
	}
	srv := newResolveServer(t, tasks, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	id, err := c.ResolveTaskID(context.Background(), "dep")
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
}

func TestResolveTaskIDAmbiguousPrefix(t *testing.T) {
	tasks := []Task{
		{ID: "id-1", Slug: "fix-login"},
		{ID: "id-2", Slug: "fix-logout"},
		{ID: "id-3", Slug: "fix-logging"},
	}
	srv := newResolveServer(t, tasks, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	_, err := c.ResolveTaskID(context.Background(), "fix-log")
	var ambiguous *AmbiguousIdentifierError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, 3)
}

func TestResolveTaskIDAmbiguousCandidatesCapped(t *testing.T) {
	var tasks []Task
	for _, suffix := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		tasks = append(tasks, Task{ID: "id-" + suffix, Slug: "common-" + suffix})
	}
	srv := newResolveServer(t, tasks, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	_, err := c.ResolveTaskID(context.Background(), "common-")
	var ambiguous *AmbiguousIdentifierError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, maxAmbiguousCandidates)
}

func TestResolveTaskIDUniqueIDPrefix(t *testing.T) {
	tasks := []Task{
		{ID: "aa11", Slug: "one"},
		{ID: "bb22", Slug: "two"},
	}
	srv := newResolveServer(t, tasks, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	id, err := c.ResolveTaskID(context.Background(), "bb")
	require.NoError(t, err)
	assert.Equal(t, "bb22", id)
}

func TestResolveTaskIDNotFound(t *testing.T) {
	srv := newResolveServer(t, []Task{{ID: "id-1", Slug: "alpha"}}, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "u")
	_, err := c.ResolveTaskID(context.Background(), "zzz")
	var notFound *TaskNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "zzz", notFound.Identifier)
}
