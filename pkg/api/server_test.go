package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agx-dev/agx/pkg/graph"
)

func newTestServer(t *testing.T) (*Server, graph.Store, *graph.MemQueue) {
	t.Helper()
	st := graph.NewMemStore()
	q := graph.NewMemQueue()
	rt := graph.NewRuntime(st, q, graph.NewDefaultScheduler(), graph.RuntimeOptions{})
	return NewServer(nil, st, rt, nil), st, q
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

const sampleGraph = `{
	"id": "g1",
	"task_id": "t1",
	"mode": "SIMPLE",
	"nodes": {
		"n1": {"type": "work"},
		"n2": {"type": "work", "deps": ["n1"]}
	},
	"policy": {"node_timeout_ms": 90000}
}`

func TestCreateGraph(t *testing.T) {
	server, st, q := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/graphs", sampleGraph)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created graph.Graph
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "g1", created.ID)
	assert.Equal(t, int64(1), created.GraphVersion)
	assert.Equal(t, graph.StatusPending, created.Nodes["n1"].Status, "missing statuses default to pending")
	assert.Equal(t, "n2", created.Nodes["n2"].ID, "node ids filled from map keys")

	stored, err := st.GetGraph(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "t1", stored.TaskID)

	assert.False(t, q.Idle(), "first tick must be queued")

	// Duplicate id is rejected.
	rec = doRequest(t, server, http.MethodPost, "/api/graphs", sampleGraph)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateGraphValidation(t *testing.T) {
	server, _, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/graphs", `{"id": "g1", "nodes": {}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, server, http.MethodPost, "/api/graphs", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGraph(t *testing.T) {
	server, _, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/graphs", sampleGraph)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/graphs/g1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got graph.Graph
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Nodes, 2)

	rec = doRequest(t, server, http.MethodGet, "/api/graphs/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGraphEvents(t *testing.T) {
	server, st, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/graphs", sampleGraph)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NoError(t, st.AppendEvent(context.Background(), "g1", graph.Event{
		EventType: graph.EventNodeStatus, GraphID: "g1", NodeID: "n1",
		FromStatus: graph.StatusPending, ToStatus: graph.StatusRunning,
	}))

	rec = doRequest(t, server, http.MethodGet, "/api/graphs/g1/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Events []graph.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Events, 1)
	assert.Equal(t, "n1", body.Events[0].NodeID)

	rec = doRequest(t, server, http.MethodGet, "/api/graphs/missing/events", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteNode(t *testing.T) {
	server, st, q := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/graphs", sampleGraph)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, server, http.MethodPost, "/api/graphs/g1/nodes/n1/complete",
		`{"status": "done", "output": {"result": "ok"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := st.GetGraph(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, graph.StatusDone, stored.Nodes["n1"].Status)
	assert.Equal(t, "ok", stored.Nodes["n1"].Output["result"])
	assert.False(t, q.Idle())

	// Non-terminal statuses are rejected.
	rec = doRequest(t, server, http.MethodPost, "/api/graphs/g1/nodes/n2/complete",
		`{"status": "running"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, server, http.MethodPost, "/api/graphs/missing/nodes/n1/complete",
		`{"status": "done"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthWithoutDependencies(t *testing.T) {
	server, _, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, healthStatusHealthy, body["status"])
}

func TestStatusEndpoint(t *testing.T) {
	server, _, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/graphs", sampleGraph)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var status StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 1, status.InProgressGraphs)
	assert.False(t, status.Durable)
	assert.NotEmpty(t, status.Version)
}
