package taskservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// Client talks JSON over HTTP to the task service. All requests carry
// Content-Type and the configured x-user-id header; a bearer token is added
// when present. A 401 triggers a single token refresh followed by a
// one-shot retry.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
	cacheDir   string // last task listing cache; empty disables caching
	logger     *slog.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// Option configures a Client.
type Option func(*Client)

// WithTokens sets the initial access and refresh tokens.
func WithTokens(access, refresh string) Option {
	return func(c *Client) {
		c.accessToken = access
		c.refreshToken = refresh
	}
}

// WithCacheDir enables the numeric-identifier task listing cache.
func WithCacheDir(dir string) Option {
	return func(c *Client) { c.cacheDir = dir }
}

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a task service client.
func NewClient(baseURL, userID string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		userID:     userID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClaimQueued polls the queue. Returns (nil, nil) when the queue is empty.
func (c *Client) ClaimQueued(ctx context.Context) (*Task, error) {
	var resp struct {
		Task *Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/queue", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// ListTasks fetches all tasks and refreshes the local index cache.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var resp struct {
		Tasks []Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &resp); err != nil {
		return nil, err
	}
	c.writeTaskCache(resp.Tasks)
	return resp.Tasks, nil
}

// GetTask fetches a single task by canonical id.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var resp struct {
		Task *Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Task == nil {
		return nil, &TaskNotFoundError{Identifier: id}
	}
	return resp.Task, nil
}

// GetTaskBySlug fetches a task via the exact-slug endpoint.
// Returns (nil, nil) on a miss.
func (c *Client) GetTaskBySlug(ctx context.Context, slug string) (*Task, error) {
	var resp struct {
		Task *Task `json:"task"`
	}
	path := "/api/tasks?slug=" + url.QueryEscape(slug)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// GetComments fetches task comments.
func (c *Client) GetComments(ctx context.Context, taskID string) ([]Comment, error) {
	var resp struct {
		Comments []Comment `json:"comments"`
	}
	path := "/api/tasks/" + url.PathEscape(taskID) + "/comments"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// GetLogs fetches task logs. tail <= 0 fetches all.
func (c *Client) GetLogs(ctx context.Context, taskID string, tail int) ([]LogEntry, error) {
	path := "/api/tasks/" + url.PathEscape(taskID) + "/logs"
	if tail > 0 {
		path += "?tail=" + strconv.Itoa(tail)
	}
	var resp struct {
		Logs []LogEntry `json:"logs"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

// PostLog appends a task log line.
func (c *Client) PostLog(ctx context.Context, taskID, content, logType string) error {
	body := map[string]string{"content": content, "log_type": logType}
	path := "/api/tasks/" + url.PathEscape(taskID) + "/logs"
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// PostComment posts a task comment.
func (c *Client) PostComment(ctx context.Context, taskID, content string) error {
	body := map[string]string{"content": content}
	path := "/api/tasks/" + url.PathEscape(taskID) + "/comments"
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// PatchTask applies a partial state update to a task.
func (c *Client) PatchTask(ctx context.Context, taskID string, patch TaskPatch) (*Task, error) {
	var resp struct {
		Task *Task `json:"task"`
	}
	path := "/api/tasks/" + url.PathEscape(taskID)
	if err := c.do(ctx, http.MethodPatch, path, patch, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// Complete posts the completion payload for a claimed task and returns the
// updated task plus its new stage.
func (c *Client) Complete(ctx context.Context, payload CompletionPayload) (*CompletionResult, error) {
	var result CompletionResult
	if err := c.do(ctx, http.MethodPost, "/api/queue/complete", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do performs one JSON request with the refresh-once-on-401 discipline.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	status, respBody, err := c.roundTrip(ctx, method, path, body)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		if refreshErr := c.refreshAccessToken(ctx); refreshErr != nil {
			return refreshErr
		}
		status, respBody, err = c.roundTrip(ctx, method, path, body)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return &TaskServiceError{
			StatusCode: status,
			Message:    extractErrorMessage(respBody),
			Method:     method,
			Path:       path,
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userID != "" {
		req.Header.Set("x-user-id", c.userID)
	}
	c.mu.Lock()
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	c.mu.Unlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

// refreshAccessToken exchanges the refresh token once.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	c.mu.Lock()
	refresh := c.refreshToken
	c.mu.Unlock()
	if refresh == "" {
		return &TaskServiceError{
			StatusCode: http.StatusUnauthorized,
			Message:    "unauthorized and no refresh token configured",
			Method:     http.MethodPost,
			Path:       "/api/auth/refresh",
		}
	}

	status, respBody, err := c.roundTrip(ctx, http.MethodPost, "/api/auth/refresh",
		map[string]string{"refresh_token": refresh})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &TaskServiceError{
			StatusCode: status,
			Message:    extractErrorMessage(respBody),
			Method:     http.MethodPost,
			Path:       "/api/auth/refresh",
		}
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(respBody, &tokens); err != nil {
		return fmt.Errorf("decode refresh response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		c.refreshToken = tokens.RefreshToken
	}
	c.mu.Unlock()
	c.logger.Info("Task service access token refreshed")
	return nil
}

// extractErrorMessage pulls the "error" field out of a failure payload.
func extractErrorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	const maxRaw = 200
	raw := string(body)
	if len(raw) > maxRaw {
		raw = raw[:maxRaw]
	}
	return raw
}
