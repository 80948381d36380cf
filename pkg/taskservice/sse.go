package taskservice

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ServerEvent is one decoded server-sent event.
type ServerEvent struct {
	Event string
	Data  string
}

// StreamEvents opens the server-sent event stream and invokes handler for
// each event until the stream closes or ctx is cancelled. The handler runs
// on the reader goroutine; it must not block.
func (c *Client) StreamEvents(ctx context.Context, handler func(ServerEvent)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/events", nil)
	if err != nil {
		return fmt.Errorf("create stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	if c.userID != "" {
		req.Header.Set("x-user-id", c.userID)
	}
	c.mu.Lock()
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	c.mu.Unlock()

	// SSE connections outlive the regular request timeout.
	streamClient := &http.Client{Transport: c.httpClient.Transport}
	resp, err := streamClient.Do(req)
	if err != nil {
		return fmt.Errorf("open event stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TaskServiceError{
			StatusCode: resp.StatusCode,
			Message:    "event stream rejected",
			Method:     http.MethodGet,
			Path:       "/api/events",
		}
	}

	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current ServerEvent
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "":
			if current.Data != "" || current.Event != "" {
				handler(current)
			}
			current = ServerEvent{}
		case strings.HasPrefix(line, "event:"):
			current.Event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimPrefix(line, "data:")
			data = strings.TrimPrefix(data, " ")
			if current.Data != "" {
				current.Data += "\n"
			}
			current.Data += data
		case strings.HasPrefix(line, ":"):
			// Comment / keepalive.
		}
	}
	if err := sc.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("read event stream: %w", err)
	}
	return ctx.Err()
}
