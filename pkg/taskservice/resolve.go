package taskservice

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const taskCacheFile = "task-cache.json"

// maxAmbiguousCandidates bounds the candidate list on ambiguity errors.
const maxAmbiguousCandidates = 5

var uuidRe = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ResolveTaskID turns a user-facing identifier into a canonical task id.
// Resolution order:
//  1. numeric N — 1-indexed lookup in the last cached listing
//  2. UUID — returned unchanged
//  3. exact-slug endpoint, then against the full listing: exact slug,
//     unique slug prefix, unique id prefix
func (c *Client) ResolveTaskID(ctx context.Context, identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)

	if n, err := strconv.Atoi(identifier); err == nil {
		return c.resolveByIndex(n)
	}

	if uuidRe.MatchString(identifier) {
		return identifier, nil
	}

	if task, err := c.GetTaskBySlug(ctx, identifier); err != nil {
		return "", err
	} else if task != nil {
		return task.ID, nil
	}

	tasks, err := c.ListTasks(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.Slug == identifier {
			return t.ID, nil
		}
	}

	if id, ok, err := matchUniquePrefix(identifier, tasks, func(t Task) string { return t.Slug }); err != nil {
		return "", err
	} else if ok {
		return id, nil
	}

	if id, ok, err := matchUniquePrefix(identifier, tasks, func(t Task) string { return t.ID }); err != nil {
		return "", err
	} else if ok {
		return id, nil
	}

	return "", &TaskNotFoundError{Identifier: identifier}
}

func matchUniquePrefix(identifier string, tasks []Task, key func(Task) string) (string, bool, error) {
	var matches []Task
	for _, t := range tasks {
		if strings.HasPrefix(key(t), identifier) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return "", false, nil
	case 1:
		return matches[0].ID, true, nil
	default:
		candidates := make([]string, 0, maxAmbiguousCandidates)
		for _, m := range matches {
			if len(candidates) == maxAmbiguousCandidates {
				break
			}
			candidates = append(candidates, m.Slug)
		}
		return "", false, &AmbiguousIdentifierError{Identifier: identifier, Candidates: candidates}
	}
}

// resolveByIndex looks up a 1-indexed entry in the cached listing.
func (c *Client) resolveByIndex(n int) (string, error) {
	tasks, err := c.readTaskCache()
	if err != nil || len(tasks) == 0 {
		return "", &NoCachedTaskError{Index: n}
	}
	if n < 1 || n > len(tasks) {
		return "", &NoCachedTaskError{Index: n}
	}
	return tasks[n-1].ID, nil
}

func (c *Client) writeTaskCache(tasks []Task) {
	if c.cacheDir == "" {
		return
	}
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		c.logger.Warn("Failed to create task cache dir", "dir", c.cacheDir, "error", err)
		return
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	path := filepath.Join(c.cacheDir, taskCacheFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.logger.Warn("Failed to write task cache", "path", path, "error", err)
	}
}

func (c *Client) readTaskCache() ([]Task, error) {
	if c.cacheDir == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(filepath.Join(c.cacheDir, taskCacheFile))
	if err != nil {
		return nil, err
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
