package flash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backoffice-api/internal/core/cache"
)

// Level classifies a transient notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a single transient message queued for a scope (typically a
// session or user id) until drained or expired.
type Notice struct {
	Level     Level     `json:"level"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Queue stores per-scope notices in the cache. The whole queue for a scope
// expires together after the configured TTL, so stale notices never
// accumulate.
type Queue struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewQueue creates a notice queue with the given auto-expiry TTL.
func NewQueue(c cache.Cache, ttl time.Duration) *Queue {
	return &Queue{
		cache: c,
		ttl:   ttl,
	}
}

// Push appends a notice to the scope's queue, re-arming its expiry.
func (q *Queue) Push(ctx context.Context, scope string, level Level, text string) error {
	notices, err := q.peek(ctx, scope)
	if err != nil {
		return err
	}

	notices = append(notices, Notice{
		Level:     level,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})

	data, err := json.Marshal(notices)
	if err != nil {
		return fmt.Errorf("failed to marshal notices: %w", err)
	}

	if err := q.cache.Set(ctx, key(scope), data, q.ttl); err != nil {
		return fmt.Errorf("failed to save notices: %w", err)
	}

	return nil
}

// Drain returns all pending notices for the scope and clears the queue.
// An empty or expired queue drains to nil without error.
func (q *Queue) Drain(ctx context.Context, scope string) ([]Notice, error) {
	data, err := q.cache.GetDel(ctx, key(scope))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to drain notices: %w", err)
	}

	var notices []Notice
	if err := json.Unmarshal(data, &notices); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notices: %w", err)
	}

	return notices, nil
}

// peek reads the scope's queue without consuming it.
func (q *Queue) peek(ctx context.Context, scope string) ([]Notice, error) {
	data, err := q.cache.Get(ctx, key(scope))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read notices: %w", err)
	}

	var notices []Notice
	if err := json.Unmarshal(data, &notices); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notices: %w", err)
	}

	return notices, nil
}

func key(scope string) string {
	return "flash:" + scope
}
