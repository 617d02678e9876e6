package ratelimit

import (
	"context"
	"time"
)

// FixedWindow implements a fixed-window counter rate limiter: a per-key
// count accumulates until the window boundary and then resets, rather than
// sliding continuously.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
}

// NewFixedWindow creates a new fixed-window rate limiter.
func NewFixedWindow(store Store, limit int, window time.Duration) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidInterval
	}

	return &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
	}, nil
}

// Allow checks if a single request is allowed for the given key and, if so,
// consumes one slot in the current window.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	allowed, count, resetAt, err := fw.store.Consume(ctx, key, fw.limit, fw.window)
	if err != nil {
		return nil, err
	}

	return fw.result(allowed, count, resetAt), nil
}

// Status returns the current state for the given key without consuming a slot.
func (fw *FixedWindow) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	count, resetAt, err := fw.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	return fw.result(count < int64(fw.limit), count, resetAt), nil
}

// Reset clears the window for the given key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return fw.store.Delete(ctx, key)
}

func (fw *FixedWindow) result(allowed bool, count int64, resetAt time.Time) *Result {
	remaining := fw.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		Allowed:   allowed,
		Limit:     fw.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}
