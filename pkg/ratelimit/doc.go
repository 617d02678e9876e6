// Package ratelimit provides a fixed-window request rate limiter keyed by
// an arbitrary client identifier.
//
// The limiter sits on top of a Store; the bundled MemoryStore keeps
// per-key windows in process memory guarded by a mutex, so the
// check-and-increment is a single indivisible read-modify-write and
// concurrent callers cannot slip past the quota. A background sweep
// evicts expired windows to keep memory bounded under many distinct
// clients.
//
// Usage:
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.NewFixedWindow(store, 10, time.Minute)
//	if err != nil { ... }
//
//	result, err := limiter.Allow(ctx, clientID)
//	if err != nil { ... }
//	if !result.Allowed {
//		// reject with Retry-After result.RetryAfter()
//	}
package ratelimit
