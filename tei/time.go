package tei

import (
	"context"
	"time"
)

// DefaultTimeout is how long a client waits for a reply when neither
// it nor the caller's context sets a limit.
const DefaultTimeout = 10 * time.Second

// budget is the time allowed for one reply: limit, or what is left of
// ctx's deadline if that is sooner. It is never negative.
func budget(ctx context.Context, limit time.Duration, now time.Time) time.Duration {
	if limit <= 0 {
		limit = DefaultTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := deadline.Sub(now); left < limit {
			limit = left
		}
	}
	if limit < 0 {
		return 0
	}
	return limit
}
