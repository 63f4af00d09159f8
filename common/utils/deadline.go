package utils

import (
	"context"
	"time"
)

// RunWithTimeout runs fn under a deadline derived from ctx. A zero timeout
// leaves ctx untouched and fn may block for as long as it needs.
func RunWithTimeout(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	if timeout <= 0 {
		return fn(ctx)
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(timeoutCtx)
}
