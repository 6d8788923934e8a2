package cmd

import (
	"context"
	"time"
)

// contextWithTimeout bounds ctx by d when d is positive.
func contextWithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
