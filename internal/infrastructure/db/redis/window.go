package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowCounter implements a fixed-window request counter backed by Redis.
// Key format: shield:<client_key>:<window_start_unix>
type WindowCounter struct {
	client *redis.Client
	window time.Duration
}

// NewWindowCounter creates a WindowCounter wrapping the given Redis client.
func NewWindowCounter(client *redis.Client, window time.Duration) *WindowCounter {
	return &WindowCounter{client: client, window: window}
}

// Incr bumps the counter for key in the current window and returns the new
// count. The key expires with the window, so entries clean themselves up.
func (w *WindowCounter) Incr(ctx context.Context, key string) (int64, error) {
	windowStart := time.Now().Truncate(w.window).Unix()
	k := fmt.Sprintf("shield:%s:%d", key, windowStart)

	pipe := w.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, w.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("shield incr: %w", err)
	}
	return incr.Val(), nil
}
