package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/live/pkg/adapters/redis"
	"github.com/aretw0/live/pkg/eventstream"
)

// RunTail renders events popped from a Redis list until ctx is done.
// Malformed events are logged and skipped.
func RunTail(ctx context.Context, rt *Runtime, source *redis.Source) (int, error) {
	if err := source.Ping(ctx); err != nil {
		return 0, fmt.Errorf("failed to reach redis: %w", err)
	}
	rt.Logger.Info("tailing redis list", "key", source.Key())

	n, err := eventstream.Pump(source.Reader(ctx), rt.Callback, func(err error) error {
		rt.Logger.Warn("skipping malformed event", "err", err)
		return nil
	})
	rt.Logger.Info("tail stopped", "events", n)
	return n, err
}
