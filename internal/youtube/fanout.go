package youtube

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// fanOut runs fetch for every item concurrently, bounded by the client's
// FanOutLimit and paced by its rate limiter. Slot i of the result always
// belongs to items[i]; per-item errors are logged and kept in the slot.
func fanOut[In, Out any](ctx context.Context, c *Client, items []In, key func(In) string, fetch func(context.Context, In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(items))
	limiter := c.limiter()

	var g errgroup.Group
	g.SetLimit(c.settings.FanOutLimit)

	for i, item := range items {
		results[i].ID = key(item)
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					results[i].Err = fmt.Errorf("failed to schedule request: %w", err)
					c.logger.Warn("fan-out item skipped", "id", results[i].ID, "error", err)
					return nil
				}
			}

			value, err := fetch(ctx, item)
			if err != nil {
				results[i].Err = err
				c.logger.Warn("fan-out item failed", "id", results[i].ID, "error", err)
				return nil
			}
			results[i].Value = value
			return nil
		})
	}

	// Items never return errors to the group.
	_ = g.Wait()

	return results
}
