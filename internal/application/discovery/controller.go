package discovery

import (
	"context"

	"go.uber.org/zap"
)

// DefaultScrollThreshold triggers the next load when this many items or
// fewer remain below the viewport.
const DefaultScrollThreshold = 5

// ScrollLoadController turns viewport proximity signals into page loads.
// It is cooperative: rapid repeated signals coalesce into at most one
// in-flight fetch (the session's loading state absorbs the rest), signals
// carrying a stale snapshot token are ignored, and after a failed fetch
// automatic loading stops until Retry is called.
type ScrollLoadController struct {
	session   *Session
	threshold int
	logger    *zap.Logger
}

// NewScrollLoadController creates a controller bound to the session
func NewScrollLoadController(session *Session, threshold int, logger *zap.Logger) *ScrollLoadController {
	if threshold <= 0 {
		threshold = DefaultScrollThreshold
	}
	return &ScrollLoadController{
		session:   session,
		threshold: threshold,
		logger:    logger,
	}
}

// OnScroll handles a scroll or resize signal. token is the snapshot token
// the view rendered against; remaining is the number of items between the
// viewport bottom and the end of the list.
func (c *ScrollLoadController) OnScroll(ctx context.Context, token uint64, remaining int) {
	if remaining > c.threshold {
		return
	}
	if token != c.session.Token() {
		c.logger.Debug("ignoring scroll signal for stale snapshot", zap.Uint64("token", token))
		return
	}
	if c.session.State() == StateFailed {
		// no automatic retry after a fetch failure
		return
	}
	if err := c.session.LoadNextPage(ctx); err != nil {
		c.logger.Warn("page load failed", zap.Error(err))
	}
}

// LoadMore requests the next page unconditionally of viewport position,
// for non-interactive callers. It still respects loading, exhaustion, and
// the failed state.
func (c *ScrollLoadController) LoadMore(ctx context.Context) error {
	if c.session.State() == StateFailed {
		return c.session.Err()
	}
	return c.session.LoadNextPage(ctx)
}

// Retry re-attempts the page whose fetch failed and re-enables automatic
// loading on success.
func (c *ScrollLoadController) Retry(ctx context.Context) error {
	return c.session.LoadNextPage(ctx)
}
