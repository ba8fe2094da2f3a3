package discovery

import (
	"context"
	"time"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultEnrichConcurrency = 16
	defaultLookupTimeout     = 3 * time.Second
)

// OfferEnricher resolves distance and travel time for every offer of a
// page by fanning out to the distance provider. Both metrics are fetched
// for every offer regardless of the active filter metric, so switching
// metric in the UI never forces a re-fetch; the cost is up to twice the
// provider calls, which the cached provider absorbs for repeated
// addresses.
//
// Lookups within a candidate and across candidates run concurrently under
// one bounded group. A failed lookup leaves the offer's field nil and
// never aborts sibling lookups.
type OfferEnricher struct {
	provider    discovery.DistanceProvider
	logger      *zap.Logger
	concurrency int
	timeout     time.Duration
}

// EnricherOption configures an OfferEnricher
type EnricherOption func(*OfferEnricher)

// WithConcurrency bounds the number of in-flight provider calls
func WithConcurrency(n int) EnricherOption {
	return func(e *OfferEnricher) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithLookupTimeout bounds each individual provider call
func WithLookupTimeout(d time.Duration) EnricherOption {
	return func(e *OfferEnricher) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewOfferEnricher creates a new OfferEnricher
func NewOfferEnricher(provider discovery.DistanceProvider, logger *zap.Logger, opts ...EnricherOption) *OfferEnricher {
	e := &OfferEnricher{
		provider:    provider,
		logger:      logger,
		concurrency: defaultEnrichConcurrency,
		timeout:     defaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich mutates the offers of the given candidates in place, attaching
// resolved distance and travel time where the provider can supply them.
// It returns only after every lookup has settled, so the page is ready
// for filtering and scoring when Enrich comes back. Without an origin
// location there is nothing to resolve.
func (e *OfferEnricher) Enrich(ctx context.Context, origin discovery.Location, mode discovery.TravelMode, candidates []*discovery.Candidate) {
	if !origin.IsSet() {
		return
	}

	g := &errgroup.Group{}
	g.SetLimit(e.concurrency)

	for _, c := range candidates {
		for _, o := range c.Offers {
			if o.SellerAddress == "" {
				continue
			}

			g.Go(func() error {
				lctx, cancel := context.WithTimeout(ctx, e.timeout)
				defer cancel()

				meters, err := e.provider.Distance(lctx, origin, o.SellerAddress)
				if err != nil {
					e.logger.Debug("distance lookup failed",
						zap.String("destination", o.SellerAddress),
						zap.Error(err),
					)
					return nil
				}
				o.DistanceMeters = &meters
				return nil
			})

			g.Go(func() error {
				lctx, cancel := context.WithTimeout(ctx, e.timeout)
				defer cancel()

				minutes, err := e.provider.TravelTime(lctx, origin, o.SellerAddress, mode)
				if err != nil {
					e.logger.Debug("travel time lookup failed",
						zap.String("destination", o.SellerAddress),
						zap.Error(err),
					)
					return nil
				}
				o.TravelMinutes = &minutes
				return nil
			})
		}
	}

	// goroutines swallow lookup errors, so Wait only synchronizes
	_ = g.Wait()
}
