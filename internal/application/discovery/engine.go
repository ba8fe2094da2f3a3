package discovery

import (
	"context"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"go.uber.org/zap"
)

// DefaultPageSize is used when callers don't specify a page size
const DefaultPageSize = 20

// MaxPageSize caps client-requested page sizes
const MaxPageSize = 100

// PageResult is the outcome of one page run through the full pipeline.
// Fetched is the raw item count before filtering; exhaustion decisions
// must use it, not the surviving count. PageSize is the effective window
// size after clamping, which offset math must be computed against.
type PageResult struct {
	Ranked   []discovery.RankedCandidate
	Fetched  int
	Total    int64
	PageSize int
}

// Engine runs one catalog page through the discovery pipeline: fetch
// candidates and offers, enrich with travel data, apply the admission
// filter, score, and order. It is stateless; all state lives in Session.
type Engine struct {
	source   discovery.CatalogSource
	enricher *OfferEnricher
	orderer  *discovery.Orderer
	pageSize int
	logger   *zap.Logger
}

// NewEngine creates an engine over the given catalog source
func NewEngine(source discovery.CatalogSource, enricher *OfferEnricher, orderer *discovery.Orderer, pageSize int, logger *zap.Logger) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{
		source:   source,
		enricher: enricher,
		orderer:  orderer,
		pageSize: pageSize,
		logger:   logger,
	}
}

// PageSize returns the window size the engine fetches with
func (e *Engine) PageSize() int {
	return e.pageSize
}

// FetchPage runs the pipeline with the engine's configured page size
func (e *Engine) FetchPage(ctx context.Context, snap discovery.Snapshot, page int) (*PageResult, error) {
	return e.FetchPageSized(ctx, snap, page, e.pageSize)
}

// FetchPageSized runs the pipeline for the given snapshot and 0-based page
// index using the requested page size. A non-positive size falls back to
// the engine's configured size; oversized requests are clamped to
// MaxPageSize. Catalog failures come back as *discovery.CatalogFetchError;
// travel lookups cannot fail the page.
func (e *Engine) FetchPageSized(ctx context.Context, snap discovery.Snapshot, page, pageSize int) (*PageResult, error) {
	if pageSize <= 0 {
		pageSize = e.pageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	offset := page * pageSize

	catalogPage, err := e.source.QueryCandidates(ctx, snap.Query, offset, pageSize)
	if err != nil {
		return nil, &discovery.CatalogFetchError{Page: page, Err: err}
	}

	if len(catalogPage.Items) > 0 {
		keys := make([]string, len(catalogPage.Items))
		byKey := make(map[string]*discovery.Candidate, len(catalogPage.Items))
		for i, c := range catalogPage.Items {
			keys[i] = c.Key
			byKey[c.Key] = c
		}

		offers, err := e.source.QueryOffers(ctx, keys)
		if err != nil {
			return nil, &discovery.CatalogFetchError{Page: page, Err: err}
		}
		for _, o := range offers {
			if c, ok := byKey[o.CandidateKey]; ok {
				c.Offers = append(c.Offers, o)
			}
		}

		e.enricher.Enrich(ctx, snap.Location, snap.Filter.Mode, catalogPage.Items)
	}

	filtered := discovery.ApplyTravelFilter(catalogPage.Items, snap.Filter)
	ranked := discovery.ScoreCandidates(snap.Query, filtered, snap.Location, snap.Filter)
	e.orderer.Sort(ranked, snap.Filter.Metric)

	e.logger.Debug("page fetched",
		zap.Int("page", page),
		zap.Int("fetched", len(catalogPage.Items)),
		zap.Int("ranked", len(ranked)),
		zap.Int64("total", catalogPage.TotalCount),
	)

	return &PageResult{
		Ranked:   ranked,
		Fetched:  len(catalogPage.Items),
		Total:    catalogPage.TotalCount,
		PageSize: pageSize,
	}, nil
}
