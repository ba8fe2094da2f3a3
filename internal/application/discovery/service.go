package discovery

import (
	"context"
	"errors"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/shared"
	"go.uber.org/zap"
)

// SearchService is the stateless entry point used by the HTTP layer: one
// request, one page through the pipeline. Interactive clients that keep a
// scroll position use Session and ScrollLoadController instead.
type SearchService struct {
	products  *Engine
	stores    *Engine
	locations discovery.LocationStore
	basket    discovery.BasketStore
	logger    *zap.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(products, stores *Engine, locations discovery.LocationStore, basket discovery.BasketStore, logger *zap.Logger) *SearchService {
	return &SearchService{
		products:  products,
		stores:    stores,
		locations: locations,
		basket:    basket,
		logger:    logger,
	}
}

// Search runs one page of the given mode's catalog through the pipeline.
// When the request carries no explicit location, the session's persisted
// location is used; a missing persisted location just disables proximity.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if err := req.Travel.Validate(); err != nil {
		return nil, err
	}
	if req.Page < 1 {
		req.Page = 1
	}

	engine := s.products
	switch req.Mode {
	case SearchModeProducts, "":
	case SearchModeStores:
		engine = s.stores
	default:
		return nil, shared.NewDomainError("INVALID_SEARCH_MODE", "Search mode must be products or stores")
	}

	snap := discovery.Snapshot{
		Query:    req.Query,
		Location: s.resolveLocation(ctx, req),
		Filter:   req.Travel,
	}

	result, err := engine.FetchPageSized(ctx, snap, req.Page-1, req.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]CandidateResult, len(result.Ranked))
	for i, rc := range result.Ranked {
		items[i] = ToCandidateResult(rc)
	}

	pageSize := result.PageSize
	exhausted := int64(req.Page*pageSize) >= result.Total || result.Fetched < pageSize

	return &SearchResult{
		Items:     items,
		Page:      req.Page,
		PageSize:  pageSize,
		Total:     result.Total,
		Exhausted: exhausted,
	}, nil
}

// SetLocation persists the session's origin location
func (s *SearchService) SetLocation(ctx context.Context, sessionKey string, loc discovery.Location) error {
	if sessionKey == "" {
		return shared.ErrInvalidInput
	}
	return s.locations.Set(ctx, sessionKey, loc)
}

// AddToBasket appends the chosen offer line to the session basket
func (s *SearchService) AddToBasket(ctx context.Context, sessionKey string, req AddBasketRequest) error {
	if sessionKey == "" || req.CandidateKey == "" || req.SellerKey == "" {
		return shared.ErrInvalidInput
	}
	if req.Quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Basket quantity must be positive")
	}
	return s.basket.Add(ctx, sessionKey, discovery.BasketItem{
		CandidateKey: req.CandidateKey,
		SellerKey:    req.SellerKey,
		DisplayName:  req.DisplayName,
		SellerName:   req.SellerName,
		UnitPrice:    req.UnitPrice.String(),
		Quantity:     req.Quantity,
	})
}

// Basket returns the session basket in insertion order
func (s *SearchService) Basket(ctx context.Context, sessionKey string) ([]discovery.BasketItem, error) {
	if sessionKey == "" {
		return nil, shared.ErrInvalidInput
	}
	return s.basket.Items(ctx, sessionKey)
}

// NewSession starts an aggregating session for the given mode
func (s *SearchService) NewSession(mode SearchMode) *Session {
	engine := s.products
	if mode == SearchModeStores {
		engine = s.stores
	}
	return NewSession(engine, s.logger)
}

func (s *SearchService) resolveLocation(ctx context.Context, req SearchRequest) discovery.Location {
	if req.Location != "" {
		return discovery.Location(req.Location)
	}
	if req.SessionKey == "" {
		return ""
	}
	loc, err := s.locations.Get(ctx, req.SessionKey)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("location lookup failed", zap.Error(err))
		}
		return ""
	}
	return loc
}
