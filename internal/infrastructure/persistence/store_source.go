package persistence

import (
	"context"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/catalog"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreCatalogSource feeds sellers themselves to the discovery engine.
// Each store carries one synthetic offer holding its own address, so the
// travel filter and proximity scoring work unchanged.
type StoreCatalogSource struct {
	sellers catalog.SellerRepository
}

// NewStoreCatalogSource creates a new StoreCatalogSource
func NewStoreCatalogSource(sellers catalog.SellerRepository) *StoreCatalogSource {
	return &StoreCatalogSource{sellers: sellers}
}

// QueryCandidates returns one window of active sellers matching the predicate
func (s *StoreCatalogSource) QueryCandidates(ctx context.Context, predicate string, offset, limit int) (*discovery.CatalogPage, error) {
	sellers, total, err := s.sellers.SearchActive(ctx, predicate, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*discovery.Candidate, 0, len(sellers))
	for i := range sellers {
		sl := &sellers[i]
		items = append(items, &discovery.Candidate{
			Key:         sl.ID.String(),
			Name:        sl.Name,
			Description: sl.Description,
			Category:    sl.Category,
			ImageURL:    sl.ImageURL,
		})
	}
	return &discovery.CatalogPage{Items: items, TotalCount: total}, nil
}

// QueryOffers synthesizes one priceless offer per store so travel metrics
// have an address to resolve against
func (s *StoreCatalogSource) QueryOffers(ctx context.Context, keys []string) ([]*discovery.Offer, error) {
	ids := make([]uuid.UUID, 0, len(keys))
	for _, key := range keys {
		id, err := uuid.Parse(key)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	sellers, err := s.sellers.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*discovery.Offer, 0, len(sellers))
	for i := range sellers {
		sl := &sellers[i]
		out = append(out, &discovery.Offer{
			CandidateKey:  sl.ID.String(),
			SellerKey:     sl.ID.String(),
			SellerName:    sl.Name,
			SellerAddress: sl.Address,
			Price:         decimal.Zero,
			Quantity:      1,
		})
	}
	return out, nil
}
