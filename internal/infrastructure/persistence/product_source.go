package persistence

import (
	"context"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/catalog"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/google/uuid"
)

// ProductCatalogSource adapts the product and offer repositories to the
// candidate feed consumed by the discovery engine. Candidate keys are
// product IDs in string form.
type ProductCatalogSource struct {
	products catalog.ProductRepository
	offers   catalog.OfferRepository
}

// NewProductCatalogSource creates a new ProductCatalogSource
func NewProductCatalogSource(products catalog.ProductRepository, offers catalog.OfferRepository) *ProductCatalogSource {
	return &ProductCatalogSource{products: products, offers: offers}
}

// QueryCandidates returns one window of active products matching the predicate
func (s *ProductCatalogSource) QueryCandidates(ctx context.Context, predicate string, offset, limit int) (*discovery.CatalogPage, error) {
	products, total, err := s.products.SearchActive(ctx, predicate, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*discovery.Candidate, 0, len(products))
	for i := range products {
		p := &products[i]
		items = append(items, &discovery.Candidate{
			Key:         p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			ImageURL:    p.ImageURL,
		})
	}
	return &discovery.CatalogPage{Items: items, TotalCount: total}, nil
}

// QueryOffers returns every in-stock offer for the given product keys
func (s *ProductCatalogSource) QueryOffers(ctx context.Context, keys []string) ([]*discovery.Offer, error) {
	ids := make([]uuid.UUID, 0, len(keys))
	for _, key := range keys {
		id, err := uuid.Parse(key)
		if err != nil {
			// keys come from QueryCandidates, anything else is skipped
			continue
		}
		ids = append(ids, id)
	}

	offers, err := s.offers.FindAvailableByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*discovery.Offer, 0, len(offers))
	for i := range offers {
		o := &offers[i]
		dOffer := &discovery.Offer{
			CandidateKey: o.ProductID.String(),
			SellerKey:    o.SellerID.String(),
			Price:        o.Price,
			Quantity:     o.Quantity,
		}
		if o.Seller != nil {
			dOffer.SellerName = o.Seller.Name
			dOffer.SellerAddress = o.Seller.Address
		}
		out = append(out, dOffer)
	}
	return out, nil
}
