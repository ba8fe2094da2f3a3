package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product reads used by discovery
type ProductRepository interface {
	// SearchActive returns the window [offset, offset+limit) of active
	// products whose name, category, or description matches the predicate
	// (empty predicate matches everything), plus the exact total count.
	SearchActive(ctx context.Context, predicate string, offset, limit int) ([]Product, int64, error)

	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}

// SellerRepository defines the interface for seller reads used by discovery
type SellerRepository interface {
	// SearchActive returns the window [offset, offset+limit) of active
	// sellers matching the predicate, plus the exact total count.
	SearchActive(ctx context.Context, predicate string, offset, limit int) ([]Seller, int64, error)

	// FindByID finds a seller by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Seller, error)

	// FindByIDs finds all sellers in the given ID set
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Seller, error)

	// Save creates or updates a seller
	Save(ctx context.Context, seller *Seller) error
}

// OfferRepository defines the interface for offer reads used by discovery
type OfferRepository interface {
	// FindAvailableByProductIDs returns in-stock offers for the given
	// products with their sellers preloaded.
	FindAvailableByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]Offer, error)

	// Save creates or updates an offer
	Save(ctx context.Context, offer *Offer) error
}
