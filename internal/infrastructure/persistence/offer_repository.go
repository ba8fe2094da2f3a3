package persistence

import (
	"context"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GormOfferRepository
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// FindAvailableByProductIDs returns in-stock offers for the given products
// with their sellers preloaded
func (r *GormOfferRepository) FindAvailableByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]catalog.Offer, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var offers []catalog.Offer
	if err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("product_id IN ? AND quantity > 0", productIDs).
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// Save creates or updates an offer
func (r *GormOfferRepository) Save(ctx context.Context, offer *catalog.Offer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}
