package persistence

import (
	"context"
	"errors"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/catalog"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSellerRepository implements SellerRepository using GORM
type GormSellerRepository struct {
	db *gorm.DB
}

// NewGormSellerRepository creates a new GormSellerRepository
func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// SearchActive returns the window [offset, offset+limit) of active sellers
// matching the predicate, plus the exact total count.
func (r *GormSellerRepository) SearchActive(ctx context.Context, predicate string, offset, limit int) ([]catalog.Seller, int64, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Seller{}).
		Where("status = ?", catalog.SellerStatusActive)

	if predicate != "" {
		pattern := "%" + predicate + "%"
		query = query.Where("name ILIKE ? OR category ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sellers []catalog.Seller
	if err := query.Order("created_at, id").Offset(offset).Limit(limit).Find(&sellers).Error; err != nil {
		return nil, 0, err
	}
	return sellers, total, nil
}

// FindByID finds a seller by its ID
func (r *GormSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Seller, error) {
	var seller catalog.Seller
	if err := r.db.WithContext(ctx).First(&seller, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &seller, nil
}

// FindByIDs finds all sellers in the given ID set
func (r *GormSellerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Seller, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var sellers []catalog.Seller
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

// Save creates or updates a seller
func (r *GormSellerRepository) Save(ctx context.Context, seller *catalog.Seller) error {
	return r.db.WithContext(ctx).Save(seller).Error
}
