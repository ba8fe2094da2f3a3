package catalog

import (
	"strings"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/shared"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is a catalog listing that sellers publish offers against. The
// discovery engine reads products; it never mutates them.
type Product struct {
	shared.BaseEntity
	Name        string        `gorm:"type:varchar(200);not null;index"`
	Description string        `gorm:"type:text"`
	Category    string        `gorm:"type:varchar(100);index"`
	ImageURL    string        `gorm:"type:varchar(500)"`
	Status      ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(name, category string) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Category:   category,
		Status:     ProductStatusActive,
	}, nil
}

// IsActive returns true if the product is visible to discovery
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
