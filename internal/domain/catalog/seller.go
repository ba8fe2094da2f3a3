package catalog

import (
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/shared"
)

// SellerStatus represents the status of a seller
type SellerStatus string

const (
	SellerStatusActive   SellerStatus = "active"
	SellerStatusInactive SellerStatus = "inactive"
)

// Seller is a merchant storefront. In store-mode discovery the seller
// itself is the candidate; in product mode it is the party behind each
// offer. Address is free text resolvable by the distance provider.
type Seller struct {
	shared.BaseEntity
	Name        string       `gorm:"type:varchar(200);not null;index"`
	Description string       `gorm:"type:text"`
	Category    string       `gorm:"type:varchar(100);index"`
	Address     string       `gorm:"type:varchar(500)"`
	ImageURL    string       `gorm:"type:varchar(500)"`
	Status      SellerStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Seller) TableName() string {
	return "sellers"
}

// NewSeller creates a new active seller
func NewSeller(name, address string) (*Seller, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Seller{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		Status:     SellerStatusActive,
	}, nil
}

// IsActive returns true if the seller is visible to discovery
func (s *Seller) IsActive() bool {
	return s.Status == SellerStatusActive
}
