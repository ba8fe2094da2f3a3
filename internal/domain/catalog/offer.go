package catalog

import (
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Offer is one seller's price and availability for one product. Discovery
// only ever sees offers with positive available quantity.
type Offer struct {
	shared.BaseEntity
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index:idx_offers_product"`
	SellerID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_offers_seller"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Quantity  int             `gorm:"not null;default:0"`

	Seller *Seller `gorm:"foreignKey:SellerID"`
}

// TableName returns the table name for GORM
func (Offer) TableName() string {
	return "offers"
}

// NewOffer creates an offer after validating price and quantity
func NewOffer(productID, sellerID uuid.UUID, price decimal.Decimal, quantity int) (*Offer, error) {
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Offer price cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Offer quantity cannot be negative")
	}
	return &Offer{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		SellerID:   sellerID,
		Price:      price,
		Quantity:   quantity,
	}, nil
}

// IsAvailable returns true when the offer has stock to sell
func (o *Offer) IsAvailable() bool {
	return o.Quantity > 0
}
