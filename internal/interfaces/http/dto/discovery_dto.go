package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// SearchQuery binds the search endpoint's query string
type SearchQuery struct {
	Mode         string  `form:"mode" binding:"omitempty,oneof=products stores"`
	Q            string  `form:"q"`
	Location     string  `form:"location"`
	TravelMode   string  `form:"travel_mode" binding:"omitempty,travelmode"`
	TravelMetric string  `form:"travel_metric" binding:"omitempty,travelmetric"`
	Threshold    float64 `form:"threshold" binding:"omitempty,gt=0"`
	Page         int     `form:"page" binding:"omitempty,min=1"`
	PageSize     int     `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SetLocationRequest binds the location endpoint's body
type SetLocationRequest struct {
	Location string `json:"location" binding:"required,max=500"`
}

// AddBasketItemRequest binds the basket endpoint's body
type AddBasketItemRequest struct {
	CandidateKey string          `json:"candidate_key" binding:"required"`
	SellerKey    string          `json:"seller_key" binding:"required"`
	DisplayName  string          `json:"display_name"`
	SellerName   string          `json:"seller_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity" binding:"required,min=1"`
}

// RegisterCustomValidators registers discovery validations on gin's binding
// validator. Safe to call more than once.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("travelmode", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "driving", "walking", "cycling":
			return true
		}
		return false
	})
	_ = v.RegisterValidation("travelmetric", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "distance", "time":
			return true
		}
		return false
	})
}
