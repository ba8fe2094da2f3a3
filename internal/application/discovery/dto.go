package discovery

import (
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/shopspring/decimal"
)

// SearchMode selects which catalog the pipeline runs over
type SearchMode string

const (
	SearchModeProducts SearchMode = "products"
	SearchModeStores   SearchMode = "stores"
)

// SearchRequest is one stateless page request through the pipeline
type SearchRequest struct {
	Mode       SearchMode
	Query      string
	SessionKey string
	// Location overrides the persisted session location when set
	Location string
	Travel   discovery.TravelFilter
	Page     int // 1-based
	PageSize int
}

// OfferResult is a seller offer annotated with travel data
type OfferResult struct {
	SellerKey      string          `json:"seller_key"`
	SellerName     string          `json:"seller_name"`
	SellerAddress  string          `json:"seller_address"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	DistanceMeters *float64        `json:"distance_meters,omitempty"`
	TravelMinutes  *float64        `json:"travel_minutes,omitempty"`
}

// CandidateResult is one ranked candidate with its surviving offers
type CandidateResult struct {
	Key         string        `json:"key"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	Score       float64       `json:"score"`
	Offers      []OfferResult `json:"offers"`
}

// SearchResult is one page of ranked candidates plus pagination progress
type SearchResult struct {
	Items     []CandidateResult `json:"items"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
	Total     int64             `json:"total"`
	Exhausted bool              `json:"exhausted"`
}

// AddBasketRequest adds a chosen offer line to the session basket
type AddBasketRequest struct {
	CandidateKey string
	SellerKey    string
	DisplayName  string
	SellerName   string
	UnitPrice    decimal.Decimal
	Quantity     int
}

// ToCandidateResult maps a ranked candidate to its response shape
func ToCandidateResult(rc discovery.RankedCandidate) CandidateResult {
	offers := make([]OfferResult, len(rc.Offers))
	for i, o := range rc.Offers {
		offers[i] = OfferResult{
			SellerKey:      o.SellerKey,
			SellerName:     o.SellerName,
			SellerAddress:  o.SellerAddress,
			Price:          o.Price,
			Quantity:       o.Quantity,
			DistanceMeters: o.DistanceMeters,
			TravelMinutes:  o.TravelMinutes,
		}
	}
	return CandidateResult{
		Key:         rc.Candidate.Key,
		Name:        rc.Candidate.Name,
		Description: rc.Candidate.Description,
		Category:    rc.Candidate.Category,
		ImageURL:    rc.Candidate.ImageURL,
		Score:       rc.Score,
		Offers:      offers,
	}
}
