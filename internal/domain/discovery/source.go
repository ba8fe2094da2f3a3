package discovery

import "context"

// CatalogPage is one window of candidates plus the authoritative total for
// the whole predicate.
type CatalogPage struct {
	Items      []*Candidate
	TotalCount int64
}

// CatalogSource supplies candidates and their seller offers. Implementations
// must return an exact TotalCount on every page and restrict offers to
// positive available quantity.
type CatalogSource interface {
	// QueryCandidates returns the page window [offset, offset+limit) of
	// candidates matching the text predicate.
	QueryCandidates(ctx context.Context, predicate string, offset, limit int) (*CatalogPage, error)

	// QueryOffers returns all offers for the given candidate keys.
	QueryOffers(ctx context.Context, candidateKeys []string) ([]*Offer, error)
}

// DistanceProvider resolves travel geometry between an origin location and
// a destination address. "No route found" is an ordinary failure outcome
// (ErrNoRoute), not a programmer error.
type DistanceProvider interface {
	// Distance returns the driving distance in meters.
	Distance(ctx context.Context, origin Location, destination string) (float64, error)

	// TravelTime returns the travel time in minutes for the given mode.
	TravelTime(ctx context.Context, origin Location, destination string, mode TravelMode) (float64, error)
}

// BasketItem is the line added to a basket when the user picks an offer
// from a ranked candidate.
type BasketItem struct {
	CandidateKey string `json:"candidate_key"`
	SellerKey    string `json:"seller_key"`
	DisplayName  string `json:"display_name"`
	SellerName   string `json:"seller_name"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int    `json:"quantity"`
}

// BasketStore is the persistent shopping basket. The discovery core
// appends picked offers and reads the basket back for display.
type BasketStore interface {
	Add(ctx context.Context, sessionKey string, item BasketItem) error
	Items(ctx context.Context, sessionKey string) ([]BasketItem, error)
}

// LocationStore persists the user's chosen origin across the session.
type LocationStore interface {
	Get(ctx context.Context, sessionKey string) (Location, error)
	Set(ctx context.Context, sessionKey string, loc Location) error
}
