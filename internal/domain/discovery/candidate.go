package discovery

import (
	"github.com/shopspring/decimal"
)

// Candidate is a product or store eligible for display in a result list.
// Candidates are created fresh on every page fetch and are immutable once
// fetched; only their offers are mutated during enrichment.
type Candidate struct {
	Key         string
	Name        string
	Description string
	Category    string
	ImageURL    string
	Offers      []*Offer
}

// Offer is a specific seller's price, availability, and location for a
// candidate. DistanceMeters and TravelMinutes stay nil until enrichment
// resolves them; a failed lookup leaves them nil as well.
type Offer struct {
	CandidateKey   string
	SellerKey      string
	SellerName     string
	SellerAddress  string
	Price          decimal.Decimal
	Quantity       int
	DistanceMeters *float64
	TravelMinutes  *float64
}

// MetricValue returns the offer's value for the given metric, or nil when
// it has not been resolved.
func (o *Offer) MetricValue(metric TravelMetric) *float64 {
	if metric == MetricTime {
		return o.TravelMinutes
	}
	return o.DistanceMeters
}

// RankedCandidate is a candidate restricted to its surviving offers plus
// the relevance score computed for the active snapshot.
type RankedCandidate struct {
	Candidate *Candidate
	Offers    []*Offer
	Score     float64
}

// BestOffer returns the surviving offer with the lowest resolved value for
// the given metric. Offers without a resolved value lose to offers with
// one; when no offer has the metric, the first offer is returned so price
// and display fall back to something stable.
func (r *RankedCandidate) BestOffer(metric TravelMetric) *Offer {
	if len(r.Offers) == 0 {
		return nil
	}
	best := r.Offers[0]
	for _, o := range r.Offers[1:] {
		bv := best.MetricValue(metric)
		ov := o.MetricValue(metric)
		switch {
		case ov == nil:
			continue
		case bv == nil, *ov < *bv:
			best = o
		}
	}
	return best
}

// BestMetric returns the lowest resolved metric value among surviving
// offers, or nil when no offer has been enriched for that metric.
func (r *RankedCandidate) BestMetric(metric TravelMetric) *float64 {
	var best *float64
	for _, o := range r.Offers {
		v := o.MetricValue(metric)
		if v == nil {
			continue
		}
		if best == nil || *v < *best {
			best = v
		}
	}
	return best
}
