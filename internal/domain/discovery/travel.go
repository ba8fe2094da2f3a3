package discovery

import "github.com/Unconfirmed2/nearbuy-sub000/internal/domain/shared"

// TravelMode is the means of travel. It is opaque to ranking and passed
// through to the distance provider unchanged.
type TravelMode string

const (
	ModeDriving TravelMode = "driving"
	ModeWalking TravelMode = "walking"
	ModeCycling TravelMode = "cycling"
)

// TravelMetric selects which travel dimension the admission filter and the
// orderer operate on.
type TravelMetric string

const (
	MetricDistance TravelMetric = "distance"
	MetricTime     TravelMetric = "time"
)

// TravelFilter is the user's travel preference: how they move, which
// dimension matters, and how far is too far. Threshold is meters for the
// distance metric and minutes for the time metric.
type TravelFilter struct {
	Mode      TravelMode
	Metric    TravelMetric
	Threshold float64
}

// Validate checks that the filter holds a known mode, a known metric, and
// a positive threshold.
func (f TravelFilter) Validate() error {
	switch f.Mode {
	case ModeDriving, ModeWalking, ModeCycling:
	default:
		return shared.NewDomainError("INVALID_TRAVEL_MODE", "Travel mode must be driving, walking, or cycling")
	}
	switch f.Metric {
	case MetricDistance, MetricTime:
	default:
		return shared.NewDomainError("INVALID_TRAVEL_METRIC", "Travel metric must be distance or time")
	}
	if f.Threshold <= 0 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Travel threshold must be positive")
	}
	return nil
}

// DefaultTravelFilter returns a permissive driving/distance filter.
func DefaultTravelFilter() TravelFilter {
	return TravelFilter{
		Mode:      ModeDriving,
		Metric:    MetricDistance,
		Threshold: 30000,
	}
}
