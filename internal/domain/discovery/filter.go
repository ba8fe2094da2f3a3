package discovery

// ApplyTravelFilter removes offers whose resolved value for the filter's
// active metric exceeds the threshold, and drops candidates left with no
// offers. Offers with an unresolved metric value are kept: a geocoding
// failure degrades to "unknown, don't filter" rather than hiding results.
func ApplyTravelFilter(candidates []*Candidate, filter TravelFilter) []*Candidate {
	kept := make([]*Candidate, 0, len(candidates))
	for _, c := range candidates {
		surviving := make([]*Offer, 0, len(c.Offers))
		for _, o := range c.Offers {
			if admitOffer(o, filter) {
				surviving = append(surviving, o)
			}
		}
		if len(surviving) == 0 {
			continue
		}
		c.Offers = surviving
		kept = append(kept, c)
	}
	return kept
}

func admitOffer(o *Offer, filter TravelFilter) bool {
	v := o.MetricValue(filter.Metric)
	if v == nil {
		// fail-open
		return true
	}
	return *v <= filter.Threshold
}
