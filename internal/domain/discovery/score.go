package discovery

import "strings"

// Relevance bonuses. Equality implies containment, so an exact name match
// earns both bonuses (150 total).
const (
	scoreNameEquals       = 100
	scoreNameContains     = 50
	scoreCategoryEquals   = 40
	scoreCategoryContains = 20
	scoreDescContains     = 10

	proximityTimeCeiling     = 30    // minutes
	proximityDistanceCeiling = 30000 // meters
)

// ScoreCandidates computes relevance scores for filtered candidates and
// returns them as ranked candidates. With an empty query every candidate
// scores 0 and is retained; ordering then falls through entirely to the
// travel metric, price, and name. With a non-empty query, candidates whose
// text fields earn nothing are dropped: proximity sweetens a match, it
// does not create one.
func ScoreCandidates(query string, candidates []*Candidate, loc Location, filter TravelFilter) []RankedCandidate {
	query = strings.TrimSpace(query)
	ranked := make([]RankedCandidate, 0, len(candidates))

	for _, c := range candidates {
		rc := RankedCandidate{Candidate: c, Offers: c.Offers}
		if query == "" {
			ranked = append(ranked, rc)
			continue
		}
		text := textScore(query, c)
		if text <= 0 {
			continue
		}
		rc.Score = text
		if loc.IsSet() {
			rc.Score += proximityBonus(&rc, filter.Metric)
		}
		ranked = append(ranked, rc)
	}
	return ranked
}

func textScore(query string, c *Candidate) float64 {
	q := strings.ToLower(query)
	name := strings.ToLower(strings.TrimSpace(c.Name))
	category := strings.ToLower(strings.TrimSpace(c.Category))
	description := strings.ToLower(c.Description)

	var score float64
	if name == q {
		score += scoreNameEquals
	}
	if strings.Contains(name, q) {
		score += scoreNameContains
	}
	if category == q {
		score += scoreCategoryEquals
	}
	if strings.Contains(category, q) {
		score += scoreCategoryContains
	}
	if strings.Contains(description, q) {
		score += scoreDescContains
	}
	return score
}

// proximityBonus rewards candidates whose best surviving offer is close.
// It contributes nothing when the best offer lacks the active metric.
func proximityBonus(rc *RankedCandidate, metric TravelMetric) float64 {
	v := rc.BestMetric(metric)
	if v == nil {
		return 0
	}
	if metric == MetricTime {
		return max(0, proximityTimeCeiling-*v)
	}
	return max(0, proximityDistanceCeiling-*v) / 1000
}
