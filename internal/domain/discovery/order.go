package discovery

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Orderer sorts ranked candidates into the deterministic display order:
// score descending, then best-offer travel metric ascending (unresolved
// after resolved), then best-offer price ascending, then locale-aware name
// ascending. Sorting is a pure function of its input: identical inputs
// always produce identical order.
type Orderer struct {
	tag language.Tag
}

// NewOrderer creates an orderer that compares names under the given locale.
func NewOrderer(tag language.Tag) *Orderer {
	return &Orderer{tag: tag}
}

// Sort orders ranked in place.
func (o *Orderer) Sort(ranked []RankedCandidate, metric TravelMetric) {
	// Collators are not safe for concurrent use, so build one per call.
	col := collate.New(o.tag, collate.IgnoreCase)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]

		if a.Score != b.Score {
			return a.Score > b.Score
		}

		av, bv := a.BestMetric(metric), b.BestMetric(metric)
		switch {
		case av != nil && bv == nil:
			return true
		case av == nil && bv != nil:
			return false
		case av != nil && bv != nil && *av != *bv:
			return *av < *bv
		}

		ao, bo := a.BestOffer(metric), b.BestOffer(metric)
		if ao != nil && bo != nil {
			if cmp := ao.Price.Cmp(bo.Price); cmp != 0 {
				return cmp < 0
			}
		}

		return col.CompareString(a.Candidate.Name, b.Candidate.Name) < 0
	})
}
