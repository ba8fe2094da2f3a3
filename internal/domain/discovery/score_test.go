package discovery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func candidate(name, category, description string, offers ...*Offer) *Candidate {
	return &Candidate{
		Key:         name,
		Name:        name,
		Category:    category,
		Description: description,
		Offers:      offers,
	}
}

func offer(price string, distance, minutes *float64) *Offer {
	return &Offer{
		SellerName:     "seller",
		SellerAddress:  "1 Main St",
		Price:          decimal.RequireFromString(price),
		Quantity:       1,
		DistanceMeters: distance,
		TravelMinutes:  minutes,
	}
}

func TestScoreCandidates_ExactMatchBeatsContains(t *testing.T) {
	candidates := []*Candidate{
		candidate("Milk", "Dairy", ""),
		candidate("Milk Chocolate", "Candy", ""),
	}

	ranked := ScoreCandidates("Milk", candidates, "", DefaultTravelFilter())
	require.Len(t, ranked, 2)

	// exact name match earns equals+contains vs. contains only
	assert.Equal(t, "Milk", ranked[0].Candidate.Name)
	assert.Equal(t, float64(150), ranked[0].Score)
	assert.Equal(t, "Milk Chocolate", ranked[1].Candidate.Name)
	assert.Equal(t, float64(50), ranked[1].Score)
}

func TestScoreCandidates_FieldBonuses(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		cand     *Candidate
		expected float64
	}{
		{
			name:     "name equals is case-insensitive and trimmed",
			query:    "  milk ",
			cand:     candidate("MILK", "", ""),
			expected: 150,
		},
		{
			name:     "exact category earns equals plus contains",
			query:    "dairy",
			cand:     candidate("Whole Milk", "Dairy", ""),
			expected: 60,
		},
		{
			name:     "partial category earns contains only",
			query:    "dairy",
			cand:     candidate("Whole Milk", "Dairy Products", ""),
			expected: 20,
		},
		{
			name:     "description contains adds 10",
			query:    "lactose",
			cand:     candidate("Whole Milk", "Dairy", "lactose free"),
			expected: 10,
		},
		{
			name:     "bonuses accumulate across fields",
			query:    "milk",
			cand:     candidate("Milk", "Milk", "fresh milk daily"),
			expected: 150 + 60 + 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := ScoreCandidates(tt.query, []*Candidate{tt.cand}, "", DefaultTravelFilter())
			require.Len(t, ranked, 1)
			assert.Equal(t, tt.expected, ranked[0].Score)
		})
	}
}

func TestScoreCandidates_NonMatchExcluded(t *testing.T) {
	near := candidate("Bananas", "Fruit", "", offer("1.00", ptr(100), ptr(2)))

	ranked := ScoreCandidates("milk", []*Candidate{near}, "52.5,13.4", DefaultTravelFilter())

	// proximity alone never turns a non-match into a result
	assert.Empty(t, ranked)
}

func TestScoreCandidates_EmptyQueryKeepsEverythingAtZero(t *testing.T) {
	candidates := []*Candidate{
		candidate("Bananas", "Fruit", "", offer("1.00", ptr(100), ptr(2))),
		candidate("Milk", "Dairy", "", offer("2.00", ptr(900), ptr(9))),
	}

	ranked := ScoreCandidates("", candidates, "52.5,13.4", DefaultTravelFilter())
	require.Len(t, ranked, 2)
	for _, rc := range ranked {
		assert.Zero(t, rc.Score)
	}
}

func TestScoreCandidates_ProximityBonus(t *testing.T) {
	t.Run("time metric adds max(0, 30-minutes)", func(t *testing.T) {
		filter := TravelFilter{Mode: ModeDriving, Metric: MetricTime, Threshold: 60}
		c := candidate("Milk", "", "", offer("2.00", nil, ptr(12)))

		ranked := ScoreCandidates("milk", []*Candidate{c}, "origin", filter)
		require.Len(t, ranked, 1)
		assert.Equal(t, float64(150+18), ranked[0].Score)
	})

	t.Run("distance metric adds max(0, 30000-meters)/1000", func(t *testing.T) {
		filter := TravelFilter{Mode: ModeDriving, Metric: MetricDistance, Threshold: 50000}
		c := candidate("Milk", "", "", offer("2.00", ptr(4000), nil))

		ranked := ScoreCandidates("milk", []*Candidate{c}, "origin", filter)
		require.Len(t, ranked, 1)
		assert.Equal(t, float64(150+26), ranked[0].Score)
	})

	t.Run("best offer drives the bonus", func(t *testing.T) {
		filter := TravelFilter{Mode: ModeDriving, Metric: MetricTime, Threshold: 60}
		c := candidate("Milk", "", "",
			offer("2.00", nil, ptr(25)),
			offer("3.00", nil, ptr(5)),
		)

		ranked := ScoreCandidates("milk", []*Candidate{c}, "origin", filter)
		require.Len(t, ranked, 1)
		assert.Equal(t, float64(150+25), ranked[0].Score)
	})

	t.Run("no bonus without a location", func(t *testing.T) {
		filter := TravelFilter{Mode: ModeDriving, Metric: MetricTime, Threshold: 60}
		c := candidate("Milk", "", "", offer("2.00", nil, ptr(5)))

		ranked := ScoreCandidates("milk", []*Candidate{c}, "", filter)
		require.Len(t, ranked, 1)
		assert.Equal(t, float64(150), ranked[0].Score)
	})

	t.Run("no bonus when the metric is unresolved", func(t *testing.T) {
		filter := TravelFilter{Mode: ModeDriving, Metric: MetricTime, Threshold: 60}
		c := candidate("Milk", "", "", offer("2.00", ptr(1000), nil))

		ranked := ScoreCandidates("milk", []*Candidate{c}, "origin", filter)
		require.Len(t, ranked, 1)
		assert.Equal(t, float64(150), ranked[0].Score)
	})

	t.Run("far offers contribute zero, never negative", func(t *testing.T) {
		filter := TravelFilter{Mode: ModeDriving, Metric: MetricTime, Threshold: 600}
		c := candidate("Milk", "", "", offer("2.00", nil, ptr(90)))

		ranked := ScoreCandidates("milk", []*Candidate{c}, "origin", filter)
		require.Len(t, ranked, 1)
		assert.Equal(t, float64(150), ranked[0].Score)
	})
}
