package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func names(ranked []RankedCandidate) []string {
	out := make([]string, len(ranked))
	for i, rc := range ranked {
		out[i] = rc.Candidate.Name
	}
	return out
}

func rankedWith(score float64, c *Candidate) RankedCandidate {
	return RankedCandidate{Candidate: c, Offers: c.Offers, Score: score}
}

func TestOrderer_ScoreDescThenMetricAsc(t *testing.T) {
	orderer := NewOrderer(language.English)

	ranked := []RankedCandidate{
		rankedWith(50, candidate("B", "", "", offer("1.00", nil, ptr(5)))),
		rankedWith(150, candidate("A", "", "", offer("9.00", nil, ptr(25)))),
		rankedWith(50, candidate("C", "", "", offer("1.00", nil, ptr(2)))),
	}

	orderer.Sort(ranked, MetricTime)
	assert.Equal(t, []string{"A", "C", "B"}, names(ranked))
}

func TestOrderer_UnresolvedMetricSortsLast(t *testing.T) {
	orderer := NewOrderer(language.English)

	ranked := []RankedCandidate{
		rankedWith(0, candidate("No Route", "", "", offer("0.50", nil, nil))),
		rankedWith(0, candidate("Near", "", "", offer("2.00", nil, ptr(3)))),
	}

	orderer.Sort(ranked, MetricTime)
	assert.Equal(t, []string{"Near", "No Route"}, names(ranked))
}

func TestOrderer_PriceBreaksMetricTies(t *testing.T) {
	orderer := NewOrderer(language.English)

	ranked := []RankedCandidate{
		rankedWith(0, candidate("Pricey", "", "", offer("3.99", nil, ptr(5)))),
		rankedWith(0, candidate("Cheap", "", "", offer("1.99", nil, ptr(5)))),
	}

	orderer.Sort(ranked, MetricTime)
	assert.Equal(t, []string{"Cheap", "Pricey"}, names(ranked))
}

func TestOrderer_NameBreaksRemainingTies(t *testing.T) {
	orderer := NewOrderer(language.English)

	ranked := []RankedCandidate{
		rankedWith(0, candidate("banana", "", "", offer("1.00", nil, ptr(5)))),
		rankedWith(0, candidate("Apple", "", "", offer("1.00", nil, ptr(5)))),
	}

	orderer.Sort(ranked, MetricTime)

	// collation is case-insensitive, so Apple < banana
	assert.Equal(t, []string{"Apple", "banana"}, names(ranked))
}

func TestOrderer_Deterministic(t *testing.T) {
	orderer := NewOrderer(language.English)

	build := func() []RankedCandidate {
		return []RankedCandidate{
			rankedWith(50, candidate("Gamma", "", "", offer("2.00", ptr(500), nil))),
			rankedWith(150, candidate("Alpha", "", "", offer("1.00", ptr(100), nil))),
			rankedWith(50, candidate("Beta", "", "", offer("2.00", ptr(500), nil))),
			rankedWith(0, candidate("Delta", "", "", offer("0.50", nil, nil))),
		}
	}

	first := build()
	orderer.Sort(first, MetricDistance)

	for range 10 {
		again := build()
		orderer.Sort(again, MetricDistance)
		require.Equal(t, names(first), names(again))
	}
}
