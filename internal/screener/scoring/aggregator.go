package scoring

import (
	"sort"

	"golang-stock-screener/internal/entity"
)

// Factor ids of the agents that score a candidate.
const (
	FactorFundamental = "fundamental"
	FactorTechnical   = "technical"
	FactorSentiment   = "sentiment"
	FactorMomentum    = "momentum"
	FactorInsider     = "insider"
	FactorCatalyst    = "catalyst"
)

// Factors lists every known factor id in display order.
var Factors = []string{
	FactorFundamental,
	FactorTechnical,
	FactorSentiment,
	FactorMomentum,
	FactorInsider,
	FactorCatalyst,
}

// DefaultWeights returns a fresh copy of the weights used when none are configured.
func DefaultWeights() map[string]int {
	return map[string]int{
		FactorFundamental: 25,
		FactorTechnical:   20,
		FactorSentiment:   15,
		FactorMomentum:    20,
		FactorInsider:     10,
		FactorCatalyst:    10,
	}
}

// Composite returns the weighted mean of scores. Only factors present in scores
// take part; a factor absent from weights has weight 0. A zero weight sum yields 0.
func Composite(scores map[string]float64, weights map[string]int) float64 {
	// Summation order is fixed so the result does not depend on map iteration.
	factors := make([]string, 0, len(scores))
	for f := range scores {
		factors = append(factors, f)
	}
	sort.Strings(factors)

	var sum, total float64
	for _, f := range factors {
		w := float64(weights[f])
		sum += scores[f] * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// Aggregate returns copies of records with CompositeScore recomputed from weights.
// Neither records nor weights are modified.
func Aggregate(records []entity.StockRecord, weights map[string]int) []entity.StockRecord {
	out := make([]entity.StockRecord, len(records))
	for i, r := range records {
		r.CompositeScore = Composite(r.AgentScores, weights)
		out[i] = r
	}
	return out
}

// Rank aggregates records and sorts them by composite score, highest first.
// Ties keep their input order.
func Rank(records []entity.StockRecord, weights map[string]int) []entity.StockRecord {
	out := Aggregate(records, weights)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompositeScore > out[j].CompositeScore
	})
	return out
}
