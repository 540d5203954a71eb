package scoring

import (
	"testing"

	"golang-stock-screener/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite(t *testing.T) {
	tests := []struct {
		name    string
		scores  map[string]float64
		weights map[string]int
		want    float64
	}{
		{
			name:    "weighted mean",
			scores:  map[string]float64{"a": 80, "b": 40},
			weights: map[string]int{"a": 3, "b": 1},
			want:    70,
		},
		{
			name:    "equal weights is plain mean",
			scores:  map[string]float64{"a": 10, "b": 20, "c": 60},
			weights: map[string]int{"a": 50, "b": 50, "c": 50},
			want:    30,
		},
		{
			name:    "factor missing from weights contributes nothing",
			scores:  map[string]float64{"a": 90, "b": 10},
			weights: map[string]int{"a": 10},
			want:    90,
		},
		{
			name:    "weight for absent factor is ignored",
			scores:  map[string]float64{"a": 60},
			weights: map[string]int{"a": 1, "z": 100},
			want:    60,
		},
		{
			name:    "zero total weight",
			scores:  map[string]float64{"a": 90, "b": 10},
			weights: map[string]int{"a": 0, "b": 0},
			want:    0,
		},
		{
			name:    "nil weights",
			scores:  map[string]float64{"a": 90},
			weights: nil,
			want:    0,
		},
		{
			name:    "no scores",
			scores:  nil,
			weights: DefaultWeights(),
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Composite(tt.scores, tt.weights), 1e-9)
		})
	}
}

func TestCompositeIsBoundedByScores(t *testing.T) {
	scores := map[string]float64{
		FactorFundamental: 12.5,
		FactorTechnical:   88,
		FactorSentiment:   45,
		FactorMomentum:    60,
	}
	weightSets := []map[string]int{
		DefaultWeights(),
		{FactorFundamental: 100},
		{FactorTechnical: 1, FactorSentiment: 99},
		{FactorFundamental: 7, FactorTechnical: 0, FactorSentiment: 33, FactorMomentum: 100},
	}
	for _, w := range weightSets {
		got := Composite(scores, w)
		assert.GreaterOrEqual(t, got, 12.5)
		assert.LessOrEqual(t, got, 88.0)
	}
}

func TestCompositeIsDeterministic(t *testing.T) {
	scores := map[string]float64{"a": 33.3, "b": 66.7, "c": 12.1, "d": 99.9, "e": 0.1}
	weights := map[string]int{"a": 17, "b": 23, "c": 5, "d": 71, "e": 3}

	first := Composite(scores, weights)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Composite(scores, weights))
	}
}

func TestAggregateDoesNotMutateInputs(t *testing.T) {
	weights := map[string]int{"a": 1, "b": 1}
	records := []entity.StockRecord{
		{Ticker: "GEVO", AgentScores: map[string]float64{"a": 10, "b": 30}, CompositeScore: -1},
	}

	out := Aggregate(records, weights)

	require.Len(t, out, 1)
	assert.Equal(t, 20.0, out[0].CompositeScore)
	assert.Equal(t, -1.0, records[0].CompositeScore)
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, weights)
}

func TestRankSortsDescendingAndKeepsTies(t *testing.T) {
	weights := map[string]int{"a": 1}
	records := []entity.StockRecord{
		{Ticker: "LOW", AgentScores: map[string]float64{"a": 10}},
		{Ticker: "TIE1", AgentScores: map[string]float64{"a": 50}},
		{Ticker: "HIGH", AgentScores: map[string]float64{"a": 90}},
		{Ticker: "TIE2", AgentScores: map[string]float64{"a": 50}},
	}

	ranked := Rank(records, weights)

	tickers := make([]string, len(ranked))
	for i, r := range ranked {
		tickers[i] = r.Ticker
	}
	assert.Equal(t, []string{"HIGH", "TIE1", "TIE2", "LOW"}, tickers)
	assert.Equal(t, "LOW", records[0].Ticker)
}

func TestDefaultWeightsReturnsCopy(t *testing.T) {
	w := DefaultWeights()
	w[FactorFundamental] = 0
	assert.Equal(t, 25, DefaultWeights()[FactorFundamental])
}
