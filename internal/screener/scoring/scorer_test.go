package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomScorerStaysInRange(t *testing.T) {
	s := NewRandomScorer(FactorSentiment, 42, 30, 95)
	assert.Equal(t, FactorSentiment, s.Factor())

	for i := 0; i < 200; i++ {
		v, err := s.Score(context.Background(), Candidate{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 30.0)
		assert.LessOrEqual(t, v, 95.0)
	}
}

func TestRandomScorerIsSeedable(t *testing.T) {
	a := NewRandomScorer(FactorInsider, 7, 0, 100)
	b := NewRandomScorer(FactorInsider, 7, 0, 100)
	for i := 0; i < 10; i++ {
		va, _ := a.Score(context.Background(), Candidate{})
		vb, _ := b.Score(context.Background(), Candidate{})
		assert.Equal(t, va, vb)
	}
}

func TestMomentumScorer(t *testing.T) {
	s := MomentumScorer{}
	tests := []struct {
		change float64
		want   float64
	}{
		{0, 50},
		{2, 60},
		{-4, 30},
		{25, 100},
		{-50, 0},
	}
	for _, tt := range tests {
		got, err := s.Score(context.Background(), Candidate{ChangePercent: tt.change})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "change %v", tt.change)
	}
}

type failingScorer struct{}

func (failingScorer) Factor() string { return "broken" }
func (failingScorer) Score(context.Context, Candidate) (float64, error) {
	return 0, errors.New("boom")
}

type fixedScorer struct {
	factor string
	value  float64
}

func (f fixedScorer) Factor() string { return f.factor }
func (f fixedScorer) Score(context.Context, Candidate) (float64, error) {
	return f.value, nil
}

func TestScoreAll(t *testing.T) {
	scores, err := ScoreAll(context.Background(), DefaultScorers(1), Candidate{ChangePercent: 1})
	require.NoError(t, err)
	assert.Len(t, scores, len(Factors))
	assert.Equal(t, 55.0, scores[FactorMomentum])

	scores, err = ScoreAll(context.Background(), []Scorer{fixedScorer{"x", 150}, fixedScorer{"y", -3}}, Candidate{})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 100, "y": 0}, scores)

	_, err = ScoreAll(context.Background(), []Scorer{failingScorer{}}, Candidate{})
	assert.EqualError(t, err, "boom")
}
