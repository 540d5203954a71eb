package scoring

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Candidate is the raw input a Scorer sees for one ticker.
type Candidate struct {
	Ticker        string
	Sector        string
	Price         float64
	PreviousClose float64
	ChangePercent float64
	MarketCap     float64
}

// Scorer produces a 0-100 score for one factor.
type Scorer interface {
	Factor() string
	Score(ctx context.Context, c Candidate) (float64, error)
}

// RandomScorer emits placeholder scores uniformly distributed in [min, max].
type RandomScorer struct {
	factor   string
	min, max float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomScorer creates a RandomScorer for factor. A zero seed uses the current time.
func NewRandomScorer(factor string, seed int64, min, max float64) *RandomScorer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomScorer{
		factor: factor,
		min:    min,
		max:    max,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (s *RandomScorer) Factor() string { return s.factor }

func (s *RandomScorer) Score(_ context.Context, _ Candidate) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return round1(s.min + s.rng.Float64()*(s.max-s.min)), nil
}

// MomentumScorer maps the day change percent onto 0-100: 0% scores 50,
// every percent adds or removes Sensitivity points.
type MomentumScorer struct {
	Sensitivity float64
}

func (s MomentumScorer) Factor() string { return FactorMomentum }

func (s MomentumScorer) Score(_ context.Context, c Candidate) (float64, error) {
	sens := s.Sensitivity
	if sens <= 0 {
		sens = 5
	}
	return round1(clamp(50+c.ChangePercent*sens, 0, 100)), nil
}

// DefaultScorers returns the placeholder scorer set: momentum derived from the
// quote, everything else random.
func DefaultScorers(seed int64) []Scorer {
	scorers := make([]Scorer, 0, len(Factors))
	for i, f := range Factors {
		if f == FactorMomentum {
			scorers = append(scorers, MomentumScorer{})
			continue
		}
		s := seed
		if s != 0 {
			s += int64(i)
		}
		scorers = append(scorers, NewRandomScorer(f, s, 30, 95))
	}
	return scorers
}

// ScoreAll runs every scorer over c and returns the factor-id to score mapping.
func ScoreAll(ctx context.Context, scorers []Scorer, c Candidate) (map[string]float64, error) {
	scores := make(map[string]float64, len(scorers))
	for _, s := range scorers {
		v, err := s.Score(ctx, c)
		if err != nil {
			return nil, err
		}
		scores[s.Factor()] = clamp(v, 0, 100)
	}
	return scores, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
