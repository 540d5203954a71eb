package service

import (
	"context"
	"maps"

	"golang-stock-screener/internal/entity"
	"golang-stock-screener/internal/screener/config"
	"golang-stock-screener/internal/screener/scoring"
	"golang-stock-screener/pkg/logger"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ScoreService ranks stocks and keeps per-session weight configurations in memory.
// Weights are never persisted; a session expires after the configured TTL.
type ScoreService interface {
	DefaultWeights() map[string]int
	Weights(sessionID string) map[string]int
	SetWeights(ctx context.Context, sessionID string, weights map[string]int) string
	Rank(sessionID string, stocks []entity.StockRecord, weights map[string]int) ([]entity.StockRecord, map[string]int)
}

// NewScoreService creates a new score service.
func NewScoreService(cfg config.Session, defaults map[string]int, log *logger.Logger) ScoreService {
	if len(defaults) == 0 {
		defaults = scoring.DefaultWeights()
	}
	return &scoreService{
		sessions: cache.New(cfg.TTL, cfg.CleanupInterval),
		defaults: maps.Clone(defaults),
		logger:   log,
	}
}

type scoreService struct {
	sessions *cache.Cache
	defaults map[string]int
	logger   *logger.Logger
}

func (s *scoreService) DefaultWeights() map[string]int {
	return maps.Clone(s.defaults)
}

// Weights returns a copy of the session's weights, or the defaults for an unknown session.
func (s *scoreService) Weights(sessionID string) map[string]int {
	if sessionID != "" {
		if v, ok := s.sessions.Get(sessionID); ok {
			return maps.Clone(v.(map[string]int))
		}
	}
	return s.DefaultWeights()
}

// SetWeights stores weights for sessionID, issuing a new session id when it is empty.
func (s *scoreService) SetWeights(ctx context.Context, sessionID string, weights map[string]int) string {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	s.sessions.SetDefault(sessionID, maps.Clone(weights))
	s.logger.DebugContext(ctx, "Session weights updated", logger.StringField("session_id", sessionID), logger.Field("weights", weights))
	return sessionID
}

// Rank computes composites and sorts stocks. Explicit weights win over the session's.
func (s *scoreService) Rank(sessionID string, stocks []entity.StockRecord, weights map[string]int) ([]entity.StockRecord, map[string]int) {
	if weights == nil {
		weights = s.Weights(sessionID)
	}
	return scoring.Rank(stocks, weights), weights
}
