package dto

import "golang-stock-screener/internal/entity"

// RankRequest asks for composites over stocks. Weights default to the session's.
type RankRequest struct {
	Stocks  []entity.StockRecord `json:"stocks" validate:"dive"`
	Weights map[string]int       `json:"weights,omitempty" validate:"omitempty,dive,min=0,max=100"`
}

// RankResponse holds the stocks sorted by composite score, highest first.
type RankResponse struct {
	Stocks  []entity.StockRecord `json:"stocks"`
	Weights map[string]int       `json:"weights"`
}

// WeightsRequest replaces the session's weight configuration.
type WeightsRequest struct {
	Weights map[string]int `json:"weights" validate:"required,dive,min=0,max=100"`
}

// WeightsResponse returns the session's weight configuration.
type WeightsResponse struct {
	SessionID string         `json:"sessionId,omitempty"`
	Weights   map[string]int `json:"weights"`
}

// ScanRequest triggers a scan.
type ScanRequest struct {
	Save bool `json:"save" query:"save"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status       string `json:"status"`
	KVConfigured bool   `json:"kvConfigured"`
}
