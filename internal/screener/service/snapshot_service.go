package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang-stock-screener/internal/entity"
	"golang-stock-screener/internal/screener/config"
	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/internal/screener/repository"
	"golang-stock-screener/pkg/logger"
	"golang-stock-screener/pkg/utils"
)

// SnapshotService persists the latest scan under a single key.
//
// The store only holds strings, so a snapshot is encoded twice on save: once into
// its JSON document and once more into a JSON string literal carrying that
// document. Load undoes both passes. The two directions form one contract.
type SnapshotService interface {
	Configured() bool
	Load(ctx context.Context) (*dto.Snapshot, error)
	Save(ctx context.Context, req *dto.SaveSnapshotRequest) (*dto.Snapshot, error)
	SaveResult(ctx context.Context, result *entity.ScanResult) (*dto.Snapshot, error)
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(cfg config.KV, store repository.SnapshotStore, log *logger.Logger) SnapshotService {
	return &snapshotService{cfg: cfg, store: store, logger: log, now: utils.NowMillis}
}

type snapshotService struct {
	cfg    config.KV
	store  repository.SnapshotStore
	logger *logger.Logger
	now    func() int64
}

func (s *snapshotService) Configured() bool {
	return s.cfg.Configured()
}

// Load returns the last saved snapshot, or the empty snapshot when nothing was saved yet.
func (s *snapshotService) Load(ctx context.Context) (*dto.Snapshot, error) {
	if !s.Configured() {
		return nil, ErrKVNotConfigured
	}

	value, found, err := s.store.Get(ctx, s.cfg.Key)
	if err != nil {
		var statusErr *repository.StatusError
		if errors.As(err, &statusErr) {
			return nil, ErrLoadFailed
		}
		return nil, err
	}
	if !found {
		return dto.EmptySnapshot(), nil
	}

	snapshot, err := decodeSnapshot(value)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to decode stored snapshot", logger.ErrorField(err))
		return nil, err
	}
	return snapshot, nil
}

// Save overwrites the stored snapshot with req, stamped with the current time.
func (s *snapshotService) Save(ctx context.Context, req *dto.SaveSnapshotRequest) (*dto.Snapshot, error) {
	if !s.Configured() {
		return nil, ErrKVNotConfigured
	}

	snapshot := &dto.Snapshot{
		Timestamp: utils.ToPointer(s.now()),
		Stocks:    req.Stocks,
		ScanStats: req.ScanStats,
	}

	value, err := encodeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, s.cfg.Key, value); err != nil {
		var statusErr *repository.StatusError
		if errors.As(err, &statusErr) {
			return nil, ErrSaveFailed
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "Snapshot saved", logger.Field("timestamp", *snapshot.Timestamp))
	return snapshot, nil
}

// SaveResult stores a typed scan result.
func (s *snapshotService) SaveResult(ctx context.Context, result *entity.ScanResult) (*dto.Snapshot, error) {
	stocks := result.Stocks
	if stocks == nil {
		stocks = []entity.StockRecord{}
	}
	stocksJSON, err := json.Marshal(stocks)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stocks: %w", err)
	}
	statsJSON, err := json.Marshal(result.ScanStats)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scan stats: %w", err)
	}
	return s.Save(ctx, &dto.SaveSnapshotRequest{Stocks: stocksJSON, ScanStats: statsJSON})
}

func encodeSnapshot(snapshot *dto.Snapshot) (string, error) {
	document, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	literal, err := json.Marshal(string(document))
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot value: %w", err)
	}
	return string(literal), nil
}

// decodeSnapshot reverses encodeSnapshot. A value written as a bare document
// (single encoding) is accepted as well.
func decodeSnapshot(value string) (*dto.Snapshot, error) {
	document := value
	var inner string
	if err := json.Unmarshal([]byte(value), &inner); err == nil {
		document = inner
	}

	var snapshot dto.Snapshot
	if err := json.Unmarshal([]byte(document), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse stored snapshot: %w", err)
	}
	if snapshot.Stocks == nil {
		snapshot.Stocks = json.RawMessage("[]")
	}
	if snapshot.ScanStats == nil {
		snapshot.ScanStats = json.RawMessage("null")
	}
	return &snapshot, nil
}
