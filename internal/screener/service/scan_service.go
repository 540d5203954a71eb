package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang-stock-screener/internal/entity"
	"golang-stock-screener/internal/screener/config"
	"golang-stock-screener/internal/screener/scoring"
	"golang-stock-screener/pkg/logger"
	"golang-stock-screener/pkg/telegram"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// ScanService evaluates the configured universe and produces a ranked scan result.
type ScanService interface {
	Run(ctx context.Context, save bool) (*entity.ScanResult, error)
	StartSchedule(ctx context.Context) error
}

// NewScanService creates a new scan service. notifier may be nil.
func NewScanService(
	cfg config.Scanner,
	quoteService QuoteService,
	scoreService ScoreService,
	snapshotService SnapshotService,
	scorers []scoring.Scorer,
	notifier telegram.Notifier,
	topN int,
	log *logger.Logger,
) ScanService {
	if notifier == nil {
		notifier = telegram.NopNotifier{}
	}
	return &scanService{
		cfg:             cfg,
		quoteService:    quoteService,
		scoreService:    scoreService,
		snapshotService: snapshotService,
		scorers:         scorers,
		notifier:        notifier,
		topN:            topN,
		logger:          log,
		cronParser:      cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

type scanService struct {
	cfg             config.Scanner
	quoteService    QuoteService
	scoreService    ScoreService
	snapshotService SnapshotService
	scorers         []scoring.Scorer
	notifier        telegram.Notifier
	topN            int
	logger          *logger.Logger
	cronParser      cron.Parser

	// one scan at a time; overlapping scheduled runs are skipped
	running sync.Mutex
}

// Run scans every ticker of the universe. A ticker whose quote or scoring fails is
// counted in the stats and skipped; the scan itself only fails on cancellation
// or when saving was requested and failed.
func (s *scanService) Run(ctx context.Context, save bool) (*entity.ScanResult, error) {
	s.running.Lock()
	defer s.running.Unlock()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	universe := s.cfg.Universe
	records := make([]*entity.StockRecord, len(universe))

	g, gctx := errgroup.WithContext(ctx)
	limit := s.cfg.MaxConcurrency
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, entry := range universe {
		i, entry := i, entry
		g.Go(func() error {
			record, err := s.evaluate(gctx, entry)
			if err != nil {
				s.logger.WarnContext(ctx, "Failed to evaluate ticker", logger.StringField("ticker", entry.Ticker), logger.ErrorField(err))
				return nil
			}
			records[i] = record
			return nil
		})
	}
	// closures never return an error: per-ticker failures are counted below, not propagated
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scan aborted: %w", err)
	}

	stocks := make([]entity.StockRecord, 0, len(universe))
	stats := entity.ScanStats{TotalScanned: len(universe)}
	for i, r := range records {
		if r == nil {
			stats.Failed++
			stats.FailedTickers = append(stats.FailedTickers, universe[i].Ticker)
			continue
		}
		stocks = append(stocks, *r)
	}
	stats.Succeeded = len(stocks)

	ranked, _ := s.scoreService.Rank("", stocks, s.scoreService.DefaultWeights())
	if len(ranked) > 0 {
		var sum float64
		for _, r := range ranked {
			sum += r.CompositeScore
		}
		stats.AverageScore = sum / float64(len(ranked))
		stats.TopTicker = ranked[0].Ticker
	}
	stats.DurationMs = time.Since(start).Milliseconds()

	result := &entity.ScanResult{Stocks: ranked, ScanStats: stats}

	s.logger.InfoContext(ctx, "Scan completed",
		logger.IntField("total", stats.TotalScanned),
		logger.IntField("succeeded", stats.Succeeded),
		logger.IntField("failed", stats.Failed),
		logger.StringField("top_ticker", stats.TopTicker))

	if save {
		if _, err := s.snapshotService.SaveResult(ctx, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (s *scanService) evaluate(ctx context.Context, entry config.UniverseEntry) (*entity.StockRecord, error) {
	ticker := strings.ToUpper(strings.TrimSpace(entry.Ticker))
	quote, err := s.quoteService.GetQuote(ctx, ticker)
	if err != nil {
		return nil, err
	}

	var price, previousClose, change float64
	if quote.RegularMarketPrice != nil {
		price = *quote.RegularMarketPrice
	}
	if quote.PreviousClose != nil {
		previousClose = *quote.PreviousClose
	}
	if previousClose > 0 {
		change = (price - previousClose) / previousClose * 100
	}

	scores, err := scoring.ScoreAll(ctx, s.scorers, scoring.Candidate{
		Ticker:        ticker,
		Sector:        entry.Sector,
		Price:         price,
		PreviousClose: previousClose,
		ChangePercent: change,
		MarketCap:     entry.MarketCap,
	})
	if err != nil {
		return nil, fmt.Errorf("scoring %s: %w", ticker, err)
	}

	return &entity.StockRecord{
		Ticker:        ticker,
		Name:          entry.Name,
		Sector:        entry.Sector,
		Price:         price,
		MarketCap:     entry.MarketCap,
		ChangePercent: change,
		AgentScores:   scores,
	}, nil
}

// StartSchedule runs a scan on every tick of the configured cron expression until
// ctx is done. It returns immediately when no schedule is configured.
func (s *scanService) StartSchedule(ctx context.Context) error {
	if s.cfg.Schedule == "" {
		s.logger.Info("Scan schedule disabled")
		return nil
	}

	schedule, err := s.cronParser.Parse(s.cfg.Schedule)
	if err != nil {
		return fmt.Errorf("invalid scan schedule %q: %w", s.cfg.Schedule, err)
	}

	c := cron.New(cron.WithParser(s.cronParser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(schedule, cron.FuncJob(func() { s.runScheduled(ctx) }))
	c.Start()
	s.logger.Info("Scan schedule started", logger.StringField("schedule", s.cfg.Schedule))

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		s.logger.Info("Scan schedule stopped")
	}()
	return nil
}

func (s *scanService) runScheduled(ctx context.Context) {
	result, err := s.Run(ctx, s.cfg.SaveOnSchedule)
	if err != nil {
		s.logger.Error("Scheduled scan failed", logger.ErrorField(err))
		return
	}
	for _, msg := range telegram.FormatScanSummaryForTelegram(result, s.topN, time.Now()) {
		if err := s.notifier.SendMessage(msg); err != nil {
			s.logger.Error("Failed to send scan summary", logger.ErrorField(err))
			return
		}
	}
}
