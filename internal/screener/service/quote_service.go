package service

import (
	"context"
	"errors"
	"strings"

	"golang-stock-screener/internal/entity"
	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/internal/screener/repository"
	"golang-stock-screener/pkg/logger"
)

// QuoteService proxies single-ticker quote lookups.
type QuoteService interface {
	GetQuote(ctx context.Context, ticker string) (*entity.Quote, error)
}

// NewQuoteService creates a new quote service.
func NewQuoteService(yahooRepo repository.YahooFinanceRepository, log *logger.Logger) QuoteService {
	return &quoteService{yahooRepo: yahooRepo, logger: log}
}

type quoteService struct {
	yahooRepo repository.YahooFinanceRepository
	logger    *logger.Logger
}

// GetQuote fetches a fresh quote. Every call goes upstream exactly once.
func (s *quoteService) GetQuote(ctx context.Context, ticker string) (*entity.Quote, error) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return nil, ErrTickerRequired
	}

	chart, err := s.yahooRepo.GetChart(ctx, dto.GetQuoteParam{Ticker: ticker, Interval: "1d", Range: "1d"})
	if err != nil {
		var statusErr *repository.StatusError
		if errors.As(err, &statusErr) {
			return nil, &UpstreamError{StatusCode: statusErr.StatusCode}
		}
		return nil, err
	}

	if len(chart.Chart.Result) == 0 {
		s.logger.InfoContext(ctx, "No chart data for ticker", logger.StringField("ticker", ticker))
		return nil, ErrNoData
	}

	return quoteFromMeta(chart.Chart.Result[0].Meta), nil
}

func quoteFromMeta(meta dto.YahooChartMeta) *entity.Quote {
	previousClose := meta.PreviousClose
	if previousClose == nil {
		previousClose = meta.ChartPreviousClose
	}

	return &entity.Quote{
		Ticker:             meta.Symbol,
		RegularMarketPrice: meta.RegularMarketPrice,
		PreviousClose:      previousClose,
		PreMarketPrice:     meta.PreMarketPrice,
		PreMarketChange:    meta.PreMarketChange,
		PostMarketPrice:    meta.PostMarketPrice,
		PostMarketChange:   meta.PostMarketChange,
		MarketState:        meta.MarketState,
	}
}
