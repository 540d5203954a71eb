package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-stock-screener/internal/screener/config"
	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/pkg/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const yahooChartPath = "/v8/finance/chart/{ticker}"

// YahooFinanceRepository fetches chart metadata from Yahoo Finance.
type YahooFinanceRepository interface {
	GetChart(ctx context.Context, param dto.GetQuoteParam) (*dto.YahooChartResponse, error)
}

type yahooFinanceRepository struct {
	cfg            config.Yahoo
	log            *logger.Logger
	client         *resty.Client
	requestLimiter *rate.Limiter
}

// NewYahooFinanceRepository creates a Yahoo chart client. Every request carries a
// browser User-Agent; Yahoo rejects the default Go and curl agents.
func NewYahooFinanceRepository(cfg config.Yahoo, log *logger.Logger) YahooFinanceRepository {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.MaxRequestPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.MaxRequestPerMinute)), 1)
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json, text/plain, */*")

	return &yahooFinanceRepository{
		cfg:            cfg,
		log:            log,
		client:         client,
		requestLimiter: limiter,
	}
}

// GetChart issues a single chart request. Non-2xx responses are returned as *StatusError.
func (r *yahooFinanceRepository) GetChart(ctx context.Context, param dto.GetQuoteParam) (*dto.YahooChartResponse, error) {
	if param.Interval == "" {
		param.Interval = "1d"
	}
	if param.Range == "" {
		param.Range = "1d"
	}

	fields := []zap.Field{
		zap.String("ticker", param.Ticker),
		zap.String("interval", param.Interval),
		zap.String("range", param.Range),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		r.log.ErrorContext(ctx, "Failed to wait for request limit", append(fields, zap.Error(err))...)
		return nil, err
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("ticker", param.Ticker).
		SetQueryParams(map[string]string{
			"interval":       param.Interval,
			"range":          param.Range,
			"includePrePost": "true",
		}).
		Get(yahooChartPath)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to send request to Yahoo Finance API", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to send request to Yahoo Finance API: %w", err)
	}

	if !resp.IsSuccess() {
		r.log.WarnContext(ctx, "Received non-OK response from Yahoo Finance API", append(fields, zap.Int("status_code", resp.StatusCode()))...)
		return nil, &StatusError{Op: "yahoo chart", StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var chart dto.YahooChartResponse
	if err := json.Unmarshal(resp.Body(), &chart); err != nil {
		r.log.ErrorContext(ctx, "Failed to parse Yahoo Finance response", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to parse Yahoo Finance response: %w", err)
	}

	r.log.DebugContext(ctx, "Fetched Yahoo Finance chart", append(fields, zap.Int("results", len(chart.Chart.Result)))...)
	return &chart, nil
}
