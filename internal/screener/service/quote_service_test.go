package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/internal/screener/repository"
	"golang-stock-screener/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuote(t *testing.T) {
	marketState := "REGULAR"
	price, prev := 150.0, 148.0
	yahoo := &fakeYahoo{charts: map[string]*dto.YahooChartResponse{
		"AAPL": {Chart: dto.YahooChart{Result: []dto.YahooChartResult{{Meta: dto.YahooChartMeta{
			Symbol:             "AAPL",
			RegularMarketPrice: &price,
			PreviousClose:      &prev,
			MarketState:        &marketState,
		}}}}},
	}}
	svc := NewQuoteService(yahoo, logger.NewNop())

	quote, err := svc.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", quote.Ticker)
	assert.Equal(t, 150.0, *quote.RegularMarketPrice)
	assert.Equal(t, 148.0, *quote.PreviousClose)
	assert.Nil(t, quote.PreMarketPrice)
	assert.Nil(t, quote.PreMarketChange)
	assert.Nil(t, quote.PostMarketPrice)
	assert.Nil(t, quote.PostMarketChange)
	assert.Equal(t, "REGULAR", *quote.MarketState)
}

func TestGetQuotePreviousCloseFallback(t *testing.T) {
	chartPrev, pre, preChange := 9.5, 10.1, 0.6
	yahoo := &fakeYahoo{charts: map[string]*dto.YahooChartResponse{
		"GEVO": {Chart: dto.YahooChart{Result: []dto.YahooChartResult{{Meta: dto.YahooChartMeta{
			Symbol:             "GEVO",
			ChartPreviousClose: &chartPrev,
			PreMarketPrice:     &pre,
			PreMarketChange:    &preChange,
		}}}}},
	}}
	svc := NewQuoteService(yahoo, logger.NewNop())

	quote, err := svc.GetQuote(context.Background(), "GEVO")
	require.NoError(t, err)
	assert.Equal(t, 9.5, *quote.PreviousClose)
	assert.Equal(t, 10.1, *quote.PreMarketPrice)
	assert.Equal(t, 0.6, *quote.PreMarketChange)
	assert.Nil(t, quote.RegularMarketPrice)
	assert.Nil(t, quote.MarketState)
}

func TestGetQuoteErrors(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")
	yahoo := &fakeYahoo{errs: map[string]error{
		"LIMIT": &repository.StatusError{Op: "yahoo chart", StatusCode: http.StatusTooManyRequests},
		"DOWN":  transportErr,
	}}
	svc := NewQuoteService(yahoo, logger.NewNop())
	ctx := context.Background()

	_, err := svc.GetQuote(ctx, "  ")
	assert.ErrorIs(t, err, ErrTickerRequired)
	assert.Empty(t, yahoo.calls)

	_, err = svc.GetQuote(ctx, "LIMIT")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Equal(t, "Yahoo API error: 429", upstream.Error())

	_, err = svc.GetQuote(ctx, "DOWN")
	assert.ErrorIs(t, err, transportErr)

	_, err = svc.GetQuote(ctx, "EMPTY")
	assert.ErrorIs(t, err, ErrNoData)
}
