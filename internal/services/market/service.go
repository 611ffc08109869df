// Package market implements the market data pipeline: rate-limited fetching,
// summary statistics, chart rendering, and cross-ticker comparison.
package market

import (
	"context"
	"encoding/base64"

	"github.com/bwhitfield/marketlens/internal/common"
	"github.com/bwhitfield/marketlens/internal/interfaces"
	"github.com/bwhitfield/marketlens/internal/models"
	"github.com/bwhitfield/marketlens/internal/storage/seriescache"
)

// Service implements interfaces.MarketService on top of a provider client and
// the TTL series cache. Series and summaries are created fresh per request;
// only the cache and the client's rate gate are shared.
type Service struct {
	client interfaces.MarketDataClient
	cache  *seriescache.Cache
	logger *common.Logger
}

// NewService creates a market service.
func NewService(client interfaces.MarketDataClient, cache *seriescache.Cache, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// GetSeries returns the time-series for a ticker over a range. The cache is
// consulted first; on a miss the provider is called once, with no retries,
// and the result cached. Provider transport failures surface as
// provider_unavailable.
func (s *Service) GetSeries(ctx context.Context, ticker string, r models.DateRange) (*models.TimeSeries, error) {
	key := r.CacheKey(ticker)
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("ticker", ticker).Msg("Series cache hit")
		return cached, nil
	}

	points, err := s.client.GetDailyBars(ctx, ticker, r)
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", ticker).Msg("Provider fetch failed")
		return nil, models.NewToolError(models.ErrProviderUnavailable,
			"market data provider unavailable: %v", err)
	}

	series := &models.TimeSeries{
		Ticker: ticker,
		Range:  r,
		Points: points,
	}
	s.cache.Put(key, series)
	return series, nil
}

// GetStats fetches a series and derives its summary statistics. An empty
// series yields insufficient_data.
func (s *Service) GetStats(ctx context.Context, ticker string, r models.DateRange) (*models.StatsSummary, error) {
	series, err := s.GetSeries(ctx, ticker, r)
	if err != nil {
		return nil, err
	}
	// Cancellation checkpoint between fetch and compute.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Summarize(series)
}

// RenderChart fetches a series and renders it as base64-encoded PNG text.
// The empty-series check happens before any rendering work.
func (s *Service) RenderChart(ctx context.Context, ticker, title string, r models.DateRange) ([]byte, error) {
	series, err := s.GetSeries(ctx, ticker, r)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return RenderChart(series, title)
}

// Compare runs the full fetch+stats path for both tickers over the same
// window. The first failing leg aborts the comparison; a one-sided result is
// never returned. Ties report both tickers as equal.
func (s *Service) Compare(ctx context.Context, ticker1, ticker2 string, r models.DateRange) (*models.ComparisonResult, error) {
	stats1, err := s.GetStats(ctx, ticker1, r)
	if err != nil {
		return nil, err
	}
	stats2, err := s.GetStats(ctx, ticker2, r)
	if err != nil {
		return nil, err
	}

	result := &models.ComparisonResult{
		Ticker1Stats:   *stats1,
		Ticker2Stats:   *stats2,
		Outperformance: round2(stats1.PctChange - stats2.PctChange),
	}
	switch {
	case stats1.PctChange > stats2.PctChange:
		result.BetterTicker = ticker1
	case stats2.PctChange > stats1.PctChange:
		result.BetterTicker = ticker2
	default:
		result.Tie = true
	}
	return result, nil
}

// GetQuote returns the latest price snapshot for a ticker.
func (s *Service) GetQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	quote, err := s.client.GetQuote(ctx, ticker)
	if err != nil {
		s.logger.Error().Err(err).Str("ticker", ticker).Msg("Quote fetch failed")
		return nil, models.NewToolError(models.ErrProviderUnavailable,
			"market data provider unavailable: %v", err)
	}
	if quote == nil {
		return nil, models.NewToolError(models.ErrInsufficientData,
			"no quote data for %s", ticker)
	}
	return quote, nil
}

// EncodeImage encodes raw image bytes as a text-safe base64 payload.
func EncodeImage(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Ensure Service implements MarketService
var _ interfaces.MarketService = (*Service)(nil)
