package interfaces

import (
	"context"

	"github.com/bwhitfield/marketlens/internal/models"
)

// MarketService is the tool-facing market data pipeline: fetch, summarize,
// render, compare. All inputs are assumed already validated.
type MarketService interface {
	// GetSeries returns the time-series for a ticker over a range, consulting
	// the TTL cache before the provider.
	GetSeries(ctx context.Context, ticker string, r models.DateRange) (*models.TimeSeries, error)

	// GetStats fetches a series and derives its summary statistics.
	GetStats(ctx context.Context, ticker string, r models.DateRange) (*models.StatsSummary, error)

	// RenderChart fetches a series and renders the two-panel price/volume PNG.
	// title is the display name used in the chart heading.
	RenderChart(ctx context.Context, ticker, title string, r models.DateRange) ([]byte, error)

	// Compare runs the fetch+stats path for both tickers over the same window
	// and derives the relative-performance summary. The first failing leg
	// aborts the comparison; partial results are never returned.
	Compare(ctx context.Context, ticker1, ticker2 string, r models.DateRange) (*models.ComparisonResult, error)

	// GetQuote returns the latest price snapshot for a ticker.
	GetQuote(ctx context.Context, ticker string) (*models.Quote, error)
}
