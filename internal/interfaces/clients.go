// Package interfaces defines service contracts for MarketLens
package interfaces

import (
	"context"

	"github.com/bwhitfield/marketlens/internal/models"
)

// MarketDataClient provides access to the external market-data provider.
// Implementations own the outbound rate gate: every call waits for the
// provider's endpoint-class interval before issuing a request.
type MarketDataClient interface {
	// GetDailyBars retrieves daily OHLCV bars for a ticker over an inclusive
	// date range, ascending by date. A valid ticker with no trading activity
	// in range yields an empty slice, not an error.
	GetDailyBars(ctx context.Context, ticker string, r models.DateRange) ([]models.PricePoint, error)

	// GetQuote retrieves the latest price snapshot for a ticker.
	GetQuote(ctx context.Context, ticker string) (*models.Quote, error)
}
