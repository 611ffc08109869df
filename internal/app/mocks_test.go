package app

import (
	"context"
	"fmt"

	"github.com/bwhitfield/marketlens/internal/common"
	"github.com/bwhitfield/marketlens/internal/models"
)

// --- mockMarketService ---

type mockMarketService struct {
	getSeriesFn   func(ctx context.Context, ticker string, r models.DateRange) (*models.TimeSeries, error)
	getStatsFn    func(ctx context.Context, ticker string, r models.DateRange) (*models.StatsSummary, error)
	renderChartFn func(ctx context.Context, ticker, title string, r models.DateRange) ([]byte, error)
	compareFn     func(ctx context.Context, ticker1, ticker2 string, r models.DateRange) (*models.ComparisonResult, error)
	getQuoteFn    func(ctx context.Context, ticker string) (*models.Quote, error)
}

func (m *mockMarketService) GetSeries(ctx context.Context, ticker string, r models.DateRange) (*models.TimeSeries, error) {
	if m.getSeriesFn != nil {
		return m.getSeriesFn(ctx, ticker, r)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockMarketService) GetStats(ctx context.Context, ticker string, r models.DateRange) (*models.StatsSummary, error) {
	if m.getStatsFn != nil {
		return m.getStatsFn(ctx, ticker, r)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockMarketService) RenderChart(ctx context.Context, ticker, title string, r models.DateRange) ([]byte, error) {
	if m.renderChartFn != nil {
		return m.renderChartFn(ctx, ticker, title, r)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockMarketService) Compare(ctx context.Context, ticker1, ticker2 string, r models.DateRange) (*models.ComparisonResult, error) {
	if m.compareFn != nil {
		return m.compareFn(ctx, ticker1, ticker2, r)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockMarketService) GetQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	if m.getQuoteFn != nil {
		return m.getQuoteFn(ctx, ticker)
	}
	return nil, fmt.Errorf("not implemented")
}

func testLogger() *common.Logger {
	return common.NewSilentLogger()
}

func testStats(ticker string, pctChange float64) *models.StatsSummary {
	return &models.StatsSummary{
		Ticker:           ticker,
		OpeningPrice:     100.00,
		ClosingPrice:     100 + pctChange,
		High:             112.00,
		Low:              98.00,
		PctChange:        pctChange,
		PriceChange:      pctChange,
		AveragePrice:     105.00,
		AvgVolume:        1_500_000,
		TradingDaysCount: 21,
	}
}
