package market

import (
	"github.com/shopspring/decimal"

	"github.com/bwhitfield/marketlens/internal/models"
)

// round2 rounds to 2 decimal places, half up. Float arithmetic feeds the
// summary, but the rounding step itself is exact decimal math so .005
// boundaries resolve deterministically.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Summarize derives the summary statistics snapshot from a time-series.
// The series must be non-empty: opening and closing prices have no meaning
// otherwise.
func Summarize(series *models.TimeSeries) (*models.StatsSummary, error) {
	if series.Empty() {
		return nil, models.NewToolError(models.ErrInsufficientData,
			"no trading data for %s in the requested range", series.Ticker)
	}

	points := series.Points
	first := points[0]
	last := points[len(points)-1]

	high := first.High
	low := first.Low
	var closeSum decimal.Decimal
	var volumeSum int64
	for _, p := range points {
		if p.High > high {
			high = p.High
		}
		if p.Low < low {
			low = p.Low
		}
		closeSum = closeSum.Add(decimal.NewFromFloat(p.Close))
		volumeSum += p.Volume
	}

	n := int64(len(points))
	opening := round2(first.Open)
	closing := round2(last.Close)

	// Ratio and difference in exact decimal arithmetic; a float division here
	// would smear the .005 boundaries the half-up rounding is meant to pin.
	firstOpen := decimal.NewFromFloat(first.Open)
	lastClose := decimal.NewFromFloat(last.Close)
	pctChange := 0.0
	if !firstOpen.IsZero() {
		pctChange, _ = lastClose.Div(firstOpen).
			Sub(decimal.NewFromInt(1)).
			Mul(decimal.NewFromInt(100)).
			Round(2).Float64()
	}
	priceChange, _ := lastClose.Sub(firstOpen).Round(2).Float64()

	avgPrice, _ := closeSum.Div(decimal.NewFromInt(n)).Round(2).Float64()
	// Arithmetic mean of volume, rounded to the nearest integer.
	avgVolume := decimal.NewFromInt(volumeSum).Div(decimal.NewFromInt(n)).Round(0).IntPart()

	return &models.StatsSummary{
		Ticker:           series.Ticker,
		OpeningPrice:     opening,
		ClosingPrice:     closing,
		High:             round2(high),
		Low:              round2(low),
		PctChange:        pctChange,
		PriceChange:      priceChange,
		AveragePrice:     avgPrice,
		AvgVolume:        avgVolume,
		TradingDaysCount: len(points),
	}, nil
}
