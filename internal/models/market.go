// Package models defines data structures for MarketLens
package models

import (
	"time"
)

// PricePoint represents a single trading day's price data
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// DateRange is an inclusive start/end pair of calendar dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CacheKey returns the cache key for a ticker over this range.
func (r DateRange) CacheKey(ticker string) string {
	return ticker + ":" + r.Start.Format("20060102") + "-" + r.End.Format("20060102")
}

// TimeSeries is an ordered sequence of price points for one ticker over one
// date range, ascending by date with no duplicate dates. An empty series is a
// valid state (no trading activity in range), not an error by itself.
type TimeSeries struct {
	Ticker string       `json:"ticker"`
	Range  DateRange    `json:"range"`
	Points []PricePoint `json:"points"`
}

// Empty reports whether the series holds no trading data.
func (s *TimeSeries) Empty() bool {
	return s == nil || len(s.Points) == 0
}

// StatsSummary is an immutable snapshot of summary statistics derived from a
// time-series. Computed once; never mutated in place.
type StatsSummary struct {
	Ticker           string  `json:"ticker"`
	OpeningPrice     float64 `json:"opening_price"`
	ClosingPrice     float64 `json:"closing_price"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	PctChange        float64 `json:"pct_change"`
	PriceChange      float64 `json:"price_change"`
	AveragePrice     float64 `json:"average_price"`
	AvgVolume        int64   `json:"avg_volume"`
	TradingDaysCount int     `json:"trading_days_count"`
}

// ComparisonResult holds the outcome of comparing two tickers over the same
// window. On a tie both tickers are reported as equal rather than promoting
// one arbitrarily.
type ComparisonResult struct {
	Ticker1Stats   StatsSummary `json:"ticker1_stats"`
	Ticker2Stats   StatsSummary `json:"ticker2_stats"`
	Outperformance float64      `json:"outperformance"`
	BetterTicker   string       `json:"better_ticker"`
	Tie            bool         `json:"tie"`
}

// Quote holds a latest-price snapshot for a ticker
type Quote struct {
	Ticker        string    `json:"ticker"`
	Close         float64   `json:"close"`          // current/last price
	PreviousClose float64   `json:"previous_close"` // previous day's close
	Change        float64   `json:"change"`         // absolute change from previous close
	ChangePct     float64   `json:"change_pct"`     // percentage change from previous close
	Volume        int64     `json:"volume"`
	Timestamp     time.Time `json:"timestamp"`
}

// StockInfo is static descriptive metadata for a ticker
type StockInfo struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Sector   string `json:"sector,omitempty"`
}
