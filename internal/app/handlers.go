package app

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bwhitfield/marketlens/internal/common"
	"github.com/bwhitfield/marketlens/internal/interfaces"
	"github.com/bwhitfield/marketlens/internal/models"
	"github.com/bwhitfield/marketlens/internal/services/market"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]string{
			"name":    "marketlens",
			"version": common.GetFullVersion(),
			"status":  "ok",
		}), nil
	}
}

// stockDataResult is the get_stock_data response contract.
type stockDataResult struct {
	Ticker           string      `json:"ticker"`
	Name             string      `json:"name"`
	Range            rangeResult `json:"range"`
	OpeningPrice     float64     `json:"opening_price"`
	ClosingPrice     float64     `json:"closing_price"`
	PctChange        float64     `json:"pct_change"`
	High             float64     `json:"high"`
	Low              float64     `json:"low"`
	AvgVolume        int64       `json:"avg_volume"`
	TradingDaysCount int         `json:"trading_days_count"`
	PriceChange      float64     `json:"price_change"`
	AveragePrice     float64     `json:"average_price"`
}

type rangeResult struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func newRangeResult(r models.DateRange) rangeResult {
	return rangeResult{
		Start: r.Start.Format("2006-01-02"),
		End:   r.End.Format("2006-01-02"),
	}
}

// handleGetStockData implements the get_stock_data tool
func handleGetStockData(svc interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		inv := invocationLogger(logger, "get_stock_data")

		rawTicker, err := request.RequireString("ticker")
		if err != nil {
			return errorResult(models.ErrInvalidTicker, "ticker parameter is required"), nil
		}
		name, err := request.RequireString("name")
		if err != nil || name == "" {
			name = rawTicker
		}

		ticker, r, terr := validateCall(request, rawTicker)
		if terr != nil {
			inv.Debug().Str("ticker", rawTicker).Str("kind", string(models.KindOf(terr))).Msg("Validation failed")
			return errorResultFrom(terr), nil
		}

		inv.Debug().Str("ticker", ticker).Msg("Fetching stats")
		stats, err := svc.GetStats(ctx, ticker, r)
		if err != nil {
			inv.Error().Err(err).Str("ticker", ticker).Msg("Stats failed")
			return errorResultFrom(err), nil
		}

		return jsonResult(stockDataResult{
			Ticker:           ticker,
			Name:             name,
			Range:            newRangeResult(r),
			OpeningPrice:     stats.OpeningPrice,
			ClosingPrice:     stats.ClosingPrice,
			PctChange:        stats.PctChange,
			High:             stats.High,
			Low:              stats.Low,
			AvgVolume:        stats.AvgVolume,
			TradingDaysCount: stats.TradingDaysCount,
			PriceChange:      stats.PriceChange,
			AveragePrice:     stats.AveragePrice,
		}), nil
	}
}

// handlePlotStockPrice implements the plot_stock_price tool
func handlePlotStockPrice(svc interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		inv := invocationLogger(logger, "plot_stock_price")

		rawTicker, err := request.RequireString("ticker")
		if err != nil {
			return errorResult(models.ErrInvalidTicker, "ticker parameter is required"), nil
		}

		ticker, r, terr := validateCall(request, rawTicker)
		if terr != nil {
			inv.Debug().Str("ticker", rawTicker).Str("kind", string(models.KindOf(terr))).Msg("Validation failed")
			return errorResultFrom(terr), nil
		}
		title := request.GetString("name", ticker)

		inv.Debug().Str("ticker", ticker).Msg("Rendering chart")
		pngBytes, err := svc.RenderChart(ctx, ticker, title, r)
		if err != nil {
			inv.Error().Err(err).Str("ticker", ticker).Msg("Chart render failed")
			return errorResultFrom(err), nil
		}

		return jsonResult(map[string]string{
			"image_base64": market.EncodeImage(pngBytes),
			"mime_type":    "image/png",
		}), nil
	}
}

// handleCompareStocks implements the compare_stocks tool
func handleCompareStocks(svc interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		inv := invocationLogger(logger, "compare_stocks")

		raw1, err := request.RequireString("ticker1")
		if err != nil {
			return errorResult(models.ErrInvalidTicker, "ticker1 parameter is required"), nil
		}
		raw2, err := request.RequireString("ticker2")
		if err != nil {
			return errorResult(models.ErrInvalidTicker, "ticker2 parameter is required"), nil
		}

		ticker1, vErr := models.ValidateTicker(raw1)
		if vErr != nil {
			return errorResultFrom(vErr), nil
		}
		ticker2, vErr := models.ValidateTicker(raw2)
		if vErr != nil {
			return errorResultFrom(vErr), nil
		}
		r, vErr := models.ParseDateRange(request.GetString("start_date", ""), request.GetString("end_date", ""))
		if vErr != nil {
			return errorResultFrom(vErr), nil
		}

		inv.Debug().Str("ticker1", ticker1).Str("ticker2", ticker2).Msg("Comparing")
		result, err := svc.Compare(ctx, ticker1, ticker2, r)
		if err != nil {
			inv.Error().Err(err).Msg("Comparison failed")
			return errorResultFrom(err), nil
		}

		return jsonResult(result), nil
	}
}

// handleGetQuote implements the get_quote tool
func handleGetQuote(svc interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		inv := invocationLogger(logger, "get_quote")

		rawTicker, err := request.RequireString("ticker")
		if err != nil {
			return errorResult(models.ErrInvalidTicker, "ticker parameter is required"), nil
		}
		ticker, vErr := models.ValidateTicker(rawTicker)
		if vErr != nil {
			return errorResultFrom(vErr), nil
		}

		quote, err := svc.GetQuote(ctx, ticker)
		if err != nil {
			inv.Error().Err(err).Str("ticker", ticker).Msg("Quote failed")
			return errorResultFrom(err), nil
		}

		return jsonResult(quote), nil
	}
}

// validateCall runs the shared ticker + date range validation for single
// ticker tools. Validation happens before any network call and never consumes
// rate-limit budget.
func validateCall(request mcp.CallToolRequest, rawTicker string) (string, models.DateRange, error) {
	ticker, err := models.ValidateTicker(rawTicker)
	if err != nil {
		return "", models.DateRange{}, err
	}
	r, err := models.ParseDateRange(request.GetString("start_date", ""), request.GetString("end_date", ""))
	if err != nil {
		return "", models.DateRange{}, err
	}
	return ticker, r, nil
}

// invocationLogger tags log output with a short per-invocation id.
func invocationLogger(logger *common.Logger, tool string) *common.Logger {
	id := uuid.NewString()[:8]
	l := logger.With().Str("tool", tool).Str("invocation", id).Logger()
	return &common.Logger{Logger: l}
}

// Helper functions

func jsonResult(v interface{}) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return toolErrorResult(models.NewToolError(models.ErrRenderFailure,
			"failed to encode result: %v", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(data)),
		},
	}
}

func errorResult(kind models.ErrorKind, message string) *mcp.CallToolResult {
	return toolErrorResult(&models.ToolError{Kind: kind, Message: message})
}

// errorResultFrom converts any pipeline error into the structured error
// payload, preserving its kind.
func errorResultFrom(err error) *mcp.CallToolResult {
	var te *models.ToolError
	if !errors.As(err, &te) {
		te = &models.ToolError{Kind: models.KindOf(err), Message: err.Error()}
	}
	return toolErrorResult(te)
}

func toolErrorResult(te *models.ToolError) *mcp.CallToolResult {
	data, _ := json.Marshal(te)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(data)),
		},
		IsError: true,
	}
}
