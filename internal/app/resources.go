package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bwhitfield/marketlens/internal/common"
	"github.com/bwhitfield/marketlens/internal/models"
)

const stockInfoScheme = "stock-info://"

// createStockInfoResource returns the stock-info://{ticker} resource template
func createStockInfoResource() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		stockInfoScheme+"{ticker}",
		"Stock information",
		mcp.WithTemplateDescription("Static descriptive metadata for a ticker: name, exchange, sector. No time-series data, no side effects."),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// handleStockInfoResource serves stock-info://{ticker} reads from the
// built-in catalog. Never touches the network.
func handleStockInfoResource(logger *common.Logger) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		raw := strings.TrimPrefix(request.Params.URI, stockInfoScheme)

		ticker, err := models.ValidateTicker(raw)
		if err != nil {
			return nil, err
		}

		info, ok := lookupStockInfo(ticker)
		if !ok {
			return nil, fmt.Errorf("no metadata for ticker %s", ticker)
		}

		data, err := json.Marshal(info)
		if err != nil {
			return nil, fmt.Errorf("failed to encode stock info: %w", err)
		}

		logger.Debug().Str("ticker", ticker).Msg("Served stock info resource")
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
