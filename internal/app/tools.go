package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the MarketLens MCP server version and status. Use this to verify connectivity."),
	)
}

// createGetStockDataTool returns the get_stock_data tool definition
func createGetStockDataTool() mcp.Tool {
	return mcp.NewTool("get_stock_data",
		mcp.WithDescription("Fetch historical stock price data and summary statistics for a ticker over a date range."),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker symbol (e.g., 'AAPL', 'GOOGL')"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("A descriptive name for the stock/analysis"),
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Start date in mmddyyyy format (e.g., '01012024')"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("End date in mmddyyyy format (e.g., '01312024')"),
		),
	)
}

// createPlotStockPriceTool returns the plot_stock_price tool definition
func createPlotStockPriceTool() mcp.Tool {
	return mcp.NewTool("plot_stock_price",
		mcp.WithDescription("Render a two-panel price and volume chart for a ticker over a date range. Returns a base64-encoded PNG."),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker symbol (e.g., 'AAPL')"),
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Start date in mmddyyyy format"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("End date in mmddyyyy format"),
		),
		mcp.WithString("name",
			mcp.Description("Display name used in the chart title (default: the ticker)"),
		),
	)
}

// createCompareStocksTool returns the compare_stocks tool definition
func createCompareStocksTool() mcp.Tool {
	return mcp.NewTool("compare_stocks",
		mcp.WithDescription("Compare the performance of two tickers over the same date range."),
		mcp.WithString("ticker1",
			mcp.Required(),
			mcp.Description("First stock ticker symbol"),
		),
		mcp.WithString("ticker2",
			mcp.Required(),
			mcp.Description("Second stock ticker symbol"),
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Start date in mmddyyyy format"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("End date in mmddyyyy format"),
		),
	)
}

// createGetQuoteTool returns the get_quote tool definition
func createGetQuoteTool() mcp.Tool {
	return mcp.NewTool("get_quote",
		mcp.WithDescription("Get the latest close price and day change for a ticker."),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Stock ticker symbol (e.g., 'AAPL')"),
		),
	)
}
