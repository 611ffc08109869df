package app

import (
	"strings"

	"github.com/bwhitfield/marketlens/internal/models"
)

// stockCatalog is the built-in static metadata served by the
// stock-info://{ticker} resource. Descriptive only; no prices, no network.
var stockCatalog = map[string]models.StockInfo{
	"AAPL":  {Ticker: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Sector: "Technology"},
	"MSFT":  {Ticker: "MSFT", Name: "Microsoft Corporation", Exchange: "NASDAQ", Sector: "Technology"},
	"GOOGL": {Ticker: "GOOGL", Name: "Alphabet Inc.", Exchange: "NASDAQ", Sector: "Communication Services"},
	"AMZN":  {Ticker: "AMZN", Name: "Amazon.com, Inc.", Exchange: "NASDAQ", Sector: "Consumer Cyclical"},
	"META":  {Ticker: "META", Name: "Meta Platforms, Inc.", Exchange: "NASDAQ", Sector: "Communication Services"},
	"NVDA":  {Ticker: "NVDA", Name: "NVIDIA Corporation", Exchange: "NASDAQ", Sector: "Technology"},
	"TSLA":  {Ticker: "TSLA", Name: "Tesla, Inc.", Exchange: "NASDAQ", Sector: "Consumer Cyclical"},
	"BRKB":  {Ticker: "BRKB", Name: "Berkshire Hathaway Inc.", Exchange: "NYSE", Sector: "Financial Services"},
	"JPM":   {Ticker: "JPM", Name: "JPMorgan Chase & Co.", Exchange: "NYSE", Sector: "Financial Services"},
	"V":     {Ticker: "V", Name: "Visa Inc.", Exchange: "NYSE", Sector: "Financial Services"},
	"JNJ":   {Ticker: "JNJ", Name: "Johnson & Johnson", Exchange: "NYSE", Sector: "Healthcare"},
	"WMT":   {Ticker: "WMT", Name: "Walmart Inc.", Exchange: "NYSE", Sector: "Consumer Defensive"},
	"XOM":   {Ticker: "XOM", Name: "Exxon Mobil Corporation", Exchange: "NYSE", Sector: "Energy"},
	"KO":    {Ticker: "KO", Name: "The Coca-Cola Company", Exchange: "NYSE", Sector: "Consumer Defensive"},
	"DIS":   {Ticker: "DIS", Name: "The Walt Disney Company", Exchange: "NYSE", Sector: "Communication Services"},
	"SPY":   {Ticker: "SPY", Name: "SPDR S&P 500 ETF Trust", Exchange: "NYSEARCA", Sector: "Index Fund"},
	"QQQ":   {Ticker: "QQQ", Name: "Invesco QQQ Trust", Exchange: "NASDAQ", Sector: "Index Fund"},
}

// lookupStockInfo returns catalog metadata for a ticker.
func lookupStockInfo(ticker string) (models.StockInfo, bool) {
	info, ok := stockCatalog[strings.ToUpper(ticker)]
	return info, ok
}
