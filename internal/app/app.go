// Package app wires configuration, the provider client, the series cache,
// the market service, and the MCP server together.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bwhitfield/marketlens/internal/clients/yahoo"
	"github.com/bwhitfield/marketlens/internal/common"
	"github.com/bwhitfield/marketlens/internal/interfaces"
	"github.com/bwhitfield/marketlens/internal/services/market"
	"github.com/bwhitfield/marketlens/internal/storage/seriescache"
)

// App holds the initialized client, service, and MCP server.
type App struct {
	Config        *common.Config
	Logger        *common.Logger
	Client        interfaces.MarketDataClient
	Cache         *seriescache.Cache
	MarketService interfaces.MarketService
	MCPServer     *server.MCPServer
	StartupTime   time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes the client, cache, service, and MCP server.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Check provided path, MARKETLENS_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("MARKETLENS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "marketlens.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/marketlens.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	client := yahoo.NewClient(
		yahoo.WithBaseURL(config.Provider.BaseURL),
		yahoo.WithTimeout(config.Provider.GetTimeout()),
		yahoo.WithMinInterval(config.Provider.GetMinInterval()),
		yahoo.WithLogger(logger),
	)

	cache := seriescache.New(config.Cache.GetTTL())
	marketService := market.NewService(client, cache, logger)

	mcpServer := server.NewMCPServer(
		"marketlens",
		common.GetVersion(),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	)

	a := &App{
		Config:        config,
		Logger:        logger,
		Client:        client,
		Cache:         cache,
		MarketService: marketService,
		MCPServer:     mcpServer,
		StartupTime:   startupStart,
	}

	a.registerTools()
	a.registerResources()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGetStockDataTool(), handleGetStockData(a.MarketService, logger))
	s.AddTool(createPlotStockPriceTool(), handlePlotStockPrice(a.MarketService, logger))
	s.AddTool(createCompareStocksTool(), handleCompareStocks(a.MarketService, logger))
	s.AddTool(createGetQuoteTool(), handleGetQuote(a.MarketService, logger))
}

// registerResources registers all MCP resources on the App's MCPServer.
func (a *App) registerResources() {
	a.MCPServer.AddResourceTemplate(createStockInfoResource(), handleStockInfoResource(a.Logger))
}
