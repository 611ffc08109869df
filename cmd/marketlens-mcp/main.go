package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bwhitfield/marketlens/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to marketlens.toml (default: MARKETLENS_CONFIG, then binary dir)")
	flag.Parse()

	a, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	a.Logger.Info().Msg("Serving MCP over stdio")

	// ServeStdio blocks until stdin closes or a termination signal arrives.
	if err := server.ServeStdio(a.MCPServer); err != nil {
		a.Logger.Error().Err(err).Msg("MCP server terminated")
		os.Exit(1)
	}
}
