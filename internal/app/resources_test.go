package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bwhitfield/marketlens/internal/models"
)

func readStockInfo(t *testing.T, uri string) ([]mcp.ResourceContents, error) {
	t.Helper()
	handler := handleStockInfoResource(testLogger())
	request := mcp.ReadResourceRequest{}
	request.Params.URI = uri
	return handler(context.Background(), request)
}

func TestStockInfoResource_KnownTicker(t *testing.T) {
	contents, err := readStockInfo(t, "stock-info://AAPL")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("Expected 1 content block, got %d", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("Contents is %T, expected mcp.TextResourceContents", contents[0])
	}
	if text.MIMEType != "application/json" {
		t.Errorf("Expected MIME application/json, got %q", text.MIMEType)
	}
	if text.URI != "stock-info://AAPL" {
		t.Errorf("Expected echoed URI, got %q", text.URI)
	}

	var info models.StockInfo
	if err := json.Unmarshal([]byte(text.Text), &info); err != nil {
		t.Fatalf("Payload is not valid JSON: %v", err)
	}
	if info.Ticker != "AAPL" {
		t.Errorf("Expected ticker AAPL, got %q", info.Ticker)
	}
	if info.Name == "" || info.Exchange == "" {
		t.Errorf("Expected populated metadata, got %+v", info)
	}
}

func TestStockInfoResource_NormalizesTicker(t *testing.T) {
	contents, err := readStockInfo(t, "stock-info://msft")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var info models.StockInfo
	text := contents[0].(mcp.TextResourceContents)
	if err := json.Unmarshal([]byte(text.Text), &info); err != nil {
		t.Fatalf("Payload is not valid JSON: %v", err)
	}
	if info.Ticker != "MSFT" {
		t.Errorf("Expected normalized ticker MSFT, got %q", info.Ticker)
	}
}

func TestStockInfoResource_UnknownTicker(t *testing.T) {
	_, err := readStockInfo(t, "stock-info://ZZZZZ")
	if err == nil {
		t.Fatal("Expected error for unknown ticker")
	}
}

func TestStockInfoResource_InvalidTicker(t *testing.T) {
	_, err := readStockInfo(t, "stock-info://NOT-A-TICKER")
	if err == nil {
		t.Fatal("Expected error for invalid ticker")
	}
	if models.KindOf(err) != models.ErrInvalidTicker {
		t.Errorf("Expected kind %s, got %s", models.ErrInvalidTicker, models.KindOf(err))
	}
}
