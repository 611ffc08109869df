package market

import (
	"bytes"
	"testing"

	"github.com/bwhitfield/marketlens/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderChart_Empty(t *testing.T) {
	_, err := RenderChart(testSeries(), "Apple")
	if err == nil {
		t.Fatal("Expected error for empty series")
	}
	if models.KindOf(err) != models.ErrInsufficientData {
		t.Errorf("kind = %s, want %s", models.KindOf(err), models.ErrInsufficientData)
	}
}

func TestRenderChart_ProducesPNG(t *testing.T) {
	series := testSeries(
		models.PricePoint{Date: day(2), Open: 100, High: 104, Low: 99, Close: 103, Volume: 2_500_000},
		models.PricePoint{Date: day(3), Open: 103, High: 106, Low: 102, Close: 105, Volume: 1_800_000},
		models.PricePoint{Date: day(4), Open: 105, High: 105, Low: 101, Close: 102, Volume: 3_100_000},
	)

	data, err := RenderChart(series, "Apple")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("Output should be a PNG")
	}
}

func TestRenderChart_SinglePoint(t *testing.T) {
	series := testSeries(
		models.PricePoint{Date: day(2), Open: 50, High: 51, Low: 49, Close: 50.5, Volume: 1000},
	)
	data, err := RenderChart(series, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("Output should be a PNG")
	}
}

func TestRenderChart_Deterministic(t *testing.T) {
	series := testSeries(
		models.PricePoint{Date: day(2), Open: 100, High: 104, Low: 99, Close: 103, Volume: 2_500_000},
		models.PricePoint{Date: day(3), Open: 103, High: 106, Low: 102, Close: 105, Volume: 1_800_000},
	)

	first, err := RenderChart(series, "Apple")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := RenderChart(series, "Apple")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Identical input should produce identical pixels")
	}
}
