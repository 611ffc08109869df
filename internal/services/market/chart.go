package market

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bwhitfield/marketlens/internal/models"
)

const (
	chartWidth        = 900
	pricePanelHeight  = 400
	volumePanelHeight = 200
)

// RenderChart renders a two-panel PNG: close and open price lines on top,
// volume bars beneath, sharing the same date axis. Rendering is deterministic
// for identical input. Returns raw PNG bytes.
func RenderChart(series *models.TimeSeries, title string) ([]byte, error) {
	if series.Empty() {
		return nil, models.NewToolError(models.ErrInsufficientData,
			"no trading data for %s in the requested range", series.Ticker)
	}
	if title == "" {
		title = series.Ticker
	}

	pricePNG, err := renderPricePanel(series, title)
	if err != nil {
		return nil, models.NewToolError(models.ErrRenderFailure, "price panel: %v", err)
	}
	volumePNG, err := renderVolumePanel(series)
	if err != nil {
		return nil, models.NewToolError(models.ErrRenderFailure, "volume panel: %v", err)
	}

	combined, err := stackPanels(pricePNG, volumePNG)
	if err != nil {
		return nil, models.NewToolError(models.ErrRenderFailure, "compose panels: %v", err)
	}
	return combined, nil
}

func renderPricePanel(series *models.TimeSeries, title string) ([]byte, error) {
	points := series.Points
	if len(points) == 1 {
		// A single point has a zero-width x-range, which go-chart rejects.
		// Repeat it one day out so the line renders as a flat segment.
		dup := points[0]
		dup.Date = dup.Date.Add(24 * time.Hour)
		points = append([]models.PricePoint{points[0]}, dup)
	}
	xValues := make([]time.Time, len(points))
	closeY := make([]float64, len(points))
	openY := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Date
		closeY[i] = p.Close
		openY[i] = p.Open
	}

	closeSeries := chart.TimeSeries{
		Name: "Close",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: closeY,
	}
	openSeries := chart.TimeSeries{
		Name: "Open",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("16a34a"), // green-600
			StrokeWidth: 1.5,
		},
		XValues: xValues,
		YValues: openY,
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("%s (%s) %s to %s", title, series.Ticker,
			series.Range.Start.Format("2006-01-02"), series.Range.End.Format("2006-01-02")),
		Width:  chartWidth,
		Height: pricePanelHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			closeSeries,
			openSeries,
		},
	}
	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderVolumePanel(series *models.TimeSeries) ([]byte, error) {
	points := series.Points

	// Label roughly six bars across the axis; more becomes unreadable.
	labelEvery := len(points) / 6
	if labelEvery < 1 {
		labelEvery = 1
	}

	values := make([]chart.Value, len(points))
	for i, p := range points {
		label := ""
		if i%labelEvery == 0 {
			label = p.Date.Format("Jan 02")
		}
		values[i] = chart.Value{
			Value: float64(p.Volume),
			Label: label,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("f59e0b"), // amber-500
				StrokeColor: drawing.ColorFromHex("f59e0b"),
			},
		}
	}

	barWidth := (chartWidth - 120) / len(points)
	if barWidth < 1 {
		barWidth = 1
	}

	graph := chart.BarChart{
		Title:    "Trading Volume",
		Width:    chartWidth,
		Height:   volumePanelHeight,
		BarWidth: barWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					if f >= 1e6 {
						return fmt.Sprintf("%.1fM", f/1e6)
					}
					return fmt.Sprintf("%.0fk", f/1e3)
				}
				return ""
			},
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// stackPanels composites the two rendered panels vertically into one PNG.
func stackPanels(topPNG, bottomPNG []byte) ([]byte, error) {
	top, err := png.Decode(bytes.NewReader(topPNG))
	if err != nil {
		return nil, err
	}
	bottom, err := png.Decode(bytes.NewReader(bottomPNG))
	if err != nil {
		return nil, err
	}

	tb := top.Bounds()
	bb := bottom.Bounds()
	width := tb.Dx()
	if bb.Dx() > width {
		width = bb.Dx()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, tb.Dy()+bb.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, tb.Dx(), tb.Dy()), top, tb.Min, draw.Src)
	draw.Draw(canvas, image.Rect(0, tb.Dy(), bb.Dx(), tb.Dy()+bb.Dy()), bottom, bb.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
