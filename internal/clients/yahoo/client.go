// Package yahoo provides a client for the Yahoo Finance chart API
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/bwhitfield/marketlens/internal/common"
	"github.com/bwhitfield/marketlens/internal/interfaces"
	"github.com/bwhitfield/marketlens/internal/models"
)

const (
	DefaultBaseURL     = "https://query1.finance.yahoo.com"
	DefaultTimeout     = 30 * time.Second
	DefaultMinInterval = 500 * time.Millisecond
)

// Endpoint classes for the outbound rate gate. Chart history and quote
// lookups are throttled independently.
const (
	ClassChart = "chart"
	ClassQuote = "quote"
)

// Gate bounds the frequency of outbound calls per endpoint class. Each class
// holds a limiter configured for one call per minimum interval; the limiter's
// own locking makes the wait-and-stamp step atomic, so two concurrent callers
// can never both proceed inside the same interval.
type Gate struct {
	limiters map[string]*rate.Limiter
}

// NewGate creates a gate enforcing minInterval between calls per class.
func NewGate(minInterval time.Duration, classes ...string) *Gate {
	limiters := make(map[string]*rate.Limiter, len(classes))
	for _, class := range classes {
		limiters[class] = rate.NewLimiter(rate.Every(minInterval), 1)
	}
	return &Gate{limiters: limiters}
}

// Acquire blocks until the class interval has elapsed since the last call,
// or ctx is cancelled. Unknown classes pass immediately.
func (g *Gate) Acquire(ctx context.Context, class string) error {
	limiter, ok := g.limiters[class]
	if !ok {
		return nil
	}
	return limiter.Wait(ctx)
}

// Client implements the MarketDataClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	gate       *Gate
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithMinInterval sets the minimum gap between outbound calls per endpoint class
func WithMinInterval(interval time.Duration) ClientOption {
	return func(c *Client) {
		c.gate = NewGate(interval, ClassChart, ClassQuote)
	}
}

// WithGate injects a pre-built rate gate (shared or test-controlled)
func WithGate(gate *Gate) ClientOption {
	return func(c *Client) {
		c.gate = gate
	}
}

// NewClient creates a new Yahoo Finance client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		gate:   NewGate(DefaultMinInterval, ClassChart, ClassQuote),
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a provider API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// chartResponse is the response structure from the Yahoo Finance chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// getChart performs a rate-limited GET against the chart endpoint.
// A 404 or a "Not Found" API error means the symbol has no data; callers
// receive an empty response rather than an error for that case.
func (c *Client) getChart(ctx context.Context, class, ticker string, params url.Values) (*chartResponse, error) {
	if err := c.gate.Acquire(ctx, class); err != nil {
		return nil, fmt.Errorf("rate gate wait: %w", err)
	}

	endpoint := fmt.Sprintf("/v8/finance/chart/%s", url.PathEscape(ticker))
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	c.logger.Debug().Str("ticker", ticker).Str("class", class).Msg("Yahoo chart API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return &chartResponse{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   endpoint,
		}
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if chart.Chart.Error != nil {
		if chart.Chart.Error.Code == "Not Found" {
			return &chartResponse{}, nil
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    chart.Chart.Error.Description,
			Endpoint:   endpoint,
		}
	}

	return &chart, nil
}

// bars flattens a chart response into ascending price points, skipping the
// null bars Yahoo emits for holidays.
func bars(chart *chartResponse) []models.PricePoint {
	if len(chart.Chart.Result) == 0 {
		return nil
	}
	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil
	}
	quote := result.Indicators.Quote[0]

	points := make([]models.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || quote.Open[i] == nil || quote.Close[i] == nil {
			continue
		}
		var volume int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			volume = *quote.Volume[i]
		}
		points = append(points, models.PricePoint{
			Date:   time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Open:   *quote.Open[i],
			High:   deref(quote.High, i),
			Low:    deref(quote.Low, i),
			Close:  *quote.Close[i],
			Volume: volume,
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

func deref(vals []*float64, i int) float64 {
	if i < len(vals) && vals[i] != nil {
		return *vals[i]
	}
	return 0
}

// GetDailyBars retrieves daily OHLCV bars for a ticker over an inclusive date
// range. A valid ticker with no trading activity yields an empty slice.
func (c *Client) GetDailyBars(ctx context.Context, ticker string, r models.DateRange) ([]models.PricePoint, error) {
	params := url.Values{}
	params.Set("interval", "1d")
	params.Set("events", "history")
	params.Set("period1", fmt.Sprintf("%d", r.Start.Unix()))
	// period2 is exclusive upstream; pushing it one day out keeps the range
	// end-inclusive.
	params.Set("period2", fmt.Sprintf("%d", r.End.Add(24*time.Hour).Unix()))

	chart, err := c.getChart(ctx, ClassChart, ticker, params)
	if err != nil {
		return nil, err
	}

	points := bars(chart)

	// Yahoo sometimes returns bars just outside the requested window; trim to
	// the inclusive range so callers see exactly what they asked for.
	trimmed := points[:0]
	for _, p := range points {
		if p.Date.Before(r.Start) || p.Date.After(r.End) {
			continue
		}
		trimmed = append(trimmed, p)
	}

	c.logger.Debug().Str("ticker", ticker).Int("bars", len(trimmed)).Msg("Fetched daily bars")
	return trimmed, nil
}

// GetQuote retrieves the latest close and day change for a ticker.
func (c *Client) GetQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	params := url.Values{}
	params.Set("interval", "1d")
	params.Set("range", "5d")

	chart, err := c.getChart(ctx, ClassQuote, ticker, params)
	if err != nil {
		return nil, err
	}

	points := bars(chart)
	if len(points) == 0 {
		// Same contract as GetDailyBars: a valid symbol with no data is not a
		// provider failure. Callers translate the nil quote.
		return nil, nil
	}

	last := points[len(points)-1]
	quote := &models.Quote{
		Ticker:    ticker,
		Close:     last.Close,
		Volume:    last.Volume,
		Timestamp: last.Date,
	}
	if len(points) > 1 {
		quote.PreviousClose = points[len(points)-2].Close
		quote.Change = last.Close - quote.PreviousClose
		if quote.PreviousClose != 0 {
			quote.ChangePct = (last.Close/quote.PreviousClose - 1) * 100
		}
	}
	return quote, nil
}

// Ensure Client implements MarketDataClient
var _ interfaces.MarketDataClient = (*Client)(nil)
