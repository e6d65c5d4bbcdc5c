// Package trackapi provides a client for the insider-tracker backend API
package trackapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/insiderwatch/tracker/internal/common"
	"github.com/insiderwatch/tracker/internal/interfaces"
	"github.com/insiderwatch/tracker/internal/models"
)

const (
	DefaultBaseURL   = "http://localhost:8080/api/v1"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the TrackerAPI interface over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
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

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new tracker backend client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a transport-level API failure
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tracker API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// backendError is a backend-reported logical failure ({"error": "..."}).
// Its text is surfaced to the user verbatim.
type backendError struct {
	message string
}

func (e *backendError) Error() string {
	return e.message
}

// errorEnvelope matches the {"error": "..."} payload the backend attaches
// to failed responses, on both 200 and 5xx statuses.
type errorEnvelope struct {
	Error string `json:"error"`
}

// get performs a rate-limited GET request and decodes the JSON body.
// Backend-reported {"error"} payloads are returned as errors carrying the
// message verbatim, regardless of HTTP status.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug().
		Str("endpoint", path).
		Str("request_id", requestID).
		Msg("tracker API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// The backend reports logical failures as {"error": "..."} with either
	// a 200 or a 5xx status; both surface identically.
	var envelope errorEnvelope
	if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil && envelope.Error != "" {
		return &backendError{message: envelope.Error}
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// SearchTickers returns autocomplete suggestions for a partial ticker.
// A response lacking the result payload decodes as an empty list.
func (c *Client) SearchTickers(ctx context.Context, query string) ([]models.SuggestionItem, error) {
	params := url.Values{}
	params.Set("q", query)

	var response struct {
		Result []models.SuggestionItem `json:"result"`
	}
	if err := c.get(ctx, "/search", params, &response); err != nil {
		return nil, err
	}

	return response.Result, nil
}

// GetInsiderTrades returns disclosure documents and the quote snapshot
// for a confirmed query.
func (c *Client) GetInsiderTrades(ctx context.Context, query models.Query) (*models.InsiderTradesResult, error) {
	params := url.Values{}
	params.Set("ticker", query.Ticker)
	params.Set("period", string(query.Period))
	params.Set("filter", string(query.Filter))

	var response struct {
		TransactionsResponse struct {
			Transactions []models.DisclosureDocument `json:"transactions"`
		} `json:"transactionsResponse"`
		Quote *models.QuoteSnapshot `json:"quote"`
	}
	if err := c.get(ctx, "/insider-trades", params, &response); err != nil {
		return nil, err
	}

	return &models.InsiderTradesResult{
		Documents: response.TransactionsResponse.Transactions,
		Quote:     response.Quote,
	}, nil
}

// GetDailyFeed returns the latest open-market insider trades across all issuers
func (c *Client) GetDailyFeed(ctx context.Context) ([]models.DisclosureDocument, error) {
	var response struct {
		Transactions []models.DisclosureDocument `json:"transactions"`
	}
	if err := c.get(ctx, "/daily-feed", nil, &response); err != nil {
		return nil, err
	}

	return response.Transactions, nil
}

// Ensure Client implements TrackerAPI
var _ interfaces.TrackerAPI = (*Client)(nil)
