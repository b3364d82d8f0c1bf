// Package registry fetches raw rows from the food-safety open API.
// It owns all transport concerns: URL construction, timeouts, rate limiting,
// and the hard-failure taxonomy for broken responses. The scoring core never
// sees any of this; it only consumes the returned row tables.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nutrireco/go-reco-engine/internal/errors"
	"github.com/nutrireco/go-reco-engine/model"
)

// DefaultBaseURL is the public endpoint of the food-safety open API.
const DefaultBaseURL = "http://openapi.foodsafetykorea.go.kr/api"

// resultCodeOK is the API's "success" result code.
const resultCodeOK = "INFO-000"

// Client talks to the registry API. Responses are paginated by 1-based
// row range; schemas differ per service ID.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a registry client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		apiKey:      apiKey,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		rateLimiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// serviceBody is the per-service payload inside the response envelope.
type serviceBody struct {
	Result struct {
		Code    string `json:"CODE"`
		Message string `json:"MSG"`
	} `json:"RESULT"`
	TotalCount json.RawMessage `json:"total_count"`
	Rows       []model.Row     `json:"row"`
}

// Fetch retrieves rows [startIdx, endIdx] (1-based, inclusive) for a service
// ID and returns them with the service's reported total row count.
//
// Failures are hard and carry the offending URL plus a body preview:
// non-200 status, non-JSON body, broken JSON, a response missing the service
// key, or an API result code other than INFO-000. Fetch never retries and
// never falls back to sample data.
func (c *Client) Fetch(ctx context.Context, serviceID string, startIdx, endIdx int) ([]model.Row, int, error) {
	if serviceID == "" {
		return nil, 0, errors.NewValidationError("service_id", "must not be empty")
	}
	if startIdx < 1 || endIdx < startIdx {
		return nil, 0, errors.NewValidationError("range", fmt.Sprintf("invalid row range %d..%d", startIdx, endIdx))
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	url := fmt.Sprintf("%s/%s/%s/json/%d/%d", c.baseURL, c.apiKey, serviceID, startIdx, endIdx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.NewFetchError(url, 0, "transport error: "+err.Error(), "")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close response body: %v", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.NewFetchError(url, resp.StatusCode, "failed to read body: "+err.Error(), "")
	}
	text := string(body)

	if resp.StatusCode != http.StatusOK {
		return nil, 0, errors.NewFetchError(url, resp.StatusCode, "HTTP error", text)
	}

	// The server answers some failures with an HTML page and status 200.
	stripped := strings.TrimLeft(text, " \t\r\n")
	if !strings.HasPrefix(stripped, "{") {
		return nil, 0, errors.NewFetchError(url, resp.StatusCode, "non-JSON response", stripped)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripped), &envelope); err != nil {
		return nil, 0, errors.NewFetchError(url, resp.StatusCode, "JSON parse failed: "+err.Error(), stripped)
	}

	raw, ok := envelope[serviceID]
	if !ok {
		keys := make([]string, 0, len(envelope))
		for k := range envelope {
			keys = append(keys, k)
		}
		reason := fmt.Sprintf("response missing '%s' key (keys=%v)", serviceID, keys)
		return nil, 0, errors.NewFetchError(url, resp.StatusCode, reason, stripped)
	}

	var bodyData serviceBody
	if err := json.Unmarshal(raw, &bodyData); err != nil {
		return nil, 0, errors.NewFetchError(url, resp.StatusCode, "service body parse failed: "+err.Error(), stripped)
	}

	if bodyData.Result.Code != "" && bodyData.Result.Code != resultCodeOK {
		reason := fmt.Sprintf("API error %s: %s", bodyData.Result.Code, bodyData.Result.Message)
		return nil, 0, errors.NewFetchError(url, resp.StatusCode, reason, stripped)
	}

	total := parseTotalCount(bodyData.TotalCount)
	rows := bodyData.Rows
	if rows == nil {
		rows = []model.Row{}
	}
	return rows, total, nil
}

// parseTotalCount tolerates the API reporting total_count as either a number
// or a quoted string. Anything else counts as 0.
func parseTotalCount(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return asInt
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if n, convErr := strconv.Atoi(strings.TrimSpace(asString)); convErr == nil {
			return n
		}
	}
	return 0
}
