package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://places.googleapis.com/v1"

// APIError is a non-2xx response from the Places API with its extracted
// error message.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("places: API error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("places: API error %d", e.StatusCode)
}

// MaskRejected reports whether the upstream rejected the request because of
// an invalid or unsupported field mask. The API signals this with a plain
// 400; no finer-grained reason is exposed.
func (e *APIError) MaskRejected() bool {
	return e.StatusCode == http.StatusBadRequest
}

// errorEnvelope is the standard google API error body.
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// ClientConfig holds the settings for a Places API client.
type ClientConfig struct {
	APIKey            string
	BaseURL           string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
}

// Client is a low-level Places API (New) v1 client. Callers supply the field
// mask per request; mask tier selection lives in the Negotiator.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Places API client
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps == 0 {
		rps = 5
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// SearchText performs a text search with the given field mask.
func (c *Client) SearchText(ctx context.Context, req *SearchRequest, fieldMask string) (*SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("places: failed to encode search request: %w", err)
	}

	var resp SearchResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/places:searchText", body, fieldMask, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetPlace fetches one place record by identifier with the given field mask.
func (c *Client) GetPlace(ctx context.Context, placeID string, fieldMask string) (*Place, error) {
	var place Place
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/places/"+placeID, nil, fieldMask, &place); err != nil {
		return nil, err
	}

	return &place, nil
}

func (c *Client) do(ctx context.Context, method, url string, body []byte, fieldMask string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("places: rate limiter wait failed: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("places: failed to build request: %w", err)
	}

	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places: failed to decode response: %w", err)
	}

	return nil
}

// decodeError extracts the message from the standard google error envelope so
// callers never see the raw error payload.
func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil {
		apiErr.Status = envelope.Error.Status
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
