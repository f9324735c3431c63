package football

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/karimfs/matchday/internal/errors"
	"github.com/karimfs/matchday/internal/logger"
	"github.com/karimfs/matchday/internal/models"
)

// Client talks to the upstream football events API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *logger.Logger
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		// The provider throttles aggressive keys; stay under two calls a second.
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		log:     logger.Default().WithPrefix("football"),
	}
}

// apiError is the provider's error envelope. It can arrive either as a
// non-2xx response or embedded inside a 200 body in place of the match list.
type apiError struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// FetchEvents retrieves all matches in the inclusive [from, to] date range
// (YYYY-MM-DD). An empty list is a valid result, distinct from failure;
// every failure shape is normalized to an UPSTREAM_ERROR.
func (c *Client) FetchEvents(ctx context.Context, from, to string) ([]models.Match, error) {
	log := logger.FromContext(ctx).WithPrefix("football").WithFields(map[string]any{
		"from": from,
		"to":   to,
	})

	if c.apiKey == "" {
		return nil, errors.NewUpstreamError("football API key is not configured", nil)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.NewUpstreamError("rate limit wait aborted", err)
	}

	q := url.Values{}
	q.Set("action", "get_events")
	q.Set("from", from)
	q.Set("to", to)
	q.Set("APIkey", c.apiKey)
	reqURL := c.baseURL + "?" + q.Encode()

	log.Debug("fetching events")
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, errors.NewUpstreamError("failed to build events request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch events: %v", err)
		return nil, errors.NewUpstreamError("failed to reach match data provider", err)
	}
	defer resp.Body.Close()

	log.Debug("events response received in %v, status=%d", time.Since(start), resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		log.Error("failed to read events body: %v", err)
		return nil, errors.NewUpstreamError("failed to read provider response", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("provider returned status %d", resp.StatusCode)
		if apiErr, ok := decodeAPIError(body); ok {
			msg = apiErr.Message
		}
		log.Error("events request failed: status=%d, message=%s", resp.StatusCode, msg)
		return nil, errors.NewUpstreamError(msg, nil)
	}

	// A 200 body is either the match array or the provider's error object.
	if apiErr, ok := decodeAPIError(body); ok {
		log.Error("provider error in 200 response: code=%d, message=%s", apiErr.Error, apiErr.Message)
		return nil, errors.NewUpstreamError(apiErr.Message, nil)
	}

	var out []models.Match
	if err := json.Unmarshal(body, &out); err != nil {
		log.Error("failed to decode events response: %v", err)
		return nil, errors.NewUpstreamError("malformed provider response", err)
	}

	log.Info("fetched %d matches for %s..%s", len(out), from, to)
	return out, nil
}

func decodeAPIError(body []byte) (apiError, bool) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return apiError{}, false
	}
	var e apiError
	if err := json.Unmarshal(trimmed, &e); err != nil || e.Message == "" {
		return apiError{}, false
	}
	return e, true
}
