// Package omdb implements the catalog contract against the OMDb API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jwhitford/marquee/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	maxRetries     = 3
	baseRetryDelay = 500 * time.Millisecond
)

// Client implements the domain.Catalog interface for OMDb
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new OMDb API client
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Search returns one page of results for the query. OMDb serves fixed
// pages of 10 and reports the overall total as totalResults.
func (c *Client) Search(ctx context.Context, q domain.SearchQuery, page int) (domain.ResultPage, error) {
	query := url.Values{}
	query.Set("s", q.Text)
	if q.Kind != domain.KindAny {
		query.Set("type", string(q.Kind))
	}
	if q.Year != "" {
		query.Set("y", q.Year)
	}
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return domain.ResultPage{}, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.ResultPage{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Response != "True" {
		return domain.ResultPage{}, mapAPIError(resp.Error)
	}

	return mapPage(resp), nil
}

// Detail returns full metadata for a catalog id.
func (c *Client) Detail(ctx context.Context, id string) (domain.MovieDetail, error) {
	query := url.Values{}
	query.Set("i", id)
	query.Set("plot", "full")

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return domain.MovieDetail{}, err
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.MovieDetail{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Response != "True" {
		return domain.MovieDetail{}, mapAPIError(resp.Error)
	}

	return mapDetail(resp), nil
}

// doRequest performs a GET against the OMDb API with the api key applied.
// Includes retry logic with exponential backoff for 5xx server errors.
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	query.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s/?%s", c.baseURL, query.Encode())

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if attempt > 0 {
			delay := baseRetryDelay * time.Duration(1<<(attempt-1)) // 500ms, 1s, 2s
			c.logger.Debug("retrying request", "attempt", attempt, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		c.logger.Debug("omdb request", "s", query.Get("s"), "i", query.Get("i"), "page", query.Get("page"), "attempt", attempt)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Error("omdb request failed", "error", err)
			return nil, domain.ErrCatalogUnreachable
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode >= 500 && resp.StatusCode < 600 {
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			c.logger.Warn("omdb server error, will retry",
				"status", resp.StatusCode,
				"attempt", attempt,
				"maxRetries", maxRetries,
			)
			continue
		}

		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("catalog rejected api key")
		}

		if resp.StatusCode != http.StatusOK {
			c.logger.Error("omdb request error", "status", resp.StatusCode, "body", string(body))
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		return body, nil
	}

	c.logger.Error("omdb request failed after retries", "error", lastErr)
	return nil, lastErr
}

// mapAPIError converts OMDb's Response:"False" payloads into domain errors.
func mapAPIError(msg string) error {
	switch msg {
	case "Movie not found!", "Incorrect IMDb ID.", "Series or episode not found!":
		return domain.ErrNotFound
	case "":
		return domain.ErrNotFound
	default:
		// e.g. "Too many results.", "Invalid API key!"
		return fmt.Errorf("catalog error: %s", strings.TrimSuffix(msg, "."))
	}
}
