package scamclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const (
	defaultTimeout = 60 * time.Second
	// Maximum response body size accepted from upstream (4MB)
	maxResponseSize = 4 << 20
	maxErrorBody    = 512
)

// Client talks to the companion scraping / AI service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Interface) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.Named("scamclient"),
	}
}

func (c *Client) SearchScams(ctx context.Context, keyword, searchType string) (*SearchResponse, error) {
	q := url.Values{"keyword": {keyword}}
	if searchType != "" {
		q.Set("type", searchType)
	}
	var out SearchResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/scams/search", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchSource(ctx context.Context, source, keyword string) (*SourceResult, error) {
	if !IsValidSource(source) {
		return nil, fmt.Errorf("unknown scam source %q", source)
	}
	var out SourceResult
	if err := c.do(ctx, http.MethodGet, "/api/v1/scams/"+source, url.Values{"keyword": {keyword}}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Chat(ctx context.Context, message, sessionID string, history []ChatTurn) (*ChatResponse, error) {
	var out ChatResponse
	body := chatRequest{Message: message, SessionID: sessionID, Context: history}
	if err := c.do(ctx, http.MethodPost, "/api/v1/ai/chat", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Analyze(ctx context.Context, text string) (*AnalyzeResponse, error) {
	var out AnalyzeResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/ai/analyze", nil, analyzeRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CacheStats(ctx context.Context) (*CacheStats, error) {
	var out CacheStats
	if err := c.do(ctx, http.MethodGet, "/api/v1/cache/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearCache removes upstream cache entries matching pattern (default scam:search:*).
func (c *Client) ClearCache(ctx context.Context, pattern string) (map[string]any, error) {
	if pattern == "" {
		pattern = "scam:search:*"
	}
	out := map[string]any{}
	if err := c.do(ctx, http.MethodDelete, "/api/v1/cache/clear", url.Values{"pattern": {pattern}}, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	headers := map[string]string{"X-API-Key": c.apiKey}
	return doJSON(ctx, c.httpClient, c.logger, method, endpoint, headers, body, out)
}

// doJSON performs one request with no retries, logging latency on success
// and status/timeout on failure.
func doJSON(ctx context.Context, client *http.Client, log logger.Interface, method, endpoint string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		log.Errorw("upstream request failed",
			"method", method,
			"url", endpoint,
			"error", err,
			"is_timeout", IsTimeout(err),
		)
		return fmt.Errorf("failed to call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseSize)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(limited, maxErrorBody))
		log.Errorw("upstream request failed",
			"method", method,
			"url", endpoint,
			"status", resp.StatusCode,
			"is_timeout", false,
		)
		return &StatusError{Method: method, URL: endpoint, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	if out != nil {
		if err := json.NewDecoder(limited).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	log.Infow("upstream request succeeded",
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
